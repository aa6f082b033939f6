package geometry

import (
	"fmt"

	"github.com/taigrr/gizmo/pkg/math3d"
)

// Reflect mirrors incident about a surface with the given normal and
// returns the unit outgoing direction:
//
//	r = d - 2(d·n)n
//
// normal is expected to be unit length.
func Reflect(incident, normal math3d.Vec3) (math3d.Vec3, error) {
	if normal.LenSq() == 0 {
		return math3d.Vec3{}, fmt.Errorf("reflect: zero normal: %w", ErrInvalidGeometry)
	}
	r := incident.Sub(normal.Scale(2 * incident.Dot(normal)))
	out, err := Unit(r)
	if err != nil {
		return math3d.Vec3{}, fmt.Errorf("reflect: zero incident: %w", err)
	}
	return out, nil
}

// ReflectPerpendicular derives the same direction by walking from a point
// one unit back along the incoming ray, across the perpendicular dropped
// onto the normal, and out the same distance again.
func ReflectPerpendicular(incident, normal math3d.Vec3) (math3d.Vec3, error) {
	if normal.LenSq() == 0 {
		return math3d.Vec3{}, fmt.Errorf("reflect: zero normal: %w", ErrInvalidGeometry)
	}
	d, err := Unit(incident)
	if err != nil {
		return math3d.Vec3{}, fmt.Errorf("reflect: zero incident: %w", err)
	}

	// Positions relative to the hit point.
	back := d.Negate()
	foot := normal.Scale(-d.Dot(normal))
	perpendicular := foot.Sub(back)
	onReflectedLine := back.Add(perpendicular.Scale(2))

	return Unit(onReflectedLine)
}

// Construction holds the helper points the laser exercise draws around a
// single bounce. All points are in world space.
type Construction struct {
	Hit    math3d.Vec3
	Normal math3d.Vec3

	// Back is one unit back along the incoming ray.
	Back math3d.Vec3
	// Mirror is hit - 2(d·n)n, the reflected back point.
	Mirror math3d.Vec3
	// Foot is hit - (d·n)n, where the perpendicular from Back meets the normal.
	Foot math3d.Vec3
	// OnReflected is Back pushed twice across the perpendicular.
	OnReflected math3d.Vec3

	Incoming math3d.Vec3
	Outgoing math3d.Vec3
}

// Construct computes the bounce of a ray that left start and struck a
// surface at hit with the given unit normal.
func Construct(start, hit, normal math3d.Vec3) (Construction, error) {
	d, err := Unit(hit.Sub(start))
	if err != nil {
		return Construction{}, fmt.Errorf("construct: start equals hit: %w", err)
	}
	out, err := Reflect(d, normal)
	if err != nil {
		return Construction{}, fmt.Errorf("construct: %w", err)
	}

	dot := d.Dot(normal)
	back := hit.Sub(d)
	foot := hit.Sub(normal.Scale(dot))

	return Construction{
		Hit:         hit,
		Normal:      normal,
		Back:        back,
		Mirror:      hit.Sub(normal.Scale(2 * dot)),
		Foot:        foot,
		OnReflected: back.Add(foot.Sub(back).Scale(2)),
		Incoming:    d,
		Outgoing:    out,
	}, nil
}

// Mirror is an infinite reflective plane.
type Mirror struct {
	Point  math3d.Vec3
	Normal math3d.Vec3
}

// Bounce is one straight leg of a traced ray. Constructions are only set
// for legs that ended on a mirror.
type Bounce struct {
	From, To     math3d.Vec3
	Hit          bool
	Construction Construction
}

// rayEpsilon keeps a reflected ray from re-hitting the mirror it left.
const rayEpsilon = 1e-9

// TraceMirrors follows a ray from origin through a set of planar mirrors,
// reflecting at the nearest hit each time. Tracing stops after maxBounces
// mirror hits, or when the ray escapes, in which case the last leg runs
// maxDistance along the final direction.
func TraceMirrors(origin, dir math3d.Vec3, mirrors []Mirror, maxBounces int, maxDistance float64) ([]Bounce, error) {
	d, err := Unit(dir)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}

	var legs []Bounce
	start := origin
	for len(legs) < maxBounces {
		idx, dist := nearestMirror(start, d, mirrors, maxDistance)
		if idx < 0 {
			legs = append(legs, Bounce{From: start, To: start.Add(d.Scale(maxDistance))})
			return legs, nil
		}

		hit := start.Add(d.Scale(dist))
		normal := mirrors[idx].Normal.Normalize()
		c, err := Construct(start, hit, normal)
		if err != nil {
			return legs, fmt.Errorf("trace bounce %d: %w", len(legs), err)
		}
		legs = append(legs, Bounce{From: start, To: hit, Hit: true, Construction: c})

		start = hit
		d = c.Outgoing
	}
	return legs, nil
}

func nearestMirror(origin, dir math3d.Vec3, mirrors []Mirror, maxDistance float64) (int, float64) {
	best, bestDist := -1, maxDistance
	for i, m := range mirrors {
		denom := dir.Dot(m.Normal)
		if denom == 0 {
			continue
		}
		dist := m.Point.Sub(origin).Dot(m.Normal) / denom
		if dist > rayEpsilon && dist <= bestDist {
			best, bestDist = i, dist
		}
	}
	return best, bestDist
}
