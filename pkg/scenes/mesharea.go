package scenes

import (
	"fmt"

	"github.com/taigrr/gizmo/pkg/config"
	"github.com/taigrr/gizmo/pkg/geometry"
	"github.com/taigrr/gizmo/pkg/math3d"
	"github.com/taigrr/gizmo/pkg/models"
	"github.com/taigrr/gizmo/pkg/render"
)

// maxWireEdges bounds how many mesh edges are drawn.
const maxWireEdges = 4000

// MeshArea draws a mesh wireframe and reports its surface area.
type MeshArea struct {
	Mesh *models.Mesh
}

// NewMeshAreaFromConfig loads mesh.model, or tessellates mesh.primitive
// when no model is configured.
func NewMeshAreaFromConfig(cfg *config.Config) (Scene, error) {
	var (
		mesh *models.Mesh
		err  error
	)
	if path := cfg.GetModelPath(); path != "" {
		mesh, err = models.LoadGLB(path)
	} else {
		mesh, err = models.Primitive(cfg.GetPrimitive(), cfg.GetPrimitiveSize(), cfg.GetMeshResolution())
	}
	if err != nil {
		return nil, err
	}
	return &MeshArea{Mesh: mesh}, nil
}

// Name returns "mesharea".
func (m *MeshArea) Name() string { return "mesharea" }

// Build draws the mesh wireframe and labels its surface area.
func (m *MeshArea) Build() (*render.DrawList, error) {
	if m.Mesh == nil {
		return nil, fmt.Errorf("build mesharea: no mesh: %w", geometry.ErrInvalidGeometry)
	}

	d := render.NewDrawList()
	metrics := m.Mesh.Metrics()

	edges := m.Mesh.Edges()
	if len(edges) > maxWireEdges {
		edges = edges[:maxWireEdges]
	}
	for _, e := range edges {
		d.Line(m.Mesh.Positions[e[0]], m.Mesh.Positions[e[1]], geometry.Grey)
	}

	top := math3d.V3(m.Mesh.Center().X, m.Mesh.BoundsMax.Y, m.Mesh.Center().Z)
	if metrics.Degenerate() {
		d.Label(top, "no surface", geometry.Red)
		return d, nil
	}
	d.Label(top, fmt.Sprintf("%s: area %.4f (%d tris)", m.Mesh.Name, metrics.Area, metrics.Triangles), geometry.White)
	return d, nil
}
