package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/gizmo/pkg/math3d"
)

// ErrUnsupported marks glTF content the loader does not read.
var ErrUnsupported = errors.New("unsupported gltf content")

// LoadGLB loads the triangle primitives of a glTF or GLB file. Node
// transforms are not applied, so areas are in mesh space.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh, err := meshFromDocument(doc, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return mesh, nil
}

func meshFromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			if err := appendPrimitive(doc, prim, mesh); err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}
		}
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, mesh *Mesh) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}
	positions, err := readPositions(doc, posIdx)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	base := len(mesh.Positions)
	mesh.Positions = append(mesh.Positions, positions...)

	var indices []int
	if prim.Indices != nil {
		if indices, err = readIndices(doc, *prim.Indices); err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]int, len(positions))
		for i := range indices {
			indices[i] = i
		}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		face := [3]int{base + indices[i], base + indices[i+1], base + indices[i+2]}
		for _, v := range face {
			if v >= len(mesh.Positions) {
				return fmt.Errorf("index %d out of range", v-base)
			}
		}
		mesh.Faces = append(mesh.Faces, face)
	}
	return nil
}

// accessorBytes returns the byte slice an accessor reads from, its start
// offset, and its element stride.
func accessorBytes(doc *gltf.Document, idx, elemSize int) ([]byte, int, int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, 0, 0, fmt.Errorf("accessor %d out of range", idx)
	}
	acc := doc.Accessors[idx]
	if acc.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("%w: sparse or empty accessor", ErrUnsupported)
	}

	if v := *acc.BufferView; v < 0 || v >= len(doc.BufferViews) {
		return nil, 0, 0, fmt.Errorf("accessor %d: buffer view %d out of range", idx, *acc.BufferView)
	}
	view := doc.BufferViews[*acc.BufferView]
	if view.Buffer < 0 || view.Buffer >= len(doc.Buffers) {
		return nil, 0, 0, fmt.Errorf("accessor %d: buffer %d out of range", idx, view.Buffer)
	}
	buf := doc.Buffers[view.Buffer]
	if buf.URI != "" && buf.Data == nil {
		return nil, 0, 0, fmt.Errorf("%w: external buffer %s", ErrUnsupported, buf.URI)
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	start := view.ByteOffset + acc.ByteOffset
	end := start + stride*(acc.Count-1) + elemSize
	if acc.Count > 0 && end > len(buf.Data) {
		return nil, 0, 0, fmt.Errorf("accessor %d overruns buffer", idx)
	}
	return buf.Data, start, stride, nil
}

func readPositions(doc *gltf.Document, idx int) ([]math3d.Vec3, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	acc := doc.Accessors[idx]
	if acc.Type != gltf.AccessorVec3 || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("%w: position accessor %v/%v", ErrUnsupported, acc.Type, acc.ComponentType)
	}

	data, start, stride, err := accessorBytes(doc, idx, 12)
	if err != nil {
		return nil, err
	}

	out := make([]math3d.Vec3, acc.Count)
	for i := range out {
		off := start + i*stride
		out[i] = math3d.V3(
			float64(readFloat32(data[off:])),
			float64(readFloat32(data[off+4:])),
			float64(readFloat32(data[off+8:])),
		)
	}
	return out, nil
}

func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	acc := doc.Accessors[idx]
	if acc.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("%w: index accessor %v", ErrUnsupported, acc.Type)
	}

	var size int
	switch acc.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("%w: index component %v", ErrUnsupported, acc.ComponentType)
	}

	data, start, stride, err := accessorBytes(doc, idx, size)
	if err != nil {
		return nil, err
	}

	out := make([]int, acc.Count)
	for i := range out {
		off := start + i*stride
		switch size {
		case 1:
			out[i] = int(data[off])
		case 2:
			out[i] = int(binary.LittleEndian.Uint16(data[off:]))
		default:
			out[i] = int(binary.LittleEndian.Uint32(data[off:]))
		}
	}
	return out, nil
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
