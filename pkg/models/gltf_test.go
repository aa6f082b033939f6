package models

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	assert.Error(t, err)
}

// triangleDocument builds an in-memory document holding one right
// triangle with legs of length 2, indexed with uint16 indices.
func triangleDocument(indexed bool) *gltf.Document {
	var data []byte
	for _, f := range []float32{0, 0, 0, 2, 0, 0, 0, 2, 0} {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f))
	}
	posLen := len(data)
	for _, i := range []uint16{0, 1, 2} {
		data = binary.LittleEndian.AppendUint16(data, i)
	}

	posView, idxView := 0, 1
	doc := &gltf.Document{
		Buffers: []*gltf.Buffer{{ByteLength: len(data), Data: data}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: posLen},
			{Buffer: 0, ByteOffset: posLen, ByteLength: 6},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: &posView, Count: 3, Type: gltf.AccessorVec3, ComponentType: gltf.ComponentFloat},
			{BufferView: &idxView, Count: 3, Type: gltf.AccessorScalar, ComponentType: gltf.ComponentUshort},
		},
	}

	prim := &gltf.Primitive{
		Attributes: map[string]int{gltf.POSITION: 0},
		Mode:       gltf.PrimitiveTriangles,
	}
	if indexed {
		idx := 1
		prim.Indices = &idx
	}
	doc.Meshes = []*gltf.Mesh{{Name: "tri", Primitives: []*gltf.Primitive{prim}}}
	return doc
}

func TestMeshFromDocument(t *testing.T) {
	for _, indexed := range []bool{true, false} {
		name := "sequential"
		if indexed {
			name = "indexed"
		}
		t.Run(name, func(t *testing.T) {
			mesh, err := meshFromDocument(triangleDocument(indexed), "tri.glb")
			require.NoError(t, err)
			assert.Equal(t, 1, mesh.TriangleCount())
			assert.InDelta(t, 2, mesh.SurfaceArea(), 1e-6)
			assert.InDelta(t, 2, mesh.BoundsMax.X, 1e-6)
		})
	}
}

func TestMeshFromDocumentErrors(t *testing.T) {
	t.Run("overrun", func(t *testing.T) {
		doc := triangleDocument(true)
		doc.Accessors[0].Count = 100
		_, err := meshFromDocument(doc, "bad.glb")
		assert.Error(t, err)
	})

	t.Run("buffer view out of range", func(t *testing.T) {
		doc := triangleDocument(true)
		doc.Accessors[0].BufferView = gltf.Index(7)
		_, err := meshFromDocument(doc, "bad.glb")
		assert.ErrorContains(t, err, "buffer view 7 out of range")
	})

	t.Run("buffer out of range", func(t *testing.T) {
		doc := triangleDocument(true)
		doc.BufferViews[0].Buffer = 3
		_, err := meshFromDocument(doc, "bad.glb")
		assert.ErrorContains(t, err, "buffer 3 out of range")
	})

	t.Run("unsupported index type", func(t *testing.T) {
		doc := triangleDocument(true)
		doc.Accessors[1].ComponentType = gltf.ComponentFloat
		_, err := meshFromDocument(doc, "bad.glb")
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func BenchmarkSurfaceArea(b *testing.B) {
	m, err := Box(1, 16)
	if err != nil {
		b.Fatal(err)
	}
	for b.Loop() {
		_ = m.SurfaceArea()
	}
}
