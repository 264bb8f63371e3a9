package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubeMesh_FixedStreams(t *testing.T) {
	m := NewCubeMesh()

	assert.Equal(t, "cube", m.Name())
	assert.Len(t, m.Positions(), CubeVertexCount*3)
	assert.Len(t, m.Indices(), CubeIndexCount)
	assert.Equal(t, CubeIndexCount, m.IndexCount())

	// Every index must address one of the 8 shared vertices.
	for _, idx := range m.Indices() {
		assert.Less(t, int(idx), CubeVertexCount)
	}
}

func TestNewCubeMesh_ByteViewSizes(t *testing.T) {
	m := NewCubeMesh()

	assert.Len(t, m.PositionBytes(), CubeVertexCount*3*4)
	assert.Len(t, m.TexCoordBytes(), CubeTexCoordCount*4)
	assert.Len(t, m.IndexBytes(), CubeIndexCount*2)
}

func TestUpdateTexCoords(t *testing.T) {
	m := NewCubeMesh()

	tc := make([]float32, CubeTexCoordCount)
	for i := range tc {
		tc[i] = float32(i) / float32(CubeTexCoordCount)
	}
	require.NoError(t, m.UpdateTexCoords(tc))
	assert.Equal(t, tc, m.TexCoords())

	// Byte view reflects the update.
	assert.Len(t, m.TexCoordBytes(), CubeTexCoordCount*4)
}

func TestUpdateTexCoords_RejectsWrongLength(t *testing.T) {
	m := NewCubeMesh()

	assert.Error(t, m.UpdateTexCoords(make([]float32, CubeTexCoordCount-2)))
	assert.Error(t, m.UpdateTexCoords(nil))

	// Failed updates leave the stream untouched.
	assert.Equal(t, make([]float32, CubeTexCoordCount), m.TexCoords())
}

func TestTexCoords_ReturnsCopy(t *testing.T) {
	m := NewCubeMesh()

	tc := m.TexCoords()
	tc[0] = 42
	assert.Equal(t, float32(0), m.TexCoords()[0])
}

func TestEachFaceHasTwoTriangles(t *testing.T) {
	m := NewCubeMesh()
	indices := m.Indices()

	require.Len(t, indices, 36)
	// 12 triangles, none degenerate.
	for tri := 0; tri < 12; tri++ {
		a, b, c := indices[tri*3], indices[tri*3+1], indices[tri*3+2]
		assert.NotEqual(t, a, b)
		assert.NotEqual(t, b, c)
		assert.NotEqual(t, a, c)
	}
}
