package mapper

import (
	"testing"

	"texcube/engine/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnMarkerDrag_StoresExactFractions(t *testing.T) {
	m := NewMapper()

	tc, err := m.OnMarkerDrag(0, 100, 300, 400, 400)
	require.NoError(t, err)

	marker, ok := m.Marker(0)
	require.True(t, ok)
	assert.Equal(t, float32(0.25), marker.FractionX)
	assert.Equal(t, float32(0.75), marker.FractionY)

	// Vertex 0 and vertex 7 are both bound to marker 0.
	assert.Equal(t, float32(0.25), tc[0])
	assert.Equal(t, float32(0.75), tc[1])
	assert.Equal(t, float32(0.25), tc[14])
	assert.Equal(t, float32(0.75), tc[15])
}

func TestOnMarkerDrag_ClampsToImageBounds(t *testing.T) {
	m := NewMapper()

	_, err := m.OnMarkerDrag(2, 500, 500, 400, 400)
	require.NoError(t, err)

	marker, _ := m.Marker(2)
	assert.Equal(t, float32(1.0), marker.FractionX)
	assert.Equal(t, float32(1.0), marker.FractionY)

	_, err = m.OnMarkerDrag(2, -50, -10, 400, 400)
	require.NoError(t, err)

	marker, _ = m.Marker(2)
	assert.Equal(t, float32(0.0), marker.FractionX)
	assert.Equal(t, float32(0.0), marker.FractionY)
}

func TestOnMarkerDrag_ZeroSizeImageIsNoOp(t *testing.T) {
	m := NewMapper()
	before := m.TexCoords()

	tc, err := m.OnMarkerDrag(1, 10, 10, 0, 400)
	assert.ErrorIs(t, err, ErrInvalidImageBounds)
	assert.Nil(t, tc)

	tc, err = m.OnMarkerDrag(1, 10, 10, 400, 0)
	assert.ErrorIs(t, err, ErrInvalidImageBounds)
	assert.Nil(t, tc)

	assert.Equal(t, before, m.TexCoords())
}

func TestOnMarkerDrag_UnknownMarker(t *testing.T) {
	m := NewMapper()

	_, err := m.OnMarkerDrag(MarkerCount, 10, 10, 400, 400)
	assert.Error(t, err)

	_, err = m.OnMarkerDrag(-1, 10, 10, 400, 400)
	assert.Error(t, err)
}

func TestOnMarkerDrag_Idempotent(t *testing.T) {
	m := NewMapper()

	first, err := m.OnMarkerDrag(3, 123, 77, 640, 480)
	require.NoError(t, err)
	second, err := m.OnMarkerDrag(3, 123, 77, 640, 480)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTexCoords_InUnitSquare(t *testing.T) {
	m := NewMapper()

	// Drag every marker somewhere, including out-of-bounds positions.
	points := [MarkerCount][2]float32{
		{-10, -10}, {50, 400}, {800, 0}, {320, 240}, {0, 600}, {640, 480}, {1, 1},
	}
	for id, p := range points {
		_, err := m.OnMarkerDrag(id, p[0], p[1], 640, 480)
		require.NoError(t, err)
	}

	for _, v := range m.TexCoords() {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestTexCoords_TopologyInvariant(t *testing.T) {
	m := NewMapper()

	for id := 0; id < MarkerCount; id++ {
		_, err := m.OnMarkerDrag(id, float32(id*37%400), float32(id*53%400), 400, 400)
		require.NoError(t, err)
	}

	tc := m.TexCoords()
	require.Len(t, tc, geometry.CubeTexCoordCount)

	markers := m.Markers()
	for v, slot := range vertexMarkerBinding {
		assert.Equal(t, markers[slot].FractionX, tc[v*2], "vertex %d x", v)
		assert.Equal(t, markers[slot].FractionY, tc[v*2+1], "vertex %d y", v)
	}
}

func TestReset_RestoresDefaults(t *testing.T) {
	m := NewMapper()
	defaults := m.TexCoords()

	_, err := m.OnMarkerDrag(0, 400, 400, 400, 400)
	require.NoError(t, err)
	assert.NotEqual(t, defaults, m.TexCoords())

	m.Reset()
	assert.Equal(t, defaults, m.TexCoords())
}

func TestWithMarkerFractions(t *testing.T) {
	m := NewMapper(WithMarkerFractions(4, 0.5, 1.5))

	marker, ok := m.Marker(4)
	require.True(t, ok)
	assert.Equal(t, float32(0.5), marker.FractionX)
	assert.Equal(t, float32(1.0), marker.FractionY)
}

func TestInteractionState(t *testing.T) {
	s := NewInteractionState()
	assert.False(t, s.Dragging)
	assert.Equal(t, NoActiveMarker, s.ActiveMarker)

	s.Begin(3)
	assert.True(t, s.Dragging)
	assert.Equal(t, 3, s.ActiveMarker)

	s.End()
	assert.False(t, s.Dragging)
	assert.Equal(t, NoActiveMarker, s.ActiveMarker)

	s.Begin(MarkerCount)
	assert.False(t, s.Dragging)
}
