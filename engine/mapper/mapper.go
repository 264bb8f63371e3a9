package mapper

import (
	"errors"
	"fmt"

	"texcube/common"
	"texcube/engine/geometry"
)

// MarkerCount is the fixed number of draggable control markers.
const MarkerCount = 7

// ErrInvalidImageBounds is returned when a drag arrives while the image has a
// zero dimension, which happens when the user drags before an image is ready.
// Callers absorb it as a no-op; it is expected, not exceptional.
var ErrInvalidImageBounds = errors.New("mapper: image has zero width or height")

// Marker is one draggable control point. Its position is stored as fractions of
// the loaded image's bounding box, so marker state survives image replacement.
type Marker struct {
	// ID is the marker slot index in [0, MarkerCount).
	ID int
	// FractionX is the horizontal position relative to the image width, in [0, 1].
	FractionX float32
	// FractionY is the vertical position relative to the image height, in [0, 1].
	FractionY float32
}

// vertexMarkerBinding is the fixed cube-net topology: vertex i's texture
// coordinate is always marker vertexMarkerBinding[i]'s fraction pair.
// Vertex 7 shares marker 0 so the unfolded net's seam stays continuous.
var vertexMarkerBinding = [geometry.CubeVertexCount]int{0, 1, 2, 3, 4, 5, 6, 0}

// defaultMarkerFractions places the markers in a cube-net starting layout:
// markers 0-3 frame an inner quad for the front face, markers 4-6 sit on the
// outer corners for the unfolded back faces.
var defaultMarkerFractions = [MarkerCount][2]float32{
	{0.25, 0.25},
	{0.75, 0.25},
	{0.75, 0.75},
	{0.25, 0.75},
	{0.0, 0.0},
	{1.0, 0.0},
	{1.0, 1.0},
}

// mapper is the implementation of the Mapper interface.
type mapper struct {
	markers [MarkerCount]Marker
}

// Mapper translates marker drag events into normalized image-space fractions and
// derives the full per-vertex texture coordinate buffer from the marker set and
// the fixed cube-net topology. The buffer is always a pure function of the
// current markers; it carries no history.
type Mapper interface {
	// Markers retrieves a copy of all markers in slot order.
	//
	// Returns:
	//   - []Marker: the current markers
	Markers() []Marker

	// Marker retrieves the marker with the given ID.
	//
	// Parameters:
	//   - id: the marker slot index
	//
	// Returns:
	//   - Marker: the marker, zero-valued when the ID is out of range
	//   - bool: true if the ID is valid
	Marker(id int) (Marker, bool)

	// OnMarkerDrag clamps the pointer position to the image bounding box, stores
	// the resulting fractions on the dragged marker, and re-derives the full
	// texture coordinate buffer. All other markers are unchanged.
	//
	// A zero image dimension rejects the update with ErrInvalidImageBounds and
	// leaves the marker set untouched; no division is performed.
	//
	// Parameters:
	//   - markerID: the marker slot being dragged
	//   - pointerImageX: the pointer's X position in image pixels
	//   - pointerImageY: the pointer's Y position in image pixels
	//   - imageWidth: the loaded image width in pixels
	//   - imageHeight: the loaded image height in pixels
	//
	// Returns:
	//   - []float32: the re-derived texture coordinate buffer (2 floats per vertex)
	//   - error: ErrInvalidImageBounds on a zero-size image, or an error for an unknown marker ID
	OnMarkerDrag(markerID int, pointerImageX, pointerImageY float32, imageWidth, imageHeight int) ([]float32, error)

	// TexCoords derives the texture coordinate buffer for all vertices from the
	// current marker set via the fixed cube-net topology.
	//
	// Returns:
	//   - []float32: the texture coordinate buffer (2 floats per vertex)
	TexCoords() []float32

	// Reset restores every marker to its default cube-net layout position.
	Reset()
}

var _ Mapper = &mapper{}

// NewMapper creates a Mapper with all markers at their default cube-net layout
// positions, then applies the provided options.
//
// Parameters:
//   - options: a variadic list of MapperBuilderOption functions to configure the Mapper
//
// Returns:
//   - Mapper: a new Mapper instance
func NewMapper(options ...MapperBuilderOption) Mapper {
	m := &mapper{}
	m.Reset()
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *mapper) Markers() []Marker {
	out := make([]Marker, MarkerCount)
	copy(out, m.markers[:])
	return out
}

func (m *mapper) Marker(id int) (Marker, bool) {
	if id < 0 || id >= MarkerCount {
		return Marker{}, false
	}
	return m.markers[id], true
}

func (m *mapper) OnMarkerDrag(markerID int, pointerImageX, pointerImageY float32, imageWidth, imageHeight int) ([]float32, error) {
	if markerID < 0 || markerID >= MarkerCount {
		return nil, fmt.Errorf("mapper: unknown marker id %d", markerID)
	}
	if imageWidth <= 0 || imageHeight <= 0 {
		return nil, ErrInvalidImageBounds
	}

	clampedX := common.Clamp(pointerImageX, 0, float32(imageWidth))
	clampedY := common.Clamp(pointerImageY, 0, float32(imageHeight))

	m.markers[markerID].FractionX = clampedX / float32(imageWidth)
	m.markers[markerID].FractionY = clampedY / float32(imageHeight)

	return m.TexCoords(), nil
}

func (m *mapper) TexCoords() []float32 {
	out := make([]float32, geometry.CubeTexCoordCount)
	for v, slot := range vertexMarkerBinding {
		out[v*2] = m.markers[slot].FractionX
		out[v*2+1] = m.markers[slot].FractionY
	}
	return out
}

func (m *mapper) Reset() {
	for i := range m.markers {
		m.markers[i] = Marker{
			ID:        i,
			FractionX: defaultMarkerFractions[i][0],
			FractionY: defaultMarkerFractions[i][1],
		}
	}
}
