package geometry

import (
	"fmt"

	"texcube/common"
	"texcube/engine/renderer/bind_group_provider"
)

const (
	// CubeVertexCount is the number of shared vertices in the cube mesh.
	CubeVertexCount = 8

	// CubeIndexCount is the number of indices in the cube mesh (12 triangles).
	CubeIndexCount = 36

	// CubeTexCoordCount is the number of texture coordinate floats (2 per vertex).
	CubeTexCoordCount = CubeVertexCount * 2
)

// cubePositions holds the 8 corner positions of a unit cube centered at the origin,
// 3 floats per vertex. Vertices 0-3 are the front face (z = +0.5) in counter-clockwise
// order starting bottom-left; vertices 4-7 are the back face (z = -0.5) in matching order.
var cubePositions = [CubeVertexCount * 3]float32{
	-0.5, -0.5, 0.5, // 0: front bottom-left
	0.5, -0.5, 0.5, // 1: front bottom-right
	0.5, 0.5, 0.5, // 2: front top-right
	-0.5, 0.5, 0.5, // 3: front top-left
	-0.5, -0.5, -0.5, // 4: back bottom-left
	0.5, -0.5, -0.5, // 5: back bottom-right
	0.5, 0.5, -0.5, // 6: back top-right
	-0.5, 0.5, -0.5, // 7: back top-left
}

// cubeIndices holds the 36 indices forming the cube's 12 triangles over the 8 shared
// vertices, wound counter-clockwise when viewed from outside.
var cubeIndices = [CubeIndexCount]uint16{
	0, 1, 2, 0, 2, 3, // front
	1, 5, 6, 1, 6, 2, // right
	5, 4, 7, 5, 7, 6, // back
	4, 0, 3, 4, 3, 7, // left
	3, 2, 6, 3, 6, 7, // top
	4, 5, 1, 4, 1, 0, // bottom
}

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name      string
	positions [CubeVertexCount * 3]float32
	texCoords [CubeTexCoordCount]float32
	indices   [CubeIndexCount]uint16
	provider  bind_group_provider.BindGroupProvider
}

// Mesh defines the interface for the demo's cube mesh. The positions and indices are
// fixed for the mesh's lifetime; the texture coordinate stream is the only mutable
// attribute and is replaced wholesale through UpdateTexCoords.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Positions retrieves the vertex positions, 3 floats per vertex.
	//
	// Returns:
	//   - []float32: the vertex positions
	Positions() []float32

	// TexCoords retrieves the current texture coordinates, 2 floats per vertex.
	// The returned slice is a copy; mutate coordinates via UpdateTexCoords only.
	//
	// Returns:
	//   - []float32: the texture coordinates
	TexCoords() []float32

	// Indices retrieves the triangle indices.
	//
	// Returns:
	//   - []uint16: the triangle indices
	Indices() []uint16

	// PositionBytes returns the raw vertex position bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the position data
	PositionBytes() []byte

	// TexCoordBytes returns the raw texture coordinate bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the texture coordinate data
	TexCoordBytes() []byte

	// IndexBytes returns the raw 16-bit index bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the index data
	IndexBytes() []byte

	// IndexCount returns the number of indices for draw calls.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// UpdateTexCoords replaces the full texture coordinate stream. This is the sole
	// mutation path for the mesh; partial updates are not supported because every
	// marker drag re-derives all coordinates from the marker set.
	//
	// Parameters:
	//   - texCoords: the new texture coordinates, exactly 2 floats per vertex
	//
	// Returns:
	//   - error: an error if the slice length does not match the vertex count
	UpdateTexCoords(texCoords []float32) error

	// Provider retrieves the BindGroupProvider holding this mesh's GPU resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider, or nil if not set
	Provider() bind_group_provider.BindGroupProvider

	// SetProvider assigns the BindGroupProvider holding this mesh's GPU resources.
	//
	// Parameters:
	//   - provider: the provider to associate
	SetProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Mesh = &mesh{}

// NewCubeMesh creates the demo's cube mesh with the fixed position and index data
// and the specified options applied. Texture coordinates start zeroed and are
// populated via UpdateTexCoords.
//
// Parameters:
//   - options: a variadic list of MeshBuilderOption functions to configure the Mesh
//
// Returns:
//   - Mesh: a new cube Mesh configured with the provided options
func NewCubeMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{
		name:      "cube",
		positions: cubePositions,
		indices:   cubeIndices,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Positions() []float32 {
	return m.positions[:]
}

func (m *mesh) TexCoords() []float32 {
	out := make([]float32, CubeTexCoordCount)
	copy(out, m.texCoords[:])
	return out
}

func (m *mesh) Indices() []uint16 {
	return m.indices[:]
}

func (m *mesh) PositionBytes() []byte {
	return common.SliceToBytes(m.positions[:])
}

func (m *mesh) TexCoordBytes() []byte {
	return common.SliceToBytes(m.texCoords[:])
}

func (m *mesh) IndexBytes() []byte {
	return common.SliceToBytes(m.indices[:])
}

func (m *mesh) IndexCount() int {
	return CubeIndexCount
}

func (m *mesh) UpdateTexCoords(texCoords []float32) error {
	if len(texCoords) != CubeTexCoordCount {
		return fmt.Errorf("geometry: expected %d texture coordinates, got %d", CubeTexCoordCount, len(texCoords))
	}
	copy(m.texCoords[:], texCoords)
	return nil
}

func (m *mesh) Provider() bind_group_provider.BindGroupProvider {
	return m.provider
}

func (m *mesh) SetProvider(provider bind_group_provider.BindGroupProvider) {
	m.provider = provider
}
