package geometry

import (
	"texcube/engine/renderer/bind_group_provider"
)

// MeshBuilderOption is a functional option for configuring a Mesh via NewCubeMesh.
type MeshBuilderOption func(*mesh)

// WithName is an option builder that sets the name of the Mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithProvider is an option builder that sets the BindGroupProvider for mesh GPU resources.
//
// Parameters:
//   - provider: the BindGroupProvider holding geometry buffers and bind group data
//
// Returns:
//   - MeshBuilderOption: a function that applies the provider option to a mesh
func WithProvider(provider bind_group_provider.BindGroupProvider) MeshBuilderOption {
	return func(m *mesh) {
		m.provider = provider
	}
}

// WithTexCoords is an option builder that sets the initial texture coordinates of the Mesh.
// Slices of the wrong length are ignored; use UpdateTexCoords for validated updates.
//
// Parameters:
//   - texCoords: the initial texture coordinates, 2 floats per vertex
//
// Returns:
//   - MeshBuilderOption: a function that applies the texture coordinate option to a mesh
func WithTexCoords(texCoords []float32) MeshBuilderOption {
	return func(m *mesh) {
		if len(texCoords) == CubeTexCoordCount {
			copy(m.texCoords[:], texCoords)
		}
	}
}
