package texture

import (
	"texcube/engine/renderer/bind_group_provider"

	"github.com/cogentcore/webgpu/wgpu"
)

// ManagerBuilderOption is a function that configures a texture manager during construction.
type ManagerBuilderOption func(*manager)

// WithProvider is an option builder that sets the BindGroupProvider holding the
// texture and sampler resources.
//
// Parameters:
//   - provider: the provider to manage texture resources on
//
// Returns:
//   - ManagerBuilderOption: a function that applies the provider option to a manager
func WithProvider(provider bind_group_provider.BindGroupProvider) ManagerBuilderOption {
	return func(m *manager) {
		m.provider = provider
	}
}

// WithTextureBinding is an option builder that sets the (group, binding) indices
// of the sampled texture in the fragment shader.
//
// Parameters:
//   - group: the bind group index
//   - binding: the binding index within the group
//
// Returns:
//   - ManagerBuilderOption: a function that applies the texture binding option to a manager
func WithTextureBinding(group, binding int) ManagerBuilderOption {
	return func(m *manager) {
		m.group = group
		m.textureBinding = binding
	}
}

// WithSamplerBinding is an option builder that sets the binding index of the
// sampler within the texture's bind group.
//
// Parameters:
//   - binding: the binding index within the group
//
// Returns:
//   - ManagerBuilderOption: a function that applies the sampler binding option to a manager
func WithSamplerBinding(binding int) ManagerBuilderOption {
	return func(m *manager) {
		m.samplerBinding = binding
	}
}

// WithLayoutDescriptor is an option builder that sets the fragment bind group
// layout descriptor, used to rebuild the bind group after a texture swap.
//
// Parameters:
//   - descriptor: the bind group layout descriptor for the texture's group
//
// Returns:
//   - ManagerBuilderOption: a function that applies the layout option to a manager
func WithLayoutDescriptor(descriptor wgpu.BindGroupLayoutDescriptor) ManagerBuilderOption {
	return func(m *manager) {
		m.layoutDescriptor = descriptor
	}
}
