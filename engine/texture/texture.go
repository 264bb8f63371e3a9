package texture

import (
	"errors"

	"texcube/common"
	"texcube/engine/renderer"
	"texcube/engine/renderer/bind_group_provider"

	"github.com/cogentcore/webgpu/wgpu"
)

// placeholderPixel is the single opaque mid-gray pixel uploaded before any user
// image exists, so the pipeline is always drawable.
var placeholderPixel = []byte{0x80, 0x80, 0x80, 0xFF}

// manager is the implementation of the Manager interface.
type manager struct {
	provider bind_group_provider.BindGroupProvider

	// group, textureBinding, and samplerBinding locate the texture resources in
	// the fragment shader's bind group layout.
	group          int
	textureBinding int
	samplerBinding int

	// layoutDescriptor is the fragment bind group layout, kept so the bind group
	// can be rebuilt after a texture swap.
	layoutDescriptor wgpu.BindGroupLayoutDescriptor

	// width and height describe the currently bound texture in pixels.
	width, height int

	hasUserImage bool
}

// Manager owns the demo's single GPU texture binding. It uploads a 1×1 placeholder
// immediately so the pipeline is renderable before any image finishes decoding,
// then replaces it wholesale with the user's image. The replacement swaps the GPU
// texture behind the same binding slot and rebuilds the bind group, so the
// provider's identity and the pipeline's layout are preserved across swaps.
type Manager interface {
	// Provider retrieves the BindGroupProvider holding the texture and sampler resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the provider
	Provider() bind_group_provider.BindGroupProvider

	// InitPlaceholder allocates the GPU texture with a single opaque pixel and a
	// clamp-to-edge linear sampler, then builds the bind group. After this call
	// the pipeline has a bindable texture regardless of image load progress.
	// Clamp-to-edge and linear filtering are required because a future user image
	// may be non-power-of-two sized.
	//
	// Parameters:
	//   - r: the renderer used to create GPU resources
	//
	// Returns:
	//   - error: an error if texture, sampler, or bind group creation fails
	InitPlaceholder(r renderer.Renderer) error

	// ReplaceWithImage uploads decoded RGBA pixels as a new GPU texture at the same
	// binding slot, releasing the previous texture, and rebuilds the bind group.
	// Must be invoked only after image decode completion. The caller triggers
	// exactly one redraw afterward.
	//
	// Parameters:
	//   - r: the renderer used to create GPU resources
	//   - staging: the decoded pixel data and dimensions
	//
	// Returns:
	//   - error: an error if the texture upload or bind group rebuild fails
	ReplaceWithImage(r renderer.Renderer, staging common.TextureStagingData) error

	// ImageSize retrieves the dimensions of the currently bound texture in pixels.
	// The placeholder reports 1×1.
	//
	// Returns:
	//   - int: the width in pixels
	//   - int: the height in pixels
	ImageSize() (int, int)

	// HasUserImage reports whether a user image has replaced the placeholder.
	//
	// Returns:
	//   - bool: true once ReplaceWithImage has succeeded at least once
	HasUserImage() bool
}

var _ Manager = &manager{}

// NewManager creates a texture Manager configured with the provided options.
// A provider and a fragment bind group layout must be supplied before
// InitPlaceholder is called.
//
// Parameters:
//   - options: variadic list of ManagerBuilderOption functions to configure the manager
//
// Returns:
//   - Manager: a new Manager instance
func NewManager(options ...ManagerBuilderOption) Manager {
	m := &manager{
		group:          1,
		textureBinding: 0,
		samplerBinding: 1,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *manager) Provider() bind_group_provider.BindGroupProvider {
	return m.provider
}

func (m *manager) InitPlaceholder(r renderer.Renderer) error {
	if m.provider == nil {
		return errors.New("texture: manager has no bind group provider")
	}

	staging := common.TextureStagingData{
		Pixels: placeholderPixel,
		Width:  1,
		Height: 1,
	}
	if err := r.InitTextureView(m.provider, m.group, m.textureBinding, staging); err != nil {
		return err
	}

	sampler := common.SamplerStagingData{
		AddressModeU: wgpu.AddressModeClampToEdge,
		AddressModeV: wgpu.AddressModeClampToEdge,
		AddressModeW: wgpu.AddressModeClampToEdge,
		MagFilter:    wgpu.FilterModeLinear,
		MinFilter:    wgpu.FilterModeLinear,
	}
	if err := r.InitSampler(m.provider, m.group, m.samplerBinding, sampler); err != nil {
		return err
	}

	if err := r.InitBindGroup(m.provider, m.group, m.layoutDescriptor, nil); err != nil {
		return err
	}

	m.width, m.height = 1, 1
	m.hasUserImage = false
	return nil
}

func (m *manager) ReplaceWithImage(r renderer.Renderer, staging common.TextureStagingData) error {
	if m.provider == nil {
		return errors.New("texture: manager has no bind group provider")
	}
	if staging.Width == 0 || staging.Height == 0 || len(staging.Pixels) == 0 {
		return errors.New("texture: staging data is empty")
	}

	// InitTextureView releases the previous texture at this binding, then the
	// rebuilt bind group makes the new view visible to subsequent draws. The
	// sampler is reused as-is.
	if err := r.InitTextureView(m.provider, m.group, m.textureBinding, staging); err != nil {
		return err
	}
	if err := r.InitBindGroup(m.provider, m.group, m.layoutDescriptor, nil); err != nil {
		return err
	}

	m.width, m.height = int(staging.Width), int(staging.Height)
	m.hasUserImage = true
	return nil
}

func (m *manager) ImageSize() (int, int) {
	return m.width, m.height
}

func (m *manager) HasUserImage() bool {
	return m.hasUserImage
}
