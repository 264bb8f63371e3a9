package bind_group_provider

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// bindGroupProvider is the unexported implementation of BindGroupProvider.
type bindGroupProvider struct {
	// label is a debug label added for convenience.
	label string

	// The following fields are GPU allocated resources and must be released when no longer needed. They are populated by the Renderer during initialization, not by user-creation.

	// bindGroups holds the GPU bind groups created for this provider, keyed by group index.
	bindGroups map[int]*wgpu.BindGroup
	// bindGroupLayouts holds the GPU bind group layouts created for this provider, keyed by group index.
	bindGroupLayouts map[int]*wgpu.BindGroupLayout
	// buffers holds the GPU uniform buffers created for this provider, keyed by (group, binding) index.
	buffers map[int]map[int]*wgpu.Buffer
	// textureViews holds the GPU texture views created for this provider, keyed by (group, binding) index.
	textureViews map[int]map[int]*wgpu.TextureView
	// textures holds the GPU textures backing the texture views, keyed by (group, binding) index.
	textures map[int]map[int]*wgpu.Texture
	// samplers holds the GPU samplers created for this provider, keyed by (group, binding) index.
	samplers map[int]map[int]*wgpu.Sampler

	// The following fields hold the geometry streams. Positions and texture coordinates
	// live in separate buffers so the coordinate stream can be rewritten wholesale on every
	// marker drag without touching the static position data.

	// positionBuffer is the GPU vertex position buffer, or nil if not initialized with the Renderer.
	positionBuffer *wgpu.Buffer
	// texCoordBuffer is the GPU texture coordinate buffer, or nil if not initialized with the Renderer.
	texCoordBuffer *wgpu.Buffer
	// indexBuffer is the GPU index buffer, or nil if not initialized with the Renderer.
	indexBuffer *wgpu.Buffer
	// indexCount is the number of indices for draw calls, used by the Renderer to issue drawIndexed calls for this provider.
	indexCount int
}

// BindGroupProvider defines the interface for components that require GPU bind group
// resources. The cube mesh holds one provider describing its uniform, texture, and
// sampler bindings plus its geometry streams. The Renderer uses the provider to
// initialize and update GPU resources.
//
// Usage pattern:
//  1. Component creates a BindGroupProvider with a label
//  2. Renderer.InitGeometryBuffers uploads the position/texcoord/index streams
//  3. Renderer.InitTextureView / InitSampler stage the texture bindings
//  4. Renderer.InitBindGroup(provider, ...) creates the GPU bind groups
//  5. Component hands the provider to Renderer.DrawCall for rendering
type BindGroupProvider interface {
	// Release releases all GPU resources held by this provider and clears the
	// maps they belonged to.
	Release()

	// Label returns the debug label for this provider.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// BindGroup returns the created bind group for a group index, or nil if GPU
	// resources have not been initialized.
	//
	// Parameters:
	//   - group: the bind group index
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group or nil
	BindGroup(group int) *wgpu.BindGroup

	// BindGroups returns all bind groups keyed by group index.
	//
	// Returns:
	//   - map[int]*wgpu.BindGroup: bind groups keyed by group index
	BindGroups() map[int]*wgpu.BindGroup

	// BindGroupLayout returns the created bind group layout for a group index, or nil
	// if GPU resources have not been initialized.
	//
	// Parameters:
	//   - group: the bind group index
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the bind group layout or nil
	BindGroupLayout(group int) *wgpu.BindGroupLayout

	// Buffer returns the uniform buffer at a (group, binding) index, or nil if not set.
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	Buffer(group, binding int) *wgpu.Buffer

	// Buffers returns all uniform buffers keyed by group and binding index.
	//
	// Returns:
	//   - map[int]map[int]*wgpu.Buffer: buffers keyed by group and binding index
	Buffers() map[int]map[int]*wgpu.Buffer

	// TextureView returns the GPU texture view at a (group, binding) index, or nil if not set.
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//
	// Returns:
	//   - *wgpu.TextureView: the texture view or nil
	TextureView(group, binding int) *wgpu.TextureView

	// Texture returns the GPU texture backing the view at a (group, binding) index, or nil if not set.
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//
	// Returns:
	//   - *wgpu.Texture: the texture or nil
	Texture(group, binding int) *wgpu.Texture

	// Sampler returns the GPU sampler at a (group, binding) index, or nil if not set.
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//
	// Returns:
	//   - *wgpu.Sampler: the sampler or nil
	Sampler(group, binding int) *wgpu.Sampler

	// PositionBuffer returns the GPU vertex position buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the position buffer or nil
	PositionBuffer() *wgpu.Buffer

	// TexCoordBuffer returns the GPU texture coordinate buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the texture coordinate buffer or nil
	TexCoordBuffer() *wgpu.Buffer

	// IndexBuffer returns the GPU index buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the index buffer or nil
	IndexBuffer() *wgpu.Buffer

	// IndexCount returns the number of indices for draw calls.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// SetBindGroup stores a bind group for a group index after GPU initialization.
	// Called by Renderer.InitBindGroup(). Replacing an existing bind group releases
	// the previous one.
	//
	// Parameters:
	//   - group: the bind group index
	//   - bg: the created bind group
	SetBindGroup(group int, bg *wgpu.BindGroup)

	// SetBindGroupLayout stores a bind group layout for a group index after GPU initialization.
	// Called by Renderer.InitBindGroup().
	//
	// Parameters:
	//   - group: the bind group index
	//   - bgl: the created bind group layout
	SetBindGroupLayout(group int, bgl *wgpu.BindGroupLayout)

	// SetBuffer stores a uniform buffer at a (group, binding) index after GPU initialization.
	// Called by Renderer.InitBindGroup().
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//   - buf: the created buffer
	SetBuffer(group, binding int, buf *wgpu.Buffer)

	// SetTextureView stores a GPU texture and its view at a (group, binding) index.
	// Replacing an existing entry releases the previous view and texture, so the
	// placeholder can be swapped for a user image without leaking GPU memory.
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//   - tex: the texture backing the view
	//   - tv: the texture view to store
	SetTextureView(group, binding int, tex *wgpu.Texture, tv *wgpu.TextureView)

	// SetSampler stores a GPU sampler at a (group, binding) index.
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//   - s: the sampler to store
	SetSampler(group, binding int, s *wgpu.Sampler)

	// SetPositionBuffer stores the GPU position buffer after creation by InitGeometryBuffers.
	//
	// Parameters:
	//   - buf: the created position buffer
	SetPositionBuffer(buf *wgpu.Buffer)

	// SetTexCoordBuffer stores the GPU texture coordinate buffer after creation by InitGeometryBuffers.
	//
	// Parameters:
	//   - buf: the created texture coordinate buffer
	SetTexCoordBuffer(buf *wgpu.Buffer)

	// SetIndexBuffer stores the GPU index buffer after creation by InitGeometryBuffers.
	//
	// Parameters:
	//   - buf: the created index buffer
	SetIndexBuffer(buf *wgpu.Buffer)

	// SetIndexCount sets the number of indices for draw calls.
	//
	// Parameters:
	//   - count: the index count
	SetIndexCount(count int)
}

// Compile-time check that bindGroupProvider implements BindGroupProvider
var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates a new BindGroupProvider with the provided options.
//
// Parameters:
//   - label: a debug label for the provider
//   - options: a variadic list of options to configure the provider
//
// Returns:
//   - BindGroupProvider: a new instance of BindGroupProvider configured with the provided options
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label:            label,
		bindGroups:       make(map[int]*wgpu.BindGroup),
		bindGroupLayouts: make(map[int]*wgpu.BindGroupLayout),
		buffers:          make(map[int]map[int]*wgpu.Buffer),
		textureViews:     make(map[int]map[int]*wgpu.TextureView),
		textures:         make(map[int]map[int]*wgpu.Texture),
		samplers:         make(map[int]map[int]*wgpu.Sampler),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) BindGroup(group int) *wgpu.BindGroup {
	return p.bindGroups[group]
}

func (p *bindGroupProvider) BindGroups() map[int]*wgpu.BindGroup {
	return p.bindGroups
}

func (p *bindGroupProvider) BindGroupLayout(group int) *wgpu.BindGroupLayout {
	return p.bindGroupLayouts[group]
}

func (p *bindGroupProvider) Buffer(group, binding int) *wgpu.Buffer {
	return p.buffers[group][binding]
}

func (p *bindGroupProvider) Buffers() map[int]map[int]*wgpu.Buffer {
	return p.buffers
}

func (p *bindGroupProvider) TextureView(group, binding int) *wgpu.TextureView {
	return p.textureViews[group][binding]
}

func (p *bindGroupProvider) Texture(group, binding int) *wgpu.Texture {
	return p.textures[group][binding]
}

func (p *bindGroupProvider) Sampler(group, binding int) *wgpu.Sampler {
	return p.samplers[group][binding]
}

func (p *bindGroupProvider) PositionBuffer() *wgpu.Buffer {
	return p.positionBuffer
}

func (p *bindGroupProvider) TexCoordBuffer() *wgpu.Buffer {
	return p.texCoordBuffer
}

func (p *bindGroupProvider) IndexBuffer() *wgpu.Buffer {
	return p.indexBuffer
}

func (p *bindGroupProvider) IndexCount() int {
	return p.indexCount
}

func (p *bindGroupProvider) SetBindGroup(group int, bg *wgpu.BindGroup) {
	if prev := p.bindGroups[group]; prev != nil && prev != bg {
		prev.Release()
	}
	p.bindGroups[group] = bg
}

func (p *bindGroupProvider) SetBindGroupLayout(group int, bgl *wgpu.BindGroupLayout) {
	p.bindGroupLayouts[group] = bgl
}

func (p *bindGroupProvider) SetBuffer(group, binding int, buf *wgpu.Buffer) {
	if p.buffers[group] == nil {
		p.buffers[group] = make(map[int]*wgpu.Buffer)
	}
	p.buffers[group][binding] = buf
}

func (p *bindGroupProvider) SetTextureView(group, binding int, tex *wgpu.Texture, tv *wgpu.TextureView) {
	if p.textureViews[group] == nil {
		p.textureViews[group] = make(map[int]*wgpu.TextureView)
	}
	if p.textures[group] == nil {
		p.textures[group] = make(map[int]*wgpu.Texture)
	}
	if prev := p.textureViews[group][binding]; prev != nil && prev != tv {
		prev.Release()
	}
	if prev := p.textures[group][binding]; prev != nil && prev != tex {
		prev.Release()
	}
	p.textureViews[group][binding] = tv
	p.textures[group][binding] = tex
}

func (p *bindGroupProvider) SetSampler(group, binding int, s *wgpu.Sampler) {
	if p.samplers[group] == nil {
		p.samplers[group] = make(map[int]*wgpu.Sampler)
	}
	p.samplers[group][binding] = s
}

func (p *bindGroupProvider) SetPositionBuffer(buf *wgpu.Buffer) {
	p.positionBuffer = buf
}

func (p *bindGroupProvider) SetTexCoordBuffer(buf *wgpu.Buffer) {
	p.texCoordBuffer = buf
}

func (p *bindGroupProvider) SetIndexBuffer(buf *wgpu.Buffer) {
	p.indexBuffer = buf
}

func (p *bindGroupProvider) SetIndexCount(count int) {
	p.indexCount = count
}

func (p *bindGroupProvider) Release() {
	for g, views := range p.textureViews {
		for i, tv := range views {
			if tv != nil {
				tv.Release()
			}
			delete(views, i)
		}
		delete(p.textureViews, g)
	}
	for g, texs := range p.textures {
		for i, tex := range texs {
			if tex != nil {
				tex.Release()
			}
			delete(texs, i)
		}
		delete(p.textures, g)
	}
	for g, samplers := range p.samplers {
		for i, s := range samplers {
			if s != nil {
				s.Release()
			}
			delete(samplers, i)
		}
		delete(p.samplers, g)
	}
	for g, bufs := range p.buffers {
		for i, buf := range bufs {
			if buf != nil {
				buf.Release()
			}
			delete(bufs, i)
		}
		delete(p.buffers, g)
	}
	for g, bg := range p.bindGroups {
		if bg != nil {
			bg.Release()
		}
		delete(p.bindGroups, g)
	}
	for g, bgl := range p.bindGroupLayouts {
		if bgl != nil {
			bgl.Release()
		}
		delete(p.bindGroupLayouts, g)
	}

	if p.positionBuffer != nil {
		p.positionBuffer.Release()
		p.positionBuffer = nil
	}
	if p.texCoordBuffer != nil {
		p.texCoordBuffer.Release()
		p.texCoordBuffer = nil
	}
	if p.indexBuffer != nil {
		p.indexBuffer.Release()
		p.indexBuffer = nil
	}
}
