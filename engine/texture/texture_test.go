package texture

import (
	"errors"
	"testing"

	"texcube/common"
	"texcube/engine/renderer"
	"texcube/engine/renderer/bind_group_provider"
	"texcube/engine/renderer/pipeline"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRenderer satisfies renderer.Renderer without a GPU, recording the
// order of resource staging calls so init sequencing can be asserted.
type recordingRenderer struct {
	calls       []string
	lastStaging common.TextureStagingData
	lastSampler common.SamplerStagingData
}

var _ renderer.Renderer = &recordingRenderer{}

func (r *recordingRenderer) InitTextureView(_ bind_group_provider.BindGroupProvider, _, _ int, staging common.TextureStagingData) error {
	r.calls = append(r.calls, "texture")
	r.lastStaging = staging
	return nil
}

func (r *recordingRenderer) InitSampler(_ bind_group_provider.BindGroupProvider, _, _ int, sampler common.SamplerStagingData) error {
	r.calls = append(r.calls, "sampler")
	r.lastSampler = sampler
	return nil
}

func (r *recordingRenderer) InitBindGroup(_ bind_group_provider.BindGroupProvider, _ int, _ wgpu.BindGroupLayoutDescriptor, _ map[int]uint64) error {
	r.calls = append(r.calls, "bind group")
	return nil
}

func (r *recordingRenderer) InitGeometryBuffers(_ bind_group_provider.BindGroupProvider, _, _, _ []byte, _ int) error {
	return nil
}

func (r *recordingRenderer) DrawCall(string, bind_group_provider.BindGroupProvider) error {
	return nil
}

func (r *recordingRenderer) WriteTexCoordBuffer(bind_group_provider.BindGroupProvider, []byte) {}

func (r *recordingRenderer) Pipeline(string) pipeline.Pipeline            { return nil }
func (r *recordingRenderer) Pipelines() map[string]pipeline.Pipeline      { return nil }
func (r *recordingRenderer) RegisterPipelines(...pipeline.Pipeline) error { return nil }
func (r *recordingRenderer) SetPipeline(string, pipeline.Pipeline)        {}
func (r *recordingRenderer) Resize(int, int)                              {}

func (r *recordingRenderer) WriteBuffers([]bind_group_provider.BufferWrite) {}
func (r *recordingRenderer) BeginFrame() error                              { return nil }
func (r *recordingRenderer) EndFrame()                                      {}
func (r *recordingRenderer) Present()                                       {}
func (r *recordingRenderer) SetPresentMode(renderer.PresentMode)            {}

func TestInitPlaceholder_RequiresProvider(t *testing.T) {
	m := NewManager()

	err := m.InitPlaceholder(nil)
	assert.Error(t, err)
	assert.False(t, m.HasUserImage())
}

func TestInitPlaceholder_StagesTextureSamplerThenBindGroup(t *testing.T) {
	rec := &recordingRenderer{}
	m := NewManager(WithProvider(bind_group_provider.NewBindGroupProvider("cube")))

	require.NoError(t, m.InitPlaceholder(rec))

	// The bind group can only reference resources staged before it, so the
	// placeholder texture and sampler must both precede it. After this
	// sequence the binding is drawable with no image loaded yet.
	assert.Equal(t, []string{"texture", "sampler", "bind group"}, rec.calls)

	assert.Equal(t, uint32(1), rec.lastStaging.Width)
	assert.Equal(t, uint32(1), rec.lastStaging.Height)
	assert.Equal(t, []byte{0x80, 0x80, 0x80, 0xFF}, rec.lastStaging.Pixels)

	// Non-power-of-two user images need clamp-to-edge with linear filtering.
	assert.Equal(t, wgpu.AddressModeClampToEdge, rec.lastSampler.AddressModeU)
	assert.Equal(t, wgpu.AddressModeClampToEdge, rec.lastSampler.AddressModeV)
	assert.Equal(t, wgpu.FilterModeLinear, rec.lastSampler.MagFilter)
	assert.Equal(t, wgpu.FilterModeLinear, rec.lastSampler.MinFilter)

	w, h := m.ImageSize()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
	assert.False(t, m.HasUserImage())
}

func TestReplaceWithImage_RestagesTextureAndBindGroupOnly(t *testing.T) {
	rec := &recordingRenderer{}
	m := NewManager(WithProvider(bind_group_provider.NewBindGroupProvider("cube")))
	require.NoError(t, m.InitPlaceholder(rec))
	rec.calls = nil

	staging := common.TextureStagingData{Pixels: make([]byte, 2*2*4), Width: 2, Height: 2}
	require.NoError(t, m.ReplaceWithImage(rec, staging))

	// The sampler survives the swap; only the texture and its bind group are rebuilt.
	assert.Equal(t, []string{"texture", "bind group"}, rec.calls)

	w, h := m.ImageSize()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.True(t, m.HasUserImage())
}

func TestReplaceWithImage_RejectsEmptyStaging(t *testing.T) {
	m := NewManager()

	err := m.ReplaceWithImage(nil, common.TextureStagingData{})
	assert.Error(t, err)

	err = m.ReplaceWithImage(nil, common.TextureStagingData{Width: 2, Height: 2})
	assert.Error(t, err)
}

func TestManager_Defaults(t *testing.T) {
	m := NewManager()

	w, h := m.ImageSize()
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)
	assert.False(t, m.HasUserImage())
	assert.Nil(t, m.Provider())
}

func TestDecodeError(t *testing.T) {
	cause := errors.New("image: unknown format")
	err := &DecodeError{Name: "photo.bmp", Err: cause}

	assert.Contains(t, err.Error(), "photo.bmp")
	assert.ErrorIs(t, err, cause)
}

func TestSourceImage_DecodeFailure(t *testing.T) {
	img := &common.SourceImage{Name: "garbage.png", Data: []byte("not an image")}

	_, _, _, err := img.Decode()
	assert.Error(t, err)
}
