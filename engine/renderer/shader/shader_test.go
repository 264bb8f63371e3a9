package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertexSource = `
// Cube vertex stage.
struct Transforms {
    model: mat4x4<f32>,
    projection: mat4x4<f32>,
}

struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) tex_coord: vec2<f32>,
}

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) frag_tex_coord: vec2<f32>,
}

@group(0) @binding(0) var<uniform> transforms: Transforms;

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = transforms.projection * transforms.model * vec4<f32>(in.position, 1.0);
    out.frag_tex_coord = in.tex_coord;
    return out;
}
`

const testFragmentSource = `
@group(1) @binding(0) var cube_texture: texture_2d<f32>;
@group(1) @binding(1) var cube_sampler: sampler;

@fragment
fn fs_main(@location(0) frag_tex_coord: vec2<f32>) -> @location(0) vec4<f32> {
    return textureSample(cube_texture, cube_sampler, frag_tex_coord);
}
`

func TestNewShader_PanicsOnEmptySource(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("empty", ShaderTypeVertex, "")
	})
}

func TestShader_EntryPoints(t *testing.T) {
	vs := NewShader("cube_vs", ShaderTypeVertex, testVertexSource)
	fs := NewShader("cube_fs", ShaderTypeFragment, testFragmentSource)

	assert.Equal(t, "vs_main", vs.EntryPoint())
	assert.Equal(t, "fs_main", fs.EntryPoint())
}

func TestShader_VertexLayouts_PerAttributeSlots(t *testing.T) {
	vs := NewShader("cube_vs", ShaderTypeVertex, testVertexSource)

	layouts := vs.VertexLayouts()
	require.Len(t, layouts, 2)

	// Slot 0: position, vec3<f32>.
	require.Len(t, layouts[0].Attributes, 1)
	assert.Equal(t, uint64(12), layouts[0].ArrayStride)
	assert.Equal(t, wgpu.VertexFormatFloat32x3, layouts[0].Attributes[0].Format)
	assert.Equal(t, uint32(0), layouts[0].Attributes[0].ShaderLocation)

	// Slot 1: tex_coord, vec2<f32>.
	require.Len(t, layouts[1].Attributes, 1)
	assert.Equal(t, uint64(8), layouts[1].ArrayStride)
	assert.Equal(t, wgpu.VertexFormatFloat32x2, layouts[1].Attributes[0].Format)
	assert.Equal(t, uint32(1), layouts[1].Attributes[0].ShaderLocation)
}

func TestShader_AttributeLocation(t *testing.T) {
	vs := NewShader("cube_vs", ShaderTypeVertex, testVertexSource)

	assert.Equal(t, 0, vs.AttributeLocation("position"))
	assert.Equal(t, 1, vs.AttributeLocation("tex_coord"))
	assert.Equal(t, UnresolvedLocation, vs.AttributeLocation("normal"))
}

func TestShader_UniformBinding(t *testing.T) {
	vs := NewShader("cube_vs", ShaderTypeVertex, testVertexSource)
	fs := NewShader("cube_fs", ShaderTypeFragment, testFragmentSource)

	group, binding := vs.UniformBinding("transforms")
	assert.Equal(t, 0, group)
	assert.Equal(t, 0, binding)

	group, binding = fs.UniformBinding("cube_sampler")
	assert.Equal(t, 1, group)
	assert.Equal(t, 1, binding)

	group, binding = vs.UniformBinding("missing")
	assert.Equal(t, UnresolvedLocation, group)
	assert.Equal(t, UnresolvedLocation, binding)
}

func TestShader_UniformMinBindingSize(t *testing.T) {
	vs := NewShader("cube_vs", ShaderTypeVertex, testVertexSource)

	desc := vs.BindGroupLayoutDescriptor(0)
	require.Len(t, desc.Entries, 1)

	entry := desc.Entries[0]
	assert.Equal(t, uint32(0), entry.Binding)
	assert.Equal(t, wgpu.BufferBindingTypeUniform, entry.Buffer.Type)
	// Two mat4x4<f32> fields pack to 128 bytes.
	assert.Equal(t, uint64(128), entry.Buffer.MinBindingSize)
	assert.Equal(t, wgpu.ShaderStageVertex, entry.Visibility)
}

func TestShader_FragmentBindGroupClassification(t *testing.T) {
	fs := NewShader("cube_fs", ShaderTypeFragment, testFragmentSource)

	desc := fs.BindGroupLayoutDescriptor(1)
	require.Len(t, desc.Entries, 2)

	tex := desc.Entries[0]
	assert.Equal(t, uint32(0), tex.Binding)
	assert.Equal(t, wgpu.TextureSampleTypeFloat, tex.Texture.SampleType)
	assert.Equal(t, wgpu.TextureViewDimension2D, tex.Texture.ViewDimension)

	samp := desc.Entries[1]
	assert.Equal(t, uint32(1), samp.Binding)
	assert.Equal(t, wgpu.SamplerBindingTypeFiltering, samp.Sampler.Type)

	names := fs.BindGroupVarNames()
	require.Contains(t, names, 1)
	assert.Equal(t, "cube_texture", names[1][0])
	assert.Equal(t, "cube_sampler", names[1][1])
}

func TestShader_FragmentHasNoVertexLayouts(t *testing.T) {
	fs := NewShader("cube_fs", ShaderTypeFragment, testFragmentSource)

	assert.Empty(t, fs.VertexLayouts())
	assert.Equal(t, UnresolvedLocation, fs.AttributeLocation("position"))
}

func TestStripComments(t *testing.T) {
	src := "a // line\n/* block /* nested */ still */ b\n"
	cleaned := stripComments(src)
	assert.Contains(t, cleaned, "a")
	assert.Contains(t, cleaned, "b")
	assert.NotContains(t, cleaned, "line")
	assert.NotContains(t, cleaned, "nested")
}
