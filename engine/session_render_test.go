package engine

import (
	"testing"

	"texcube/engine/renderer"
	"texcube/engine/window"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const drawTestVertexSource = `
struct Transforms {
    model: mat4x4<f32>,
    projection: mat4x4<f32>,
};

@group(0) @binding(0) var<uniform> transforms: Transforms;

struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) tex_coord: vec2<f32>,
};

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) tex_coord: vec2<f32>,
};

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = transforms.projection * transforms.model * vec4<f32>(in.position, 1.0);
    out.tex_coord = in.tex_coord;
    return out;
}
`

const drawTestFragmentSource = `
@group(1) @binding(0) var cube_texture: texture_2d<f32>;
@group(1) @binding(1) var cube_sampler: sampler;

struct FragmentInput {
    @location(0) tex_coord: vec2<f32>,
};

@fragment
fn fs_main(in: FragmentInput) -> @location(0) vec4<f32> {
    return textureSample(cube_texture, cube_sampler, in.tex_coord);
}
`

// newPlaceholderSession spins up a real window and a fully initialized session
// for draw tests, skipping when the host has no display or GPU adapter.
func newPlaceholderSession(t *testing.T) *session {
	t.Helper()

	var s Session
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("no display or GPU adapter available: %v", r)
			}
		}()
		win := window.NewWindow(
			window.WithTitle("placeholder draw test"),
			window.WithWidth(320),
			window.WithHeight(240),
		)
		s = NewSession(
			WithWindow(win),
			WithShaderSources(drawTestVertexSource, drawTestFragmentSource),
			WithMSAA(renderer.MSAAOff),
		)
		t.Cleanup(s.Quit)
		if err := s.Init(); err != nil {
			t.Fatalf("session init failed: %v", err)
		}
	}()
	return s.(*session)
}

func TestInit_DrawsPlaceholderFrameBeforeAnyImage(t *testing.T) {
	s := newPlaceholderSession(t)

	assert.Equal(t, SessionStatePlaceholder, s.state)
	assert.False(t, s.textures.HasUserImage())
	require.True(t, s.dirty)

	s.drawFrame()

	// A platform draw failure closes the window; a successful frame clears the
	// dirty flag with the window still running.
	assert.False(t, s.dirty)
	assert.True(t, s.window.IsRunning())
}
