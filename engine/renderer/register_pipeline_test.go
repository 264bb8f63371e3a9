package renderer

import (
	"testing"

	"texcube/engine/renderer/pipeline"
	"texcube/engine/renderer/shader"
	"texcube/engine/window"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registerTestVertexSource = `
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

const registerTestFragmentSource = `
struct FragmentInput {
    @location(0) tex_coord: vec2<f32>,
};

@fragment
fn fs_main(in: FragmentInput) -> @location(0) vec4<f32> {
    return vec4<f32>(in.tex_coord, 0.0, 1.0);
}
`

// mismatchedFragmentSource expects a vec4 at location 0 where the vertex stage
// emits a vec2, so module compilation succeeds but pipeline creation cannot.
const mismatchedFragmentSource = `
struct FragmentInput {
    @location(0) color: vec4<f32>,
};

@fragment
fn fs_main(in: FragmentInput) -> @location(0) vec4<f32> {
    return in.color;
}
`

// newTestRenderer creates a real window-backed renderer, skipping the test when
// the host has no display or GPU adapter.
func newTestRenderer(t *testing.T) Renderer {
	t.Helper()

	var r Renderer
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				t.Skipf("no display or GPU adapter available: %v", rec)
			}
		}()
		win := window.NewWindow(
			window.WithTitle("pipeline test"),
			window.WithWidth(320),
			window.WithHeight(240),
		)
		t.Cleanup(func() { _ = win.Close() })
		r = NewRenderer(BackendTypeWGPU, win, WithMSAA(MSAAOff))
	}()
	return r
}

func TestRegisterPipelines_PipelineUsableAfterModuleRelease(t *testing.T) {
	r := newTestRenderer(t)

	vs := shader.NewShader("matched_vs", shader.ShaderTypeVertex, registerTestVertexSource)
	fs := shader.NewShader("matched_fs", shader.ShaderTypeFragment, registerTestFragmentSource)
	p := pipeline.NewPipeline("matched",
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
	)

	require.NoError(t, r.RegisterPipelines(p))

	// Registration releases its local module and layout handles; the created
	// pipeline must remain cached and hold a live GPU object.
	cached := r.Pipeline("matched")
	require.NotNil(t, cached)
	assert.NotNil(t, cached.Pipeline())
}

func TestRegisterPipelines_StageInterfaceMismatchIsLinkError(t *testing.T) {
	r := newTestRenderer(t)

	vs := shader.NewShader("mismatch_vs", shader.ShaderTypeVertex, registerTestVertexSource)
	fs := shader.NewShader("mismatch_fs", shader.ShaderTypeFragment, mismatchedFragmentSource)
	p := pipeline.NewPipeline("mismatch",
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
	)

	err := r.RegisterPipelines(p)
	require.Error(t, err)

	var linkErr *shader.LinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, "mismatch", linkErr.PipelineKey)
	assert.Nil(t, r.Pipeline("mismatch"))
}
