package shader

import "fmt"

// CompileError reports a shader stage that failed platform compilation.
// It carries the compiler's diagnostic text; any partially-created GPU
// resource has already been released by the time the error is returned.
type CompileError struct {
	// Key is the unique key of the shader that failed to compile.
	Key string
	// Stage is the shader stage that failed (vertex or fragment).
	Stage ShaderType
	// Diagnostic is the platform compiler's error output.
	Diagnostic string
}

func (e *CompileError) Error() string {
	stage := "vertex"
	if e.Stage == ShaderTypeFragment {
		stage = "fragment"
	}
	return fmt.Sprintf("shader %q: %s stage failed to compile: %s", e.Key, stage, e.Diagnostic)
}

// LinkError reports a vertex/fragment pair that compiled individually but
// could not be linked into an executable pipeline. No shader or pipeline
// objects are leaked when this error is returned.
type LinkError struct {
	// PipelineKey identifies the pipeline whose link step failed.
	PipelineKey string
	// Diagnostic is the platform linker's error output.
	Diagnostic string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("pipeline %q: failed to link shader program: %s", e.PipelineKey, e.Diagnostic)
}
