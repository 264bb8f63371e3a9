package engine

import (
	"texcube/engine/renderer"
	"texcube/engine/window"
)

// SessionBuilderOption is a functional option for configuring a Session.
// Use the With* functions to create options that are applied directly to the session instance.
type SessionBuilderOption func(*session)

// WithWindow sets a pre-configured window for the session to use.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - SessionBuilderOption: option function to apply
func WithWindow(w window.Window) SessionBuilderOption {
	return func(s *session) {
		s.window = w
	}
}

// WithShaderSources sets the WGSL vertex and fragment shader sources used to
// build the cube pipeline. Both are required before Init.
//
// Parameters:
//   - vertexSource: the vertex shader WGSL source
//   - fragmentSource: the fragment shader WGSL source
//
// Returns:
//   - SessionBuilderOption: option function to apply
func WithShaderSources(vertexSource, fragmentSource string) SessionBuilderOption {
	return func(s *session) {
		s.vertexSource = vertexSource
		s.fragmentSource = fragmentSource
	}
}

// WithProfiling enables or disables interaction statistics output to the log.
//
// Parameters:
//   - enabled: if true, enables profiling output
//
// Returns:
//   - SessionBuilderOption: option function to apply
func WithProfiling(enabled bool) SessionBuilderOption {
	return func(s *session) {
		s.profilingEnabled = enabled
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the renderer.
//
// Parameters:
//   - count: the MSAASampleCount to use (MSAAOff, MSAA4x, or MSAA8x)
//
// Returns:
//   - SessionBuilderOption: option function to apply
func WithMSAA(count renderer.MSAASampleCount) SessionBuilderOption {
	return func(s *session) {
		s.pendingMSAA = &count
	}
}

// WithPresentMode sets the surface present mode for the renderer.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - SessionBuilderOption: option function to apply
func WithPresentMode(mode renderer.PresentMode) SessionBuilderOption {
	return func(s *session) {
		s.pendingPresentMode = &mode
	}
}

// WithForceSoftwareRenderer forces the renderer to use a CPU/software fallback
// adapter instead of hardware GPU acceleration.
//
// Parameters:
//   - force: true to force the software fallback adapter
//
// Returns:
//   - SessionBuilderOption: option function to apply
func WithForceSoftwareRenderer(force bool) SessionBuilderOption {
	return func(s *session) {
		s.forceSoftwareRender = force
	}
}

// WithDecodeWorkers sets the worker count for the asynchronous image decode pool.
// Values <= 0 are treated as the default (2).
//
// Parameters:
//   - workers: the number of decode workers
//
// Returns:
//   - SessionBuilderOption: option function to apply
func WithDecodeWorkers(workers int) SessionBuilderOption {
	return func(s *session) {
		if workers <= 0 {
			workers = 2
		}
		s.decodeWorkers = workers
	}
}
