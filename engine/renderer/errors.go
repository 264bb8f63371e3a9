package renderer

import "fmt"

// PlatformDrawError reports a draw-time platform failure such as a lost device
// or an unacquirable swapchain image. Unlike shader compile or link failures,
// these are not recoverable by the caller and should terminate the demo.
type PlatformDrawError struct {
	// Op names the draw phase that failed (e.g. "begin frame").
	Op string
	// Err is the underlying platform error.
	Err error
}

func (e *PlatformDrawError) Error() string {
	return fmt.Sprintf("renderer: %s failed: %v", e.Op, e.Err)
}

func (e *PlatformDrawError) Unwrap() error {
	return e.Err
}
