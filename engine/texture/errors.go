package texture

import "fmt"

// DecodeError reports a user image that could not be decoded. It is non-fatal:
// the placeholder (or previous) texture stays bound and the user may retry with
// another file.
type DecodeError struct {
	// Name identifies the image that failed, typically the selected file name.
	Name string
	// Err is the underlying decoder error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("texture: failed to decode image %q: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
