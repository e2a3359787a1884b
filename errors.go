package avagen

import "fmt"

// ParseError is returned when a color parameter cannot be converted
// to an RGB triple. It aborts only the render it belongs to.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse color %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResourceError is returned when the emitter cannot create or write into
// the output location. The in-memory render it belongs to is unaffected.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource error on %q: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
