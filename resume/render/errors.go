package render

import "fmt"

// IOError reports a failed write of the primary document. Atomic temp+rename
// writes guarantee no half-written file remains at Path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write document %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ConversionError reports a failed fixed-layout conversion. It is non-fatal
// to the primary document, which remains valid at Path.
type ConversionError struct {
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s to pdf: %v", e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
