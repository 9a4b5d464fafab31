package svgfx

import (
	"errors"
	"fmt"
)

// AllocError reports a failed raster allocation. It is always fatal: the
// pipeline aborts immediately instead of substituting an empty surface.
type AllocError struct {
	Width  int
	Height int
	Cause  error
}

func (e *AllocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("svgfx: cannot allocate %dx%d surface: %v", e.Width, e.Height, e.Cause)
	}
	return fmt.Sprintf("svgfx: cannot allocate %dx%d surface", e.Width, e.Height)
}

func (e *AllocError) Unwrap() error { return e.Cause }

// FatalError marks an error as unrecoverable for the pipeline driver.
// Wrap a backend error in FatalError to force Render to abort; AllocError
// is treated as fatal without wrapping.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return e.Err.Error() }
func (e *FatalError) Unwrap() error { return e.Err }

// primitiveError is the recoverable error class: the failing primitive
// contributes nothing to the chain and rendering continues.
type primitiveError struct {
	reason string
}

func (e *primitiveError) Error() string { return "svgfx: " + e.reason }

// errInputNotFound reports an input reference that cannot be satisfied:
// a named result no earlier primitive produced, or a paint input the
// caller did not supply.
var errInputNotFound = &primitiveError{reason: "input not found"}

// errInvalidInput reports a primitive whose own configuration makes it
// unrenderable (for example feImage without a source).
var errInvalidInput = &primitiveError{reason: "invalid input"}

// errLightingInputTooSmall reports a lighting primitive whose subregion is
// below the 2x2 minimum needed for surface normals.
var errLightingInputTooSmall = &primitiveError{reason: "lighting input region is too small"}

func invalidParameter(reason string) error {
	return &primitiveError{reason: "invalid parameter: " + reason}
}

// isFatal reports whether err must abort the whole pipeline.
func isFatal(err error) bool {
	var alloc *AllocError
	var fatal *FatalError
	return errors.As(err, &alloc) || errors.As(err, &fatal)
}
