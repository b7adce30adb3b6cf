package tty

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch is returned when presenting a target whose size differs
// from the display mode.
var ErrSizeMismatch = errors.New("tty: target size does not match display")

// RendererError reports a failure of the renderer driving one display.
type RendererError struct {
	// Device is the display name.
	Device string

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *RendererError) Error() string {
	return fmt.Sprintf("tty: %s: %v", e.Device, e.Err)
}

// Unwrap returns the underlying error.
func (e *RendererError) Unwrap() error {
	return e.Err
}

func wrapError(device string, err error) error {
	if err == nil {
		return nil
	}
	var re *RendererError
	if errors.As(err, &re) {
		return err
	}
	return &RendererError{Device: device, Err: err}
}
