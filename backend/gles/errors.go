package gles

import "errors"

// Package errors for the gles backend.
var (
	// ErrClosed is returned when using a closed renderer.
	ErrClosed = errors.New("gles: renderer closed")

	// ErrNilTarget is returned when rendering into a nil target.
	ErrNilTarget = errors.New("gles: nil target")

	// ErrFrameFinished is returned when drawing into a finished frame.
	ErrFrameFinished = errors.New("gles: frame finished")

	// ErrNoTexProgram is returned when no texture program is available to
	// sample with.
	ErrNoTexProgram = errors.New("gles: no texture program")

	// ErrProgramDestroyed is returned when sampling with a program its
	// registry already released.
	ErrProgramDestroyed = errors.New("gles: program destroyed")

	// ErrForeignTexture is returned when a frame is asked to sample a
	// texture that another renderer created.
	ErrForeignTexture = errors.New("gles: texture from another renderer")

	// ErrEmptySource is returned when creating a texture from an empty
	// image.
	ErrEmptySource = errors.New("gles: empty texture source")
)
