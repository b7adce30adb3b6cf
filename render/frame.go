// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
)

// Backend tags the renderer variant behind a Frame or Renderer. The set is
// closed: code that needs backend-specific behavior switches on it (or on
// the concrete frame types) instead of growing the Frame interface.
type Backend uint8

// Renderer backends.
const (
	// BackendGles is the generic GPU renderer.
	BackendGles Backend = iota + 1

	// BackendTty is the direct-to-display renderer. Its frames wrap a
	// gles frame.
	BackendTty
)

// String implements fmt.Stringer.
func (b Backend) String() string {
	switch b {
	case BackendGles:
		return "gles"
	case BackendTty:
		return "tty"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// Texture is a sampled image owned by a renderer.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat
}

// Frame is the per-draw context of one output for one frame. A frame is
// exclusively owned by the goroutine rendering that output.
type Frame interface {
	// Backend returns the renderer variant that opened this frame.
	Backend() Backend

	// RenderTexture samples src of tex through the frame's current texture
	// program and composites it onto dst. damage and opaque are relative
	// to dst.Min; only damaged pixels are touched.
	RenderTexture(tex Texture, src BufferRect, dst image.Rectangle, damage, opaque []image.Rectangle, transform Transform, alpha float32) error
}

// Renderer opens frames for one backend.
type Renderer interface {
	// Backend returns the renderer variant.
	Backend() Backend
}
