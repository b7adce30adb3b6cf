package tty

import (
	"image"
	"image/color"

	"github.com/gogpu/compose/backend/gles"
	"github.com/gogpu/compose/render"
)

// Frame is a frame of a tty Renderer. It wraps the gles frame that does
// the compositing and tags failures with the display they happened on.
type Frame struct {
	*gles.Frame
	device string
}

// Backend returns render.BackendTty.
func (f *Frame) Backend() render.Backend {
	return render.BackendTty
}

// AsGlesFrame returns the wrapped gles frame.
func (f *Frame) AsGlesFrame() *gles.Frame {
	return f.Frame
}

// RenderTexture implements render.Frame. Failures are returned as
// *RendererError.
func (f *Frame) RenderTexture(tex render.Texture, src render.BufferRect, dst image.Rectangle, damage, opaque []image.Rectangle, transform render.Transform, alpha float32) error {
	return wrapError(f.device, f.Frame.RenderTexture(tex, src, dst, damage, opaque, transform, alpha))
}

// Clear fills rects with c. Failures are returned as *RendererError.
func (f *Frame) Clear(c color.Color, rects ...image.Rectangle) error {
	return wrapError(f.device, f.Frame.Clear(c, rects...))
}

// Finish ends the frame.
func (f *Frame) Finish() error {
	return wrapError(f.device, f.Frame.Finish())
}

// Ensure Frame implements render.Frame.
var _ render.Frame = (*Frame)(nil)
