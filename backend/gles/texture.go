package gles

import (
	"image"

	"github.com/gogpu/gputypes"
)

// Texture is an RGBA8 texture owned by a Renderer. Texels are stored
// premultiplied.
type Texture struct {
	img   *image.RGBA
	owner *Renderer
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.img.Bounds().Dx() }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.img.Bounds().Dy() }

// Format returns gputypes.TextureFormatRGBA8Unorm.
func (t *Texture) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Image returns the texel storage. The image origin is (0, 0).
func (t *Texture) Image() *image.RGBA { return t.img }
