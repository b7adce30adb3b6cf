package gles

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/render"
	"github.com/gogpu/compose/shader"
)

// texOverride is one entry of a frame's override stack. A nil program
// samples with the default texture program.
type texOverride struct {
	program  *shader.Program
	uniforms shader.Uniforms
}

// Frame draws one frame of one output into a render.PixmapTarget.
//
// A Frame is owned by the goroutine rendering the output and is not safe
// for concurrent use.
type Frame struct {
	renderer  *Renderer
	target    *render.PixmapTarget
	overrides []texOverride
	finished  bool
}

// Backend returns render.BackendGles.
func (f *Frame) Backend() render.Backend {
	return render.BackendGles
}

// Target returns the frame's render target.
func (f *Frame) Target() *render.PixmapTarget {
	return f.target
}

// OverrideDefaultTexProgram makes subsequent RenderTexture calls sample
// with program and uniforms instead of the default texture program, until
// the matching ClearTexProgramOverride.
//
// A uniform set that does not match the program's declarations is logged
// and installed anyway; the program sees missing uniforms as absent.
func (f *Frame) OverrideDefaultTexProgram(program *shader.Program, uniforms shader.Uniforms) {
	if program != nil {
		if err := shader.CheckUniforms(program.Uniforms(), uniforms); err != nil {
			compose.Logger().Warn("gles: override uniforms do not match program",
				"program", program.Name(), "err", err)
		}
	}
	f.overrides = append(f.overrides, texOverride{program: program, uniforms: slices.Clone(uniforms)})
	compose.Logger().Debug("gles: texture program override installed",
		"program", programName(program), "depth", len(f.overrides))
}

// ClearTexProgramOverride removes the most recent override, restoring the
// program that was active before it. Clearing without an override is a
// no-op.
func (f *Frame) ClearTexProgramOverride() {
	n := len(f.overrides)
	if n == 0 {
		compose.Logger().Debug("gles: no texture program override to clear")
		return
	}
	f.overrides[n-1] = texOverride{}
	f.overrides = f.overrides[:n-1]
	compose.Logger().Debug("gles: texture program override cleared", "depth", n-1)
}

// TexProgramOverride returns the active override, if any.
func (f *Frame) TexProgramOverride() (*shader.Program, shader.Uniforms, bool) {
	n := len(f.overrides)
	if n == 0 {
		return nil, nil, false
	}
	o := f.overrides[n-1]
	return o.program, o.uniforms, true
}

// OverrideDepth returns the number of installed overrides.
func (f *Frame) OverrideDepth() int {
	return len(f.overrides)
}

// Clear fills rects, given in target coordinates, with c.
func (f *Frame) Clear(c color.Color, rects ...image.Rectangle) error {
	if f.finished {
		return ErrFrameFinished
	}
	img := f.target.Image()
	src := image.NewUniform(c)
	for _, r := range rects {
		draw.Draw(img, r.Intersect(img.Bounds()), src, image.Point{}, draw.Src)
	}
	return nil
}

// RenderTexture implements render.Frame.
//
// src is mapped through transform onto dst and sampled with the
// renderer's filter. Every damaged pixel then runs the current texture
// program, is scaled by alpha and composited source-over. Pixels inside
// opaque are copied instead when alpha is 1.
func (f *Frame) RenderTexture(tex render.Texture, src render.BufferRect, dst image.Rectangle, damage, opaque []image.Rectangle, transform render.Transform, alpha float32) error {
	if f.finished {
		return ErrFrameFinished
	}
	t, ok := tex.(*Texture)
	if !ok || t.owner != f.renderer {
		return ErrForeignTexture
	}
	program, uniforms, err := f.texProgram()
	if err != nil {
		return err
	}

	if dst.Empty() || src.Empty() || alpha <= 0 {
		return nil
	}
	alpha = min(alpha, 1)

	regions := damageRegions(dst, damage, f.target.Bounds())
	if len(regions) == 0 {
		return nil
	}

	var local image.Rectangle
	for _, r := range regions {
		local = local.Union(r.Sub(dst.Min))
	}
	staging := image.NewRGBA(local)
	f.renderer.filter.Transform(staging, sourceToDest(src, dst.Size(), transform), t.img, src.Bounds().Intersect(t.img.Bounds()), draw.Src, nil)

	f.shade(program, uniforms, staging, dst.Min, regions, opaque, alpha)
	return nil
}

// Finish ends the frame. Overrides still installed are dropped.
func (f *Frame) Finish() error {
	if f.finished {
		return ErrFrameFinished
	}
	f.finished = true
	if n := len(f.overrides); n > 0 {
		compose.Logger().Warn("gles: frame finished with texture program overrides installed", "depth", n)
		f.overrides = nil
	}
	return nil
}

// texProgram resolves the program RenderTexture samples with.
func (f *Frame) texProgram() (*shader.Program, shader.Uniforms, error) {
	var (
		p *shader.Program
		u shader.Uniforms
	)
	if n := len(f.overrides); n > 0 && f.overrides[n-1].program != nil {
		p, u = f.overrides[n-1].program, f.overrides[n-1].uniforms
	} else {
		var ok bool
		p, ok = f.renderer.shaders.Get(shader.EffectTexture)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %w", ErrNoTexProgram, f.renderer.shaders.Err(shader.EffectTexture))
		}
	}
	if p.Destroyed() {
		return nil, nil, fmt.Errorf("%w: %s", ErrProgramDestroyed, p.Name())
	}
	return p, u, nil
}

func (f *Frame) shade(p *shader.Program, u shader.Uniforms, staging *image.RGBA, origin image.Point, regions, opaque []image.Rectangle, alpha float32) {
	img := f.target.Image()
	for _, r := range regions {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				lp := image.Pt(x-origin.X, y-origin.Y)
				s := staging.Pix[staging.PixOffset(lp.X, lp.Y):]
				d := img.Pix[img.PixOffset(x, y):]

				out := p.Shade([4]float32{
					float32(s[0]) / 255,
					float32(s[1]) / 255,
					float32(s[2]) / 255,
					float32(s[3]) / 255,
				}, u)
				if alpha < 1 {
					for i := range out {
						out[i] *= alpha
					}
				}

				if alpha < 1 || !inRects(opaque, lp) {
					inv := 1 - clamp01(out[3])
					for i := range out {
						out[i] += float32(d[i]) / 255 * inv
					}
				}

				a := clamp01(out[3])
				d[0] = toByte(min(clamp01(out[0]), a))
				d[1] = toByte(min(clamp01(out[1]), a))
				d[2] = toByte(min(clamp01(out[2]), a))
				d[3] = toByte(a)
			}
		}
	}
}

// sourceToDest returns the affine map from buffer coordinates inside src
// to coordinates relative to the destination origin.
func sourceToDest(src render.BufferRect, size image.Point, transform render.Transform) f64.Aff3 {
	a, b, c, d, e, f := transform.Normalized()
	w, h := float64(size.X), float64(size.Y)
	sx, sy := 1/src.W, 1/src.H
	return f64.Aff3{
		w * a * sx, w * b * sy, w * (c - a*src.X*sx - b*src.Y*sy),
		h * d * sx, h * e * sy, h * (f - d*src.X*sx - e*src.Y*sy),
	}
}

// damageRegions converts damage relative to dst into non-overlapping
// target rectangles, so that no pixel is blended twice.
func damageRegions(dst image.Rectangle, damage []image.Rectangle, bounds image.Rectangle) []image.Rectangle {
	clip := dst.Intersect(bounds)
	var out []image.Rectangle
	for _, d := range damage {
		r := d.Add(dst.Min).Intersect(clip)
		if r.Empty() {
			continue
		}
		pieces := []image.Rectangle{r}
		for _, done := range out {
			pieces = render.SubtractRect(pieces, done)
		}
		out = append(out, pieces...)
	}
	return out
}

func inRects(rects []image.Rectangle, p image.Point) bool {
	for _, r := range rects {
		if p.In(r) {
			return true
		}
	}
	return false
}

func clamp01(v float32) float32 {
	return max(0, min(v, 1))
}

func toByte(v float32) uint8 {
	return uint8(v*255 + 0.5)
}

func programName(p *shader.Program) string {
	if p == nil {
		return shader.EffectTexture
	}
	return p.Name()
}

// Ensure Frame implements render.Frame.
var _ render.Frame = (*Frame)(nil)
