// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package effect

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/compose/backend/gles"
	"github.com/gogpu/compose/backend/tty"
	"github.com/gogpu/compose/render"
	"github.com/gogpu/compose/shader"
)

// ErrUnsupportedFrame is returned when drawing into a frame of a renderer
// that cannot override its texture program.
var ErrUnsupportedFrame = errors.New("effect: frame cannot override texture program")

// ShaderProvider is a renderer that owns a shader registry.
type ShaderProvider interface {
	Shaders() *shader.Registry
}

// SaturatedShader returns the saturated_surface program of p. It reports
// false when the renderer does not support it.
func SaturatedShader(p ShaderProvider) (*shader.Program, bool) {
	reg := p.Shaders()
	if reg == nil {
		return nil, false
	}
	return reg.Get(shader.EffectSaturatedSurface)
}

// SaturatedElement draws an element with adjusted color saturation.
//
// Every query is answered by the inner element, so damage tracking and
// occlusion see the decorated element exactly as the undecorated one. The
// buffer is never offered for direct scanout, since scanning it out would
// skip the program.
type SaturatedElement struct {
	inner      render.RenderElement
	program    *shader.Program
	saturation float32
}

// NewSaturated wraps elem. program is usually obtained from
// SaturatedShader; saturation 0 is grayscale, 1 leaves colors unchanged
// and values above 1 oversaturate. No range is enforced.
func NewSaturated(elem render.RenderElement, program *shader.Program, saturation float32) *SaturatedElement {
	return &SaturatedElement{
		inner:      elem,
		program:    program,
		saturation: saturation,
	}
}

// Inner returns the wrapped element.
func (e *SaturatedElement) Inner() render.RenderElement { return e.inner }

// Program returns the texture program the element draws with.
func (e *SaturatedElement) Program() *shader.Program { return e.program }

// Saturation returns the saturation factor.
func (e *SaturatedElement) Saturation() float32 { return e.saturation }

func (e *SaturatedElement) computeUniforms() shader.Uniforms {
	return shader.Uniforms{shader.NewUniform(shader.SaturationUniform, shader.Float(e.saturation))}
}

// ID implements render.Element.
func (e *SaturatedElement) ID() render.ID { return e.inner.ID() }

// CurrentCommit implements render.Element.
func (e *SaturatedElement) CurrentCommit() render.CommitCounter { return e.inner.CurrentCommit() }

// Geometry implements render.Element.
func (e *SaturatedElement) Geometry(scale render.Scale) image.Rectangle {
	return e.inner.Geometry(scale)
}

// Src implements render.Element.
func (e *SaturatedElement) Src() render.BufferRect { return e.inner.Src() }

// Transform implements render.Element.
func (e *SaturatedElement) Transform() render.Transform { return e.inner.Transform() }

// DamageSince implements render.Element.
func (e *SaturatedElement) DamageSince(scale render.Scale, commit *render.CommitCounter) render.DamageSet {
	return e.inner.DamageSince(scale, commit)
}

// OpaqueRegions implements render.Element.
func (e *SaturatedElement) OpaqueRegions(scale render.Scale) render.OpaqueRegions {
	return e.inner.OpaqueRegions(scale)
}

// Alpha implements render.Element.
func (e *SaturatedElement) Alpha() float32 { return e.inner.Alpha() }

// Kind implements render.Element.
func (e *SaturatedElement) Kind() render.Kind { return e.inner.Kind() }

// Draw implements render.RenderElement. The inner element draws with the
// saturation program installed as the frame's texture program; the
// previous program is restored when Draw returns, whether or not the inner
// draw failed. Inner errors are returned as is.
func (e *SaturatedElement) Draw(frame render.Frame, src render.BufferRect, dst image.Rectangle, damage, opaque []image.Rectangle) error {
	o, err := overriderFor(frame)
	if err != nil {
		return err
	}
	return withTexProgram(o, e.program, e.computeUniforms(), func() error {
		return e.inner.Draw(frame, src, dst, damage, opaque)
	})
}

// UnderlyingStorage implements render.RenderElement. It always reports
// false.
func (e *SaturatedElement) UnderlyingStorage(render.Renderer) (render.UnderlyingStorage, bool) {
	return render.UnderlyingStorage{}, false
}

// texProgramOverrider is the part of a frame that can swap its texture
// program.
type texProgramOverrider interface {
	OverrideDefaultTexProgram(program *shader.Program, uniforms shader.Uniforms)
	ClearTexProgramOverride()
}

// overriderFor resolves frame to its override capability. tty frames
// override through the gles frame they wrap.
func overriderFor(frame render.Frame) (texProgramOverrider, error) {
	switch f := frame.(type) {
	case *gles.Frame:
		if f != nil {
			return f, nil
		}
	case *tty.Frame:
		if f != nil && f.AsGlesFrame() != nil {
			return f.AsGlesFrame(), nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedFrame, frame)
}

// withTexProgram runs draw with program installed on o. The override is
// cleared when draw returns or panics.
func withTexProgram(o texProgramOverrider, program *shader.Program, uniforms shader.Uniforms, draw func() error) error {
	o.OverrideDefaultTexProgram(program, uniforms)
	defer o.ClearTexProgramOverride()
	return draw()
}

// Ensure SaturatedElement implements render.RenderElement.
var _ render.RenderElement = (*SaturatedElement)(nil)
