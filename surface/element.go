// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"math"

	"github.com/gogpu/compose/render"
)

// Element is a render element drawing one buffer.
type Element struct {
	id          render.ID
	texture     render.Texture
	location    image.Point
	bufferScale int
	transform   render.Transform
	alpha       float32
	kind        render.Kind
	opaque      []image.Rectangle
	viewport    *render.BufferRect
	scanout     bool

	commit render.CommitCounter
	damage *render.DamageBag
}

// New creates an element showing tex.
func New(tex render.Texture, opts ...Option) *Element {
	e := &Element{
		id:          render.NewID(),
		texture:     tex,
		bufferScale: 1,
		alpha:       1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.damage == nil {
		e.damage = render.NewDamageBag(0)
	}
	return e
}

// Texture returns the attached buffer.
func (e *Element) Texture() render.Texture { return e.texture }

// Location returns the logical output position.
func (e *Element) Location() image.Point { return e.location }

// SetLocation moves the element. Moving is not a commit: damage trackers
// notice the geometry change on their own.
func (e *Element) SetLocation(p image.Point) {
	e.location = p
}

// Commit records new content. damage is in buffer coordinates; without
// damage the whole buffer is damaged.
func (e *Element) Commit(damage ...image.Rectangle) {
	if len(damage) == 0 {
		damage = []image.Rectangle{e.bufferBounds()}
	}
	e.commit.Increment()
	e.damage.Add(e.commit, damage)
}

// Attach replaces the buffer and commits. damage is as for Commit.
func (e *Element) Attach(tex render.Texture, damage ...image.Rectangle) {
	e.texture = tex
	e.Commit(damage...)
}

// ID implements render.Element.
func (e *Element) ID() render.ID { return e.id }

// CurrentCommit implements render.Element.
func (e *Element) CurrentCommit() render.CommitCounter { return e.commit }

// Src implements render.Element.
func (e *Element) Src() render.BufferRect {
	if e.viewport != nil {
		return *e.viewport
	}
	return render.BufferRectFromSize(e.texture.Width(), e.texture.Height())
}

// Transform implements render.Element.
func (e *Element) Transform() render.Transform { return e.transform }

// Alpha implements render.Element.
func (e *Element) Alpha() float32 { return e.alpha }

// Kind implements render.Element.
func (e *Element) Kind() render.Kind { return e.kind }

// Geometry implements render.Element.
func (e *Element) Geometry(scale render.Scale) image.Rectangle {
	return render.ToPhysical(image.Rectangle{Min: e.location, Max: e.location.Add(e.logicalSize())}, scale)
}

// DamageSince implements render.Element.
func (e *Element) DamageSince(scale render.Scale, commit *render.CommitCounter) render.DamageSet {
	local := image.Rectangle{Max: e.Geometry(scale).Size()}
	if commit == nil {
		return render.DamageSet{local}
	}
	rects, ok := e.damage.Since(e.commit, commit)
	if !ok {
		return render.DamageSet{local}
	}

	var out render.DamageSet
	for _, r := range rects {
		p := render.ToPhysical(e.bufferToLogical(r, false), scale).Intersect(local)
		if !p.Empty() {
			out = append(out, p)
		}
	}
	return out
}

// OpaqueRegions implements render.Element. A translucent element has no
// opaque regions.
func (e *Element) OpaqueRegions(scale render.Scale) render.OpaqueRegions {
	if e.alpha < 1 {
		return nil
	}
	local := image.Rectangle{Max: e.Geometry(scale).Size()}

	var out render.OpaqueRegions
	for _, r := range e.opaque {
		p := render.ToPhysicalInner(e.bufferToLogical(r, true), scale).Intersect(local)
		if !p.Empty() {
			out = append(out, p)
		}
	}
	return out
}

// Draw implements render.RenderElement.
func (e *Element) Draw(frame render.Frame, src render.BufferRect, dst image.Rectangle, damage, opaque []image.Rectangle) error {
	return frame.RenderTexture(e.texture, src, dst, damage, opaque, e.transform, e.alpha)
}

// UnderlyingStorage implements render.RenderElement. The buffer is only
// handed out when the element was created WithUnderlyingStorage.
func (e *Element) UnderlyingStorage(render.Renderer) (render.UnderlyingStorage, bool) {
	if !e.scanout {
		return render.UnderlyingStorage{}, false
	}
	return render.UnderlyingStorage{Texture: e.texture, Transform: e.transform}, true
}

func (e *Element) bufferBounds() image.Rectangle {
	return image.Rect(0, 0, e.texture.Width(), e.texture.Height())
}

// viewportBounds returns the sampled buffer area in whole pixels.
func (e *Element) viewportBounds() image.Rectangle {
	return e.Src().Bounds()
}

// logicalSize is the viewport size after the buffer transform and buffer
// scale.
func (e *Element) logicalSize() image.Point {
	size := e.transform.TransformSize(e.viewportBounds().Size())
	return image.Pt(
		int(math.Ceil(float64(size.X)/float64(e.bufferScale))),
		int(math.Ceil(float64(size.Y)/float64(e.bufferScale))),
	)
}

// bufferToLogical maps a buffer rectangle to element-local logical
// coordinates. inner rounds inward, for regions that must not grow.
func (e *Element) bufferToLogical(r image.Rectangle, inner bool) image.Rectangle {
	vp := e.viewportBounds()
	r = r.Intersect(vp).Sub(vp.Min)
	r = e.transform.TransformRect(r, vp.Size())

	s := float64(e.bufferScale)
	if inner {
		out := image.Rect(
			int(math.Ceil(float64(r.Min.X)/s)),
			int(math.Ceil(float64(r.Min.Y)/s)),
			int(math.Floor(float64(r.Max.X)/s)),
			int(math.Floor(float64(r.Max.Y)/s)),
		)
		if out.Empty() {
			return image.Rectangle{}
		}
		return out
	}
	return image.Rect(
		int(math.Floor(float64(r.Min.X)/s)),
		int(math.Floor(float64(r.Min.Y)/s)),
		int(math.Ceil(float64(r.Max.X)/s)),
		int(math.Ceil(float64(r.Max.Y)/s)),
	)
}

// Ensure Element implements render.RenderElement.
var _ render.RenderElement = (*Element)(nil)
