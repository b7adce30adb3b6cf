// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"math"
)

// Scale is the output scale applied when converting logical element
// coordinates to physical output pixels.
type Scale struct {
	X, Y float64
}

// UniformScale returns a Scale with the same factor on both axes.
func UniformScale(f float64) Scale {
	return Scale{X: f, Y: f}
}

// String implements fmt.Stringer.
func (s Scale) String() string {
	return fmt.Sprintf("%gx%g", s.X, s.Y)
}

// BufferRect is a rectangle in buffer coordinates. Buffer coordinates are
// fractional so that viewporter-style crops survive scaling.
type BufferRect struct {
	X, Y, W, H float64
}

// BufferRectFromSize returns the rectangle covering a whole buffer.
func BufferRectFromSize(w, h int) BufferRect {
	return BufferRect{W: float64(w), H: float64(h)}
}

// Empty reports whether the rectangle has no area.
func (r BufferRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Bounds returns the smallest integer rectangle containing r.
func (r BufferRect) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)),
		int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)),
		int(math.Ceil(r.Y+r.H)),
	)
}

// String implements fmt.Stringer.
func (r BufferRect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

// Transform describes how buffer contents are oriented on the output.
// Rotations are clockwise; flipped variants mirror around the vertical
// axis before rotating.
type Transform uint8

// Buffer transforms.
const (
	TransformNormal Transform = iota
	Transform90
	Transform180
	Transform270
	TransformFlipped
	TransformFlipped90
	TransformFlipped180
	TransformFlipped270
)

var transformNames = [...]string{
	TransformNormal:     "normal",
	Transform90:         "90",
	Transform180:        "180",
	Transform270:        "270",
	TransformFlipped:    "flipped",
	TransformFlipped90:  "flipped-90",
	TransformFlipped180: "flipped-180",
	TransformFlipped270: "flipped-270",
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	if int(t) < len(transformNames) {
		return transformNames[t]
	}
	return fmt.Sprintf("Transform(%d)", uint8(t))
}

// Flipped reports whether the transform mirrors the buffer.
func (t Transform) Flipped() bool {
	return t >= TransformFlipped
}

// SwapsAxes reports whether width and height trade places.
func (t Transform) SwapsAxes() bool {
	return t&1 == 1
}

// Invert returns the transform that undoes t.
func (t Transform) Invert() Transform {
	switch t {
	case Transform90:
		return Transform270
	case Transform270:
		return Transform90
	default:
		// 180 and every flipped variant are involutions.
		return t
	}
}

// TransformSize returns the size of a w×h buffer after applying t.
func (t Transform) TransformSize(size image.Point) image.Point {
	if t.SwapsAxes() {
		return image.Pt(size.Y, size.X)
	}
	return size
}

// Normalized returns the affine map from normalized buffer coordinates
// (u, v in [0, 1]) to normalized output coordinates:
//
//	x = a*u + b*v + c
//	y = d*u + e*v + f
func (t Transform) Normalized() (a, b, c, d, e, f float64) {
	switch t {
	case Transform90:
		return 0, -1, 1, 1, 0, 0
	case Transform180:
		return -1, 0, 1, 0, -1, 1
	case Transform270:
		return 0, 1, 0, -1, 0, 1
	case TransformFlipped:
		return -1, 0, 1, 0, 1, 0
	case TransformFlipped90:
		return 0, -1, 1, -1, 0, 1
	case TransformFlipped180:
		return 1, 0, 0, 0, -1, 1
	case TransformFlipped270:
		return 0, 1, 0, 1, 0, 0
	default:
		return 1, 0, 0, 0, 1, 0
	}
}

// TransformRect maps r, given in the coordinates of an area of the given
// size, into the coordinates of the transformed area.
func (t Transform) TransformRect(r image.Rectangle, size image.Point) image.Rectangle {
	if t == TransformNormal {
		return r
	}
	a, b, c, d, e, f := t.Normalized()
	w, h := float64(size.X), float64(size.Y)
	out := t.TransformSize(size)
	ow, oh := float64(out.X), float64(out.Y)

	apply := func(x, y int) (int, int) {
		u, v := float64(x)/w, float64(y)/h
		return int(math.Round((a*u + b*v + c) * ow)), int(math.Round((d*u + e*v + f) * oh))
	}
	x0, y0 := apply(r.Min.X, r.Min.Y)
	x1, y1 := apply(r.Max.X, r.Max.Y)
	// image.Rect canonicalizes swapped corners.
	return image.Rect(x0, y0, x1, y1)
}

// ToPhysical scales a logical rectangle to physical pixels, rounding
// outward so that damage is never lost.
func ToPhysical(r image.Rectangle, s Scale) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.Min.X)*s.X)),
		int(math.Floor(float64(r.Min.Y)*s.Y)),
		int(math.Ceil(float64(r.Max.X)*s.X)),
		int(math.Ceil(float64(r.Max.Y)*s.Y)),
	)
}

// ToPhysicalInner scales a logical rectangle to physical pixels, rounding
// inward. Used for opaque regions, which must never grow.
func ToPhysicalInner(r image.Rectangle, s Scale) image.Rectangle {
	out := image.Rect(
		int(math.Ceil(float64(r.Min.X)*s.X)),
		int(math.Ceil(float64(r.Min.Y)*s.Y)),
		int(math.Floor(float64(r.Max.X)*s.X)),
		int(math.Floor(float64(r.Max.Y)*s.Y)),
	)
	if out.Empty() {
		return image.Rectangle{}
	}
	return out
}
