// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
)

// DrawElements draws elements into frame. elements is ordered front to
// back (index 0 is topmost) and is drawn back to front. damage is in
// output coordinates; pixels outside it are left untouched.
//
// Parts of an element hidden behind opaque regions of elements above it
// are culled before the element is asked to draw. Elements whose visible
// damage is empty are skipped.
func DrawElements(frame Frame, elements []RenderElement, scale Scale, damage []image.Rectangle) error {
	if len(damage) == 0 || len(elements) == 0 {
		return nil
	}

	// occluders[i] holds the opaque area, in output coordinates, of all
	// elements in front of element i.
	occluders := make([][]image.Rectangle, len(elements))
	var above []image.Rectangle
	for i, e := range elements {
		occluders[i] = above
		origin := e.Geometry(scale).Min
		next := append([]image.Rectangle(nil), above...)
		for _, r := range e.OpaqueRegions(scale) {
			next = append(next, r.Add(origin))
		}
		above = next
	}

	for i := len(elements) - 1; i >= 0; i-- {
		e := elements[i]
		dst := e.Geometry(scale)
		if dst.Empty() {
			continue
		}

		visible := ClipRects(damage, dst)
		for _, o := range occluders[i] {
			visible = SubtractRect(visible, o)
			if len(visible) == 0 {
				break
			}
		}
		if len(visible) == 0 {
			continue
		}

		local := TranslateRects(visible, dst.Min.Mul(-1))
		if err := e.Draw(frame, e.Src(), dst, local, e.OpaqueRegions(scale)); err != nil {
			return fmt.Errorf("render: draw element %s: %w", e.ID(), err)
		}
	}
	return nil
}

// ClipRects returns the non-empty intersections of rects with clip.
func ClipRects(rects []image.Rectangle, clip image.Rectangle) []image.Rectangle {
	var out []image.Rectangle
	for _, r := range rects {
		if c := r.Intersect(clip); !c.Empty() {
			out = append(out, c)
		}
	}
	return out
}

// TranslateRects returns rects moved by delta.
func TranslateRects(rects []image.Rectangle, delta image.Point) []image.Rectangle {
	out := make([]image.Rectangle, len(rects))
	for i, r := range rects {
		out[i] = r.Add(delta)
	}
	return out
}

// SubtractRect removes cut from every rectangle in rects. Each rectangle
// splits into at most four pieces.
func SubtractRect(rects []image.Rectangle, cut image.Rectangle) []image.Rectangle {
	if cut.Empty() {
		return rects
	}
	var out []image.Rectangle
	for _, r := range rects {
		in := r.Intersect(cut)
		if in.Empty() {
			out = append(out, r)
			continue
		}
		// top and bottom bands span the full width, left and right bands
		// only the height of the intersection.
		if in.Min.Y > r.Min.Y {
			out = append(out, image.Rect(r.Min.X, r.Min.Y, r.Max.X, in.Min.Y))
		}
		if in.Max.Y < r.Max.Y {
			out = append(out, image.Rect(r.Min.X, in.Max.Y, r.Max.X, r.Max.Y))
		}
		if in.Min.X > r.Min.X {
			out = append(out, image.Rect(r.Min.X, in.Min.Y, in.Min.X, in.Max.Y))
		}
		if in.Max.X < r.Max.X {
			out = append(out, image.Rect(in.Max.X, in.Min.Y, r.Max.X, in.Max.Y))
		}
	}
	return out
}

// ContainsRect reports whether the union of rects covers r entirely.
func ContainsRect(rects []image.Rectangle, r image.Rectangle) bool {
	rest := []image.Rectangle{r}
	for _, c := range rects {
		rest = SubtractRect(rest, c)
		if len(rest) == 0 {
			return true
		}
	}
	return r.Empty()
}
