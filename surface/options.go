// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/compose/render"
)

// Option configures an Element.
type Option func(*Element)

// WithID sets the element ID. By default every element gets a fresh one.
func WithID(id render.ID) Option {
	return func(e *Element) {
		if id != "" {
			e.id = id
		}
	}
}

// WithLocation places the element at p in logical output coordinates.
func WithLocation(p image.Point) Option {
	return func(e *Element) {
		e.location = p
	}
}

// WithBufferScale sets the integer scale the client rendered its buffer
// at. Values below 1 are ignored.
func WithBufferScale(n int) Option {
	return func(e *Element) {
		if n >= 1 {
			e.bufferScale = n
		}
	}
}

// WithTransform sets the buffer transform.
func WithTransform(t render.Transform) Option {
	return func(e *Element) {
		e.transform = t
	}
}

// WithAlpha sets the element opacity, clamped to [0, 1].
func WithAlpha(a float32) Option {
	return func(e *Element) {
		e.alpha = max(0, min(a, 1))
	}
}

// WithKind sets the element kind.
func WithKind(k render.Kind) Option {
	return func(e *Element) {
		e.kind = k
	}
}

// WithOpaqueRegion declares fully opaque parts of the buffer, in buffer
// coordinates.
func WithOpaqueRegion(rects ...image.Rectangle) Option {
	return func(e *Element) {
		e.opaque = append(e.opaque, rects...)
	}
}

// WithViewport samples only src of the buffer.
func WithViewport(src render.BufferRect) Option {
	return func(e *Element) {
		if !src.Empty() {
			e.viewport = &src
		}
	}
}

// WithUnderlyingStorage lets direct-display renderers scan the buffer out
// without compositing it.
func WithUnderlyingStorage() Option {
	return func(e *Element) {
		e.scanout = true
	}
}

// WithDamageHistory sets how many commits of damage the element
// remembers.
func WithDamageHistory(n int) Option {
	return func(e *Element) {
		e.damage = render.NewDamageBag(n)
	}
}
