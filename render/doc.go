// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the contract between a compositor's frame builder,
// its render elements, and the backend renderers that draw them.
//
// # Core Interfaces
//
//   - Element: queries (identity, commit, geometry, damage, opacity)
//   - RenderElement: an Element that can draw itself into a Frame
//   - Frame: one output's draw context for one frame
//   - Renderer: opens frames; tagged with its Backend variant
//   - RenderTarget: where pixels go (PixmapTarget for CPU rendering)
//   - DeviceHandle: GPU device access from the host
//
// # Coordinate Spaces
//
// Buffer coordinates (BufferRect) address texels of an element's buffer.
// Physical coordinates (image.Rectangle) address output pixels. Damage and
// opaque regions reported by an element are relative to the origin of its
// Geometry; the same holds for the damage and opaque lists passed to Draw,
// which are relative to dst.Min.
//
// # Frame Building
//
// A typical per-output loop:
//
//	tracker := render.NewDamageTracker(image.Pt(w, h))
//	for {
//	    elements := buildElements()        // front to back
//	    damage := tracker.Damage(elements, scale)
//	    if len(damage) == 0 {
//	        continue
//	    }
//	    frame, _ := renderer.Render(target)
//	    _ = render.DrawElements(frame, elements, scale, damage)
//	    _ = frame.Finish()
//	}
//
// # Thread Safety
//
// Frames, trackers and targets belong to one output and must be used from
// a single goroutine. Outputs rendered in parallel each own their own.
package render
