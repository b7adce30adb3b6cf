// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides a texture-backed render element.
//
// An Element stands for one client surface: a buffer (texture) placed at a
// logical location, with a buffer scale, a buffer transform and an
// optional viewport crop. Every Commit bumps the element's commit counter
// and records the committed buffer damage, so that damage trackers can ask
// what changed since any recent frame.
//
// Example:
//
//	tex, _ := renderer.CreateTexture(img)
//	elem := surface.New(tex,
//		surface.WithLocation(image.Pt(100, 50)),
//		surface.WithOpaqueRegion(image.Rect(0, 0, w, h)),
//	)
//	elem.Commit(image.Rect(0, 0, 16, 16))
//
// Elements are not safe for concurrent use; commit and draw from the
// goroutine that owns the output.
package surface
