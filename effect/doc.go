// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package effect provides render element decorators that change how an
// element is drawn without changing what it reports.
//
// SaturatedElement draws its inner element through the saturated_surface
// texture program. The decorator decides how to saturate, never when:
// callers wrap the elements that need it and resolve the program first,
// because a renderer may not support it.
//
//	program, ok := effect.SaturatedShader(renderer)
//	if ok {
//		elem = effect.NewSaturated(elem, program, 0.2)
//	}
package effect
