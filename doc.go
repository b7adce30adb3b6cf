// Package compose provides render elements for a compositor's per-frame
// drawing pipeline.
//
// # Overview
//
// A compositor builds, every frame, a list of render elements for each
// output, asks them for geometry, damage and opacity, and finally draws
// them through a backend renderer. compose supplies the pieces around that
// loop:
//
//   - render: the element/frame contract, damage tracking and the
//     back-to-front draw helper
//   - shader: per-renderer shader registry and program handles
//   - backend/gles: generic renderer with texture program overrides
//   - backend/tty: direct-to-display renderer built on the gles frame
//   - surface: texture-backed surface element
//   - effect: decorators that change how an element is drawn, such as
//     SaturatedElement
//
// # Saturation
//
// A SaturatedElement wraps any render element and, only for the duration
// of its Draw call, replaces the renderer's default texture program with
// the saturation program:
//
//	program, ok := effect.SaturatedShader(renderer)
//	if ok {
//	    elem = effect.NewSaturated(elem, program, 0.2)
//	}
//
// All queries (geometry, damage, opaque regions, ...) pass through to the
// wrapped element unchanged, so damage tracking and occlusion culling
// behave exactly as for the undecorated element.
//
// # Logging
//
// compose is silent by default. Use SetLogger to route diagnostics to a
// slog.Logger.
package compose
