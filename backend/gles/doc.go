// Package gles provides the generic renderer backend.
//
// A Renderer owns a shader registry and samples textures through texture
// programs. Every frame starts out with the registry's default texture
// program; elements that need a different fragment stage install an
// override for the duration of their draw:
//
//	frame.OverrideDefaultTexProgram(program, uniforms)
//	defer frame.ClearTexProgramOverride()
//	err := elem.Draw(frame, src, dst, damage, opaque)
//
// Overrides nest: clearing restores whatever program was active before the
// matching override.
//
// Without a GPU device the renderer runs each program's CPU kernel over the
// damaged pixels of a render.PixmapTarget. With a device (WithDeviceHandle)
// programs are additionally compiled to SPIR-V through naga.
//
// The package registers itself with the backend registry on import:
//
//	import _ "github.com/gogpu/compose/backend/gles"
package gles
