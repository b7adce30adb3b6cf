// Package backend provides a pluggable rendering backend abstraction.
//
// Two backends exist: the generic renderer ("gles", package backend/gles)
// and the direct-display renderer ("tty", package backend/tty). Each
// registers itself from an init() function, so importing a backend package
// is enough to make it selectable:
//
//	import _ "github.com/gogpu/compose/backend/gles"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("gles")
//
// # Usage
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	tex, _ := b.CreateTexture(img)
//	elem := surface.New(tex)
//	target := render.NewPixmapTarget(800, 600)
//	err = b.RenderOutput(target, []render.RenderElement{elem},
//		render.UniformScale(1), []image.Rectangle{target.Bounds()})
//
// # Available Backends
//
//   - "tty": renders and presents on a display, scanning out covering
//     opaque buffers directly
//   - "gles": renders into a target only (always available)
package backend
