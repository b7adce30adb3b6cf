package tty

import (
	"image"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/backend"
	"github.com/gogpu/compose/backend/gles"
	"github.com/gogpu/compose/render"
	"github.com/gogpu/compose/shader"
)

// BackendTty is the name of the tty backend.
const BackendTty = backend.BackendTty

// headlessDisplay names the display of renderers created by the backend
// registry.
const headlessDisplay = "headless-1"

// init registers the tty backend on package import. Registry-created
// renderers present on a MemoryDisplay that accepts any target size.
func init() {
	backend.Register(BackendTty, func() backend.RenderBackend {
		return NewRenderer(NewMemoryDisplay(headlessDisplay, image.Point{}))
	})
}

// Renderer drives one display. It implements render.Renderer and
// backend.RenderBackend.
type Renderer struct {
	gles    *gles.Renderer
	display Display
}

// NewRenderer creates a renderer presenting on display. opts configure
// the embedded gles renderer.
func NewRenderer(display Display, opts ...gles.Option) *Renderer {
	return &Renderer{
		gles:    gles.NewRenderer(opts...),
		display: display,
	}
}

// Name returns the backend identifier.
func (r *Renderer) Name() string {
	return BackendTty
}

// Backend returns render.BackendTty.
func (r *Renderer) Backend() render.Backend {
	return render.BackendTty
}

// Init initializes the embedded gles renderer.
func (r *Renderer) Init() error {
	return wrapError(r.display.Name(), r.gles.Init())
}

// Close releases the embedded gles renderer.
func (r *Renderer) Close() {
	r.gles.Close()
}

// Shaders returns the shader registry of the embedded gles renderer.
func (r *Renderer) Shaders() *shader.Registry {
	return r.gles.Shaders()
}

// Display returns the display the renderer presents on.
func (r *Renderer) Display() Display {
	return r.display
}

// Gles returns the embedded gles renderer.
func (r *Renderer) Gles() *gles.Renderer {
	return r.gles
}

// CreateTexture implements backend.RenderBackend.
func (r *Renderer) CreateTexture(img image.Image) (render.Texture, error) {
	t, err := r.gles.NewTexture(img)
	if err != nil {
		return nil, wrapError(r.display.Name(), err)
	}
	return t, nil
}

// Render opens a frame drawing into target.
func (r *Renderer) Render(target *render.PixmapTarget) (*Frame, error) {
	f, err := r.gles.Render(target)
	if err != nil {
		return nil, wrapError(r.display.Name(), err)
	}
	return &Frame{Frame: f, device: r.display.Name()}, nil
}

// RenderOutput renders elements (front to back) for the display.
//
// If the topmost element covers target, is fully opaque and hands out its
// underlying storage, that buffer is scanned out and target is left
// untouched. Otherwise the elements are composited into target within
// damage and the result is presented.
func (r *Renderer) RenderOutput(target *render.PixmapTarget, elements []render.RenderElement, scale render.Scale, damage []image.Rectangle) error {
	if target == nil {
		return wrapError(r.display.Name(), gles.ErrNilTarget)
	}

	if storage, id, ok := r.scanoutCandidate(target.Bounds(), elements, scale); ok {
		compose.Logger().Debug("tty: direct scanout", "display", r.display.Name(), "element", id)
		return wrapError(r.display.Name(), r.display.Scanout(storage))
	}

	frame, err := r.Render(target)
	if err != nil {
		return err
	}
	drawErr := render.DrawElements(frame, elements, scale, damage)
	if err := frame.Finish(); err != nil && drawErr == nil {
		drawErr = err
	}
	if drawErr != nil {
		return wrapError(r.display.Name(), drawErr)
	}
	return wrapError(r.display.Name(), r.display.Present(target))
}

// scanoutCandidate returns the storage of the topmost element if it can
// replace compositing the whole output.
func (r *Renderer) scanoutCandidate(bounds image.Rectangle, elements []render.RenderElement, scale render.Scale) (render.UnderlyingStorage, render.ID, bool) {
	if len(elements) == 0 {
		return render.UnderlyingStorage{}, "", false
	}
	top := elements[0]
	geo := top.Geometry(scale)
	if !bounds.In(geo) || top.Alpha() < 1 {
		return render.UnderlyingStorage{}, "", false
	}
	opaque := render.TranslateRects(top.OpaqueRegions(scale), geo.Min)
	if !render.ContainsRect(opaque, bounds) {
		return render.UnderlyingStorage{}, "", false
	}
	storage, ok := top.UnderlyingStorage(r)
	if !ok {
		compose.Logger().Debug("tty: scanout candidate without storage", "display", r.display.Name(), "element", top.ID())
		return render.UnderlyingStorage{}, "", false
	}
	return storage, top.ID(), true
}

// Ensure Renderer implements the renderer contracts.
var (
	_ render.Renderer       = (*Renderer)(nil)
	_ backend.RenderBackend = (*Renderer)(nil)
)
