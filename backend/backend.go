package backend

import (
	"errors"
	"image"

	"github.com/gogpu/compose/render"
	"github.com/gogpu/compose/shader"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// RenderBackend is the interface for rendering backends.
// It abstracts the renderer variant, so that the same element list can be
// composited by the generic renderer or presented on a display.
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type RenderBackend interface {
	render.Renderer

	// Name returns the backend identifier (e.g., "gles", "tty").
	Name() string

	// Init initializes the backend.
	// This should be called before any rendering operations.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// Shaders returns the backend's shader registry. Elements look up
	// their effect programs here.
	Shaders() *shader.Registry

	// CreateTexture uploads an image into a texture the backend's frames
	// can sample.
	CreateTexture(img image.Image) (render.Texture, error)

	// RenderOutput renders one frame of elements (front to back) into
	// target, limited to damage in output coordinates.
	RenderOutput(target *render.PixmapTarget, elements []render.RenderElement, scale render.Scale, damage []image.Rectangle) error
}
