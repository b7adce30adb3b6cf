package gles

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/backend"
	"github.com/gogpu/compose/render"
	"github.com/gogpu/compose/shader"
)

// BackendGles is the name of the gles backend.
const BackendGles = backend.BackendGles

// init registers the gles backend on package import.
func init() {
	backend.Register(BackendGles, func() backend.RenderBackend {
		return NewRenderer()
	})
}

// Renderer is the generic renderer. It implements render.Renderer and
// backend.RenderBackend.
//
// Renderer is safe for concurrent use; the frames it opens are not.
type Renderer struct {
	mu sync.RWMutex

	device     render.DeviceHandle
	filter     draw.Interpolator
	shaders    *shader.Registry
	ownShaders bool

	closed bool
}

// NewRenderer creates a renderer.
//
// Unless WithRegistry is given, the renderer creates its own shader
// registry. That registry compiles through naga only when a GPU device is
// configured.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		device: o.device,
		filter: o.filter,
	}
	if o.registry != nil {
		r.shaders = o.registry
	} else {
		var regOpts []shader.RegistryOption
		if !render.HasDevice(o.device) {
			regOpts = append(regOpts, shader.WithCompiler(nil))
		}
		if o.cacheSize > 0 {
			regOpts = append(regOpts, shader.WithCacheSize(o.cacheSize))
		}
		r.shaders = shader.NewRegistry(regOpts...)
		r.ownShaders = true
	}
	return r
}

// Name returns the backend identifier.
func (r *Renderer) Name() string {
	return BackendGles
}

// Backend returns render.BackendGles.
func (r *Renderer) Backend() render.Backend {
	return render.BackendGles
}

// Init reports whether the renderer is usable. It resolves the default
// texture program so that a renderer that cannot sample at all fails
// here rather than on the first frame.
func (r *Renderer) Init() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return ErrClosed
	}
	if _, ok := r.shaders.Get(shader.EffectTexture); !ok {
		return fmt.Errorf("%w: %w", ErrNoTexProgram, r.shaders.Err(shader.EffectTexture))
	}
	compose.Logger().Debug("gles: renderer initialized",
		"gpu", render.HasDevice(r.device), "effects", r.shaders.Effects())
	return nil
}

// Close releases the renderer's shader registry, unless it was supplied
// through WithRegistry. Close is idempotent.
func (r *Renderer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	if r.ownShaders {
		r.shaders.Close()
	}
}

// Shaders returns the renderer's shader registry.
func (r *Renderer) Shaders() *shader.Registry {
	return r.shaders
}

// DeviceHandle returns the configured GPU device, which is a
// render.NullDeviceHandle for CPU-only renderers.
func (r *Renderer) DeviceHandle() render.DeviceHandle {
	return r.device
}

// NewTexture uploads img into a new texture. The texture's origin is the
// image's Bounds().Min.
func (r *Renderer) NewTexture(img image.Image) (*Texture, error) {
	if r.isClosed() {
		return nil, ErrClosed
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptySource
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Texture{img: dst, owner: r}, nil
}

// CreateTexture implements backend.RenderBackend.
func (r *Renderer) CreateTexture(img image.Image) (render.Texture, error) {
	t, err := r.NewTexture(img)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Render opens a frame drawing into target. The frame must be finished
// before the target is read.
func (r *Renderer) Render(target *render.PixmapTarget) (*Frame, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	if r.isClosed() {
		return nil, ErrClosed
	}
	return &Frame{renderer: r, target: target}, nil
}

// RenderOutput draws elements into target, limited to damage, and
// finishes the frame.
func (r *Renderer) RenderOutput(target *render.PixmapTarget, elements []render.RenderElement, scale render.Scale, damage []image.Rectangle) error {
	frame, err := r.Render(target)
	if err != nil {
		return err
	}
	drawErr := render.DrawElements(frame, elements, scale, damage)
	if err := frame.Finish(); err != nil && drawErr == nil {
		return err
	}
	return drawErr
}

func (r *Renderer) isClosed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}

// Ensure Renderer implements the renderer contracts.
var (
	_ render.Renderer       = (*Renderer)(nil)
	_ backend.RenderBackend = (*Renderer)(nil)
)
