package gles

import (
	"golang.org/x/image/draw"

	"github.com/gogpu/compose/render"
	"github.com/gogpu/compose/shader"
)

// Option configures a Renderer.
type Option func(*options)

type options struct {
	device    render.DeviceHandle
	filter    draw.Interpolator
	registry  *shader.Registry
	cacheSize int
}

func defaultOptions() options {
	return options{
		device: render.NullDeviceHandle{},
		filter: draw.NearestNeighbor,
	}
}

// WithDeviceHandle sets the GPU device the renderer compiles programs for.
// A renderer with a device validates every program through naga on first
// use; without one, programs run on the CPU only.
//
// Example:
//
//	r := gles.NewRenderer(gles.WithDeviceHandle(app))
func WithDeviceHandle(h render.DeviceHandle) Option {
	return func(o *options) {
		if h != nil {
			o.device = h
		}
	}
}

// WithFilter sets the interpolator used to sample textures. The default is
// draw.NearestNeighbor, which is exact for unscaled content.
func WithFilter(f draw.Interpolator) Option {
	return func(o *options) {
		if f != nil {
			o.filter = f
		}
	}
}

// WithRegistry makes the renderer use an existing shader registry. The
// caller keeps ownership: closing the renderer does not close it.
func WithRegistry(r *shader.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithShaderCacheSize bounds the number of compiled programs the
// renderer's own registry keeps. Ignored together with WithRegistry.
func WithShaderCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}
