package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/compose/backend"
	"github.com/gogpu/compose/backend/gles"
	"github.com/gogpu/compose/backend/tty"
	"github.com/gogpu/compose/effect"
	"github.com/gogpu/compose/render"
	"github.com/gogpu/compose/shader"
	"github.com/gogpu/compose/surface"
)

type config struct {
	input      string
	backend    string
	saturation float64
	output     string
	size       int
	validate   bool
}

func run(cfg config) error {
	src, err := loadSource(cfg)
	if err != nil {
		return err
	}

	b, closeBackend, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer closeBackend()

	tex, err := b.CreateTexture(src)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	bounds := image.Rect(0, 0, tex.Width(), tex.Height())

	var elem render.RenderElement = surface.New(tex, surface.WithOpaqueRegion(bounds))
	if program, ok := effect.SaturatedShader(b); ok {
		elem = effect.NewSaturated(elem, program, float32(cfg.saturation))
	} else {
		// Draw unsaturated rather than not at all.
		log.Printf("%s backend cannot saturate: %v", b.Name(), b.Shaders().Err(shader.EffectSaturatedSurface))
	}

	target := render.NewPixmapTarget(bounds.Dx(), bounds.Dy())
	if err := b.RenderOutput(target, []render.RenderElement{elem}, render.UniformScale(1), []image.Rectangle{bounds}); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return writePNG(cfg.output, target.Image())
}

// openBackend returns the requested backend, initialized. With validate,
// programs are compiled through naga by a registry the demo owns.
func openBackend(cfg config) (backend.RenderBackend, func(), error) {
	if !cfg.validate {
		var (
			b   backend.RenderBackend
			err error
		)
		if cfg.backend == "" {
			b, err = backend.InitDefault()
		} else {
			b, err = backend.InitBackend(cfg.backend)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("backend %q: %w", cfg.backend, err)
		}
		return b, b.Close, nil
	}

	reg := shader.NewRegistry()
	var b backend.RenderBackend
	switch cfg.backend {
	case "", tty.BackendTty:
		b = tty.NewRenderer(tty.NewMemoryDisplay("headless-1", image.Point{}), gles.WithRegistry(reg))
	case gles.BackendGles:
		b = gles.NewRenderer(gles.WithRegistry(reg))
	default:
		reg.Close()
		return nil, nil, fmt.Errorf("backend %q: %w", cfg.backend, backend.ErrBackendNotAvailable)
	}
	closeAll := func() {
		b.Close()
		reg.Close()
	}
	if err := b.Init(); err != nil {
		closeAll()
		return nil, nil, err
	}
	return b, closeAll, nil
}

func loadSource(cfg config) (image.Image, error) {
	if cfg.input == "" {
		if cfg.size <= 0 {
			return nil, fmt.Errorf("invalid size %d", cfg.size)
		}
		return testPattern(cfg.size), nil
	}

	f, err := os.Open(cfg.input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cfg.input, err)
	}
	return img, nil
}

// testPattern returns a hue sweep left to right fading to white at the
// bottom, which shows saturation changes at a glance.
func testPattern(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		s := 1 - float64(y)/float64(size)
		for x := 0; x < size; x++ {
			h := 360 * float64(x) / float64(size)
			r, g, b := colorful.Hsv(h, s, 1).RGB255()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
