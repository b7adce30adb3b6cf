package tty

import (
	"image"
	"sync"

	"golang.org/x/image/draw"

	"github.com/gogpu/compose/render"
)

// Display is an output a tty Renderer presents on.
type Display interface {
	// Name returns the connector name, e.g. "eDP-1".
	Name() string

	// Size returns the mode size in pixels. A zero size accepts targets of
	// any size.
	Size() image.Point

	// Scanout puts a client buffer on the primary plane.
	Scanout(storage render.UnderlyingStorage) error

	// Present shows a composited target.
	Present(target *render.PixmapTarget) error
}

// MemoryDisplay is a Display that keeps what it is shown in memory. It
// backs headless sessions and tests.
//
// MemoryDisplay is safe for concurrent use.
type MemoryDisplay struct {
	name string
	size image.Point

	mu        sync.Mutex
	scanouts  int
	presents  int
	scanned   render.UnderlyingStorage
	presented *image.RGBA
	fail      error
}

// NewMemoryDisplay creates a display with the given connector name and
// mode size.
func NewMemoryDisplay(name string, size image.Point) *MemoryDisplay {
	return &MemoryDisplay{name: name, size: size}
}

// Name implements Display.
func (d *MemoryDisplay) Name() string { return d.name }

// Size implements Display.
func (d *MemoryDisplay) Size() image.Point { return d.size }

// Scanout implements Display.
func (d *MemoryDisplay) Scanout(storage render.UnderlyingStorage) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fail != nil {
		return d.fail
	}
	d.scanouts++
	d.scanned = storage
	return nil
}

// Present implements Display. It copies the target.
func (d *MemoryDisplay) Present(target *render.PixmapTarget) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fail != nil {
		return d.fail
	}
	if d.size != (image.Point{}) && target.Bounds().Size() != d.size {
		return ErrSizeMismatch
	}

	src := target.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	d.presents++
	d.presented = img
	return nil
}

// SetError makes every following Scanout and Present fail with err. A nil
// err restores normal operation.
func (d *MemoryDisplay) SetError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fail = err
}

// Scanouts returns the number of direct scanouts and the last scanned
// buffer.
func (d *MemoryDisplay) Scanouts() (int, render.UnderlyingStorage) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scanouts, d.scanned
}

// Presents returns the number of presented frames and a copy of the last
// one, or nil.
func (d *MemoryDisplay) Presents() (int, *image.RGBA) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.presents, d.presented
}

// Ensure MemoryDisplay implements Display.
var _ Display = (*MemoryDisplay)(nil)
