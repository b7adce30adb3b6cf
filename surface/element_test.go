// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"slices"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/compose/render"
)

// fakeTexture is a render.Texture with a fixed size.
type fakeTexture struct{ w, h int }

func (t fakeTexture) Width() int                     { return t.w }
func (t fakeTexture) Height() int                    { return t.h }
func (t fakeTexture) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }

// recordingFrame records RenderTexture calls.
type recordingFrame struct {
	calls []renderCall
}

type renderCall struct {
	tex       render.Texture
	src       render.BufferRect
	dst       image.Rectangle
	damage    []image.Rectangle
	opaque    []image.Rectangle
	transform render.Transform
	alpha     float32
}

func (f *recordingFrame) Backend() render.Backend { return render.BackendGles }

func (f *recordingFrame) RenderTexture(tex render.Texture, src render.BufferRect, dst image.Rectangle, damage, opaque []image.Rectangle, transform render.Transform, alpha float32) error {
	f.calls = append(f.calls, renderCall{tex, src, dst, damage, opaque, transform, alpha})
	return nil
}

func TestNewDefaults(t *testing.T) {
	tex := fakeTexture{64, 32}
	e := New(tex)

	if e.ID() == "" {
		t.Error("ID() should not be empty")
	}
	if New(tex).ID() == e.ID() {
		t.Error("elements should get distinct IDs")
	}
	if e.CurrentCommit() != 0 {
		t.Errorf("CurrentCommit() = %d, want 0", e.CurrentCommit())
	}
	if got, want := e.Src(), render.BufferRectFromSize(64, 32); got != want {
		t.Errorf("Src() = %v, want %v", got, want)
	}
	if e.Alpha() != 1 {
		t.Errorf("Alpha() = %v, want 1", e.Alpha())
	}
	if e.Kind() != render.KindUnspecified {
		t.Errorf("Kind() = %v, want unspecified", e.Kind())
	}
	if _, ok := e.UnderlyingStorage(nil); ok {
		t.Error("UnderlyingStorage() should be unavailable by default")
	}
}

func TestGeometry(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		scale render.Scale
		want  image.Rectangle
	}{
		{"plain", nil, render.UniformScale(1), image.Rect(0, 0, 64, 32)},
		{"located", []Option{WithLocation(image.Pt(10, 5))}, render.UniformScale(1), image.Rect(10, 5, 74, 37)},
		{"output scale", []Option{WithLocation(image.Pt(10, 5))}, render.UniformScale(2), image.Rect(20, 10, 148, 74)},
		{"buffer scale", []Option{WithBufferScale(2)}, render.UniformScale(1), image.Rect(0, 0, 32, 16)},
		{"rotated", []Option{WithTransform(render.Transform90)}, render.UniformScale(1), image.Rect(0, 0, 32, 64)},
		{"viewport", []Option{WithViewport(render.BufferRect{X: 8, Y: 8, W: 16, H: 8})}, render.UniformScale(1), image.Rect(0, 0, 16, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(fakeTexture{64, 32}, tt.opts...)
			if got := e.Geometry(tt.scale); got != tt.want {
				t.Errorf("Geometry() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDamageSince(t *testing.T) {
	e := New(fakeTexture{64, 32}, WithLocation(image.Pt(100, 100)))
	scale := render.UniformScale(1)
	full := render.DamageSet{image.Rect(0, 0, 64, 32)}

	if got := e.DamageSince(scale, nil); !slices.Equal(got, full) {
		t.Errorf("DamageSince(nil) = %v, want %v", got, full)
	}

	before := e.CurrentCommit()
	e.Commit(image.Rect(0, 0, 8, 8))
	e.Commit(image.Rect(60, 30, 70, 40))

	want := render.DamageSet{image.Rect(0, 0, 8, 8), image.Rect(60, 30, 64, 32)}
	if got := e.DamageSince(scale, &before); !slices.Equal(got, want) {
		t.Errorf("DamageSince(before) = %v, want %v", got, want)
	}

	current := e.CurrentCommit()
	if got := e.DamageSince(scale, &current); len(got) != 0 {
		t.Errorf("DamageSince(current) = %v, want none", got)
	}

	future := current + 5
	if got := e.DamageSince(scale, &future); !slices.Equal(got, full) {
		t.Errorf("DamageSince(future) = %v, want %v", got, full)
	}
}

func TestDamageSinceHistoryExhausted(t *testing.T) {
	e := New(fakeTexture{16, 16}, WithDamageHistory(2))
	scale := render.UniformScale(1)

	before := e.CurrentCommit()
	for range 3 {
		e.Commit(image.Rect(0, 0, 1, 1))
	}

	want := render.DamageSet{image.Rect(0, 0, 16, 16)}
	if got := e.DamageSince(scale, &before); !slices.Equal(got, want) {
		t.Errorf("DamageSince() = %v, want full damage %v", got, want)
	}
}

func TestDamageSinceScaled(t *testing.T) {
	e := New(fakeTexture{64, 64}, WithBufferScale(2))
	before := e.CurrentCommit()
	e.Commit(image.Rect(3, 3, 5, 5))

	want := render.DamageSet{image.Rect(2, 2, 6, 6)}
	if got := e.DamageSince(render.UniformScale(2), &before); !slices.Equal(got, want) {
		t.Errorf("DamageSince() = %v, want %v", got, want)
	}
}

func TestCommitWithoutDamage(t *testing.T) {
	e := New(fakeTexture{10, 10})
	before := e.CurrentCommit()
	e.Commit()

	if e.CurrentCommit() != before+1 {
		t.Errorf("CurrentCommit() = %d, want %d", e.CurrentCommit(), before+1)
	}
	want := render.DamageSet{image.Rect(0, 0, 10, 10)}
	if got := e.DamageSince(render.UniformScale(1), &before); !slices.Equal(got, want) {
		t.Errorf("DamageSince() = %v, want %v", got, want)
	}
}

func TestAttach(t *testing.T) {
	e := New(fakeTexture{10, 10})
	next := fakeTexture{20, 10}
	e.Attach(next)

	if e.Texture() != next {
		t.Error("Attach() should replace the texture")
	}
	if e.CurrentCommit() != 1 {
		t.Errorf("CurrentCommit() = %d, want 1", e.CurrentCommit())
	}
	if got := e.Geometry(render.UniformScale(1)); got != image.Rect(0, 0, 20, 10) {
		t.Errorf("Geometry() = %v, want 20x10", got)
	}
}

func TestOpaqueRegions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want render.OpaqueRegions
	}{
		{"none", nil, nil},
		{"full", []Option{WithOpaqueRegion(image.Rect(0, 0, 64, 32))}, render.OpaqueRegions{image.Rect(0, 0, 64, 32)}},
		{"clipped", []Option{WithOpaqueRegion(image.Rect(-5, 0, 10, 100))}, render.OpaqueRegions{image.Rect(0, 0, 10, 32)}},
		{"buffer scale rounds inward", []Option{WithBufferScale(2), WithOpaqueRegion(image.Rect(1, 1, 9, 9))}, render.OpaqueRegions{image.Rect(1, 1, 4, 4)}},
		{"translucent", []Option{WithAlpha(0.5), WithOpaqueRegion(image.Rect(0, 0, 64, 32))}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(fakeTexture{64, 32}, tt.opts...)
			if got := e.OpaqueRegions(render.UniformScale(1)); !slices.Equal(got, tt.want) {
				t.Errorf("OpaqueRegions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	tex := fakeTexture{8, 8}
	e := New(tex, WithTransform(render.Transform180), WithAlpha(0.25))
	f := &recordingFrame{}

	src := render.BufferRectFromSize(8, 8)
	dst := image.Rect(4, 4, 12, 12)
	damage := []image.Rectangle{image.Rect(0, 0, 2, 2)}
	if err := e.Draw(f, src, dst, damage, nil); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	if len(f.calls) != 1 {
		t.Fatalf("RenderTexture called %d times, want 1", len(f.calls))
	}
	c := f.calls[0]
	if c.tex != tex || c.src != src || c.dst != dst || !slices.Equal(c.damage, damage) {
		t.Errorf("RenderTexture() got %+v", c)
	}
	if c.transform != render.Transform180 || c.alpha != 0.25 {
		t.Errorf("transform, alpha = %v, %v, want 180, 0.25", c.transform, c.alpha)
	}
}

func TestUnderlyingStorage(t *testing.T) {
	tex := fakeTexture{8, 8}
	e := New(tex, WithUnderlyingStorage(), WithTransform(render.Transform270))

	s, ok := e.UnderlyingStorage(nil)
	if !ok {
		t.Fatal("UnderlyingStorage() should be available")
	}
	if s.Texture != tex || s.Transform != render.Transform270 {
		t.Errorf("UnderlyingStorage() = %+v", s)
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	e := New(fakeTexture{8, 8}, WithBufferScale(0), WithAlpha(3), WithID(""), WithViewport(render.BufferRect{}))

	if e.bufferScale != 1 {
		t.Errorf("bufferScale = %d, want 1", e.bufferScale)
	}
	if e.Alpha() != 1 {
		t.Errorf("Alpha() = %v, want clamped to 1", e.Alpha())
	}
	if e.ID() == "" {
		t.Error("WithID(\"\") should keep the generated ID")
	}
	if e.Src() != render.BufferRectFromSize(8, 8) {
		t.Errorf("Src() = %v, want whole buffer", e.Src())
	}
}
