// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"testing"
)

// stubElement is a RenderElement with fixed answers that records Draw calls.
type stubElement struct {
	id      ID
	commit  CommitCounter
	geo     image.Rectangle
	damage  DamageSet
	opaque  OpaqueRegions
	alpha   float32
	drawErr error

	draws []drawCall
}

type drawCall struct {
	dst    image.Rectangle
	damage []image.Rectangle
}

func (e *stubElement) ID() ID                         { return e.id }
func (e *stubElement) CurrentCommit() CommitCounter   { return e.commit }
func (e *stubElement) Geometry(Scale) image.Rectangle { return e.geo }
func (e *stubElement) Src() BufferRect {
	return BufferRectFromSize(e.geo.Dx(), e.geo.Dy())
}
func (e *stubElement) Transform() Transform { return TransformNormal }
func (e *stubElement) DamageSince(_ Scale, commit *CommitCounter) DamageSet {
	if commit == nil || *commit != e.commit {
		return e.damage
	}
	return nil
}
func (e *stubElement) OpaqueRegions(Scale) OpaqueRegions { return e.opaque }
func (e *stubElement) Alpha() float32                    { return e.alpha }
func (e *stubElement) Kind() Kind                        { return KindUnspecified }

func (e *stubElement) Draw(_ Frame, _ BufferRect, dst image.Rectangle, damage, _ []image.Rectangle) error {
	e.draws = append(e.draws, drawCall{dst: dst, damage: damage})
	return e.drawErr
}

func (e *stubElement) UnderlyingStorage(Renderer) (UnderlyingStorage, bool) {
	return UnderlyingStorage{}, false
}

type stubFrame struct{}

func (stubFrame) Backend() Backend { return BackendGles }
func (stubFrame) RenderTexture(Texture, BufferRect, image.Rectangle, []image.Rectangle, []image.Rectangle, Transform, float32) error {
	return nil
}

var _ RenderElement = (*stubElement)(nil)
var _ Frame = stubFrame{}

func TestDrawElementsOcclusion(t *testing.T) {
	top := &stubElement{
		id:     "top",
		geo:    image.Rect(0, 0, 50, 100),
		opaque: OpaqueRegions{image.Rect(0, 0, 50, 100)},
		alpha:  1,
	}
	bottom := &stubElement{
		id:    "bottom",
		geo:   image.Rect(0, 0, 100, 100),
		alpha: 1,
	}

	damage := []image.Rectangle{image.Rect(0, 0, 100, 100)}
	if err := DrawElements(stubFrame{}, []RenderElement{top, bottom}, UniformScale(1), damage); err != nil {
		t.Fatalf("DrawElements() error = %v", err)
	}

	if len(top.draws) != 1 {
		t.Fatalf("top drawn %d times, want 1", len(top.draws))
	}
	if len(bottom.draws) != 1 {
		t.Fatalf("bottom drawn %d times, want 1", len(bottom.draws))
	}
	got := bottom.draws[0].damage
	if len(got) != 1 || got[0] != image.Rect(50, 0, 100, 100) {
		t.Errorf("bottom damage = %v, want [(50,0)-(100,100)]", got)
	}
}

func TestDrawElementsFullyOccludedSkipped(t *testing.T) {
	top := &stubElement{
		id:     "top",
		geo:    image.Rect(0, 0, 100, 100),
		opaque: OpaqueRegions{image.Rect(0, 0, 100, 100)},
	}
	bottom := &stubElement{id: "bottom", geo: image.Rect(10, 10, 20, 20)}

	damage := []image.Rectangle{image.Rect(0, 0, 100, 100)}
	if err := DrawElements(stubFrame{}, []RenderElement{top, bottom}, UniformScale(1), damage); err != nil {
		t.Fatalf("DrawElements() error = %v", err)
	}
	if len(bottom.draws) != 0 {
		t.Errorf("occluded element drawn %d times, want 0", len(bottom.draws))
	}
}

func TestDrawElementsDamageIsLocal(t *testing.T) {
	e := &stubElement{id: "e", geo: image.Rect(20, 30, 60, 70)}
	damage := []image.Rectangle{image.Rect(25, 35, 30, 40)}

	if err := DrawElements(stubFrame{}, []RenderElement{e}, UniformScale(1), damage); err != nil {
		t.Fatalf("DrawElements() error = %v", err)
	}
	if len(e.draws) != 1 {
		t.Fatalf("drawn %d times, want 1", len(e.draws))
	}
	if got := e.draws[0].damage; len(got) != 1 || got[0] != image.Rect(5, 5, 10, 10) {
		t.Errorf("damage = %v, want [(5,5)-(10,10)]", got)
	}
	if got := e.draws[0].dst; got != e.geo {
		t.Errorf("dst = %v, want %v", got, e.geo)
	}
}

func TestDrawElementsPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	e := &stubElement{id: "e", geo: image.Rect(0, 0, 10, 10), drawErr: boom}

	err := DrawElements(stubFrame{}, []RenderElement{e}, UniformScale(1), []image.Rectangle{image.Rect(0, 0, 10, 10)})
	if !errors.Is(err, boom) {
		t.Errorf("DrawElements() error = %v, want wrapping %v", err, boom)
	}
}

func TestSubtractRect(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)

	tests := []struct {
		name string
		cut  image.Rectangle
		area int
	}{
		{"disjoint", image.Rect(20, 20, 30, 30), 100},
		{"center", image.Rect(2, 2, 8, 8), 64},
		{"cover", image.Rect(-1, -1, 11, 11), 0},
		{"left half", image.Rect(0, 0, 5, 10), 50},
		{"empty", image.Rectangle{}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			area := 0
			for _, p := range SubtractRect([]image.Rectangle{r}, tt.cut) {
				if p.Overlaps(tt.cut) {
					t.Errorf("piece %v overlaps cut %v", p, tt.cut)
				}
				area += p.Dx() * p.Dy()
			}
			if area != tt.area {
				t.Errorf("remaining area = %d, want %d", area, tt.area)
			}
		})
	}
}

func TestContainsRect(t *testing.T) {
	halves := []image.Rectangle{image.Rect(0, 0, 5, 10), image.Rect(5, 0, 10, 10)}
	if !ContainsRect(halves, image.Rect(0, 0, 10, 10)) {
		t.Error("two halves should cover the whole")
	}
	if ContainsRect(halves[:1], image.Rect(0, 0, 10, 10)) {
		t.Error("one half should not cover the whole")
	}
}
