// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"testing"
)

func TestTransformInvert(t *testing.T) {
	for tr := TransformNormal; tr <= TransformFlipped270; tr++ {
		size := image.Pt(40, 30)
		r := image.Rect(5, 7, 15, 20)

		got := tr.Invert().TransformRect(tr.TransformRect(r, size), tr.TransformSize(size))
		if got != r {
			t.Errorf("%v: round trip of %v = %v", tr, r, got)
		}
	}
}

func TestTransformRect(t *testing.T) {
	size := image.Pt(100, 50)
	r := image.Rect(0, 0, 10, 5) // top-left corner of the buffer

	tests := []struct {
		tr   Transform
		want image.Rectangle
	}{
		{TransformNormal, image.Rect(0, 0, 10, 5)},
		{Transform90, image.Rect(45, 0, 50, 10)},
		{Transform180, image.Rect(90, 45, 100, 50)},
		{Transform270, image.Rect(0, 90, 5, 100)},
		{TransformFlipped, image.Rect(90, 0, 100, 5)},
		{TransformFlipped180, image.Rect(0, 45, 10, 50)},
		{TransformFlipped270, image.Rect(0, 0, 5, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.tr.String(), func(t *testing.T) {
			if got := tt.tr.TransformRect(r, size); got != tt.want {
				t.Errorf("TransformRect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformSize(t *testing.T) {
	if got := Transform90.TransformSize(image.Pt(3, 2)); got != image.Pt(2, 3) {
		t.Errorf("Transform90.TransformSize() = %v, want (2,3)", got)
	}
	if got := Transform180.TransformSize(image.Pt(3, 2)); got != image.Pt(3, 2) {
		t.Errorf("Transform180.TransformSize() = %v, want (3,2)", got)
	}
}

func TestTransformString(t *testing.T) {
	if got := TransformFlipped90.String(); got != "flipped-90" {
		t.Errorf("String() = %q, want %q", got, "flipped-90")
	}
	if got := Transform(42).String(); got != "Transform(42)" {
		t.Errorf("String() = %q, want %q", got, "Transform(42)")
	}
}

func TestToPhysical(t *testing.T) {
	r := image.Rect(1, 1, 3, 3)
	if got := ToPhysical(r, UniformScale(1.5)); got != image.Rect(1, 1, 5, 5) {
		t.Errorf("ToPhysical() = %v, want (1,1)-(5,5)", got)
	}
	if got := ToPhysicalInner(r, UniformScale(1.5)); got != image.Rect(2, 2, 4, 4) {
		t.Errorf("ToPhysicalInner() = %v, want (2,2)-(4,4)", got)
	}
	if got := ToPhysicalInner(image.Rect(0, 0, 1, 1), UniformScale(0.5)); !got.Empty() {
		t.Errorf("ToPhysicalInner() = %v, want empty", got)
	}
}

func TestBufferRectBounds(t *testing.T) {
	r := BufferRect{X: 0.5, Y: 1, W: 2, H: 2.25}
	if got := r.Bounds(); got != image.Rect(0, 1, 3, 4) {
		t.Errorf("Bounds() = %v, want (0,1)-(3,4)", got)
	}
	if !(BufferRect{W: 0, H: 5}).Empty() {
		t.Error("zero-width BufferRect should be empty")
	}
}
