// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"strings"
	"testing"
)

func TestBuiltinSourcesContainExpectedContent(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		required []string
	}{
		{
			name:     "texture",
			source:   TextureSource().WGSL,
			required: []string{"@vertex", "@fragment", "textureSample", "alpha"},
		},
		{
			name:     "saturated_surface",
			source:   SaturatedSurfaceSource().WGSL,
			required: []string{"@vertex", "@fragment", "textureSample", SaturationUniform, "mix("},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, req := range tt.required {
				if !strings.Contains(tt.source, req) {
					t.Errorf("%s shader missing required element: %q", tt.name, req)
				}
			}
		})
	}
}

func TestSaturateKernel(t *testing.T) {
	texel := [4]float32{0.8, 0.4, 0.2, 1}
	luma := float32(0.8*lumaR + 0.4*lumaG + 0.2*lumaB)

	tests := []struct {
		name       string
		saturation float32
		want       [4]float32
	}{
		{"identity", 1, texel},
		{"grayscale", 0, [4]float32{luma, luma, luma, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Uniforms{NewUniform(SaturationUniform, Float(tt.saturation))}
			got := saturate(texel, u)
			for i := range got {
				if diff := got[i] - tt.want[i]; diff > 1e-6 || diff < -1e-6 {
					t.Errorf("saturate()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSaturateKernelIdentityIsExact(t *testing.T) {
	u := Uniforms{NewUniform(SaturationUniform, Float(1))}
	for v := 0; v < 256; v++ {
		c := float32(v) / 255
		texel := [4]float32{c, 1 - c, c / 2, 1}
		if got := saturate(texel, u); got != texel {
			t.Fatalf("saturate(%v) at 1.0 = %v, want unchanged", texel, got)
		}
	}
}

func TestSaturateKernelMissingUniform(t *testing.T) {
	texel := [4]float32{0.1, 0.2, 0.3, 0.4}
	if got := saturate(texel, nil); got != texel {
		t.Errorf("saturate() without uniform = %v, want unchanged", got)
	}
}
