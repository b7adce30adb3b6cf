// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	_ "embed"
)

// Built-in effect names.
const (
	// EffectTexture is the renderer's default texture-sampling program.
	EffectTexture = "texture"

	// EffectSaturatedSurface adjusts color saturation of a surface.
	EffectSaturatedSurface = "saturated_surface"
)

// SaturationUniform is the single uniform of the saturated surface
// program.
const SaturationUniform = "niri_saturation"

// Rec. 709 luma coefficients.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

//go:embed shaders/texture.wgsl
var textureWGSL string

//go:embed shaders/saturated_surface.wgsl
var saturatedSurfaceWGSL string

// TextureSource returns the default texture program.
func TextureSource() Source {
	return Source{
		WGSL:   textureWGSL,
		Kernel: func(texel [4]float32, _ Uniforms) [4]float32 { return texel },
	}
}

// SaturatedSurfaceSource returns the saturation program.
func SaturatedSurfaceSource() Source {
	return Source{
		WGSL:     saturatedSurfaceWGSL,
		Uniforms: []UniformDecl{{Name: SaturationUniform, Type: UniformFloat}},
		Kernel:   saturate,
	}
}

// saturate mirrors the fragment stage of saturated_surface.wgsl. The mix
// is written as x*(1-s) + y*s so that s == 1 returns the texel unchanged.
func saturate(texel [4]float32, u Uniforms) [4]float32 {
	s, ok := u.Float(SaturationUniform)
	if !ok {
		return texel
	}
	luma := texel[0]*lumaR + texel[1]*lumaG + texel[2]*lumaB
	return [4]float32{
		luma*(1-s) + texel[0]*s,
		luma*(1-s) + texel[1]*s,
		luma*(1-s) + texel[2]*s,
		texel[3],
	}
}

func registerBuiltins(r *Registry) {
	// Both sources are non-empty; Register cannot fail on a fresh registry.
	_ = r.Register(EffectTexture, TextureSource())
	_ = r.Register(EffectSaturatedSurface, SaturatedSurfaceSource())
}
