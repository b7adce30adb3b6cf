// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"sync/atomic"
)

// Kernel is the CPU form of a texture program's fragment stage. It maps a
// premultiplied RGBA texel (components in [0, 1]) to a premultiplied
// output color. Element alpha is applied by the renderer afterwards.
type Kernel func(texel [4]float32, u Uniforms) [4]float32

// Program is a compiled texture program.
//
// Programs are owned by the Registry that compiled them. Holders keep a
// plain pointer, which is the cheap way to share a program; the pointer
// stays usable until the registry evicts the program or is closed, after
// which Destroyed reports true and renderers refuse to sample with it.
type Program struct {
	name     string
	source   string
	spirv    []uint32
	uniforms []UniformDecl
	kernel   Kernel

	destroyed atomic.Bool
}

func newProgram(name string, src Source, spirv []uint32) *Program {
	return &Program{
		name:     name,
		source:   src.WGSL,
		spirv:    spirv,
		uniforms: append([]UniformDecl(nil), src.Uniforms...),
		kernel:   src.Kernel,
	}
}

// Name returns the effect name the program was registered under.
func (p *Program) Name() string { return p.name }

// Source returns the WGSL source.
func (p *Program) Source() string { return p.source }

// SPIRV returns the compiled SPIR-V words, or nil when the registry was
// created without a compiler.
func (p *Program) SPIRV() []uint32 { return p.spirv }

// Uniforms returns the uniforms the program declares in addition to the
// renderer-provided ones (matrix, alpha).
func (p *Program) Uniforms() []UniformDecl { return p.uniforms }

// Destroyed reports whether the owning registry released the program.
func (p *Program) Destroyed() bool { return p.destroyed.Load() }

// Shade runs the program's kernel on one texel.
func (p *Program) Shade(texel [4]float32, u Uniforms) [4]float32 {
	if p.kernel == nil {
		return texel
	}
	return p.kernel(texel, u)
}

func (p *Program) destroy() {
	p.destroyed.Store(true)
}
