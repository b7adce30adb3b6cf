// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gogpu/compose"
)

// Registry errors.
var (
	// ErrClosed is returned when registering into a closed registry.
	ErrClosed = errors.New("shader: registry closed")

	// ErrEmptySource is returned when a source has no WGSL.
	ErrEmptySource = errors.New("shader: empty source")

	// ErrUnknownEffect is reported by Err for effects never registered.
	ErrUnknownEffect = errors.New("shader: unknown effect")
)

// defaultCacheSize bounds the number of compiled programs kept per
// registry.
const defaultCacheSize = 32

// Source describes an effect program before compilation.
type Source struct {
	// WGSL is the shader source.
	WGSL string

	// Uniforms declares the effect-specific uniforms.
	Uniforms []UniformDecl

	// Kernel is the CPU fragment stage used by renderers without a GPU
	// device.
	Kernel Kernel
}

// RegistryOption configures a Registry.
type RegistryOption func(*registryOptions)

type registryOptions struct {
	compiler  Compiler
	cacheSize int
	builtins  bool
}

// WithCompiler sets the WGSL compiler. A nil compiler produces CPU-only
// programs without SPIR-V.
func WithCompiler(c Compiler) RegistryOption {
	return func(o *registryOptions) {
		o.compiler = c
	}
}

// WithCacheSize bounds the number of compiled programs kept alive.
// Evicted programs are destroyed and recompiled on the next Get.
func WithCacheSize(n int) RegistryOption {
	return func(o *registryOptions) {
		if n > 0 {
			o.cacheSize = n
		}
	}
}

// WithoutBuiltins creates a registry without the built-in effects.
func WithoutBuiltins() RegistryOption {
	return func(o *registryOptions) {
		o.builtins = false
	}
}

// Registry resolves effect names to compiled programs for one renderer.
//
// Programs are compiled lazily on first Get. Compile failures are
// remembered, so an effect that is unsupported on a renderer costs one
// compile attempt, not one per frame. Registry is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	compiler Compiler
	sources  map[string]Source
	failed   map[string]error
	programs *lru.Cache[string, *Program]
	closed   bool
}

// NewRegistry creates a registry. By default it compiles with CompileWGSL
// and registers EffectTexture and EffectSaturatedSurface.
func NewRegistry(opts ...RegistryOption) *Registry {
	o := registryOptions{
		compiler:  CompileWGSL,
		cacheSize: defaultCacheSize,
		builtins:  true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	programs, err := lru.NewWithEvict(o.cacheSize, func(name string, p *Program) {
		p.destroy()
		compose.Logger().Debug("shader: program released", "effect", name)
	})
	if err != nil {
		// Only reachable with a non-positive size, which the options rule out.
		panic(fmt.Sprintf("shader: create program cache: %v", err))
	}

	r := &Registry{
		compiler: o.compiler,
		sources:  make(map[string]Source),
		failed:   make(map[string]error),
		programs: programs,
	}
	if o.builtins {
		registerBuiltins(r)
	}
	return r
}

// Register adds or replaces the source for an effect. Replacing an effect
// destroys its previously compiled program.
func (r *Registry) Register(effect string, src Source) error {
	if src.WGSL == "" {
		return fmt.Errorf("%w: %s", ErrEmptySource, effect)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	r.sources[effect] = src
	delete(r.failed, effect)
	r.programs.Remove(effect)
	return nil
}

// Get returns the compiled program for effect. It reports false when the
// effect is unknown, failed to compile, or the registry is closed.
func (r *Registry) Get(effect string) (*Program, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, false
	}
	if p, ok := r.programs.Get(effect); ok {
		return p, true
	}
	if _, ok := r.failed[effect]; ok {
		return nil, false
	}
	src, ok := r.sources[effect]
	if !ok {
		return nil, false
	}

	var spirv []uint32
	if r.compiler != nil {
		words, err := r.compiler(src.WGSL)
		if err != nil {
			r.failed[effect] = err
			compose.Logger().Warn("shader: effect unavailable", "effect", effect, "err", err)
			return nil, false
		}
		spirv = words
	}

	p := newProgram(effect, src, spirv)
	r.programs.Add(effect, p)
	compose.Logger().Info("shader: program compiled", "effect", effect, "spirv_words", len(spirv))
	return p, true
}

// Err returns why Get reports false for effect, or nil if it would
// succeed (or has not been tried yet).
func (r *Registry) Err(effect string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if err, ok := r.failed[effect]; ok {
		return err
	}
	if _, ok := r.sources[effect]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEffect, effect)
	}
	return nil
}

// Effects returns the registered effect names in sorted order.
func (r *Registry) Effects() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Close destroys every compiled program. Get reports false afterwards.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.programs.Purge()
}
