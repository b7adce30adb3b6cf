// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"fmt"
)

// UniformType is the shader-side type of a uniform.
type UniformType uint8

// Uniform types.
const (
	UniformFloat UniformType = iota + 1
	UniformVec2
	UniformVec3
	UniformVec4
	UniformInt
)

// String implements fmt.Stringer.
func (t UniformType) String() string {
	switch t {
	case UniformFloat:
		return "f32"
	case UniformVec2:
		return "vec2<f32>"
	case UniformVec3:
		return "vec3<f32>"
	case UniformVec4:
		return "vec4<f32>"
	case UniformInt:
		return "i32"
	default:
		return fmt.Sprintf("UniformType(%d)", uint8(t))
	}
}

// UniformValue is the value of one uniform.
type UniformValue interface {
	Type() UniformType
}

// Float is a single float uniform value.
type Float float32

// Vec2 is a two-component float uniform value.
type Vec2 [2]float32

// Vec3 is a three-component float uniform value.
type Vec3 [3]float32

// Vec4 is a four-component float uniform value.
type Vec4 [4]float32

// Int is a signed integer uniform value.
type Int int32

func (Float) Type() UniformType { return UniformFloat }
func (Vec2) Type() UniformType  { return UniformVec2 }
func (Vec3) Type() UniformType  { return UniformVec3 }
func (Vec4) Type() UniformType  { return UniformVec4 }
func (Int) Type() UniformType   { return UniformInt }

// Uniform is a named uniform value passed along with a program.
type Uniform struct {
	Name  string
	Value UniformValue
}

// NewUniform returns a uniform with the given name and value.
func NewUniform(name string, value UniformValue) Uniform {
	return Uniform{Name: name, Value: value}
}

// Uniforms is the set of uniforms bound for one draw.
type Uniforms []Uniform

// Lookup returns the value bound to name.
func (u Uniforms) Lookup(name string) (UniformValue, bool) {
	for _, v := range u {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// Float returns the float bound to name.
func (u Uniforms) Float(name string) (float32, bool) {
	v, ok := u.Lookup(name)
	if !ok {
		return 0, false
	}
	f, ok := v.(Float)
	return float32(f), ok
}

// UniformDecl declares one uniform a program expects.
type UniformDecl struct {
	Name string
	Type UniformType
}

// CheckUniforms verifies that u binds exactly the declared uniforms with
// the declared types.
func CheckUniforms(decls []UniformDecl, u Uniforms) error {
	if len(u) != len(decls) {
		return fmt.Errorf("shader: %d uniforms bound, program declares %d", len(u), len(decls))
	}
	for _, d := range decls {
		v, ok := u.Lookup(d.Name)
		if !ok || v == nil {
			return fmt.Errorf("shader: uniform %q not bound", d.Name)
		}
		if v.Type() != d.Type {
			return fmt.Errorf("shader: uniform %q is %v, program declares %v", d.Name, v.Type(), d.Type)
		}
	}
	return nil
}
