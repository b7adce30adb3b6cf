// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// Compiler turns WGSL source into SPIR-V words.
type Compiler func(wgsl string) ([]uint32, error)

// CompileWGSL compiles WGSL source to SPIR-V with naga.
func CompileWGSL(wgsl string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}
	return wordsFromBytes(spirvBytes)
}

// wordsFromBytes converts little-endian SPIR-V bytes to 32-bit words.
func wordsFromBytes(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, errors.New("shader: SPIR-V length is not a multiple of 4")
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words, nil
}
