// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"

	"github.com/google/uuid"
)

// ID identifies a render element across frames. Damage trackers match
// elements between frames by ID, so wrappers that only change how an
// element is drawn must report the wrapped element's ID.
type ID string

// NewID returns a fresh, globally unique element ID.
func NewID() ID {
	return ID(uuid.New().String())
}

// Kind classifies an element for plane assignment.
type Kind uint8

// Element kinds.
const (
	// KindUnspecified is an ordinary element composited with the rest.
	KindUnspecified Kind = iota

	// KindCursor marks a pointer cursor, a candidate for a cursor plane.
	KindCursor

	// KindScanoutCandidate marks an element that may be scanned out
	// directly when it covers an output.
	KindScanoutCandidate
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindUnspecified:
		return "unspecified"
	case KindCursor:
		return "cursor"
	case KindScanoutCandidate:
		return "scanout-candidate"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Element is the query contract of a render element.
//
// All rectangles returned by DamageSince and OpaqueRegions are relative to
// the origin of Geometry at the same scale.
type Element interface {
	// ID returns the element's stable identity.
	ID() ID

	// CurrentCommit returns the commit counter of the element's content.
	CurrentCommit() CommitCounter

	// Geometry returns the element's destination rectangle on the output.
	Geometry(scale Scale) image.Rectangle

	// Src returns the sampled part of the element's buffer.
	Src() BufferRect

	// Transform returns the buffer transform.
	Transform() Transform

	// DamageSince returns damage since the given commit. A nil commit, or
	// one too old to answer for, yields damage covering the whole element.
	DamageSince(scale Scale, commit *CommitCounter) DamageSet

	// OpaqueRegions returns the fully opaque parts of the element.
	OpaqueRegions(scale Scale) OpaqueRegions

	// Alpha returns the element-wide opacity in [0, 1].
	Alpha() float32

	// Kind returns the element kind.
	Kind() Kind
}

// UnderlyingStorage references the client buffer behind an element. A
// direct-display renderer can put such a buffer on a plane without
// compositing it.
type UnderlyingStorage struct {
	// Texture is the buffer contents.
	Texture Texture

	// Transform is the buffer transform to program on the plane.
	Transform Transform
}

// RenderElement is an Element that can draw itself into a frame.
type RenderElement interface {
	Element

	// Draw renders the element. src is in buffer coordinates, dst in
	// physical output coordinates; damage and opaque are relative to
	// dst.Min.
	Draw(frame Frame, src BufferRect, dst image.Rectangle, damage, opaque []image.Rectangle) error

	// UnderlyingStorage returns the buffer behind the element, if the
	// renderer may scan it out directly.
	UnderlyingStorage(r Renderer) (UnderlyingStorage, bool)
}
