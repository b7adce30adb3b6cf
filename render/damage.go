// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
)

// DamageTracker computes output damage between consecutive frames of one
// output. Elements are matched across frames by ID; an element that kept
// its geometry only contributes the damage it reports since the commit
// seen last frame.
//
// DamageTracker is not safe for concurrent use. Keep one per output.
type DamageTracker struct {
	bounds image.Rectangle
	last   map[ID]trackedElement
	first  bool
}

type trackedElement struct {
	commit   CommitCounter
	geometry image.Rectangle
	alpha    float32
	index    int
}

// NewDamageTracker creates a tracker for an output of the given size.
func NewDamageTracker(size image.Point) *DamageTracker {
	return &DamageTracker{
		bounds: image.Rectangle{Max: size},
		last:   make(map[ID]trackedElement),
		first:  true,
	}
}

// Damage returns the output damage of elements relative to the previous
// call and remembers the new state. The first call damages the whole
// output. A nil result means nothing changed.
func (t *DamageTracker) Damage(elements []RenderElement, scale Scale) []image.Rectangle {
	var damage []image.Rectangle
	if t.first {
		damage = append(damage, t.bounds)
	}

	seen := make(map[ID]trackedElement, len(elements))
	for i, e := range elements {
		id := e.ID()
		geo := e.Geometry(scale)
		state := trackedElement{
			commit:   e.CurrentCommit(),
			geometry: geo,
			alpha:    e.Alpha(),
			index:    i,
		}
		seen[id] = state

		prev, ok := t.last[id]
		switch {
		case !ok:
			damage = append(damage, geo)
		case prev.geometry != geo || prev.alpha != state.alpha || prev.index != i:
			damage = append(damage, prev.geometry, geo)
		default:
			commit := prev.commit
			for _, r := range e.DamageSince(scale, &commit) {
				damage = append(damage, r.Add(geo.Min))
			}
		}
	}

	for id, prev := range t.last {
		if _, ok := seen[id]; !ok {
			damage = append(damage, prev.geometry)
		}
	}

	t.last = seen
	t.first = false
	return ClipRects(damage, t.bounds)
}

// Reset forgets all state; the next Damage call damages the whole output.
func (t *DamageTracker) Reset() {
	t.last = make(map[ID]trackedElement)
	t.first = true
}
