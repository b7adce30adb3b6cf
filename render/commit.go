// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
)

// CommitCounter counts content commits of an element. Comparing counters
// tells a damage tracker whether, and by how much, an element changed.
type CommitCounter uint64

// Increment advances the counter by one commit.
func (c *CommitCounter) Increment() {
	*c++
}

// Distance returns how many commits lie between prev and c.
// It reports false when prev is nil or ahead of c, in which case the
// caller must treat the whole element as damaged.
func (c CommitCounter) Distance(prev *CommitCounter) (uint64, bool) {
	if prev == nil || *prev > c {
		return 0, false
	}
	return uint64(c - *prev), true
}

// DamageSet is a list of damaged rectangles relative to an element's
// geometry origin.
type DamageSet []image.Rectangle

// OpaqueRegions is a list of fully opaque rectangles relative to an
// element's geometry origin.
type OpaqueRegions []image.Rectangle

// defaultDamageBagLimit is how many commits of damage history an element
// keeps before reporting full damage.
const defaultDamageBagLimit = 8

// DamageBag keeps the damage of the most recent commits of one element so
// that DamageSince can answer for any recent commit point.
//
// DamageBag is not safe for concurrent use.
type DamageBag struct {
	limit   int
	entries []damageEntry // oldest first
}

type damageEntry struct {
	commit CommitCounter
	rects  []image.Rectangle
}

// NewDamageBag creates a DamageBag that remembers up to limit commits.
// A limit <= 0 selects the default.
func NewDamageBag(limit int) *DamageBag {
	if limit <= 0 {
		limit = defaultDamageBagLimit
	}
	return &DamageBag{limit: limit}
}

// Add records the damage introduced by the given commit.
func (b *DamageBag) Add(commit CommitCounter, rects []image.Rectangle) {
	if b.limit <= 0 {
		b.limit = defaultDamageBagLimit
	}
	b.entries = append(b.entries, damageEntry{commit: commit, rects: append([]image.Rectangle(nil), rects...)})
	if over := len(b.entries) - b.limit; over > 0 {
		b.entries = append(b.entries[:0], b.entries[over:]...)
	}
}

// Since returns the union list of damage recorded after commit since.
// It reports false when the history does not reach back far enough.
func (b *DamageBag) Since(current CommitCounter, since *CommitCounter) ([]image.Rectangle, bool) {
	n, ok := current.Distance(since)
	if !ok {
		return nil, false
	}
	if n == 0 {
		return nil, true
	}
	if n > uint64(len(b.entries)) {
		return nil, false
	}
	var out []image.Rectangle
	for _, e := range b.entries[len(b.entries)-int(n):] {
		if e.commit <= *since {
			continue
		}
		out = append(out, e.rects...)
	}
	return out, true
}

// Reset drops the history.
func (b *DamageBag) Reset() {
	b.entries = b.entries[:0]
}
