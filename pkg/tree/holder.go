package tree

import "sync/atomic"

// Holder publishes the current Tree for a source that can be
// reloaded. A reload stores a complete new Tree in one reference
// swap, so readers always observe either the old or the new tree in
// full, never a half-built one. Entities held from the previous tree
// stay valid as Go values but belong to a stale LoadID and should be
// re-fetched by ID.
type Holder struct {
	cur atomic.Pointer[Tree]
}

// NewHolder returns a Holder publishing the given tree, which may be
// nil until the first load completes.
func NewHolder(t *Tree) *Holder {
	h := &Holder{}
	h.cur.Store(t)
	return h
}

// Current returns the currently published tree, or nil before the
// first load.
func (h *Holder) Current() *Tree {
	return h.cur.Load()
}

// Replace publishes a new tree atomically and returns the one it
// replaced.
func (h *Holder) Replace(t *Tree) *Tree {
	return h.cur.Swap(t)
}
