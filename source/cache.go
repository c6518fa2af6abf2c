package source

import "github.com/vexlang/tygen/types"

// Cache memoizes Handle → *types.Type adaptations by host-handle
// identity (spec §4.5 "Identity preservation"). It is append-only: once a
// handle is resolved, its Type is never replaced or removed, only filled
// in further if it was inserted as a placeholder for cycle handling.
type Cache struct {
	entries map[Handle]*entry
}

type entry struct {
	typ     *types.Type
	pending bool
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Handle]*entry)}
}

// Lookup returns the cached Type for h, if any adaptation (complete or
// in-flight placeholder) has started.
func (c *Cache) Lookup(h Handle) (*types.Type, bool) {
	e, ok := c.entries[h]
	if !ok {
		return nil, false
	}
	return e.typ, true
}

// StartPlaceholder inserts an empty Type for h before recursing into its
// fields, so that a cycle reached while adapting h's own members finds
// this placeholder instead of recursing forever (spec §4.5 "Cycle
// handling"). Fill must later be called with the same handle once the
// Type's fields are known.
func (c *Cache) StartPlaceholder(h Handle, kind types.Kind) *types.Type {
	if e, ok := c.entries[h]; ok {
		return e.typ
	}
	placeholder := &types.Type{Kind: kind}
	c.entries[h] = &entry{typ: placeholder, pending: true}
	return placeholder
}

// Fill marks h's placeholder resolved. The placeholder's fields must
// already have been written in place by the caller (a Type's zero value
// is mutated directly during adaptation, before being handed to any
// downstream consumer — this is the one exception to "Type is never
// mutated after construction," matching the spec's explicit cycle-handling
// carve-out: "fills fields in place").
func (c *Cache) Fill(h Handle) {
	if e, ok := c.entries[h]; ok {
		e.pending = false
	}
}

// Pending reports whether h's placeholder has been inserted but not yet
// filled — true mid-recursion, false once adaptation of h has completed.
func (c *Cache) Pending(h Handle) bool {
	e, ok := c.entries[h]
	return ok && e.pending
}

// GetOrAdapt returns the cached Type for h if present, otherwise runs
// adapt to produce one and stores it. adapt is responsible for calling
// StartPlaceholder/Fill itself if it may recurse back into h.
func (c *Cache) GetOrAdapt(h Handle, adapt func() *types.Type) *types.Type {
	if t, ok := c.Lookup(h); ok {
		return t
	}
	t := adapt()
	if _, ok := c.entries[h]; !ok {
		c.entries[h] = &entry{typ: t}
	}
	return t
}
