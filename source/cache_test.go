package source

import (
	"testing"

	"github.com/vexlang/tygen/types"
)

func TestCacheIdentityPreservation(t *testing.T) {
	c := NewCache()
	h := "host-handle-a"

	calls := 0
	adapt := func() *types.Type {
		calls++
		return types.NewPrimitive(types.KindString)
	}

	first := c.GetOrAdapt(h, adapt)
	second := c.GetOrAdapt(h, adapt)

	if first != second {
		t.Errorf("GetOrAdapt returned different Type instances for the same handle")
	}
	if calls != 1 {
		t.Errorf("adapt called %d times, want 1", calls)
	}
}

func TestCachePlaceholderCycle(t *testing.T) {
	c := NewCache()
	h := "self-referential"

	placeholder := c.StartPlaceholder(h, types.KindObject)
	if !c.Pending(h) {
		t.Fatalf("expected placeholder to be pending before Fill")
	}

	// Simulate recursion reaching back to h before it's filled.
	again, ok := c.Lookup(h)
	if !ok || again != placeholder {
		t.Errorf("Lookup during recursion should return the same placeholder")
	}

	placeholder.NamedMembers = []types.Member{{Name: "self", Type: placeholder}}
	c.Fill(h)

	if c.Pending(h) {
		t.Errorf("expected placeholder to be resolved after Fill")
	}
}
