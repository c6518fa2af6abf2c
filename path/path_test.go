package path

import (
	"testing"

	"github.com/vexlang/tygen/types"
)

func TestConcatDoesNotMutatePrefix(t *testing.T) {
	root := types.NewPrimitive(types.KindInterface)
	base := Path{{Kind: StepNamedMember, From: root, Name: "a"}}
	extended := Concat(base, Step{Kind: StepNamedMember, From: root, Name: "b"})

	if len(base) != 1 {
		t.Fatalf("Concat mutated prefix, len(base) = %d, want 1", len(base))
	}
	if len(extended) != 2 {
		t.Fatalf("len(extended) = %d, want 2", len(extended))
	}
}

func TestIncludesAndSubpathFrom(t *testing.T) {
	a := types.NewPrimitive(types.KindObject)
	b := types.NewPrimitive(types.KindObject)
	c := types.NewPrimitive(types.KindObject)

	p := Path{
		{Kind: StepNamedMember, From: a, Name: "x"},
		{Kind: StepNamedMember, From: b, Name: "y"},
	}

	if !Includes(p, a) || !Includes(p, b) {
		t.Errorf("Includes should find both a and b")
	}
	if Includes(p, c) {
		t.Errorf("Includes should not find c")
	}

	sub, ok := SubpathFrom(p, b)
	if !ok || len(sub) != 1 || sub[0].Name != "y" {
		t.Errorf("SubpathFrom(p, b) = %v, %v; want single step named y", sub, ok)
	}

	if _, ok := SubpathFrom(p, c); ok {
		t.Errorf("SubpathFrom(p, c) should not find a subpath")
	}
}

func TestToStringIsDeterministic(t *testing.T) {
	root := types.NewPrimitive(types.KindObject)
	p := Path{
		{Kind: StepNamedMember, From: root, Name: "field"},
		{Kind: StepIndexedMember, From: root, Index: 2},
	}

	s1 := ToString(p, nil)
	s2 := ToString(p, nil)
	if s1 != s2 {
		t.Errorf("ToString not deterministic: %q != %q", s1, s2)
	}
	want := "<root>.field[2]"
	if s1 != want {
		t.Errorf("ToString(p, nil) = %q, want %q", s1, want)
	}
}

func TestLastEmptyPath(t *testing.T) {
	if _, ok := Last(nil); ok {
		t.Errorf("Last(nil) should report ok=false")
	}
	p := Path{{Kind: StepReturn}}
	last, ok := Last(p)
	if !ok || last.Kind != StepReturn {
		t.Errorf("Last(p) = %v, %v; want StepReturn, true", last, ok)
	}
}
