package gotypes

import (
	gotypes "go/types"
	"testing"

	"github.com/vexlang/tygen/source"
	"github.com/vexlang/tygen/types"
)

func newAdapter() *Adapter {
	return NewAdapter(source.DefaultOptions(), nil, nil)
}

func TestAdaptBasicKinds(t *testing.T) {
	a := newAdapter()

	tests := []struct {
		basic    *gotypes.Basic
		wantKind types.Kind
	}{
		{gotypes.Typ[gotypes.String], types.KindString},
		{gotypes.Typ[gotypes.Bool], types.KindBoolean},
		{gotypes.Typ[gotypes.Int], types.KindNumber},
		{gotypes.Typ[gotypes.Float64], types.KindNumber},
	}

	for _, tt := range tests {
		got := a.Adapt(tt.basic)
		if got.Kind != tt.wantKind {
			t.Errorf("Adapt(%s).Kind = %s, want %s", tt.basic, got.Kind, tt.wantKind)
		}
	}
}

func TestAdaptPointerIsTransparent(t *testing.T) {
	a := newAdapter()
	ptr := gotypes.NewPointer(gotypes.Typ[gotypes.String])

	got := a.Adapt(ptr)
	if got.Kind != types.KindString {
		t.Errorf("Adapt(*string).Kind = %s, want string", got.Kind)
	}
}

func TestAdaptStructFields(t *testing.T) {
	a := newAdapter()
	pkg := gotypes.NewPackage("example.com/demo", "demo")

	xField := gotypes.NewField(0, pkg, "X", gotypes.Typ[gotypes.Int], false)
	yField := gotypes.NewField(0, pkg, "Y", gotypes.Typ[gotypes.Int], false)
	st := gotypes.NewStruct([]*gotypes.Var{xField, yField}, nil)

	got := a.adaptStruct("Point", st)
	if got.Kind != types.KindObject {
		t.Fatalf("Kind = %s, want object", got.Kind)
	}
	if len(got.NamedMembers) != 2 {
		t.Fatalf("len(NamedMembers) = %d, want 2", len(got.NamedMembers))
	}
	if got.NamedMembers[0].Name != "X" || got.NamedMembers[1].Name != "Y" {
		t.Errorf("member order not preserved: %+v", got.NamedMembers)
	}
}

func TestAdaptSliceBecomesArray(t *testing.T) {
	a := newAdapter()
	slice := gotypes.NewSlice(gotypes.Typ[gotypes.String])

	got := a.Adapt(slice)
	if got.Kind != types.KindArray {
		t.Fatalf("Kind = %s, want array", got.Kind)
	}
	if got.Element.Kind != types.KindString {
		t.Errorf("Element.Kind = %s, want string", got.Element.Kind)
	}
}

func TestAdaptMapBecomesStringIndexedObject(t *testing.T) {
	a := newAdapter()
	m := gotypes.NewMap(gotypes.Typ[gotypes.String], gotypes.Typ[gotypes.Int])

	got := a.Adapt(m)
	if got.Kind != types.KindObject {
		t.Fatalf("Kind = %s, want object", got.Kind)
	}
	if got.StringIndexType == nil || got.StringIndexType.Kind != types.KindNumber {
		t.Errorf("StringIndexType = %+v, want number", got.StringIndexType)
	}
}

func TestIdentityPreservedAcrossRepeatedAdapt(t *testing.T) {
	a := newAdapter()
	str := gotypes.Typ[gotypes.String]

	first := a.Adapt(str)
	second := a.Adapt(str)
	if first != second {
		t.Errorf("Adapt(str) returned different instances on repeated calls")
	}
}
