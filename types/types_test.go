package types

import "testing"

func TestNewUnionCollapses(t *testing.T) {
	tests := []struct {
		name     string
		variants []*Type
		wantKind Kind
	}{
		{name: "empty collapses to never", variants: nil, wantKind: KindNever},
		{name: "single collapses to element", variants: []*Type{NewPrimitive(KindString)}, wantKind: KindString},
		{name: "multiple stays a union", variants: []*Type{NewPrimitive(KindString), NewPrimitive(KindNumber)}, wantKind: KindUnion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewUnion(tt.variants, nil)
			if got.Kind != tt.wantKind {
				t.Errorf("NewUnion(%v) kind = %s, want %s", tt.variants, got.Kind, tt.wantKind)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := KindUnion.String(); got != "union" {
		t.Errorf("KindUnion.String() = %q, want %q", got, "union")
	}
	if got := Kind(9999).String(); got != "unknown-kind" {
		t.Errorf("Kind(9999).String() = %q, want %q", got, "unknown-kind")
	}
}

func TestModifierSetHas(t *testing.T) {
	var nilSet ModifierSet
	if nilSet.Has(ModStatic) {
		t.Errorf("nil ModifierSet.Has returned true")
	}

	set := ModifierSet{ModStatic: true}
	if !set.Has(ModStatic) {
		t.Errorf("set.Has(ModStatic) = false, want true")
	}
	if set.Has(ModAsync) {
		t.Errorf("set.Has(ModAsync) = true, want false")
	}
}

func TestIsObjectLikeAndCallable(t *testing.T) {
	if !KindInterface.IsObjectLike() || !KindObject.IsObjectLike() || !KindClass.IsObjectLike() {
		t.Errorf("expected interface/object/class to be object-like")
	}
	if KindFunction.IsObjectLike() {
		t.Errorf("function should not be object-like")
	}
	if !KindFunction.IsCallable() || !KindMethod.IsCallable() {
		t.Errorf("expected function/method to be callable")
	}
}
