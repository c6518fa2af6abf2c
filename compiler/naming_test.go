package compiler

import (
	"testing"

	"github.com/vexlang/tygen/types"
)

func discriminatedVariant(tag string) *types.Type {
	return types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{
		Members: []types.Member{
			{Name: "kind", Type: types.NewLiteral(types.KindStringLiteral, tag)},
		},
	})
}

func TestScenarioF_DiscriminatedUnionName(t *testing.T) {
	union := types.NewUnion([]*types.Type{
		discriminatedVariant("a"),
		discriminatedVariant("b"),
	}, []string{"kind"})

	got := inferTypeName(union)
	if want := "AOrB"; got != want {
		t.Errorf("inferTypeName() = %q, want %q", got, want)
	}
}

func TestInferTypeNameUnionWithoutDiscriminantFallsBackStructurally(t *testing.T) {
	union := types.NewUnion([]*types.Type{
		types.NewPrimitive(types.KindString),
		types.NewPrimitive(types.KindNumber),
	}, nil)

	got := inferTypeName(union)
	if want := "StringOrNumber"; got != want {
		t.Errorf("inferTypeName() = %q, want %q", got, want)
	}
}

func TestInferTypeNameUnionWithUnresolvableDiscriminantFallsBackStructurally(t *testing.T) {
	// A discriminant field name is declared but one variant's "kind"
	// member isn't a string literal — discriminantUnionName must bail
	// out to the structural fallback rather than produce a partial name.
	nonLiteralVariant := types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{
		Members: []types.Member{
			{Name: "kind", Type: types.NewPrimitive(types.KindString)},
		},
	})
	union := types.NewUnion([]*types.Type{
		discriminatedVariant("a"),
		nonLiteralVariant,
	}, []string{"kind"})

	got := inferTypeName(union)
	if got == "AOr" || got == "" {
		t.Errorf("inferTypeName() = %q, expected a structural fallback name, not a partial discriminant name", got)
	}
}
