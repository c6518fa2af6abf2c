package recordlang

import (
	"strings"
	"testing"

	"github.com/vexlang/tygen/compiler"
	"github.com/vexlang/tygen/types"
)

func TestPrimitiveRoundTrip(t *testing.T) {
	c := compiler.New(New())
	out, err := c.CompileProgram([]compiler.Entry{
		{Type: types.NewPrimitive(types.KindString), OutputLocation: compiler.Location{FileName: "a.out"}},
	})
	if err != nil {
		t.Fatalf("CompileProgram error: %v", err)
	}
	if !strings.Contains(out.Files["a.out"].Text, "string") {
		t.Errorf("expected generated text to contain %q, got %q", "string", out.Files["a.out"].Text)
	}
}

func TestObjectWithTwoFields(t *testing.T) {
	point := types.NewObjectLike(types.KindInterface, types.ObjectLikeSpec{
		Name: "Point",
		Members: []types.Member{
			{Name: "x", Type: types.NewPrimitive(types.KindNumber)},
			{Name: "y", Type: types.NewPrimitive(types.KindNumber)},
		},
	})

	c := compiler.New(New())
	out, err := c.CompileProgram([]compiler.Entry{{Type: point, OutputLocation: compiler.Location{FileName: "a.out"}}})
	if err != nil {
		t.Fatalf("CompileProgram error: %v", err)
	}
	got := out.Files["a.out"].Text
	if !strings.Contains(got, "record Point {") {
		t.Errorf("expected a Point declaration, got %q", got)
	}
	wantOrder := []string{"x: number;", "y: number;"}
	lastIdx := -1
	for _, w := range wantOrder {
		idx := strings.Index(got, w)
		if idx < 0 {
			t.Fatalf("expected %q in output, got %q", w, got)
		}
		if idx < lastIdx {
			t.Errorf("expected %q to appear after previous field, got %q", w, got)
		}
		lastIdx = idx
	}
}

func TestEnumDeclaration(t *testing.T) {
	enum := types.NewEnum("Color", []types.EnumMember{
		{Name: "Red", QualifiedName: "Color.Red", Value: types.NewLiteral(types.KindStringLiteral, "red")},
		{Name: "Blue", QualifiedName: "Color.Blue", Value: types.NewLiteral(types.KindStringLiteral, "blue")},
	})

	c := compiler.New(New())
	out, err := c.CompileProgram([]compiler.Entry{{Type: enum, OutputLocation: compiler.Location{FileName: "a.out"}}})
	if err != nil {
		t.Fatalf("CompileProgram error: %v", err)
	}
	got := out.Files["a.out"].Text
	if !strings.Contains(got, `enum Color {`) {
		t.Errorf("expected an enum declaration, got %q", got)
	}
	if !strings.Contains(got, `Red = "red";`) || !strings.Contains(got, `Blue = "blue";`) {
		t.Errorf("expected both members rendered with their literal values, got %q", got)
	}
}

func TestRecursiveTypeBreaksCycle(t *testing.T) {
	node := types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{Name: "Node"})
	node.NamedMembers = []types.Member{{Name: "next", Type: node, Optional: true}}

	c := compiler.New(New())
	out, err := c.CompileProgram([]compiler.Entry{{Type: node, OutputLocation: compiler.Location{FileName: "a.out"}}})
	if err != nil {
		t.Fatalf("CompileProgram error: %v", err)
	}
	got := out.Files["a.out"].Text
	if strings.Count(got, "record Node {") != 1 {
		t.Errorf("expected exactly one Node declaration, got %q", got)
	}
	if !strings.Contains(got, "next?: Node;") {
		t.Errorf("expected an optional self-reference, got %q", got)
	}
}

func TestCrossFileReferenceIsQualified(t *testing.T) {
	inner := types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{Name: "Inner"})
	outer := types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{
		Name:    "Outer",
		Members: []types.Member{{Name: "inner", Type: inner}},
	})

	c := compiler.New(New())
	out, err := c.CompileProgram([]compiler.Entry{
		{Type: outer, OutputLocation: compiler.Location{FileName: "a.out"}},
		{Type: inner, OutputLocation: compiler.Location{FileName: "b.out"}},
	})
	if err != nil {
		t.Fatalf("CompileProgram error: %v", err)
	}
	a := out.Files["a.out"].Text
	if !strings.Contains(a, "inner: b.Inner;") {
		t.Errorf("expected a file-qualified cross-file reference, got %q", a)
	}
	refs := out.Program.Files()["a.out"].References()
	if len(refs) != 1 || refs[0].FileName != "b.out" {
		t.Errorf("expected a.out to record an outgoing reference to b.out, got %v", refs)
	}
}

func TestArrayAndUnion(t *testing.T) {
	arr := types.NewArray(types.NewPrimitive(types.KindString))
	union := types.NewUnion([]*types.Type{
		types.NewPrimitive(types.KindString),
		types.NewPrimitive(types.KindNumber),
	}, nil)

	c := compiler.New(New())
	out, err := c.CompileProgram([]compiler.Entry{
		{Type: arr, OutputLocation: compiler.Location{FileName: "a.out"}},
		{Type: union, OutputLocation: compiler.Location{FileName: "b.out"}},
	})
	if err != nil {
		t.Fatalf("CompileProgram error: %v", err)
	}
	if !strings.Contains(out.Files["a.out"].Text, "string[]") {
		t.Errorf("expected array rendering, got %q", out.Files["a.out"].Text)
	}
	if !strings.Contains(out.Files["b.out"].Text, "string | number") {
		t.Errorf("expected union rendering, got %q", out.Files["b.out"].Text)
	}
}
