package compiler

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vexlang/tygen/outast"
	"github.com/vexlang/tygen/path"
	"github.com/vexlang/tygen/types"
)

// stubBackend renders a minimal record-like textual dialect, enough to
// exercise the orchestrator's declaration/reference/file machinery
// without depending on any real target backend.
type stubBackend struct {
	compileTypeCalls map[*types.Type]int
}

func newStubBackend() *stubBackend {
	return &stubBackend{compileTypeCalls: map[*types.Type]int{}}
}

func (b *stubBackend) CompileType(args VisitArgs) (*outast.Node, error) {
	b.compileTypeCalls[args.Type]++
	t := args.Type

	switch t.Kind {
	case types.KindString, types.KindNumber, types.KindBoolean:
		return outast.New(t.Kind.String()), nil
	case types.KindObject, types.KindInterface:
		loc := args.AssignDeclarationLocation(t, nil)
		children := []*outast.Node{outast.New(fmt.Sprintf("record %s {\n", loc.Name))}
		for _, m := range t.NamedMembers {
			field, err := args.Visit(path.Step{Kind: path.StepNamedMember, From: t, Name: m.Name}, m.Type)
			if err != nil {
				return nil, err
			}
			children = append(children, outast.New(fmt.Sprintf("  %s: ", m.Name)), field, outast.New(";\n"))
		}
		children = append(children, outast.New("}\n"))
		return outast.NewDeclaration(loc, "", children...), nil
	default:
		return nil, &NoBackendForKind{Kind: t.Kind}
	}
}

func (b *stubBackend) CompileReference(args ReferenceArgs) (*outast.Node, error) {
	return outast.New(args.To.Name), nil
}

func (b *stubBackend) CompileFile(file *FileBuilder) (*outast.Node, error) {
	children := append([]*outast.Node{}, file.Nodes()...)
	return outast.New("", children...), nil
}

func text(n *outast.Node) string {
	return outast.Serialize(n, nil).Text
}

func TestScenarioA_PrimitiveRoundTrip(t *testing.T) {
	c := New(newStubBackend())
	out, err := c.CompileProgram([]Entry{{Type: types.NewPrimitive(types.KindString), OutputLocation: Location{FileName: "a.out"}}})
	if err != nil {
		t.Fatalf("CompileProgram error: %v", err)
	}
	f, ok := out.Files["a.out"]
	if !ok {
		t.Fatalf("expected file a.out")
	}
	if f.Text != "string" {
		t.Errorf("Text = %q, want %q", f.Text, "string")
	}
	if refs := out.Program.Files()["a.out"].References(); len(refs) != 0 {
		t.Errorf("expected no outgoing references, got %v", refs)
	}
}

func TestScenarioB_ObjectWithTwoFields(t *testing.T) {
	point := types.NewObjectLike(types.KindInterface, types.ObjectLikeSpec{
		Name: "Point",
		Members: []types.Member{
			{Name: "x", Type: types.NewPrimitive(types.KindNumber)},
			{Name: "y", Type: types.NewPrimitive(types.KindNumber)},
		},
	})

	c := New(newStubBackend())
	out, err := c.CompileProgram([]Entry{{Type: point, OutputLocation: Location{FileName: "a.out"}}})
	if err != nil {
		t.Fatalf("CompileProgram error: %v", err)
	}
	got := out.Files["a.out"].Text
	want := "record Point {\n  x: number;\n  y: number;\n}\n"
	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestScenarioE_UniqueNamingCollision(t *testing.T) {
	a := types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{})
	b := types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{})

	c := New(newStubBackend())
	out, err := c.CompileProgram([]Entry{
		{Type: a, OutputLocation: Location{FileName: "a.out"}},
		{Type: b, OutputLocation: Location{FileName: "a.out"}},
	})
	if err != nil {
		t.Fatalf("CompileProgram error: %v", err)
	}
	locA := out.Program.typeToDeclarationLocation[a]
	locB := out.Program.typeToDeclarationLocation[b]
	if locA.Name != "AnonymousObject" {
		t.Errorf("locA.Name = %q, want AnonymousObject", locA.Name)
	}
	if locB.Name != "AnonymousObject1" {
		t.Errorf("locB.Name = %q, want AnonymousObject1", locB.Name)
	}
}

func TestMemoizationCompilesEachTypeOnce(t *testing.T) {
	shared := types.NewPrimitive(types.KindString)
	owner := types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{
		Members: []types.Member{{Name: "a", Type: shared}, {Name: "b", Type: shared}},
	})

	backend := newStubBackend()
	c := New(backend)
	_, err := c.CompileProgram([]Entry{{Type: owner, OutputLocation: Location{FileName: "a.out"}}})
	if err != nil {
		t.Fatalf("CompileProgram error: %v", err)
	}
	if backend.compileTypeCalls[shared] != 1 {
		t.Errorf("shared type compiled %d times, want 1", backend.compileTypeCalls[shared])
	}
}

func TestScenarioD_RecursiveType(t *testing.T) {
	node := types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{Name: "Node"})
	node.NamedMembers = []types.Member{{Name: "next", Type: node, Optional: true}}

	c := New(newStubBackend())
	out, err := c.CompileProgram([]Entry{{Type: node, OutputLocation: Location{FileName: "a.out"}}})
	if err != nil {
		t.Fatalf("CompileProgram error: %v", err)
	}
	got := out.Files["a.out"].Text
	if !strings.Contains(got, "record Node {") {
		t.Errorf("expected Node declaration, got %q", got)
	}
	if strings.Count(got, "record Node {") != 1 {
		t.Errorf("expected exactly one Node declaration, got %q", got)
	}
	if !strings.Contains(got, "next: Node;") {
		t.Errorf("expected a self-reference rendered as Node, got %q", got)
	}
}
