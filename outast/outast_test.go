package outast

import (
	"strings"
	"testing"
)

func TestSerializeTreeOrder(t *testing.T) {
	root := New("record Point {\n", New("  x: number;\n"), New("  y: number;\n"), New("}\n"))

	got := Serialize(root, nil)
	want := "record Point {\n  x: number;\n  y: number;\n}\n"
	if got.Text != want {
		t.Errorf("Serialize text = %q, want %q", got.Text, want)
	}
	if got.SourceMap != nil {
		t.Errorf("expected no source map when no node carries a position")
	}
}

func TestSerializeBuildsSourceMap(t *testing.T) {
	child := New("number").WithPosition(Position{File: "types.go", Line: 5, Column: 2})
	root := New("alias Num = ", child)

	got := Serialize(root, nil)
	if got.SourceMap == nil {
		t.Fatalf("expected a source map when a node carries a position")
	}
	if len(got.SourceMap.Sources) != 1 || got.SourceMap.Sources[0] != "types.go" {
		t.Errorf("Sources = %v, want [types.go]", got.SourceMap.Sources)
	}
	if got.SourceMap.Mappings == "" {
		t.Errorf("expected non-empty mappings string")
	}
}

func TestDoNotCacheOverridesDefault(t *testing.T) {
	n := New("x")
	if !n.ShouldCache() {
		t.Fatalf("plain node should default to cacheable")
	}
	n.DoNotCache()
	if n.ShouldCache() {
		t.Errorf("DoNotCache should clear ShouldCache")
	}

	ref := NewReference(Location{FileName: "b.out"}, true, "Inner")
	if ref.ShouldCache() {
		t.Errorf("reference nodes should default to not cacheable")
	}
}

func TestLocationEquality(t *testing.T) {
	a := Location{FileName: "x.out", Namespace: []string{"pkg", "sub"}}
	b := Location{FileName: "x.out", Namespace: []string{"pkg", "sub"}}
	c := Location{FileName: "x.out", Namespace: []string{"pkg"}}

	if !FileAndNamespaceEqual(a, b) {
		t.Errorf("expected a and b to be equal")
	}
	if FileAndNamespaceEqual(a, c) {
		t.Errorf("expected a and c to differ by namespace length")
	}
	if !FileNameEqual(a, c) {
		t.Errorf("expected a and c to share a file name")
	}
}

func TestWriteVLQEncodesZero(t *testing.T) {
	var b strings.Builder
	writeVLQ(&b, 0)
	if b.String() != "A" {
		t.Errorf("writeVLQ(0) = %q, want %q", b.String(), "A")
	}
}
