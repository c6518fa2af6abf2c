// Package outast implements the Output AST (spec §3.4, §4.6): a
// source-mapped text tree with three node flavors (plain, declaration,
// reference), serialized to text plus a standard source-map-v3 document.
package outast

import (
	"github.com/vexlang/tygen/path"
	"github.com/vexlang/tygen/types"
)

// Flavor is the closed tag of a Node.
type Flavor int

const (
	// Plain is pure text with children.
	Plain Flavor = iota
	// Declaration is a plain node carrying a Location; signals to the
	// orchestrator that this node is the body of a top-level declaration.
	Declaration
	// Reference carries RefersTo; signals a cross-declaration dependency.
	Reference
)

// Location names a declaration's placement: a file, an optional
// namespace path, and (for DeclarationLocation) a name (spec §6.3).
type Location struct {
	FileName  string
	Namespace []string
}

// DeclarationLocation is a Location plus the declared name.
type DeclarationLocation struct {
	Location
	Name string
}

// Position is the optional source position a Node may carry, recovered
// from the originating Type's declaration site.
type Position = types.Position

// Node is one segment of generated text (spec §3.4). Exactly one of its
// flavor-specific fields is meaningful, selected by Flavor.
type Node struct {
	Flavor Flavor
	Text   string
	Children []*Node

	// Declaration-flavor only.
	DeclLocation DeclarationLocation

	// Reference-flavor only.
	RefersTo            Location
	RefersToDeclaration bool

	// Debugging / source-map attribution (spec §3.4 "additionally carry").
	Type     *types.Type
	Path     path.Path
	Position Position

	shouldCache bool
}

// New returns a plain text node with the given children.
func New(text string, children ...*Node) *Node {
	return &Node{Flavor: Plain, Text: text, Children: children, shouldCache: true}
}

// NewDeclaration returns a declaration node at loc.
func NewDeclaration(loc DeclarationLocation, text string, children ...*Node) *Node {
	return &Node{Flavor: Declaration, DeclLocation: loc, Text: text, Children: children, shouldCache: true}
}

// NewReference returns a reference node pointing at loc. Reference nodes
// default to shouldCache=false per spec §4.4 ("reference nodes default
// to not cached").
func NewReference(loc Location, toDeclaration bool, text string) *Node {
	return &Node{Flavor: Reference, RefersTo: loc, RefersToDeclaration: toDeclaration, Text: text, shouldCache: false}
}

// ShouldCache reports whether the orchestrator may memoize this node by
// its originating Type.
func (n *Node) ShouldCache() bool { return n.shouldCache }

// DoNotCache marks a node as context-dependent (spec §4.6: "required for
// nodes whose rendering depends on surrounding context"), e.g. an enum
// member that renders differently inside its enum than when referenced
// externally.
func (n *Node) DoNotCache() { n.shouldCache = false }

// WithPosition attaches a source position and returns n for chaining.
func (n *Node) WithPosition(p Position) *Node {
	n.Position = p
	return n
}

// WithOrigin attaches the originating Type/Path for diagnostics and
// source-map attribution, and returns n for chaining.
func (n *Node) WithOrigin(t *types.Type, p path.Path) *Node {
	n.Type = t
	n.Path = p
	return n
}

// FileNameEqual, NamespaceEqual and FileAndNamespaceEqual implement the
// positional, element-wise equality spec §6.3 requires ("namespace
// absence equals namespace absence").

func FileNameEqual(a, b Location) bool { return a.FileName == b.FileName }

func NamespaceEqual(a, b Location) bool {
	if len(a.Namespace) != len(b.Namespace) {
		return false
	}
	for i := range a.Namespace {
		if a.Namespace[i] != b.Namespace[i] {
			return false
		}
	}
	return true
}

func FileAndNamespaceEqual(a, b Location) bool {
	return FileNameEqual(a, b) && NamespaceEqual(a, b)
}
