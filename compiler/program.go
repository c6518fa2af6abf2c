package compiler

import (
	"github.com/vexlang/tygen/outast"
	"github.com/vexlang/tygen/types"
)

// FileBuilder accumulates one output file's nodes and outgoing reference
// locations, both insertion-ordered and deduplicated (spec §3.5).
type FileBuilder struct {
	FileName string

	nodes   []*outast.Node
	nodeSet map[*outast.Node]bool

	references []Location
	refSeen    map[string]bool
}

func newFileBuilder(fileName string) *FileBuilder {
	return &FileBuilder{FileName: fileName, nodeSet: map[*outast.Node]bool{}, refSeen: map[string]bool{}}
}

// AddNode appends n to the file's node set if it hasn't already been
// added (identity-deduplicated).
func (f *FileBuilder) AddNode(n *outast.Node) {
	if f.nodeSet[n] {
		return
	}
	f.nodeSet[n] = true
	f.nodes = append(f.nodes, n)
}

// Nodes returns the file's nodes in insertion order.
func (f *FileBuilder) Nodes() []*outast.Node { return f.nodes }

// AddReference records an outgoing reference to loc, deduplicated by
// (fileName, namespace).
func (f *FileBuilder) AddReference(loc Location) {
	key := locationKey(loc, "")
	if f.refSeen[key] {
		return
	}
	f.refSeen[key] = true
	f.references = append(f.references, loc)
}

// References returns the file's outgoing reference locations in
// insertion order.
func (f *FileBuilder) References() []Location { return f.references }

// Program holds the per-compilation state described by spec §3.5: entry
// points, per-file accumulators, and the memoization maps that give
// deterministic naming and cycle breaking their identity guarantees.
type Program struct {
	EntryPoints map[*types.Type]DeclarationLocation

	files map[string]*FileBuilder

	typeToDeclarationLocation map[*types.Type]DeclarationLocation
	typeToAstNode             map[*types.Type]*outast.Node

	declarationLocationNameCount map[string]int
}

func newProgram() *Program {
	return &Program{
		EntryPoints:                  map[*types.Type]DeclarationLocation{},
		files:                        map[string]*FileBuilder{},
		typeToDeclarationLocation:    map[*types.Type]DeclarationLocation{},
		typeToAstNode:                map[*types.Type]*outast.Node{},
		declarationLocationNameCount: map[string]int{},
	}
}

func (p *Program) file(fileName string) *FileBuilder {
	f, ok := p.files[fileName]
	if !ok {
		f = newFileBuilder(fileName)
		p.files[fileName] = f
	}
	return f
}

// Files returns the program's file builders, keyed by file name. Only
// files actually touched during compilation appear here.
func (p *Program) Files() map[string]*FileBuilder { return p.files }
