// Package recordlang is an example compiler.Backend: a small,
// structurally-typed "record Name { field: Type; ... }" dialect used by
// the orchestrator's own tests and the demo CLI. It is not shipped as
// the backend — the core ships none — only as a concrete, working
// target that exercises every kind of the type model.
package recordlang

import (
	"fmt"

	"github.com/vexlang/tygen/compiler"
	"github.com/vexlang/tygen/outast"
)

// Backend renders the record-lang dialect. It tracks the file of the
// declaration currently being rendered in fileStack so that a named
// member type can be rendered as a plain or qualified reference to its
// own declaration rather than inlined — safe because the orchestrator's
// graph walk that drives CompileType/CompileReference is strictly
// single-threaded (spec §5); only CompileFile runs concurrently, and it
// never touches fileStack. The zero value is ready to use.
type Backend struct {
	fileStack []string
}

// New returns a record-lang Backend.
func New() *Backend {
	return &Backend{}
}

var _ compiler.Backend = (*Backend)(nil)

func (b *Backend) currentFile() string {
	if len(b.fileStack) == 0 {
		return ""
	}
	return b.fileStack[len(b.fileStack)-1]
}

func (b *Backend) pushFile(f string) { b.fileStack = append(b.fileStack, f) }

func (b *Backend) popFile() { b.fileStack = b.fileStack[:len(b.fileStack)-1] }

// CompileReference renders the syntactic form used to refer to an
// already-declared type: a bare name when the reference stays within
// its own file, a file-qualified name otherwise.
func (b *Backend) CompileReference(args compiler.ReferenceArgs) (*outast.Node, error) {
	if outast.FileNameEqual(args.From, args.To.Location) {
		return outast.New(args.To.Name), nil
	}
	return outast.New(fmt.Sprintf("%s.%s", stem(args.To.FileName), args.To.Name)), nil
}

// CompileFile renders one file: a generated-file notice, then every
// declaration assigned to it in insertion order.
func (b *Backend) CompileFile(file *compiler.FileBuilder) (*outast.Node, error) {
	children := []*outast.Node{outast.New("// Code generated by the record-lang backend. DO NOT EDIT.\n\n")}
	nodes := file.Nodes()
	for i, n := range nodes {
		children = append(children, n)
		if i < len(nodes)-1 {
			children = append(children, outast.New("\n"))
		}
	}
	return outast.New("", children...), nil
}

// stem trims a file name down to the portion before its first '.', used
// to build a qualified cross-file reference like "b.Inner".
func stem(fileName string) string {
	for i, r := range fileName {
		if r == '.' {
			return fileName[:i]
		}
	}
	return fileName
}
