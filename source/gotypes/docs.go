package gotypes

import (
	"go/ast"
	"go/token"
	gotypes "go/types"

	"golang.org/x/tools/go/packages"

	"github.com/vexlang/tygen/types"
)

// DocIndex recovers documentation comments and declaration positions for
// package-level declarations, the escape hatch spec §3.1 calls the
// "host-handle field ... used solely to obtain source positions and
// documentation." Built once per Load call and shared by every Adapter
// constructed with AddMethods set.
type DocIndex struct {
	docs map[gotypes.Object]string
	fset *token.FileSet
}

// BuildDocIndex walks every loaded package's syntax trees, mirroring the
// teacher's directive-comment scanning in generator/parser.go (which read
// doc comments looking for @gql directives); here the full doc text is
// kept verbatim rather than parsed for a fixed directive vocabulary.
func BuildDocIndex(pkgs []*packages.Package) *DocIndex {
	idx := &DocIndex{docs: make(map[gotypes.Object]string)}
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		if p.TypesInfo == nil {
			return
		}
		if idx.fset == nil {
			idx.fset = p.Fset
		}
		for _, file := range p.Syntax {
			for _, decl := range file.Decls {
				switch d := decl.(type) {
				case *ast.GenDecl:
					for _, spec := range d.Specs {
						ts, ok := spec.(*ast.TypeSpec)
						if !ok {
							continue
						}
						doc := ts.Doc
						if doc == nil {
							doc = d.Doc
						}
						if doc == nil {
							continue
						}
						if obj := p.TypesInfo.Defs[ts.Name]; obj != nil {
							idx.docs[obj] = doc.Text()
						}
					}
				case *ast.FuncDecl:
					if d.Doc == nil {
						continue
					}
					if obj := p.TypesInfo.Defs[d.Name]; obj != nil {
						idx.docs[obj] = d.Doc.Text()
					}
				}
			}
		}
	})
	return idx
}

func (d *DocIndex) docFor(obj gotypes.Object) string {
	if d == nil || obj == nil {
		return ""
	}
	return d.docs[obj]
}

// positionOf converts a go/types.Object's declaration site into the
// core's Position triple (spec §4.6: "optional (file, line, column)
// triple"): a types.Position filled from the token.Position that the file
// set reports.
func (d *DocIndex) positionOf(obj gotypes.Object) types.Position {
	if d == nil || d.fset == nil || obj == nil || obj.Pos() == token.NoPos {
		return types.Position{}
	}
	p := d.fset.Position(obj.Pos())
	return types.Position{File: p.Filename, Line: p.Line, Column: p.Column}
}
