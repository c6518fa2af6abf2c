// Package gotypes is the concrete Type-source Adapter (spec §4.5) over
// Go's own type-checker: it loads packages with
// golang.org/x/tools/go/packages, walks their go/types objects, and
// builds the closed types.Type graph defined by the core. This is the
// direct generalization of the teacher's generator/parser.go, which
// walked the same go/packages-loaded ASTs for the single purpose of
// emitting GraphQL schema text.
package gotypes

import (
	"fmt"

	"golang.org/x/tools/go/packages"
)

// loadMode mirrors generator/parser.go's GetPackageImportPathFromFile:
// enough mode bits to resolve import paths, type-check, and recover
// doc comments and declaration positions.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo |
	packages.NeedModule

// Load resolves and type-checks every package matched by patterns (Go
// package patterns, e.g. "./models/...", "example.com/api/types"),
// mirroring the teacher's on-demand package loading in GetPackageImportPath.
func Load(dir string, patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode: loadMode,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("gotypes: loading packages: %w", err)
	}
	var errs []error
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			errs = append(errs, fmt.Errorf("%s: %w", p.PkgPath, e))
		}
	})
	if len(errs) > 0 {
		return pkgs, fmt.Errorf("gotypes: %d package error(s), first: %w", len(errs), errs[0])
	}
	return pkgs, nil
}
