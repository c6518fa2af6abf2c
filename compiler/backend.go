package compiler

import (
	"github.com/vexlang/tygen/outast"
	"github.com/vexlang/tygen/path"
	"github.com/vexlang/tygen/types"
)

// VisitArgs is the {type, path, visit} context spec §4.4 passes to a
// backend's compileType. Visit recurses into a child reached by step,
// sharing this compilation's memoization and cycle handling.
type VisitArgs struct {
	Type *types.Type
	Path path.Path
	Visit func(step path.Step, child *types.Type) (*outast.Node, error)

	// AssignDeclarationLocation lets a backend force a type to have a
	// declaration location before recursing into it, the mechanism
	// spec's recursive-type scenario relies on to make a later cycle
	// resolvable as a reference rather than an unbreakable recursion
	// (spec §7 scenario D: "Backend assigns a declaration location to
	// Node before recursing").
	AssignDeclarationLocation func(t *types.Type, suggested *Location) DeclarationLocation
}

// ReferenceArgs is the {from, to} pair spec §4.4 passes to
// compileReference.
type ReferenceArgs struct {
	From Location
	To   DeclarationLocation
}

// Backend is the contract a pluggable target implements (spec §4.4,
// §6.2). Concrete backends live outside this package — the core ships no
// bundled backend (spec Non-goals).
type Backend interface {
	// CompileType renders one encountered type; it may recurse via
	// args.Visit.
	CompileType(args VisitArgs) (*outast.Node, error)

	// CompileReference renders the syntactic form used to refer to a
	// declaration from args.From (e.g. bare name same-file, qualified
	// name cross-file).
	CompileReference(args ReferenceArgs) (*outast.Node, error)

	// CompileFile renders one file's full text given all declarations
	// and outgoing references assigned to it.
	CompileFile(file *FileBuilder) (*outast.Node, error)
}

// DeclarationLocationSuggester is the optional placement-policy hook
// (spec §4.4 "suggestDeclarationLocation?"). A Backend that does not
// implement it falls back to current.outputLocation, then the empty
// Location, as assignDeclarationLocation describes.
type DeclarationLocationSuggester interface {
	SuggestDeclarationLocation(t *types.Type, from Location) (Location, bool)
}
