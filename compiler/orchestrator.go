package compiler

import (
	"fmt"

	"github.com/vexlang/tygen/outast"
	"github.com/vexlang/tygen/path"
	"github.com/vexlang/tygen/types"
)

// maxCompileDepth bounds path length before a runaway recursion is
// translated into CircularCompilationWithoutBreak (spec §4.4
// "Stack-overflow recovery"). Go has no catchable stack-overflow signal
// equivalent to a host language's RangeError, so a path-length guard is
// this repository's stand-in — documented in DESIGN.md.
const maxCompileDepth = 4096

// Compiler is the orchestrator: it owns the single mutable `current`
// state cell (outputLocation, program) and a backend, and restores
// `current` on every recursive invocation (spec §4.4, §5 Reentrancy).
type Compiler struct {
	backend Backend

	program       *Program
	outputLocation *Location

	annotated map[error]bool
}

// New returns a Compiler driving backend.
func New(backend Backend) *Compiler {
	return &Compiler{backend: backend}
}

// Entry is one requested compilation output: an already-adapted Type (the
// caller runs its own source adapter first — the compiler package has no
// dependency on any particular host type-checker) and its desired
// placement.
type Entry struct {
	Type           *types.Type
	OutputLocation Location
}

// CompileProgram drives entry-point compilation end to end (spec §4.4
// compileProgram): installs a fresh Program, assigns every entry its
// declaration location up front, compiles each entry and assigns its
// reachable nodes to files, then asks the backend to render each touched
// file.
func (c *Compiler) CompileProgram(entries []Entry) (*Output, error) {
	c.program = newProgram()
	c.outputLocation = nil
	c.annotated = map[error]bool{}

	locations := make([]DeclarationLocation, len(entries))
	for i, e := range entries {
		loc := e.OutputLocation
		locations[i] = c.assignDeclarationLocation(e.Type, &loc)
		c.program.EntryPoints[e.Type] = locations[i]
	}

	visited := map[*outast.Node]bool{}
	for i, e := range entries {
		loc := locations[i]
		node, err := c.compileType(e.Type, nil, &loc.Location)
		if err != nil {
			return nil, err
		}
		c.assignFiles(node, loc.FileName, visited)
	}

	return c.renderFiles()
}

// compileType is the traversal kernel of spec §4.4 compileType: cache
// lookup, then cycle/reference check, then backend delegation.
func (c *Compiler) compileType(t *types.Type, p path.Path, outputLocation *Location) (*outast.Node, error) {
	saved := c.outputLocation
	if outputLocation != nil {
		c.outputLocation = outputLocation
	}
	defer func() { c.outputLocation = saved }()

	if t.Kind == types.KindInvalid && t.Error != "" {
		return nil, c.annotate(p, &TypeKindHasError{Type: t})
	}

	if node, ok := c.program.typeToAstNode[t]; ok {
		return node, nil
	}

	if sub, cyc := path.SubpathFrom(p, t); cyc {
		if loc, ok := c.program.typeToDeclarationLocation[t]; ok {
			from := Location{}
			if c.outputLocation != nil {
				from = *c.outputLocation
			}
			return c.compileReference(ReferenceArgs{From: from, To: loc}, t)
		}
		return nil, c.annotate(p, &CircularCompilationWithoutBreak{Subpath: sub, Named: firstNamedType(sub)})
	}

	if len(p) > maxCompileDepth {
		return nil, c.annotate(p, &CircularCompilationWithoutBreak{Subpath: p, Named: firstNamedType(p)})
	}

	node, err := c.backend.CompileType(VisitArgs{
		Type: t,
		Path: p,
		Visit: func(step path.Step, child *types.Type) (*outast.Node, error) {
			return c.compileType(child, path.Concat(p, step), nil)
		},
		AssignDeclarationLocation: c.assignDeclarationLocation,
	})
	if err != nil {
		return nil, c.annotate(p, err)
	}
	if node.ShouldCache() {
		c.program.typeToAstNode[t] = node
	}
	return node, nil
}

// compileReference implements spec §4.4 compileReference: sets the
// current output location to args.From, delegates to the backend, and —
// if the backend returned a bare plain node — wraps it as a reference
// node so the file-assignment walk can still find the edge.
func (c *Compiler) compileReference(args ReferenceArgs, referenced *types.Type) (*outast.Node, error) {
	saved := c.outputLocation
	c.outputLocation = &args.From
	defer func() { c.outputLocation = saved }()

	node, err := c.backend.CompileReference(args)
	if err != nil {
		return nil, err
	}
	if node.Flavor == outast.Plain {
		wrapped := outast.NewReference(args.To.Location, true, node.Text)
		wrapped.Children = node.Children
		wrapped.Type = referenced
		return wrapped, nil
	}
	return node, nil
}

// assignDeclarationLocation returns type t's existing assignment if one
// exists; otherwise computes and records one (spec §4.4
// assignDeclarationLocation). suggested, if non-nil, is the explicit
// override argument; nil falls through to the backend's
// DeclarationLocationSuggester, then the current output location.
func (c *Compiler) assignDeclarationLocation(t *types.Type, suggested *Location) DeclarationLocation {
	if loc, ok := c.program.typeToDeclarationLocation[t]; ok {
		return loc
	}

	var loc Location
	switch {
	case suggested != nil:
		loc = *suggested
	default:
		from := Location{}
		if c.outputLocation != nil {
			from = *c.outputLocation
		}
		if s, ok := c.backend.(DeclarationLocationSuggester); ok {
			if suggestedLoc, ok := s.SuggestDeclarationLocation(t, from); ok {
				loc = suggestedLoc
				break
			}
		}
		loc = from
	}

	name := t.Name
	if name == "" {
		name = inferTypeName(t)
	}
	name = c.uniqueName(loc, name)

	decl := DeclarationLocation{Location: loc, Name: name}
	c.program.typeToDeclarationLocation[t] = decl
	return decl
}

func (c *Compiler) uniqueName(loc Location, base string) string {
	key := locationKey(loc, base)
	n := c.program.declarationLocationNameCount[key]
	c.program.declarationLocationNameCount[key] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s%d", base, n)
}

// annotate wraps err in a VisitorError exactly once per error identity
// (spec §4.3 "Error annotation", testable property 6), tracked across
// the whole CompileProgram call.
func (c *Compiler) annotate(p path.Path, err error) error {
	if err == nil || c.annotated[err] {
		return err
	}
	c.annotated[err] = true
	wrapped := &VisitorError{Path: p, Err: err}
	c.annotated[wrapped] = true
	return wrapped
}

func firstNamedType(p path.Path) string {
	for _, s := range p {
		if s.From != nil && s.From.Name != "" {
			return s.From.Name
		}
	}
	return ""
}
