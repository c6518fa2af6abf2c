package compiler

import (
	"fmt"

	"github.com/vexlang/tygen/path"
	"github.com/vexlang/tygen/types"
)

// TypeKindHasError reports that a Type carries an error field (produced
// by an adapter for an untranslatable host type) and a backend attempted
// to compile it anyway (spec §7).
type TypeKindHasError struct {
	Type *types.Type
}

func (e *TypeKindHasError) Error() string {
	return fmt.Sprintf("compiler: type has error: %s", e.Type.Error)
}

// NoBackendForKind reports that the backend's kind dispatch has no entry
// for a given kind (spec §7).
type NoBackendForKind struct {
	Kind types.Kind
}

func (e *NoBackendForKind) Error() string {
	return fmt.Sprintf("compiler: no backend support for kind %s", e.Kind)
}

// CircularCompilationWithoutBreak reports recursion that exceeded a
// remediation threshold without ever assigning a declaration location to
// break the cycle (spec §7, §4.4 "Stack-overflow recovery"). Named names
// the first named type found on the cyclic subpath, if any.
type CircularCompilationWithoutBreak struct {
	Subpath path.Path
	Named   string
	Cause   error
}

func (e *CircularCompilationWithoutBreak) Error() string {
	if e.Named != "" {
		return fmt.Sprintf("compiler: circular compilation through %q without a declaration break; call assignDeclarationLocation before recursing or build a reference node directly", e.Named)
	}
	return "compiler: circular compilation without a declaration break; call assignDeclarationLocation before recursing or build a reference node directly"
}

func (e *CircularCompilationWithoutBreak) Unwrap() error { return e.Cause }

// ReferenceWithoutLocation reports that compileReference ran with no
// current output location set (spec §7).
type ReferenceWithoutLocation struct{}

func (e *ReferenceWithoutLocation) Error() string {
	return "compiler: reference built with no current output location"
}

// VisitorError wraps any error a visitor raised, annotated once with the
// diagnostic path string (spec §7 "VisitorError (wrapper)").
type VisitorError struct {
	Path path.Path
	Err  error
}

func (e *VisitorError) Error() string {
	return fmt.Sprintf("%s\nPath: %s", e.Err.Error(), path.ToString(e.Path, nil))
}

func (e *VisitorError) Unwrap() error { return e.Err }
