package traverse

import (
	"github.com/vexlang/tygen/path"
	"github.com/vexlang/tygen/types"
)

// Cyclical marks a point where a walk revisited a type already on its own
// path; it carries the subpath from the first visit back to here so a
// caller can render a diagnostic or break the cycle with a reference.
type Cyclical struct {
	Type    *types.Type
	Subpath path.Path
}

// PreventCycles wraps a Visitor so that, whenever the current path already
// includes the type about to be visited, onCycle runs instead of
// recursing. This is an opt-in combinator (spec's REDESIGN FLAGS: the
// walker itself never breaks cycles) — callers that need unconditional
// termination must apply it explicitly.
func PreventCycles[R any](onCycle func(c Cyclical) R) func(next Visitor[R]) Visitor[R] {
	return func(next Visitor[R]) Visitor[R] {
		return func(p path.Path, t *types.Type, ctx *Context[R]) R {
			if sub, ok := path.SubpathFrom(p, t); ok {
				return onCycle(Cyclical{Type: t, Subpath: sub})
			}
			return next(p, t, ctx)
		}
	}
}
