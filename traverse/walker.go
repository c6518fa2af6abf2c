package traverse

import (
	"github.com/vexlang/tygen/path"
	"github.com/vexlang/tygen/types"
)

// Visitor produces a result of type R for the type reached at p, given a
// Context it may use to recurse into children or swap in a different
// visitor for the remainder of the walk (spec §4.3 "visitor composition").
type Visitor[R any] func(p path.Path, t *types.Type, ctx *Context[R]) R

// Context carries the state shared by every recursive step of one Walk
// call: the active visitor, and the set of errors already annotated with
// path information so that a single failure is annotated exactly once even
// if it propagates through several levels (spec §4.3 "Error annotation").
type Context[R any] struct {
	visitor   Visitor[R]
	annotated map[error]bool
}

// Visit recurses into (p, t) using the context's current visitor.
func (c *Context[R]) Visit(p path.Path, t *types.Type) R {
	return c.visitor(p, t, c)
}

// With returns a Context that uses v for the remainder of the walk rooted
// here, while continuing to share this walk's error-annotation bookkeeping.
func (c *Context[R]) With(v Visitor[R]) *Context[R] {
	return &Context[R]{visitor: v, annotated: c.annotated}
}

// AnnotateOnce calls annotate(err) and returns its result the first time
// err is seen during this walk; subsequent calls with the same err value
// return err unchanged. This keeps a single underlying failure from
// accumulating duplicate path annotations as it bubbles through nested
// Visit calls.
func (c *Context[R]) AnnotateOnce(err error, annotate func(error) error) error {
	if err == nil {
		return nil
	}
	if c.annotated[err] {
		return err
	}
	c.annotated[err] = true
	return annotate(err)
}

// Walk starts a new traversal at (root, t) using visitor, returning its
// result. Every nested Visit call during the walk shares one
// error-annotation set.
func Walk[R any](root path.Path, t *types.Type, visitor Visitor[R]) R {
	ctx := &Context[R]{visitor: visitor, annotated: map[error]bool{}}
	return ctx.Visit(root, t)
}
