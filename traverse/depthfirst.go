package traverse

import (
	"github.com/vexlang/tygen/path"
	"github.com/vexlang/tygen/types"
)

// ChildResult pairs an enumerated edge with the result of visiting its
// child, in the order the enumerator produced it.
type ChildResult[R any] struct {
	Edge   Edge
	Result R
}

// DepthFirstVisitor configures WalkDepthFirst. Before and After are
// optional hooks run immediately before descending into a type and
// immediately after its children have all been combined, respectively.
// Enumerate selects which children to descend into (MapAnyStep by
// default); Combine folds the per-child results, together with t itself,
// into the result for t.
type DepthFirstVisitor[R any] struct {
	Before   func(p path.Path, t *types.Type)
	After    func(p path.Path, t *types.Type, result R) R
	Enumerate Enumerator
	Combine  func(p path.Path, t *types.Type, children []ChildResult[R]) R
}

// WalkDepthFirst performs a pre-order/post-order traversal of t: Before
// runs on entry, every enumerated child is visited recursively (sharing
// one Context, so With/AnnotateOnce compose normally), Combine folds the
// children's results, and After runs on the combined result before it is
// returned to the parent call.
func WalkDepthFirst[R any](root path.Path, t *types.Type, v DepthFirstVisitor[R]) R {
	enumerate := v.Enumerate
	if enumerate == nil {
		enumerate = MapAnyStep
	}

	var visitor Visitor[R]
	visitor = func(p path.Path, t *types.Type, ctx *Context[R]) R {
		if v.Before != nil {
			v.Before(p, t)
		}
		edges := enumerate(t)
		children := make([]ChildResult[R], 0, len(edges))
		for _, e := range edges {
			childPath := path.Concat(p, e.Step)
			children = append(children, ChildResult[R]{Edge: e, Result: ctx.Visit(childPath, e.Type)})
		}
		result := v.Combine(p, t, children)
		if v.After != nil {
			result = v.After(p, t, result)
		}
		return result
	}
	return Walk(root, t, visitor)
}
