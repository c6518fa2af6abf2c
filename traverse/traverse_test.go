package traverse

import (
	"testing"

	"github.com/vexlang/tygen/path"
	"github.com/vexlang/tygen/types"
)

func TestMapAnyStepObjectLike(t *testing.T) {
	field := types.NewPrimitive(types.KindString)
	obj := types.NewObjectLike(types.KindInterface, types.ObjectLikeSpec{
		Name:    "Point",
		Members: []types.Member{{Name: "x", Type: field}, {Name: "y", Type: field}},
	})

	edges := MapAnyStep(obj)
	if len(edges) != 2 {
		t.Fatalf("len(edges) = %d, want 2", len(edges))
	}
	if edges[0].Step.Name != "x" || edges[1].Step.Name != "y" {
		t.Errorf("edges out of declared order: %+v", edges)
	}
}

func TestMapJSONStepExcludesSignatures(t *testing.T) {
	call := types.NewCallable(types.KindFunction, types.CallableSpec{ReturnType: types.NewPrimitive(types.KindVoid)})
	obj := types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{
		Name:          "Widget",
		Members:       []types.Member{{Name: "id", Type: types.NewPrimitive(types.KindString)}},
		CallSignature: call,
	})

	anyEdges := MapAnyStep(obj)
	jsonEdges := MapJSONStep(obj)

	if len(anyEdges) != 2 {
		t.Fatalf("len(anyEdges) = %d, want 2 (member + call signature)", len(anyEdges))
	}
	if len(jsonEdges) != 1 {
		t.Fatalf("len(jsonEdges) = %d, want 1 (member only)", len(jsonEdges))
	}
}

func TestWalkDepthFirstCountsNodes(t *testing.T) {
	leaf := types.NewPrimitive(types.KindNumber)
	arr := types.NewArray(leaf)
	obj := types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{
		Name:    "Bag",
		Members: []types.Member{{Name: "items", Type: arr}},
	})

	count := WalkDepthFirst(nil, obj, DepthFirstVisitor[int]{
		Combine: func(p path.Path, t *types.Type, children []ChildResult[int]) int {
			total := 1
			for _, c := range children {
				total += c.Result
			}
			return total
		},
	})

	if count != 3 {
		t.Errorf("node count = %d, want 3 (object + array + number)", count)
	}
}

func TestPreventCyclesBreaksSelfReference(t *testing.T) {
	self := types.NewObjectLike(types.KindObject, types.ObjectLikeSpec{Name: "Node"})
	self.NamedMembers = []types.Member{{Name: "next", Type: self}}

	var visits int
	base := func(p path.Path, t *types.Type, ctx *Context[bool]) bool {
		visits++
		for _, e := range MapAnyStep(t) {
			if ctx.Visit(path.Concat(p, e.Step), e.Type) {
				return true
			}
		}
		return false
	}

	guarded := PreventCycles[bool](func(c Cyclical) bool { return true })(base)

	hitCycle := Walk[bool](nil, self, guarded)
	if !hitCycle {
		t.Errorf("expected PreventCycles to report a cycle")
	}
	if visits == 0 {
		t.Errorf("expected at least one visit before the cycle was caught")
	}
}
