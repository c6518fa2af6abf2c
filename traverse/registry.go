// Package traverse implements the traversal engine (spec §3.3, §9): a
// kind-keyed registry of child enumerators, a walker that threads an
// accumulated path, and two ready-made enumerators (MapAnyStep,
// MapJSONStep).
package traverse

import (
	"github.com/vexlang/tygen/path"
	"github.com/vexlang/tygen/types"
)

// Edge pairs a labelled step with the child Type it leads to.
type Edge struct {
	Step path.Step
	Type *types.Type
}

// Enumerator returns the ordered list of edges leaving t. Order is fixed
// per kind so that two walks of the same Type always visit children in the
// same sequence (spec §9 "Visitor polymorphism": "dispatch is a fixed,
// declaration-ordered table, never a dynamic lookup keyed on anything but
// Kind").
type Enumerator func(t *types.Type) []Edge

func namedMemberEdges(t *types.Type) []Edge {
	edges := make([]Edge, 0, len(t.NamedMembers))
	for _, m := range t.NamedMembers {
		edges = append(edges, Edge{Step: path.Step{Kind: path.StepNamedMember, From: t, Name: m.Name, Member: m.Type}, Type: m.Type})
	}
	return edges
}

func objectLikeEdges(t *types.Type, includeSignatures bool) []Edge {
	edges := namedMemberEdges(t)
	if t.StringIndexType != nil {
		edges = append(edges, Edge{Step: path.Step{Kind: path.StepStringIndex, From: t}, Type: t.StringIndexType})
	}
	if t.NumberIndexType != nil {
		edges = append(edges, Edge{Step: path.Step{Kind: path.StepNumberIndex, From: t}, Type: t.NumberIndexType})
	}
	if includeSignatures {
		if t.CallSignature != nil {
			edges = append(edges, Edge{Step: path.Step{Kind: path.StepCallSignature, From: t}, Type: t.CallSignature})
		}
		if t.CtorSignature != nil {
			edges = append(edges, Edge{Step: path.Step{Kind: path.StepCtorSignature, From: t}, Type: t.CtorSignature})
		}
	}
	for i, gp := range t.GenericParams {
		if includeSignatures {
			if gp.Constraint != nil {
				edges = append(edges, Edge{Step: path.Step{Kind: path.StepTypeParameterConstraint, From: t, Index: i, Name: gp.Name}, Type: gp.Constraint})
			}
			if gp.Default != nil {
				edges = append(edges, Edge{Step: path.Step{Kind: path.StepTypeParameterDefault, From: t, Index: i, Name: gp.Name}, Type: gp.Default})
			}
		}
	}
	return edges
}

func callableEdges(t *types.Type, includeGenerics bool) []Edge {
	edges := make([]Edge, 0, len(t.Parameters)+1)
	for i, p := range t.Parameters {
		edges = append(edges, Edge{Step: path.Step{Kind: path.StepParameter, From: t, Index: i, Name: p.Name, Parameter: p.Type}, Type: p.Type})
	}
	if t.ReturnType != nil {
		edges = append(edges, Edge{Step: path.Step{Kind: path.StepReturn, From: t}, Type: t.ReturnType})
	}
	if includeGenerics {
		for i, gp := range t.GenericParams {
			if gp.Constraint != nil {
				edges = append(edges, Edge{Step: path.Step{Kind: path.StepTypeParameterConstraint, From: t, Index: i, Name: gp.Name}, Type: gp.Constraint})
			}
			if gp.Default != nil {
				edges = append(edges, Edge{Step: path.Step{Kind: path.StepTypeParameterDefault, From: t, Index: i, Name: gp.Name}, Type: gp.Default})
			}
		}
	}
	return edges
}

// anyRegistry enumerates every structurally reachable child, used by
// MapAnyStep.
var anyRegistry = map[types.Kind]Enumerator{
	types.KindEnum: func(t *types.Type) []Edge {
		edges := make([]Edge, 0, len(t.Members_))
		for i, m := range t.Members_ {
			edges = append(edges, Edge{Step: path.Step{Kind: path.StepVariant, From: t, Index: i, Name: m.Name}, Type: m.Value})
		}
		return edges
	},
	types.KindUnion: func(t *types.Type) []Edge {
		edges := make([]Edge, 0, len(t.Variants))
		for i, v := range t.Variants {
			edges = append(edges, Edge{Step: path.Step{Kind: path.StepVariant, From: t, Index: i}, Type: v})
		}
		return edges
	},
	types.KindIntersection: func(t *types.Type) []Edge {
		edges := make([]Edge, 0, len(t.Variants))
		for i, v := range t.Variants {
			edges = append(edges, Edge{Step: path.Step{Kind: path.StepVariant, From: t, Index: i}, Type: v})
		}
		return edges
	},
	types.KindInterface: func(t *types.Type) []Edge { return objectLikeEdges(t, true) },
	types.KindObject:    func(t *types.Type) []Edge { return objectLikeEdges(t, true) },
	types.KindClass:     func(t *types.Type) []Edge { return objectLikeEdges(t, true) },
	types.KindFunction:  func(t *types.Type) []Edge { return callableEdges(t, true) },
	types.KindMethod:    func(t *types.Type) []Edge { return callableEdges(t, true) },
	types.KindGenericArguments: func(t *types.Type) []Edge {
		edges := make([]Edge, 0, len(t.TypeArguments)+2)
		if t.Target != nil {
			edges = append(edges, Edge{Step: path.Step{Kind: path.StepGenericTarget, From: t}, Type: t.Target})
		}
		for i, a := range t.TypeArguments {
			edges = append(edges, Edge{Step: path.Step{Kind: path.StepGenericArgument, From: t, Index: i}, Type: a})
		}
		if t.Instantiated != nil {
			edges = append(edges, Edge{Step: path.Step{Kind: path.StepAliased, From: t}, Type: t.Instantiated})
		}
		return edges
	},
	types.KindAlias: func(t *types.Type) []Edge {
		if t.AliasTarget == nil {
			return nil
		}
		return []Edge{{Step: path.Step{Kind: path.StepAliased, From: t}, Type: t.AliasTarget}}
	},
	types.KindArray: func(t *types.Type) []Edge {
		if t.Element == nil {
			return nil
		}
		return []Edge{{Step: path.Step{Kind: path.StepIndexedMember, From: t, Index: 0}, Type: t.Element}}
	},
	types.KindTuple: func(t *types.Type) []Edge {
		edges := make([]Edge, 0, len(t.TupleMembers))
		for i, m := range t.TupleMembers {
			edges = append(edges, Edge{Step: path.Step{Kind: path.StepIndexedMember, From: t, Index: i, Name: m.Label}, Type: m.Type})
		}
		return edges
	},
	types.KindPromise: func(t *types.Type) []Edge {
		if t.Element == nil {
			return nil
		}
		return []Edge{{Step: path.Step{Kind: path.StepAwaited, From: t}, Type: t.Element}}
	},
	types.KindGenericParameter: func(t *types.Type) []Edge {
		var edges []Edge
		if t.Constraint != nil {
			edges = append(edges, Edge{Step: path.Step{Kind: path.StepTypeParameterConstraint, From: t}, Type: t.Constraint})
		}
		if t.Default != nil {
			edges = append(edges, Edge{Step: path.Step{Kind: path.StepTypeParameterDefault, From: t}, Type: t.Default})
		}
		return edges
	},
}

// jsonRegistry mirrors anyRegistry but drops call/ctor signatures, the
// parameters and return types of callables, type parameters,
// generic-argument structure and promise awaiting (spec §3.3
// "MapJSONStep: the subset of steps a JSON-shaped projection can carry").
var jsonRegistry = map[types.Kind]Enumerator{
	types.KindEnum:        anyRegistry[types.KindEnum],
	types.KindUnion:       anyRegistry[types.KindUnion],
	types.KindIntersection: anyRegistry[types.KindIntersection],
	types.KindInterface:   func(t *types.Type) []Edge { return objectLikeEdges(t, false) },
	types.KindObject:      func(t *types.Type) []Edge { return objectLikeEdges(t, false) },
	types.KindClass:       func(t *types.Type) []Edge { return objectLikeEdges(t, false) },
	types.KindArray:       anyRegistry[types.KindArray],
	types.KindTuple:       anyRegistry[types.KindTuple],
	types.KindAlias:       anyRegistry[types.KindAlias],
}

// MapAnyStep enumerates every child edge of t, in fixed declaration order,
// across all step kinds the type model defines.
func MapAnyStep(t *types.Type) []Edge {
	if t == nil {
		return nil
	}
	if enum, ok := anyRegistry[t.Kind]; ok {
		return enum(t)
	}
	return nil
}

// MapJSONStep enumerates the child edges of t relevant to a JSON-shaped
// projection: it excludes call/ctor signatures, callable parameters and
// return types, generic-parameter structure, generic-argument structure,
// and promise awaiting.
func MapJSONStep(t *types.Type) []Edge {
	if t == nil {
		return nil
	}
	if enum, ok := jsonRegistry[t.Kind]; ok {
		return enum(t)
	}
	return nil
}
