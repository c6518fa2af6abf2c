package gotypes

import (
	gotypes "go/types"

	"github.com/vexlang/tygen/types"
)

func qualifiedNameOf(obj *gotypes.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}

// dateLike recognizes time.Time as the spec's well-known `date` kind
// (spec §4.5 "Well-known recognition": "Date becomes date").
func dateLike(obj *gotypes.TypeName) bool {
	return obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Time"
}

// isDegenerateAlias reports whether an alias target is anything other than
// an object-like, callable, enum, union or intersection type (scalars,
// arrays, tuples and the like) — the case spec §4.5 elides unless
// PreserveSimpleAliases is set ("keep alias wrappers even when the aliased
// type is a simple pass-through").
func isDegenerateAlias(underlying *types.Type) bool {
	switch underlying.Kind {
	case types.KindInterface, types.KindObject, types.KindClass,
		types.KindFunction, types.KindMethod, types.KindEnum, types.KindUnion, types.KindIntersection:
		return false
	default:
		return true
	}
}

func (a *Adapter) genericParamsOf(n *gotypes.Named) []types.GenericParameter {
	tp := n.TypeParams()
	if tp == nil {
		return nil
	}
	params := make([]types.GenericParameter, 0, tp.Len())
	for i := 0; i < tp.Len(); i++ {
		params = append(params, a.adaptTypeParamDecl(tp.At(i)))
	}
	return params
}

func (a *Adapter) adaptUnderlyingNamed(n *gotypes.Named) *types.Type {
	name := n.Obj().Name()
	switch u := n.Underlying().(type) {
	case *gotypes.Struct:
		return a.adaptStruct(name, u)
	case *gotypes.Interface:
		return a.adaptInterface(name, u)
	case *gotypes.Signature:
		return a.adaptSignature(name, u)
	default:
		return a.adapt(u)
	}
}

// adaptGenericInstantiation lifts an instantiated generic named type into
// {kind: generic-arguments, target, typeArguments, instantiated}, the
// shape spec §4.5 "Generic lifting" requires, composed with the alias
// lift for the instantiation's own declared name.
func (a *Adapter) adaptGenericInstantiation(n *gotypes.Named) *types.Type {
	origin := n.Origin()
	target := a.Adapt(origin)

	targs := n.TypeArgs()
	args := make([]*types.Type, 0, targs.Len())
	for i := 0; i < targs.Len(); i++ {
		args = append(args, a.Adapt(targs.At(i)))
	}

	instantiated := a.adaptUnderlyingNamed(n)
	alias := types.NewAlias(n.Obj().Name(), instantiated, nil, a.opts.PreserveSimpleAliases)
	return types.NewGenericArguments(target, args, alias)
}

func (a *Adapter) adaptNamed(n *gotypes.Named) *types.Type {
	obj := n.Obj()

	if dateLike(obj) {
		return types.NewPrimitive(types.KindDate)
	}

	if members, ok := a.enumMembersFor(n); ok {
		return types.NewEnum(obj.Name(), members)
	}

	if targs := n.TypeArgs(); targs != nil && targs.Len() > 0 {
		return a.adaptGenericInstantiation(n)
	}

	underlying := a.adaptUnderlyingNamed(n)
	if isDegenerateAlias(underlying) && !a.opts.PreserveSimpleAliases {
		return underlying
	}
	return types.NewAlias(obj.Name(), underlying, a.genericParamsOf(n), a.opts.PreserveSimpleAliases)
}
