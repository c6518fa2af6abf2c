package gotypes

import (
	"fmt"
	gotypes "go/types"

	"github.com/vexlang/tygen/source"
	"github.com/vexlang/tygen/types"
)

// Adapter turns go/types values into the core's closed types.Type graph.
// It owns the identity cache (spec §4.5 "Identity preservation") so that
// two adaptations of the same go/types.Type or go/types.Object return the
// same *types.Type, which downstream cycle detection and memoization
// require.
type Adapter struct {
	opts      source.Options
	cache     *source.Cache
	docs      *DocIndex
	enumIndex *EnumIndex
}

// NewAdapter returns an Adapter configured by opts. docs may be nil if
// documentation/position recovery isn't needed (opts.AddMethods false);
// enumIndex may be nil if the input set is known to declare no enums.
func NewAdapter(opts source.Options, docs *DocIndex, enumIndex *EnumIndex) *Adapter {
	return &Adapter{opts: opts, cache: source.NewCache(), docs: docs, enumIndex: enumIndex}
}

// Adapt converts a go/types.Type into the corresponding types.Type. With
// Options.Cache set, results are memoized by identity, and a named type
// gets a cache placeholder before its underlying type is adapted, so a
// self-referential named type resolves to itself. With Options.Cache
// unset, every call adapts afresh.
func (a *Adapter) Adapt(t gotypes.Type) *types.Type {
	if !a.opts.Cache {
		return a.adapt(t)
	}
	if n, ok := t.(*gotypes.Named); ok {
		if cached, ok := a.cache.Lookup(n); ok {
			return cached
		}
		placeholder := a.cache.StartPlaceholder(n, types.KindInvalid)
		*placeholder = *a.adapt(n)
		a.cache.Fill(n)
		return placeholder
	}
	return a.cache.GetOrAdapt(t, func() *types.Type { return a.adapt(t) })
}

func (a *Adapter) adapt(t gotypes.Type) *types.Type {
	switch v := t.(type) {
	case *gotypes.Basic:
		return a.adaptBasic(v)
	case *gotypes.Pointer:
		// No pointer kind exists in the type model (spec §3.1); a Go
		// pointer is transparent to the type it points to.
		return a.Adapt(v.Elem())
	case *gotypes.Slice:
		return types.NewArray(a.Adapt(v.Elem()))
	case *gotypes.Array:
		return types.NewArray(a.Adapt(v.Elem()))
	case *gotypes.Map:
		return a.adaptMap(v)
	case *gotypes.Struct:
		return a.adaptStruct("", v)
	case *gotypes.Interface:
		return a.adaptInterface("", v)
	case *gotypes.Signature:
		return a.adaptSignature("", v)
	case *gotypes.Named:
		return a.adaptNamed(v)
	case *gotypes.TypeParam:
		return a.adaptTypeParam(v)
	case *gotypes.Tuple:
		// Multiple return values with no named type: represent as an
		// anonymous tuple (spec §3.1 sequence/tuple).
		return a.adaptResultTuple(v)
	default:
		return types.NewError(fmt.Sprintf("gotypes: unhandled go/types.Type %T", t))
	}
}

func (a *Adapter) adaptBasic(b *gotypes.Basic) *types.Type {
	switch b.Kind() {
	case gotypes.Bool:
		return types.NewPrimitive(types.KindBoolean)
	case gotypes.String:
		return types.NewPrimitive(types.KindString)
	case gotypes.Int, gotypes.Int8, gotypes.Int16, gotypes.Int32, gotypes.Int64,
		gotypes.Uint, gotypes.Uint8, gotypes.Uint16, gotypes.Uint32, gotypes.Uint64, gotypes.Uintptr,
		gotypes.Float32, gotypes.Float64:
		return types.NewPrimitive(types.KindNumber)
	case gotypes.Complex64, gotypes.Complex128:
		return types.NewPrimitive(types.KindNonPrimitiveObject)
	case gotypes.UntypedNil:
		return types.NewPrimitive(types.KindNull)
	case gotypes.Invalid:
		return types.NewError("invalid basic type")
	default:
		return types.NewPrimitive(types.KindAny)
	}
}

func (a *Adapter) adaptMap(m *gotypes.Map) *types.Type {
	// No map kind exists in the type model; represent as an object-like
	// value with a string- or number-index type (spec §3.1 object-like
	// "string-index type, number-index type"), matching the value's
	// shape for the one index kind Go maps can have.
	value := a.Adapt(m.Elem())
	spec := types.ObjectLikeSpec{}
	if _, ok := m.Key().Underlying().(*gotypes.Basic); ok && isIntegerBasic(m.Key()) {
		spec.NumberIndexType = value
	} else {
		spec.StringIndexType = value
	}
	return types.NewObjectLike(types.KindObject, spec)
}

func isIntegerBasic(t gotypes.Type) bool {
	b, ok := t.Underlying().(*gotypes.Basic)
	if !ok {
		return false
	}
	return b.Info()&gotypes.IsInteger != 0
}

func (a *Adapter) adaptStruct(name string, s *gotypes.Struct) *types.Type {
	spec := types.ObjectLikeSpec{Name: name}
	for i := 0; i < s.NumFields(); i++ {
		f := s.Field(i)
		mods := types.ModifierSet{}
		if f.Exported() {
			mods[types.ModExport] = true
		} else {
			mods[types.ModPrivate] = true
		}
		spec.Members = append(spec.Members, types.Member{
			Name:      f.Name(),
			Type:      a.Adapt(f.Type()),
			Modifiers: mods,
		})
	}
	return types.NewObjectLike(types.KindObject, spec)
}

func (a *Adapter) adaptInterface(name string, iface *gotypes.Interface) *types.Type {
	spec := types.ObjectLikeSpec{Name: name}
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		spec.Members = append(spec.Members, types.Member{
			Name: m.Name(),
			Type: a.adaptSignature(m.Name(), m.Type().(*gotypes.Signature)),
			Modifiers: types.ModifierSet{types.ModExport: m.Exported(), types.ModAbstract: true},
		})
	}
	return types.NewObjectLike(types.KindInterface, spec)
}

func (a *Adapter) adaptSignature(name string, sig *gotypes.Signature) *types.Type {
	spec := types.CallableSpec{Name: name}
	params := sig.Params()
	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		rest := sig.Variadic() && i == params.Len()-1
		spec.Parameters = append(spec.Parameters, types.Parameter{
			Name: p.Name(),
			Type: a.Adapt(p.Type()),
			Rest: rest,
		})
	}
	if tp := sig.TypeParams(); tp != nil {
		for i := 0; i < tp.Len(); i++ {
			spec.GenericParams = append(spec.GenericParams, a.adaptTypeParamDecl(tp.At(i)))
		}
	}
	results := sig.Results()
	switch results.Len() {
	case 0:
		spec.ReturnType = types.NewPrimitive(types.KindVoid)
	case 1:
		spec.ReturnType = a.Adapt(results.At(0).Type())
	default:
		spec.ReturnType = a.adaptResultTuple(results)
	}
	return types.NewCallable(types.KindFunction, spec)
}

func (a *Adapter) adaptResultTuple(tup *gotypes.Tuple) *types.Type {
	members := make([]types.IndexedMember, 0, tup.Len())
	for i := 0; i < tup.Len(); i++ {
		members = append(members, types.IndexedMember{Type: a.Adapt(tup.At(i).Type()), Label: tup.At(i).Name()})
	}
	return types.NewTuple(members, false)
}

func (a *Adapter) adaptTypeParamDecl(tp *gotypes.TypeParam) types.GenericParameter {
	gp := types.GenericParameter{Name: tp.Obj().Name()}
	if c := tp.Constraint(); c != nil {
		gp.Constraint = a.Adapt(c)
	}
	return gp
}

func (a *Adapter) adaptTypeParam(tp *gotypes.TypeParam) *types.Type {
	var constraint *types.Type
	if c := tp.Constraint(); c != nil {
		constraint = a.Adapt(c)
	}
	return types.NewGenericParameter(tp.Obj().Name(), constraint, nil)
}
