package types

// The constructors in this file are the only sanctioned way to build a
// *Type. They exist so that adapter packages (spec §4.5) share one place
// that enforces "kind uniquely determines the shape of required fields";
// nothing outside an adapter should call them.

// NewPrimitive returns a Type of one of the fixed, payload-free primitive
// kinds (string, number, boolean, bigint, symbol, null, undefined, void,
// any, unknown, never, non-primitive-object, date).
func NewPrimitive(kind Kind) *Type {
	return &Type{Kind: kind}
}

// NewLiteral returns a primitive-literal Type carrying value.
func NewLiteral(kind Kind, value interface{}) *Type {
	return &Type{Kind: kind, LiteralValue: value}
}

// NewEnumMember returns an enum-member Type.
func NewEnumMember(name, qualifiedName string, value *Type) *Type {
	return &Type{Kind: KindEnumMember, Name: name, QualifiedName: qualifiedName, Members_: []EnumMember{{Name: name, QualifiedName: qualifiedName, Value: value}}}
}

// NewEnum returns an enum Type with the given ordered members.
func NewEnum(name string, members []EnumMember) *Type {
	return &Type{Kind: KindEnum, Name: name, Members_: members}
}

// NewUnion returns a union Type. An empty variants list collapses to never
// and a single-element list collapses to that element, per spec §4.5
// "Simplification".
func NewUnion(variants []*Type, discriminants []string) *Type {
	switch len(variants) {
	case 0:
		return NewPrimitive(KindNever)
	case 1:
		return variants[0]
	default:
		return &Type{Kind: KindUnion, Variants: variants, DiscriminantMembers: discriminants}
	}
}

// NewIntersection returns an intersection Type, optionally carrying the
// reduced form in intersected.
func NewIntersection(variants []*Type, intersected *Type) *Type {
	return &Type{Kind: KindIntersection, Variants: variants, Intersected: intersected}
}

// ObjectLikeSpec groups the optional slots of an interface/object/class
// Type so NewObjectLike doesn't need a long positional signature.
type ObjectLikeSpec struct {
	Name            string
	Members         []Member
	CallSignature   *Type
	CtorSignature   *Type
	GenericParams   []GenericParameter
	StringIndexType *Type
	NumberIndexType *Type
}

// NewObjectLike returns an interface/object/class Type.
func NewObjectLike(kind Kind, spec ObjectLikeSpec) *Type {
	return &Type{
		Kind:            kind,
		Name:            spec.Name,
		NamedMembers:    spec.Members,
		CallSignature:   spec.CallSignature,
		CtorSignature:   spec.CtorSignature,
		GenericParams:   spec.GenericParams,
		StringIndexType: spec.StringIndexType,
		NumberIndexType: spec.NumberIndexType,
	}
}

// CallableSpec groups the fields of a function/method Type.
type CallableSpec struct {
	Name          string
	Parameters    []Parameter
	GenericParams []GenericParameter
	ReturnType    *Type
	Predicate     *TypePredicate
}

// NewCallable returns a function/method Type.
func NewCallable(kind Kind, spec CallableSpec) *Type {
	return &Type{
		Kind:          kind,
		Name:          spec.Name,
		Parameters:    spec.Parameters,
		GenericParams: spec.GenericParams,
		ReturnType:    spec.ReturnType,
		TypePredicate: spec.Predicate,
	}
}

// NewGenericParameter returns a generic-parameter Type.
func NewGenericParameter(name string, constraint, def *Type) *Type {
	return &Type{Kind: KindGenericParameter, Name: name, Constraint: constraint, Default: def}
}

// NewGenericArguments returns a generic-arguments (instantiation) Type.
func NewGenericArguments(target *Type, typeArguments []*Type, instantiated *Type) *Type {
	return &Type{Kind: KindGenericArguments, Target: target, TypeArguments: typeArguments, Instantiated: instantiated}
}

// NewAlias returns an alias wrapper Type.
func NewAlias(name string, target *Type, typeParams []GenericParameter, preserved bool) *Type {
	return &Type{Kind: KindAlias, Name: name, AliasTarget: target, GenericParams: typeParams, PreservedAlias: preserved}
}

// NewArray returns an array Type.
func NewArray(element *Type) *Type {
	return &Type{Kind: KindArray, Element: element}
}

// NewTuple returns a tuple Type.
func NewTuple(members []IndexedMember, hasRest bool) *Type {
	return &Type{Kind: KindTuple, TupleMembers: members, HasRest: hasRest}
}

// NewPromise returns a promise Type.
func NewPromise(element *Type) *Type {
	return &Type{Kind: KindPromise, Element: element}
}

// NewError returns a Type carrying an error marker for an untranslatable
// host type (spec §7 TypeKindHasError).
func NewError(message string) *Type {
	return &Type{Kind: KindInvalid, Error: message}
}
