// Package types defines the intermediate type model: a closed, immutable
// description of every type kind a host type-checker can hand to the
// compiler (primitives, literals, enums, object-like types, callables,
// generics, aliases, sequences and promises). Values are produced only by
// an adapter package (see tygen's source packages) and are never mutated
// after construction.
package types

// Kind is the closed tag of a Type value. The zero Kind is never produced
// by an adapter; Type.Kind is always one of the named constants below.
type Kind int

const (
	KindInvalid Kind = iota

	// Primitives
	KindString
	KindNumber
	KindBoolean
	KindBigInt
	KindSymbol
	KindNull
	KindUndefined
	KindVoid
	KindAny
	KindUnknown
	KindNever
	KindNonPrimitiveObject
	KindDate

	// Primitive literals
	KindStringLiteral
	KindNumberLiteral
	KindBooleanLiteral
	KindBigIntLiteral
	KindUniqueSymbol

	// Enums
	KindEnumMember
	KindEnum

	// Composite algebraic
	KindUnion
	KindIntersection

	// Object-like
	KindInterface
	KindObject
	KindClass

	// Callable
	KindFunction
	KindMethod

	// Generic parameter / instantiation / alias
	KindGenericParameter
	KindGenericArguments
	KindAlias

	// Sequences
	KindArray
	KindTuple

	// Awaited
	KindPromise
)

var kindNames = map[Kind]string{
	KindInvalid:            "invalid",
	KindString:             "string",
	KindNumber:             "number",
	KindBoolean:            "boolean",
	KindBigInt:             "bigint",
	KindSymbol:             "symbol",
	KindNull:               "null",
	KindUndefined:          "undefined",
	KindVoid:               "void",
	KindAny:                "any",
	KindUnknown:            "unknown",
	KindNever:              "never",
	KindNonPrimitiveObject: "non-primitive-object",
	KindDate:               "date",
	KindStringLiteral:      "string-literal",
	KindNumberLiteral:      "number-literal",
	KindBooleanLiteral:     "boolean-literal",
	KindBigIntLiteral:      "bigint-literal",
	KindUniqueSymbol:       "unique-symbol",
	KindEnumMember:         "enum-member",
	KindEnum:               "enum",
	KindUnion:              "union",
	KindIntersection:       "intersection",
	KindInterface:          "interface",
	KindObject:             "object",
	KindClass:              "class",
	KindFunction:           "function",
	KindMethod:             "method",
	KindGenericParameter:   "generic-parameter",
	KindGenericArguments:   "generic-arguments",
	KindAlias:              "alias",
	KindArray:              "array",
	KindTuple:              "tuple",
	KindPromise:            "promise",
}

// String renders the kind using the textual names from spec's grouping
// (e.g. "string", "union", "generic-arguments"). Used for diagnostics and
// for the NoBackendForKind error.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown-kind"
}

// IsObjectLike reports whether the kind is interface/object/class — the
// three kinds sharing the named-member/call-signature/ctor-signature/index
// shape.
func (k Kind) IsObjectLike() bool {
	return k == KindInterface || k == KindObject || k == KindClass
}

// IsCallable reports whether the kind is function/method — the two kinds
// sharing the parameter/return/generic-parameter shape.
func (k Kind) IsCallable() bool {
	return k == KindFunction || k == KindMethod
}
