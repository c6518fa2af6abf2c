// Package source defines the seam between a host type-checker and the
// type model (spec §4.5): the TypeSource interface naming what the core
// needs from a host type-checker, the Options that tune adaptation, and a
// Cache giving identity-preserving, cycle-tolerant memoization. The only
// concrete adapter in this repository is source/gotypes, over Go's own
// go/types; it works on go/types values directly and does not implement
// TypeSource. TypeSource names no Go-specific concept.
package source

import "github.com/vexlang/tygen/types"

// Handle is an opaque reference to a host type-checker's own type value.
// The core and the traversal/compiler packages never look inside a
// Handle; only a TypeSource implementation interprets it.
type Handle = any

// Member is one member a TypeSource enumerates for an object-like host
// type, before it has been turned into a types.Member.
type Member struct {
	Name      string
	Type      Handle
	Optional  bool
	Modifiers types.ModifierSet
}

// Signatures is the optional call/constructor signature pair a TypeSource
// reports for an object-like host type.
type Signatures struct {
	Call  Handle // nil if absent
	Ctor  Handle // nil if absent
}

// GenericInfo is the generic target/arguments a TypeSource reports when a
// host type is an instantiation.
type GenericInfo struct {
	Target        Handle
	TypeArguments []Handle
}

// TypeSource is the capability set the core requires of a host
// type-checker, per spec §1: "classification of a type, member
// enumeration, signature enumeration, generic target/arguments,
// declaration position lookup, export visibility, and documentation
// retrieval." No type in this repository implements it.
type TypeSource interface {
	// Classify returns the Kind a host handle should adapt to.
	Classify(h Handle) types.Kind

	// Members enumerates the named members of an object-like handle, in
	// declaration order.
	Members(h Handle) []Member

	// Signatures reports the call/ctor signature handles of an
	// object-like handle, if any.
	Signatures(h Handle) Signatures

	// Generic reports the instantiation target and type arguments of h,
	// and whether h is an instantiation at all.
	Generic(h Handle) (GenericInfo, bool)

	// Position returns the declaration site of h, or the zero Position.
	Position(h Handle) types.Position

	// Exported reports whether h's declaration is exported from its
	// declaring package/module.
	Exported(h Handle) bool

	// Doc returns the documentation comment attached to h's declaration,
	// or "" if none.
	Doc(h Handle) string
}
