package types

// Modifier is one of the named-member/function modifier flags from spec
// §3.1 ("export, ambient, public, private, protected, static, readonly,
// abstract, async, default").
type Modifier string

const (
	ModExport    Modifier = "export"
	ModAmbient   Modifier = "ambient"
	ModPublic    Modifier = "public"
	ModPrivate   Modifier = "private"
	ModProtected Modifier = "protected"
	ModStatic    Modifier = "static"
	ModReadonly  Modifier = "readonly"
	ModAbstract  Modifier = "abstract"
	ModAsync     Modifier = "async"
	ModDefault   Modifier = "default"
)

// ModifierSet is an unordered set of Modifier flags.
type ModifierSet map[Modifier]bool

// Has reports whether m is present in the set. A nil set has no members.
func (s ModifierSet) Has(m Modifier) bool {
	return s != nil && s[m]
}

// Position is the optional (file, line, column) triple attached to a Type
// for source-map and diagnostic purposes (spec §4.6, §9 "Source positions").
type Position struct {
	File   string
	Line   int // 1-based
	Column int // 1-based
}

// Valid reports whether a position carries file information.
func (p Position) Valid() bool { return p.File != "" }

// Member is a single named member of an object-like type (spec §3.1 "A
// named member carries { name, type, optional?, modifiers? }").
type Member struct {
	Name      string
	Type      *Type
	Optional  bool
	Modifiers ModifierSet
}

// Parameter is a single callable parameter (spec §3.1 Callable).
type Parameter struct {
	Name          string
	Type          *Type
	Optional      bool
	Rest          bool
	HasInitializer bool
}

// IndexedMember is one element slot of a tuple (spec §3.2 "indexed-member").
type IndexedMember struct {
	Type     *Type
	Optional bool
	Label    string // empty when the tuple element is unlabeled
}

// TypePredicate is the optional predicate a callable's return type may
// carry (spec §3.1 Callable: "optional type predicate").
type TypePredicate struct {
	ParameterName  string
	ParameterIndex int
	Type           *Type
}

// GenericParameter is a single generic type parameter (spec §3.1 "Generic
// parameter").
type GenericParameter struct {
	Name       string
	Constraint *Type // nil when absent
	Default    *Type // nil when absent
}

// EnumMember is a single member of an Enum type (spec §3.1 "Enum member").
type EnumMember struct {
	Name          string
	QualifiedName string
	Value         *Type // always a primitive-literal Type
}

// HostHandle is the escape hatch back to the originating host type-checker
// object, used solely to recover source positions and documentation (spec
// §3.1: "the core never inspects its internals").
type HostHandle interface {
	// Position returns the declaration site of the host type, or the zero
	// Position if unknown.
	Position() Position
	// Doc returns the documentation comment attached to the host
	// declaration, or "" if none.
	Doc() string
}

// Type is the single, closed-kind value object described by spec §3.1. Only
// the fields relevant to Kind are populated; readers must switch on Kind
// before touching kind-specific fields. Type values are immutable once
// returned by an adapter and may be shared freely, including across cycles
// reachable through Instantiated, member Type fields, and return types.
type Type struct {
	Kind Kind

	// Name is populated for any kind that carries a declared name: enum,
	// enum-member, interface/object/class, alias, generic-parameter. Kinds
	// without an intrinsic name leave this empty; inferTypeName (in the
	// compiler package) derives one structurally when needed.
	Name          string
	QualifiedName string

	// Literal value, populated for *-literal and unique-symbol kinds. Holds
	// a string, float64, bool, or a big-int decimal string (bigint-literal).
	LiteralValue interface{}

	// Enum / enum-member
	Members_ []EnumMember // "Members" would collide with object-like below; see EnumMembers()

	// Composite algebraic
	Variants             []*Type // union | intersection
	DiscriminantMembers   []string // union: field names forming the discriminant, if any
	Intersected           *Type    // intersection: reduced form, or nil

	// Object-like (interface | object | class)
	NamedMembers     []Member
	CallSignature    *Type // kind function, or nil
	CtorSignature    *Type // kind function, or nil
	GenericParams    []GenericParameter
	StringIndexType  *Type
	NumberIndexType  *Type

	// Callable (function | method)
	Parameters    []Parameter
	ReturnType    *Type
	TypePredicate *TypePredicate

	// Generic arguments (instantiation)
	Target        *Type
	TypeArguments []*Type
	Instantiated  *Type

	// Generic parameter fields reuse GenericParameter's Constraint/Default
	// directly when Kind == KindGenericParameter:
	Constraint *Type
	Default    *Type

	// Alias wrapper
	AliasTarget    *Type
	PreservedAlias bool // the preserved flag given to NewAlias; the gotypes adapter passes its PreserveSimpleAliases option

	// Sequence
	Element      *Type // array | promise
	TupleMembers []IndexedMember
	HasRest      bool

	// Error marker: populated by an adapter for untranslatable host types
	// (spec §7 TypeKindHasError).
	Error string

	// Host escape hatch; nil unless the adapter was constructed with
	// addMethods.
	Host HostHandle
}

// EnumMembers returns the ordered list of enum members for Kind == KindEnum.
func (t *Type) EnumMembers() []EnumMember { return t.Members_ }

// IsLiteral reports whether the kind is one of the primitive-literal kinds.
func (t *Type) IsLiteral() bool {
	switch t.Kind {
	case KindStringLiteral, KindNumberLiteral, KindBooleanLiteral, KindBigIntLiteral, KindUniqueSymbol:
		return true
	default:
		return false
	}
}
