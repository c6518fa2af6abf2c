package recordlang

import (
	"fmt"
	"strings"

	"github.com/vexlang/tygen/compiler"
	"github.com/vexlang/tygen/outast"
	"github.com/vexlang/tygen/path"
	"github.com/vexlang/tygen/types"
)

var primitiveKeywords = map[types.Kind]string{
	types.KindString:             "string",
	types.KindNumber:             "number",
	types.KindBoolean:            "boolean",
	types.KindBigInt:             "bigint",
	types.KindSymbol:             "symbol",
	types.KindNull:               "null",
	types.KindUndefined:          "undefined",
	types.KindVoid:               "void",
	types.KindAny:                "any",
	types.KindUnknown:            "unknown",
	types.KindNever:              "never",
	types.KindNonPrimitiveObject: "object",
	types.KindDate:               "date",
}

// CompileType dispatches on t.Kind to render one node of the record-lang
// dialect, recursing into children through args.Visit so memoization and
// cycle breaking stay under the orchestrator's control.
func (b *Backend) CompileType(args compiler.VisitArgs) (*outast.Node, error) {
	t := args.Type

	if t.IsLiteral() {
		return outast.New(renderLiteral(t)), nil
	}

	if kw, ok := primitiveKeywords[t.Kind]; ok {
		return outast.New(kw), nil
	}

	switch t.Kind {
	case types.KindEnumMember:
		m := t.Members_[0]
		return outast.New(m.QualifiedName), nil

	case types.KindEnum:
		return b.compileEnum(args)

	case types.KindUnion:
		return b.compileVariants(args, " | ")

	case types.KindIntersection:
		return b.compileVariants(args, " & ")

	case types.KindInterface, types.KindObject, types.KindClass:
		return b.compileObjectLike(args)

	case types.KindFunction, types.KindMethod:
		return b.compileCallable(args)

	case types.KindGenericParameter:
		return outast.New(t.Name), nil

	case types.KindGenericArguments:
		return b.compileGenericArguments(args)

	case types.KindAlias:
		return b.compileAlias(args)

	case types.KindArray:
		elem, err := b.renderMemberType(args, path.Step{Kind: path.StepIndexedMember, From: t, Index: 0}, t.Element)
		if err != nil {
			return nil, err
		}
		return outast.New(elem.Text + "[]"), nil

	case types.KindTuple:
		return b.compileTuple(args)

	case types.KindPromise:
		elem, err := b.renderMemberType(args, path.Step{Kind: path.StepAwaited, From: t}, t.Element)
		if err != nil {
			return nil, err
		}
		return outast.New("Promise<" + elem.Text + ">"), nil

	default:
		return nil, &compiler.NoBackendForKind{Kind: t.Kind}
	}
}

// isNameableDeclaration reports whether t is the kind of type that gets
// its own top-level declaration (object-like, enum, alias) and so should
// be referenced by name from a sibling declaration rather than inlined.
func isNameableDeclaration(t *types.Type) bool {
	return t.Name != "" && (t.Kind.IsObjectLike() || t.Kind == types.KindEnum || t.Kind == types.KindAlias)
}

// renderMemberType visits child and, if the result is a separate named
// declaration, collapses it down to a plain or file-qualified reference
// to that declaration rather than embedding its full body — the same
// "different file -> qualified name" behavior CompileReference documents,
// applied here to the non-cyclic case the orchestrator's own
// cycle-triggered compileReference never reaches.
func (b *Backend) renderMemberType(args compiler.VisitArgs, step path.Step, child *types.Type) (*outast.Node, error) {
	node, err := args.Visit(step, child)
	if err != nil {
		return nil, err
	}
	if node.Flavor != outast.Declaration || !isNameableDeclaration(child) {
		return node, nil
	}
	name := node.DeclLocation.Name
	if node.DeclLocation.FileName != b.currentFile() {
		name = stem(node.DeclLocation.FileName) + "." + name
	}
	ref := outast.NewReference(node.DeclLocation.Location, true, name)
	ref.Type = child
	return ref, nil
}

func renderLiteral(t *types.Type) string {
	switch t.Kind {
	case types.KindStringLiteral:
		return fmt.Sprintf("%q", t.LiteralValue)
	case types.KindBooleanLiteral:
		return fmt.Sprintf("%v", t.LiteralValue)
	case types.KindNumberLiteral:
		return fmt.Sprintf("%v", t.LiteralValue)
	case types.KindBigIntLiteral:
		return fmt.Sprintf("%vn", t.LiteralValue)
	case types.KindUniqueSymbol:
		return "unique symbol"
	default:
		return fmt.Sprintf("%v", t.LiteralValue)
	}
}

func (b *Backend) compileEnum(args compiler.VisitArgs) (*outast.Node, error) {
	t := args.Type
	loc := args.AssignDeclarationLocation(t, nil)
	b.pushFile(loc.FileName)
	defer b.popFile()

	var body strings.Builder
	fmt.Fprintf(&body, "enum %s {\n", loc.Name)
	members := t.EnumMembers()
	for i, m := range members {
		value, err := args.Visit(path.Step{Kind: path.StepVariant, From: t, Index: i, Name: m.Name}, m.Value)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&body, "  %s = %s;\n", m.Name, value.Text)
	}
	body.WriteString("}\n")
	return outast.NewDeclaration(loc, body.String()), nil
}

func (b *Backend) compileVariants(args compiler.VisitArgs, sep string) (*outast.Node, error) {
	t := args.Type
	parts := make([]string, len(t.Variants))
	for i, v := range t.Variants {
		node, err := b.renderMemberType(args, path.Step{Kind: path.StepVariant, From: t, Index: i}, v)
		if err != nil {
			return nil, err
		}
		parts[i] = node.Text
	}
	return outast.New(strings.Join(parts, sep)), nil
}

func (b *Backend) compileObjectLike(args compiler.VisitArgs) (*outast.Node, error) {
	t := args.Type
	loc := args.AssignDeclarationLocation(t, nil)
	b.pushFile(loc.FileName)
	defer b.popFile()

	generics, err := b.renderGenericParams(args, t)
	if err != nil {
		return nil, err
	}

	var body strings.Builder
	fmt.Fprintf(&body, "record %s%s {\n", loc.Name, generics)

	// refs holds a text-less copy of every Reference a member collapsed to,
	// so that fileassign.go still records the edge and files its target.
	var refs []*outast.Node
	keep := func(n *outast.Node) {
		if n.Flavor == outast.Reference {
			refs = append(refs, outast.NewReference(n.RefersTo, n.RefersToDeclaration, "").WithOrigin(n.Type, n.Path))
		}
	}

	for _, m := range t.NamedMembers {
		field, err := b.renderMemberType(args, path.Step{Kind: path.StepNamedMember, From: t, Name: m.Name, Member: m.Type}, m.Type)
		if err != nil {
			return nil, err
		}
		optional := ""
		if m.Optional {
			optional = "?"
		}
		modifiers := renderModifiers(m.Modifiers)
		keep(field)
		fmt.Fprintf(&body, "  %s%s%s: %s;\n", modifiers, m.Name, optional, field.Text)
	}

	if t.CallSignature != nil {
		call, err := b.renderMemberType(args, path.Step{Kind: path.StepCallSignature, From: t}, t.CallSignature)
		if err != nil {
			return nil, err
		}
		keep(call)
		fmt.Fprintf(&body, "  %s;\n", call.Text)
	}
	if t.CtorSignature != nil {
		ctor, err := b.renderMemberType(args, path.Step{Kind: path.StepCtorSignature, From: t}, t.CtorSignature)
		if err != nil {
			return nil, err
		}
		keep(ctor)
		fmt.Fprintf(&body, "  new%s;\n", ctor.Text)
	}
	if t.StringIndexType != nil {
		idx, err := b.renderMemberType(args, path.Step{Kind: path.StepStringIndex, From: t}, t.StringIndexType)
		if err != nil {
			return nil, err
		}
		keep(idx)
		fmt.Fprintf(&body, "  [key: string]: %s;\n", idx.Text)
	}
	if t.NumberIndexType != nil {
		idx, err := b.renderMemberType(args, path.Step{Kind: path.StepNumberIndex, From: t}, t.NumberIndexType)
		if err != nil {
			return nil, err
		}
		keep(idx)
		fmt.Fprintf(&body, "  [key: number]: %s;\n", idx.Text)
	}

	body.WriteString("}\n")
	return outast.NewDeclaration(loc, body.String(), refs...), nil
}

func renderModifiers(mods types.ModifierSet) string {
	if len(mods) == 0 {
		return ""
	}
	order := []types.Modifier{
		types.ModExport, types.ModAmbient, types.ModPublic, types.ModPrivate,
		types.ModProtected, types.ModStatic, types.ModReadonly, types.ModAbstract,
		types.ModAsync, types.ModDefault,
	}
	var b strings.Builder
	for _, m := range order {
		if mods.Has(m) {
			b.WriteString(string(m))
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (b *Backend) compileCallable(args compiler.VisitArgs) (*outast.Node, error) {
	t := args.Type

	generics, err := b.renderGenericParams(args, t)
	if err != nil {
		return nil, err
	}

	params := make([]string, len(t.Parameters))
	for i, p := range t.Parameters {
		node, err := b.renderMemberType(args, path.Step{Kind: path.StepParameter, From: t, Index: i, Name: p.Name, Parameter: p.Type}, p.Type)
		if err != nil {
			return nil, err
		}
		rest := ""
		if p.Rest {
			rest = "..."
		}
		optional := ""
		if p.Optional {
			optional = "?"
		}
		params[i] = fmt.Sprintf("%s%s%s: %s", rest, p.Name, optional, node.Text)
	}

	ret := "void"
	if t.ReturnType != nil {
		node, err := b.renderMemberType(args, path.Step{Kind: path.StepReturn, From: t}, t.ReturnType)
		if err != nil {
			return nil, err
		}
		ret = node.Text
	}

	return outast.New(fmt.Sprintf("%s(%s) -> %s", generics, strings.Join(params, ", "), ret)), nil
}

func (b *Backend) renderGenericParams(args compiler.VisitArgs, t *types.Type) (string, error) {
	if len(t.GenericParams) == 0 {
		return "", nil
	}
	parts := make([]string, len(t.GenericParams))
	for i, gp := range t.GenericParams {
		text := gp.Name
		if gp.Constraint != nil {
			node, err := b.renderMemberType(args, path.Step{Kind: path.StepTypeParameterConstraint, From: t, Index: i, Name: gp.Name}, gp.Constraint)
			if err != nil {
				return "", err
			}
			text += " extends " + node.Text
		}
		if gp.Default != nil {
			node, err := b.renderMemberType(args, path.Step{Kind: path.StepTypeParameterDefault, From: t, Index: i, Name: gp.Name}, gp.Default)
			if err != nil {
				return "", err
			}
			text += " = " + node.Text
		}
		parts[i] = text
	}
	return "<" + strings.Join(parts, ", ") + ">", nil
}

func (b *Backend) compileGenericArguments(args compiler.VisitArgs) (*outast.Node, error) {
	t := args.Type
	target, err := b.renderMemberType(args, path.Step{Kind: path.StepGenericTarget, From: t}, t.Target)
	if err != nil {
		return nil, err
	}
	argTexts := make([]string, len(t.TypeArguments))
	for i, a := range t.TypeArguments {
		node, err := b.renderMemberType(args, path.Step{Kind: path.StepGenericArgument, From: t, Index: i}, a)
		if err != nil {
			return nil, err
		}
		argTexts[i] = node.Text
	}
	if len(argTexts) == 0 {
		return outast.New(target.Text), nil
	}
	return outast.New(fmt.Sprintf("%s<%s>", target.Text, strings.Join(argTexts, ", "))), nil
}

func (b *Backend) compileAlias(args compiler.VisitArgs) (*outast.Node, error) {
	t := args.Type
	loc := args.AssignDeclarationLocation(t, nil)
	b.pushFile(loc.FileName)
	defer b.popFile()

	generics, err := b.renderGenericParams(args, t)
	if err != nil {
		return nil, err
	}

	target, err := b.renderMemberType(args, path.Step{Kind: path.StepAliased, From: t}, t.AliasTarget)
	if err != nil {
		return nil, err
	}
	return outast.NewDeclaration(loc, fmt.Sprintf("type %s%s = %s;\n", loc.Name, generics, target.Text)), nil
}

func (b *Backend) compileTuple(args compiler.VisitArgs) (*outast.Node, error) {
	t := args.Type
	parts := make([]string, len(t.TupleMembers))
	for i, m := range t.TupleMembers {
		node, err := b.renderMemberType(args, path.Step{Kind: path.StepIndexedMember, From: t, Index: i, Name: m.Label}, m.Type)
		if err != nil {
			return nil, err
		}
		optional := ""
		if m.Optional {
			optional = "?"
		}
		if m.Label != "" {
			parts[i] = fmt.Sprintf("%s%s: %s", m.Label, optional, node.Text)
		} else {
			parts[i] = node.Text + optional
		}
	}
	rest := ""
	if t.HasRest {
		rest = ", ..."
	}
	return outast.New("[" + strings.Join(parts, ", ") + rest + "]"), nil
}
