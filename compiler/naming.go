package compiler

import (
	"strings"

	"github.com/vexlang/tygen/types"
)

// inferTypeName derives a deterministic name for a Type with no
// declared name, by fixed structural rules (spec §4.4 "inferTypeName"),
// a depth-first walk in a fixed traversal order.
func inferTypeName(t *types.Type) string {
	if t.Name != "" {
		return t.Name
	}
	switch t.Kind {
	case types.KindArray:
		if t.Element == nil || inferTypeName(t.Element) == "" {
			return "Array"
		}
		return "ArrayOf" + inferTypeName(t.Element)
	case types.KindUnion:
		if name := discriminantUnionName(t); name != "" {
			return name
		}
		return joinVariantNames(t.Variants, "Or", "Union")
	case types.KindIntersection:
		return joinVariantNames(t.Variants, "And", "Intersection")
	case types.KindGenericArguments:
		if t.Instantiated != nil && t.Instantiated.Name != "" {
			return t.Instantiated.Name
		}
		target := "Anonymous"
		if t.Target != nil {
			target = inferTypeName(t.Target)
		}
		if len(t.TypeArguments) == 0 {
			return target
		}
		var parts []string
		for _, a := range t.TypeArguments {
			parts = append(parts, inferTypeName(a))
		}
		return target + "Of" + strings.Join(parts, "And")
	case types.KindAlias:
		if t.AliasTarget != nil {
			return inferTypeName(t.AliasTarget)
		}
		return "Anonymous" + camelKind(t.Kind)
	default:
		return "Anonymous" + camelKind(t.Kind)
	}
}

// discriminantUnionName derives a name from a discriminated union's
// variant tags (spec §8 scenario F: `{kind:"a",...} | {kind:"b",...}`
// names as "AOrB"), reading t.DiscriminantMembers instead of falling
// back to each variant's own structural name. Returns "" if the union
// carries no discriminant or any variant's discriminant field isn't a
// string-literal-valued member, so the caller can fall back to
// joinVariantNames.
func discriminantUnionName(t *types.Type) string {
	if len(t.DiscriminantMembers) == 0 {
		return ""
	}
	field := t.DiscriminantMembers[0]

	parts := make([]string, 0, len(t.Variants))
	for _, v := range t.Variants {
		value, ok := discriminantValue(v, field)
		if !ok {
			return ""
		}
		parts = append(parts, capitalize(value))
	}
	return strings.Join(parts, "Or")
}

// discriminantValue returns the string literal value of field on v's
// named members, if v has one.
func discriminantValue(v *types.Type, field string) (string, bool) {
	for _, m := range v.NamedMembers {
		if m.Name != field || m.Type == nil || !m.Type.IsLiteral() {
			continue
		}
		s, ok := m.Type.LiteralValue.(string)
		if !ok {
			return "", false
		}
		return s, true
	}
	return "", false
}

// capitalize upper-cases s's first rune, leaving the rest untouched.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func joinVariantNames(variants []*types.Type, sep, fallback string) string {
	if len(variants) == 0 {
		return fallback
	}
	names := make([]string, 0, len(variants))
	for _, v := range variants {
		names = append(names, inferTypeName(v))
	}
	return strings.Join(names, sep)
}

// camelKind renders a Kind's hyphenated String() form
// ("generic-arguments") as PascalCase ("GenericArguments").
func camelKind(k types.Kind) string {
	parts := strings.Split(k.String(), "-")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
