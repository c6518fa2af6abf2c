package gotypes

import (
	"go/constant"
	gotypes "go/types"
	"sort"

	"golang.org/x/tools/go/packages"

	"github.com/vexlang/tygen/types"
)

// EnumIndex groups package-level const declarations by the named type they
// belong to, generalizing the teacher's enumCandidate/constBlockInfo/
// MatchEnumConstants machinery (generator/parser.go) from "collect
// GraphQL enum candidates" into "collect enum-member values for any named
// type with a scalar underlying basic type." Only named types whose
// underlying type is string or one of the integer kinds are eligible —
// matching spec §4.5 "Enum-member parenting".
type EnumIndex struct {
	members map[*gotypes.Named][]types.EnumMember
}

// BuildEnumIndex scans every loaded package's top-level scope for
// constants and groups them by declared type, in declaration order
// (spec's testable property 8: enumerator ordering preserves source
// order).
func BuildEnumIndex(pkgs []*packages.Package) *EnumIndex {
	idx := &EnumIndex{members: make(map[*gotypes.Named][]types.EnumMember)}
	order := make(map[*gotypes.Named][]*gotypes.Const)

	packages.Visit(pkgs, nil, func(p *packages.Package) {
		if p.Types == nil {
			return
		}
		scope := p.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			c, ok := obj.(*gotypes.Const)
			if !ok {
				continue
			}
			named, ok := c.Type().(*gotypes.Named)
			if !ok || !enumEligible(named) {
				continue
			}
			order[named] = append(order[named], c)
		}
	})

	for named, consts := range order {
		sort.Slice(consts, func(i, j int) bool { return consts[i].Pos() < consts[j].Pos() })
		members := make([]types.EnumMember, 0, len(consts))
		for _, c := range consts {
			members = append(members, types.EnumMember{
				Name:          c.Name(),
				QualifiedName: qualifiedConstNameOf(named.Obj(), c),
				Value:         literalMemberValue(c),
			})
		}
		idx.members[named] = members
	}
	return idx
}

// qualifiedConstNameOf builds a per-member identifier, unlike
// qualifiedNameOf (which only resolves a type's own name): two members of
// the same enum must not collapse to the same QualifiedName, so this
// appends the constant's own name after the enum type's qualified name.
func qualifiedConstNameOf(enum *gotypes.TypeName, c *gotypes.Const) string {
	return qualifiedNameOf(enum) + "." + c.Name()
}

func enumEligible(n *gotypes.Named) bool {
	b, ok := n.Underlying().(*gotypes.Basic)
	if !ok {
		return false
	}
	return b.Info()&(gotypes.IsString|gotypes.IsInteger) != 0
}

func literalMemberValue(c *gotypes.Const) *types.Type {
	v := c.Val()
	if v.Kind() == constant.String {
		return types.NewLiteral(types.KindStringLiteral, constant.StringVal(v))
	}
	f, _ := constant.Float64Val(v)
	return types.NewLiteral(types.KindNumberLiteral, f)
}

func (a *Adapter) enumMembersFor(n *gotypes.Named) ([]types.EnumMember, bool) {
	if a.enumIndex == nil {
		return nil, false
	}
	members, ok := a.enumIndex.members[n]
	return members, ok
}
