// Package path implements the labelled-edge path model (spec §3.2): a path
// is an ordered sequence of steps from a declared root type to an inner
// type, used for cycle detection and diagnostic messages. Every operation
// here is a pure function over immutable Path values.
package path

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vexlang/tygen/types"
)

// StepKind is the closed tag of a Step, one per row of spec §3.2's table.
type StepKind int

const (
	StepNamedMember StepKind = iota
	StepIndexedMember
	StepStringIndex
	StepNumberIndex
	StepVariant
	StepAwaited
	StepTypeParameter
	StepTypeParameterConstraint
	StepTypeParameterDefault
	StepParameter
	StepReturn
	StepCallSignature
	StepCtorSignature
	StepGenericArgument
	StepGenericTarget
	StepAliased
)

// Step is one typed, labelled edge from a Type to an inner Type.
type Step struct {
	Kind StepKind
	From *types.Type

	// Payload, populated per Kind per spec's table. Index is left at zero
	// when the step kind carries no index.
	Index     int
	Name      string // member/parameter/generic-argument name, when known
	Member    *types.Type
	Parameter *types.Type
}

// Path is an ordered sequence of steps. Every step's From is the
// destination type of the preceding step (or the declared root, for step
// zero).
type Path []Step

// Concat appends step to prefix without mutating it.
func Concat(prefix Path, step Step) Path {
	out := make(Path, len(prefix), len(prefix)+1)
	copy(out, prefix)
	return append(out, step)
}

// ConcatPath appends an entire suffix to prefix without mutating either. A
// nil or empty suffix is a no-op, matching spec's "concat(prefix, ...,
// nothing)" case.
func ConcatPath(prefix, suffix Path) Path {
	if len(suffix) == 0 {
		return prefix
	}
	out := make(Path, len(prefix), len(prefix)+len(suffix))
	copy(out, prefix)
	return append(out, suffix...)
}

// Includes reports whether any step of p originates at t.
func Includes(p Path, t *types.Type) bool {
	for _, s := range p {
		if s.From == t {
			return true
		}
	}
	return false
}

// SubpathFrom returns the suffix of p starting at the first step
// originating at t, or false if t never originates a step in p.
func SubpathFrom(p Path, t *types.Type) (Path, bool) {
	for i, s := range p {
		if s.From == t {
			return p[i:], true
		}
	}
	return nil, false
}

// Last returns the final step of p, or false if p is empty.
func Last(p Path) (Step, bool) {
	if len(p) == 0 {
		return Step{}, false
	}
	return p[len(p)-1], true
}

// stepForms gives each step kind a fixed, arrow/accessor textual form so
// that identical paths always render identically (spec §3.2 "toString").
var stepForms = map[StepKind]string{
	StepNamedMember:             ".%s",
	StepIndexedMember:           "[%d]",
	StepStringIndex:             "[string]",
	StepNumberIndex:             "[number]",
	StepVariant:                 "|%d",
	StepAwaited:                 ".<awaited>",
	StepTypeParameter:           "<%s>",
	StepTypeParameterConstraint: ".constraint",
	StepTypeParameterDefault:    ".default",
	StepParameter:               "(%s)",
	StepReturn:                  " -> return",
	StepCallSignature:           ".(call)",
	StepCtorSignature:           ".new",
	StepGenericArgument:         "<arg:%s>",
	StepGenericTarget:           "<target>",
	StepAliased:                 ".<aliased>",
}

func (s Step) render() string {
	form, ok := stepForms[s.Kind]
	if !ok {
		return "?"
	}
	switch s.Kind {
	case StepNamedMember:
		return fmt.Sprintf(form, s.Name)
	case StepIndexedMember, StepVariant:
		return fmt.Sprintf(form, s.Index)
	case StepTypeParameter:
		name := s.Name
		if name == "" {
			name = strconv.Itoa(s.Index)
		}
		return fmt.Sprintf(form, name)
	case StepParameter:
		name := s.Name
		if name == "" {
			name = strconv.Itoa(s.Index)
		}
		return fmt.Sprintf(form, name)
	case StepGenericArgument:
		name := s.Name
		if name == "" {
			name = strconv.Itoa(s.Index)
		}
		return fmt.Sprintf(form, name)
	default:
		return form
	}
}

// ToString renders p as a human-readable diagnostic string, optionally
// naming the terminal type.
func ToString(p Path, target *types.Type) string {
	var b strings.Builder
	b.WriteString("<root>")
	for _, s := range p {
		b.WriteString(s.render())
	}
	if target != nil && target.Name != "" {
		b.WriteString(" (")
		b.WriteString(target.Name)
		b.WriteString(")")
	}
	return b.String()
}

// ToAccessorExpr renders a best-effort syntactic projection of p as a
// structural accessor expression, the form used when deriving readable
// derived type names (spec §3.2 "toTypescript").
func ToAccessorExpr(p Path) string {
	var b strings.Builder
	b.WriteString("root")
	for _, s := range p {
		switch s.Kind {
		case StepNamedMember:
			b.WriteString(".")
			b.WriteString(s.Name)
		case StepIndexedMember:
			fmt.Fprintf(&b, "[%d]", s.Index)
		case StepVariant:
			fmt.Fprintf(&b, ".variant(%d)", s.Index)
		case StepParameter:
			name := s.Name
			if name == "" {
				name = strconv.Itoa(s.Index)
			}
			fmt.Fprintf(&b, ".param(%s)", name)
		case StepReturn:
			b.WriteString(".return")
		case StepAwaited:
			b.WriteString(".awaited")
		case StepGenericArgument:
			name := s.Name
			if name == "" {
				name = strconv.Itoa(s.Index)
			}
			fmt.Fprintf(&b, ".arg(%s)", name)
		default:
			b.WriteString(s.render())
		}
	}
	return b.String()
}
