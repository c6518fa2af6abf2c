package gotypes

import (
	gotypes "go/types"

	"github.com/vexlang/tygen/types"
)

// hostHandle implements types.HostHandle over a single go/types.Object,
// the escape hatch spec §3.1 reserves "solely to obtain source positions
// and documentation."
type hostHandle struct {
	obj  gotypes.Object
	docs *DocIndex
}

func (h hostHandle) Position() types.Position {
	return h.docs.positionOf(h.obj)
}

func (h hostHandle) Doc() string {
	return h.docs.docFor(h.obj)
}

// AdaptObject adapts a package-level declaration (a *gotypes.TypeName,
// *gotypes.Func, or *gotypes.Const) into a types.Type, attaching a
// HostHandle when the Adapter was built with AddMethods set.
func (a *Adapter) AdaptObject(obj gotypes.Object) *types.Type {
	t := a.Adapt(obj.Type())
	if a.opts.AddMethods && a.docs != nil {
		t.Host = hostHandle{obj: obj, docs: a.docs}
	}
	return t
}

// Exported reports whether obj's declaration is exported, mirroring the
// teacher's repeated `f.Exported()` / capitalized-name checks throughout
// generator/parser.go and generator/utils.go.
func Exported(obj gotypes.Object) bool {
	return obj != nil && obj.Exported()
}
