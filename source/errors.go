package source

import "fmt"

// UnsupportedHandleError reports that a TypeSource was asked to classify
// or enumerate a host handle it does not recognize. No code in this
// repository returns it: the gotypes adapter records an unsupported
// go/types value as a types.NewError Type with its own message (spec §7
// TypeKindHasError is raised later, only if a backend actually attempts
// to compile that errored Type).
type UnsupportedHandleError struct {
	Handle Handle
	Detail string
}

func (e *UnsupportedHandleError) Error() string {
	return fmt.Sprintf("source: unsupported handle %v: %s", e.Handle, e.Detail)
}
