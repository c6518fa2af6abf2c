// Command tygen compiles a closed, host-independent type model into
// another language's type declarations through a pluggable backend.
//
// It loads Go packages with go/types, adapts every exported
// package-level type declaration into the type model, walks that model
// once per entry point, and asks a compiler.Backend to render the
// result — this binary wires in the record-lang example backend
// (backend/recordlang).
//
// Usage:
//
//	tygen init                         create a default tygen.yml
//	tygen generate --pkg ./models      generate from the given packages
//	tygen generate --watch             generate and watch for changes
//
// For more information, see the project's own documentation.
package main

import "github.com/vexlang/tygen/cmd"

func main() {
	cmd.Execute()
}
