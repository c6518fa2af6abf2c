// Package compiler implements the Compiler Orchestrator (spec §4.4): the
// per-compile Program state, the reentrant `current` cell, entry-point
// driving, declaration-location assignment, name inference, cycle
// breaking via references, and file/reference assignment.
package compiler

import "github.com/vexlang/tygen/outast"

// Location and DeclarationLocation are the Output AST's own location
// types (spec §6.3); the compiler reuses them rather than duplicating
// the shape, since a Node's Declaration/Reference flavor already carries
// one.
type Location = outast.Location
type DeclarationLocation = outast.DeclarationLocation

var (
	FileNameEqual         = outast.FileNameEqual
	NamespaceEqual         = outast.NamespaceEqual
	FileAndNamespaceEqual = outast.FileAndNamespaceEqual
)

// locationKey renders a Location's (fileName, namespace) pair as a map
// key for declarationLocationNameCount (spec §3.5): "a counter keyed by
// (fileName, namespace?, baseName)".
func locationKey(loc Location, baseName string) string {
	key := loc.FileName + "\x00"
	for _, n := range loc.Namespace {
		key += n + "\x01"
	}
	return key + "\x00" + baseName
}
