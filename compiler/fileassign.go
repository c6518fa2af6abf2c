package compiler

import "github.com/vexlang/tygen/outast"

// assignFiles implements spec §4.4.3: a single walk of a root node's
// tree that assigns every declaration node to its file and every
// reference to its containing file's outgoing-reference set. visited is
// shared across every entry point's call so that a declaration reached
// from two different entries is only assigned once (spec: "this visit
// must be idempotent across entry points").
func (c *Compiler) assignFiles(root *outast.Node, currentFile string, visited map[*outast.Node]bool) {
	c.assignFilesNode(root, currentFile, visited, true)
}

func (c *Compiler) assignFilesNode(n *outast.Node, currentFile string, visited map[*outast.Node]bool, isRoot bool) {
	if n == nil || visited[n] {
		return
	}
	visited[n] = true

	switch n.Flavor {
	case outast.Reference:
		c.program.file(currentFile).AddReference(n.RefersTo)
		if n.RefersToDeclaration {
			if decl, ok := c.program.typeToAstNode[n.Type]; ok {
				declFile := currentFile
				if loc, hasLoc := c.program.typeToDeclarationLocation[n.Type]; hasLoc {
					declFile = loc.FileName
				}
				c.assignFilesNode(decl, declFile, visited, true)
			}
		}
	case outast.Declaration:
		currentFile = n.DeclLocation.FileName
		c.program.file(currentFile).AddNode(n)
	default:
		if isRoot {
			c.program.file(currentFile).AddNode(n)
		}
	}

	for _, child := range n.Children {
		c.assignFilesNode(child, currentFile, visited, false)
	}
}
