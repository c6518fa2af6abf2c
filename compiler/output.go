package compiler

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vexlang/tygen/outast"
)

// OutputFile is one compiled file's rendered text, its source map (if
// any node carried a position), and the file's root Node.
type OutputFile struct {
	Text      string
	SourceMap *outast.SourceMap
	Node      *outast.Node
}

// Output is the result of CompileProgram (spec §6.1): every touched
// file's rendered text, plus the Program for callers that want to
// inspect declaration assignments directly.
type Output struct {
	Files   map[string]OutputFile
	Program *Program
}

// renderFiles asks the backend to render each touched file and
// serializes the result. Rendering runs concurrently across files via
// errgroup: this is safe because each file's rendering only reads the
// finished, immutable node tree assigned to it, while the graph-walking
// phase that produced those nodes (compileType/compileReference) already
// ran strictly single-threaded, as spec §5 requires.
func (c *Compiler) renderFiles() (*Output, error) {
	names := make([]string, 0, len(c.program.files))
	for name := range c.program.files {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]OutputFile, len(names))
	var g errgroup.Group
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			fb := c.program.files[name]
			node, err := c.backend.CompileFile(fb)
			if err != nil {
				return fmt.Errorf("compiler: rendering file %q: %w", name, err)
			}
			serialized := outast.Serialize(node, nil)
			results[i] = OutputFile{Text: serialized.Text, SourceMap: serialized.SourceMap, Node: node}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make(map[string]OutputFile, len(names))
	for i, name := range names {
		files[name] = results[i]
	}
	return &Output{Files: files, Program: c.program}, nil
}
