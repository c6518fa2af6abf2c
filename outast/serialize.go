package outast

import "strings"

// Serialized is the result of serializing one file's Node tree: its text
// and (if any node carried source positions) a source map threading
// those positions into the generated output.
type Serialized struct {
	Text      string
	SourceMap *SourceMap
}

// mappingPoint is one recorded correspondence between a byte offset in
// the generated text (converted to line/column at the end) and a source
// position.
type mappingPoint struct {
	genLine, genCol int
	source          string
	origLine, origCol int
}

// Serialize concatenates root's text in tree order (spec §4.6:
// "serialization concatenates text in tree order") and threads every
// node's Position into a source map. sourceContent, if non-nil, supplies
// the embedded text for a source file the map references (spec §6.4:
// "content is embedded for non-stdlib files"); returning "" for a path
// omits embedding.
func Serialize(root *Node, sourceContent func(file string) (string, bool)) Serialized {
	var b strings.Builder
	var points []mappingPoint
	line, col := 0, 0

	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Position.Valid() {
			points = append(points, mappingPoint{
				genLine: line, genCol: col,
				source:   n.Position.File,
				origLine: n.Position.Line - 1, // source maps are 0-based
				origCol:  n.Position.Column - 1,
			})
		}
		for _, r := range n.Text {
			if r == '\n' {
				line++
				col = 0
			} else {
				col++
			}
		}
		b.WriteString(n.Text)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)

	if len(points) == 0 {
		return Serialized{Text: b.String()}
	}
	return Serialized{Text: b.String(), SourceMap: buildSourceMap(points, sourceContent)}
}
