package outast

import (
	"encoding/json"
	"sort"
	"strings"
)

// SourceMap is a standard source-map-v3 document (spec §6.4). No
// third-party source-map producer exists anywhere in the example pack
// for this lineage of tool, so this is a hand-written, stdlib-only
// encoder — the one component of the repository justified on those
// grounds rather than an adopted dependency.
type SourceMap struct {
	Version        int      `json:"version"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// Encode renders the map as source-map-v3 JSON.
func (m *SourceMap) Encode() ([]byte, error) {
	return json.Marshal(m)
}

func buildSourceMap(points []mappingPoint, sourceContent func(file string) (string, bool)) *SourceMap {
	sort.SliceStable(points, func(i, j int) bool {
		if points[i].genLine != points[j].genLine {
			return points[i].genLine < points[j].genLine
		}
		return points[i].genCol < points[j].genCol
	})

	sourceIndex := map[string]int{}
	var sources []string
	var sourcesContent []string
	indexOf := func(file string) int {
		if i, ok := sourceIndex[file]; ok {
			return i
		}
		i := len(sources)
		sourceIndex[file] = i
		sources = append(sources, file)
		content := ""
		if sourceContent != nil {
			if c, ok := sourceContent(file); ok {
				content = c
			}
		}
		sourcesContent = append(sourcesContent, content)
		return i
	}

	var mappings strings.Builder
	prevGenLine, prevGenCol, prevSource, prevOrigLine, prevOrigCol := 0, 0, 0, 0, 0
	first := true

	for _, p := range points {
		for prevGenLine < p.genLine {
			mappings.WriteByte(';')
			prevGenLine++
			prevGenCol = 0
			first = true
		}
		if !first {
			mappings.WriteByte(',')
		}
		first = false

		si := indexOf(p.source)
		writeVLQ(&mappings, p.genCol-prevGenCol)
		writeVLQ(&mappings, si-prevSource)
		writeVLQ(&mappings, p.origLine-prevOrigLine)
		writeVLQ(&mappings, p.origCol-prevOrigCol)

		prevGenCol = p.genCol
		prevSource = si
		prevOrigLine = p.origLine
		prevOrigCol = p.origCol
	}

	return &SourceMap{
		Version:        3,
		Sources:        sources,
		SourcesContent: sourcesContent,
		Names:          []string{},
		Mappings:       mappings.String(),
	}
}

const vlqBase64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// writeVLQ appends the base64-VLQ encoding of value (source-map-v3 §
// "Mappings"), sign folded into the low bit.
func writeVLQ(b *strings.Builder, value int) {
	v := value << 1
	if value < 0 {
		v = (-value << 1) | 1
	}
	for {
		digit := v & 0x1f
		v >>= 5
		if v > 0 {
			digit |= 0x20
		}
		b.WriteByte(vlqBase64Chars[digit])
		if v == 0 {
			break
		}
	}
}
