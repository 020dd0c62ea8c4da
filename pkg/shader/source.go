package shader

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Stage selects which accumulator receives scanned lines.
type Stage int

const (
	StageNone Stage = iota
	StageVertex
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "none"
	}
}

// Source holds the two GLSL stages split out of a single shader asset.
type Source struct {
	Vertex   string
	Fragment string
}

// Parse splits a two-section shader asset. A line containing "#shader"
// switches the active stage: "vertex" and "fragment" are recognized, any
// other marker deselects both and the lines that follow are dropped until
// the next recognized marker. Lines before the first marker are dropped.
// Malformed input is not an error.
func Parse(text string) Source {
	var vertex, fragment strings.Builder
	stage := StageNone

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "#shader") {
			switch {
			case strings.Contains(line, "vertex"):
				stage = StageVertex
			case strings.Contains(line, "fragment"):
				stage = StageFragment
			default:
				stage = StageNone
			}
			continue
		}
		switch stage {
		case StageVertex:
			vertex.WriteString(line)
			vertex.WriteByte('\n')
		case StageFragment:
			fragment.WriteString(line)
			fragment.WriteByte('\n')
		}
	}

	return Source{Vertex: vertex.String(), Fragment: fragment.String()}
}

// ParseFile reads a shader asset from disk and splits it.
func ParseFile(path string) (Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("load shader %q: %w", path, err)
	}
	return Parse(string(b)), nil
}
