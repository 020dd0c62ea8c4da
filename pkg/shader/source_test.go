package shader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tryekk/OpenGL/pkg/shader"
)

func TestParse_SplitsSections(t *testing.T) {
	src := shader.Parse(`#shader vertex
void main() {
    gl_Position = position;
}
#shader fragment
void main() {
    color = vec4(1.0);
}
`)

	assert.Equal(t, "void main() {\n    gl_Position = position;\n}\n", src.Vertex)
	assert.Equal(t, "void main() {\n    color = vec4(1.0);\n}\n", src.Fragment)
}

func TestParse_DropsLinesBeforeFirstMarker(t *testing.T) {
	src := shader.Parse(`// stray preamble
uniform float ignored;
#shader fragment
out vec4 color;
`)

	assert.Empty(t, src.Vertex)
	assert.Equal(t, "out vec4 color;\n", src.Fragment)
}

func TestParse_UnrecognizedMarkerDropsFollowingLines(t *testing.T) {
	src := shader.Parse(`#shader vertex
in vec4 position;
#shader geometry
layout(points) in;
#shader fragment
out vec4 color;
`)

	assert.Equal(t, "in vec4 position;\n", src.Vertex)
	assert.Equal(t, "out vec4 color;\n", src.Fragment)
}

func TestParse_MarkerLinesNotAccumulated(t *testing.T) {
	src := shader.Parse("#shader vertex\n#shader fragment\n")

	assert.Empty(t, src.Vertex)
	assert.Empty(t, src.Fragment)
}

func TestParse_MissingSectionStaysEmpty(t *testing.T) {
	src := shader.Parse("#shader vertex\nin vec4 position;\n")

	assert.Equal(t, "in vec4 position;\n", src.Vertex)
	assert.Empty(t, src.Fragment)
}

func TestParse_EmptyInput(t *testing.T) {
	assert.Equal(t, shader.Source{}, shader.Parse(""))
}

func TestParse_NormalizesTrailingNewline(t *testing.T) {
	// Last line has no newline in the input but gets one in the output.
	src := shader.Parse("#shader fragment\nout vec4 color;")

	assert.Equal(t, "out vec4 color;\n", src.Fragment)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "basic.shader")
	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\nin vec4 position;\n#shader fragment\nout vec4 color;\n"), 0o644))

	src, err := shader.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "in vec4 position;\n", src.Vertex)
	assert.Equal(t, "out vec4 color;\n", src.Fragment)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := shader.ParseFile(filepath.Join(t.TempDir(), "missing.shader"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.shader")
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "none", shader.StageNone.String())
	assert.Equal(t, "vertex", shader.StageVertex.String())
	assert.Equal(t, "fragment", shader.StageFragment.String())
}
