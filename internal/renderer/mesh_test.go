package renderer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadVertexData(t *testing.T) {
	data := quadVertexData()

	assert.Equal(t, []float32{
		-0.5, -0.5,
		0.5, -0.5,
		0.5, 0.5,
		-0.5, 0.5,
	}, data)
}

func TestQuadIndexData(t *testing.T) {
	indices := quadIndexData()

	assert.Len(t, indices, 6)
	// Two triangles share the diagonal vertices 0 and 2.
	assert.Equal(t, []uint32{0, 1, 2, 2, 3, 0}, indices)
	for _, idx := range indices {
		assert.Less(t, int(idx), len(quadVertices))
	}
}

func TestColorToFloat(t *testing.T) {
	assert.Equal(t, [4]float32{}, colorToFloat(nil))

	black := colorToFloat(color.Black)
	assert.InDelta(t, 0.0, black[0], 1e-5)
	assert.InDelta(t, 1.0, black[3], 1e-5)

	red := colorToFloat(color.RGBA{R: 255, A: 255})
	assert.InDelta(t, 1.0, red[0], 1e-5)
	assert.InDelta(t, 0.0, red[1], 1e-5)
	assert.InDelta(t, 0.0, red[2], 1e-5)
	assert.InDelta(t, 1.0, red[3], 1e-5)
}

func TestTrimInfoLog(t *testing.T) {
	assert.Equal(t, "0:1(1): error", trimInfoLog("0:1(1): error\n\x00\x00"))
	assert.Equal(t, "", trimInfoLog("\x00"))
}
