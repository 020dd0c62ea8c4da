package renderer

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Unit quad centered on the origin, two triangles sharing the diagonal.
var (
	quadVertices = []mgl32.Vec2{
		{-0.5, -0.5},
		{0.5, -0.5},
		{0.5, 0.5},
		{-0.5, 0.5},
	}
	quadIndices = []uint32{
		0, 1, 2,
		2, 3, 0,
	}
)

func quadVertexData() []float32 {
	data := make([]float32, 0, len(quadVertices)*2)
	for _, v := range quadVertices {
		data = append(data, v.X(), v.Y())
	}
	return data
}

func quadIndexData() []uint32 {
	indices := make([]uint32, len(quadIndices))
	copy(indices, quadIndices)
	return indices
}

func colorToFloat(c color.Color) [4]float32 {
	if c == nil {
		return [4]float32{}
	}
	r, g, b, a := c.RGBA()
	const inv = 1.0 / 65535.0
	return [4]float32{
		float32(r) * inv,
		float32(g) * inv,
		float32(b) * inv,
		float32(a) * inv,
	}
}
