package renderer

import (
	"image/color"

	"github.com/tryekk/OpenGL/pkg/gfx"
	"github.com/tryekk/OpenGL/pkg/shader"
)

// RendererConfig describes the GPU inputs provided by the caller.
// Shader holds the split vertex/fragment pair; Background is the frame
// clear color and may be nil for transparent black.
type RendererConfig struct {
	Shader     shader.Source
	Background color.Color
}

func NewRendererFactory(conf RendererConfig) gfx.RendererFactory {
	return func(w *gfx.Window) gfx.Renderer {
		return newRenderer(w, conf)
	}
}
