package gfx

// Renderer draws one frame into the window's current GL context.
type Renderer interface {
	Render(w *Window)
	Close()
}

// RendererFactory binds a renderer to the window it will draw into.
type RendererFactory func(w *Window) Renderer
