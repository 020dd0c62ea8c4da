package gfx

import (
	"fmt"
	"runtime"

	"github.com/tryekk/OpenGL/internal/platform"
)

type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{PositionX: w.PositionX, PositionY: w.PositionY, Width: w.Width, Height: w.Height, Title: w.Title}
}

type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	renderer           Renderer
	width              int
	height             int
}

// NewWindow creates the platform window and, when a factory is given, the
// renderer bound to it. The window owns both and releases them in Close.
func NewWindow(conf WindowConfig, factory RendererFactory) (*Window, error) {
	wrapper, err := platform.NewPlatformWindowWrapper(conf.convert())
	if err != nil {
		return nil, fmt.Errorf("platform window: %w", err)
	}
	window := &Window{
		platformWinWrapper: wrapper,
		width:              conf.Width,
		height:             conf.Height,
	}
	if factory != nil {
		window.renderer = factory(window)
	}
	return window, nil
}

func (w *Window) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

func (w *Window) FramebufferSize() (int, int) {
	return w.platformWinWrapper.FramebufferSize()
}

func (w *Window) Show() {
	w.platformWinWrapper.Show()
}

func (w *Window) SetRenderer(renderer Renderer) {
	if w == nil {
		return
	}
	if w.renderer != nil {
		w.renderer.Close()
	}
	w.renderer = renderer
}

// Run renders and pumps events until the windowing layer reports a close
// request. Must be called on the thread the window was created on.
func (w *Window) Run(handle func(Event)) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for !w.platformWinWrapper.ShouldClose() {
		if w.renderer != nil {
			w.renderer.Render(w)
		}
		w.platformWinWrapper.EndFrame()
		for _, event := range w.platformWinWrapper.PollEvents() {
			if handle != nil {
				handle(convert(event))
			}
		}
	}
}

func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	w.platformWinWrapper.Close()
}
