package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	"github.com/tryekk/OpenGL/internal/renderer"
	"github.com/tryekk/OpenGL/pkg/gfx"
	"github.com/tryekk/OpenGL/pkg/shader"
)

const (
	windowWidth  = 1920
	windowHeight = 1080
	shaderAsset  = "assets/default.shader"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	source, err := shader.ParseFile(shaderAsset)
	if err != nil {
		slog.Error("load shader asset", "err", err)
		os.Exit(1)
	}

	window, err := gfx.NewWindow(
		gfx.WindowConfig{
			Width:  windowWidth,
			Height: windowHeight,
			Title:  "Tom Window",
		},
		renderer.NewRendererFactory(renderer.RendererConfig{
			Shader:     source,
			Background: color.RGBA{R: 26, G: 26, B: 102, A: 255},
		}),
	)
	if err != nil {
		slog.Error("create window", "err", err)
		os.Exit(1)
	}
	defer window.Close()

	window.Show()
	window.Run(func(event gfx.Event) {
		slog.Debug("window event", "type", fmt.Sprintf("%T", event))
	})
}
