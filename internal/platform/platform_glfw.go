package platform

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindowWrapper struct {
	window  *glfw.Window
	pending []Event
}

// NewPlatformWindowWrapper initializes GLFW and creates a hidden window with
// a 3.3 core context made current on the calling thread. The caller must
// stay on that thread for all subsequent window and GL calls.
func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	if conf.PositionX != 0 || conf.PositionY != 0 {
		window.SetPos(conf.PositionX, conf.PositionY)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	wrapper := &glfwWindowWrapper{window: window}
	wrapper.installCallbacks()
	return wrapper, nil
}

func (w *glfwWindowWrapper) installCallbacks() {
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			w.pending = append(w.pending, KeyPress{Code: uint64(key), Label: glfw.GetKeyName(key, scancode)})
		case glfw.Release:
			w.pending = append(w.pending, KeyRelease{Code: uint64(key), Label: glfw.GetKeyName(key, scancode)})
		}
	})
	w.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := w.window.GetCursorPos()
		switch action {
		case glfw.Press:
			w.pending = append(w.pending, ButtonPress{Button: uint32(button), X: int(x), Y: int(y)})
		case glfw.Release:
			w.pending = append(w.pending, ButtonRelease{Button: uint32(button), X: int(x), Y: int(y)})
		}
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.pending = append(w.pending, MotionNotify{X: int(x), Y: int(y)})
	})
	w.window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			w.pending = append(w.pending, EnterNotify{})
		} else {
			w.pending = append(w.pending, LeaveNotify{})
		}
	})
	w.window.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		x, y := w.window.GetCursorPos()
		w.pending = append(w.pending, MouseWheel{DeltaX: dx, DeltaY: dy, X: int(x), Y: int(y)})
	})
	w.window.SetRefreshCallback(func(_ *glfw.Window) {
		w.pending = append(w.pending, Expose{})
	})
	w.window.SetCloseCallback(func(_ *glfw.Window) {
		w.pending = append(w.pending, CloseNotify{})
	})
}

func (w *glfwWindowWrapper) Show() {
	w.window.Show()
}

func (w *glfwWindowWrapper) Close() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *glfwWindowWrapper) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindowWrapper) EndFrame() {
	w.window.SwapBuffers()
}

// PollEvents pumps the GLFW event queue and returns the events the
// callbacks collected, in arrival order.
func (w *glfwWindowWrapper) PollEvents() []Event {
	glfw.PollEvents()
	events := w.pending
	w.pending = nil
	return events
}

func (w *glfwWindowWrapper) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}
