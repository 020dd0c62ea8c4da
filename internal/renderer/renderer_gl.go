package renderer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/tryekk/OpenGL/pkg/gfx"
	"github.com/tryekk/OpenGL/pkg/shader"
)

type renderer struct {
	shaderSource shader.Source
	background   [4]float32
	initialized  bool

	program    uint32
	vao        uint32
	vertexVbo  uint32
	indexVbo   uint32
	indexCount int32
}

func newRenderer(_ *gfx.Window, conf RendererConfig) *renderer {
	return &renderer{
		shaderSource: conf.Shader,
		background:   colorToFloat(conf.Background),
	}
}

func (r *renderer) Render(w *gfx.Window) {
	if w == nil {
		return
	}
	r.ensureInit()

	width, height := w.FramebufferSize()
	if width <= 0 || height <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(r.background[0], r.background[1], r.background[2], r.background[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (r *renderer) Close() {
	if !r.initialized {
		return
	}
	if r.indexVbo != 0 {
		gl.DeleteBuffers(1, &r.indexVbo)
	}
	if r.vertexVbo != 0 {
		gl.DeleteBuffers(1, &r.vertexVbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
	r.initialized = false
}

func (r *renderer) ensureInit() {
	if r.initialized {
		return
	}
	if err := gl.Init(); err != nil {
		panic(fmt.Sprintf("gl.Init error: %v", err))
	}

	r.initQuad()
	r.program = buildProgram(r.shaderSource)

	r.initialized = true
}

func (r *renderer) initQuad() {
	vertices := quadVertexData()
	indices := quadIndexData()
	r.indexCount = int32(len(indices))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vertexVbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vertexVbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	gl.GenBuffers(1, &r.indexVbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.indexVbo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
}

// buildProgram links both stages into one program object. A stage that
// fails to compile is reported and skipped; linking proceeds with whatever
// compiled, and a link failure is reported the same way. Neither aborts
// the process.
func buildProgram(src shader.Source) uint32 {
	program := gl.CreateProgram()

	vertexShader := compileStage(gl.VERTEX_SHADER, src.Vertex)
	fragmentShader := compileStage(gl.FRAGMENT_SHADER, src.Fragment)

	if vertexShader != 0 {
		gl.AttachShader(program, vertexShader)
	}
	if fragmentShader != 0 {
		gl.AttachShader(program, fragmentShader)
	}
	gl.LinkProgram(program)
	gl.ValidateProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		slog.Error("link shader program", "log", trimInfoLog(log))
	}

	if vertexShader != 0 {
		gl.DeleteShader(vertexShader)
	}
	if fragmentShader != 0 {
		gl.DeleteShader(fragmentShader)
	}
	return program
}

// compileStage returns the zero sentinel when compilation fails, after
// logging the failing stage and the driver diagnostic.
func compileStage(xtype uint32, source string) uint32 {
	id, err := compileShader(xtype, source)
	if err != nil {
		slog.Error("compile shader", "stage", stageName(xtype), "err", err)
		return 0
	}
	return id
}

func compileShader(xtype uint32, source string) (uint32, error) {
	id := gl.CreateShader(xtype)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteShader(id)
		return 0, fmt.Errorf("compile error: %s", trimInfoLog(log))
	}
	return id, nil
}

func stageName(xtype uint32) string {
	if xtype == gl.VERTEX_SHADER {
		return shader.StageVertex.String()
	}
	return shader.StageFragment.String()
}

func trimInfoLog(log string) string {
	return strings.TrimRight(log, "\x00\n")
}
