package gui

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/san-kum/spirosim/internal/spiro"
)

const vertexShaderSource = `#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec3 aColor;
out vec3 outColor;
void main()
{
	gl_Position = vec4(aPos.x, aPos.y, 0.0, 1.0);
	outColor = aColor;
}
` + "\x00"

const fragmentShaderSource = `#version 330 core
out vec4 FragColor;
in vec3 outColor;
void main()
{
	FragColor = vec4(outColor, 1.0f);
}
` + "\x00"

// Renderer uploads trail snapshots to a VBO and draws them as points.
// It must be used on the goroutine that owns the GL context.
type Renderer struct {
	Program     uint32
	VAO         uint32
	VBO         uint32
	Initialized bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Init loads GL function pointers, builds the shader program and describes
// the interleaved vertex layout.
func (r *Renderer) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to init opengl: %w", err)
	}

	program, err := createRenderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return err
	}
	r.Program = program

	gl.GenVertexArrays(1, &r.VAO)
	gl.GenBuffers(1, &r.VBO)
	gl.BindVertexArray(r.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.VBO)

	stride := int32(spiro.VertexSize * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	r.Initialized = true
	return nil
}

// Draw uploads count packed records and draws them.
func (r *Renderer) Draw(verts []float32, count int) {
	if !r.Initialized || count == 0 {
		return
	}

	gl.UseProgram(r.Program)
	gl.BindVertexArray(r.VAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, count*spiro.VertexSize*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *Renderer) Close() {
	if !r.Initialized {
		return
	}
	gl.DeleteVertexArrays(1, &r.VAO)
	gl.DeleteBuffers(1, &r.VBO)
	gl.DeleteProgram(r.Program)
	r.Initialized = false
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}

func createRenderProgram(vSource, fSource string) (uint32, error) {
	vShader, err := compileShader(vSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fShader, err := compileShader(fSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vShader)
	gl.AttachShader(program, fShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vShader)
	gl.DeleteShader(fShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link render program: %v", log)
	}
	return program, nil
}
