package renderer

import (
	"ProcPlanet/internal/logger"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// OpenGLRenderer uploads meshes and draws them with a given program. Per-draw
// matrices, the elapsed time and every user uniform are set before each mesh.
type OpenGLRenderer struct {
	Width    int32
	Height   int32
	uniforms UniformSource
	textures *TextureManager
	clock    func() float64

	clearColor [4]float32
}

// NewOpenGLRenderer needs a current GL context before any method other than
// the constructor is called.
func NewOpenGLRenderer(uniforms UniformSource, textures *TextureManager) *OpenGLRenderer {
	start := time.Now()
	return &OpenGLRenderer{
		uniforms: uniforms,
		textures: textures,
		clock:    func() float64 { return time.Since(start).Seconds() },
	}
}

func (rend *OpenGLRenderer) SetClearColor(r, g, b, a float32) {
	rend.clearColor = [4]float32{r, g, b, a}
	gl.ClearColor(r, g, b, a)
}

func (rend *OpenGLRenderer) ClearColor() [4]float32 {
	return rend.clearColor
}

func (rend *OpenGLRenderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetSize records the drawing surface size and applies it as the viewport.
func (rend *OpenGLRenderer) SetSize(width, height int32) {
	rend.Width, rend.Height = width, height
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) Render(camera *Camera, program Program, meshes []*Mesh) {
	program.Use()

	viewProjection := camera.GetViewProjection()
	program.SetMat4("u_ViewProj", viewProjection)
	program.SetVec3("u_CameraPos", camera.Position)
	program.SetFloat("u_Time", float32(rend.clock()))
	program.SetInt("u_Texture", 0)
	if rend.uniforms != nil {
		rend.uniforms.ApplyUniforms(program)
	}

	for _, mesh := range meshes {
		if mesh == nil || !mesh.created {
			continue
		}
		program.SetMat4("u_Model", mesh.ModelMatrix)
		program.SetMat4("u_ModelInvTr", mesh.NormalMatrix())

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, mesh.TextureID)

		gl.BindVertexArray(mesh.VAO)
		gl.DrawElements(gl.TRIANGLES, mesh.IndexCount, gl.UNSIGNED_INT, nil)
		gl.BindVertexArray(0)
	}
}

// Create uploads the mesh's vertex and index buffers.
func (rend *OpenGLRenderer) Create(mesh *Mesh) error {
	if mesh.Geometry == nil {
		return errors.New("mesh has no geometry")
	}
	if mesh.created {
		rend.Release(mesh)
	}
	data := mesh.Geometry.Interleaved()
	indices := mesh.Geometry.Indices
	if len(data) == 0 || len(indices) == 0 {
		return fmt.Errorf("mesh %s is empty", mesh.Name())
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	mesh.VAO, mesh.VBO, mesh.EBO = vao, vbo, ebo
	mesh.IndexCount = int32(len(indices))
	mesh.created = true
	return nil
}

// Release frees the mesh's buffers and drops its texture reference.
func (rend *OpenGLRenderer) Release(mesh *Mesh) {
	if mesh == nil || !mesh.created {
		return
	}
	gl.DeleteVertexArrays(1, &mesh.VAO)
	gl.DeleteBuffers(1, &mesh.VBO)
	gl.DeleteBuffers(1, &mesh.EBO)
	mesh.VAO, mesh.VBO, mesh.EBO = 0, 0, 0
	mesh.created = false

	if mesh.TextureID != 0 && rend.textures != nil {
		rend.textures.Release(mesh.TextureID)
		mesh.TextureID = 0
	}
}

// AttachTexture attaches the named texture to the mesh, reusing a cached upload.
func (rend *OpenGLRenderer) AttachTexture(mesh *Mesh, name string) {
	if mesh.TextureID != 0 {
		rend.textures.Release(mesh.TextureID)
	}
	mesh.TextureID = rend.textures.Acquire(name)
	mesh.TextureName = name
}

func (rend *OpenGLRenderer) Cleanup() {
	if rend.textures != nil {
		rend.textures.Clear()
	}
}

// GenShader compiles one stage. The returned error carries the driver's info log.
func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, cSources, nil)
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

		logger.Log.Error("Failed to compile", zap.Uint32("shaderType", shaderType), zap.String("log", log))
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// GenShaderProgram links two compiled stages and deletes them.
func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		logger.Log.Error("Failed to link program", zap.String("log", log))
		return 0, fmt.Errorf("link: %s", strings.TrimRight(log, "\x00"))
	}
	return program, nil
}
