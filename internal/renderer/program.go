package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderProgram is one vertex + fragment pair linked into a GL program.
type ShaderProgram struct {
	name           string
	vertexSource   string
	fragmentSource string
	program        uint32
	uniforms       *UniformCache
}

func NewShaderProgram(name, vertexSource, fragmentSource string) *ShaderProgram {
	return &ShaderProgram{
		name:           name,
		vertexSource:   vertexSource,
		fragmentSource: fragmentSource,
	}
}

// Compile builds and links the program. It requires a current GL context.
func (shader *ShaderProgram) Compile() error {
	vs, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("%s vertex shader: %w", shader.name, err)
	}
	fs, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return fmt.Errorf("%s fragment shader: %w", shader.name, err)
	}
	program, err := GenShaderProgram(vs, fs)
	if err != nil {
		return fmt.Errorf("%s program: %w", shader.name, err)
	}
	shader.program = program
	shader.uniforms = NewUniformCache(program)
	return nil
}

func (shader *ShaderProgram) Name() string {
	return shader.name
}

func (shader *ShaderProgram) IsCompiled() bool {
	return shader.program != 0
}

func (shader *ShaderProgram) Use() {
	gl.UseProgram(shader.program)
}

func (shader *ShaderProgram) Delete() {
	if shader.program != 0 {
		gl.DeleteProgram(shader.program)
		shader.program = 0
		shader.uniforms = nil
	}
}

func (shader *ShaderProgram) SetFloat(name string, value float32) {
	shader.uniforms.SetFloat(name, value)
}

func (shader *ShaderProgram) SetInt(name string, value int32) {
	shader.uniforms.SetInt(name, value)
}

func (shader *ShaderProgram) SetVec3(name string, value mgl32.Vec3) {
	shader.uniforms.SetVec3(name, value)
}

func (shader *ShaderProgram) SetVec4(name string, value mgl32.Vec4) {
	shader.uniforms.SetVec4(name, value)
}

func (shader *ShaderProgram) SetMat4(name string, value mgl32.Mat4) {
	shader.uniforms.SetMat4(name, value)
}
