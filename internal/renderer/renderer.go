package renderer

import (
	"ProcPlanet/internal/params"

	"github.com/go-gl/mathgl/mgl32"
)

// Capability is a fixed-function switch toggled around render passes.
type Capability int

const (
	DepthTest Capability = iota
	CullFace
	Blend
)

func (c Capability) String() string {
	switch c {
	case DepthTest:
		return "DEPTH_TEST"
	case CullFace:
		return "CULL_FACE"
	case Blend:
		return "BLEND"
	}
	return "UNKNOWN"
}

type BlendFactor int

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
)

type Face int

const (
	FaceBack Face = iota
	FaceFront
	FaceFrontAndBack
)

// StateSetter issues the raw fixed-function calls the frame driver needs. It
// is the only GL surface the driver touches directly.
type StateSetter interface {
	Viewport(x, y, width, height int32)
	BlendFunc(src, dst BlendFactor)
	Enable(c Capability)
	Disable(c Capability)
	CullFace(f Face)
}

// Program is a linked shader program the backend can draw with.
type Program interface {
	params.UniformSetter
	Name() string
	Use()
	SetVec3(name string, value mgl32.Vec3)
	SetMat4(name string, value mgl32.Mat4)
}

// UniformSource supplies the per-frame user uniforms, normally the parameter
// record.
type UniformSource interface {
	ApplyUniforms(set params.UniformSetter)
}

// Backend is the rendering surface the frame driver and viewport binder use.
type Backend interface {
	Clear()
	SetClearColor(r, g, b, a float32)
	SetSize(width, height int32)
	Render(camera *Camera, program Program, meshes []*Mesh)
}
