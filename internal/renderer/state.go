package renderer

import "github.com/go-gl/gl/v4.1-core/gl"

// GLState issues fixed-function state changes against the current context.
type GLState struct{}

func (GLState) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (GLState) BlendFunc(src, dst BlendFactor) {
	gl.BlendFunc(glBlendFactor(src), glBlendFactor(dst))
}

func (GLState) Enable(c Capability) {
	gl.Enable(glCapability(c))
}

func (GLState) Disable(c Capability) {
	gl.Disable(glCapability(c))
}

func (GLState) CullFace(f Face) {
	switch f {
	case FaceFront:
		gl.CullFace(gl.FRONT)
	case FaceFrontAndBack:
		gl.CullFace(gl.FRONT_AND_BACK)
	default:
		gl.CullFace(gl.BACK)
	}
}

func glCapability(c Capability) uint32 {
	switch c {
	case DepthTest:
		return gl.DEPTH_TEST
	case CullFace:
		return gl.CULL_FACE
	default:
		return gl.BLEND
	}
}

func glBlendFactor(f BlendFactor) uint32 {
	switch f {
	case BlendZero:
		return gl.ZERO
	case BlendOne:
		return gl.ONE
	case BlendSrcAlpha:
		return gl.SRC_ALPHA
	default:
		return gl.ONE_MINUS_SRC_ALPHA
	}
}
