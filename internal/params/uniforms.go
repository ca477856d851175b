package params

import "github.com/go-gl/mathgl/mgl32"

// UniformSetter receives shader uniforms by name. Implementations ignore names
// the active program does not declare.
type UniformSetter interface {
	SetFloat(name string, value float32)
	SetInt(name string, value int32)
	SetVec4(name string, value mgl32.Vec4)
}

// ApplyUniforms uploads every field carrying a uniform tag. Colours go out as
// vec4 in 0..1, booleans as 0/1 ints. The sun position is also sent as a
// single vec4 with w = 0 (a direction).
func (c *Controls) ApplyUniforms(set UniformSetter) {
	for _, f := range c.Fields() {
		if f.Uniform == "" {
			continue
		}
		switch p := f.Ptr().(type) {
		case *float32:
			set.SetFloat(f.Uniform, *p)
		case *int32:
			set.SetInt(f.Uniform, *p)
		case *bool:
			var b int32
			if *p {
				b = 1
			}
			set.SetInt(f.Uniform, b)
		case *Color3:
			set.SetVec4(f.Uniform, p.Vec4())
		case *Color4:
			set.SetVec4(f.Uniform, p.Vec4())
		}
	}
	set.SetVec4("u_SunPosition", c.SunDirection().Vec4(0))
}

// SunDirection is the light direction as edited in the Sun Setting panel.
func (c *Controls) SunDirection() mgl32.Vec3 {
	return mgl32.Vec3{c.SunPositionX, c.SunPositionY, c.SunPositionZ}
}
