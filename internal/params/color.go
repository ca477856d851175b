package params

import "github.com/go-gl/mathgl/mgl32"

// Color3 is an RGB triple with channels in 0..255.
type Color3 [3]float32

// Color4 is RGB in 0..255 plus alpha in 0..1, the mixed convention the
// planet palette has always used.
type Color4 [4]float32

func (c Color3) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c[0] / 255, c[1] / 255, c[2] / 255, 1}
}

func (c Color4) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c[0] / 255, c[1] / 255, c[2] / 255, c[3]}
}

// Unit returns the colour with every channel in 0..1, the form colour pickers edit.
func (c Color3) Unit() [3]float32 {
	return [3]float32{c[0] / 255, c[1] / 255, c[2] / 255}
}

func (c *Color3) SetUnit(u [3]float32) {
	c[0], c[1], c[2] = u[0]*255, u[1]*255, u[2]*255
}

func (c Color4) Unit() [4]float32 {
	return [4]float32{c[0] / 255, c[1] / 255, c[2] / 255, c[3]}
}

func (c *Color4) SetUnit(u [4]float32) {
	c[0], c[1], c[2], c[3] = u[0]*255, u[1]*255, u[2]*255, u[3]
}
