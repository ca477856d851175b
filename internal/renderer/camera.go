// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits a target point. Input handlers accumulate rotation, pan and
// zoom between frames; Update applies them once per tick.
type Camera struct {
	// HOT DATA - read every frame
	Position   mgl32.Vec3
	Target     mgl32.Vec3
	Up         mgl32.Vec3
	Projection mgl32.Mat4

	// COLD DATA - configuration
	WorldUp     mgl32.Vec3
	Fov         float32 // degrees
	Near        float32
	Far         float32
	AspectRatio float32
	Sensitivity float32 // degrees per pixel of drag
	PanSpeed    float32 // world units per pixel at unit distance
	ZoomSpeed   float32
	MinDistance float32
	MaxDistance float32
	InvertMouse bool

	// accumulated input since the last Update
	pendingYaw   float32
	pendingPitch float32
	pendingPan   mgl32.Vec2
	pendingZoom  float32
}

// NewCamera places the camera at position looking at target.
func NewCamera(position, target mgl32.Vec3) *Camera {
	c := &Camera{
		Position:    position,
		Target:      target,
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Fov:         45.0,
		Near:        0.1,
		Far:         1000.0,
		AspectRatio: 1,
		Sensitivity: 0.3,
		PanSpeed:    0.002,
		ZoomSpeed:   0.1,
		MinDistance: 1.2,
		MaxDistance: 50,
	}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes the projection from Fov, AspectRatio, Near, Far.
func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

// SetAspectRatio stores the ratio; call UpdateProjection to apply it.
func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

// Distance is the orbit radius.
func (c *Camera) Distance() float32 {
	return c.Position.Sub(c.Target).Len()
}

// ProcessMouseMovement queues an orbit rotation from a drag of (xoffset, yoffset) pixels.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32) {
	if c.InvertMouse {
		yoffset = -yoffset
	}
	c.pendingYaw -= xoffset * c.Sensitivity
	c.pendingPitch += yoffset * c.Sensitivity
}

// ProcessPan queues a target translation in screen space.
func (c *Camera) ProcessPan(xoffset, yoffset float32) {
	c.pendingPan = c.pendingPan.Add(mgl32.Vec2{xoffset, yoffset})
}

// ProcessScroll queues a zoom; positive values move closer.
func (c *Camera) ProcessScroll(yoffset float32) {
	c.pendingZoom += yoffset
}

// Update applies the input accumulated since the previous call.
func (c *Camera) Update() {
	offset := c.Position.Sub(c.Target)
	radius := offset.Len()
	if radius == 0 {
		radius = c.MinDistance
		offset = mgl32.Vec3{0, 0, radius}
	}

	yaw := float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
	pitch := float32(math.Asin(float64(mgl32.Clamp(offset.Y()/radius, -1, 1))))

	yaw += mgl32.DegToRad(c.pendingYaw)
	pitch = mgl32.Clamp(pitch+mgl32.DegToRad(c.pendingPitch), mgl32.DegToRad(-89), mgl32.DegToRad(89))

	if c.pendingZoom != 0 {
		radius *= float32(math.Exp(float64(-c.pendingZoom * c.ZoomSpeed)))
	}
	radius = mgl32.Clamp(radius, c.MinDistance, c.MaxDistance)

	if c.pendingPan != (mgl32.Vec2{}) {
		forward := c.Target.Sub(c.Position).Normalize()
		right := forward.Cross(c.WorldUp).Normalize()
		up := right.Cross(forward).Normalize()
		scale := c.PanSpeed * radius
		c.Target = c.Target.
			Sub(right.Mul(c.pendingPan.X() * scale)).
			Add(up.Mul(c.pendingPan.Y() * scale))
	}

	cp := float32(math.Cos(float64(pitch)))
	dir := mgl32.Vec3{
		cp * float32(math.Sin(float64(yaw))),
		float32(math.Sin(float64(pitch))),
		cp * float32(math.Cos(float64(yaw))),
	}
	c.Position = c.Target.Add(dir.Mul(radius))
	c.Up = c.WorldUp

	c.pendingYaw, c.pendingPitch, c.pendingZoom = 0, 0, 0
	c.pendingPan = mgl32.Vec2{}
}
