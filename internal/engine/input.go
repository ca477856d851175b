package engine

import (
	"ProcPlanet/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// CameraInput turns mouse drags into orbit camera moves: left drag rotates,
// right drag pans, the wheel zooms.
type CameraInput struct {
	camera *renderer.Camera

	rotating bool
	panning  bool
	lastX    float64
	lastY    float64
	haveLast bool
}

func NewCameraInput(camera *renderer.Camera) *CameraInput {
	return &CameraInput{camera: camera}
}

func (in *CameraInput) MouseButton(button glfw.MouseButton, pressed bool) {
	switch button {
	case glfw.MouseButtonLeft:
		in.rotating = pressed
	case glfw.MouseButtonRight:
		in.panning = pressed
	}
}

func (in *CameraInput) CursorMoved(x, y float64) {
	if in.haveLast {
		dx := float32(x - in.lastX)
		dy := float32(in.lastY - y) // window y grows downwards
		switch {
		case in.rotating:
			in.camera.ProcessMouseMovement(dx, dy)
		case in.panning:
			in.camera.ProcessPan(dx, dy)
		}
	}
	in.lastX, in.lastY = x, y
	in.haveLast = true
}

func (in *CameraInput) Scrolled(dx, dy float64) {
	in.camera.ProcessScroll(float32(dy))
}
