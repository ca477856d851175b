package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestCamera() *Camera {
	return NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0})
}

func TestNewCamera(t *testing.T) {
	cam := newTestCamera()

	if cam.Position == (mgl32.Vec3{0, 0, 0}) {
		t.Error("Camera position should not be at origin")
	}

	if cam.Sensitivity <= 0 {
		t.Error("Camera sensitivity should be positive")
	}

	if cam.Distance() != 5 {
		t.Errorf("Expected distance 5, got %f", cam.Distance())
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := newTestCamera()

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}

	// the origin sits 5 units in front of the camera
	p := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if math.Abs(float64(p.Z()+5)) > 1e-5 {
		t.Errorf("Expected target at z=-5 in view space, got %f", p.Z())
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := newTestCamera()

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := newTestCamera()

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraAspectRatioNeedsProjectionUpdate(t *testing.T) {
	cam := newTestCamera()
	before := cam.Projection

	cam.SetAspectRatio(2)
	if cam.Projection != before {
		t.Error("SetAspectRatio alone should not touch the projection")
	}

	cam.UpdateProjection()
	want := mgl32.Perspective(mgl32.DegToRad(cam.Fov), 2, cam.Near, cam.Far)
	if cam.Projection != want {
		t.Error("UpdateProjection should use the new aspect ratio")
	}
}

func TestCameraUpdateWithoutInputIsStable(t *testing.T) {
	cam := newTestCamera()
	cam.Update()

	if !cam.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 5}, 1e-5) {
		t.Errorf("Camera moved without input: %v", cam.Position)
	}
}

func TestCameraOrbitKeepsDistance(t *testing.T) {
	cam := newTestCamera()
	cam.ProcessMouseMovement(100, 40)
	cam.Update()

	if math.Abs(float64(cam.Distance()-5)) > 1e-4 {
		t.Errorf("Orbit should keep the radius, got %f", cam.Distance())
	}
	if cam.Position.ApproxEqualThreshold(mgl32.Vec3{0, 0, 5}, 1e-3) {
		t.Error("Orbit input should move the camera")
	}
}

func TestCameraPitchIsClamped(t *testing.T) {
	cam := newTestCamera()
	cam.ProcessMouseMovement(0, 10000)
	cam.Update()

	pitch := math.Asin(float64(cam.Position.Y() / cam.Distance()))
	if pitch > float64(mgl32.DegToRad(89))+1e-4 {
		t.Errorf("Pitch should be clamped, got %f rad", pitch)
	}
}

func TestCameraZoom(t *testing.T) {
	cam := newTestCamera()
	cam.ProcessScroll(3)
	cam.Update()

	if cam.Distance() >= 5 {
		t.Errorf("Scrolling forward should move closer, distance=%f", cam.Distance())
	}

	cam.ProcessScroll(-1000)
	cam.Update()
	if math.Abs(float64(cam.Distance()-cam.MaxDistance)) > 1e-3 {
		t.Errorf("Zoom should clamp to MaxDistance, got %f", cam.Distance())
	}
}

func TestCameraPanMovesTarget(t *testing.T) {
	cam := newTestCamera()
	cam.ProcessPan(50, 0)
	cam.Update()

	if cam.Target == (mgl32.Vec3{}) {
		t.Error("Pan should move the target")
	}
	if math.Abs(float64(cam.Distance()-5)) > 1e-4 {
		t.Errorf("Pan should keep the radius, got %f", cam.Distance())
	}
}

func TestCameraInvertMouse(t *testing.T) {
	a := newTestCamera()
	b := newTestCamera()
	b.InvertMouse = true

	a.ProcessMouseMovement(0, 20)
	b.ProcessMouseMovement(0, 20)
	a.Update()
	b.Update()

	if a.Position.Y()*b.Position.Y() >= 0 {
		t.Error("InvertMouse should flip the vertical orbit direction")
	}
}
