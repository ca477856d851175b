package engine

import (
	"ProcPlanet/internal/logger"
	"ProcPlanet/internal/renderer"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// ViewportBinder pushes window size changes into the backend and camera.
type ViewportBinder struct {
	backend renderer.Backend
	camera  *renderer.Camera
}

func NewViewportBinder(backend renderer.Backend, camera *renderer.Camera) *ViewportBinder {
	return &ViewportBinder{backend: backend, camera: camera}
}

// Resize applies a new drawable size. Minimised windows report 0x0, which is
// ignored so the projection never sees a zero or infinite aspect ratio.
func (v *ViewportBinder) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		logger.Log.Debug("Ignoring empty framebuffer size", zap.Int("width", width), zap.Int("height", height))
		return
	}
	v.backend.SetSize(int32(width), int32(height))
	v.camera.SetAspectRatio(float32(width) / float32(height))
	v.camera.UpdateProjection()
}

func (v *ViewportBinder) framebufferSizeCallback(w *glfw.Window, width, height int) {
	v.Resize(width, height)
}
