package gui

import (
	"ProcPlanet/internal/logger"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"
)

// Overlay draws the control surface and the stats window over the scene.
type Overlay struct {
	context  *imgui.Context
	io       imgui.IO
	platform *GLFW
	renderer *OpenGL3
	surface  *Surface
	stats    *Stats
	widgets  Widgets
}

// NewOverlay creates the imgui context and its device objects. It must run on
// the thread owning the window's GL context.
func NewOverlay(window *glfw.Window, surface *Surface, stats *Stats) (*Overlay, error) {
	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")

	renderer, err := NewOpenGL3(io)
	if err != nil {
		context.Destroy()
		return nil, err
	}
	imgui.StyleColorsDark()

	logger.Log.Debug("imgui overlay ready", zap.String("version", imgui.Version()))
	return &Overlay{
		context:  context,
		io:       io,
		platform: NewGLFWFromExistingWindow(window, io),
		renderer: renderer,
		surface:  surface,
		stats:    stats,
		widgets:  ImGuiWidgets{},
	}, nil
}

// SetPointerListener receives mouse input the UI leaves alone.
func (o *Overlay) SetPointerListener(l PointerListener) {
	o.platform.SetPointerListener(l)
}

func (o *Overlay) WantCaptureMouse() bool {
	return o.io.WantCaptureMouse()
}

// Frame builds and draws one UI frame. Errors from button commands are
// logged, the UI keeps running.
func (o *Overlay) Frame() {
	o.platform.NewFrame()
	imgui.NewFrame()

	if o.stats != nil {
		o.stats.DrawOverlay()
	}
	if err := o.surface.Draw(o.widgets); err != nil {
		logger.Log.Error("Control command failed", zap.Error(err))
	}

	imgui.Render()
	o.renderer.Render(o.platform.DisplaySize(), o.platform.FramebufferSize(), imgui.RenderedDrawData())
}

func (o *Overlay) Dispose() {
	o.renderer.Dispose()
	o.context.Destroy()
}
