package engine

import (
	"ProcPlanet/internal/config"
	"ProcPlanet/internal/gui"
	"ProcPlanet/internal/logger"
	"ProcPlanet/internal/params"
	"ProcPlanet/internal/renderer"
	"ProcPlanet/internal/scene"
	"ProcPlanet/internal/shaders"
	"context"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// App wires the window, the GL backend, the shader bank, the scene and the UI
// around one Controls value.
type App struct {
	cfg      *config.Config
	opts     Options
	Controls *params.Controls
	Camera   *renderer.Camera

	window *glfw.Window
}

func NewApp(cfg *config.Config, controls *params.Controls, opts Options) *App {
	return &App{
		cfg:      cfg,
		opts:     opts,
		Controls: controls,
		Camera:   renderer.NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}),
	}
}

// Run opens the window and drives frames until the window closes or ctx is
// cancelled. It must be called from the main OS thread.
func (app *App) Run(ctx context.Context) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("could not initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	if err := app.openWindow(); err != nil {
		return fatalStartup(app.cfg.Window.Title, err)
	}
	defer app.window.Destroy()

	textures := renderer.NewTextureManager(app.cfg.Assets.Dir)
	backend := renderer.NewOpenGLRenderer(app.Controls, textures)
	defer backend.Cleanup()
	backend.SetClearColor(0.0, 0.0, 0.0, 1.0)

	bank, err := shaders.Build(shaders.CompileGL)
	if err != nil {
		return fatalStartup(app.cfg.Window.Title, fmt.Errorf("%w: %w", ErrShaderBank, err))
	}
	defer bank.Delete()

	loader := scene.NewLoader(app.Controls, backend, app.cfg.Assets.EnvMap)
	if err := loader.Load(); err != nil {
		return err
	}
	defer loader.Release()

	binder := NewViewportBinder(backend, app.Camera)
	app.window.SetFramebufferSizeCallback(binder.framebufferSizeCallback)
	binder.Resize(app.window.GetFramebufferSize())

	surface, err := gui.NewSurface("Controls", app.Controls, gui.DefaultLayout(), loader)
	if err != nil {
		return err
	}
	stats := gui.NewStats()
	overlay, err := gui.NewOverlay(app.window, surface, stats)
	if err != nil {
		return err
	}
	defer overlay.Dispose()
	overlay.SetPointerListener(NewCameraInput(app.Camera))

	loop := NewFrameLoop(windowDisplay{app.window})
	loop.SetObserver(stats)

	driver := NewDriver(app.Controls, app.Camera, backend, renderer.GLState{}, bank, loader, app.window, app.opts)
	driver.Start(loop)
	defer driver.Stop()

	stopUI := loop.Repeat(func() error {
		overlay.Frame()
		return nil
	})
	defer stopUI()

	logger.Log.Info("Entering render loop",
		zap.Stringer("shader", app.Controls.Shader),
		zap.Int32("tesselations", app.Controls.Tesselations))
	return loop.Run(ctx)
}

func (app *App) openWindow() error {
	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w := app.cfg.Window
	window, err := glfw.CreateWindow(int(w.Width), int(w.Height), w.Title, nil, nil)
	if err != nil {
		// glfw refuses to create the window when the requested core context
		// is not available.
		return fmt.Errorf("%w: %v", ErrUnsupportedContext, err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return fmt.Errorf("%w: could not initialize OpenGL: %v", ErrUnsupportedContext, err)
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	if err := CheckGLVersion(version); err != nil {
		window.Destroy()
		return err
	}
	app.window = window
	logger.Log.Info("OpenGL context ready",
		zap.String("version", version),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	if w.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetPos(w.X, w.Y)
	applyWindowTheme(window)
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	return nil
}
