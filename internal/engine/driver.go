package engine

import (
	"ProcPlanet/internal/params"
	"ProcPlanet/internal/renderer"
	"fmt"
)

// Options are switches that change what the frame driver draws.
type Options struct {
	// ExtraMeshes appends the square and cube to non-planet passes.
	ExtraMeshes bool
}

// ProgramResolver maps the shader selector to a compiled program.
type ProgramResolver interface {
	Resolve(kind params.ShaderKind) (renderer.Program, error)
	Cloud() (renderer.Program, error)
}

// MeshSource supplies the meshes of the current scene.
type MeshSource interface {
	Meshes(extras bool) []*renderer.Mesh
}

// FramebufferSizer reports the drawable size in pixels. *glfw.Window
// satisfies it.
type FramebufferSizer interface {
	GetFramebufferSize() (width, height int)
}

// Driver runs one frame of the viewer per tick: camera, fixed-function state,
// program selection and the render passes.
type Driver struct {
	controls *params.Controls
	camera   *renderer.Camera
	backend  renderer.Backend
	state    renderer.StateSetter
	programs ProgramResolver
	meshes   MeshSource
	surface  FramebufferSizer
	opts     Options

	loop   *FrameLoop
	handle FrameHandle
}

func NewDriver(controls *params.Controls, camera *renderer.Camera, backend renderer.Backend, state renderer.StateSetter,
	programs ProgramResolver, meshes MeshSource, surface FramebufferSizer, opts Options) *Driver {
	return &Driver{
		controls: controls,
		camera:   camera,
		backend:  backend,
		state:    state,
		programs: programs,
		meshes:   meshes,
		surface:  surface,
		opts:     opts,
	}
}

// Tick draws one frame. An unknown shader selector is an error; nothing is
// drawn for that frame.
func (d *Driver) Tick() error {
	d.camera.Update()

	// The size is read every frame so a missed resize event self-corrects.
	width, height := d.surface.GetFramebufferSize()
	d.state.Viewport(0, 0, int32(width), int32(height))
	d.backend.Clear()

	d.state.BlendFunc(renderer.BlendSrcAlpha, renderer.BlendOne)
	d.state.Enable(renderer.DepthTest)
	d.state.Enable(renderer.CullFace)
	d.state.CullFace(renderer.FaceFront)

	program, err := d.programs.Resolve(d.controls.Shader)
	if err != nil {
		return fmt.Errorf("frame: %w", err)
	}

	if d.controls.Shader != params.ShaderPlanet {
		d.backend.Render(d.camera, program, d.meshes.Meshes(d.opts.ExtraMeshes))
		return nil
	}

	meshes := d.meshes.Meshes(false)
	d.state.Disable(renderer.Blend)
	d.backend.Render(d.camera, program, meshes)

	if d.controls.CloudTrig {
		cloud, err := d.programs.Cloud()
		if err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		d.state.Enable(renderer.Blend)
		d.backend.Render(d.camera, cloud, meshes)
	}
	return nil
}

// Start schedules the first tick. Each tick schedules the next one until Stop.
func (d *Driver) Start(loop *FrameLoop) {
	d.loop = loop
	d.handle = loop.Request(d.frame)
}

func (d *Driver) Stop() {
	if d.loop != nil {
		d.loop.Cancel(d.handle)
		d.loop = nil
	}
}

func (d *Driver) frame() error {
	if err := d.Tick(); err != nil {
		return err
	}
	if d.loop != nil {
		d.handle = d.loop.Request(d.frame)
	}
	return nil
}
