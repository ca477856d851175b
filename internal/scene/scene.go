// Package scene owns the meshes the viewer draws and rebuilds them on request.
package scene

import (
	"ProcPlanet/internal/geometry"
	"ProcPlanet/internal/logger"
	"ProcPlanet/internal/params"
	"ProcPlanet/internal/renderer"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// LoadSceneCommand is the label of the UI button that rebuilds the scene.
const LoadSceneCommand = "Load Scene"

// MeshFactory moves CPU meshes to and from the GPU.
type MeshFactory interface {
	Create(mesh *renderer.Mesh) error
	Release(mesh *renderer.Mesh)
	AttachTexture(mesh *renderer.Mesh, name string)
}

// Scene is one generation of uploaded meshes.
type Scene struct {
	Icosphere *renderer.Mesh
	Square    *renderer.Mesh
	Cube      *renderer.Mesh
}

// Meshes returns the icosphere, followed by the square and cube when extras is set.
func (s *Scene) Meshes(extras bool) []*renderer.Mesh {
	if s == nil {
		return nil
	}
	if !extras {
		return []*renderer.Mesh{s.Icosphere}
	}
	return []*renderer.Mesh{s.Icosphere, s.Square, s.Cube}
}

func (s *Scene) all() []*renderer.Mesh {
	return []*renderer.Mesh{s.Icosphere, s.Square, s.Cube}
}

// Loader builds scenes from the current tessellation level. It is the
// handler behind the "Load Scene" button and, like every GL owner, is only
// touched from the frame thread.
type Loader struct {
	controls *params.Controls
	factory  MeshFactory
	envMap   string
	current  *Scene
}

func NewLoader(controls *params.Controls, factory MeshFactory, envMap string) *Loader {
	return &Loader{
		controls: controls,
		factory:  factory,
		envMap:   envMap,
	}
}

func (l *Loader) Name() string {
	return LoadSceneCommand
}

func (l *Loader) Execute() error {
	return l.Load()
}

// Load replaces the current scene with a freshly built one. If any upload
// fails the new meshes are released and the previous scene stays in place.
func (l *Loader) Load() error {
	start := time.Now()

	level := int(l.controls.Tesselations)
	if level > geometry.MaxSubdivisions {
		logger.Log.Warn("Tessellation level clamped",
			zap.Int("requested", level),
			zap.Int("max", geometry.MaxSubdivisions))
	}

	origin := mgl32.Vec3{0, 0, 0}
	next := &Scene{
		Icosphere: renderer.NewMesh(geometry.Icosphere(origin, 1, level)),
		Square:    renderer.NewMesh(geometry.Square(origin)),
		Cube:      renderer.NewMesh(geometry.Cube(origin)),
	}

	var cleanup renderer.Unwind
	defer cleanup.Unwind()
	for _, mesh := range next.all() {
		if err := l.factory.Create(mesh); err != nil {
			return fmt.Errorf("load scene: %s: %w", mesh.Name(), err)
		}
		m := mesh
		cleanup.Add(func() { l.factory.Release(m) })
	}
	l.factory.AttachTexture(next.Icosphere, l.envMap)
	cleanup.Discard()

	previous := l.current
	l.current = next

	if previous != nil {
		for _, mesh := range previous.all() {
			l.factory.Release(mesh)
		}
	}

	logger.Log.Info("Scene loaded",
		zap.Int("level", level),
		zap.Int("vertices", next.Icosphere.Geometry.VertexCount()),
		zap.Int("triangles", next.Icosphere.Geometry.TriangleCount()),
		zap.Duration("took", time.Since(start)))
	return nil
}

// Scene returns the current scene, nil before the first successful Load.
func (l *Loader) Scene() *Scene {
	return l.current
}

// Release frees the current scene.
func (l *Loader) Release() {
	current := l.current
	l.current = nil

	if current == nil {
		return
	}
	for _, mesh := range current.all() {
		l.factory.Release(mesh)
	}
}

// Meshes returns the render list of the current scene.
func (l *Loader) Meshes(extras bool) []*renderer.Mesh {
	return l.Scene().Meshes(extras)
}
