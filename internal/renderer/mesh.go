package renderer

import (
	"ProcPlanet/internal/geometry"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a piece of geometry uploaded (or waiting to be uploaded) to the GPU.
type Mesh struct {
	// Accessed every draw
	ModelMatrix mgl32.Mat4
	VAO         uint32
	VBO         uint32
	EBO         uint32
	IndexCount  int32
	TextureID   uint32

	// Set at creation
	Geometry    *geometry.Mesh
	TextureName string
	created     bool
}

// NewMesh wraps CPU geometry. Vertex positions are already in world space so
// the model matrix starts as identity.
func NewMesh(g *geometry.Mesh) *Mesh {
	return &Mesh{
		ModelMatrix: mgl32.Ident4(),
		Geometry:    g,
		IndexCount:  int32(len(g.Indices)),
	}
}

func (m *Mesh) Name() string {
	if m.Geometry == nil {
		return ""
	}
	return m.Geometry.Name
}

// Created reports whether the GPU buffers exist.
func (m *Mesh) Created() bool {
	return m.created
}

// NormalMatrix is the inverse transpose of the model matrix, for normals.
func (m *Mesh) NormalMatrix() mgl32.Mat4 {
	return m.ModelMatrix.Inv().Transpose()
}
