// Package geometry builds the procedural meshes of the viewer on the CPU.
//
// Triangles are wound clockwise when seen from outside the surface. The frame
// driver culls FRONT faces, so this ordering is what keeps the visible
// hemisphere on screen.
package geometry

import "github.com/go-gl/mathgl/mgl32"

// Mesh is CPU-side vertex data. Positions, Normals and UVs are parallel slices.
type Mesh struct {
	Name      string
	Center    mgl32.Vec3
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Interleaved packs position, uv and normal per vertex (8 floats) in the
// attribute order the shaders expect.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*8)
	for i, p := range m.Positions {
		var uv mgl32.Vec2
		if i < len(m.UVs) {
			uv = m.UVs[i]
		}
		var n mgl32.Vec3
		if i < len(m.Normals) {
			n = m.Normals[i]
		}
		out = append(out, p[0], p[1], p[2], uv[0], uv[1], n[0], n[1], n[2])
	}
	return out
}
