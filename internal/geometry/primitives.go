package geometry

import "github.com/go-gl/mathgl/mgl32"

// Square is a unit quad in the XY plane facing +Z.
func Square(center mgl32.Vec3) *Mesh {
	n := mgl32.Vec3{0, 0, 1}
	return &Mesh{
		Name:   "square",
		Center: center,
		Positions: []mgl32.Vec3{
			center.Add(mgl32.Vec3{-1, -1, 0}),
			center.Add(mgl32.Vec3{1, -1, 0}),
			center.Add(mgl32.Vec3{1, 1, 0}),
			center.Add(mgl32.Vec3{-1, 1, 0}),
		},
		Normals: []mgl32.Vec3{n, n, n, n},
		UVs:     []mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}
}

// Cube is an axis aligned cube with half extent 1 and one normal per face.
func Cube(center mgl32.Vec3) *Mesh {
	faces := []struct {
		normal, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}

	m := &Mesh{Name: "cube", Center: center}
	for _, f := range faces {
		base := uint32(len(m.Positions))
		corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
		for _, c := range corners {
			p := f.normal.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1]))
			m.Positions = append(m.Positions, center.Add(p))
			m.Normals = append(m.Normals, f.normal)
			m.UVs = append(m.UVs, mgl32.Vec2{(c[0] + 1) / 2, (1 - c[1]) / 2})
		}
		m.Indices = append(m.Indices, base, base+2, base+1, base, base+3, base+2)
	}
	return m
}
