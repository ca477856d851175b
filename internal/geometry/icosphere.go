package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxSubdivisions bounds icosphere refinement. Level 10 is already ~10M
// vertices; anything beyond exhausts memory long before it adds detail.
const MaxSubdivisions = 10

// IcosphereCounts returns the vertex and triangle count of an icosphere with
// the given subdivision level.
func IcosphereCounts(subdivisions int) (vertices, triangles int) {
	p := 1 << (2 * uint(subdivisions)) // 4^n
	return 10*p + 2, 20 * p
}

// Icosphere subdivides an icosahedron n times and projects every vertex onto
// the sphere of the given radius. n is clamped to [0, MaxSubdivisions].
func Icosphere(center mgl32.Vec3, radius float32, subdivisions int) *Mesh {
	if subdivisions < 0 {
		subdivisions = 0
	}
	if subdivisions > MaxSubdivisions {
		subdivisions = MaxSubdivisions
	}
	nVerts, _ := IcosphereCounts(subdivisions)

	t := float32((1.0 + math.Sqrt(5.0)) / 2.0)
	dirs := make([]mgl32.Vec3, 0, nVerts)
	for _, v := range []mgl32.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	} {
		dirs = append(dirs, v.Normalize())
	}

	// Clockwise from outside
	indices := []uint32{
		0, 5, 11, 0, 1, 5, 0, 7, 1, 0, 10, 7, 0, 11, 10,
		1, 9, 5, 5, 4, 11, 11, 2, 10, 10, 6, 7, 7, 8, 1,
		3, 4, 9, 3, 2, 4, 3, 6, 2, 3, 8, 6, 3, 9, 8,
		4, 5, 9, 2, 11, 4, 6, 10, 2, 8, 7, 6, 9, 1, 8,
	}

	for i := 0; i < subdivisions; i++ {
		dirs, indices = subdivide(dirs, indices)
	}

	mesh := &Mesh{
		Name:      "icosphere",
		Center:    center,
		Positions: make([]mgl32.Vec3, len(dirs)),
		Normals:   dirs,
		UVs:       make([]mgl32.Vec2, len(dirs)),
		Indices:   indices,
	}
	for i, d := range dirs {
		mesh.Positions[i] = center.Add(d.Mul(radius))
		mesh.UVs[i] = sphericalUV(d)
	}

	return mesh
}

func subdivide(dirs []mgl32.Vec3, indices []uint32) ([]mgl32.Vec3, []uint32) {
	midpoints := make(map[uint64]uint32, len(indices)/2)
	out := make([]uint32, 0, len(indices)*4)

	midpoint := func(a, b uint32) uint32 {
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		key := uint64(lo)<<32 | uint64(hi)
		if m, ok := midpoints[key]; ok {
			return m
		}
		dirs = append(dirs, dirs[a].Add(dirs[b]).Normalize())
		m := uint32(len(dirs) - 1)
		midpoints[key] = m
		return m
	}

	for i := 0; i+2 < len(indices); i += 3 {
		v1, v2, v3 := indices[i], indices[i+1], indices[i+2]
		m1 := midpoint(v1, v2)
		m2 := midpoint(v2, v3)
		m3 := midpoint(v3, v1)
		out = append(out,
			v1, m1, m3,
			v2, m2, m1,
			v3, m3, m2,
			m1, m2, m3,
		)
	}
	return dirs, out
}

func sphericalUV(d mgl32.Vec3) mgl32.Vec2 {
	u := 0.5 + math.Atan2(float64(d.Z()), float64(d.X()))/(2*math.Pi)
	v := 0.5 - math.Asin(float64(mgl32.Clamp(d.Y(), -1, 1)))/math.Pi
	return mgl32.Vec2{float32(u), float32(v)}
}
