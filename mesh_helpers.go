package armature

import (
	"github.com/chewxy/math32"
)

// Geometry generators for the primitive shapes robot links are built from.
// All produce interleaved [x y z nx ny nz] triangle data centered on the
// local origin, ready for [NewMesh]. They are pure so the vertex math is
// testable without a GL context.

// BoxVertices generates a box of the given full extents.
func BoxVertices(width, height, depth float32) []float32 {
	hx, hy, hz := width/2, height/2, depth/2

	// Each face: two triangles, one flat normal.
	faces := [6]struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{hx, -hy, hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-hx, -hy, -hz}, {-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}, {-hx, hy, -hz}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}, {-hx, -hy, hz}}},
	}

	verts := make([]float32, 0, 36*vertexStride)
	for _, f := range faces {
		quad := [6]int{0, 1, 2, 0, 2, 3}
		for _, ci := range quad {
			c := f.corners[ci]
			verts = append(verts, c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2])
		}
	}
	return verts
}

// CylinderVertices generates a cylinder along the Y axis with the given radius
// and full height. segments is clamped to a minimum of 3.
func CylinderVertices(radius, height float32, segments int) []float32 {
	if segments < 3 {
		segments = 3
	}
	hy := height / 2

	verts := make([]float32, 0, segments*12*vertexStride)
	for i := 0; i < segments; i++ {
		a0 := 2 * math32.Pi * float32(i) / float32(segments)
		a1 := 2 * math32.Pi * float32(i+1) / float32(segments)
		x0, z0 := radius*math32.Cos(a0), radius*math32.Sin(a0)
		x1, z1 := radius*math32.Cos(a1), radius*math32.Sin(a1)
		n0 := [3]float32{math32.Cos(a0), 0, math32.Sin(a0)}
		n1 := [3]float32{math32.Cos(a1), 0, math32.Sin(a1)}

		// Side quad, wound outward.
		verts = append(verts,
			x0, -hy, z0, n0[0], n0[1], n0[2],
			x0, hy, z0, n0[0], n0[1], n0[2],
			x1, hy, z1, n1[0], n1[1], n1[2],

			x0, -hy, z0, n0[0], n0[1], n0[2],
			x1, hy, z1, n1[0], n1[1], n1[2],
			x1, -hy, z1, n1[0], n1[1], n1[2],
		)
		// Top cap.
		verts = append(verts,
			0, hy, 0, 0, 1, 0,
			x1, hy, z1, 0, 1, 0,
			x0, hy, z0, 0, 1, 0,
		)
		// Bottom cap.
		verts = append(verts,
			0, -hy, 0, 0, -1, 0,
			x0, -hy, z0, 0, -1, 0,
			x1, -hy, z1, 0, -1, 0,
		)
	}
	return verts
}

// PlaneVertices generates a square plane of the given full size on the XZ
// plane, facing up. Used for the ground grid surface.
func PlaneVertices(size float32) []float32 {
	h := size / 2
	return []float32{
		-h, 0, -h, 0, 1, 0,
		-h, 0, h, 0, 1, 0,
		h, 0, h, 0, 1, 0,

		-h, 0, -h, 0, 1, 0,
		h, 0, h, 0, 1, 0,
		h, 0, -h, 0, 1, 0,
	}
}
