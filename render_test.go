package armature

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestOutlineVerticesCoverAllEdges(t *testing.T) {
	b := Bounds{Min: mgl32.Vec3{-1, -2, -3}, Max: mgl32.Vec3{1, 2, 3}}
	verts := outlineVertices(b)

	if len(verts) != outlineFloats {
		t.Fatalf("len = %d, want %d", len(verts), outlineFloats)
	}

	// Every endpoint is a box corner, and each corner terminates exactly
	// three edges.
	corners := map[mgl32.Vec3]int{}
	for _, c := range b.Corners() {
		corners[c] = 0
	}
	for i := 0; i < len(verts); i += 3 {
		p := mgl32.Vec3{verts[i], verts[i+1], verts[i+2]}
		n, ok := corners[p]
		if !ok {
			t.Fatalf("outline vertex %v is not a box corner", p)
		}
		corners[p] = n + 1
	}
	for c, n := range corners {
		if n != 3 {
			t.Errorf("corner %v used %d times, want 3", c, n)
		}
	}
}

func TestBoxEdgesSpanOneAxisEach(t *testing.T) {
	b := Bounds{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	corners := b.Corners()
	for _, e := range boxEdges {
		diff := 0
		for a := 0; a < 3; a++ {
			if corners[e[0]][a] != corners[e[1]][a] {
				diff++
			}
		}
		if diff != 1 {
			t.Errorf("edge %v spans %d axes, want 1", e, diff)
		}
	}
}
