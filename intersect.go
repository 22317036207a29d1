package armature

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// meshQuery matches every entity the mesh and intersection passes care about.
var meshQuery = donburi.NewQuery(filter.Contains(MeshRefC, TransformC))

// Ray is a world-space picking ray.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// IntersectAABB performs a slab test against the box and returns the distance
// to the entry point. A ray starting inside the box hits at distance 0.
func (r Ray) IntersectAABB(b Bounds) (float32, bool) {
	tmin := mgl32.InfNeg
	tmax := mgl32.InfPos

	for a := 0; a < 3; a++ {
		if r.Dir[a] == 0 {
			// Parallel to this slab: must already be inside it.
			if r.Origin[a] < b.Min[a] || r.Origin[a] > b.Max[a] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Dir[a]
		t0 := (b.Min[a] - r.Origin[a]) * inv
		t1 := (b.Max[a] - r.Origin[a]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false // box entirely behind the ray
	}
	if tmin < 0 {
		return 0, true // origin inside the box
	}
	return tmin, true
}

// worldBounds transforms a local-space box by the given matrix and returns the
// world-space AABB of its corners.
func worldBounds(b Bounds, m mgl32.Mat4) Bounds {
	corners := b.Corners()
	first := mgl32.TransformCoordinate(corners[0], m)
	out := Bounds{Min: first, Max: first}
	for _, c := range corners[1:] {
		w := mgl32.TransformCoordinate(c, m)
		for a := 0; a < 3; a++ {
			if w[a] < out.Min[a] {
				out.Min[a] = w[a]
			}
			if w[a] > out.Max[a] {
				out.Max[a] = w[a]
			}
		}
	}
	return out
}

// UpdateIntersections refreshes the scene's highlight state for this frame:
// it casts the cursor ray against the world-space bounds of every renderable
// entity and records the nearest hit (or clears the highlight). Geometry is
// never mutated. Runs once per frame, before the render pass, so the outline
// pass draws current state.
func UpdateIntersections(s *Scene, cam *Camera, mouseX, mouseY float64, width, height int) {
	if cam == nil || width <= 0 || height <= 0 {
		s.clearHovered()
		return
	}

	origin, dir := cam.ScreenRay(mouseX, mouseY, width, height)
	ray := Ray{Origin: origin, Dir: dir}

	best := mgl32.InfPos
	bestEntity := noEntity
	found := false

	meshQuery.Each(s.world, func(entry *donburi.Entry) {
		mr := MeshRefC.Get(entry)
		if mr.Mesh == nil {
			return
		}
		wb := worldBounds(mr.Mesh.Bounds(), s.WorldTransform(entry.Entity()))
		if t, ok := ray.IntersectAABB(wb); ok && t < best {
			best = t
			bestEntity = entry.Entity()
			found = true
		}
	})

	if found {
		s.setHovered(bestEntity, ray.Origin.Add(ray.Dir.Mul(best)))
	} else {
		s.clearHovered()
	}
}
