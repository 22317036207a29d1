package armature

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// maxHierarchyDepth bounds the ancestor walk. Robot kinematic chains are a
// handful of links deep; hitting this bound means a parent cycle, which is a
// scene-construction bug.
const maxHierarchyDepth = 32

// WorldTransform composes the entity's local transform with every ancestor's,
// walking [Parent] links until none remains:
//
//	world(E) = world(parent(E)) * local(E)
//
// The chain is recomputed in full on every call — nothing is cached — so a
// mutation anywhere up the chain is visible on the next query with no
// invalidation step. A missing Transform contributes identity; a dangling or
// zero parent link terminates the walk at the world root. Panics if the chain
// exceeds maxHierarchyDepth.
func (s *Scene) WorldTransform(e donburi.Entity) mgl32.Mat4 {
	world := s.localMatrix(e)
	cur := e
	for depth := 0; ; depth++ {
		if depth > maxHierarchyDepth {
			panic(fmt.Sprintf("armature: parent chain exceeds %d levels at entity %v; cycle?", maxHierarchyDepth, e))
		}
		entry := s.mustEntry(cur)
		if !entry.HasComponent(ParentC) {
			return world
		}
		p := ParentC.Get(entry).Entity
		if p == noEntity || !s.world.Valid(p) {
			return world
		}
		world = s.localMatrix(p).Mul4(world)
		cur = p
	}
}

// SetParent links child under parent. A zero parent detaches the child to the
// world root.
func (s *Scene) SetParent(child, parent donburi.Entity) {
	entry := s.mustEntry(child)
	if !entry.HasComponent(ParentC) {
		entry.AddComponent(ParentC)
	}
	ParentC.SetValue(entry, Parent{Entity: parent})
}

// localMatrix returns the entity's local matrix, or identity when it carries
// no Transform.
func (s *Scene) localMatrix(e donburi.Entity) mgl32.Mat4 {
	entry := s.mustEntry(e)
	if !entry.HasComponent(TransformC) {
		return mgl32.Ident4()
	}
	return TransformC.Get(entry).Matrix()
}
