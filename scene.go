package armature

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// noEntity is the zero entity handle, used for "no parent" and "nothing
// hovered".
var noEntity donburi.Entity

// Scene owns the entity registry and the scene-wide singleton state (fog,
// highlight results, background color). It is the sole authority for entity
// lifetime: entities are created and destroyed only through Scene methods, and
// no entity outlives its Scene.
type Scene struct {
	world    donburi.World
	entities []donburi.Entity

	fog        Fog
	Background mgl32.Vec3

	hovered   donburi.Entity
	hoveredOK bool
	hitPoint  mgl32.Vec3
}

// NewScene creates a scene with an empty registry and fog disabled.
func NewScene() *Scene {
	return &Scene{
		world:      donburi.NewWorld(),
		Background: mgl32.Vec3{0.1, 0.1, 0.1},
		fog: Fog{
			Color: mgl32.Vec3{0.1, 0.1, 0.1},
			Start: 15,
			End:   60,
		},
	}
}

// World exposes the underlying registry for component queries. Callers must
// not create or remove entities through it directly; use [Scene.CreateEntity]
// and [Scene.DestroyEntity].
func (s *Scene) World() donburi.World {
	return s.world
}

// CreateEntity creates an entity carrying the given component types, with each
// component zero-valued. Set initial values through the component types, e.g.
//
//	e := scene.CreateEntity(armature.TransformC, armature.TagC)
//	armature.TransformC.SetValue(scene.World().Entry(e), armature.TransformAt(1, 0, 0))
func (s *Scene) CreateEntity(comps ...donburi.IComponentType) donburi.Entity {
	e := s.world.Create(comps...)
	s.entities = append(s.entities, e)
	return e
}

// DestroyEntity removes an entity and all of its components from the registry.
// The entity's GPU mesh, if any, is not freed here: mesh handles may be shared
// between entities and are released in bulk during viewport teardown.
func (s *Scene) DestroyEntity(e donburi.Entity) {
	if !s.world.Valid(e) {
		return
	}
	if s.hoveredOK && s.hovered == e {
		s.clearHovered()
	}
	s.world.Remove(e)
	for i, ent := range s.entities {
		if ent == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Valid reports whether e refers to a live entity in this scene.
func (s *Scene) Valid(e donburi.Entity) bool {
	return s.world.Valid(e)
}

// EntityCount returns the number of live entities.
func (s *Scene) EntityCount() int {
	return len(s.entities)
}

// Entities returns the live entities in creation order. The returned slice is
// shared; callers must not modify it.
func (s *Scene) Entities() []donburi.Entity {
	return s.entities
}

// FindByTag returns the first entity whose Tag matches name, in creation
// order. Tags are not unique; this is a diagnostics helper, not an index.
func (s *Scene) FindByTag(name string) (donburi.Entity, bool) {
	for _, e := range s.entities {
		entry := s.world.Entry(e)
		if entry.HasComponent(TagC) && TagC.Get(entry).Name == name {
			return e, true
		}
	}
	return noEntity, false
}

// Fog returns the scene's fog singleton for reading or adjustment.
func (s *Scene) Fog() *Fog {
	return &s.fog
}

// Hovered returns the entity currently highlighted by the intersection pass,
// if any.
func (s *Scene) Hovered() (donburi.Entity, bool) {
	return s.hovered, s.hoveredOK
}

// HoverPoint returns the world-space hit point of the current highlight.
// Only meaningful when [Scene.Hovered] reports an entity.
func (s *Scene) HoverPoint() mgl32.Vec3 {
	return s.hitPoint
}

func (s *Scene) setHovered(e donburi.Entity, point mgl32.Vec3) {
	s.hovered = e
	s.hoveredOK = true
	s.hitPoint = point
}

func (s *Scene) clearHovered() {
	s.hovered = noEntity
	s.hoveredOK = false
}

// Release destroys every entity and frees all GPU meshes reachable from the
// registry. The GL context that created the meshes must be current; the
// viewport's cleanup path guarantees this before the context goes away.
func (s *Scene) Release() {
	for _, e := range s.entities {
		if !s.world.Valid(e) {
			continue
		}
		entry := s.world.Entry(e)
		if entry.HasComponent(MeshRefC) {
			if mr := MeshRefC.Get(entry); mr.Mesh != nil {
				mr.Mesh.Delete()
			}
		}
		s.world.Remove(e)
	}
	s.entities = nil
	s.clearHovered()
}

// mustEntry returns the registry entry for e, panicking if the handle is
// stale or foreign. Touching a destroyed entity is a lifetime bug in the
// caller, not a recoverable condition.
func (s *Scene) mustEntry(e donburi.Entity) *donburi.Entry {
	if !s.world.Valid(e) {
		panic(fmt.Sprintf("armature: access to invalid entity %v", e))
	}
	return s.world.Entry(e)
}
