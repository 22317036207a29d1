package armature

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// Component types attached to scene entities. The registry stores each as a
// typed, dense column; entities carry any subset of them.
var (
	TransformC = donburi.NewComponentType[Transform]()
	ParentC    = donburi.NewComponentType[Parent]()
	TagC       = donburi.NewComponentType[Tag]()
	CameraC    = donburi.NewComponentType[Camera]()
	GridC      = donburi.NewComponentType[Grid]()
	MeshRefC   = donburi.NewComponentType[MeshRef]()
)

// Parent is a non-owning link to the entity this one is attached under in the
// kinematic chain. The zero value (or a link to a destroyed entity) means the
// entity sits at the world root.
type Parent struct {
	Entity donburi.Entity
}

// Tag is a human-readable label for diagnostics and lookup. Not unique.
type Tag struct {
	Name string
}

// MeshRef attaches renderable geometry to an entity. The Mesh handle is only
// valid while the GL context that created it is current; the scene releases it
// during viewport teardown.
type MeshRef struct {
	Mesh  *Mesh
	Color mgl32.Vec4
}

// Fog holds the scene-wide linear fog parameters. A single instance lives on
// the [Scene], not on any entity.
type Fog struct {
	Enabled bool
	Color   mgl32.Vec3
	Start   float32
	End     float32
}
