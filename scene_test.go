package armature

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCreateAndDestroyEntity(t *testing.T) {
	s := NewScene()
	e := s.CreateEntity(TransformC, TagC)
	if !s.Valid(e) {
		t.Fatal("freshly created entity is invalid")
	}
	if s.EntityCount() != 1 {
		t.Fatalf("EntityCount = %d, want 1", s.EntityCount())
	}

	s.DestroyEntity(e)
	if s.Valid(e) {
		t.Error("destroyed entity still valid")
	}
	if s.EntityCount() != 0 {
		t.Errorf("EntityCount = %d after destroy, want 0", s.EntityCount())
	}
}

func TestDestroyEntityTwiceIsNoop(t *testing.T) {
	s := NewScene()
	e := s.CreateEntity(TagC)
	s.DestroyEntity(e)
	s.DestroyEntity(e)
	if s.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, want 0", s.EntityCount())
	}
}

func TestInvalidEntityAccessPanics(t *testing.T) {
	s := NewScene()
	e := s.CreateEntity(TransformC)
	s.DestroyEntity(e)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on destroyed-entity access")
		}
	}()
	s.WorldTransform(e)
}

func TestFindByTag(t *testing.T) {
	s := NewScene()
	a := s.CreateEntity(TagC)
	TagC.SetValue(s.World().Entry(a), Tag{Name: "base"})
	b := s.CreateEntity(TagC)
	TagC.SetValue(s.World().Entry(b), Tag{Name: "gripper"})

	got, ok := s.FindByTag("gripper")
	if !ok || got != b {
		t.Fatalf("FindByTag(gripper) = %v, %v; want %v, true", got, ok, b)
	}
	if _, ok := s.FindByTag("elbow"); ok {
		t.Error("FindByTag matched a missing tag")
	}
}

func TestFogIsSceneSingleton(t *testing.T) {
	s := NewScene()
	s.Fog().Enabled = true
	s.Fog().Start = 3

	if !s.Fog().Enabled {
		t.Error("fog mutation lost")
	}
	assertNear(t, "fog start", s.Fog().Start, 3)
}

func TestHoverClearedWhenEntityDestroyed(t *testing.T) {
	s := NewScene()
	e := s.CreateEntity(TransformC, MeshRefC)
	s.setHovered(e, mgl32.Vec3{1, 0, 0})

	if _, ok := s.Hovered(); !ok {
		t.Fatal("hover not recorded")
	}
	s.DestroyEntity(e)
	if _, ok := s.Hovered(); ok {
		t.Error("hover survived entity destruction")
	}
}

func TestReleaseDestroysEverything(t *testing.T) {
	s := NewScene()
	a := s.CreateEntity(TransformC)
	b := s.CreateEntity(TransformC, MeshRefC) // nil mesh: nothing to free
	s.Release()

	if s.Valid(a) || s.Valid(b) {
		t.Error("entities survived Release")
	}
	if s.EntityCount() != 0 {
		t.Errorf("EntityCount = %d after Release, want 0", s.EntityCount())
	}
	if _, ok := s.Hovered(); ok {
		t.Error("hover state survived Release")
	}
}

func TestEntitiesCreationOrder(t *testing.T) {
	s := NewScene()
	a := s.CreateEntity(TagC)
	b := s.CreateEntity(TagC)
	c := s.CreateEntity(TagC)
	s.DestroyEntity(b)

	got := s.Entities()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("Entities() = %v, want [%v %v]", got, a, c)
	}
}
