package armature

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPackGridLevelsPreservesOrder(t *testing.T) {
	g := Grid{
		Levels: []GridLevel{
			{Spacing: 0.1, Color: mgl32.Vec3{1, 0, 0}, FadeDistance: 5},
			{Spacing: 1, Color: mgl32.Vec3{0, 1, 0}, FadeDistance: 50},
			{Spacing: 10, Color: mgl32.Vec3{0, 0, 1}, FadeDistance: 500},
		},
	}
	spacings, colors, fades, count := packGridLevels(&g)
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	for i, lvl := range g.Levels {
		assertNear(t, "spacing", spacings[i], lvl.Spacing)
		assertVec3(t, "color", colors[i], lvl.Color)
		assertNear(t, "fade", fades[i], lvl.FadeDistance)
	}
}

func TestPackGridLevelsReorderKeepsParameters(t *testing.T) {
	a := GridLevel{Spacing: 0.5, Color: mgl32.Vec3{1, 0, 0}, FadeDistance: 10}
	b := GridLevel{Spacing: 5, Color: mgl32.Vec3{0, 0, 1}, FadeDistance: 100}

	fwd := Grid{Levels: []GridLevel{a, b}}
	rev := Grid{Levels: []GridLevel{b, a}}

	fs, fc, ff, _ := packGridLevels(&fwd)
	rs, rc, rf, _ := packGridLevels(&rev)

	// Reordering swaps slots but leaves each level's parameters intact.
	assertNear(t, "fwd[0] spacing", fs[0], rs[1])
	assertVec3(t, "fwd[0] color", fc[0], rc[1])
	assertNear(t, "fwd[0] fade", ff[0], rf[1])
	assertNear(t, "fwd[1] spacing", fs[1], rs[0])
	assertVec3(t, "fwd[1] color", fc[1], rc[0])
	assertNear(t, "fwd[1] fade", ff[1], rf[0])
}

func TestPackGridLevelsTruncates(t *testing.T) {
	g := Grid{}
	for i := 0; i < MaxGridLevels+4; i++ {
		g.Levels = append(g.Levels, GridLevel{Spacing: float32(i + 1)})
	}
	spacings, _, _, count := packGridLevels(&g)
	if count != MaxGridLevels {
		t.Fatalf("count = %d, want %d", count, MaxGridLevels)
	}
	assertNear(t, "last kept level", spacings[MaxGridLevels-1], float32(MaxGridLevels))
}

func TestNewGridDefaults(t *testing.T) {
	g := NewGrid()
	if !g.Visible || !g.ShowAxes {
		t.Error("new grid should be visible with axes on")
	}
	if len(g.Levels) == 0 {
		t.Fatal("new grid has no levels")
	}
	for i := 1; i < len(g.Levels); i++ {
		if g.Levels[i].Spacing <= g.Levels[i-1].Spacing {
			t.Errorf("levels not ordered finest to coarsest: %v", g.Levels)
		}
	}
}
