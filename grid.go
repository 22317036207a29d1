package armature

import (
	"github.com/go-gl/mathgl/mgl32"
)

// MaxGridLevels is the size of the per-level uniform arrays in the grid
// shader. Levels beyond this are ignored.
const MaxGridLevels = 8

// GridLevel is one resolution of the reference grid: line spacing, line color,
// and the distance at which its lines have fully faded out.
type GridLevel struct {
	Spacing      float32    `yaml:"spacing"`
	Color        mgl32.Vec3 `yaml:"color"`
	FadeDistance float32    `yaml:"fadeDistance"`
}

// Grid is a multi-resolution ground grid component. Levels are ordered finest
// to coarsest and render in list order; the axis lines can be toggled
// independently of the grid itself.
type Grid struct {
	Levels   []GridLevel
	ShowAxes bool
	Visible  bool
}

// NewGrid returns a grid with the standard three levels: 10 cm, 1 m, and 10 m.
func NewGrid() Grid {
	return Grid{
		Levels:   DefaultGridLevels(),
		ShowAxes: true,
		Visible:  true,
	}
}

// DefaultGridLevels returns the standard finest-to-coarsest level list.
func DefaultGridLevels() []GridLevel {
	return []GridLevel{
		{Spacing: 0.1, Color: mgl32.Vec3{0.28, 0.28, 0.28}, FadeDistance: 8},
		{Spacing: 1, Color: mgl32.Vec3{0.4, 0.4, 0.4}, FadeDistance: 40},
		{Spacing: 10, Color: mgl32.Vec3{0.55, 0.55, 0.55}, FadeDistance: 200},
	}
}

// packGridLevels flattens the level list into the uniform arrays the grid
// shader consumes, preserving list order. Levels past MaxGridLevels are
// dropped.
func packGridLevels(g *Grid) (spacings [MaxGridLevels]float32, colors [MaxGridLevels]mgl32.Vec3, fades [MaxGridLevels]float32, count int32) {
	n := len(g.Levels)
	if n > MaxGridLevels {
		n = MaxGridLevels
	}
	for i := 0; i < n; i++ {
		spacings[i] = g.Levels[i].Spacing
		colors[i] = g.Levels[i].Color
		fades[i] = g.Levels[i].FadeDistance
	}
	return spacings, colors, fades, int32(n)
}
