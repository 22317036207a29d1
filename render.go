package armature

import (
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var gridQuery = donburi.NewQuery(filter.Contains(GridC, TransformC))

// gridExtent is the full size of the ground plane the grid shader draws onto.
const gridExtent = 500

// outlineFloats is the size of the outline vertex buffer: 12 box edges, two
// vec3 endpoints each.
const outlineFloats = 12 * 2 * 3

// Renderer owns the frame pipeline and the shared GPU resources behind it:
// the grid, mesh, and outline shader programs, the ground plane mesh, and the
// dynamic outline buffer. All of it is scoped to the viewport's GL context.
//
// Render order is fixed: clear, grid, meshes, outline. Source-alpha blending
// and depth testing stay enabled for the whole frame, so the half-transparent
// grid has to go down before the opaque meshes that occlude it.
type Renderer struct {
	shaderDir string

	gridShader    *Shader
	meshShader    *Shader
	outlineShader *Shader

	gridMesh   *Mesh
	outlineVAO uint32
	outlineVBO uint32

	// OutlineColor tints the highlight wireframe drawn around the hovered
	// entity.
	OutlineColor mgl32.Vec3

	// Debug enables per-frame pipeline stats at slog debug level.
	Debug bool
}

// NewRenderer returns a renderer that loads its shaders from shaderDir.
// Call Init with the target GL context current before rendering.
func NewRenderer(shaderDir string) *Renderer {
	return &Renderer{
		shaderDir:    shaderDir,
		OutlineColor: mgl32.Vec3{1, 0.62, 0.1},
	}
}

// Init compiles the pipeline's shaders and builds its shared meshes and
// buffers. Each shader loads inside its own error boundary: a failure is
// reported and that pass stays inert (skipped every frame), but the other
// passes still come up. The returned error joins all failures for logging;
// the renderer is usable regardless.
func (r *Renderer) Init() error {
	var errs []error
	load := func(name string) *Shader {
		sh, err := NewShader(name,
			filepath.Join(r.shaderDir, name+".vert.glsl"),
			filepath.Join(r.shaderDir, name+".frag.glsl"))
		if err != nil {
			slog.Error("shader load failed; pass disabled", "pass", name, "err", err)
			errs = append(errs, err)
			return nil
		}
		return sh
	}

	r.gridShader = load("grid")
	r.meshShader = load("mesh")
	r.outlineShader = load("outline")

	if r.gridShader != nil {
		mesh, err := NewMesh(PlaneVertices(gridExtent))
		if err != nil {
			slog.Error("grid plane mesh failed; grid pass disabled", "err", err)
			errs = append(errs, err)
		}
		r.gridMesh = mesh
	}

	if r.outlineShader != nil {
		gl.GenVertexArrays(1, &r.outlineVAO)
		gl.GenBuffers(1, &r.outlineVBO)
		gl.BindVertexArray(r.outlineVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.outlineVBO)
		gl.BufferData(gl.ARRAY_BUFFER, outlineFloats*4, nil, gl.DYNAMIC_DRAW)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
		gl.BindVertexArray(0)
	}

	return errors.Join(errs...)
}

// Render draws one frame of the scene in strict pass order using the supplied
// camera matrices. The owning GL context must be current.
func (r *Renderer) Render(scene *Scene, view, proj mgl32.Mat4, camPos mgl32.Vec3) {
	var stats renderStats
	start := time.Now()

	bg := scene.Background
	gl.ClearColor(bg.X(), bg.Y(), bg.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.gridPass(scene, view, proj, camPos, &stats)
	r.meshPass(scene, view, proj, camPos, &stats)
	r.outlinePass(scene, view, proj, &stats)

	stats.total = time.Since(start)
	r.logStats(stats)
}

func (r *Renderer) gridPass(scene *Scene, view, proj mgl32.Mat4, camPos mgl32.Vec3, stats *renderStats) {
	if r.gridShader == nil || r.gridMesh == nil {
		return
	}
	sh := r.gridShader
	sh.Use()
	sh.SetMat4("view", view)
	sh.SetMat4("projection", proj)
	sh.SetVec3("cameraPos", camPos)

	gridQuery.Each(scene.world, func(entry *donburi.Entry) {
		grid := GridC.Get(entry)
		if !grid.Visible || len(grid.Levels) == 0 {
			return
		}
		spacings, colors, fades, count := packGridLevels(grid)
		sh.SetMat4("model", scene.WorldTransform(entry.Entity()))
		sh.SetFloatArray("levelSpacing", spacings[:count])
		sh.SetVec3Array("levelColor", colors[:count])
		sh.SetFloatArray("levelFade", fades[:count])
		sh.SetInt("levelCount", count)
		sh.SetBool("showAxes", grid.ShowAxes)
		r.gridMesh.Draw()
		stats.gridDraws++
	})
}

func (r *Renderer) meshPass(scene *Scene, view, proj mgl32.Mat4, camPos mgl32.Vec3, stats *renderStats) {
	if r.meshShader == nil {
		return
	}
	sh := r.meshShader
	sh.Use()
	sh.SetMat4("view", view)
	sh.SetMat4("projection", proj)
	sh.SetVec3("cameraPos", camPos)
	sh.SetVec3("lightDir", mgl32.Vec3{-0.4, -1, -0.3}.Normalize())

	fog := scene.Fog()
	sh.SetBool("fogEnabled", fog.Enabled)
	sh.SetVec3("fogColor", fog.Color)
	sh.SetFloat("fogStart", fog.Start)
	sh.SetFloat("fogEnd", fog.End)

	hovered, hasHover := scene.Hovered()

	meshQuery.Each(scene.world, func(entry *donburi.Entry) {
		mr := MeshRefC.Get(entry)
		if mr.Mesh == nil {
			return
		}
		sh.SetMat4("model", scene.WorldTransform(entry.Entity()))
		sh.SetVec4("objectColor", mr.Color)
		sh.SetBool("highlighted", hasHover && entry.Entity() == hovered)
		mr.Mesh.Draw()
		stats.meshDraws++
	})
}

// outlinePass draws the wireframe bounds of the hovered entity from the
// intersection pass's results. Additive on top of the frame; skipped whenever
// nothing is hovered or the outline resources failed to load.
func (r *Renderer) outlinePass(scene *Scene, view, proj mgl32.Mat4, stats *renderStats) {
	if r.outlineShader == nil || r.outlineVAO == 0 {
		return
	}
	hovered, ok := scene.Hovered()
	if !ok || !scene.Valid(hovered) {
		return
	}
	entry := scene.world.Entry(hovered)
	if !entry.HasComponent(MeshRefC) {
		return
	}
	mr := MeshRefC.Get(entry)
	if mr.Mesh == nil {
		return
	}

	wb := worldBounds(mr.Mesh.Bounds(), scene.WorldTransform(hovered))
	verts := outlineVertices(wb)

	sh := r.outlineShader
	sh.Use()
	sh.SetMat4("view", view)
	sh.SetMat4("projection", proj)
	sh.SetVec3("outlineColor", r.OutlineColor)

	gl.BindVertexArray(r.outlineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.outlineVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts[:]))
	gl.DrawArrays(gl.LINES, 0, outlineFloats/3)
	gl.BindVertexArray(0)
	stats.outlineDrawn = true
}

// boxEdges pairs corner indices (as returned by [Bounds.Corners]) into the 12
// box edges.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// outlineVertices flattens the box's edges into world-space line-segment
// vertex data for the outline buffer.
func outlineVertices(b Bounds) [outlineFloats]float32 {
	corners := b.Corners()
	var out [outlineFloats]float32
	i := 0
	for _, e := range boxEdges {
		for _, ci := range e {
			c := corners[ci]
			out[i] = c.X()
			out[i+1] = c.Y()
			out[i+2] = c.Z()
			i += 3
		}
	}
	return out
}

// Shutdown releases every GPU resource the renderer and the scene own:
// shader programs, the shared grid mesh, the outline buffers, and all meshes
// reachable from the registry. Idempotent, and must run with the creating
// context current — the viewport's one-shot cleanup hook guarantees both.
func (r *Renderer) Shutdown(scene *Scene) {
	if r.outlineVBO != 0 {
		gl.DeleteBuffers(1, &r.outlineVBO)
		r.outlineVBO = 0
	}
	if r.outlineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.outlineVAO)
		r.outlineVAO = 0
	}
	if r.gridMesh != nil {
		r.gridMesh.Delete()
		r.gridMesh = nil
	}
	for _, sh := range []**Shader{&r.gridShader, &r.meshShader, &r.outlineShader} {
		if *sh != nil {
			(*sh).Delete()
			*sh = nil
		}
	}
	if scene != nil {
		scene.Release()
	}
}
