package armature

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Projection selects between the two camera projection modes.
type Projection uint8

const (
	Perspective Projection = iota
	Orthographic
)

const (
	nearPlane = 0.1
	farPlane  = 1000.0

	// pitchLimit keeps the orbit shy of the poles so the view matrix never
	// degenerates.
	pitchLimit = math32.Pi/2 - 0.01
)

// cameraPose is the animatable subset of camera state.
type cameraPose struct {
	focal mgl32.Vec3
	yaw   float32
	pitch float32
	dist  float32
}

// defaultPose is the known-good view: three-quarter angle looking at the
// origin from a comfortable distance.
var defaultPose = cameraPose{
	yaw:   math32.Pi / 4,
	pitch: math32.Pi / 6,
	dist:  5,
}

// glideAnim animates the camera pose toward a target over time.
type glideAnim struct {
	tween    *gween.Tween
	from, to cameraPose
}

// Camera is an orbit camera component: it circles a focal point at a distance,
// pans by translating the focal point, and zooms by changing the distance.
// Exactly one camera entity backs each viewport. All mutation goes through the
// camera's own methods; the renderer only reads matrices from it.
type Camera struct {
	Focal mgl32.Vec3
	Yaw   float32
	Pitch float32
	Dist  float32

	// FOV is the vertical field of view in radians. It also sizes the
	// orthographic frustum so toggling projection preserves framing.
	FOV  float32
	Mode Projection

	// MinDistance is the zoom floor; the distance is clamped here so the
	// view matrix never degenerates.
	MinDistance float32

	OrbitSpeed float32
	PanSpeed   float32
	ZoomSpeed  float32

	glide *glideAnim
}

// NewCamera returns a camera at the known-good default view.
func NewCamera() Camera {
	c := Camera{
		FOV:         mgl32.DegToRad(45),
		MinDistance: 0.1,
		OrbitSpeed:  0.008,
		PanSpeed:    0.0018,
		ZoomSpeed:   0.1,
	}
	c.applyPose(defaultPose)
	return c
}

func (c *Camera) pose() cameraPose {
	return cameraPose{focal: c.Focal, yaw: c.Yaw, pitch: c.Pitch, dist: c.Dist}
}

func (c *Camera) applyPose(p cameraPose) {
	c.Focal = p.focal
	c.Yaw = p.yaw
	c.Pitch = p.pitch
	c.Dist = p.dist
}

// Position returns the camera's world-space eye position, derived from the
// focal point and the orbit angles.
func (c *Camera) Position() mgl32.Vec3 {
	cp := math32.Cos(c.Pitch)
	offset := mgl32.Vec3{
		c.Dist * cp * math32.Sin(c.Yaw),
		c.Dist * math32.Sin(c.Pitch),
		c.Dist * cp * math32.Cos(c.Yaw),
	}
	return c.Focal.Add(offset)
}

// Distance returns the current orbit distance.
func (c *Camera) Distance() float32 {
	return c.Dist
}

// ViewMatrix returns the world-to-view matrix for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Focal, mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the projection for the given viewport aspect ratio.
// Non-positive aspect ratios are clamped to 1 (a degenerate viewport is the
// caller's transient resize state, not an error). In orthographic mode the
// frustum half-height is derived from distance and FOV so the apparent framing
// matches the perspective view at the focal plane.
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	if c.Mode == Orthographic {
		halfH := c.Dist * math32.Tan(c.FOV/2)
		halfW := halfH * aspect
		return mgl32.Ortho(-halfW, halfW, -halfH, halfH, nearPlane, farPlane)
	}
	return mgl32.Perspective(c.FOV, aspect, nearPlane, farPlane)
}

// right and up are the view-plane basis vectors used for panning.
func (c *Camera) right() mgl32.Vec3 {
	forward := c.Focal.Sub(c.Position()).Normalize()
	return forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

func (c *Camera) up() mgl32.Vec3 {
	forward := c.Focal.Sub(c.Position()).Normalize()
	return c.right().Cross(forward).Normalize()
}

// ProcessMouseMovement maps a mouse drag delta onto the camera. When panning,
// the focal point slides along the view plane, scaled by distance so the model
// tracks the cursor at any zoom. Otherwise the drag orbits around the focal
// point, with pitch clamped short of the poles. Manual input cancels any
// running glide.
func (c *Camera) ProcessMouseMovement(dx, dy float32, panning bool) {
	c.glide = nil
	if panning {
		scale := c.PanSpeed * c.Dist
		c.Focal = c.Focal.Sub(c.right().Mul(dx * scale)).Sub(c.up().Mul(dy * scale))
		return
	}
	c.Yaw -= dx * c.OrbitSpeed
	c.Pitch += dy * c.OrbitSpeed
	c.Pitch = clamp32(c.Pitch, -pitchLimit, pitchLimit)
}

// ProcessMouseScroll zooms by wheel steps (positive = zoom in). The step is
// proportional to the current distance and the result is clamped to
// MinDistance, so no sequence of deltas can drive the camera into or past the
// focal point.
func (c *Camera) ProcessMouseScroll(delta float32) {
	c.glide = nil
	c.Dist -= delta * c.ZoomSpeed * c.Dist
	if c.Dist < c.MinDistance {
		c.Dist = c.MinDistance
	}
}

// ToggleProjection flips between perspective and orthographic. Framing is
// preserved because the orthographic extent is always derived from the current
// distance and FOV; toggling twice restores the exact previous projection.
func (c *Camera) ToggleProjection() {
	if c.Mode == Perspective {
		c.Mode = Orthographic
	} else {
		c.Mode = Perspective
	}
}

// SetToKnownGoodView snaps the camera back to the default pose immediately.
func (c *Camera) SetToKnownGoodView() {
	c.glide = nil
	c.applyPose(defaultPose)
}

// GlideToDefault animates the camera back to the default pose over the given
// duration in seconds. A non-positive duration snaps. The animation advances
// from [Camera.Update] on the viewport clock.
func (c *Camera) GlideToDefault(duration float32) {
	if duration <= 0 {
		c.SetToKnownGoodView()
		return
	}
	c.glide = &glideAnim{
		tween: gween.New(0, 1, duration, ease.OutQuad),
		from:  c.pose(),
		to:    defaultPose,
	}
}

// Update advances any running glide animation. dt is in seconds.
func (c *Camera) Update(dt float32) {
	if c.glide == nil {
		return
	}
	t, done := c.glide.tween.Update(dt)
	c.applyPose(lerpPose(c.glide.from, c.glide.to, t))
	if done {
		c.glide = nil
	}
}

func lerpPose(a, b cameraPose, t float32) cameraPose {
	return cameraPose{
		focal: a.focal.Add(b.focal.Sub(a.focal).Mul(t)),
		yaw:   a.yaw + (b.yaw-a.yaw)*t,
		pitch: a.pitch + (b.pitch-a.pitch)*t,
		dist:  a.dist + (b.dist-a.dist)*t,
	}
}

// ScreenRay unprojects the window coordinate (x, y) into a world-space ray for
// picking. Window coordinates follow the toolkit convention (origin top-left,
// y down). Falls back to the view axis if the combined matrix is singular.
func (c *Camera) ScreenRay(x, y float64, width, height int) (origin, dir mgl32.Vec3) {
	view := c.ViewMatrix()
	proj := c.ProjectionMatrix(float32(width) / float32(height))

	wy := float32(height) - float32(y)
	near, errN := mgl32.UnProject(mgl32.Vec3{float32(x), wy, 0}, view, proj, 0, 0, width, height)
	far, errF := mgl32.UnProject(mgl32.Vec3{float32(x), wy, 1}, view, proj, 0, 0, width, height)
	if errN != nil || errF != nil {
		pos := c.Position()
		return pos, c.Focal.Sub(pos).Normalize()
	}
	return near, far.Sub(near).Normalize()
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
