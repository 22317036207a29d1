package armature

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestScrollNeverReachesZeroDistance(t *testing.T) {
	c := NewCamera()
	deltas := []float32{1, 5, 100, 1e6, -3, 1e9, 0.5, 42}
	for _, d := range deltas {
		c.ProcessMouseScroll(d)
		if c.Dist < c.MinDistance || c.Dist <= 0 {
			t.Fatalf("distance %v fell below minimum %v after delta %v", c.Dist, c.MinDistance, d)
		}
	}
}

func TestScrollZoomOutIncreasesDistance(t *testing.T) {
	c := NewCamera()
	before := c.Dist
	c.ProcessMouseScroll(-2)
	if c.Dist <= before {
		t.Fatalf("distance %v did not grow from %v on zoom out", c.Dist, before)
	}
}

func TestToggleProjectionRoundTrip(t *testing.T) {
	c := NewCamera()
	view := c.ViewMatrix()
	proj := c.ProjectionMatrix(1.5)

	c.ToggleProjection()
	if c.Mode != Orthographic {
		t.Fatalf("mode = %v after first toggle, want Orthographic", c.Mode)
	}
	c.ToggleProjection()
	if c.Mode != Perspective {
		t.Fatalf("mode = %v after second toggle, want Perspective", c.Mode)
	}

	if c.ViewMatrix() != view {
		t.Error("view matrix changed across projection round trip")
	}
	if c.ProjectionMatrix(1.5) != proj {
		t.Error("projection matrix changed across projection round trip")
	}
}

func TestOrthographicFramingTracksDistance(t *testing.T) {
	c := NewCamera()
	c.ToggleProjection()
	near := c.ProjectionMatrix(1)
	c.Dist *= 2
	far := c.ProjectionMatrix(1)
	if near == far {
		t.Error("orthographic extent did not follow distance")
	}
}

func TestOrbitClampsPitch(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 1000; i++ {
		c.ProcessMouseMovement(0, 50, false)
	}
	if c.Pitch > pitchLimit {
		t.Fatalf("pitch %v exceeds limit %v", c.Pitch, pitchLimit)
	}
	for i := 0; i < 2000; i++ {
		c.ProcessMouseMovement(0, -50, false)
	}
	if c.Pitch < -pitchLimit {
		t.Fatalf("pitch %v below limit %v", c.Pitch, -pitchLimit)
	}
}

func TestPanMovesFocalNotDistance(t *testing.T) {
	c := NewCamera()
	focal := c.Focal
	dist := c.Dist
	c.ProcessMouseMovement(40, -25, true)
	if c.Focal == focal {
		t.Error("focal point unchanged by pan")
	}
	assertNear(t, "distance after pan", c.Dist, dist)
}

func TestOrbitKeepsFocal(t *testing.T) {
	c := NewCamera()
	focal := c.Focal
	c.ProcessMouseMovement(30, 10, false)
	if c.Focal != focal {
		t.Error("orbit moved the focal point")
	}
}

func TestSetToKnownGoodView(t *testing.T) {
	c := NewCamera()
	want := NewCamera()

	c.ProcessMouseMovement(120, 60, false)
	c.ProcessMouseMovement(50, 20, true)
	c.ProcessMouseScroll(3)
	c.SetToKnownGoodView()

	assertVec3(t, "focal", c.Focal, want.Focal)
	assertNear(t, "yaw", c.Yaw, want.Yaw)
	assertNear(t, "pitch", c.Pitch, want.Pitch)
	assertNear(t, "dist", c.Dist, want.Dist)
}

func TestGlideToDefaultConverges(t *testing.T) {
	c := NewCamera()
	c.ProcessMouseMovement(200, 80, false)
	c.ProcessMouseScroll(-5)
	c.GlideToDefault(0.5)

	for i := 0; i < 20; i++ {
		c.Update(0.05)
	}
	if c.glide != nil {
		t.Error("glide still running after full duration")
	}
	assertNear(t, "yaw", c.Yaw, defaultPose.yaw)
	assertNear(t, "pitch", c.Pitch, defaultPose.pitch)
	assertNear(t, "dist", c.Dist, defaultPose.dist)
	assertVec3(t, "focal", c.Focal, defaultPose.focal)
}

func TestManualInputCancelsGlide(t *testing.T) {
	c := NewCamera()
	c.ProcessMouseMovement(100, 0, false)
	c.GlideToDefault(1)
	c.ProcessMouseScroll(1)
	if c.glide != nil {
		t.Error("scroll did not cancel glide")
	}
}

func TestGlideZeroDurationSnaps(t *testing.T) {
	c := NewCamera()
	c.ProcessMouseMovement(100, 40, false)
	c.GlideToDefault(0)
	if c.glide != nil {
		t.Error("zero-duration glide should snap")
	}
	assertNear(t, "yaw", c.Yaw, defaultPose.yaw)
}

func TestProjectionMatrixDegenerateAspect(t *testing.T) {
	c := NewCamera()
	if c.ProjectionMatrix(0) != c.ProjectionMatrix(1) {
		t.Error("non-positive aspect not clamped to 1")
	}
	if c.ProjectionMatrix(-2) != c.ProjectionMatrix(1) {
		t.Error("negative aspect not clamped to 1")
	}
}

func TestScreenRayCenterLooksAtFocal(t *testing.T) {
	c := NewCamera()
	origin, dir := c.ScreenRay(400, 300, 800, 600)

	want := c.Focal.Sub(c.Position()).Normalize()
	assertVec3(t, "dir", dir, want)

	// The origin sits on the near plane between eye and focal point.
	toOrigin := origin.Sub(c.Position())
	if toOrigin.Dot(want) <= 0 {
		t.Error("ray origin behind the eye")
	}
}

func TestPositionRespectsDistance(t *testing.T) {
	c := NewCamera()
	d := c.Position().Sub(c.Focal).Len()
	assertNear(t, "orbit radius", d, c.Dist)
}

func TestViewMatrixLooksAtFocal(t *testing.T) {
	c := NewCamera()
	// The focal point maps onto the view-space -Z axis.
	v := mgl32.TransformCoordinate(c.Focal, c.ViewMatrix())
	assertNear(t, "x", v.X(), 0)
	assertNear(t, "y", v.Y(), 0)
	if v.Z() >= 0 {
		t.Errorf("focal at %v in view space, want negative z", v)
	}
}
