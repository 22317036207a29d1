package armature

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/yohamta/donburi"
)

// viewportState tracks the viewport lifecycle: constructed but not yet
// rendering, rendering on the frame clock, or torn down.
type viewportState uint8

const (
	viewportUninitialized viewportState = iota
	viewportReady
	viewportDestroyed
)

// frameInterval is the repaint period of the viewport clock (~60 Hz). The
// clock runs independently of input so glides and highlight changes animate
// without events.
const frameInterval = time.Second / 60

// Viewport is a windowed GL surface bound to one scene and one camera entity.
// It owns the GL context, the renderer, and every context-scoped GPU resource,
// and is responsible for releasing all of it through a one-shot cleanup before
// the context is destroyed. Input events translate into camera mutations only;
// handlers never touch GL.
type Viewport struct {
	scene        *Scene
	cameraEntity donburi.Entity
	cfg          Config

	window   *glfw.Window
	renderer *Renderer

	width  int
	height int

	lastX, lastY   float64
	mouseX, mouseY float64
	orbiting       bool
	panning        bool

	state      viewportState
	cleaned    bool
	destroyers []func()
}

// NewViewport creates the window and GL context, brings up the rendering
// pipeline, and binds input. Panics if scene is nil (the viewport is useless
// without one); returns an error if the camera entity is missing or the
// window/context cannot be created. Shader failures are logged and leave the
// affected passes inert rather than failing construction.
//
// The calling goroutine must be locked to the main OS thread. The context is
// left current on return so callers can upload scene meshes.
func NewViewport(scene *Scene, cameraEntity donburi.Entity, cfg Config) (*Viewport, error) {
	if scene == nil {
		panic("armature: viewport requires a scene")
	}
	if !scene.Valid(cameraEntity) || !scene.World().Entry(cameraEntity).HasComponent(CameraC) {
		return nil, fmt.Errorf("viewport: entity %v has no camera component", cameraEntity)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("viewport: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("viewport: create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("viewport: init gl: %w", err)
	}
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	v := &Viewport{
		scene:        scene,
		cameraEntity: cameraEntity,
		cfg:          cfg,
		window:       window,
		renderer:     NewRenderer(cfg.ShaderDir),
	}
	v.width, v.height = window.GetFramebufferSize()
	scene.Background = cfg.ClearColor

	v.initGL()
	v.bindInput()
	v.state = viewportReady

	slog.Debug("viewport ready",
		"size", fmt.Sprintf("%dx%d", v.width, v.height),
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
	)
	return v, nil
}

// initGL sets the fixed per-frame GL state and brings up the renderer inside
// an error boundary. Failures leave the affected passes inert, never crash.
func (v *Viewport) initGL() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Viewport(0, 0, int32(v.width), int32(v.height))

	if err := v.renderer.Init(); err != nil {
		slog.Error("renderer init incomplete; some passes disabled", "err", err)
	}
	v.destroyers = append(v.destroyers, func() {
		v.renderer.Shutdown(v.scene)
	})
}

// Camera returns the viewport's camera component for input handlers and
// external panels.
func (v *Viewport) Camera() *Camera {
	return CameraC.Get(v.scene.mustEntry(v.cameraEntity))
}

// Run drives the repaint clock until the window closes, then tears down the
// GL resources and the window. Must run on the main OS thread.
func (v *Viewport) Run() {
	last := time.Now()
	for !v.window.ShouldClose() {
		frameStart := time.Now()
		glfw.PollEvents()

		dt := float32(frameStart.Sub(last).Seconds())
		last = frameStart

		cam := v.Camera()
		cam.Update(dt)
		UpdateIntersections(v.scene, cam, v.mouseX, v.mouseY, v.width, v.height)
		v.renderFrame(cam)
		v.window.SwapBuffers()

		if !v.cfg.Window.VSync {
			if pause := frameInterval - time.Since(frameStart); pause > 0 {
				time.Sleep(pause)
			}
		}
	}
	v.Cleanup()
	v.window.Destroy()
	glfw.Terminate()
}

func (v *Viewport) renderFrame(cam *Camera) {
	aspect := float32(1)
	if v.height > 0 {
		aspect = float32(v.width) / float32(v.height)
	}
	v.renderer.Render(v.scene, cam.ViewMatrix(), cam.ProjectionMatrix(aspect), cam.Position())
}

// Cleanup releases every context-scoped GPU resource exactly once, with the
// context made current first. The second and later calls are no-ops, so the
// close path and an explicit teardown can both invoke it safely.
func (v *Viewport) Cleanup() {
	if v.cleaned {
		return
	}
	v.cleaned = true
	if v.window != nil {
		v.window.MakeContextCurrent()
	}
	for i := len(v.destroyers) - 1; i >= 0; i-- {
		v.destroyers[i]()
	}
	v.destroyers = nil
	v.state = viewportDestroyed
}

// bindInput installs the toolkit callbacks. Each is a pure translation from
// window event to camera/scene mutation; rendering happens only on the frame
// clock.
func (v *Viewport) bindInput() {
	v.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		dx := x - v.lastX
		dy := y - v.lastY
		v.lastX, v.lastY = x, y
		v.mouseX, v.mouseY = x, y
		if v.orbiting || v.panning {
			v.Camera().ProcessMouseMovement(float32(dx), float32(-dy), v.panning)
		}
	})

	v.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		pressed := action == glfw.Press
		switch button {
		case glfw.MouseButtonLeft:
			v.orbiting = pressed
		case glfw.MouseButtonMiddle:
			v.panning = pressed
		}
		if pressed {
			v.lastX, v.lastY = v.window.GetCursorPos()
		}
	})

	v.window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		v.Camera().ProcessMouseScroll(float32(yoff))
	})

	v.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyP:
			v.Camera().ToggleProjection()
		case glfw.KeyR:
			v.Camera().GlideToDefault(0.4)
		case glfw.KeyG:
			v.toggleGrids()
		case glfw.KeyEscape:
			v.window.SetShouldClose(true)
		}
	})

	v.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		v.resize(width, height)
	})
}

// resize updates the GL viewport rectangle. No-op on non-positive sizes
// (minimized or mid-resize states).
func (v *Viewport) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width, v.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// toggleGrids flips visibility on every grid entity.
func (v *Viewport) toggleGrids() {
	gridQuery.Each(v.scene.world, func(entry *donburi.Entry) {
		grid := GridC.Get(entry)
		grid.Visible = !grid.Visible
	})
}
