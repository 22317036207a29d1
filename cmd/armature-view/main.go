// Command armature-view opens an armature viewport on a sample three-link
// robot arm. It stands in for the editor shell: in the full application the
// scene is populated from parsed URDF/SDF/KRobot data instead.
package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"

	"github.com/armaturelab/armature"
)

func init() {
	// GLFW event handling and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	verbose := flag.Bool("v", false, "enable debug logging and frame stats")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := armature.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = armature.LoadConfig(*configPath)
		if err != nil {
			slog.Error("config load failed", "path", *configPath, "err", err)
			os.Exit(1)
		}
	}

	scene := armature.NewScene()
	scene.Fog().Enabled = true
	scene.Fog().Color = cfg.ClearColor

	camEntity := scene.CreateEntity(armature.CameraC, armature.TagC)
	camEntry := scene.World().Entry(camEntity)
	armature.CameraC.SetValue(camEntry, armature.NewCameraFromConfig(cfg.Camera))
	armature.TagC.SetValue(camEntry, armature.Tag{Name: "viewport camera"})

	gridEntity := scene.CreateEntity(armature.TransformC, armature.GridC, armature.TagC)
	gridEntry := scene.World().Entry(gridEntity)
	armature.TransformC.SetValue(gridEntry, armature.NewTransform())
	grid := armature.NewGrid()
	grid.Levels = cfg.GridLevels
	armature.GridC.SetValue(gridEntry, grid)
	armature.TagC.SetValue(gridEntry, armature.Tag{Name: "ground grid"})

	vp, err := armature.NewViewport(scene, camEntity, cfg)
	if err != nil {
		slog.Error("viewport creation failed", "err", err)
		os.Exit(1)
	}

	// The context is current now, so scene meshes can be uploaded.
	if err := buildSampleArm(scene); err != nil {
		slog.Error("sample scene failed", "err", err)
		os.Exit(1)
	}

	vp.Run()
}

// buildSampleArm populates the scene with a base and two links in a kinematic
// chain, the way a robot-description loader would.
func buildSampleArm(scene *armature.Scene) error {
	base, err := addLink(scene, "base", armature.BoxVertices(0.6, 0.2, 0.6),
		armature.TransformAt(0, 0.1, 0), mgl32.Vec4{0.35, 0.38, 0.42, 1})
	if err != nil {
		return err
	}

	link1, err := addLink(scene, "link1", armature.CylinderVertices(0.1, 1, 24),
		armature.TransformAt(0, 0.7, 0), mgl32.Vec4{0.8, 0.33, 0.15, 1})
	if err != nil {
		return err
	}
	scene.SetParent(link1, base)

	link2, err := addLink(scene, "link2", armature.BoxVertices(0.15, 0.8, 0.15),
		armature.TransformAt(0, 0.9, 0), mgl32.Vec4{0.9, 0.72, 0.2, 1})
	if err != nil {
		return err
	}
	scene.SetParent(link2, link1)

	return nil
}

func addLink(scene *armature.Scene, name string, verts []float32, at armature.Transform, color mgl32.Vec4) (donburi.Entity, error) {
	mesh, err := armature.NewMesh(verts)
	if err != nil {
		var none donburi.Entity
		return none, err
	}
	e := scene.CreateEntity(armature.TransformC, armature.ParentC, armature.TagC, armature.MeshRefC)
	entry := scene.World().Entry(e)
	armature.TransformC.SetValue(entry, at)
	armature.TagC.SetValue(entry, armature.Tag{Name: name})
	armature.MeshRefC.SetValue(entry, armature.MeshRef{Mesh: mesh, Color: color})
	return e, nil
}
