// Package armature is the scene and rendering core of a robot-model editor.
//
// Armature provides the entity-component scene graph, forward-kinematics
// transform hierarchy, orbit camera, picking, and the OpenGL rendering
// pipeline (grid, phong meshes, outlines, fog) that the surrounding editor
// shell builds on. Format parsers (URDF/SDF/KRobot) and panel widgets live
// outside this package; they hand armature a populated registry and read
// camera state back from it.
//
// # Quick start
//
// Build a scene, attach a camera entity, and run a viewport:
//
//	scene := armature.NewScene()
//	camEntity := scene.CreateEntity(armature.CameraC)
//	armature.CameraC.SetValue(scene.World().Entry(camEntity), armature.NewCamera())
//
//	vp, err := armature.NewViewport(scene, camEntity, armature.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	vp.Run()
//
// # Scene graph
//
// Every object is an entity in the scene's [donburi] registry. Components are
// typed values attached to entities: [Transform], [Parent], [Tag], [Camera],
// [Grid], and [MeshRef]. Parent links form the kinematic chain; world
// transforms are recomputed from the chain on every query, so moving a base
// link moves everything below it with no invalidation step.
//
// # GPU resource lifetime
//
// [Shader] and [Mesh] handles are valid only while the OpenGL context that
// created them is current. The [Viewport] owns its context-scoped resources
// and releases them through a one-shot cleanup hook that runs before the
// context is destroyed.
//
// [donburi]: https://github.com/yohamta/donburi
package armature
