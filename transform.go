package armature

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the local pose of an entity relative to its parent: translation,
// rotation (Euler XYZ, radians, matching the roll/pitch/yaw convention of the
// robot-description parsers that populate the scene), and scale.
//
// The local matrix is derived on every [Transform.Matrix] call, so mutating any
// field is immediately reflected in the next query. No world matrix is ever
// stored on the component.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
}

// NewTransform returns an identity transform (unit scale, no rotation or
// translation).
func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// TransformAt returns an identity transform translated to (x, y, z).
func TransformAt(x, y, z float32) Transform {
	return Transform{
		Translation: mgl32.Vec3{x, y, z},
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// Matrix computes the local matrix as Translate * Rotate * Scale.
func (t Transform) Matrix() mgl32.Mat4 {
	tr := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	rot := mgl32.AnglesToQuat(t.Rotation.X(), t.Rotation.Y(), t.Rotation.Z(), mgl32.XYZ).Mat4()
	sc := mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())
	return tr.Mul4(rot).Mul4(sc)
}
