package armature

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// vertexStride is the number of floats per vertex: position xyz + normal xyz.
const vertexStride = 6

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max mgl32.Vec3
}

// Center returns the box center.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Corners returns the eight corners of the box.
func (b Bounds) Corners() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}
}

// Mesh owns a GPU vertex buffer (and index buffer for indexed meshes) uploaded
// from interleaved position+normal data. The handles are valid only while the
// GL context that created them is current; Delete must run under that context
// before it is destroyed.
type Mesh struct {
	vao     uint32
	vbo     uint32
	ebo     uint32
	count   int32
	indexed bool
	bounds  Bounds
}

// NewMesh uploads a non-indexed triangle mesh from interleaved
// [x y z nx ny nz] vertex data. An active GL context is required.
func NewMesh(verts []float32) (*Mesh, error) {
	if len(verts) == 0 || len(verts)%vertexStride != 0 {
		return nil, fmt.Errorf("mesh: vertex data length %d is not a positive multiple of %d", len(verts), vertexStride)
	}
	m := &Mesh{
		count:  int32(len(verts) / vertexStride),
		bounds: computeBounds(verts),
	}
	m.upload(verts, nil)
	return m, nil
}

// NewIndexedMesh uploads an indexed triangle mesh. An active GL context is
// required.
func NewIndexedMesh(verts []float32, indices []uint32) (*Mesh, error) {
	if len(verts) == 0 || len(verts)%vertexStride != 0 {
		return nil, fmt.Errorf("mesh: vertex data length %d is not a positive multiple of %d", len(verts), vertexStride)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh: index count %d is not a positive multiple of 3", len(indices))
	}
	m := &Mesh{
		count:   int32(len(indices)),
		indexed: true,
		bounds:  computeBounds(verts),
	}
	m.upload(verts, indices)
	return m, nil
}

func (m *Mesh) upload(verts []float32, indices []uint32) {
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	if indices != nil {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}

	stride := int32(vertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)
}

// Draw issues the draw call for the mesh. No-op after Delete.
func (m *Mesh) Draw() {
	if m.vao == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	if m.indexed {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Bounds returns the local-space bounding box captured at construction.
func (m *Mesh) Bounds() Bounds {
	return m.bounds
}

// Delete releases the GPU buffers. Idempotent; the creating context must be
// current.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

// computeBounds scans interleaved vertex data for the position AABB.
func computeBounds(verts []float32) Bounds {
	b := Bounds{
		Min: mgl32.Vec3{verts[0], verts[1], verts[2]},
		Max: mgl32.Vec3{verts[0], verts[1], verts[2]},
	}
	for i := vertexStride; i < len(verts); i += vertexStride {
		for a := 0; a < 3; a++ {
			v := verts[i+a]
			if v < b.Min[a] {
				b.Min[a] = v
			}
			if v > b.Max[a] {
				b.Max[a] = v
			}
		}
	}
	return b
}
