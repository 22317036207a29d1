package armature

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader wraps a compiled and linked GL program built from a vertex and a
// fragment source file. Uniform locations are cached by name; setting a
// uniform the program does not declare is a no-op, so shared shaders can carry
// optional uniforms.
//
// A Shader is bound to the GL context that was current at construction. All
// methods require that context to be current.
type Shader struct {
	handle   uint32
	name     string
	uniforms map[string]int32
}

// loadShaderSource reads a GLSL source file and null-terminates it for the GL
// API. Runs before any GL call so a missing file fails cleanly with no context
// required.
func loadShaderSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader source: %w", err)
	}
	return string(b) + "\x00", nil
}

// NewShader compiles and links a program from the given vertex and fragment
// shader files. Compile and link failures return an error carrying the GL
// info log; the caller logs it and leaves the affected pass inert.
func NewShader(name, vertPath, fragPath string) (*Shader, error) {
	vertSrc, err := loadShaderSource(vertPath)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", name, err)
	}
	fragSrc, err := loadShaderSource(fragPath)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", name, err)
	}

	vert, err := compileStage(vertSrc, gl.VERTEX_SHADER, vertPath)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", name, err)
	}
	frag, err := compileStage(fragSrc, gl.FRAGMENT_SHADER, fragPath)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, fmt.Errorf("shader %s: %w", name, err)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vert)
	gl.AttachShader(handle, frag)
	gl.LinkProgram(handle)

	// Stage objects are owned by the program after linking.
	gl.DetachShader(handle, vert)
	gl.DetachShader(handle, frag)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(handle, logLen, nil, gl.Str(infoLog))
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("shader %s: link failed: %v", name, strings.TrimRight(infoLog, "\x00"))
	}

	return &Shader{
		handle:   handle,
		name:     name,
		uniforms: make(map[string]int32),
	}, nil
}

// compileStage compiles one shader stage and returns its GL handle.
func compileStage(src string, typ uint32, path string) (uint32, error) {
	handle := gl.CreateShader(typ)
	csources, free := gl.Strs(src)
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(handle, logLen, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("compile %s: %v", path, strings.TrimRight(infoLog, "\x00"))
	}
	return handle, nil
}

// Use binds the program as current.
func (s *Shader) Use() {
	gl.UseProgram(s.handle)
}

// location resolves and caches a uniform location. Unknown names cache -1 and
// every setter treats -1 as a no-op.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.handle, gl.Str(name+"\x00"))
	s.uniforms[name] = loc
	return loc
}

// SetMat4 sets a mat4 uniform by name.
func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	if loc := s.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// SetVec3 sets a vec3 uniform by name.
func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform3f(loc, v.X(), v.Y(), v.Z())
	}
}

// SetVec4 sets a vec4 uniform by name.
func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform4f(loc, v.X(), v.Y(), v.Z(), v.W())
	}
}

// SetFloat sets a float uniform by name.
func (s *Shader) SetFloat(name string, v float32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

// SetInt sets an int uniform by name.
func (s *Shader) SetInt(name string, v int32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

// SetBool sets a bool uniform by name (as 0/1).
func (s *Shader) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	s.SetInt(name, i)
}

// SetFloatArray sets a float[] uniform by name.
func (s *Shader) SetFloatArray(name string, vals []float32) {
	if len(vals) == 0 {
		return
	}
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1fv(loc, int32(len(vals)), &vals[0])
	}
}

// SetVec3Array sets a vec3[] uniform by name.
func (s *Shader) SetVec3Array(name string, vals []mgl32.Vec3) {
	if len(vals) == 0 {
		return
	}
	if loc := s.location(name); loc >= 0 {
		gl.Uniform3fv(loc, int32(len(vals)), &vals[0][0])
	}
}

// Delete releases the GL program. Safe to call more than once; the context
// that created the shader must be current.
func (s *Shader) Delete() {
	if s.handle != 0 {
		gl.DeleteProgram(s.handle)
		s.handle = 0
	}
}
