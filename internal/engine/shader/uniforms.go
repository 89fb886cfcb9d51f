package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is a table of uniform locations resolved once after linking.
// Setters on a missing or inactive uniform are no-ops.
type Uniforms struct {
	program uint32
	locs    map[string]int32
}

// LookupFunc resolves a uniform name to a location, -1 when absent.
type LookupFunc func(name string) int32

// Resolve builds a table for program, looking up each name exactly once.
func Resolve(program uint32, names ...string) *Uniforms {
	return ResolveWith(program, func(name string) int32 {
		return GetUniform(program, name)
	}, names...)
}

// ResolveWith builds a table using a custom lookup.
func ResolveWith(program uint32, lookup LookupFunc, names ...string) *Uniforms {
	u := &Uniforms{
		program: program,
		locs:    make(map[string]int32, len(names)),
	}
	for _, name := range names {
		if _, ok := u.locs[name]; ok {
			continue
		}
		u.locs[name] = lookup(name)
	}
	return u
}

// Program returns the program the table was resolved against.
func (u *Uniforms) Program() uint32 {
	return u.program
}

// Loc returns the location of name, or -1 if it was never resolved or is inactive.
func (u *Uniforms) Loc(name string) int32 {
	if loc, ok := u.locs[name]; ok {
		return loc
	}
	return -1
}

// Missing lists the resolved names that have no active location.
func (u *Uniforms) Missing() []string {
	var out []string
	for name, loc := range u.locs {
		if loc < 0 {
			out = append(out, name)
		}
	}
	return out
}

// Use makes the program current.
func (u *Uniforms) Use() {
	gl.UseProgram(u.program)
}

func (u *Uniforms) SetMat4(name string, m mgl32.Mat4) {
	if loc := u.Loc(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

func (u *Uniforms) SetMat3(name string, m mgl32.Mat3) {
	if loc := u.Loc(name); loc >= 0 {
		gl.UniformMatrix3fv(loc, 1, false, &m[0])
	}
}

func (u *Uniforms) SetVec3(name string, v mgl32.Vec3) {
	if loc := u.Loc(name); loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (u *Uniforms) SetFloat(name string, f float32) {
	if loc := u.Loc(name); loc >= 0 {
		gl.Uniform1f(loc, f)
	}
}

func (u *Uniforms) SetInt(name string, i int32) {
	if loc := u.Loc(name); loc >= 0 {
		gl.Uniform1i(loc, i)
	}
}

func (u *Uniforms) SetBool(name string, b bool) {
	var i int32
	if b {
		i = 1
	}
	u.SetInt(name, i)
}
