// Package glhftest provides a recording glhf.Device for tests that must not touch OpenGL.
package glhftest

import (
	"github.com/memmaker/voxel-outline/engine/glhf"
	"github.com/pkg/errors"
)

type Program struct {
	VertexFormat   glhf.AttrFormat
	UniformFormat  glhf.AttrFormat
	VertexSource   string
	FragmentSource string
	Bound          bool
	Begins         int
	// Uniforms holds the last value set per uniform index.
	Uniforms map[int]interface{}
}

func (p *Program) Begin() {
	p.Bound = true
	p.Begins++
}

func (p *Program) End() {
	p.Bound = false
}

func (p *Program) SetUniformAttr(uniform int, value interface{}) bool {
	if !p.Bound {
		panic("uniform set on unbound program")
	}
	if uniform < 0 || uniform >= len(p.UniformFormat) {
		return false
	}
	p.Uniforms[uniform] = value
	return true
}

type Mesh struct {
	device    *Device
	Program   *Program
	Lines     bool
	Vertices  []glhf.GlFloat
	Indices   []uint32
	Bound     bool
	DrawCalls int
}

func (m *Mesh) Begin() {
	m.Bound = true
}

func (m *Mesh) Draw() {
	if !m.Bound {
		panic("draw on unbound mesh")
	}
	if !m.Program.Bound {
		panic("draw without bound program")
	}
	m.DrawCalls++
	m.device.DrawCalls++
	m.device.DepthTestAtDraw = append(m.device.DepthTestAtDraw, m.device.DepthTest)
}

func (m *Mesh) End() {
	m.Bound = false
}

// Device records everything created through it.
type Device struct {
	Programs  []*Program
	Meshes    []*Mesh
	DepthTest bool
	// DepthTestAtDraw holds the depth test state of every draw call in order.
	DepthTestAtDraw []bool
	DrawCalls       int
	// FailPrograms makes NewProgram return an error.
	FailPrograms bool
}

func NewDevice() *Device {
	return &Device{DepthTest: true}
}

func (d *Device) NewProgram(vertexFmt, uniformFmt glhf.AttrFormat, vertexShader, fragmentShader string) (glhf.Program, error) {
	if d.FailPrograms {
		return nil, errors.New("compile error")
	}
	p := &Program{
		VertexFormat:   vertexFmt,
		UniformFormat:  uniformFmt,
		VertexSource:   vertexShader,
		FragmentSource: fragmentShader,
		Uniforms:       make(map[int]interface{}),
	}
	d.Programs = append(d.Programs, p)
	return p, nil
}

func (d *Device) NewLineMesh(program glhf.Program, vertices []glhf.GlFloat, indices []uint32) (glhf.Mesh, error) {
	return d.newMesh(program, vertices, indices, true)
}

func (d *Device) NewTriangleMesh(program glhf.Program, vertices []glhf.GlFloat) (glhf.Mesh, error) {
	return d.newMesh(program, vertices, nil, false)
}

func (d *Device) newMesh(program glhf.Program, vertices []glhf.GlFloat, indices []uint32, lines bool) (glhf.Mesh, error) {
	p, ok := program.(*Program)
	if !ok {
		return nil, errors.Errorf("foreign program %T", program)
	}
	m := &Mesh{
		device:   d,
		Program:  p,
		Lines:    lines,
		Vertices: append([]glhf.GlFloat(nil), vertices...),
		Indices:  append([]uint32(nil), indices...),
	}
	d.Meshes = append(d.Meshes, m)
	return m, nil
}

func (d *Device) SetDepthTest(enabled bool) bool {
	previous := d.DepthTest
	d.DepthTest = enabled
	return previous
}
