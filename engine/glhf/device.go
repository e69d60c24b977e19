package glhf

import (
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/pkg/errors"
)

// Program is a bindable shader program with indexed uniforms. *Shader implements it.
type Program interface {
	Begin()
	End()
	SetUniformAttr(uniform int, value interface{}) bool
}

// Mesh is a bindable, drawable vertex array. *VertexSlice implements it.
type Mesh interface {
	Begin()
	Draw()
	End()
}

// Device creates GPU resources and toggles pipeline state. Plugins depend on this interface
// instead of calling GL directly.
type Device interface {
	NewProgram(vertexFmt, uniformFmt AttrFormat, vertexShader, fragmentShader string) (Program, error)
	// NewLineMesh uploads vertices plus an element buffer and draws them as gl.LINES.
	NewLineMesh(program Program, vertices []GlFloat, indices []uint32) (Mesh, error)
	// NewTriangleMesh uploads a flat triangle list.
	NewTriangleMesh(program Program, vertices []GlFloat) (Mesh, error)
	// SetDepthTest enables or disables depth testing and returns the previous state.
	SetDepthTest(enabled bool) bool
}

// GLDevice is the OpenGL implementation of Device. All methods must run on the GL thread.
type GLDevice struct{}

func NewGLDevice() *GLDevice {
	return &GLDevice{}
}

func (d *GLDevice) NewProgram(vertexFmt, uniformFmt AttrFormat, vertexShader, fragmentShader string) (Program, error) {
	shader, err := NewShader(vertexFmt, uniformFmt, vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	return shader, nil
}

func (d *GLDevice) NewLineMesh(program Program, vertices []GlFloat, indices []uint32) (Mesh, error) {
	if len(indices) == 0 || len(indices)%2 != 0 {
		return nil, errors.Errorf("line mesh needs an even, non-zero index count, got %d", len(indices))
	}
	shader, err := asShader(program)
	if err != nil {
		return nil, err
	}
	vertexCount := len(vertices) / (shader.VertexFormat().Size() / SizeOfFloat32)
	slice := MakeIndexedVertexSlice(shader, vertexCount, vertexCount, indices)
	slice.SetPrimitiveType(gl.LINES)
	slice.Begin()
	slice.SetVertexData(vertices)
	slice.End()
	return slice, checkError("line mesh upload")
}

func (d *GLDevice) NewTriangleMesh(program Program, vertices []GlFloat) (Mesh, error) {
	shader, err := asShader(program)
	if err != nil {
		return nil, err
	}
	vertexCount := len(vertices) / (shader.VertexFormat().Size() / SizeOfFloat32)
	slice := MakeVertexSlice(shader, vertexCount, vertexCount)
	slice.Begin()
	slice.SetVertexData(vertices)
	slice.End()
	return slice, checkError("triangle mesh upload")
}

func (d *GLDevice) SetDepthTest(enabled bool) bool {
	previous := gl.IsEnabled(gl.DEPTH_TEST)
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	return previous
}

func asShader(program Program) (*Shader, error) {
	shader, ok := program.(*Shader)
	if !ok {
		return nil, errors.Errorf("program of type %T was not created by this device", program)
	}
	return shader, nil
}

func checkError(stage string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return errors.Errorf("%s: GL error 0x%x", stage, code)
	}
	return nil
}
