// Package shader is the voxel-shader plugin. It owns the world program and publishes the camera
// matrices that every other renderer reads during gl-render.
package shader

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxel-outline/engine/glhf"
	"github.com/memmaker/voxel-outline/engine/host"
	"github.com/memmaker/voxel-outline/engine/util"
	"github.com/pkg/errors"
)

const Name = "voxel-shader"

var (
	//go:embed glsl/chunk.vert
	chunkVertexShaderSource string

	//go:embed glsl/chunk.frag
	chunkFragmentShaderSource string
)

// Uniform indices of the world program.
const (
	UniformProjection = iota
	UniformView
	UniformModel
	UniformLightDirection
	UniformAmbient
)

var (
	VertexFormat = glhf.AttrFormat{
		{Name: "position", Type: glhf.Vec3},
		{Name: "normal", Type: glhf.Vec3},
		{Name: "color", Type: glhf.Vec3},
	}
	UniformFormat = glhf.AttrFormat{
		{Name: "projection", Type: glhf.Mat4},
		{Name: "view", Type: glhf.Mat4},
		{Name: "model", Type: glhf.Mat4},
		{Name: "light_direction", Type: glhf.Vec3},
		{Name: "ambient", Type: glhf.Vec3},
	}
)

// Host is the part of the game the shader plugin needs.
type Host interface {
	Plugins() *host.Registry
	Shell() *host.Shell
	Device() glhf.Device
	GraphicsReady() bool
	Camera() util.Camera
}

// Plugin refreshes the projection and view matrices from the camera at the start of every frame.
// It must be enabled before any plugin that reads the matrices, so that its gl-render handler
// runs first.
type Plugin struct {
	game             Host
	projectionMatrix mgl32.Mat4
	viewMatrix       mgl32.Mat4
	program          glhf.Program
	LightDirection   mgl32.Vec3
	Ambient          mgl32.Vec3
	onInit           host.Subscription
	onRender         host.Subscription
	enabled          bool
}

// New creates the plugin, registers it as "voxel-shader" and enables it.
func New(game Host) (*Plugin, error) {
	if game.Camera() == nil {
		return nil, errors.New("voxel-shader requires a camera")
	}
	p := &Plugin{
		game:           game,
		LightDirection: mgl32.Vec3{-0.4, -1, -0.3},
		Ambient:        mgl32.Vec3{0.45, 0.45, 0.45},
	}
	p.updateMatrices()
	if err := game.Plugins().Register(Name, p); err != nil {
		return nil, err
	}
	p.Enable()
	return p, nil
}

func (p *Plugin) Enable() {
	if p.enabled {
		return
	}
	p.enabled = true
	p.onInit = p.game.Shell().On(host.EventGLInit, p.shaderInit)
	p.onRender = p.game.Shell().On(host.EventGLRender, p.render)
	if p.game.GraphicsReady() {
		p.shaderInit(0)
	}
}

func (p *Plugin) Disable() {
	if !p.enabled {
		return
	}
	p.enabled = false
	p.game.Shell().RemoveListener(p.onInit)
	p.game.Shell().RemoveListener(p.onRender)
}

func (p *Plugin) ProjectionMatrix() mgl32.Mat4 {
	return p.projectionMatrix
}

func (p *Plugin) ViewMatrix() mgl32.Mat4 {
	return p.viewMatrix
}

// Program is the world program, nil until gl-init.
func (p *Plugin) Program() glhf.Program {
	return p.program
}

func (p *Plugin) shaderInit(float64) {
	if p.program != nil {
		return
	}
	program, err := p.game.Device().NewProgram(VertexFormat, UniformFormat, chunkVertexShaderSource, chunkFragmentShaderSource)
	if err != nil {
		util.LogGlError("voxel-shader: %v", errors.Wrap(err, "compile world program"))
		return
	}
	p.program = program
	util.LogPluginDebug("voxel-shader: world program ready")
}

func (p *Plugin) render(float64) {
	p.updateMatrices()
}

func (p *Plugin) updateMatrices() {
	camera := p.game.Camera()
	p.projectionMatrix = camera.GetProjectionMatrix()
	p.viewMatrix = camera.GetViewMatrix()
}

// BindWorldProgram binds the world program and sets the per-frame uniforms. The caller must End
// the returned program. It returns nil before gl-init.
func (p *Plugin) BindWorldProgram(model mgl32.Mat4) glhf.Program {
	if p.program == nil {
		return nil
	}
	p.program.Begin()
	p.program.SetUniformAttr(UniformProjection, p.projectionMatrix)
	p.program.SetUniformAttr(UniformView, p.viewMatrix)
	p.program.SetUniformAttr(UniformModel, model)
	p.program.SetUniformAttr(UniformLightDirection, p.LightDirection)
	p.program.SetUniformAttr(UniformAmbient, p.Ambient)
	return p.program
}
