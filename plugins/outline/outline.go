// Package outline is the voxel-outline plugin. It tracks the voxel under the crosshair and draws a
// wireframe cube around it once per frame.
package outline

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxel-outline/engine/glhf"
	"github.com/memmaker/voxel-outline/engine/host"
	"github.com/memmaker/voxel-outline/engine/util"
	"github.com/memmaker/voxel-outline/engine/voxel"
	"github.com/memmaker/voxel-outline/plugins/mesher"
	"github.com/memmaker/voxel-outline/plugins/shader"
	"github.com/pkg/errors"
)

const Name = "voxel-outline"

var (
	//go:embed glsl/outline.vert
	outlineVertexShaderSource string

	//go:embed glsl/outline.frag
	outlineFragmentShaderSource string
)

const (
	uniformProjection = iota
	uniformView
	uniformModel
	uniformColor
)

var (
	vertexFormat = glhf.AttrFormat{
		{Name: "position", Type: glhf.Vec3},
	}
	uniformFormat = glhf.AttrFormat{
		{Name: "projection", Type: glhf.Mat4},
		{Name: "view", Type: glhf.Mat4},
		{Name: "model", Type: glhf.Mat4},
		{Name: "drawColor", Type: glhf.Vec4},
	}
)

var (
	ErrMissingMesher = errors.New("voxel-outline requires " + mesher.Name)
	ErrMissingShader = errors.New("voxel-outline requires " + shader.Name)
)

// CameraMatrices is what the outline needs from the shader plugin.
type CameraMatrices interface {
	ProjectionMatrix() mgl32.Mat4
	ViewMatrix() mgl32.Mat4
}

// Host is the part of the game the outline needs.
type Host interface {
	Plugins() *host.Registry
	Shell() *host.Shell
	Device() glhf.Device
	GraphicsReady() bool
	RaycastVoxels() (voxel.RayHit, bool)
}

// Highlight is sent when a new voxel becomes the target.
type Highlight struct {
	Target voxel.Int3
	Hit    voxel.RayHit
}

type Highlighter struct {
	game   Host
	camera CameraMatrices
	config Config

	target      voxel.Int3
	hasTarget   bool
	modelMatrix mgl32.Mat4

	program glhf.Program
	mesh    glhf.Mesh

	enabled  bool
	throttle *util.Throttle
	onInit   host.Subscription
	onRender host.Subscription
	onTick   host.Subscription

	highlighted host.Signal[Highlight]
	removed     host.Signal[voxel.Int3]
}

// New resolves the mesher and shader plugins, registers the highlighter as "voxel-outline" and
// enables it.
func New(game Host, cfg Config) (*Highlighter, error) {
	if _, ok := game.Plugins().Get(mesher.Name); !ok {
		return nil, errors.WithStack(ErrMissingMesher)
	}
	found, ok := game.Plugins().Get(shader.Name)
	if !ok {
		return nil, errors.WithStack(ErrMissingShader)
	}
	camera, ok := found.(CameraMatrices)
	if !ok {
		return nil, errors.Wrapf(ErrMissingShader, "plugin of type %T has no camera matrices", found)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "voxel-outline config")
	}

	h := &Highlighter{
		game:        game,
		camera:      camera,
		config:      cfg.withDefaults(),
		modelMatrix: mgl32.Ident4(),
	}
	if err := game.Plugins().Register(Name, h); err != nil {
		return nil, err
	}
	h.Enable()
	return h, nil
}

func (h *Highlighter) Enable() {
	if h.enabled {
		return
	}
	h.enabled = true
	h.throttle = util.NewThrottle(h.config.throttleInterval(), h.tick)
	shell := h.game.Shell()
	h.onInit = shell.On(host.EventGLInit, h.shaderInit)
	h.onRender = shell.On(host.EventGLRender, h.render)
	h.onTick = shell.On(host.EventTick, func(dt float64) { h.throttle.Tick(dt) })
	if h.game.GraphicsReady() {
		h.shaderInit(0)
	}
}

// Disable unsubscribes from the shell and forgets the target. GPU resources are kept for a later
// Enable.
func (h *Highlighter) Disable() {
	if !h.enabled {
		return
	}
	h.enabled = false
	shell := h.game.Shell()
	shell.RemoveListener(h.onTick)
	shell.RemoveListener(h.onRender)
	shell.RemoveListener(h.onInit)
	h.hasTarget = false
	h.target = voxel.Int3{}
}

func (h *Highlighter) Enabled() bool {
	return h.enabled
}

func (h *Highlighter) Config() Config {
	return h.config
}

// Target returns the voxel under the crosshair, if any.
func (h *Highlighter) Target() (voxel.Int3, bool) {
	return h.target, h.hasTarget
}

func (h *Highlighter) ModelMatrix() mgl32.Mat4 {
	return h.modelMatrix
}

// OnHighlight is called with every new target.
func (h *Highlighter) OnHighlight(fn func(Highlight)) host.Handle {
	return h.highlighted.Connect(fn)
}

func (h *Highlighter) RemoveHighlightListener(handle host.Handle) bool {
	return h.highlighted.Disconnect(handle)
}

// OnRemove is called with the previous target whenever it stops being the target.
func (h *Highlighter) OnRemove(fn func(voxel.Int3)) host.Handle {
	return h.removed.Connect(fn)
}

func (h *Highlighter) RemoveRemoveListener(handle host.Handle) bool {
	return h.removed.Disconnect(handle)
}

func (h *Highlighter) tick() {
	hit, ok := h.game.RaycastVoxels()
	if !ok {
		if h.hasTarget {
			h.removed.Emit(h.target)
			h.hasTarget = false
			h.target = voxel.Int3{}
		}
		return
	}

	if h.hasTarget && hit.Voxel == h.target {
		return
	}

	h.modelMatrix = ModelMatrix(hit.Voxel, h.config.SwapXZ)
	if h.hasTarget {
		h.removed.Emit(h.target)
	}
	h.target = hit.Voxel
	h.hasTarget = true
	util.LogPluginDebug("voxel-outline: target %v", hit.Voxel)
	h.highlighted.Emit(Highlight{Target: hit.Voxel, Hit: hit})
}

func (h *Highlighter) render(float64) {
	if !h.config.ShowOutline || !h.hasTarget || h.mesh == nil {
		return
	}

	device := h.game.Device()
	if h.config.ShowThrough {
		depthTest := device.SetDepthTest(false)
		if h.config.RestoreDepthTest {
			defer device.SetDepthTest(depthTest)
		}
	}

	h.program.Begin()
	h.program.SetUniformAttr(uniformProjection, h.camera.ProjectionMatrix())
	h.program.SetUniformAttr(uniformView, h.camera.ViewMatrix())
	h.program.SetUniformAttr(uniformModel, h.modelMatrix)
	h.program.SetUniformAttr(uniformColor, h.config.Color.Vec4())
	h.mesh.Begin()
	h.mesh.Draw()
	h.mesh.End()
	h.program.End()
}

func (h *Highlighter) shaderInit(float64) {
	if h.mesh != nil {
		return
	}
	device := h.game.Device()
	program, err := device.NewProgram(vertexFormat, uniformFormat, outlineVertexShaderSource, outlineFragmentShaderSource)
	if err != nil {
		util.LogGlError("voxel-outline: %v", errors.Wrap(err, "compile outline program"))
		return
	}
	mesh, err := device.NewLineMesh(program, CubeVertices(), CubeIndices())
	if err != nil {
		util.LogGlError("voxel-outline: %v", errors.Wrap(err, "upload outline mesh"))
		return
	}
	h.program = program
	h.mesh = mesh
	util.LogPluginDebug("voxel-outline: %d edges uploaded", len(cubeEdges)/2)
}
