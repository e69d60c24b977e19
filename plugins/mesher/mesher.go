// Package mesher is the voxel-mesher plugin. It turns the block grid into one triangle mesh and
// draws it with the world program of the voxel-shader plugin.
package mesher

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxel-outline/engine/glhf"
	"github.com/memmaker/voxel-outline/engine/host"
	"github.com/memmaker/voxel-outline/engine/util"
	"github.com/memmaker/voxel-outline/engine/voxel"
	"github.com/memmaker/voxel-outline/plugins/shader"
	"github.com/pkg/errors"
)

const Name = "voxel-mesher"

// WorldProgram is implemented by the voxel-shader plugin.
type WorldProgram interface {
	Program() glhf.Program
	BindWorldProgram(model mgl32.Mat4) glhf.Program
}

// Host is the part of the game the mesher needs.
type Host interface {
	Plugins() *host.Registry
	Shell() *host.Shell
	Device() glhf.Device
	GraphicsReady() bool
	World() *voxel.Map
}

type Plugin struct {
	game         Host
	shader       WorldProgram
	Palette      Palette
	mesh         glhf.Mesh
	builtVersion uint64
	faceCount    int
	glReady      bool
	enabled      bool
	onInit       host.Subscription
	onRender     host.Subscription
}

// New resolves the voxel-shader plugin, registers the mesher as "voxel-mesher" and enables it.
func New(game Host) (*Plugin, error) {
	found, ok := game.Plugins().Get(shader.Name)
	if !ok {
		return nil, errors.New("voxel-mesher requires voxel-shader")
	}
	worldProgram, ok := found.(WorldProgram)
	if !ok {
		return nil, errors.Errorf("voxel-shader plugin of type %T cannot bind the world program", found)
	}
	p := &Plugin{
		game:    game,
		shader:  worldProgram,
		Palette: DefaultPalette(),
	}
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
	p.onInit = p.game.Shell().On(host.EventGLInit, p.meshInit)
	p.onRender = p.game.Shell().On(host.EventGLRender, p.render)
	if p.game.GraphicsReady() {
		p.meshInit(0)
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

func (p *Plugin) FaceCount() int {
	return p.faceCount
}

// Rebuild regenerates the world mesh. It needs the world program, so it fails before gl-init.
func (p *Plugin) Rebuild() error {
	program := p.shader.Program()
	if program == nil {
		return errors.New("world program is not compiled yet")
	}
	world := p.game.World()
	vertices := BuildFaces(world, p.Palette)
	mesh, err := p.game.Device().NewTriangleMesh(program, vertices)
	if err != nil {
		return errors.Wrap(err, "upload world mesh")
	}
	p.mesh = mesh
	p.builtVersion = world.Version()
	p.faceCount = len(vertices) / (FloatsPerVertex * VerticesPerFace)
	util.LogVoxelDebug("voxel-mesher: %d faces at world version %d", p.faceCount, p.builtVersion)
	return nil
}

func (p *Plugin) meshInit(float64) {
	p.glReady = true
	if p.mesh != nil {
		return
	}
	if err := p.Rebuild(); err != nil {
		util.LogVoxelError("voxel-mesher: %v", err)
	}
}

func (p *Plugin) render(float64) {
	if !p.glReady {
		return
	}
	if p.mesh == nil || p.builtVersion != p.game.World().Version() {
		if err := p.Rebuild(); err != nil {
			util.LogVoxelError("voxel-mesher: %v", err)
			return
		}
	}
	program := p.shader.BindWorldProgram(mgl32.Ident4())
	if program == nil {
		return
	}
	p.mesh.Begin()
	p.mesh.Draw()
	p.mesh.End()
	program.End()
}
