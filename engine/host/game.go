package host

import (
	"github.com/memmaker/voxel-outline/engine/glhf"
	"github.com/memmaker/voxel-outline/engine/util"
	"github.com/memmaker/voxel-outline/engine/voxel"
)

// DefaultReach is how far, in voxels, the player can target blocks.
const DefaultReach = 8

// Game is the host object handed to plugins.
type Game struct {
	plugins *Registry
	shell   *Shell
	device  glhf.Device
	world   *voxel.Map
	camera  util.Camera
	reach   float32
	glReady bool
}

func NewGame(world *voxel.Map, camera util.Camera, device glhf.Device) *Game {
	return &Game{
		plugins: NewRegistry(),
		shell:   NewShell(),
		device:  device,
		world:   world,
		camera:  camera,
		reach:   DefaultReach,
	}
}

func (g *Game) Plugins() *Registry {
	return g.plugins
}

func (g *Game) Shell() *Shell {
	return g.shell
}

func (g *Game) Device() glhf.Device {
	return g.device
}

func (g *Game) World() *voxel.Map {
	return g.world
}

func (g *Game) Camera() util.Camera {
	return g.camera
}

func (g *Game) SetReach(reach float32) {
	g.reach = reach
}

// RaycastVoxels casts the crosshair ray from the camera into the world.
func (g *Game) RaycastVoxels() (voxel.RayHit, bool) {
	rayStart, rayEnd := util.GetCenterRay(g.camera, g.reach)
	return g.world.Raycast(rayStart, rayEnd)
}

// InitGraphics emits gl-init. Only the first call has an effect.
func (g *Game) InitGraphics() {
	if g.glReady {
		return
	}
	g.glReady = true
	g.shell.Emit(EventGLInit, 0)
}

func (g *Game) GraphicsReady() bool {
	return g.glReady
}

func (g *Game) Tick(dt float64) {
	g.shell.Emit(EventTick, dt)
}

func (g *Game) Render(dt float64) {
	g.shell.Emit(EventGLRender, dt)
}
