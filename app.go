package main

import (
	"github.com/faiface/mainthread"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxel-outline/engine/glhf"
	"github.com/memmaker/voxel-outline/engine/host"
	"github.com/memmaker/voxel-outline/engine/util"
	"github.com/memmaker/voxel-outline/engine/voxel"
	"github.com/memmaker/voxel-outline/plugins/mesher"
	"github.com/memmaker/voxel-outline/plugins/outline"
	"github.com/memmaker/voxel-outline/plugins/shader"
	"github.com/pkg/errors"
)

const (
	blockStone byte = 1
	blockGrass byte = 2
	// maxPlaceableBlock is the highest ID in the default palette.
	maxPlaceableBlock byte = 6
)

// Viewer is the demo application around the plugin host.
type Viewer struct {
	*util.GlApplication
	game      *host.Game
	camera    *util.FPSCamera
	outline   *outline.Highlighter
	speed     float32
	blockType byte
	timer     *util.Timer

	// highlighted is the last hit reported by the outline, valid while tracking is true.
	highlighted voxel.RayHit
	tracking    bool

	keys         map[glfw.Key]bool
	lastX, lastY float64
	mouseSeen    bool
}

func runViewer(settings Settings, world *voxel.Map) error {
	var viewer *Viewer
	var err error
	mainthread.Call(func() {
		viewer, err = NewViewer(settings, world)
	})
	if err != nil {
		return err
	}
	viewer.Run()
	return nil
}

// NewViewer opens the window, creates the host and installs the shader, mesher and outline
// plugins in that order. It must run on the main thread.
func NewViewer(settings Settings, world *voxel.Map) (*Viewer, error) {
	window, terminate, err := util.InitOpenGL(settings.Window.Title, settings.Window.Width, settings.Window.Height)
	if err != nil {
		return nil, errors.Wrap(err, "open window")
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	camera := util.NewFPSCamera(settings.CameraPosition(), settings.Window.Width, settings.Window.Height, settings.Camera.Sensitivity)
	camera.SetFieldOfView(settings.Camera.FieldOfView)
	camera.SetInvertedY(settings.Camera.InvertY)
	size := world.Size()
	camera.SetLookTarget(mgl32.Vec3{float32(size.X) / 2, 0, float32(size.Z) / 2})

	game, err := newGame(world, camera, glhf.NewGLDevice(), settings)
	if err != nil {
		terminate()
		return nil, err
	}

	v := &Viewer{
		GlApplication: &util.GlApplication{
			Window:        window,
			TerminateFunc: terminate,
			WindowWidth:   settings.Window.Width,
			WindowHeight:  settings.Window.Height,
			Title:         settings.Window.Title,
			ClearColor:    settings.Window.ClearColor,
		},
		game:      game,
		camera:    camera,
		speed:     settings.Camera.Speed,
		blockType: blockStone,
		timer:     util.NewTimer(),
		keys:      make(map[glfw.Key]bool),
	}
	found, _ := game.Plugins().Get(outline.Name)
	v.outline = found.(*outline.Highlighter)
	v.outline.OnHighlight(func(hl outline.Highlight) {
		v.highlighted = hl.Hit
		v.tracking = true
	})
	v.outline.OnRemove(func(voxel.Int3) {
		v.tracking = false
	})

	v.UpdateFunc = v.Update
	v.DrawFunc = v.Draw
	v.KeyHandler = v.handleKeyEvents
	v.MousePosHandler = v.handleMousePosEvents
	v.MouseButtonHandler = v.handleMouseButtonEvents
	v.Attach()

	game.InitGraphics()
	util.LogSystemInfo("plugins: %v", game.Plugins().Names())
	return v, nil
}

// newGame creates the host and its plugins. Registration order is render order.
func newGame(world *voxel.Map, camera util.Camera, device glhf.Device, settings Settings) (*host.Game, error) {
	game := host.NewGame(world, camera, device)
	game.SetReach(settings.Camera.Reach)
	if _, err := shader.New(game); err != nil {
		return nil, err
	}
	if _, err := mesher.New(game); err != nil {
		return nil, err
	}
	if _, err := outline.New(game, settings.Outline); err != nil {
		return nil, err
	}
	return game, nil
}

func (v *Viewer) Update(elapsed float64) {
	stop := v.timer.Start("update")
	v.moveCamera(float32(elapsed))
	v.game.Tick(elapsed)
	stop()
}

func (v *Viewer) Draw(elapsed float64) {
	stop := v.timer.Start("render")
	v.game.Render(elapsed)
	stop()
}

func (v *Viewer) moveCamera(elapsed float32) {
	var dir [2]int
	if v.keys[glfw.KeyW] {
		dir[1]++
	}
	if v.keys[glfw.KeyS] {
		dir[1]--
	}
	if v.keys[glfw.KeyD] {
		dir[0]++
	}
	if v.keys[glfw.KeyA] {
		dir[0]--
	}
	delta := v.speed * elapsed
	if dir != [2]int{} {
		v.camera.MoveInDirection(delta, dir)
	}
	if v.keys[glfw.KeySpace] {
		v.camera.MoveUp(delta)
	}
	if v.keys[glfw.KeyLeftShift] {
		v.camera.MoveUp(-delta)
	}
}

func (v *Viewer) handleKeyEvents(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		v.keys[key] = true
	case glfw.Release:
		v.keys[key] = false
		return
	default:
		return
	}

	switch {
	case key == glfw.KeyEscape:
		v.Window.SetShouldClose(true)
	case key == glfw.KeyO:
		v.toggleOutline()
	case key == glfw.KeyF3:
		util.LogSystemInfo("frame timings\n%s", v.timer)
		v.timer.Reset()
	case key >= glfw.Key1 && key <= glfw.Key1+glfw.Key(maxPlaceableBlock-1):
		v.blockType = byte(key-glfw.Key1) + 1
		util.LogSystemInfo("placing block type %d", v.blockType)
	}
}

func (v *Viewer) toggleOutline() {
	if v.outline.Enabled() {
		v.outline.Disable()
		v.tracking = false
	} else {
		v.outline.Enable()
	}
}

func (v *Viewer) handleMousePosEvents(xpos float64, ypos float64) {
	if !v.mouseSeen {
		v.lastX, v.lastY = xpos, ypos
		v.mouseSeen = true
		return
	}
	dx, dy := xpos-v.lastX, ypos-v.lastY
	v.lastX, v.lastY = xpos, ypos
	v.camera.ChangeAngles(float32(dx), float32(dy))
}

func (v *Viewer) handleMouseButtonEvents(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch button {
	case glfw.MouseButtonLeft:
		v.removeHighlightedBlock()
	case glfw.MouseButtonRight:
		v.placeBlock()
	}
}

func (v *Viewer) removeHighlightedBlock() {
	if !v.tracking {
		return
	}
	pos := v.highlighted.Voxel
	if !v.game.World().IsSolidBlockAt(pos.X, pos.Y, pos.Z) {
		return
	}
	v.game.World().SetBlock(pos.X, pos.Y, pos.Z, voxel.NewAirBlock())
	util.LogVoxelDebug("removed block at %v", pos)
}

func (v *Viewer) placeBlock() {
	if !v.tracking || v.highlighted.Side == voxel.Inside {
		return
	}
	pos := v.highlighted.Previous
	if v.game.World().IsSolidBlockAt(pos.X, pos.Y, pos.Z) {
		return
	}
	if v.game.World().SetBlock(pos.X, pos.Y, pos.Z, voxel.NewBlock(v.blockType)) {
		util.LogVoxelDebug("placed block %d at %v", v.blockType, pos)
	}
}
