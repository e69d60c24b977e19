package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxel-outline/engine/glhf/glhftest"
	"github.com/memmaker/voxel-outline/engine/util"
	"github.com/memmaker/voxel-outline/engine/voxel"
	"github.com/memmaker/voxel-outline/plugins/mesher"
	"github.com/memmaker/voxel-outline/plugins/outline"
	"github.com/memmaker/voxel-outline/plugins/shader"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHeadlessViewer builds a viewer without a window, looking straight down at (4,0,4).
func newHeadlessViewer(t *testing.T) (*Viewer, *glhftest.Device) {
	settings := DefaultSettings()
	settings.World = WorldSettings{Width: 8, Height: 4, Depth: 8}
	world := generateWorld(settings.World)
	camera := util.NewFPSCamera(mgl32.Vec3{4.5, 3.5, 4.5}, 640, 480, 0.1)
	camera.SetLookTarget(mgl32.Vec3{4.5, 0.5, 4.5})
	device := glhftest.NewDevice()

	game, err := newGame(world, camera, device, settings)
	require.NoError(t, err)
	assert.Equal(t, []string{mesher.Name, outline.Name, shader.Name}, game.Plugins().Names())

	found, ok := game.Plugins().Get(outline.Name)
	require.True(t, ok)
	v := &Viewer{game: game, camera: camera, blockType: 5, timer: util.NewTimer(), outline: found.(*outline.Highlighter)}
	v.outline.OnHighlight(func(hl outline.Highlight) {
		v.highlighted = hl.Hit
		v.tracking = true
	})
	v.outline.OnRemove(func(voxel.Int3) { v.tracking = false })
	game.InitGraphics()
	return v, device
}

func TestViewerRemovesAndPlacesBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, util.TraceKeys()...)
	defer teardown()

	v, device := newHeadlessViewer(t)
	world := v.game.World()

	v.Update(0.016)
	v.Draw(0.016)
	require.True(t, v.tracking)
	assert.Equal(t, voxel.Int3{X: 4, Z: 4}, v.highlighted.Voxel)
	assert.Equal(t, 2, device.DrawCalls)

	v.placeBlock()
	assert.Equal(t, voxel.NewBlock(5), *world.GetGlobalBlock(4, 1, 4))

	v.Update(0.2)
	assert.Equal(t, voxel.Int3{X: 4, Y: 1, Z: 4}, v.highlighted.Voxel)

	v.removeHighlightedBlock()
	assert.True(t, world.GetGlobalBlock(4, 1, 4).IsAir())
	v.Update(0.2)
	assert.Equal(t, voxel.Int3{X: 4, Z: 4}, v.highlighted.Voxel)

	v.removeHighlightedBlock()
	v.Update(0.2)
	assert.False(t, v.tracking)
	v.removeHighlightedBlock()
	v.placeBlock()
	assert.True(t, world.GetGlobalBlock(4, 0, 4).IsAir())
}

func TestViewerToggleOutline(t *testing.T) {
	v, device := newHeadlessViewer(t)
	v.Update(0.016)
	require.True(t, v.tracking)

	v.toggleOutline()
	assert.False(t, v.outline.Enabled())
	assert.False(t, v.tracking)
	v.Draw(0.016)
	assert.Equal(t, 1, device.DrawCalls)

	v.toggleOutline()
	v.Update(0.016)
	v.Draw(0.016)
	assert.True(t, v.tracking)
	assert.Equal(t, 3, device.DrawCalls)
}

func TestGeneratedWorldIsDeterministic(t *testing.T) {
	settings := DefaultSettings().World
	a, b := generateWorld(settings), generateWorld(settings)
	var bufA, bufB bytes.Buffer
	require.NoError(t, a.Save(&bufA))
	require.NoError(t, b.Save(&bufB))
	assert.Equal(t, bufA.Bytes(), bufB.Bytes())
	assert.True(t, a.IsSolidBlockAt(0, 1, 0))
	assert.Greater(t, countSolid(a), int(settings.Width*settings.Depth))
}

func TestBuildWorldSources(t *testing.T) {
	settings := WorldSettings{Width: 4, Height: 2, Depth: 4}
	generated, err := buildWorld(settings, "", "")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "world.vxm")
	require.NoError(t, generated.SaveToFile(path))
	loaded, err := buildWorld(settings, path, "")
	require.NoError(t, err)
	assert.Equal(t, generated.Size(), loaded.Size())
	assert.Equal(t, countSolid(generated), countSolid(loaded))

	_, err = buildWorld(settings, path, path)
	assert.Error(t, err)

	garbage := filepath.Join(t.TempDir(), "garbage.schematic")
	require.NoError(t, os.WriteFile(garbage, []byte("not nbt"), 0o644))
	_, err = buildWorld(settings, "", garbage)
	assert.Error(t, err)
}
