package mesher

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxel-outline/engine/glhf"
	"github.com/memmaker/voxel-outline/engine/glhf/glhftest"
	"github.com/memmaker/voxel-outline/engine/host"
	"github.com/memmaker/voxel-outline/engine/util"
	"github.com/memmaker/voxel-outline/engine/voxel"
	"github.com/memmaker/voxel-outline/plugins/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func faceCount(vertices []glhf.GlFloat) int {
	return len(vertices) / (FloatsPerVertex * VerticesPerFace)
}

func TestSingleBlockHasSixFaces(t *testing.T) {
	world := voxel.NewMap(3, 3, 3)
	world.SetBlock(1, 1, 1, voxel.NewBlock(1))
	assert.Equal(t, 6, faceCount(BuildFaces(world, DefaultPalette())))
}

func TestSharedFacesAreCulled(t *testing.T) {
	world := voxel.NewMap(3, 3, 3)
	world.SetBlock(0, 0, 0, voxel.NewBlock(1))
	world.SetBlock(1, 0, 0, voxel.NewBlock(2))
	assert.Equal(t, 10, faceCount(BuildFaces(world, DefaultPalette())))

	world.FillBox(voxel.Int3{}, voxel.Int3{X: 2, Y: 2, Z: 2}, voxel.NewBlock(1))
	// only the outer shell of a full 3x3x3 cube is visible
	assert.Equal(t, 6*9, faceCount(BuildFaces(world, DefaultPalette())))
}

func TestFacesWindCounterClockwiseFromOutside(t *testing.T) {
	world := voxel.NewMap(1, 1, 1)
	world.SetBlock(0, 0, 0, voxel.NewBlock(1))
	vertices := BuildFaces(world, DefaultPalette())
	for tri := 0; tri < len(vertices)/(FloatsPerVertex*3); tri++ {
		var p [3]mgl32.Vec3
		for v := 0; v < 3; v++ {
			base := (tri*3 + v) * FloatsPerVertex
			p[v] = mgl32.Vec3{float32(vertices[base]), float32(vertices[base+1]), float32(vertices[base+2])}
		}
		base := tri * 3 * FloatsPerVertex
		normal := mgl32.Vec3{float32(vertices[base+3]), float32(vertices[base+4]), float32(vertices[base+5])}
		winding := p[1].Sub(p[0]).Cross(p[2].Sub(p[0]))
		assert.Greater(t, winding.Dot(normal), float32(0), "triangle %d", tri)
	}
}

func TestPaletteFallback(t *testing.T) {
	palette := DefaultPalette()
	assert.Equal(t, palette[2], palette.Color(2))
	unknown := palette.Color(200)
	assert.Equal(t, unknown.X(), unknown.Y())
}

func newGame(t *testing.T) (*host.Game, *glhftest.Device) {
	world := voxel.NewMap(4, 4, 4)
	world.SetFloorAtHeight(0, voxel.NewBlock(1))
	device := glhftest.NewDevice()
	game := host.NewGame(world, util.NewFPSCamera(mgl32.Vec3{2, 3, 6}, 640, 480, 0.1), device)
	_, err := shader.New(game)
	require.NoError(t, err)
	return game, device
}

func TestMesherRequiresShaderPlugin(t *testing.T) {
	game := host.NewGame(voxel.NewMap(1, 1, 1), util.NewFPSCamera(mgl32.Vec3{}, 1, 1, 1), glhftest.NewDevice())
	_, err := New(game)
	assert.Error(t, err)
}

func TestMesherBuildsOnInitAndRebuildsOnWorldChange(t *testing.T) {
	game, device := newGame(t)
	p, err := New(game)
	require.NoError(t, err)
	assert.Error(t, p.Rebuild())

	game.InitGraphics()
	require.Len(t, device.Meshes, 1)
	assert.Equal(t, 16+4*4+16, p.FaceCount())

	game.Render(0.016)
	assert.Equal(t, 1, device.DrawCalls)
	assert.Len(t, device.Meshes, 1)

	game.World().SetBlock(1, 1, 1, voxel.NewBlock(2))
	game.Render(0.016)
	assert.Len(t, device.Meshes, 2)
	assert.Equal(t, 2, device.DrawCalls)
	assert.False(t, device.Programs[0].Bound)
}

func TestMesherAddedAfterGraphicsInitDraws(t *testing.T) {
	game, device := newGame(t)
	game.InitGraphics()
	p, err := New(game)
	require.NoError(t, err)
	require.Len(t, device.Meshes, 1)
	assert.Equal(t, 16+4*4+16, p.FaceCount())

	game.Render(0.016)
	assert.Equal(t, 1, device.DrawCalls)
}
