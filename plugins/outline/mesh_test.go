package outline

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxel-outline/engine/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeHasTwelveUnitEdges(t *testing.T) {
	vertices := CubeVertices()
	indices := CubeIndices()
	require.Len(t, vertices, 8*3)
	require.Len(t, indices, 24)

	corner := func(i uint32) mgl32.Vec3 {
		return mgl32.Vec3{float32(vertices[i*3]), float32(vertices[i*3+1]), float32(vertices[i*3+2])}
	}
	seen := make(map[[2]uint32]bool)
	for i := 0; i < len(indices); i += 2 {
		a, b := indices[i], indices[i+1]
		if a > b {
			a, b = b, a
		}
		assert.False(t, seen[[2]uint32{a, b}], "edge %d-%d listed twice", a, b)
		seen[[2]uint32{a, b}] = true

		d := corner(b).Sub(corner(a))
		assert.InDelta(t, 1, d.Len(), 1e-6, "edge %d-%d", a, b)
		axes := 0
		for _, c := range d {
			if c != 0 {
				axes++
			}
		}
		assert.Equal(t, 1, axes, "edge %d-%d is not axis aligned", a, b)
	}
	assert.Len(t, seen, 12)
}

func TestCubeCornersAreBinary(t *testing.T) {
	vertices := CubeVertices()
	for i := 0; i < 8; i++ {
		x, y, z := vertices[i*3], vertices[i*3+1], vertices[i*3+2]
		assert.Equal(t, float32(i>>2&1), float32(x))
		assert.Equal(t, float32(i>>1&1), float32(y))
		assert.Equal(t, float32(i&1), float32(z))
	}
}

func TestModelMatrixCorners(t *testing.T) {
	m := ModelMatrix(voxel.Int3{X: -3, Y: 7, Z: 12}, false)
	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	far := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1}).Vec3()
	assert.True(t, origin.ApproxEqual(mgl32.Vec3{-3, 7, 12}), "%v", origin)
	assert.True(t, far.ApproxEqualThreshold(mgl32.Vec3{-1.999, 8.001, 13.001}, 1e-5), "%v", far)

	swapped := ModelMatrix(voxel.Int3{X: -3, Y: 7, Z: 12}, true).Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	assert.True(t, swapped.ApproxEqual(mgl32.Vec3{12, 7, -3}), "%v", swapped)
}
