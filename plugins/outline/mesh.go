package outline

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxel-outline/engine/glhf"
	"github.com/memmaker/voxel-outline/engine/voxel"
)

// Epsilon enlarges the outline so its lines do not z-fight with the faces of the block itself.
const Epsilon = 0.001

// cubeCorners are the corners of the unit cube, bit 2 is X, bit 1 is Y, bit 0 is Z.
var cubeCorners = [8][3]uint8{
	{0, 0, 0},
	{0, 0, 1},
	{0, 1, 0},
	{0, 1, 1},
	{1, 0, 0},
	{1, 0, 1},
	{1, 1, 0},
	{1, 1, 1},
}

// cubeEdges holds the 12 edges as pairs of corner indices.
var cubeEdges = [24]uint16{
	0, 1, 0, 2, 2, 3, 3, 1,
	0, 4, 4, 5, 5, 1,
	5, 7, 7, 3,
	7, 6, 6, 2,
	6, 4,
}

// CubeVertices returns the corners as float positions for the line program.
func CubeVertices() []glhf.GlFloat {
	vertices := make([]glhf.GlFloat, 0, len(cubeCorners)*3)
	for _, c := range cubeCorners {
		vertices = append(vertices, glhf.GlFloat(c[0]), glhf.GlFloat(c[1]), glhf.GlFloat(c[2]))
	}
	return vertices
}

func CubeIndices() []uint32 {
	indices := make([]uint32, len(cubeEdges))
	for i, e := range cubeEdges {
		indices[i] = uint32(e)
	}
	return indices
}

// ModelMatrix places the unit cube on the target voxel, slightly enlarged.
func ModelMatrix(target voxel.Int3, swapXZ bool) mgl32.Mat4 {
	pos := target.ToVec3()
	if swapXZ {
		pos = mgl32.Vec3{pos.Z(), pos.Y(), pos.X()}
	}
	scale := float32(1 + Epsilon)
	return mgl32.Ident4().
		Mul4(mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}
