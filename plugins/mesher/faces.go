package mesher

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/memmaker/voxel-outline/engine/glhf"
	"github.com/memmaker/voxel-outline/engine/voxel"
)

// FloatsPerVertex matches shader.VertexFormat: position, normal, color.
const FloatsPerVertex = 9

// VerticesPerFace is two triangles per visible face.
const VerticesPerFace = 6

type face struct {
	neighbor voxel.Int3
	normal   mgl32.Vec3
	// corners in counter-clockwise order seen from outside the block
	corners [4]mgl32.Vec3
}

var faces = [6]face{
	{voxel.Int3{X: 1}, mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{voxel.Int3{X: -1}, mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}},
	{voxel.Int3{Y: 1}, mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}},
	{voxel.Int3{Y: -1}, mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{voxel.Int3{Z: 1}, mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	{voxel.Int3{Z: -1}, mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}}},
}

var quadTriangles = [VerticesPerFace]int{0, 1, 2, 0, 2, 3}

// BuildFaces returns a flat triangle list with one quad for every face that separates a solid
// block from air or from the outside of the map.
func BuildFaces(world *voxel.Map, palette Palette) []glhf.GlFloat {
	var vertices []glhf.GlFloat
	world.ForEachSolid(func(pos voxel.Int3, block voxel.Block) {
		color := palette.Color(block.ID)
		origin := pos.ToVec3()
		for _, f := range faces {
			n := pos.Add(f.neighbor)
			if world.IsSolidBlockAt(n.X, n.Y, n.Z) {
				continue
			}
			for _, corner := range quadTriangles {
				p := origin.Add(f.corners[corner])
				vertices = append(vertices,
					glhf.GlFloat(p.X()), glhf.GlFloat(p.Y()), glhf.GlFloat(p.Z()),
					glhf.GlFloat(f.normal.X()), glhf.GlFloat(f.normal.Y()), glhf.GlFloat(f.normal.Z()),
					glhf.GlFloat(color.X()), glhf.GlFloat(color.Y()), glhf.GlFloat(color.Z()),
				)
			}
		}
	})
	return vertices
}
