package voxel

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CubeSide names the face of the hit voxel that the ray entered through.
type CubeSide int

const (
	Front  CubeSide = iota // +Z
	Back                   // -Z
	Left                   // -X
	Right                  // +X
	Top                    // +Y
	Bottom                 // -Y
	Inside                 // the ray started in a solid voxel
)

func (s CubeSide) String() string {
	switch s {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "inside"
}

// RayHit describes the first solid voxel along a ray.
type RayHit struct {
	// Voxel is the grid position of the solid voxel.
	Voxel Int3
	// Previous is the last cell visited before Voxel, the cell a new block would be placed in.
	Previous Int3
	Side     CubeSide
	Distance float64
	// Position is the world position where the ray enters Voxel.
	Position mgl32.Vec3
}

// Raycast steps through the grid cells crossed by the segment rayStart..rayEnd in order and
// returns the first cell for which stopRay reports true. It is an Amanatides-Woo style DDA.
func Raycast(rayStart, rayEnd mgl32.Vec3, stopRay func(x, y, z int32) bool) (RayHit, bool) {
	ray := rayEnd.Sub(rayStart)
	maxRayLength := float64(ray.Len())
	if maxRayLength == 0 {
		return RayHit{}, false
	}
	rayDir := ray.Normalize()

	cell := PositionToGridInt3(rayStart)
	ix, iy, iz := cell.X, cell.Y, cell.Z

	stepX, txDelta, txMax := axisSetup(rayStart.X(), rayDir.X(), ix)
	stepY, tyDelta, tyMax := axisSetup(rayStart.Y(), rayDir.Y(), iy)
	stepZ, tzDelta, tzMax := axisSetup(rayStart.Z(), rayDir.Z(), iz)

	t := 0.0
	steppedAxis := -1

	for t <= maxRayLength {
		if stopRay(ix, iy, iz) {
			hit := RayHit{
				Voxel:    Int3{ix, iy, iz},
				Previous: Int3{ix, iy, iz},
				Side:     Inside,
				Distance: t,
				Position: rayStart.Add(rayDir.Mul(float32(t))),
			}
			switch steppedAxis {
			case 0:
				hit.Previous.X -= stepX
				hit.Side = Left
				if stepX < 0 {
					hit.Side = Right
				}
			case 1:
				hit.Previous.Y -= stepY
				hit.Side = Bottom
				if stepY < 0 {
					hit.Side = Top
				}
			case 2:
				hit.Previous.Z -= stepZ
				hit.Side = Back
				if stepZ < 0 {
					hit.Side = Front
				}
			}
			return hit, true
		}

		if txMax < tyMax {
			if txMax < tzMax {
				ix += stepX
				t = txMax
				txMax += txDelta
				steppedAxis = 0
			} else {
				iz += stepZ
				t = tzMax
				tzMax += tzDelta
				steppedAxis = 2
			}
		} else {
			if tyMax < tzMax {
				iy += stepY
				t = tyMax
				tyMax += tyDelta
				steppedAxis = 1
			} else {
				iz += stepZ
				t = tzMax
				tzMax += tzDelta
				steppedAxis = 2
			}
		}
	}

	return RayHit{}, false
}

// axisSetup returns the step direction, the ray length per cell and the ray length to the first
// cell boundary along one axis. A zero direction never crosses a boundary.
func axisSetup(start, dir float32, cell int32) (int32, float64, float64) {
	if dir == 0 {
		return 0, math.Inf(1), math.Inf(1)
	}
	delta := math.Abs(1.0 / float64(dir))
	if dir > 0 {
		return 1, delta, delta * (float64(cell+1) - float64(start))
	}
	return -1, delta, delta * (float64(start) - float64(cell))
}
