package main

import (
	"math/rand"

	"github.com/memmaker/voxel-outline/engine/util"
	"github.com/memmaker/voxel-outline/engine/voxel"
	"github.com/pkg/errors"
)

// buildWorld loads the world file or schematic if one is given and generates a world otherwise.
func buildWorld(settings WorldSettings, worldPath, schematicPath string) (*voxel.Map, error) {
	switch {
	case worldPath != "" && schematicPath != "":
		return nil, errors.New("use either a world file or a schematic, not both")
	case worldPath != "":
		util.LogVoxelInfo("loading world %s", worldPath)
		return voxel.LoadMapFromFile(worldPath)
	case schematicPath != "":
		util.LogVoxelInfo("importing schematic %s", schematicPath)
		return voxel.LoadSchematicFromFile(schematicPath)
	}
	return generateWorld(settings), nil
}

// generateWorld builds a grass floor with a stone rim and random pillars on top.
func generateWorld(settings WorldSettings) *voxel.Map {
	world := voxel.NewMap(settings.Width, settings.Height, settings.Depth)
	world.SetFloorAtHeight(0, voxel.NewBlock(blockGrass))
	if settings.Height > 1 {
		last := voxel.Int3{X: settings.Width - 1, Y: 1, Z: settings.Depth - 1}
		world.FillBox(voxel.Int3{Y: 1}, voxel.Int3{X: last.X, Y: 1}, voxel.NewBlock(blockStone))
		world.FillBox(voxel.Int3{Y: 1, Z: last.Z}, last, voxel.NewBlock(blockStone))
		world.FillBox(voxel.Int3{Y: 1}, voxel.Int3{Y: 1, Z: last.Z}, voxel.NewBlock(blockStone))
		world.FillBox(voxel.Int3{X: last.X, Y: 1}, last, voxel.NewBlock(blockStone))
	}
	world.SetRandomStuff(rand.New(rand.NewSource(settings.Seed)), settings.Pillars, maxPlaceableBlock)
	util.LogVoxelDebug("generated world with seed %d", settings.Seed)
	return world
}

func countSolid(world *voxel.Map) int {
	count := 0
	world.ForEachSolid(func(voxel.Int3, voxel.Block) { count++ })
	return count
}
