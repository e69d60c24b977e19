package voxel

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetBlockBumpsVersionOnlyOnChange(t *testing.T) {
	m := NewMap(2, 2, 2)
	assert.True(t, m.SetBlock(1, 1, 1, NewBlock(3)))
	assert.Equal(t, uint64(1), m.Version())
	assert.True(t, m.SetBlock(1, 1, 1, NewBlock(3)))
	assert.Equal(t, uint64(1), m.Version())
	assert.False(t, m.SetBlock(2, 0, 0, NewBlock(3)))
	assert.Nil(t, m.GetGlobalBlock(-1, 0, 0))
	assert.True(t, m.IsSolidBlockAt(1, 1, 1))
	assert.False(t, m.IsSolidBlockAt(0, 1, 1))
}

func TestFillBoxAcceptsCornersInAnyOrder(t *testing.T) {
	m := NewMap(4, 4, 4)
	m.FillBox(Int3{2, 1, 2}, Int3{1, 0, 1}, NewBlock(1))
	count := 0
	m.ForEachSolid(func(pos Int3, block Block) { count++ })
	assert.Equal(t, 8, count)
}

func TestRandomStuffStaysAboveFloor(t *testing.T) {
	m := NewMap(8, 4, 8)
	m.SetRandomStuff(rand.New(rand.NewSource(7)), 10, 4)
	m.ForEachSolid(func(pos Int3, block Block) {
		assert.GreaterOrEqual(t, pos.Y, int32(1))
		assert.LessOrEqual(t, block.ID, byte(4))
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := NewMap(5, 3, 4)
	m.SetFloorAtHeight(0, NewBlock(1))
	m.SetBlock(4, 2, 3, NewBlock(9))

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))

	loaded, err := LoadMap(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.Size(), loaded.Size())
	assert.Equal(t, m.blocks, loaded.blocks)
}

func TestLoadMapRejectsGarbage(t *testing.T) {
	_, err := LoadMap(bytes.NewReader([]byte("definitely not zstd")))
	assert.Error(t, err)
}

func TestLoadSchematicUsesYZXOrder(t *testing.T) {
	schematic := Schematic{Width: 2, Height: 2, Length: 3, Blocks: make([]byte, 12)}
	// x=1, y=1, z=2
	schematic.Blocks[(1*3+2)*2+1] = 42

	var raw bytes.Buffer
	gz := gzip.NewWriter(&raw)
	require.NoError(t, nbt.NewEncoder(gz).Encode(schematic, "Schematic"))
	require.NoError(t, gz.Close())

	m, err := LoadSchematic(&raw)
	require.NoError(t, err)
	assert.Equal(t, Int3{2, 2, 3}, m.Size())
	assert.Equal(t, byte(42), m.GetGlobalBlock(1, 1, 2).ID)
	assert.False(t, m.IsSolidBlockAt(0, 0, 0))
}

func TestSchematicBlockCountMismatch(t *testing.T) {
	_, err := Schematic{Width: 2, Height: 2, Length: 2, Blocks: []byte{1}}.ToMap()
	assert.Error(t, err)
}
