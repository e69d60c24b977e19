package voxel

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Map is a dense, fixed-size block grid spanning [0,width) x [0,height) x [0,depth).
type Map struct {
	width   int32
	height  int32
	depth   int32
	blocks  []Block
	version uint64
}

func NewMap(width, height, depth int32) *Map {
	if width <= 0 || height <= 0 || depth <= 0 {
		panic("voxel map: dimensions must be positive")
	}
	return &Map{
		width:  width,
		height: height,
		depth:  depth,
		blocks: make([]Block, width*height*depth),
	}
}

func (m *Map) Size() Int3 {
	return Int3{m.width, m.height, m.depth}
}

// Version is incremented on every block change. Renderers compare it to decide when to rebuild.
func (m *Map) Version() uint64 {
	return m.version
}

func (m *Map) index(x, y, z int32) int32 {
	return x + z*m.width + y*m.width*m.depth
}

func (m *Map) Contains(x, y, z int32) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height && z >= 0 && z < m.depth
}

func (m *Map) ContainsGrid(position Int3) bool {
	return m.Contains(position.X, position.Y, position.Z)
}

// GetGlobalBlock returns nil outside the map.
func (m *Map) GetGlobalBlock(x, y, z int32) *Block {
	if !m.Contains(x, y, z) {
		return nil
	}
	return &m.blocks[m.index(x, y, z)]
}

func (m *Map) GetBlockFromVec(pos Int3) *Block {
	return m.GetGlobalBlock(pos.X, pos.Y, pos.Z)
}

func (m *Map) IsSolidBlockAt(x, y, z int32) bool {
	block := m.GetGlobalBlock(x, y, z)
	return block != nil && !block.IsAir()
}

// SetBlock reports false when the position is outside the map.
func (m *Map) SetBlock(x, y, z int32, block Block) bool {
	if !m.Contains(x, y, z) {
		return false
	}
	i := m.index(x, y, z)
	if m.blocks[i] == block {
		return true
	}
	m.blocks[i] = block
	m.version++
	return true
}

func (m *Map) SetFloorAtHeight(yLevel int32, block Block) {
	for x := int32(0); x < m.width; x++ {
		for z := int32(0); z < m.depth; z++ {
			m.SetBlock(x, yLevel, z, block)
		}
	}
}

// FillBox sets every block in the inclusive box spanned by the two corners.
func (m *Map) FillBox(from, to Int3, block Block) {
	minX, maxX := order(from.X, to.X)
	minY, maxY := order(from.Y, to.Y)
	minZ, maxZ := order(from.Z, to.Z)
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				m.SetBlock(x, y, z, block)
			}
		}
	}
}

// SetRandomStuff scatters short pillars of random block IDs on top of the floor at y=0.
func (m *Map) SetRandomStuff(rng *rand.Rand, count int, maxID byte) {
	if maxID == 0 || m.height < 2 {
		return
	}
	for i := 0; i < count; i++ {
		x := rng.Int31n(m.width)
		z := rng.Int31n(m.depth)
		height := 1 + rng.Int31n(min(3, m.height-1))
		block := NewBlock(byte(1 + rng.Intn(int(maxID))))
		m.FillBox(Int3{x, 1, z}, Int3{x, height, z}, block)
	}
}

// ForEachSolid calls fn for every non-air block in x, z, y order.
func (m *Map) ForEachSolid(fn func(pos Int3, block Block)) {
	for y := int32(0); y < m.height; y++ {
		for z := int32(0); z < m.depth; z++ {
			for x := int32(0); x < m.width; x++ {
				block := m.blocks[m.index(x, y, z)]
				if !block.IsAir() {
					fn(Int3{x, y, z}, block)
				}
			}
		}
	}
}

// Raycast walks the segment from rayStart to rayEnd and stops at the first solid block.
func (m *Map) Raycast(rayStart, rayEnd mgl32.Vec3) (RayHit, bool) {
	return Raycast(rayStart, rayEnd, m.IsSolidBlockAt)
}

func order(a, b int32) (int32, int32) {
	if a > b {
		return b, a
	}
	return a, b
}
