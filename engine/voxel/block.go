package voxel

const EMPTY byte = 0

// Block is one cell of the world. ID zero is air, every other ID is solid.
type Block struct {
	ID byte
}

func NewBlock(id byte) Block {
	return Block{ID: id}
}

func NewAirBlock() Block {
	return Block{ID: EMPTY}
}

func (b Block) IsAir() bool {
	return b.ID == EMPTY
}
