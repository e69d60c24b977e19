package mesher

import "github.com/go-gl/mathgl/mgl32"

// Palette maps block IDs to colors.
type Palette map[byte]mgl32.Vec3

func DefaultPalette() Palette {
	return Palette{
		1: {0.50, 0.50, 0.52}, // stone
		2: {0.36, 0.62, 0.27}, // grass
		3: {0.55, 0.38, 0.23}, // dirt
		4: {0.86, 0.80, 0.55}, // sand
		5: {0.62, 0.45, 0.28}, // planks
		6: {0.70, 0.30, 0.24}, // brick
	}
}

// Color falls back to a gray derived from the ID for unknown blocks.
func (p Palette) Color(id byte) mgl32.Vec3 {
	if c, ok := p[id]; ok {
		return c
	}
	shade := 0.35 + float32(id%8)*0.07
	return mgl32.Vec3{shade, shade, shade}
}
