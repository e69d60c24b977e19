package voxel

import (
	"bufio"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Schematic is the root compound of an MCEdit .schematic file. Only the block grid is read.
type Schematic struct {
	Width  int16  `nbt:"Width"`
	Height int16  `nbt:"Height"`
	Length int16  `nbt:"Length"`
	Blocks []byte `nbt:"Blocks"`
}

// LoadSchematic reads an MCEdit schematic, gzipped or raw, into a new map. Width maps to X,
// Height to Y and Length to Z. Block IDs are kept as they are, every non-zero ID is solid.
func LoadSchematic(r io.Reader) (*Map, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil {
		return nil, errors.Wrap(err, "read schematic")
	}
	var src io.Reader = br
	if magic[0] == 0x1f && magic[1] == 0x8b {
		gzipReader, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.Wrap(err, "open gzip stream")
		}
		defer gzipReader.Close()
		src = gzipReader
	}

	var schematic Schematic
	if _, err := nbt.NewDecoder(src).Decode(&schematic); err != nil {
		return nil, errors.Wrap(err, "decode schematic nbt")
	}
	return schematic.ToMap()
}

// ToMap converts the MCEdit YZX block order into a map.
func (s Schematic) ToMap() (*Map, error) {
	width, height, length := int32(s.Width), int32(s.Height), int32(s.Length)
	if width <= 0 || height <= 0 || length <= 0 || int64(width)*int64(height)*int64(length) > maxMapVolume {
		return nil, errors.Errorf("invalid schematic dimensions %dx%dx%d", width, height, length)
	}
	if len(s.Blocks) != int(width*height*length) {
		return nil, errors.Errorf("schematic has %d blocks, expected %d", len(s.Blocks), width*height*length)
	}
	m := NewMap(width, height, length)
	for y := int32(0); y < height; y++ {
		for z := int32(0); z < length; z++ {
			for x := int32(0); x < width; x++ {
				m.SetBlock(x, y, z, NewBlock(s.Blocks[(y*length+z)*width+x]))
			}
		}
	}
	return m, nil
}

func LoadSchematicFromFile(filename string) (*Map, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open schematic")
	}
	defer file.Close()
	m, err := LoadSchematic(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load schematic %s", filename)
	}
	return m, nil
}
