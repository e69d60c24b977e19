package voxel

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

var mapFileMagic = [4]byte{'V', 'X', 'M', '1'}

// maxMapVolume bounds the allocation made for a map read from disk.
const maxMapVolume = 256 * 256 * 256

// Save writes the map as a zstd stream: magic, width, height and depth as little endian int32,
// then one byte per block in storage order.
func (m *Map) Save(w io.Writer) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return errors.Wrap(err, "create zstd writer")
	}
	bw := bufio.NewWriter(enc)
	header := struct {
		Magic                 [4]byte
		Width, Height, Depth int32
	}{mapFileMagic, m.width, m.height, m.depth}
	if err := binary.Write(bw, binary.LittleEndian, header); err != nil {
		enc.Close()
		return errors.Wrap(err, "write map header")
	}
	for _, block := range m.blocks {
		if err := bw.WriteByte(block.ID); err != nil {
			enc.Close()
			return errors.Wrap(err, "write blocks")
		}
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return errors.Wrap(err, "flush blocks")
	}
	return errors.Wrap(enc.Close(), "close zstd writer")
}

func (m *Map) SaveToFile(filename string) error {
	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create map file")
	}
	if err := m.Save(outfile); err != nil {
		outfile.Close()
		return errors.Wrapf(err, "save map to %s", filename)
	}
	return outfile.Close()
}

// LoadMap reads a map written by Save.
func LoadMap(r io.Reader) (*Map, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "create zstd reader")
	}
	defer dec.Close()

	var header struct {
		Magic                 [4]byte
		Width, Height, Depth int32
	}
	if err := binary.Read(dec, binary.LittleEndian, &header); err != nil {
		return nil, errors.Wrap(err, "read map header")
	}
	if header.Magic != mapFileMagic {
		return nil, errors.Errorf("not a map file, magic %q", header.Magic[:])
	}
	if header.Width <= 0 || header.Height <= 0 || header.Depth <= 0 ||
		int64(header.Width)*int64(header.Height)*int64(header.Depth) > maxMapVolume {
		return nil, errors.Errorf("invalid map dimensions %dx%dx%d", header.Width, header.Height, header.Depth)
	}

	m := NewMap(header.Width, header.Height, header.Depth)
	ids := make([]byte, len(m.blocks))
	if _, err := io.ReadFull(dec, ids); err != nil {
		return nil, errors.Wrap(err, "read blocks")
	}
	for i, id := range ids {
		m.blocks[i] = Block{ID: id}
	}
	return m, nil
}

func LoadMapFromFile(filename string) (*Map, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open map file")
	}
	defer file.Close()
	m, err := LoadMap(file)
	if err != nil {
		return nil, errors.Wrapf(err, "load map from %s", filename)
	}
	return m, nil
}
