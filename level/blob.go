package level

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/sigurn/crc8"
)

// Blob layout, little-endian without padding:
//
//	header   magic "AGBL", version, record count per array
//	records  Vertex, LineDef, SideDef, Seg, SubSector, Sector, Node arrays
//	trailer  CRC-8 of everything before it
const (
	blobMagic   = "AGBL"
	blobVersion = 1
)

type blobHeader struct {
	Magic   [4]byte
	Version uint16
	Counts  [7]uint16
}

var blobCRC8 = crc8.MakeTable(crc8.Params{Poly: 0x07, Init: 0x00, RefIn: false, RefOut: false, XorOut: 0x00, Check: 0xF4, Name: "CRC-8/SMBUS"})

func checksum(data []byte) uint8 {
	csum := crc8.Init(blobCRC8)
	csum = crc8.Update(csum, data, blobCRC8)
	return crc8.Complete(csum, blobCRC8)
}

func (l *Level) arrays() []any {
	return []any{l.Vertices, l.LineDefs, l.SideDefs, l.Segs, l.SubSectors, l.Sectors, l.Nodes}
}

var recordSizes = [7]int{
	binary.Size(Vertex{}),
	binary.Size(LineDef{}),
	binary.Size(SideDef{}),
	binary.Size(Seg{}),
	binary.Size(SubSector{}),
	binary.Size(Sector{}),
	binary.Size(Node{}),
}

// Decode parses a level blob.  The blob is validated with Validate before it
// is returned.
func Decode(data []byte) (*Level, error) {
	var hdr blobHeader
	hdrSize := binary.Size(hdr)
	if len(data) < hdrSize {
		return nil, fmt.Errorf("level: header: %w", ErrTruncated)
	}
	if _, err := binary.Decode(data, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("level: header: %w", err)
	}
	if string(hdr.Magic[:]) != blobMagic {
		return nil, fmt.Errorf("level: %w: %q", ErrBadMagic, hdr.Magic[:])
	}
	if hdr.Version != blobVersion {
		return nil, fmt.Errorf("level: %w: %d", ErrVersion, hdr.Version)
	}

	size := hdrSize
	for i, n := range hdr.Counts {
		size += int(n) * recordSizes[i]
	}
	if len(data) < size+1 {
		return nil, fmt.Errorf("level: expected %d bytes, got %d: %w", size+1, len(data), ErrTruncated)
	}
	if csum := checksum(data[:size]); csum != data[size] {
		return nil, fmt.Errorf("level: %w: expected %#02x, got %#02x", ErrChecksum, data[size], csum)
	}

	l := &Level{
		Vertices:   make([]Vertex, hdr.Counts[0]),
		LineDefs:   make([]LineDef, hdr.Counts[1]),
		SideDefs:   make([]SideDef, hdr.Counts[2]),
		Segs:       make([]Seg, hdr.Counts[3]),
		SubSectors: make([]SubSector, hdr.Counts[4]),
		Sectors:    make([]Sector, hdr.Counts[5]),
		Nodes:      make([]Node, hdr.Counts[6]),
	}
	r := bytes.NewReader(data[hdrSize:size])
	for _, a := range l.arrays() {
		if err := binary.Read(r, binary.LittleEndian, a); err != nil {
			return nil, fmt.Errorf("level: records: %w", err)
		}
	}
	logger.Printf("Decoded level: %d vertices, %d segs, %d subsectors, %d nodes",
		len(l.Vertices), len(l.Segs), len(l.SubSectors), len(l.Nodes))

	if err := Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}

// Load reads a complete level blob from r.
func Load(r io.Reader) (*Level, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Store writes l as level blob.
func (l *Level) Store(w io.Writer) error {
	var hdr = blobHeader{Version: blobVersion}
	copy(hdr.Magic[:], blobMagic)
	counts := [7]int{len(l.Vertices), len(l.LineDefs), len(l.SideDefs),
		len(l.Segs), len(l.SubSectors), len(l.Sectors), len(l.Nodes)}
	for i, n := range counts {
		if n > 0xffff {
			return fmt.Errorf("level: %w: %d", ErrTooManyItems, n)
		}
		hdr.Counts[i] = uint16(n)
	}

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, &hdr); err != nil {
		return err
	}
	for _, a := range l.arrays() {
		if err := binary.Write(&buf, binary.LittleEndian, a); err != nil {
			return err
		}
	}
	buf.WriteByte(checksum(buf.Bytes()))

	_, err := w.Write(buf.Bytes())
	return err
}
