package level

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/clktmr/agbgfx/fixed"
)

// WAD is a Doom style archive of named lumps.  Both IWAD and PWAD files are
// accepted, only the map lumps are interpreted.
type WAD struct {
	r     io.ReaderAt
	lumps []Lump
	maps  []int
}

type Lump struct {
	Name   string
	Offset int
	Size   int
}

type binHeader struct {
	Magic        [4]byte
	NumLumps     int32
	InfoTableOfs int32
}

type binLumpInfo struct {
	Filepos int32
	Size    int32
	Name    [8]byte
}

// OpenWAD reads the header and lump directory of a WAD archive of the given
// size.  The directory and all lumps must lie within size.
func OpenWAD(r io.ReaderAt, size int64) (*WAD, error) {
	var hdr binHeader
	if err := binary.Read(io.NewSectionReader(r, 0, 12), binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("wad: header: %w", truncated(err))
	}
	if magic := string(hdr.Magic[:]); magic != "IWAD" && magic != "PWAD" {
		return nil, fmt.Errorf("wad: %w: %q", ErrBadMagic, magic)
	}
	if hdr.NumLumps < 0 || hdr.InfoTableOfs < 0 || int64(hdr.InfoTableOfs) > size ||
		int64(hdr.NumLumps)*16 > size-int64(hdr.InfoTableOfs) {
		return nil, fmt.Errorf("wad: directory: %w", ErrTruncated)
	}

	infos := make([]binLumpInfo, hdr.NumLumps)
	dir := io.NewSectionReader(r, int64(hdr.InfoTableOfs), int64(hdr.NumLumps)*16)
	if err := binary.Read(dir, binary.LittleEndian, infos); err != nil {
		return nil, fmt.Errorf("wad: directory: %w", truncated(err))
	}

	w := &WAD{r: r, lumps: make([]Lump, len(infos))}
	for i, info := range infos {
		if info.Filepos < 0 || info.Size < 0 || int64(info.Filepos)+int64(info.Size) > size {
			return nil, fmt.Errorf("wad: lump %s: %w", Name(info.Name), ErrTruncated)
		}
		w.lumps[i] = Lump{Name(info.Name), int(info.Filepos), int(info.Size)}
		// A map is announced by an empty marker lump followed by THINGS.
		if w.lumps[i].Name == "THINGS" && i > 0 {
			w.maps = append(w.maps, i-1)
		}
	}
	logger.Printf("Read WAD directory: %d lumps, %d maps", len(w.lumps), len(w.maps))
	return w, nil
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

func (w *WAD) Lumps() []Lump { return w.lumps }

// Maps returns the names of all maps in directory order.
func (w *WAD) Maps() []string {
	names := make([]string, len(w.maps))
	for i, idx := range w.maps {
		names[i] = w.lumps[idx].Name
	}
	return names
}

// ReadLump returns the contents of l.
func (w *WAD) ReadLump(l Lump) ([]byte, error) {
	buf := make([]byte, l.Size)
	if _, err := w.r.ReadAt(buf, int64(l.Offset)); err != nil {
		return nil, fmt.Errorf("wad: lump %s: %w", l.Name, truncated(err))
	}
	return buf, nil
}

// MapVertex and the other Map records hold unscaled map units.
type MapVertex struct {
	X, Y int16
}

type MapSeg struct {
	Start, End int16
	Angle      int16
	LineDef    int16
	Direction  int16
	Offset     int16
}

type MapSector struct {
	Floor, Ceiling int16
	FloorTex       [8]byte
	CeilTex        [8]byte
	Light          int16
	Type           int16
	Tag            int16
}

type MapBox struct {
	Top, Bottom, Left, Right int16
}

type MapNode struct {
	X, Y   int16
	DX, DY int16
	Box    [2]MapBox
	Child  [2]uint16
}

// Map is a map as stored in a WAD, before it is baked into a Level.
type Map struct {
	Name       string
	Vertices   []MapVertex
	LineDefs   []LineDef
	SideDefs   []SideDef
	Segs       []MapSeg
	SubSectors []SubSector
	Sectors    []MapSector
	Nodes      []MapNode
}

var mapLumps = []string{
	"THINGS", "LINEDEFS", "SIDEDEFS", "VERTEXES", "SEGS",
	"SSECTORS", "NODES", "SECTORS", "REJECT", "BLOCKMAP",
}

// ReadMap reads the lumps of the map called name.
func (w *WAD) ReadMap(name string) (*Map, error) {
	marker := -1
	for _, idx := range w.maps {
		if w.lumps[idx].Name == name {
			marker = idx
			break
		}
	}
	if marker == -1 {
		return nil, fmt.Errorf("wad: map %s: %w", name, ErrMissingLump)
	}

	found := map[string]Lump{}
	for _, l := range w.lumps[marker+1:] {
		if !slices.Contains(mapLumps, l.Name) {
			break
		}
		found[l.Name] = l
	}

	m := &Map{Name: name}
	var err error
	get := func(lump string, read func(Lump) error) {
		if err != nil {
			return
		}
		l, ok := found[lump]
		if !ok {
			err = fmt.Errorf("wad: map %s: %s: %w", name, lump, ErrMissingLump)
			return
		}
		if err = read(l); err != nil {
			err = fmt.Errorf("wad: map %s: %s: %w", name, lump, err)
		}
	}
	get("VERTEXES", func(l Lump) (err error) { m.Vertices, err = readRecords[MapVertex](w, l); return })
	get("LINEDEFS", func(l Lump) (err error) { m.LineDefs, err = readRecords[LineDef](w, l); return })
	get("SIDEDEFS", func(l Lump) (err error) { m.SideDefs, err = readRecords[SideDef](w, l); return })
	get("SEGS", func(l Lump) (err error) { m.Segs, err = readRecords[MapSeg](w, l); return })
	get("SSECTORS", func(l Lump) (err error) { m.SubSectors, err = readRecords[SubSector](w, l); return })
	get("SECTORS", func(l Lump) (err error) { m.Sectors, err = readRecords[MapSector](w, l); return })
	get("NODES", func(l Lump) (err error) { m.Nodes, err = readRecords[MapNode](w, l); return })
	if err != nil {
		return nil, err
	}

	logger.Printf("Read map %s: %d vertices, %d linedefs, %d segs, %d nodes",
		name, len(m.Vertices), len(m.LineDefs), len(m.Segs), len(m.Nodes))
	return m, nil
}

func readRecords[T any](w *WAD, l Lump) ([]T, error) {
	var zero T
	size := binary.Size(zero)
	if l.Size%size != 0 {
		return nil, fmt.Errorf("size %d not a multiple of %d: %w", l.Size, size, ErrTruncated)
	}
	recs := make([]T, l.Size/size)
	r := io.NewSectionReader(w.r, int64(l.Offset), int64(l.Size))
	if err := binary.Read(r, binary.LittleEndian, recs); err != nil {
		return nil, truncated(err)
	}
	return recs, nil
}

// Center returns the midpoint of the vertex bounding box, rounded down.
func (m *Map) Center() (x, y int) {
	if len(m.Vertices) == 0 {
		return 0, 0
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, v := range m.Vertices {
		minX, maxX = min(minX, int(v.X)), max(maxX, int(v.X))
		minY, maxY = min(minY, int(v.Y)), max(maxY, int(v.Y))
	}
	return (minX + maxX) >> 1, (minY + maxY) >> 1
}

// Bake centers the map around the origin, divides all lengths by 2^shift
// and converts them to 8.8 fixed-point.  The resulting Level is validated.
func (m *Map) Bake(shift uint) (*Level, error) {
	cx, cy := m.Center()
	var err error
	conv := func(v, center int) fixed.Int8_8 {
		raw := ((v - center) << 8) >> shift
		if raw < math.MinInt16 || raw > math.MaxInt16 {
			if err == nil {
				err = fmt.Errorf("level: map %s: %d: %w", m.Name, v, ErrCoordinate)
			}
			return 0
		}
		return fixed.Int8_8(raw)
	}

	l := &Level{
		Vertices:   make([]Vertex, len(m.Vertices)),
		LineDefs:   slices.Clone(m.LineDefs),
		SideDefs:   slices.Clone(m.SideDefs),
		Segs:       make([]Seg, len(m.Segs)),
		SubSectors: slices.Clone(m.SubSectors),
		Sectors:    make([]Sector, len(m.Sectors)),
		Nodes:      make([]Node, len(m.Nodes)),
	}
	for i, v := range m.Vertices {
		l.Vertices[i] = Vertex{conv(int(v.X), cx), conv(int(v.Y), cy)}
	}
	for i, s := range m.Segs {
		l.Segs[i] = Seg{s.Start, s.End, s.Angle, s.LineDef, s.Direction, conv(int(s.Offset), 0)}
	}
	for i, s := range m.Sectors {
		l.Sectors[i] = Sector{
			Floor:    conv(int(s.Floor), 0),
			Ceiling:  conv(int(s.Ceiling), 0),
			FloorTex: s.FloorTex,
			CeilTex:  s.CeilTex,
			Light:    fixed.Int8_8(s.Light),
			Type:     s.Type,
			Tag:      s.Tag,
		}
	}
	for i, n := range m.Nodes {
		node := Node{
			X:     conv(int(n.X), cx),
			Y:     conv(int(n.Y), cy),
			DX:    conv(int(n.DX), 0),
			DY:    conv(int(n.DY), 0),
			Child: n.Child,
		}
		for j, b := range n.Box {
			node.Box[j] = AABB{
				Top:    conv(int(b.Top), cy),
				Bottom: conv(int(b.Bottom), cy),
				Left:   conv(int(b.Left), cx),
				Right:  conv(int(b.Right), cx),
			}
		}
		l.Nodes[i] = node
	}
	if err != nil {
		return nil, err
	}
	if err := Validate(l); err != nil {
		return nil, err
	}
	return l, nil
}
