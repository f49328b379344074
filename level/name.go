package level

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

// Name decodes a NUL padded 8 byte texture or lump name.
func Name(b [8]byte) string {
	n := bytes.IndexByte(b[:], 0)
	if n == -1 {
		n = len(b)
	}
	s, err := charmap.Windows1252.NewDecoder().Bytes(b[:n])
	if err != nil {
		return string(b[:n])
	}
	return string(s)
}

// EncodeName encodes s as 8 byte name.  Longer names are truncated.
func EncodeName(s string) (b [8]byte, err error) {
	enc, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return b, err
	}
	copy(b[:], enc)
	return b, nil
}

func (s *SideDef) UpperName() string  { return Name(s.Upper) }
func (s *SideDef) LowerName() string  { return Name(s.Lower) }
func (s *SideDef) MiddleName() string { return Name(s.Middle) }

func (s *Sector) FloorName() string   { return Name(s.FloorTex) }
func (s *Sector) CeilingName() string { return Name(s.CeilTex) }
