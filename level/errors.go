package level

import "errors"

var (
	ErrBadMagic     = errors.New("bad magic")
	ErrVersion      = errors.New("unsupported version")
	ErrTruncated    = errors.New("truncated data")
	ErrChecksum     = errors.New("checksum mismatch")
	ErrMissingLump  = errors.New("missing lump")
	ErrIndexRange   = errors.New("index out of range")
	ErrCycle        = errors.New("cyclic BSP")
	ErrUnreachable  = errors.New("unreachable BSP element")
	ErrCoordinate   = errors.New("coordinate exceeds 8.8 range")
	ErrTooManyItems = errors.New("too many records")
)
