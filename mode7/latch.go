package mode7

import "sync/atomic"

// Latch passes a value from the main loop to the scanline handler without
// blocking either side.  Only a single writer and a single reader are
// allowed, the reader must not be preemptible by the writer, i.e. an
// interrupt.
type Latch[T any] struct {
	next    int32 // owned by writer
	current int32 // owned by reader

	bufs [2]T
	ptr  atomic.Int32 // index+1 of the latest write, 0 if read already
}

// Get can be used by the writer to read back the last stored value.
func (p *Latch[T]) Get() (v T) {
	return p.bufs[(p.next+1)&0x1]
}

func (p *Latch[T]) Store(v T) {
	// Write alternating to bufs[0] and bufs[1] and set ptr to the latest
	// write.  Will never write where ptr points at.
	p.bufs[p.next] = v
	p.ptr.Store(p.next + 1)
	p.next = (p.next + 1) & 0x1
}

// Load returns the latest stored value and whether it was stored since the
// last Load.  Before the first Store the zero value is returned.
func (p *Latch[T]) Load() (v T, updated bool) {
	ptr := p.ptr.Swap(0)
	if ptr == 0 {
		return p.bufs[p.current], false
	}
	p.current = ptr - 1
	return p.bufs[p.current], true
}
