package framebuffer

// Framebuffer is a double buffered screen.  Rendering goes to the back
// buffer while the front buffer is shown.
type Framebuffer[P Pixel] struct {
	bufs        [2]*Buffer[P]
	front, back int
	frames      uint
}

func NewFramebuffer[P Pixel](width, height int) *Framebuffer[P] {
	fb := &Framebuffer[P]{back: 1}
	for i := range fb.bufs {
		fb.bufs[i] = NewBuffer[P](width, height)
	}
	return fb
}

// Swap presents the back buffer and returns the new back buffer.  The buffer
// returned by the previous call becomes invalid for rendering.
func (fb *Framebuffer[P]) Swap() *Buffer[P] {
	fb.front, fb.back = fb.back, fb.front
	fb.frames++
	return fb.bufs[fb.back]
}

// Front returns the buffer currently shown.
func (fb *Framebuffer[P]) Front() *Buffer[P] { return fb.bufs[fb.front] }

// Back returns the buffer currently rendered to.
func (fb *Framebuffer[P]) Back() *Buffer[P] { return fb.bufs[fb.back] }

// Frames returns the number of swaps so far.
func (fb *Framebuffer[P]) Frames() uint { return fb.frames }
