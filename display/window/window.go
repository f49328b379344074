// Package window previews frames in a desktop window and reads the keypad
// from the keyboard.
package window

import (
	"errors"
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/clktmr/agbgfx/input"
)

// ErrClosed is returned by Run when the window was closed.
var ErrClosed = errors.New("window: closed")

// DefaultKeys maps the keyboard onto the keypad.
var DefaultKeys = map[ebiten.Key]input.ButtonMask{
	ebiten.KeyX:          input.ButtonA,
	ebiten.KeyZ:          input.ButtonB,
	ebiten.KeyBackspace:  input.ButtonSelect,
	ebiten.KeyEnter:      input.ButtonStart,
	ebiten.KeyArrowRight: input.ButtonRight,
	ebiten.KeyArrowLeft:  input.ButtonLeft,
	ebiten.KeyArrowUp:    input.ButtonUp,
	ebiten.KeyArrowDown:  input.ButtonDown,
	ebiten.KeyS:          input.ButtonR,
	ebiten.KeyA:          input.ButtonL,
}

// Buttons returns the keypad buttons of all pressed keys.
func Buttons(keys map[ebiten.Key]input.ButtonMask, pressed func(ebiten.Key) bool) (b input.ButtonMask) {
	for k, m := range keys {
		if pressed(k) {
			b |= m
		}
	}
	return b
}

// StepFunc advances the application by one frame.
type StepFunc func(buttons input.ButtonMask) error

// Window implements ebiten.Game around a StepFunc and display.Display for
// the frames it renders.
type Window struct {
	Title string
	Scale int
	Keys  map[ebiten.Key]input.ButtonMask

	step  StepFunc
	frame *image.RGBA
}

func New(title string, width, height, scale int) *Window {
	return &Window{
		Title: title,
		Scale: scale,
		Keys:  DefaultKeys,
		frame: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Present copies img to be shown with the next redraw.
func (w *Window) Present(img image.Image) error {
	draw.Draw(w.frame, w.frame.Bounds(), img, img.Bounds().Min, draw.Src)
	return nil
}

func (w *Window) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ErrClosed
	}
	return w.step(Buttons(w.Keys, ebiten.IsKeyPressed))
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.frame.Pix)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.frame.Rect.Dx(), w.frame.Rect.Dy()
}

// Run opens the window and calls step once per frame until the window is
// closed or step fails.  Closing the window isn't reported as error.
func (w *Window) Run(step StepFunc) error {
	w.step = step
	ebiten.SetWindowSize(w.frame.Rect.Dx()*w.Scale, w.frame.Rect.Dy()*w.Scale)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(w)
	if errors.Is(err, ErrClosed) {
		return nil
	}
	return err
}
