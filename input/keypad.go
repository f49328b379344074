// Package input tracks the state of the console keypad between frames.
package input

import (
	"fmt"
	"strings"
)

// ButtonMask has one bit per button, in the layout of the keypad register.
type ButtonMask uint16

const (
	ButtonA ButtonMask = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonR
	ButtonL

	ButtonsAll = 1<<10 - 1
)

var buttonNames = [...]string{
	"A",
	"B",
	"Select",
	"Start",
	"Right",
	"Left",
	"Up",
	"Down",
	"R",
	"L",
}

func (b ButtonMask) String() string {
	var sb strings.Builder
	for i, v := range buttonNames {
		if b&(1<<i) != 0 {
			if sb.Len() != 0 {
				sb.WriteString("+")
			}
			sb.WriteString(v)
		}
	}
	return sb.String()
}

// ParseButtons parses the format of ButtonMask.String, button names are case
// insensitive.  The empty string is no button.
func ParseButtons(s string) (b ButtonMask, err error) {
	if s == "" {
		return 0, nil
	}
next:
	for _, name := range strings.Split(s, "+") {
		name = strings.TrimSpace(name)
		for i, v := range buttonNames {
			if strings.EqualFold(name, v) {
				b |= 1 << i
				continue next
			}
		}
		return 0, fmt.Errorf("input: unknown button %q", name)
	}
	return b, nil
}

// Keypad holds the buttons held in the current and in the last frame.
type Keypad struct {
	current, last ButtonMask
}

// Update stores the buttons held in a new frame.
func (k *Keypad) Update(down ButtonMask) {
	k.last = k.current
	k.current = down & ButtonsAll
}

func (k *Keypad) Down() ButtonMask {
	return k.current
}

func (k *Keypad) Held(m ButtonMask) bool {
	return k.current&m != 0
}

func (k *Keypad) Changed() ButtonMask {
	return k.current ^ k.last
}

func (k *Keypad) Pressed() ButtonMask {
	return k.Changed() & k.current
}

func (k *Keypad) Released() ButtonMask {
	return k.Changed() & k.last
}

// Axis returns -1 if neg is held, 1 if pos is held and 0 if both or none
// are held.
func (k *Keypad) Axis(neg, pos ButtonMask) int {
	return k.bit(pos) - k.bit(neg)
}

func (k *Keypad) bit(m ButtonMask) int {
	if k.Held(m) {
		return 1
	}
	return 0
}
