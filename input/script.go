package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Script is a recorded sequence of keypad states, one per frame.
type Script []ButtonMask

// ParseScript parses one entry per step in the format "buttons[*frames]",
// e.g. "Up+A*10" holds Up and A for ten frames and "*30" holds nothing for
// thirty frames.
func ParseScript(entries []string) (s Script, err error) {
	for _, e := range entries {
		buttons, count, found := strings.Cut(e, "*")
		n := 1
		if found {
			n, err = strconv.Atoi(strings.TrimSpace(count))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("input: bad repeat count in %q", e)
			}
		}
		b, err := ParseButtons(strings.TrimSpace(buttons))
		if err != nil {
			return nil, err
		}
		for range n {
			s = append(s, b)
		}
	}
	return s, nil
}

// At returns the buttons held in frame n, no buttons after the end of the
// script.
func (s Script) At(n int) ButtonMask {
	if n < 0 || n >= len(s) {
		return 0
	}
	return s[n]
}
