// Package hotkey parses human-readable hotkey chords like "Ctrl+Alt+F1"
// into the modifier mask and virtual-key code RegisterHotKey expects.
package hotkey

import (
	"fmt"
	"strings"
)

// Modifier flags as defined for RegisterHotKey.
const (
	ModAlt     uint16 = 0x0001
	ModControl uint16 = 0x0002
	ModShift   uint16 = 0x0004
	ModWin     uint16 = 0x0008
)

// Chord is a parsed hotkey: a modifier mask plus exactly one main key.
type Chord struct {
	Modifiers uint16
	Key       uint16
}

var modifierNames = map[string]uint16{
	"ctrl":    ModControl,
	"control": ModControl,
	"alt":     ModAlt,
	"shift":   ModShift,
	"win":     ModWin,
	"super":   ModWin,
	"meta":    ModWin,
}

// namedKeys maps non-alphanumeric key names to virtual-key codes.
var namedKeys = map[string]uint16{
	"space":       0x20,
	"tab":         0x09,
	"enter":       0x0D,
	"return":      0x0D,
	"esc":         0x1B,
	"escape":      0x1B,
	"backspace":   0x08,
	"insert":      0x2D,
	"delete":      0x2E,
	"home":        0x24,
	"end":         0x23,
	"pageup":      0x21,
	"pagedown":    0x22,
	"left":        0x25,
	"up":          0x26,
	"right":       0x27,
	"down":        0x28,
	"pause":       0x13,
	"printscreen": 0x2C,
}

// Parse converts a chord string into a Chord. Tokens are separated by '+'
// or '-' and matched case-insensitively; exactly one non-modifier key is
// required.
func Parse(s string) (Chord, error) {
	normalized := strings.ReplaceAll(s, "-", "+")
	tokens := strings.Split(normalized, "+")

	var chord Chord
	haveKey := false

	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			return Chord{}, fmt.Errorf("invalid hotkey %q: empty token", s)
		}
		lower := strings.ToLower(token)

		if mod, ok := modifierNames[lower]; ok {
			chord.Modifiers |= mod
			continue
		}

		key, err := keyCode(lower)
		if err != nil {
			return Chord{}, fmt.Errorf("invalid hotkey %q: %w", s, err)
		}
		if haveKey {
			return Chord{}, fmt.Errorf("invalid hotkey %q: more than one main key", s)
		}
		chord.Key = key
		haveKey = true
	}

	if !haveKey {
		return Chord{}, fmt.Errorf("invalid hotkey %q: no main key", s)
	}
	return chord, nil
}

func keyCode(lower string) (uint16, error) {
	if key, ok := namedKeys[lower]; ok {
		return key, nil
	}

	// Function keys F1..F24.
	if len(lower) >= 2 && lower[0] == 'f' {
		n := 0
		for _, r := range lower[1:] {
			if r < '0' || r > '9' {
				n = 0
				break
			}
			n = n*10 + int(r-'0')
		}
		if n >= 1 && n <= 24 {
			return uint16(0x70 + n - 1), nil
		}
	}

	if len(lower) == 1 {
		c := lower[0]
		switch {
		case c >= 'a' && c <= 'z':
			return uint16('A' + c - 'a'), nil
		case c >= '0' && c <= '9':
			return uint16(c), nil
		}
	}

	return 0, fmt.Errorf("unknown key %q", lower)
}

// String renders the chord in canonical Ctrl+Alt+Shift+Win+Key order.
func (c Chord) String() string {
	var parts []string
	if c.Modifiers&ModControl != 0 {
		parts = append(parts, "Ctrl")
	}
	if c.Modifiers&ModAlt != 0 {
		parts = append(parts, "Alt")
	}
	if c.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	if c.Modifiers&ModWin != 0 {
		parts = append(parts, "Win")
	}
	parts = append(parts, keyName(c.Key))
	return strings.Join(parts, "+")
}

// keyNames is the canonical display name per code; parsing aliases like
// "return" and "escape" collapse onto these.
var keyNames = map[uint16]string{
	0x20: "Space",
	0x09: "Tab",
	0x0D: "Enter",
	0x1B: "Esc",
	0x08: "Backspace",
	0x2D: "Insert",
	0x2E: "Delete",
	0x24: "Home",
	0x23: "End",
	0x21: "PageUp",
	0x22: "PageDown",
	0x25: "Left",
	0x26: "Up",
	0x27: "Right",
	0x28: "Down",
	0x13: "Pause",
	0x2C: "PrintScreen",
}

func keyName(key uint16) string {
	if name, ok := keyNames[key]; ok {
		return name
	}
	switch {
	case key >= 0x70 && key <= 0x87:
		return fmt.Sprintf("F%d", key-0x70+1)
	case key >= 'A' && key <= 'Z', key >= '0' && key <= '9':
		return string(rune(key))
	}
	return fmt.Sprintf("0x%02X", key)
}
