package hotkey

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Chord
	}{
		{"Ctrl+Alt+F1", Chord{Modifiers: ModControl | ModAlt, Key: 0x70}},
		{"ctrl+alt+f1", Chord{Modifiers: ModControl | ModAlt, Key: 0x70}},
		{"Ctrl-Alt-F1", Chord{Modifiers: ModControl | ModAlt, Key: 0x70}},
		{"Control+Shift+A", Chord{Modifiers: ModControl | ModShift, Key: 'A'}},
		{"Win+D", Chord{Modifiers: ModWin, Key: 'D'}},
		{"Super+D", Chord{Modifiers: ModWin, Key: 'D'}},
		{"Alt+F12", Chord{Modifiers: ModAlt, Key: 0x7B}},
		{"Ctrl+F24", Chord{Modifiers: ModControl, Key: 0x87}},
		{"Shift+9", Chord{Modifiers: ModShift, Key: '9'}},
		{"Ctrl+Space", Chord{Modifiers: ModControl, Key: 0x20}},
		{"Ctrl+Escape", Chord{Modifiers: ModControl, Key: 0x1B}},
		{"Ctrl+Esc", Chord{Modifiers: ModControl, Key: 0x1B}},
		{"Ctrl+Alt+Delete", Chord{Modifiers: ModControl | ModAlt, Key: 0x2E}},
		{"F5", Chord{Key: 0x74}},
		{" Ctrl + Alt + F1 ", Chord{Modifiers: ModControl | ModAlt, Key: 0x70}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty string", "", "empty token"},
		{"only modifiers", "Ctrl+Alt", "no main key"},
		{"two main keys", "Ctrl+A+B", "more than one main key"},
		{"unknown key", "Ctrl+Flurb", "unknown key"},
		{"trailing separator", "Ctrl+A+", "empty token"},
		{"f0 is not a function key", "Ctrl+F0", "unknown key"},
		{"f25 is out of range", "Ctrl+F25", "unknown key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Parse(%q): expected error containing %q, got %v", tt.input, tt.wantErr, err)
			}
		})
	}
}

func TestChordString(t *testing.T) {
	tests := []struct {
		chord Chord
		want  string
	}{
		{Chord{Modifiers: ModControl | ModAlt, Key: 0x70}, "Ctrl+Alt+F1"},
		{Chord{Modifiers: ModShift | ModWin, Key: 'D'}, "Shift+Win+D"},
		{Chord{Key: 0x74}, "F5"},
		{Chord{Modifiers: ModControl, Key: 0x1B}, "Ctrl+Esc"},
	}

	for _, tt := range tests {
		if got := tt.chord.String(); got != tt.want {
			t.Fatalf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, input := range []string{"Ctrl+Alt+F1", "Shift+Win+D", "Ctrl+PageDown"} {
		chord, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		back, err := Parse(chord.String())
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", chord.String(), err)
		}
		if back != chord {
			t.Fatalf("round trip changed chord: %+v vs %+v", chord, back)
		}
	}
}
