package detect

import "time"

// Thresholds are the system double-click limits a pair of presses must stay
// within to count as a double-click.
type Thresholds struct {
	// Interval is the maximum time between the two presses.
	Interval time.Duration

	// MaxDX and MaxDY bound the pixel distance between the two presses on
	// each axis independently.
	MaxDX int
	MaxDY int
}

// ClickMatcher recognizes double-clicks from a stream of primary-button
// presses. It holds exactly one remembered press: a press that fails to
// complete a double-click becomes the first half of the next candidate pair,
// and a recognized double-click clears the memory so a third rapid press
// cannot pair with it again.
//
// The matcher is not safe for concurrent use; the hook callback and the poll
// timer share the installing thread, so there is no concurrent caller.
type ClickMatcher struct {
	thresholds Thresholds
	armed      bool
	last       PointerEvent
}

// NewClickMatcher returns a matcher using the given thresholds.
func NewClickMatcher(th Thresholds) *ClickMatcher {
	return &ClickMatcher{thresholds: th}
}

// Observe consumes one primary-button press and reports whether it completed
// a double-click with the previously remembered press.
func (m *ClickMatcher) Observe(ev PointerEvent) bool {
	if m.armed && m.matches(ev) {
		m.Reset()
		return true
	}
	m.armed = true
	m.last = ev
	return false
}

func (m *ClickMatcher) matches(ev PointerEvent) bool {
	if ev.Time.Sub(m.last.Time) > m.thresholds.Interval {
		return false
	}
	if ev.Window == 0 || ev.Window != m.last.Window {
		return false
	}
	dx := abs(ev.Pos.X - m.last.Pos.X)
	dy := abs(ev.Pos.Y - m.last.Pos.Y)
	return dx <= m.thresholds.MaxDX && dy <= m.thresholds.MaxDY
}

// Reset discards the remembered press, returning the matcher to idle.
func (m *ClickMatcher) Reset() {
	m.armed = false
	m.last = PointerEvent{}
}

// Armed reports whether a first press is currently remembered.
func (m *ClickMatcher) Armed() bool {
	return m.armed
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
