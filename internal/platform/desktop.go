package platform

import "time"

// Window is an opaque handle to a native top-level or child window.
// The zero value means "no window".
type Window uintptr

// Point is a position in virtual-screen coordinates. Coordinates can be
// negative when a secondary monitor sits left of or above the primary.
type Point struct {
	X int
	Y int
}

// Rect describes a rectangular region in virtual-screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Desktop abstracts the window-system operations the detection core needs.
// The Windows implementation lives in desktop_windows.go; tests substitute
// fakes for the narrow per-component interfaces declared where they are
// consumed.
type Desktop interface {
	// WindowAt returns the topmost window at the given screen point.
	WindowAt(pt Point) (Window, bool)

	// ClassName returns the window class name, or "" on failure.
	ClassName(w Window) string

	// Parent returns the parent of w, if any.
	Parent(w Window) (Window, bool)

	// FindWindow returns the first top-level window with the given class.
	FindWindow(class string) (Window, bool)

	// FindChild returns the first child of parent with the given class that
	// comes after the given sibling in creation order. A zero parent searches
	// top-level windows; a zero after starts from the beginning.
	FindChild(parent, after Window, class string) (Window, bool)

	// IsVisible reports whether the window is currently visible.
	IsVisible(w Window) bool

	// HitTestItem asks a list-style surface which item index sits under the
	// given screen point, restricted to the item area. Negative means none.
	HitTestItem(list Window, pt Point) int

	// ForegroundWindow returns the current foreground window.
	ForegroundWindow() (Window, bool)

	// WindowBounds returns the outer bounds of a window.
	WindowBounds(w Window) (Rect, error)

	// MonitorBounds returns the bounds of the monitor nearest to the window.
	MonitorBounds(w Window) (Rect, error)

	// SendCommand delivers a WM_COMMAND-style command to a window.
	SendCommand(w Window, command uint16) error

	// DoubleClickTime returns the system double-click interval.
	DoubleClickTime() time.Duration

	// DoubleClickExtent returns the maximum horizontal and vertical pixel
	// distance between the two clicks of a double-click.
	DoubleClickExtent() (cx, cy int)
}
