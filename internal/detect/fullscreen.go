package detect

import "github.com/a632079/desktoggle/internal/platform"

// ForegroundQuerier is the subset of platform.Desktop needed to decide
// whether the foreground window is fullscreen.
type ForegroundQuerier interface {
	ForegroundWindow() (platform.Window, bool)
	WindowBounds(w platform.Window) (platform.Rect, error)
	MonitorBounds(w platform.Window) (platform.Rect, error)
}

// IsFullscreenForeground reports whether the current foreground window
// covers its nearest monitor, allowing the window size to differ from the
// monitor size by up to tolerance pixels on each axis.
//
// Every lookup failure yields false: losing fullscreen suppression for a
// tick is preferable to silently disabling double-click detection.
func IsFullscreenForeground(q ForegroundQuerier, tolerance int) bool {
	w, ok := q.ForegroundWindow()
	if !ok {
		return false
	}
	bounds, err := q.WindowBounds(w)
	if err != nil {
		return false
	}
	monitor, err := q.MonitorBounds(w)
	if err != nil {
		return false
	}
	return abs(bounds.Width-monitor.Width) <= tolerance &&
		abs(bounds.Height-monitor.Height) <= tolerance
}
