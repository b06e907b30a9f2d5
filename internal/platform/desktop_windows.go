//go:build windows

package platform

import (
	"fmt"
	"time"

	"github.com/a632079/desktoggle/internal/winapi"
)

// sendCommandTimeout bounds how long a WM_COMMAND to Explorer may block.
const sendCommandTimeout = time.Second

// windowsDesktop implements Desktop over user32.
type windowsDesktop struct{}

// NewDesktop returns the live desktop for this session.
func NewDesktop() Desktop {
	return windowsDesktop{}
}

func (windowsDesktop) WindowAt(pt Point) (Window, bool) {
	h := winapi.WindowFromPoint(winapi.POINT{X: int32(pt.X), Y: int32(pt.Y)})
	return Window(h), h != 0
}

func (windowsDesktop) ClassName(w Window) string {
	return winapi.GetClassName(winapi.HWND(w))
}

func (windowsDesktop) Parent(w Window) (Window, bool) {
	h := winapi.GetParent(winapi.HWND(w))
	return Window(h), h != 0
}

func (windowsDesktop) FindWindow(class string) (Window, bool) {
	h := winapi.FindWindow(class)
	return Window(h), h != 0
}

func (windowsDesktop) FindChild(parent, after Window, class string) (Window, bool) {
	h := winapi.FindWindowEx(winapi.HWND(parent), winapi.HWND(after), class)
	return Window(h), h != 0
}

func (windowsDesktop) IsVisible(w Window) bool {
	return winapi.IsWindowVisible(winapi.HWND(w))
}

func (windowsDesktop) HitTestItem(list Window, pt Point) int {
	return winapi.ListViewHitTest(winapi.HWND(list), winapi.POINT{X: int32(pt.X), Y: int32(pt.Y)})
}

func (windowsDesktop) ForegroundWindow() (Window, bool) {
	h := winapi.GetForegroundWindow()
	return Window(h), h != 0
}

func (windowsDesktop) WindowBounds(w Window) (Rect, error) {
	r, err := winapi.GetWindowRect(winapi.HWND(w))
	if err != nil {
		return Rect{}, fmt.Errorf("window bounds: %w", err)
	}
	return rectFromWin(r), nil
}

func (windowsDesktop) MonitorBounds(w Window) (Rect, error) {
	r, err := winapi.MonitorRectForWindow(winapi.HWND(w))
	if err != nil {
		return Rect{}, fmt.Errorf("monitor bounds: %w", err)
	}
	return rectFromWin(r), nil
}

func (windowsDesktop) SendCommand(w Window, command uint16) error {
	return winapi.SendCommand(winapi.HWND(w), command, sendCommandTimeout)
}

func (windowsDesktop) DoubleClickTime() time.Duration {
	return winapi.GetDoubleClickTime()
}

func (windowsDesktop) DoubleClickExtent() (cx, cy int) {
	return winapi.DoubleClickExtent()
}

func rectFromWin(r winapi.RECT) Rect {
	return Rect{
		X:      int(r.Left),
		Y:      int(r.Top),
		Width:  int(r.Width()),
		Height: int(r.Height()),
	}
}
