//go:build windows

package winapi

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// WindowFromPoint returns the window covering a screen point, or 0.
func WindowFromPoint(pt POINT) HWND {
	// WindowFromPoint takes POINT by value: both int32 fields packed into
	// one 64-bit argument.
	ret, _, _ := procWindowFromPoint.Call(uintptr(uint32(pt.X)) | uintptr(uint32(pt.Y))<<32)
	return HWND(ret)
}

// GetClassName returns the window's class name, or "" if the window is gone.
func GetClassName(h HWND) string {
	var buf [256]uint16
	n, _, _ := procGetClassNameW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// GetParent returns the window's parent, or 0 for top-level windows.
func GetParent(h HWND) HWND {
	ret, _, _ := procGetParent.Call(uintptr(h))
	return HWND(ret)
}

// FindWindow finds a top-level window by class name.
func FindWindow(class string) HWND {
	ret, _, _ := procFindWindowW.Call(
		uintptr(unsafe.Pointer(utf16Ptr(class))),
		0,
	)
	return HWND(ret)
}

// FindWindowEx finds the next child of parent with the given class,
// starting after the given sibling. A zero parent searches top-level
// windows.
func FindWindowEx(parent, after HWND, class string) HWND {
	ret, _, _ := procFindWindowExW.Call(
		uintptr(parent),
		uintptr(after),
		uintptr(unsafe.Pointer(utf16Ptr(class))),
		0,
	)
	return HWND(ret)
}

// IsWindowVisible reports whether the window has WS_VISIBLE.
func IsWindowVisible(h HWND) bool {
	ret, _, _ := procIsWindowVisible.Call(uintptr(h))
	return ret != 0
}

// GetForegroundWindow returns the foreground window, or 0 during focus
// transitions.
func GetForegroundWindow() HWND {
	ret, _, _ := procGetForegroundWindow.Call()
	return HWND(ret)
}

// GetWindowRect returns the window's bounding rectangle in screen
// coordinates.
func GetWindowRect(h HWND) (RECT, error) {
	var r RECT
	ret, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ret == 0 {
		return RECT{}, fmt.Errorf("GetWindowRect: %w", err)
	}
	return r, nil
}

// MonitorRectForWindow returns the full bounds of the monitor nearest to
// the window.
func MonitorRectForWindow(h HWND) (RECT, error) {
	monitor, _, _ := procMonitorFromWindow.Call(uintptr(h), MONITOR_DEFAULTTONEAREST)
	if monitor == 0 {
		return RECT{}, fmt.Errorf("MonitorFromWindow: no monitor for window %#x", uintptr(h))
	}

	info := MONITORINFO{CbSize: uint32(unsafe.Sizeof(MONITORINFO{}))}
	ret, _, err := procGetMonitorInfoW.Call(monitor, uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return RECT{}, fmt.Errorf("GetMonitorInfo: %w", err)
	}
	return info.RcMonitor, nil
}

// ScreenToClient converts a screen point into the window's client
// coordinates in place.
func ScreenToClient(h HWND, pt *POINT) bool {
	ret, _, _ := procScreenToClient.Call(uintptr(h), uintptr(unsafe.Pointer(pt)))
	return ret != 0
}

// ListViewHitTest asks a SysListView32 which item sits at a screen point.
// Returns -1 for blank space or when the query fails.
func ListViewHitTest(list HWND, screenPt POINT) int {
	pt := screenPt
	if !ScreenToClient(list, &pt) {
		return -1
	}

	info := LVHITTESTINFO{Pt: pt, IItem: -1}
	ret, _, _ := procSendMessageW.Call(
		uintptr(list),
		LVM_HITTEST,
		0,
		uintptr(unsafe.Pointer(&info)),
	)
	return int(int32(ret))
}

// SendCommand delivers WM_COMMAND with the given command ID, aborting if
// the target has stopped pumping messages so a hung Explorer cannot hang
// the daemon with it.
func SendCommand(h HWND, command uint16, timeout time.Duration) error {
	var result uintptr
	ret, _, err := procSendMessageTimeoutW.Call(
		uintptr(h),
		WM_COMMAND,
		uintptr(command),
		0,
		SMTO_ABORTIFHUNG,
		uintptr(timeout.Milliseconds()),
		uintptr(unsafe.Pointer(&result)),
	)
	if ret == 0 {
		return fmt.Errorf("SendMessageTimeout(WM_COMMAND %#x): %w", command, err)
	}
	return nil
}

// GetDoubleClickTime returns the system double-click interval.
func GetDoubleClickTime() time.Duration {
	ret, _, _ := procGetDoubleClickTime.Call()
	return time.Duration(ret) * time.Millisecond
}

// GetSystemMetrics returns the requested system metric.
func GetSystemMetrics(index int) int {
	ret, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int(int32(ret))
}

// DoubleClickExtent returns the system double-click rectangle half-widths.
func DoubleClickExtent() (cx, cy int) {
	return GetSystemMetrics(SM_CXDOUBLECLK), GetSystemMetrics(SM_CYDOUBLECLK)
}

func utf16Ptr(s string) *uint16 {
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		// Class names are compile-time constants without NULs.
		panic(err)
	}
	return p
}
