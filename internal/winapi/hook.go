//go:build windows

package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// activeHook is the hook the shared callback forwards to. Only one
// low-level mouse hook exists per process; the callback itself is created
// once because NewCallback slots are never released.
var activeHook *MouseHook

var mouseHookCallback = windows.NewCallback(lowLevelMouseProc)

// MouseHook is a WH_MOUSE_LL hook reporting primary-button presses.
// Install, Uninstall and the callback all run on the thread that pumps the
// message loop; low-level hooks are dispatched through it.
type MouseHook struct {
	handle  uintptr
	onPress func(x, y int32)
}

// NewMouseHook creates an uninstalled hook. onPress receives the screen
// coordinates of every left-button press while installed.
func NewMouseHook(onPress func(x, y int32)) *MouseHook {
	return &MouseHook{onPress: onPress}
}

// Install registers the hook with the system.
func (h *MouseHook) Install() error {
	if h.handle != 0 {
		return nil
	}

	activeHook = h
	handle, _, err := procSetWindowsHookExW.Call(WH_MOUSE_LL, mouseHookCallback, 0, 0)
	if handle == 0 {
		activeHook = nil
		return fmt.Errorf("SetWindowsHookEx(WH_MOUSE_LL): %w", err)
	}
	h.handle = handle
	return nil
}

// Uninstall removes the hook. The active-hook slot is cleared only after
// the unhook succeeds, so a still-registered hook keeps its target.
func (h *MouseHook) Uninstall() error {
	if h.handle == 0 {
		return nil
	}

	ret, _, err := procUnhookWindowsHookEx.Call(h.handle)
	if ret == 0 {
		return fmt.Errorf("UnhookWindowsHookEx: %w", err)
	}
	h.handle = 0
	activeHook = nil
	return nil
}

// Installed reports whether the hook is currently registered.
func (h *MouseHook) Installed() bool {
	return h.handle != 0
}

func lowLevelMouseProc(code, wparam, lparam uintptr) uintptr {
	// Negative codes must be passed through untouched.
	if int32(code) == HC_ACTION && wparam == WM_LBUTTONDOWN && activeHook != nil {
		info := (*MSLLHOOKSTRUCT)(unsafe.Pointer(lparam))
		activeHook.onPress(info.Pt.X, info.Pt.Y)
	}
	ret, _, _ := procCallNextHookEx.Call(0, code, wparam, lparam)
	return ret
}
