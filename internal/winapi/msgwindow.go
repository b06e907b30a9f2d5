//go:build windows

package winapi

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// MessageHandler processes a window message. Returning true consumes the
// message; false forwards it to DefWindowProc.
type MessageHandler func(msg uint32, wparam, lparam uintptr) bool

// activeWindow receives messages from the shared window procedure. The
// daemon owns a single message window, matching the single NewCallback
// slot.
var activeWindow *MessageWindow

var wndProcCallback = windows.NewCallback(wndProc)

// MessageWindow is a message-only window: invisible, never rendered, used
// to receive WM_TIMER, WM_HOTKEY and cross-process registered messages on
// the daemon thread.
type MessageWindow struct {
	hwnd    HWND
	handler MessageHandler
}

// NewMessageWindow registers className and creates a message-only window
// of that class. Must be called on the thread that will pump the loop.
func NewMessageWindow(className string, handler MessageHandler) (*MessageWindow, error) {
	if activeWindow != nil {
		return nil, fmt.Errorf("message window %q already exists", className)
	}

	var instance windows.Handle
	if err := windows.GetModuleHandleEx(0, nil, &instance); err != nil {
		return nil, fmt.Errorf("GetModuleHandle: %w", err)
	}

	classNamePtr := utf16Ptr(className)
	wc := WNDCLASSEXW{
		CbSize:        uint32(unsafe.Sizeof(WNDCLASSEXW{})),
		LpfnWndProc:   wndProcCallback,
		HInstance:     instance,
		LpszClassName: classNamePtr,
	}
	if atom, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		return nil, fmt.Errorf("RegisterClassEx(%s): %w", className, err)
	}

	w := &MessageWindow{handler: handler}
	activeWindow = w

	hwnd, _, err := procCreateWindowExW.Call(
		0,
		uintptr(unsafe.Pointer(classNamePtr)),
		uintptr(unsafe.Pointer(classNamePtr)),
		0,
		0, 0, 0, 0,
		HWND_MESSAGE,
		0,
		uintptr(instance),
		0,
	)
	if hwnd == 0 {
		activeWindow = nil
		return nil, fmt.Errorf("CreateWindowEx(%s): %w", className, err)
	}
	w.hwnd = HWND(hwnd)
	return w, nil
}

// Handle returns the window handle.
func (w *MessageWindow) Handle() HWND {
	return w.hwnd
}

// Destroy tears the window down.
func (w *MessageWindow) Destroy() {
	if w.hwnd != 0 {
		procDestroyWindow.Call(uintptr(w.hwnd))
		w.hwnd = 0
	}
	if activeWindow == w {
		activeWindow = nil
	}
}

// SetTimer starts (or restarts) a periodic WM_TIMER with the given ID.
func (w *MessageWindow) SetTimer(id uintptr, interval time.Duration) error {
	ret, _, err := procSetTimer.Call(uintptr(w.hwnd), id, uintptr(interval.Milliseconds()), 0)
	if ret == 0 {
		return fmt.Errorf("SetTimer: %w", err)
	}
	return nil
}

// KillTimer stops the timer with the given ID.
func (w *MessageWindow) KillTimer(id uintptr) {
	procKillTimer.Call(uintptr(w.hwnd), id)
}

// RegisterHotKey binds a global hotkey to this window. Fails when another
// application already owns the chord.
func (w *MessageWindow) RegisterHotKey(id int, modifiers, vk uint16) error {
	ret, _, err := procRegisterHotKey.Call(uintptr(w.hwnd), uintptr(id), uintptr(modifiers), uintptr(vk))
	if ret == 0 {
		return fmt.Errorf("RegisterHotKey: %w", err)
	}
	return nil
}

// UnregisterHotKey releases a hotkey binding.
func (w *MessageWindow) UnregisterHotKey(id int) {
	procUnregisterHotKey.Call(uintptr(w.hwnd), uintptr(id))
}

// Post queues a message to this window from any thread.
func (w *MessageWindow) Post(msg uint32, wparam, lparam uintptr) {
	procPostMessageW.Call(uintptr(w.hwnd), uintptr(msg), wparam, lparam)
}

// RegisterWindowMessage returns the system-wide message ID for a name.
// Every process registering the same name gets the same ID.
func RegisterWindowMessage(name string) uint32 {
	ret, _, _ := procRegisterWindowMessage.Call(uintptr(unsafe.Pointer(utf16Ptr(name))))
	return uint32(ret)
}

// PostQuitMessage asks the message loop to exit.
func PostQuitMessage(code int) {
	procPostQuitMessage.Call(uintptr(code))
}

// RunMessageLoop pumps messages until WM_QUIT. Blocks the calling thread;
// hook callbacks, timers and hotkeys are all delivered through it.
func RunMessageLoop() {
	var msg MSG
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		// 0 is WM_QUIT; -1 is a failure, also fatal for the loop.
		if int32(ret) == 0 || int32(ret) == -1 {
			return
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&msg)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&msg)))
	}
}

func wndProc(hwnd, msg, wparam, lparam uintptr) uintptr {
	if activeWindow != nil && activeWindow.handler != nil {
		if activeWindow.handler(uint32(msg), wparam, lparam) {
			return 0
		}
	}
	if uint32(msg) == WM_DESTROY {
		PostQuitMessage(0)
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(hwnd, msg, wparam, lparam)
	return ret
}
