//go:build windows

// Package winapi wraps the slice of user32 and kernel32 the daemon needs:
// window queries for classifying the desktop, the low-level mouse hook, a
// message-only window with its message loop, and global hotkeys.
package winapi

import (
	"golang.org/x/sys/windows"
)

// HWND is a window handle.
type HWND uintptr

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procWindowFromPoint       = user32.NewProc("WindowFromPoint")
	procGetClassNameW         = user32.NewProc("GetClassNameW")
	procGetParent             = user32.NewProc("GetParent")
	procFindWindowW           = user32.NewProc("FindWindowW")
	procFindWindowExW         = user32.NewProc("FindWindowExW")
	procIsWindowVisible       = user32.NewProc("IsWindowVisible")
	procGetForegroundWindow   = user32.NewProc("GetForegroundWindow")
	procGetWindowRect         = user32.NewProc("GetWindowRect")
	procMonitorFromWindow     = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW       = user32.NewProc("GetMonitorInfoW")
	procScreenToClient        = user32.NewProc("ScreenToClient")
	procSendMessageW          = user32.NewProc("SendMessageW")
	procSendMessageTimeoutW   = user32.NewProc("SendMessageTimeoutW")
	procPostMessageW          = user32.NewProc("PostMessageW")
	procGetDoubleClickTime    = user32.NewProc("GetDoubleClickTime")
	procGetSystemMetrics      = user32.NewProc("GetSystemMetrics")
	procSetWindowsHookExW     = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx   = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx        = user32.NewProc("CallNextHookEx")
	procRegisterClassExW      = user32.NewProc("RegisterClassExW")
	procCreateWindowExW       = user32.NewProc("CreateWindowExW")
	procDestroyWindow         = user32.NewProc("DestroyWindow")
	procDefWindowProcW        = user32.NewProc("DefWindowProcW")
	procGetMessageW           = user32.NewProc("GetMessageW")
	procTranslateMessage      = user32.NewProc("TranslateMessage")
	procDispatchMessageW      = user32.NewProc("DispatchMessageW")
	procPostQuitMessage       = user32.NewProc("PostQuitMessage")
	procSetTimer              = user32.NewProc("SetTimer")
	procKillTimer             = user32.NewProc("KillTimer")
	procRegisterHotKey        = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey      = user32.NewProc("UnregisterHotKey")
	procRegisterWindowMessage = user32.NewProc("RegisterWindowMessageW")
)

// Window messages and related constants.
const (
	WM_DESTROY     = 0x0002
	WM_CLOSE       = 0x0010
	WM_TIMER       = 0x0113
	WM_COMMAND     = 0x0111
	WM_LBUTTONDOWN = 0x0201
	WM_HOTKEY      = 0x0312
	WM_APP         = 0x8000

	WH_MOUSE_LL = 14
	HC_ACTION   = 0

	// LVM_HITTEST is LVM_FIRST (0x1000) + 18.
	LVM_HITTEST = 0x1012

	SM_CXDOUBLECLK = 36
	SM_CYDOUBLECLK = 37

	MONITOR_DEFAULTTONEAREST = 2

	SMTO_ABORTIFHUNG = 0x0002
)

// HWND_MESSAGE parents a window into the message-only hierarchy.
const HWND_MESSAGE = ^uintptr(2) // (HWND)-3

// POINT is the Win32 POINT struct.
type POINT struct {
	X, Y int32
}

// RECT is the Win32 RECT struct.
type RECT struct {
	Left, Top, Right, Bottom int32
}

// Width returns the rectangle width in pixels.
func (r RECT) Width() int32 { return r.Right - r.Left }

// Height returns the rectangle height in pixels.
func (r RECT) Height() int32 { return r.Bottom - r.Top }

// MSG is the Win32 MSG struct.
type MSG struct {
	Hwnd    HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      POINT
}

// MONITORINFO is the Win32 MONITORINFO struct.
type MONITORINFO struct {
	CbSize    uint32
	RcMonitor RECT
	RcWork    RECT
	DwFlags   uint32
}

// MSLLHOOKSTRUCT is the event payload delivered to a WH_MOUSE_LL hook.
type MSLLHOOKSTRUCT struct {
	Pt          POINT
	MouseData   uint32
	Flags       uint32
	Time        uint32
	DwExtraInfo uintptr
}

// LVHITTESTINFO is the LVM_HITTEST parameter struct.
type LVHITTESTINFO struct {
	Pt       POINT
	Flags    uint32
	IItem    int32
	ISubItem int32
	IGroup   int32
}

// WNDCLASSEXW is the Win32 WNDCLASSEXW struct.
type WNDCLASSEXW struct {
	CbSize        uint32
	Style         uint32
	LpfnWndProc   uintptr
	CbClsExtra    int32
	CbWndExtra    int32
	HInstance     windows.Handle
	HIcon         windows.Handle
	HCursor       windows.Handle
	HbrBackground windows.Handle
	LpszMenuName  *uint16
	LpszClassName *uint16
	HIconSm       windows.Handle
}
