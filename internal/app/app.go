//go:build windows

// Package app hosts the desktoggle daemon: it owns the message loop
// thread and wires the mouse hook, hotkey, IPC server and config watcher
// together on it.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"time"

	"github.com/a632079/desktoggle/internal/config"
	"github.com/a632079/desktoggle/internal/daemon"
	"github.com/a632079/desktoggle/internal/detect"
	"github.com/a632079/desktoggle/internal/hotkey"
	"github.com/a632079/desktoggle/internal/ipc"
	"github.com/a632079/desktoggle/internal/platform"
	"github.com/a632079/desktoggle/internal/winapi"
)

const (
	mutexName       = `Local\desktoggle-single-instance`
	windowClassName = "DesktoggleMessageWindow"

	pollTimerID    = 1
	toggleHotkeyID = 1

	// Internal messages posted onto the daemon thread by IPC and watcher
	// goroutines.
	msgToggle = winapi.WM_APP + 1
	msgStop   = winapi.WM_APP + 2
	msgReload = winapi.WM_APP + 3
)

// Registered message names. Any process registering the same name can
// drive a running daemon without the pipe.
const (
	externToggleMessage = "DesktoggleToggle"
	externExitMessage   = "DesktoggleExit"
)

// App is the running daemon.
type App struct {
	logger  *slog.Logger
	cfgPath string

	desktop  platform.Desktop
	toggler  *detect.Toggler
	detector *detect.Detector
	manager  *daemon.Manager
	hook     *winapi.MouseHook
	window   *winapi.MessageWindow

	startTime time.Time

	// mu guards the fields below; they are written on the daemon thread
	// and read by IPC connection goroutines building status responses.
	mu            sync.Mutex
	cfg           *config.Config
	hookInstalled bool

	registeredChord  hotkey.Chord
	hotkeyRegistered bool

	msgExternToggle uint32
	msgExternExit   uint32
}

// Run starts the daemon in the foreground and blocks until it exits.
func Run(cfgPath string, cfg *config.Config, logger *slog.Logger) error {
	// The hook, the timer and the hotkey are all delivered to the thread
	// that installed them. Everything lives on this one.
	runtime.LockOSThread()

	instance, err := winapi.AcquireSingleInstance(mutexName)
	if err != nil {
		return err
	}
	defer winapi.ReleaseSingleInstance(instance)

	desktop := platform.NewDesktop()

	a := &App{
		logger:    logger,
		cfgPath:   cfgPath,
		desktop:   desktop,
		cfg:       cfg,
		startTime: time.Now(),
	}

	a.toggler = detect.NewToggler(desktop, desktop, logger)
	a.detector = a.buildDetector()
	a.hook = winapi.NewMouseHook(a.onMousePress)

	a.manager = daemon.NewManager(a.hook, daemon.ManagerConfig{
		SuppressInFullscreen: cfg.SuppressInFullscreen,
		FullscreenTolerance:  cfg.FullscreenTolerance,
		Fullscreen: func(tolerance int) bool {
			return detect.IsFullscreenForeground(desktop, tolerance)
		},
		OnInstall: a.detector.ResetMemory,
		Logger:    logger,
	})

	window, err := winapi.NewMessageWindow(windowClassName, a.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to create message window: %w", err)
	}
	a.window = window
	defer window.Destroy()

	a.msgExternToggle = winapi.RegisterWindowMessage(externToggleMessage)
	a.msgExternExit = winapi.RegisterWindowMessage(externExitMessage)

	server := ipc.NewServer(ipcHandler{app: a}, logger)
	if err := server.Start(); err != nil {
		return err
	}
	defer server.Stop()

	watcher, err := config.Watch(cfgPath, func() {
		window.Post(msgReload, 0, 0)
	}, logger)
	if err != nil {
		logger.Warn("config watcher unavailable, live reload disabled", "error", err)
	} else {
		defer watcher.Close()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		window.Post(msgStop, 0, 0)
	}()

	a.applyConfig(cfg)
	a.manager.Poll()
	a.refreshStatus()

	logger.Info("daemon started",
		"mode", string(cfg.Mode),
		"hotkey", cfg.Hotkey,
		"suppress_in_fullscreen", cfg.SuppressInFullscreen,
		"poll_interval", cfg.PollInterval())

	winapi.RunMessageLoop()

	a.manager.Shutdown()
	if a.hotkeyRegistered {
		window.UnregisterHotKey(toggleHotkeyID)
	}
	logger.Info("daemon stopped")
	return nil
}

// buildDetector assembles the press pipeline using the system's own
// double-click limits.
func (a *App) buildDetector() *detect.Detector {
	cx, cy := a.desktop.DoubleClickExtent()
	thresholds := detect.Thresholds{
		Interval: a.desktop.DoubleClickTime(),
		MaxDX:    cx,
		MaxDY:    cy,
	}
	return detect.NewDetector(
		detect.NewClickMatcher(thresholds),
		detect.NewClassifier(a.desktop),
		a.desktop,
		func() { a.toggler.Toggle() },
		a.logger,
	)
}

// onMousePress runs inside the hook callback.
func (a *App) onMousePress(x, y int32) {
	pt := platform.Point{X: int(x), Y: int(y)}
	w, _ := a.desktop.WindowAt(pt)
	a.detector.HandlePress(detect.PointerEvent{
		Time:   time.Now(),
		Pos:    pt,
		Window: w,
	})
}

// handleMessage runs on the daemon thread for every window message.
func (a *App) handleMessage(msg uint32, wparam, lparam uintptr) bool {
	switch msg {
	case winapi.WM_TIMER:
		if wparam == pollTimerID {
			a.manager.Poll()
			a.refreshStatus()
			return true
		}
	case winapi.WM_HOTKEY:
		if wparam == toggleHotkeyID {
			a.toggler.Toggle()
			return true
		}
	case msgToggle, a.msgExternToggle:
		a.toggler.Toggle()
		return true
	case msgStop, a.msgExternExit:
		winapi.PostQuitMessage(0)
		return true
	case msgReload:
		a.reloadConfig()
		return true
	}
	return false
}

// reloadConfig re-reads the config file and applies it. A broken file
// keeps the previous configuration running.
func (a *App) reloadConfig() {
	cfg, err := config.LoadFromPath(a.cfgPath)
	if err != nil {
		a.logger.Warn("config reload failed, keeping previous config", "error", err)
		return
	}
	a.applyConfig(cfg)
	a.manager.Poll()
	a.refreshStatus()
	a.logger.Info("config reloaded", "mode", string(cfg.Mode), "hotkey", cfg.Hotkey)
}

// applyConfig pushes a config into the running pieces. Runs on the daemon
// thread.
func (a *App) applyConfig(cfg *config.Config) {
	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()

	a.manager.SetEnabled(cfg.Mode == config.ModeDoubleClick)
	a.manager.SetSuppression(cfg.SuppressInFullscreen, cfg.FullscreenTolerance)

	if err := a.window.SetTimer(pollTimerID, cfg.PollInterval()); err != nil {
		a.logger.Warn("failed to set poll timer", "error", err)
	}

	a.applyHotkey(cfg)
}

func (a *App) applyHotkey(cfg *config.Config) {
	if cfg.Mode != config.ModeHotkey {
		if a.hotkeyRegistered {
			a.window.UnregisterHotKey(toggleHotkeyID)
			a.hotkeyRegistered = false
		}
		return
	}

	chord, err := hotkey.Parse(cfg.Hotkey)
	if err != nil {
		a.logger.Error("invalid hotkey, toggle disabled until fixed", "hotkey", cfg.Hotkey, "error", err)
		if a.hotkeyRegistered {
			a.window.UnregisterHotKey(toggleHotkeyID)
			a.hotkeyRegistered = false
		}
		return
	}

	if a.hotkeyRegistered && chord == a.registeredChord {
		return
	}
	if a.hotkeyRegistered {
		a.window.UnregisterHotKey(toggleHotkeyID)
		a.hotkeyRegistered = false
	}

	if err := a.window.RegisterHotKey(toggleHotkeyID, chord.Modifiers, chord.Key); err != nil {
		a.logger.Error("failed to register hotkey, is another app using it?", "hotkey", chord.String(), "error", err)
		return
	}
	a.registeredChord = chord
	a.hotkeyRegistered = true
	a.logger.Info("hotkey registered", "hotkey", chord.String())
}

// refreshStatus publishes the hook state for status readers.
func (a *App) refreshStatus() {
	installed := a.manager.Installed()
	a.mu.Lock()
	a.hookInstalled = installed
	a.mu.Unlock()
}

// ipcHandler bridges IPC requests onto the daemon thread via posted
// messages. Status reads the published snapshot directly.
type ipcHandler struct {
	app *App
}

func (h ipcHandler) Toggle() error {
	h.app.window.Post(msgToggle, 0, 0)
	return nil
}

func (h ipcHandler) Stop() error {
	h.app.window.Post(msgStop, 0, 0)
	return nil
}

func (h ipcHandler) Reload() error {
	h.app.window.Post(msgReload, 0, 0)
	return nil
}

func (h ipcHandler) Status() ipc.StatusData {
	a := h.app

	a.mu.Lock()
	mode := string(a.cfg.Mode)
	chord := a.cfg.Hotkey
	installed := a.hookInstalled
	a.mu.Unlock()

	return ipc.StatusData{
		Mode:          mode,
		Hotkey:        chord,
		HookInstalled: installed,
		IconsVisible:  detect.IconsVisible(a.desktop, a.desktop),
		UptimeSeconds: int64(time.Since(a.startTime).Seconds()),
		DaemonRunning: true,
	}
}
