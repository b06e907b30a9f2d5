package daemon

import (
	"log/slog"
	"time"
)

// Hook is the low-level mouse hook owned by the manager. Install and
// Uninstall must be called from the thread that runs the message loop.
type Hook interface {
	Install() error
	Uninstall() error
}

// uninstallAttempts bounds how many times a failing uninstall is retried
// before the hook handle is discarded.
const uninstallAttempts = 3

// uninstallBackoff is the pause between uninstall retries.
const uninstallBackoff = 50 * time.Millisecond

// ManagerConfig holds configuration for the hook manager.
type ManagerConfig struct {
	SuppressInFullscreen bool
	FullscreenTolerance  int

	// Fullscreen reports whether the foreground window currently covers its
	// monitor within the given pixel tolerance.
	Fullscreen func(tolerance int) bool

	// OnInstall runs after each successful hook install. Used to clear any
	// click memory left over from a previous hook session.
	OnInstall func()

	// Sleep defaults to time.Sleep; injectable for tests.
	Sleep func(time.Duration)

	Logger *slog.Logger
}

// Manager reconciles the mouse hook's installed state against the desired
// state on every poll tick. The desired state is derived fresh each tick
// from the trigger mode and the fullscreen suppression check, so a missed
// or failed transition heals on the next tick.
//
// The manager is single-threaded: Poll and the setters run on the message
// loop thread, never concurrently.
type Manager struct {
	hook       Hook
	fullscreen func(int) bool
	onInstall  func()
	sleep      func(time.Duration)
	logger     *slog.Logger

	enabled   bool
	suppress  bool
	tolerance int
	installed bool
}

// NewManager creates a hook manager. The hook starts uninstalled; call
// SetEnabled and then Poll to converge.
func NewManager(hook Hook, cfg ManagerConfig) *Manager {
	fullscreen := cfg.Fullscreen
	if fullscreen == nil {
		fullscreen = func(int) bool { return false }
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Manager{
		hook:       hook,
		fullscreen: fullscreen,
		onInstall:  cfg.OnInstall,
		sleep:      sleep,
		logger:     cfg.Logger,
		suppress:   cfg.SuppressInFullscreen,
		tolerance:  cfg.FullscreenTolerance,
	}
}

// SetEnabled turns double-click detection on or off. The hook itself is
// only touched on the next Poll.
func (m *Manager) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// SetSuppression updates the fullscreen suppression policy. Takes effect on
// the next Poll.
func (m *Manager) SetSuppression(suppress bool, tolerance int) {
	m.suppress = suppress
	m.tolerance = tolerance
}

// Installed reports whether the hook is currently installed.
func (m *Manager) Installed() bool {
	return m.installed
}

// Poll performs one reconciliation pass: derive the desired hook state and
// install or uninstall as needed. A failed install is retried on the next
// tick, never within one.
func (m *Manager) Poll() {
	defer func() {
		if err := recover(); err != nil {
			m.logger.Error("hook poll panic recovered", "error", err)
		}
	}()

	desired := m.enabled
	if desired && m.suppress && m.fullscreen(m.tolerance) {
		desired = false
	}

	switch {
	case desired && !m.installed:
		m.install()
	case !desired && m.installed:
		m.uninstall()
	}
}

// Shutdown removes the hook regardless of the desired state. Called once
// when the daemon exits.
func (m *Manager) Shutdown() {
	if m.installed {
		m.uninstall()
	}
}

func (m *Manager) install() {
	if err := m.hook.Install(); err != nil {
		m.logger.Warn("mouse hook install failed", "error", err)
		return
	}
	m.installed = true
	m.logger.Info("mouse hook installed")
	if m.onInstall != nil {
		m.onInstall()
	}
}

// uninstall retries a few times and then discards the hook handle: the OS
// removes dangling low-level hooks when the owning thread dies, so leaking
// one is preferable to keeping a half-dead hook slowing every mouse event.
func (m *Manager) uninstall() {
	for attempt := 1; attempt <= uninstallAttempts; attempt++ {
		err := m.hook.Uninstall()
		if err == nil {
			m.installed = false
			m.logger.Info("mouse hook removed")
			return
		}
		m.logger.Warn("mouse hook uninstall failed", "attempt", attempt, "error", err)
		if attempt < uninstallAttempts {
			m.sleep(uninstallBackoff)
		}
	}
	m.installed = false
	m.logger.Error("mouse hook uninstall abandoned, handle discarded")
}
