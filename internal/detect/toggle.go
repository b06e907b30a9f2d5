package detect

import (
	"log/slog"

	"github.com/a632079/desktoggle/internal/platform"
)

// toggleIconsCommand is the undocumented shell command Explorer's desktop
// window handles by flipping icon visibility.
const toggleIconsCommand = 0x7402

// CommandSender delivers shell commands to a window.
type CommandSender interface {
	SendCommand(w platform.Window, command uint16) error
}

// Toggler flips desktop icon visibility by messaging Explorer's desktop
// management window. Each invocation re-resolves its target from scratch so
// an Explorer restart between calls cannot leave it holding a dead handle.
type Toggler struct {
	tree   WindowTree
	sender CommandSender
	logger *slog.Logger
}

// NewToggler returns a toggler over the given window tree and sender.
func NewToggler(tree WindowTree, sender CommandSender, logger *slog.Logger) *Toggler {
	return &Toggler{tree: tree, sender: sender, logger: logger}
}

// Toggle flips desktop icon visibility. The action is idempotent per
// invocation and deliberately fire-and-forget: when no target window exists
// (Explorer restarting) it logs and does nothing, leaving the next trigger
// to try again.
func (t *Toggler) Toggle() {
	if progman, ok := t.tree.FindWindow(ClassProgman); ok {
		if err := t.sender.SendCommand(progman, toggleIconsCommand); err != nil {
			t.logger.Warn("toggle command failed", "target", ClassProgman, "error", err)
		}
		return
	}

	// Progman can be absent mid-restart; fall back to the parent of the
	// icon container, which handles the same command.
	container, ok := (&Classifier{tree: t.tree}).shellViewContainer()
	if !ok {
		t.logger.Warn("desktop window not found, toggle skipped")
		return
	}
	parent, ok := t.tree.Parent(container)
	if !ok {
		t.logger.Warn("icon container has no parent, toggle skipped")
		return
	}
	if err := t.sender.SendCommand(parent, toggleIconsCommand); err != nil {
		t.logger.Warn("toggle command failed", "target", ClassWorkerW, "error", err)
	}
}

// IconsVisible reports whether the desktop icon list is currently shown.
// When the surface cannot be resolved the icons are assumed visible.
func IconsVisible(tree WindowTree, vis interface {
	IsVisible(platform.Window) bool
}) bool {
	surface, ok := NewClassifier(tree).Surface()
	if !ok {
		return true
	}
	return vis.IsVisible(surface)
}
