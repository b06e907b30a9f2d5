// Package detect implements recognition of double-clicks on blank desktop
// space: a click matcher fed by the low-level mouse hook, a classifier that
// resolves the desktop icon surface under a point, a blank-space hit test,
// and the toggle action that flips icon visibility.
package detect

import (
	"time"

	"github.com/a632079/desktoggle/internal/platform"
)

// PointerEvent is a single primary-button press as reported by the low-level
// mouse hook. Events are transient: they are consumed synchronously and only
// the matcher's single remembered click outlives the hook callback.
type PointerEvent struct {
	Time   time.Time
	Pos    platform.Point
	Window platform.Window
}
