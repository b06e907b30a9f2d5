package detect

import "log/slog"

// Detector is the press-to-toggle pipeline: match a double-click, classify
// the surface under it, hit-test for blank space, and fire the toggle.
type Detector struct {
	matcher    *ClickMatcher
	classifier *Classifier
	hits       HitTester
	toggle     func()
	logger     *slog.Logger
}

// NewDetector wires the pipeline. The toggle callback fires once per
// recognized double-click on blank desktop space.
func NewDetector(matcher *ClickMatcher, classifier *Classifier, hits HitTester, toggle func(), logger *slog.Logger) *Detector {
	return &Detector{
		matcher:    matcher,
		classifier: classifier,
		hits:       hits,
		toggle:     toggle,
		logger:     logger,
	}
}

// HandlePress consumes one primary-button press from the hook callback.
//
// It must never panic out: the caller sits inside a low-level hook callback,
// and an escaped failure there can get the hook chain disabled for every
// process on the system. A double-click on an icon and a failed
// classification are equally silent no-ops.
func (d *Detector) HandlePress(ev PointerEvent) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("press handling panicked", "panic", r)
		}
	}()

	if !d.matcher.Observe(ev) {
		return
	}
	surface, ok := d.classifier.SurfaceAt(ev.Pos)
	if !ok {
		return
	}
	if !IsBlankAt(d.hits, surface, ev.Pos) {
		return
	}
	d.logger.Debug("double-click on blank desktop", "x", ev.Pos.X, "y", ev.Pos.Y)
	d.toggle()
}

// ResetMemory clears the matcher's remembered press. Called when the hook is
// reinstalled so a click from a previous hook session cannot pair with a
// fresh one.
func (d *Detector) ResetMemory() {
	d.matcher.Reset()
}
