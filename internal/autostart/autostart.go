// Package autostart manages launching the daemon at user login.
package autostart

import "errors"

// ErrUnsupported reports that login autostart is not available on this
// platform.
var ErrUnsupported = errors.New("autostart is only supported on windows")

// Enable registers the given executable to start at user login.
func Enable(exePath string) error {
	return enable(exePath)
}

// Disable removes the login autostart registration. Removing an absent
// registration is not an error.
func Disable() error {
	return disable()
}

// Enabled reports whether autostart is currently registered, and the
// command it would run.
func Enabled() (bool, string, error) {
	return enabled()
}
