//go:build windows

package ipc

import (
	"net"
	"time"

	"github.com/Microsoft/go-winio"
)

// PipeName is the daemon's named pipe endpoint. Pipes are per-session, so
// two users on the same machine get independent daemons.
const PipeName = `\\.\pipe\desktoggle`

func listenPipe() (net.Listener, error) {
	return winio.ListenPipe(PipeName, nil)
}

func dialPipe(timeout time.Duration) (net.Conn, error) {
	return winio.DialPipe(PipeName, &timeout)
}
