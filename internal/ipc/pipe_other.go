//go:build !windows

package ipc

import (
	"errors"
	"net"
	"time"
)

var errUnsupported = errors.New("named pipe IPC is only available on windows")

func listenPipe() (net.Listener, error) {
	return nil, errUnsupported
}

func dialPipe(time.Duration) (net.Conn, error) {
	return nil, errUnsupported
}
