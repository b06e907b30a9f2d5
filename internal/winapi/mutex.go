//go:build windows

package winapi

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// ErrAlreadyRunning reports that another process holds the instance mutex.
var ErrAlreadyRunning = errors.New("another instance is already running")

// AcquireSingleInstance claims a named mutex for the lifetime of the
// process. The handle stays open until ReleaseSingleInstance or process
// exit; the OS releases it either way.
func AcquireSingleInstance(name string) (windows.Handle, error) {
	handle, err := windows.CreateMutex(nil, false, utf16Ptr(name))
	if err != nil {
		if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
			if handle != 0 {
				windows.CloseHandle(handle)
			}
			return 0, ErrAlreadyRunning
		}
		return 0, fmt.Errorf("CreateMutex(%s): %w", name, err)
	}
	return handle, nil
}

// ReleaseSingleInstance closes the instance mutex handle.
func ReleaseSingleInstance(handle windows.Handle) {
	if handle != 0 {
		windows.CloseHandle(handle)
	}
}
