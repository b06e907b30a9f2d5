//go:build !windows

package main

import (
	"fmt"
	"os"
)

func runDaemonCommand([]string) int {
	fmt.Fprintln(os.Stderr, "Error: the desktoggle daemon only runs on Windows.")
	return 1
}
