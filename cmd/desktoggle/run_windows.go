//go:build windows

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/a632079/desktoggle/internal/app"
	"github.com/a632079/desktoggle/internal/config"
	"github.com/a632079/desktoggle/internal/winapi"
)

func runDaemonCommand(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	cfgPath := fs.String("config", "", "config file path (default: standard location)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: desktoggle run [--config path]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Start the desktoggle daemon in the foreground.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	path, err := resolveConfigPath(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, cleanup, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	if err := app.Run(path, cfg, logger); err != nil {
		if errors.Is(err, winapi.ErrAlreadyRunning) {
			fmt.Fprintln(os.Stderr, "Error: desktoggle is already running.")
			return 1
		}
		logger.Error("daemon failed", "error", err)
		return 1
	}
	return 0
}
