package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/a632079/desktoggle/internal/autostart"
	"github.com/a632079/desktoggle/internal/config"
	"github.com/a632079/desktoggle/internal/hotkey"
	"github.com/a632079/desktoggle/internal/ipc"
	"gopkg.in/yaml.v3"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runDaemonCommand(os.Args[2:]))
	case "toggle":
		os.Exit(runToggle(os.Args[2:]))
	case "stop":
		os.Exit(runStop(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "autostart":
		os.Exit(runAutostart(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "version":
		fmt.Println("desktoggle " + version)
		os.Exit(0)
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: desktoggle <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Start the desktoggle daemon (foreground)")
	fmt.Fprintln(w, "  toggle              Toggle desktop icons via the running daemon")
	fmt.Fprintln(w, "  stop                Stop the running daemon")
	fmt.Fprintln(w, "  reload              Reload the daemon's configuration")
	fmt.Fprintln(w, "  status              Show daemon status")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  autostart enable    Start the daemon at login")
	fmt.Fprintln(w, "  autostart disable   Remove the login registration")
	fmt.Fprintln(w, "  autostart status    Show the login registration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  version             Print version")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'desktoggle <command> --help' for command-specific options.")
}

func runToggle(args []string) int {
	fs := flag.NewFlagSet("toggle", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: desktoggle toggle")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Toggle desktop icon visibility via the running daemon.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if err := ipc.NewClient().Toggle(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runStop(args []string) int {
	fs := flag.NewFlagSet("stop", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: desktoggle stop")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if err := ipc.NewClient().Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println("Daemon stopping.")
	return 0
}

func runReload(args []string) int {
	fs := flag.NewFlagSet("reload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: desktoggle reload")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if err := ipc.NewClient().Reload(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println("Configuration reloaded.")
	return 0
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	jsonOut := fs.Bool("json", false, "output status as JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: desktoggle status [--json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show daemon status via IPC.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	status, err := ipc.NewClient().GetStatus()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *jsonOut {
		printStatusJSON(status)
		return 0
	}

	fmt.Printf("Daemon:         running (up %ds)\n", status.UptimeSeconds)
	fmt.Printf("Mode:           %s\n", status.Mode)
	if status.Mode == string(config.ModeHotkey) {
		fmt.Printf("Hotkey:         %s\n", status.Hotkey)
	}
	fmt.Printf("Mouse hook:     %s\n", onOff(status.HookInstalled, "installed", "not installed"))
	fmt.Printf("Desktop icons:  %s\n", onOff(status.IconsVisible, "visible", "hidden"))
	return 0
}

func printStatusJSON(status *ipc.StatusData) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(status); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func onOff(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}

func runAutostart(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: desktoggle autostart <enable|disable|status>")
		return 2
	}

	switch args[0] {
	case "enable":
		exe, err := os.Executable()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to locate executable: %v\n", err)
			return 1
		}
		if err := autostart.Enable(exe); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println("Autostart enabled.")
		return 0
	case "disable":
		if err := autostart.Disable(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println("Autostart disabled.")
		return 0
	case "status":
		enabled, command, err := autostart.Enabled()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if enabled {
			fmt.Printf("Autostart enabled: %s\n", command)
		} else {
			fmt.Println("Autostart disabled.")
		}
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown autostart subcommand: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "Usage: desktoggle autostart <enable|disable|status>")
		return 2
	}
}

func runConfig(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: desktoggle config <validate|print>")
		return 2
	}

	switch args[0] {
	case "validate":
		return runConfigValidate(args[1:])
	case "print":
		return runConfigPrint(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "Usage: desktoggle config <validate|print>")
		return 2
	}
}

func runConfigValidate(args []string) int {
	fs := flag.NewFlagSet("config validate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("file", "", "config file path (default: standard location)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: desktoggle config validate [--file path]")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	resolved, err := resolveConfigPath(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg, err := config.LoadFromPath(resolved)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		return 1
	}
	if cfg.Mode == config.ModeHotkey {
		if _, err := hotkey.Parse(cfg.Hotkey); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
			return 1
		}
	}
	fmt.Printf("Valid: %s\n", resolved)
	return 0
}

func runConfigPrint(args []string) int {
	fs := flag.NewFlagSet("config print", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("file", "", "config file path (default: standard location)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: desktoggle config print [--file path]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the effective configuration, defaults included.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	resolved, err := resolveConfigPath(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg, err := config.LoadFromPath(resolved)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("# %s\n%s", resolved, out)
	return 0
}

func resolveConfigPath(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	return config.DefaultConfigPath()
}

// setupLogging builds the daemon logger from config.
func setupLogging(cfg *config.Config) (*slog.Logger, func(), error) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	out := io.Writer(os.Stderr)
	cleanup := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		cleanup = func() { f.Close() }
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})), cleanup, nil
}
