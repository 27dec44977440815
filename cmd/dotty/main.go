// dotty embeds the ghostty terminal engine in a host toolkit widget.
//
// Usage:
//
//	dotty run                - Attach a terminal surface and drive it from this terminal
//	dotty probe              - Initialize the engine step by step and report each result
//	dotty keymap [--os os]   - Print the key translation table for a platform
//	dotty sessions           - Show recorded surface sessions
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.dotty/config.yaml, ./dotty.yaml, built-in)
//	--log-level <level> - debug, info, warn or error (default: from config)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotty/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dotty",
	Short: "dotty - Embed the ghostty terminal engine in a host widget",
	Long: `dotty loads libghostty at runtime and binds one terminal surface to a
native view owned by a host application (an NSView on macOS, an HWND on
Windows). Input reaches the surface through a focusable catcher; frames are
driven by a fixed-rate UI-thread timer.

Available commands:
  run       - Attach a surface and forward this terminal's input to it
  probe     - Check that the engine library initializes
  keymap    - Print the key translation table
  sessions  - View recorded surface sessions

Examples:
  dotty probe
  dotty run --handle 0x7f8e4c00a200
  dotty keymap --os windows
  dotty sessions --limit 20`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(keymapCmd)
	rootCmd.AddCommand(sessionsCmd)
}

// loadConfig loads the config selected by --config.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dotty",
	})
	if level != "" {
		lvl, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		logger.SetLevel(lvl)
	}
	return logger, nil
}

// openLogFile opens the configured log file for appending. The returned
// closer is never nil.
func openLogFile(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, f.Close, nil
}
