package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dotty/internal/config"
	"github.com/vovakirdan/dotty/internal/engine"
	"github.com/vovakirdan/dotty/internal/ghostty"
	"github.com/vovakirdan/dotty/internal/platform/tui"
	"github.com/vovakirdan/dotty/internal/storage"
	"github.com/vovakirdan/dotty/internal/surface"
	"github.com/vovakirdan/dotty/internal/tick"
)

var (
	flagHandle  string
	flagScale   float64
	flagLibrary string
	flagOS      string
	flagNoStore bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Attach a terminal surface and drive it from this terminal",
	Long: `Load libghostty, create one surface in the native view given by --handle
(or host.handle in the config) and forward this terminal's keys, focus,
clicks and size to it until you quit.

If the library cannot be loaded, the engine fails to initialize, the
platform is unsupported or no handle is given, the terminal area shows why
instead of a surface.

Controls:
  Ctrl+R   - Detach and reattach the surface
  Ctrl+Q   - Quit

Examples:
  dotty run --handle 0x7f8e4c00a200
  dotty run --handle 0x40a2c --os windows --scale 1.5
  dotty run --library ./build/libghostty.dylib --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagHandle, "handle", "", "Native view handle (NSView* or HWND), decimal or 0x hex")
	runCmd.Flags().Float64Var(&flagScale, "scale", 0, "Display scale factor (0 = config)")
	runCmd.Flags().StringVar(&flagLibrary, "library", "", "Path to libghostty (default: config, then Native/)")
	runCmd.Flags().StringVar(&flagOS, "os", "", "Platform override: auto, macos, windows")
	runCmd.Flags().BoolVar(&flagNoStore, "no-journal", false, "Do not record surface sessions")
}

func runRun(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("dotty run needs an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyRunFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// The alternate screen owns stdout, so logs go to a file.
	w, closeLog, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(w, cfg.Log.Level)
	if err != nil {
		return err
	}

	hostOS, err := cfg.Host.OS()
	if err != nil {
		return err
	}
	settings, err := cfg.Surface.Settings()
	if err != nil {
		return err
	}

	mgr := openEngine(cfg, logger)

	timer := tui.NewTimer()
	ticker := tick.NewScheduler(mgr, timer, cfg.Engine.TickInterval)
	widget := tui.NewWidget(uintptr(cfg.Host.Handle), cfg.Host.Scale)

	opts := []surface.Option{
		surface.WithSettings(settings),
		surface.WithLogger(logger.WithPrefix("dotty/surface")),
	}
	if cfg.Storage.Enabled && !flagNoStore {
		store, err := storage.Open(cfg.Storage.Path)
		if err != nil {
			logger.Warn("could not open session journal", "error", err)
			// Continue without storage
		} else {
			defer store.Close()
			opts = append(opts, surface.WithJournal(store))
		}
	}

	ctrl := surface.New(widget, mgr, ticker, surface.NewStrategy(hostOS), opts...)
	model := tui.NewModel(ctrl, ticker, timer, widget,
		tui.WithLogger(logger.WithPrefix("dotty/host")),
		tui.WithCellSize(tui.CellSize{Width: cfg.Host.CellWidth, Height: cfg.Host.CellHeight}),
	)

	logger.Info("starting host",
		"os", hostOS,
		"handle", fmt.Sprintf("%#x", cfg.Host.Handle),
		"scale", cfg.Host.Scale,
		"tick", ticker.Interval())

	return tui.Run(model)
}

// applyRunFlags overrides config values with the flags that were set.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("library") {
		cfg.Engine.Library = flagLibrary
	}
	if flags.Changed("os") {
		cfg.Host.Platform = flagOS
	}
	if flags.Changed("scale") && flagScale > 0 {
		cfg.Host.Scale = flagScale
	}
	if flags.Changed("handle") {
		h, err := strconv.ParseUint(flagHandle, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid --handle %q: %w", flagHandle, err)
		}
		cfg.Host.Handle = h
	}
	return nil
}

// openEngine loads the library and returns the process manager. A load
// failure yields a manager that reports it on first use, so the widget
// degrades instead of the host exiting.
func openEngine(cfg config.Config, logger *log.Logger) *engine.Manager {
	engineOpts := []engine.Option{
		engine.WithArgs(cfg.Engine.Args),
		engine.WithRuntime(loggingRuntime(logger.WithPrefix("dotty/runtime"))),
		engine.WithLogger(logger.WithPrefix("dotty/engine")),
	}

	path := cfg.Engine.Library
	if path == "" {
		path = ghostty.DefaultLibraryPath()
	}
	lib, err := ghostty.Open(path)
	if err != nil {
		logger.Error("could not load libghostty", "path", path, "error", err)
		return engine.NewFailedManager(fmt.Errorf("load %s: %w", path, err), engineOpts...)
	}
	logger.Info("loaded libghostty", "path", lib.Path())

	return engine.NewManager(ghostty.Trace(lib, logger.WithPrefix("dotty/ghostty"), log.DebugLevel), engineOpts...)
}

// loggingRuntime logs engine callbacks. Clipboard and actions are not
// integrated with the host.
func loggingRuntime(logger *log.Logger) *ghostty.Runtime {
	rt := ghostty.NoopRuntime()
	rt.Action = func(app ghostty.App, target, action uintptr) bool {
		logger.Debug("action", "target", fmt.Sprintf("%#x", target), "action", fmt.Sprintf("%#x", action))
		return false
	}
	rt.WriteClipboard = func(clipboard ghostty.Clipboard, content []byte, confirm bool) {
		logger.Debug("clipboard write ignored", "clipboard", clipboard, "bytes", len(content), "confirm", confirm)
	}
	rt.CloseSurface = func(processAlive bool) {
		logger.Info("surface asked to close", "process_alive", processAlive)
	}
	return rt
}
