package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dotty/internal/engine"
	"github.com/vovakirdan/dotty/internal/ghostty"
	"github.com/vovakirdan/dotty/internal/platform"
	"github.com/vovakirdan/dotty/internal/surface"
	"github.com/vovakirdan/dotty/internal/tick"
)

var (
	flagProbeLibrary string
	flagProbeHandle  string
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Initialize the engine step by step and report each result",
	Long: `Loads libghostty, runs the engine bring-up (init, config, default files,
finalize, app) and prints every call with its result. Nothing is attached
unless --handle is given, in which case one surface is created in that
native view, drawn once and freed.

Exits non-zero if any step fails.

Examples:
  dotty probe
  dotty probe --library ./build/libghostty.dylib
  dotty probe --handle 0x7f8e4c00a200`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().StringVar(&flagProbeLibrary, "library", "", "Path to libghostty (default: config, then Native/)")
	probeCmd.Flags().StringVar(&flagProbeHandle, "handle", "", "Also create a surface in this native view")
}

func runProbe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}

	path := flagProbeLibrary
	if path == "" {
		path = cfg.Engine.Library
	}
	if path == "" {
		path = ghostty.DefaultLibraryPath()
	}

	fmt.Println("Starting ghostty probe...")
	fmt.Printf("Loading %s...\n", path)
	lib, err := ghostty.Open(path)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	steps := logger.WithPrefix("ghostty")
	mgr := engine.NewManager(ghostty.Trace(lib, steps, log.InfoLevel),
		engine.WithArgs(cfg.Engine.Args),
		engine.WithLogger(logger.WithPrefix("engine")),
	)
	if err := mgr.EnsureInitialized(); err != nil {
		return fmt.Errorf("engine bring-up failed: %w", err)
	}
	fmt.Printf("App created: %#x\n", uintptr(mgr.App()))

	if flagProbeHandle != "" {
		if err := probeSurface(mgr, cfg.Host.Platform, cfg.Host.Scale, logger); err != nil {
			return err
		}
	}

	fmt.Println("Probe complete.")
	return nil
}

// probeWidget is a widget for a bare native handle.
type probeWidget struct {
	handle uintptr
	scale  float64
}

func (w probeWidget) NativeHandle() uintptr  { return w.handle }
func (w probeWidget) RenderScaling() float64 { return w.scale }
func (w probeWidget) Focus()                 {}

func probeSurface(mgr *engine.Manager, platformName string, scale float64, logger *log.Logger) error {
	handle, err := strconv.ParseUint(flagProbeHandle, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid --handle %q: %w", flagProbeHandle, err)
	}
	o, err := platform.Parse(platformName)
	if err != nil {
		return err
	}

	// No timer: the probe fires one frame by hand.
	ticker := tick.NewScheduler(mgr, nil, 0)
	ctrl := surface.New(probeWidget{handle: uintptr(handle), scale: scale}, mgr, ticker,
		surface.NewStrategy(o), surface.WithLogger(logger.WithPrefix("surface")))

	if err := ctrl.Attach(); err != nil {
		if errors.Is(err, platform.ErrUnsupported) {
			return fmt.Errorf("surface probe needs macOS or Windows: %w", err)
		}
		return fmt.Errorf("surface creation failed: %w", err)
	}
	fmt.Printf("Surface created: %#x\n", uintptr(ctrl.Surface()))

	ticker.Fire()
	fmt.Println("Frame drawn.")

	ctrl.Detach()
	fmt.Println("Surface freed.")
	return nil
}
