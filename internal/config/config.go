// Package config provides YAML-based configuration for the dotty host:
// where to find the engine library, how fast to tick, which native view to
// attach to and what the surface should run.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/dotty/internal/ghostty"
	"github.com/vovakirdan/dotty/internal/platform"
	"github.com/vovakirdan/dotty/internal/surface"
)

// Config is the root configuration document.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Surface SurfaceConfig `yaml:"surface"`
	Host    HostConfig    `yaml:"host"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// EngineConfig locates libghostty and sets the frame cadence.
type EngineConfig struct {
	Library      string        `yaml:"library"` // empty = platform default under Native/
	Args         []string      `yaml:"args"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

// SurfaceConfig holds surface overrides. Zero values keep ghostty's own
// configuration.
type SurfaceConfig struct {
	FontSize         float32           `yaml:"font_size"`
	WorkingDirectory string            `yaml:"working_directory"`
	Command          string            `yaml:"command"`
	Env              map[string]string `yaml:"env"`
	InitialInput     string            `yaml:"initial_input"`
	WaitAfterCommand bool              `yaml:"wait_after_command"`
	Context          string            `yaml:"context"` // window, tab or split
}

// HostConfig describes the native view the terminal is embedded in.
type HostConfig struct {
	Platform   string  `yaml:"platform"` // "auto" = detect at runtime
	Handle     uint64  `yaml:"handle"`   // NSView* or HWND supplied by the embedding app
	Scale      float64 `yaml:"scale"`
	CellWidth  int     `yaml:"cell_width"`  // pixels per cell when forwarding window size
	CellHeight int     `yaml:"cell_height"` // pixels per cell when forwarding window size
}

// StorageConfig controls the session journal.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks values that cannot be caught by YAML decoding.
func (c Config) Validate() error {
	if c.Engine.TickInterval < 0 {
		return fmt.Errorf("engine.tick_interval must not be negative, got %s", c.Engine.TickInterval)
	}
	if c.Surface.FontSize < 0 {
		return fmt.Errorf("surface.font_size must not be negative, got %g", c.Surface.FontSize)
	}
	if c.Host.Scale < 0 {
		return fmt.Errorf("host.scale must not be negative, got %g", c.Host.Scale)
	}
	if c.Host.CellWidth < 0 || c.Host.CellHeight < 0 {
		return fmt.Errorf("host cell size must not be negative, got %dx%d", c.Host.CellWidth, c.Host.CellHeight)
	}
	if _, err := c.Surface.SurfaceContext(); err != nil {
		return err
	}
	if _, err := c.Host.OS(); err != nil {
		return err
	}
	return nil
}

// SurfaceContext parses the context name.
func (s SurfaceConfig) SurfaceContext() (ghostty.SurfaceContext, error) {
	switch strings.ToLower(s.Context) {
	case "", "window":
		return ghostty.ContextWindow, nil
	case "tab":
		return ghostty.ContextTab, nil
	case "split":
		return ghostty.ContextSplit, nil
	default:
		return ghostty.ContextWindow, fmt.Errorf("surface.context: unknown context %q", s.Context)
	}
}

// Settings converts the surface section for the lifecycle controller.
func (s SurfaceConfig) Settings() (surface.Settings, error) {
	ctx, err := s.SurfaceContext()
	if err != nil {
		return surface.Settings{}, err
	}
	return surface.Settings{
		FontSize:         s.FontSize,
		WorkingDirectory: s.WorkingDirectory,
		Command:          s.Command,
		Env:              s.Env,
		InitialInput:     s.InitialInput,
		WaitAfterCommand: s.WaitAfterCommand,
		Context:          ctx,
	}, nil
}

// OS resolves the platform override.
func (h HostConfig) OS() (platform.OS, error) {
	o, err := platform.Parse(h.Platform)
	if err != nil {
		return platform.Unknown, fmt.Errorf("host.platform: %w", err)
	}
	return o, nil
}
