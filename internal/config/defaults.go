package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dotty.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			TickInterval: 16 * time.Millisecond,
		},
		Surface: SurfaceConfig{
			Context: "window",
		},
		Host: HostConfig{
			Platform:   "auto",
			Scale:      1.0,
			CellWidth:  8,
			CellHeight: 16,
		},
		Storage: StorageConfig{
			Enabled: true,
			Path:    "~/.dotty/sessions.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.dotty/dotty.log",
		},
	}
}
