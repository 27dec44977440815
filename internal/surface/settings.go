package surface

import (
	"time"

	"github.com/vovakirdan/dotty/internal/ghostty"
)

// Settings are optional surface overrides. Zero values leave the engine's
// defaults in place.
type Settings struct {
	FontSize         float32
	WorkingDirectory string
	Command          string
	Env              map[string]string
	InitialInput     string
	WaitAfterCommand bool
	Context          ghostty.SurfaceContext
}

func (s Settings) apply(cfg *ghostty.SurfaceConfig) {
	if s.FontSize > 0 {
		cfg.FontSize = s.FontSize
	}
	if s.WorkingDirectory != "" {
		cfg.SetWorkingDirectory(s.WorkingDirectory)
	}
	if s.Command != "" {
		cfg.SetCommand(s.Command)
	}
	if len(s.Env) > 0 {
		cfg.SetEnv(s.Env)
	}
	if s.InitialInput != "" {
		cfg.SetInitialInput(s.InitialInput)
	}
	if s.WaitAfterCommand {
		cfg.WaitAfterCommand = true
	}
	if s.Context != ghostty.ContextWindow {
		cfg.Context = s.Context
	}
}

// Session describes one attach attempt.
type Session struct {
	OS         string
	Platform   ghostty.PlatformTag
	Handle     uintptr
	Scale      float64
	AttachedAt time.Time
	// Err is set when the attach failed and no surface exists.
	Err error
}

// Stats counts input forwarded during one attachment.
type Stats struct {
	KeysForwarded int
	KeysConsumed  int
	TextBytes     int
	DetachedAt    time.Time
}

// Journal records surface lifetimes.
type Journal interface {
	SurfaceAttached(s Session) (int64, error)
	SurfaceDetached(id int64, stats Stats) error
}
