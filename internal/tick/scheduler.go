// Package tick drives the engine's frame loop from the host UI thread.
//
// One Scheduler exists per process. Each firing advances the engine clock
// once and then draws every registered surface. Registration, firing and
// surface teardown all happen on the UI thread, so there is no locking:
// a surface deregistered before it is freed can never be drawn after.
package tick

import (
	"time"

	"github.com/vovakirdan/dotty/internal/ghostty"
)

// DefaultInterval is roughly 60 frames per second.
const DefaultInterval = 16 * time.Millisecond

// Timer is the host toolkit's recurring UI-thread timer. Start is called
// once; fire must then be invoked every interval on the UI thread.
type Timer interface {
	Start(interval time.Duration, fire func())
}

// Engine is what the scheduler needs from the process manager.
type Engine interface {
	App() ghostty.App
	Binding() ghostty.Binding
}

// Scheduler ticks the app and draws live surfaces.
type Scheduler struct {
	engine   Engine
	timer    Timer
	interval time.Duration
	started  bool

	surfaces []ghostty.Surface
	fires    uint64
}

// NewScheduler returns a scheduler that starts timer lazily, on the first
// registration. A non-positive interval means DefaultInterval.
func NewScheduler(e Engine, timer Timer, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{engine: e, timer: timer, interval: interval}
}

// Interval returns the firing period.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Started reports whether the timer has been started.
func (s *Scheduler) Started() bool { return s.started }

// Register adds a surface to the draw set and starts the timer if needed.
// Null and already registered surfaces are ignored.
func (s *Scheduler) Register(surface ghostty.Surface) {
	if surface == 0 || s.registered(surface) {
		return
	}
	s.surfaces = append(s.surfaces, surface)

	if !s.started && s.timer != nil {
		s.started = true
		s.timer.Start(s.interval, s.Fire)
	}
}

// Deregister removes a surface. The timer keeps running when the set
// becomes empty; idle ticks are harmless.
func (s *Scheduler) Deregister(surface ghostty.Surface) {
	for i, sf := range s.surfaces {
		if sf == surface {
			s.surfaces = append(s.surfaces[:i], s.surfaces[i+1:]...)
			return
		}
	}
}

func (s *Scheduler) registered(surface ghostty.Surface) bool {
	for _, sf := range s.surfaces {
		if sf == surface {
			return true
		}
	}
	return false
}

// Len returns the number of registered surfaces.
func (s *Scheduler) Len() int { return len(s.surfaces) }

// Fires returns how many firings reached the engine.
func (s *Scheduler) Fires() uint64 { return s.fires }

// Fire runs one frame: a single app tick followed by one draw per
// registered surface, in registration order. It is skipped entirely while
// the engine has no app.
func (s *Scheduler) Fire() {
	app := s.engine.App()
	if app == 0 {
		return
	}
	b := s.engine.Binding()
	if b == nil {
		return
	}

	s.fires++
	b.AppTick(app)
	for _, sf := range s.surfaces {
		b.SurfaceDraw(sf)
	}
}
