// Package engine owns the process-wide ghostty app instance. The Manager
// initializes the library once, loads the user's ghostty configuration
// and creates the single app shared by every surface. There is no
// teardown: the app lives until the process exits.
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dotty/internal/ghostty"
)

var (
	// ErrInitFailed is returned when ghostty_init reports a non-zero status.
	ErrInitFailed = errors.New("engine: ghostty_init failed")
	// ErrNoConfig is returned when ghostty_config_new returns null.
	ErrNoConfig = errors.New("engine: config creation failed")
	// ErrNoApp is returned when ghostty_app_new returns null.
	ErrNoApp = errors.New("engine: app creation failed")
)

// Manager holds the engine instance. It must only be used from the host
// UI thread.
type Manager struct {
	binding ghostty.Binding
	runtime *ghostty.Runtime
	args    []string
	logger  *log.Logger

	done bool
	app  ghostty.App
	err  error
}

// Option configures a Manager.
type Option func(*Manager)

// WithRuntime replaces the no-op runtime callbacks.
func WithRuntime(rt *ghostty.Runtime) Option {
	return func(m *Manager) { m.runtime = rt }
}

// WithArgs passes command-line arguments to ghostty_init.
func WithArgs(args []string) Option {
	return func(m *Manager) { m.args = args }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager creates a manager that has not initialized anything yet.
func NewManager(b ghostty.Binding, opts ...Option) *Manager {
	m := &Manager{
		binding: b,
		runtime: ghostty.NoopRuntime(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewFailedManager returns a manager whose initialization has already
// failed with err, for when the library itself could not be loaded.
func NewFailedManager(err error, opts ...Option) *Manager {
	m := NewManager(nil, opts...)
	m.done = true
	m.err = err
	return m
}

// EnsureInitialized brings the engine up on first call. Later calls do
// nothing and return the first call's result; a failure is never retried.
//
// The config handle is released by the manager right after ghostty_app_new,
// whether or not the app was created: the app keeps its own copy.
func (m *Manager) EnsureInitialized() error {
	if m.done {
		return m.err
	}
	m.done = true
	m.err = m.initialize()
	if m.err != nil {
		m.logger.Error("engine initialization failed", "error", m.err)
	} else {
		m.logger.Info("engine initialized", "app", fmt.Sprintf("%#x", uintptr(m.app)))
	}
	return m.err
}

func (m *Manager) initialize() error {
	if m.binding == nil {
		return fmt.Errorf("%w: no binding", ErrInitFailed)
	}

	if status := m.binding.Init(m.args); status != 0 {
		return fmt.Errorf("%w: status %d", ErrInitFailed, status)
	}

	cfg := m.binding.ConfigNew()
	if cfg == 0 {
		return ErrNoConfig
	}
	m.binding.ConfigLoadDefaultFiles(cfg)
	m.binding.ConfigFinalize(cfg)

	app := m.binding.AppNew(m.runtime, cfg)
	m.binding.ConfigFree(cfg)
	if app == 0 {
		return ErrNoApp
	}

	m.app = app
	return nil
}

// App returns the engine instance, or 0 before a successful
// initialization.
func (m *Manager) App() ghostty.App { return m.app }

// Binding returns the binding the manager drives.
func (m *Manager) Binding() ghostty.Binding { return m.binding }

// Err returns the initialization error, if any.
func (m *Manager) Err() error { return m.err }

// Initialized reports whether the app exists.
func (m *Manager) Initialized() bool { return m.app != 0 }
