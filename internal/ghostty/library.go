//go:build darwin || linux || freebsd || windows

package ghostty

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// Library is the libghostty shared library loaded at runtime. It
// implements Binding. A Library is never unloaded: the engine instance
// created through it lives until process exit.
type Library struct {
	path   string
	handle uintptr

	ghosttyInit            func(argc uintptr, argv **byte) int32
	configNew              func() uintptr
	configFree             func(cfg uintptr)
	configLoadDefaultFiles func(cfg uintptr)
	configFinalize         func(cfg uintptr)
	appNew                 func(rt *RuntimeConfig, cfg uintptr) uintptr
	appTick                func(app uintptr)
	surfaceNew             func(app uintptr, cfg *SurfaceConfig) uintptr
	surfaceFree            func(s uintptr)
	surfaceSetFocus        func(s uintptr, focused bool)
	surfaceDraw            func(s uintptr)
	surfaceSetSize         func(s uintptr, width, height uint32)
	surfaceSetContentScale func(s uintptr, x, y float64)
	surfaceText            func(s uintptr, text *byte, n uintptr)

	// structs holds the entry points that pass structs by value; how they
	// are declared depends on the target's calling convention.
	structs structCalls

	// runtime is the record handed to ghostty_app_new. It holds only C
	// function pointers and is kept here for the life of the library.
	runtime *RuntimeConfig
}

var _ Binding = (*Library)(nil)

// ErrUnsupportedABI is returned by Open when a symbol's signature cannot be
// expressed on the current target.
var ErrUnsupportedABI = errors.New("ghostty: calling convention not supported on " + runtime.GOOS + "/" + runtime.GOARCH)

type symbol struct {
	name string
	fptr any
}

// Open loads the shared library at path and resolves every symbol the
// embedding layer needs. A missing symbol or an unsupported signature is an
// error, never a panic.
func Open(path string) (*Library, error) {
	if path == "" {
		path = DefaultLibraryPath()
	}

	h, err := openLibrary(path)
	if err != nil {
		return nil, fmt.Errorf("ghostty: cannot load %s: %w", path, err)
	}

	lib := &Library{path: path, handle: h}
	resolve := func(name string) (uintptr, error) { return lookupSymbol(h, name) }
	if err := lib.bind(resolve); err != nil {
		return nil, fmt.Errorf("ghostty: %s: %w", path, err)
	}
	return lib, nil
}

func (l *Library) symbols() []symbol {
	return []symbol{
		{"ghostty_init", &l.ghosttyInit},
		{"ghostty_config_new", &l.configNew},
		{"ghostty_config_free", &l.configFree},
		{"ghostty_config_load_default_files", &l.configLoadDefaultFiles},
		{"ghostty_config_finalize", &l.configFinalize},
		{"ghostty_app_new", &l.appNew},
		{"ghostty_app_tick", &l.appTick},
		{"ghostty_surface_new", &l.surfaceNew},
		{"ghostty_surface_free", &l.surfaceFree},
		{"ghostty_surface_set_focus", &l.surfaceSetFocus},
		{"ghostty_surface_draw", &l.surfaceDraw},
		{"ghostty_surface_set_size", &l.surfaceSetSize},
		{"ghostty_surface_set_content_scale", &l.surfaceSetContentScale},
		{"ghostty_surface_text", &l.surfaceText},
	}
}

// bind registers every function field against the address resolve returns
// for its symbol.
func (l *Library) bind(resolve func(name string) (uintptr, error)) error {
	structSyms, err := l.structs.symbols()
	if err != nil {
		return err
	}
	for _, s := range append(l.symbols(), structSyms...) {
		addr, err := resolve(s.name)
		if err != nil {
			return fmt.Errorf("missing symbol %s: %w", s.name, err)
		}
		if err := registerFunc(s.fptr, addr); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
	}
	return nil
}

// registerFunc turns purego's registration panics into errors.
func registerFunc(fptr any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrUnsupportedABI, r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}

// Path returns the file the library was loaded from.
func (l *Library) Path() string { return l.path }

// Init calls ghostty_init with a C copy of args.
func (l *Library) Init(args []string) int {
	if len(args) == 0 {
		return int(l.ghosttyInit(0, nil))
	}

	var pinner runtime.Pinner
	defer pinner.Unpin()

	argv := make([]*byte, len(args))
	for i, a := range args {
		b := append([]byte(a), 0)
		argv[i] = &b[0]
		pinner.Pin(argv[i])
	}
	return int(l.ghosttyInit(uintptr(len(argv)), &argv[0]))
}

func (l *Library) ConfigNew() Config { return Config(l.configNew()) }

func (l *Library) ConfigFree(cfg Config) {
	if cfg != 0 {
		l.configFree(uintptr(cfg))
	}
}

func (l *Library) ConfigLoadDefaultFiles(cfg Config) { l.configLoadDefaultFiles(uintptr(cfg)) }

func (l *Library) ConfigFinalize(cfg Config) { l.configFinalize(uintptr(cfg)) }

// AppNew builds the runtime record from rt and creates the app.
func (l *Library) AppNew(rt *Runtime, cfg Config) App {
	l.runtime = newRuntimeConfig(rt)
	return App(l.appNew(l.runtime, uintptr(cfg)))
}

func (l *Library) AppTick(app App) { l.appTick(uintptr(app)) }

func (l *Library) SurfaceConfigNew() SurfaceConfig { return l.structs.surfaceConfigNew() }

// SurfaceNew pins every Go allocation the config points at for the
// duration of the call; the engine copies what it keeps.
func (l *Library) SurfaceNew(app App, cfg *SurfaceConfig) Surface {
	var pinner runtime.Pinner
	defer pinner.Unpin()

	pin := func(p *byte) {
		if p != nil {
			pinner.Pin(p)
		}
	}
	pin(cfg.WorkingDirectory)
	pin(cfg.Command)
	pin(cfg.InitialInput)
	if cfg.EnvVars != nil {
		pinner.Pin(cfg.EnvVars)
		for _, v := range envSlice(cfg) {
			pin(v.Key)
			pin(v.Value)
		}
	}
	return Surface(l.surfaceNew(uintptr(app), cfg))
}

func (l *Library) SurfaceFree(s Surface) { l.surfaceFree(uintptr(s)) }

func (l *Library) SurfaceSetFocus(s Surface, focused bool) { l.surfaceSetFocus(uintptr(s), focused) }

func (l *Library) SurfaceDraw(s Surface) { l.surfaceDraw(uintptr(s)) }

func (l *Library) SurfaceSetSize(s Surface, width, height uint32) {
	l.surfaceSetSize(uintptr(s), width, height)
}

func (l *Library) SurfaceSetContentScale(s Surface, x, y float64) {
	l.surfaceSetContentScale(uintptr(s), x, y)
}

// SurfaceKey passes a copy of key; its text, if any, stays pinned for the
// call.
func (l *Library) SurfaceKey(s Surface, key InputKey) bool {
	var pinner runtime.Pinner
	defer pinner.Unpin()
	if key.Text != nil {
		pinner.Pin(key.Text)
	}
	return l.structs.surfaceKey(uintptr(s), &key)
}

func (l *Library) SurfaceText(s Surface, text []byte) {
	if len(text) == 0 {
		return
	}
	l.surfaceText(uintptr(s), &text[0], uintptr(len(text)))
}
