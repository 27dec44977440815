package ghostty

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Traced wraps a Binding and logs every call except the per-frame ones
// (app tick and surface draw), which would flood the log at 60Hz.
type Traced struct {
	Binding
	logger *log.Logger
	level  log.Level
}

// Trace returns b with call logging at level.
func Trace(b Binding, logger *log.Logger, level log.Level) *Traced {
	return &Traced{Binding: b, logger: logger, level: level}
}

func (t *Traced) log(msg string, kv ...any) {
	t.logger.Log(t.level, msg, kv...)
}

func hex(v uintptr) string { return fmt.Sprintf("%#x", v) }

func (t *Traced) Init(args []string) int {
	status := t.Binding.Init(args)
	t.log("ghostty_init", "argc", len(args), "status", status)
	return status
}

func (t *Traced) ConfigNew() Config {
	cfg := t.Binding.ConfigNew()
	t.log("ghostty_config_new", "config", hex(uintptr(cfg)))
	return cfg
}

func (t *Traced) ConfigFree(cfg Config) {
	t.Binding.ConfigFree(cfg)
	t.log("ghostty_config_free", "config", hex(uintptr(cfg)))
}

func (t *Traced) ConfigLoadDefaultFiles(cfg Config) {
	t.Binding.ConfigLoadDefaultFiles(cfg)
	t.log("ghostty_config_load_default_files", "config", hex(uintptr(cfg)))
}

func (t *Traced) ConfigFinalize(cfg Config) {
	t.Binding.ConfigFinalize(cfg)
	t.log("ghostty_config_finalize", "config", hex(uintptr(cfg)))
}

func (t *Traced) AppNew(rt *Runtime, cfg Config) App {
	app := t.Binding.AppNew(rt, cfg)
	t.log("ghostty_app_new", "config", hex(uintptr(cfg)), "app", hex(uintptr(app)))
	return app
}

func (t *Traced) SurfaceNew(app App, cfg *SurfaceConfig) Surface {
	s := t.Binding.SurfaceNew(app, cfg)
	t.log("ghostty_surface_new",
		"platform", cfg.PlatformTag,
		"view", hex(cfg.View().Handle()),
		"scale", cfg.ScaleFactor,
		"surface", hex(uintptr(s)))
	return s
}

func (t *Traced) SurfaceFree(s Surface) {
	t.Binding.SurfaceFree(s)
	t.log("ghostty_surface_free", "surface", hex(uintptr(s)))
}

func (t *Traced) SurfaceSetFocus(s Surface, focused bool) {
	t.Binding.SurfaceSetFocus(s, focused)
	t.log("ghostty_surface_set_focus", "surface", hex(uintptr(s)), "focused", focused)
}

func (t *Traced) SurfaceSetSize(s Surface, width, height uint32) {
	t.Binding.SurfaceSetSize(s, width, height)
	t.log("ghostty_surface_set_size", "surface", hex(uintptr(s)), "width", width, "height", height)
}

func (t *Traced) SurfaceSetContentScale(s Surface, x, y float64) {
	t.Binding.SurfaceSetContentScale(s, x, y)
	t.log("ghostty_surface_set_content_scale", "surface", hex(uintptr(s)), "x", x, "y", y)
}

func (t *Traced) SurfaceKey(s Surface, key InputKey) bool {
	consumed := t.Binding.SurfaceKey(s, key)
	t.log("ghostty_surface_key",
		"surface", hex(uintptr(s)),
		"action", key.Action,
		"keycode", fmt.Sprintf("%#x", key.Keycode),
		"mods", key.Mods,
		"consumed", consumed)
	return consumed
}

func (t *Traced) SurfaceText(s Surface, text []byte) {
	t.Binding.SurfaceText(s, text)
	t.log("ghostty_surface_text", "surface", hex(uintptr(s)), "bytes", len(text))
}
