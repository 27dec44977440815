package ghostty

// Win64 passes and returns structs wider than 8 bytes through a pointer to
// caller-owned memory. The result pointer is a hidden first argument.
type structCalls struct {
	configNew func(ret *SurfaceConfig) *SurfaceConfig
	key       func(s uintptr, key *InputKey) bool
}

func (c *structCalls) symbols() ([]symbol, error) {
	return []symbol{
		{"ghostty_surface_config_new", &c.configNew},
		{"ghostty_surface_key", &c.key},
	}, nil
}

func (c *structCalls) surfaceConfigNew() SurfaceConfig {
	var cfg SurfaceConfig
	c.configNew(&cfg)
	return cfg
}

// surfaceKey hands the engine its own copy; the callee may write to it.
func (c *structCalls) surfaceKey(s uintptr, key *InputKey) bool {
	k := *key
	return c.key(s, &k)
}
