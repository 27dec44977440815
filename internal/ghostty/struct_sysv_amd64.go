//go:build linux || freebsd

package ghostty

import "unsafe"

// Under the System V AMD64 ABI both structs are MEMORY class. A MEMORY
// return goes through a hidden pointer in the first integer register. A
// MEMORY argument is copied onto the stack and takes no register, so the
// key's eightbytes are passed after five filler words that use up the
// remaining integer registers.
type structCalls struct {
	configNew func(ret *SurfaceConfig) *SurfaceConfig
	key       func(s, _, _, _, _, _ uintptr, w0, w1, w2, w3 uintptr) bool
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

func (c *structCalls) surfaceKey(s uintptr, key *InputKey) bool {
	w := keyWords(key)
	return c.key(s, 0, 0, 0, 0, 0, w[0], w[1], w[2], w[3])
}

// keyWords splits key into the eightbytes it occupies in memory.
func keyWords(key *InputKey) [4]uintptr {
	return *(*[4]uintptr)(unsafe.Pointer(key))
}
