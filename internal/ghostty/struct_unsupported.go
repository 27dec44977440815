//go:build (linux || freebsd || windows) && !amd64

package ghostty

// On these targets the engine returns its surface config through a
// register purego cannot set outside darwin, so the library is refused at
// load time.
type structCalls struct{}

func (c *structCalls) symbols() ([]symbol, error) { return nil, ErrUnsupportedABI }

func (c *structCalls) surfaceConfigNew() SurfaceConfig { return SurfaceConfig{} }

func (c *structCalls) surfaceKey(uintptr, *InputKey) bool { return false }
