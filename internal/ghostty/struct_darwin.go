package ghostty

import "unsafe"

// On darwin purego lays structs out per the platform ABI itself.
type structCalls struct {
	configNew func() configRet
	key       func(s uintptr, key InputKey) bool
}

// configRet mirrors SurfaceConfig with its bool held as a byte: purego
// rejects bool fields in returned structs.
type configRet struct {
	PlatformTag      PlatformTag
	Platform         Platform
	Userdata         uintptr
	ScaleFactor      float64
	FontSize         float32
	WorkingDirectory *byte
	Command          *byte
	EnvVars          *EnvVar
	EnvVarCount      uintptr
	InitialInput     *byte
	WaitAfterCommand uint8
	Context          SurfaceContext
}

func (c *structCalls) symbols() ([]symbol, error) {
	return []symbol{
		{"ghostty_surface_config_new", &c.configNew},
		{"ghostty_surface_key", &c.key},
	}, nil
}

func (c *structCalls) surfaceConfigNew() SurfaceConfig {
	r := c.configNew()
	return *(*SurfaceConfig)(unsafe.Pointer(&r))
}

func (c *structCalls) surfaceKey(s uintptr, key *InputKey) bool { return c.key(s, *key) }
