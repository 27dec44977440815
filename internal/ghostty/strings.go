package ghostty

import (
	"sort"
	"unsafe"
)

// cString returns a NUL-terminated copy of s, or nil for "".
func cString(s string) *byte {
	if s == "" {
		return nil
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// goString copies a NUL-terminated C string.
func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// goBytes copies n bytes starting at p.
func goBytes(p unsafe.Pointer, n uintptr) []byte {
	if p == nil || n == 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}

// SetWorkingDirectory sets the directory the surface's command starts in.
func (c *SurfaceConfig) SetWorkingDirectory(dir string) {
	c.WorkingDirectory = cString(dir)
}

// SetCommand sets the command run instead of the user's shell.
func (c *SurfaceConfig) SetCommand(cmd string) {
	c.Command = cString(cmd)
}

// SetInitialInput sets bytes written to the pty once the command starts.
func (c *SurfaceConfig) SetInitialInput(in string) {
	c.InitialInput = cString(in)
}

// SetEnv replaces the extra environment. Keys are stored sorted so the
// resulting config does not depend on map iteration order.
func (c *SurfaceConfig) SetEnv(env map[string]string) {
	if len(env) == 0 {
		c.EnvVars = nil
		c.EnvVarCount = 0
		return
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vars := make([]EnvVar, len(keys))
	for i, k := range keys {
		vars[i] = EnvVar{Key: cString(k), Value: cString(env[k])}
	}
	c.EnvVars = &vars[0]
	c.EnvVarCount = uintptr(len(vars))
}

// Env returns the extra environment stored in the config.
func (c *SurfaceConfig) Env() map[string]string {
	if c.EnvVars == nil || c.EnvVarCount == 0 {
		return nil
	}
	vars := envSlice(c)
	out := make(map[string]string, len(vars))
	for _, v := range vars {
		out[cStr(v.Key)] = cStr(v.Value)
	}
	return out
}

// WorkingDirectoryString returns the working directory as a Go string.
func (c *SurfaceConfig) WorkingDirectoryString() string { return cStr(c.WorkingDirectory) }

// CommandString returns the command as a Go string.
func (c *SurfaceConfig) CommandString() string { return cStr(c.Command) }

// InitialInputString returns the initial input as a Go string.
func (c *SurfaceConfig) InitialInputString() string { return cStr(c.InitialInput) }

func cStr(p *byte) string {
	return goString(unsafe.Pointer(p))
}

func envSlice(c *SurfaceConfig) []EnvVar {
	if c.EnvVars == nil || c.EnvVarCount == 0 {
		return nil
	}
	return unsafe.Slice(c.EnvVars, c.EnvVarCount)
}
