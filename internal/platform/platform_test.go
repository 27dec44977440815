package platform

import (
	"errors"
	"testing"

	"github.com/vovakirdan/dotty/internal/ghostty"
)

func TestFromGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want OS
	}{
		{"darwin", MacOS},
		{"windows", Windows},
		{"linux", Linux},
		{"plan9", Unknown},
	}
	for _, tt := range tests {
		if got := fromGOOS(tt.goos); got != tt.want {
			t.Errorf("fromGOOS(%q) = %v, expected %v", tt.goos, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    OS
		wantErr bool
	}{
		{"macos", MacOS, false},
		{"Darwin", MacOS, false},
		{" windows ", Windows, false},
		{"linux", Linux, false},
		{"", Current(), false},
		{"auto", Current(), false},
		{"beos", Unknown, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestNewBinding(t *testing.T) {
	v, err := NewBinding(MacOS, 0x7f00)
	if err != nil {
		t.Fatalf("NewBinding(MacOS) failed: %v", err)
	}
	if v.Tag() != ghostty.PlatformMacOS || v.Platform().NSView() != 0x7f00 {
		t.Errorf("macOS binding = %v/%#x", v.Tag(), v.Handle())
	}

	v, err = NewBinding(Windows, 0x42)
	if err != nil {
		t.Fatalf("NewBinding(Windows) failed: %v", err)
	}
	if v.Tag() != ghostty.PlatformWindows || v.Platform().HWND() != 0x42 {
		t.Errorf("windows binding = %v/%#x", v.Tag(), v.Handle())
	}
}

func TestNewBindingRejects(t *testing.T) {
	if _, err := NewBinding(Linux, 0x1); !errors.Is(err, ErrUnsupported) {
		t.Errorf("NewBinding(Linux) error = %v, expected ErrUnsupported", err)
	}
	if _, err := NewBinding(Unknown, 0x1); !errors.Is(err, ErrUnsupported) {
		t.Errorf("NewBinding(Unknown) error = %v, expected ErrUnsupported", err)
	}
	if _, err := NewBinding(MacOS, 0); !errors.Is(err, ErrNoHandle) {
		t.Errorf("NewBinding(MacOS, 0) error = %v, expected ErrNoHandle", err)
	}
}
