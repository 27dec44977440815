package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/dotty/internal/engine"
	"github.com/vovakirdan/dotty/internal/ghostty"
	"github.com/vovakirdan/dotty/internal/ghostty/ghosttytest"
	"github.com/vovakirdan/dotty/internal/host"
	"github.com/vovakirdan/dotty/internal/platform"
	"github.com/vovakirdan/dotty/internal/surface"
	"github.com/vovakirdan/dotty/internal/tick"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SurfaceAttached(surface.Session{OS: "macos", AttachedAt: time.Now()}); err != nil {
		t.Fatalf("SurfaceAttached() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	n, err := store.CountSessions()
	if err != nil {
		t.Fatalf("CountSessions() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 session after reopen, got %d", n)
	}
}

func TestSessionLifecycle(t *testing.T) {
	store := openTestStore(t)

	attached := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	id, err := store.SurfaceAttached(surface.Session{
		OS:         platform.MacOS.String(),
		Platform:   ghostty.PlatformMacOS,
		Handle:     0x7f00beef,
		Scale:      2,
		AttachedAt: attached,
	})
	if err != nil {
		t.Fatalf("SurfaceAttached() failed: %v", err)
	}

	open, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if !open.DetachedAt.IsZero() || open.Duration() != 0 {
		t.Errorf("open session already detached: %+v", open)
	}

	err = store.SurfaceDetached(id, surface.Stats{
		KeysForwarded: 10,
		KeysConsumed:  4,
		TextBytes:     7,
		DetachedAt:    attached.Add(90 * time.Second),
	})
	if err != nil {
		t.Fatalf("SurfaceDetached() failed: %v", err)
	}

	e, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if e.OS != "macos" || e.Platform != ghostty.PlatformMacOS || e.Handle != 0x7f00beef || e.Scale != 2 {
		t.Errorf("session = %+v", e)
	}
	if !e.AttachedAt.Equal(attached) {
		t.Errorf("AttachedAt = %v, expected %v", e.AttachedAt, attached)
	}
	if e.Duration() != 90*time.Second {
		t.Errorf("Duration() = %v, expected 90s", e.Duration())
	}
	if e.KeysForwarded != 10 || e.KeysConsumed != 4 || e.TextBytes != 7 {
		t.Errorf("counters = %d/%d/%d", e.KeysForwarded, e.KeysConsumed, e.TextBytes)
	}
	if e.Failed() {
		t.Error("successful session reported as failed")
	}
}

func TestFailedAttachRecorded(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SurfaceAttached(surface.Session{
		OS:         "linux",
		AttachedAt: time.Now(),
		Err:        platform.ErrUnsupported,
	})
	if err != nil {
		t.Fatalf("SurfaceAttached() failed: %v", err)
	}

	e, err := store.SessionByID(id)
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if !e.Failed() || e.Error != platform.ErrUnsupported.Error() {
		t.Errorf("Error = %q", e.Error)
	}
}

func TestRecentSessionsOrder(t *testing.T) {
	store := openTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := store.SurfaceAttached(surface.Session{
			OS:         "windows",
			Handle:     uintptr(i + 1),
			AttachedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SurfaceAttached() failed: %v", err)
		}
	}

	entries, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(entries))
	}

	// Newest first
	for i, want := range []uint64{5, 4, 3} {
		if entries[i].Handle != want {
			t.Errorf("entries[%d].Handle = %d, expected %d", i, entries[i].Handle, want)
		}
	}
}

func TestUnknownSession(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SessionByID(42); !errors.Is(err, ErrNotFound) {
		t.Errorf("SessionByID() error = %v, expected ErrNotFound", err)
	}
	if err := store.SurfaceDetached(42, surface.Stats{DetachedAt: time.Now()}); !errors.Is(err, ErrNotFound) {
		t.Errorf("SurfaceDetached() error = %v, expected ErrNotFound", err)
	}
}

func TestClearSessions(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.SurfaceAttached(surface.Session{OS: "macos", AttachedAt: time.Now()}); err != nil {
			t.Fatalf("SurfaceAttached() failed: %v", err)
		}
	}

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	n, err := store.CountSessions()
	if err != nil {
		t.Fatalf("CountSessions() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 sessions after clear, got %d", n)
	}
}

type widget struct{ handle uintptr }

func (w widget) NativeHandle() uintptr  { return w.handle }
func (w widget) RenderScaling() float64 { return 1.5 }
func (w widget) Focus()                 {}

func TestControllerWritesJournal(t *testing.T) {
	store := openTestStore(t)

	mgr := engine.NewManager(ghosttytest.New())
	ticker := tick.NewScheduler(mgr, nil, 0)
	ctrl := surface.New(widget{handle: 0x42}, mgr, ticker, surface.NewStrategy(platform.MacOS), surface.WithJournal(store))

	if err := ctrl.Attach(); err != nil {
		t.Fatalf("Attach() failed: %v", err)
	}
	ctrl.HandleKeyDown(&host.KeyEventArgs{Key: host.KeyA})
	ctrl.Detach()

	entries, err := store.RecentSessions(0)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(entries))
	}
	e := entries[0]
	if e.Handle != 0x42 || e.Scale != 1.5 || e.KeysForwarded != 1 || e.DetachedAt.IsZero() {
		t.Errorf("entry = %+v", e)
	}
}
