package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dotty/internal/platform/tui"
	"github.com/vovakirdan/dotty/internal/storage"
)

var (
	flagSessionsLimit int
	flagSessionsPlain bool
	flagSessionsClear bool
	flagSessionsDB    string
	flagSessionsID    int64
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recorded surface sessions",
	Long: `Lists the most recent surface attach attempts recorded by 'dotty run':
platform, native handle, scale, how long the surface lived, how many keys the
engine consumed, and why an attach failed.

Opens an interactive table on a terminal; use --plain for text output.

Examples:
  dotty sessions
  dotty sessions --limit 50 --plain
  dotty sessions --id 12
  dotty sessions --clear`,
	Args: cobra.NoArgs,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionsLimit, "limit", 25, "Number of sessions to show")
	sessionsCmd.Flags().BoolVar(&flagSessionsPlain, "plain", false, "Print a plain table instead of the interactive view")
	sessionsCmd.Flags().BoolVar(&flagSessionsClear, "clear", false, "Delete all recorded sessions")
	sessionsCmd.Flags().Int64Var(&flagSessionsID, "id", 0, "Show the details of one session")
	sessionsCmd.Flags().StringVar(&flagSessionsDB, "db", "", "Path to sessions database (default: config)")
}

func runSessions(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := flagSessionsDB
	if path == "" {
		path = cfg.Storage.Path
	}

	store, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("opening sessions database: %w", err)
	}
	defer store.Close()

	if flagSessionsClear {
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Println("Sessions cleared.")
		return nil
	}

	if flagSessionsID != 0 {
		e, err := store.SessionByID(flagSessionsID)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no session with id %d", flagSessionsID)
		}
		if err != nil {
			return fmt.Errorf("retrieving session: %w", err)
		}
		printSession(e)
		return nil
	}

	entries, err := store.RecentSessions(flagSessionsLimit)
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}
	total, err := store.CountSessions()
	if err != nil {
		return fmt.Errorf("counting sessions: %w", err)
	}

	if !flagSessionsPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunSessions(entries, total, width, height)
	}

	printSessions(entries, total)
	return nil
}

func printSessions(entries []storage.SessionEntry, total int) {
	fmt.Println("Surface Sessions")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'dotty run' to attach a terminal.")
		return
	}

	fmt.Printf("  %-5s  %-16s  %-8s  %-14s  %-5s  %-9s  %s\n", "ID", "Attached", "OS", "Handle", "Scale", "Lifetime", "Result")
	fmt.Printf("  %-5s  %-16s  %-8s  %-14s  %-5s  %-9s  %s\n", "--", "--------", "--", "------", "-----", "--------", "------")

	for _, e := range entries {
		lifetime := "open"
		switch {
		case e.Failed():
			lifetime = "-"
		case e.Duration() > 0:
			lifetime = e.Duration().Round(time.Second).String()
		}
		result := "ok"
		if e.Failed() {
			result = e.Error
		}
		fmt.Printf("  %-5d  %-16s  %-8s  %-14s  %-5.2g  %-9s  %s\n",
			e.ID,
			e.AttachedAt.Local().Format("2006-01-02 15:04"),
			e.OS,
			fmt.Sprintf("%#x", e.Handle),
			e.Scale,
			lifetime,
			result)
	}
	fmt.Println()
	fmt.Println(tui.SessionsSummary(len(entries), total))
}

func printSession(e storage.SessionEntry) {
	fmt.Printf("Session %d\n\n", e.ID)
	fmt.Printf("  %-15s %s\n", "OS", e.OS)
	fmt.Printf("  %-15s %v\n", "Platform", e.Platform)
	fmt.Printf("  %-15s %#x\n", "Handle", e.Handle)
	fmt.Printf("  %-15s %.2g\n", "Scale", e.Scale)
	fmt.Printf("  %-15s %s\n", "Attached", e.AttachedAt.Local().Format(time.DateTime))
	if !e.DetachedAt.IsZero() {
		fmt.Printf("  %-15s %s (%s)\n", "Detached", e.DetachedAt.Local().Format(time.DateTime),
			e.Duration().Round(time.Second))
	}
	fmt.Printf("  %-15s %d forwarded, %d consumed\n", "Keys", e.KeysForwarded, e.KeysConsumed)
	fmt.Printf("  %-15s %d bytes\n", "Text", e.TextBytes)
	if e.Failed() {
		fmt.Printf("  %-15s %s\n", "Error", e.Error)
	}
}
