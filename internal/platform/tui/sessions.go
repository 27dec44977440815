package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dotty/internal/storage"
)

// SessionsKeyMap defines the key bindings for the session browser.
type SessionsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Failed key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SessionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Failed, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SessionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Failed, k.Quit},
	}
}

// DefaultSessionsKeyMap returns default key bindings.
func DefaultSessionsKeyMap() SessionsKeyMap {
	return SessionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Failed: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "failed only"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionsModel is the Bubble Tea model for the session browser.
type SessionsModel struct {
	all        []storage.SessionEntry
	shown      []storage.SessionEntry
	total      int
	failedOnly bool
	table      table.Model
	help       help.Model
	keys       SessionsKeyMap
	width      int
	height     int
	quitting   bool
}

// NewSessionsModel creates a browser over already loaded sessions. total is
// the number of sessions in the journal, of which entries are the newest.
func NewSessionsModel(entries []storage.SessionEntry, total, width, height int) SessionsModel {
	h := help.New()
	h.ShowAll = false

	m := SessionsModel{
		all:    entries,
		total:  total,
		keys:   DefaultSessionsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.filter()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *SessionsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Attached", Width: 14},
		{Title: "OS", Width: 8},
		{Title: "Handle", Width: 14},
		{Title: "Scale", Width: 6},
		{Title: "Lifetime", Width: 10},
		{Title: "Keys", Width: 8},
		{Title: "Result", Width: 20},
	}

	// Give the remaining width to the result column
	used := 0
	for _, c := range columns[:len(columns)-1] {
		used += c.Width + 2
	}
	if rest := m.width - used - 6; rest > columns[len(columns)-1].Width {
		columns[len(columns)-1].Width = rest
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 10
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// filter applies the failed-only toggle and refreshes the rows.
func (m *SessionsModel) filter() {
	m.shown = nil
	for _, e := range m.all {
		if m.failedOnly && !e.Failed() {
			continue
		}
		m.shown = append(m.shown, e)
	}
	m.table.SetRows(SessionRows(m.shown))
	m.table.GotoTop()
}

// SessionRows formats sessions as table rows.
func SessionRows(entries []storage.SessionEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		lifetime := "-"
		if d := e.Duration(); d > 0 {
			lifetime = d.Round(time.Second).String()
		} else if !e.Failed() {
			lifetime = "open"
		}

		result := "ok"
		if e.Failed() {
			result = e.Error
		}

		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			e.AttachedAt.Local().Format("Jan 02 15:04"),
			e.OS,
			fmt.Sprintf("%#x", e.Handle),
			fmt.Sprintf("%.2g", e.Scale),
			lifetime,
			fmt.Sprintf("%d/%d", e.KeysConsumed, e.KeysForwarded),
			result,
		}
	}
	return rows
}

// Init initializes the session browser.
func (m SessionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session browser.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Failed):
			m.failedOnly = !m.failedOnly
			m.filter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.filter()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the session browser.
func (m SessionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "SURFACE SESSIONS"
	if m.failedOnly {
		title += " (failed)"
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.shown) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(tableStyle.Render(emptyStyle.Render("No sessions recorded yet.\nRun `dotty run` to attach a terminal.")), m.width))
	} else {
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(SessionsSummary(len(m.shown), m.total)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// SessionsSummary reports how many of the recorded sessions are listed.
func SessionsSummary(shown, total int) string {
	if total < shown {
		total = shown
	}
	if total == 1 {
		return fmt.Sprintf("%d of 1 session shown", shown)
	}
	return fmt.Sprintf("%d of %d sessions shown", shown, total)
}

// RunSessions runs the session browser.
func RunSessions(entries []storage.SessionEntry, total, width, height int) error {
	p := tea.NewProgram(
		NewSessionsModel(entries, total, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
