package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dotty/internal/surface"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	statusItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	degradedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Foreground(lipgloss.Color("9")).
			Padding(1, 3)

	attachedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("245")).
			Padding(1, 3)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stateColors marks the lifecycle state in the status bar.
var stateColors = map[surface.State]lipgloss.Color{
	surface.Detached:  lipgloss.Color("9"),
	surface.Attaching: lipgloss.Color("11"),
	surface.Attached:  lipgloss.Color("10"),
	surface.Detaching: lipgloss.Color("11"),
}

// renderStatusBar renders the one-line status bar across width.
func renderStatusBar(width int, items ...string) string {
	parts := make([]string, 0, len(items)+1)
	parts = append(parts, statusBarStyle.Render("dotty"))
	for _, item := range items {
		parts = append(parts, statusItemStyle.Render(item))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if gap := width - lipgloss.Width(bar); gap > 0 {
		bar += statusItemStyle.Padding(0).Render(strings.Repeat(" ", gap))
	}
	return bar
}

// renderState renders the lifecycle state in its color.
func renderState(s surface.State) string {
	c, ok := stateColors[s]
	if !ok {
		c = lipgloss.Color("7")
	}
	return lipgloss.NewStyle().Foreground(c).Background(lipgloss.Color("236")).Render(s.String())
}

// renderDegraded renders the area shown instead of a terminal when the
// surface could not be created.
func renderDegraded(err error, width int) string {
	msg := fmt.Sprintf("Terminal unavailable\n\n%v", err)
	return centerText(degradedStyle.Render(msg), width)
}

// renderAttached renders the placeholder drawn over the native view.
func renderAttached(handle uintptr, stats surface.Stats, frames uint64, width int) string {
	msg := fmt.Sprintf(
		"ghostty is drawing into native view %#x\n\nframes  %d\nkeys    %d forwarded, %d consumed\ntext    %d bytes",
		handle, frames, stats.KeysForwarded, stats.KeysConsumed, stats.TextBytes)
	return centerText(attachedStyle.Render(msg), width)
}

// centerText horizontally centers a possibly multi-line block.
func centerText(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
