package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderPoem() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Your Poem")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Textarea inside a box
	inputBox := styleBox.Copy().
		BorderForeground(colorPrimary).
		Render(a.state.poemInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	// Status bar
	statusBar := styleStatusBar.Render("[Ctrl+S] Analyze  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
