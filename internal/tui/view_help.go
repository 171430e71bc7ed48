package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Flow
	flow := []string{
		"  1. Paste a poem and press Ctrl+S",
		"  2. Lines are scored for singability",
		"  3. A model (when configured) and the built-in",
		"     word tables each propose substitutions",
		"  4. Accept the ones you like to see the",
		"     revised lyrics",
	}

	flowBox := styleBox.Copy().
		Width(52).
		Render(strings.Join(flow, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, flowBox))
	b.WriteString("\n\n")

	// Keyboard shortcuts
	shortcuts := []string{
		"  Esc            Go back / Quit",
		"  Ctrl+S         Analyze the poem",
		"  j/k, arrows    Move through suggestions",
		"  Space          Accept or reject a suggestion",
		"  p              Show the prompt and raw reply",
		"  w              Show parser notices",
		"  n              Start over with a new poem",
	}

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.Copy().
		Width(52).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
