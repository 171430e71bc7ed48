package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderError() string {
	var b strings.Builder

	// Error title
	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Error message
	errMsg := "Unknown error"
	if a.state.processError != nil {
		errMsg = a.state.processError.Error()
	} else if a.state.runnerError != nil {
		errMsg = a.state.runnerError.Error()
	}

	errBox := styleBox.Copy().
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	// Suggestions based on error type
	var hints []string
	errLower := strings.ToLower(errMsg)

	if strings.Contains(errLower, "not found") || strings.Contains(errLower, "not configured") {
		hints = append(hints, "Check that the model command in ~/.config/versesmith/config.yaml is installed")
		hints = append(hints, "Or pick \"No model\" to use heuristic suggestions only")
	} else if strings.Contains(errLower, "timed out") || strings.Contains(errLower, "timeout") {
		hints = append(hints, "The model took too long; raise timeout_seconds in the config")
	} else if strings.Contains(errLower, "no lines") {
		hints = append(hints, "The poem came through empty; go back and paste some text")
	} else if strings.Contains(errLower, "ollama") {
		hints = append(hints, "Make sure Ollama is running: ollama serve")
	}

	if len(hints) > 0 {
		hintText := styleSubtitle.Render(strings.Join(hints, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, hintText))
		b.WriteString("\n\n")
	}

	// Status bar
	statusBar := styleStatusBar.Render("[r] Retry  [Esc] Back to poem")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
