package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPrompt shows the prompt that was sent and the raw reply, mostly
// useful when running without a model and pasting replies by hand
func (a *App) renderPrompt() string {
	var b strings.Builder
	r := a.state.result
	if r == nil {
		return a.renderWelcome()
	}

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Prompt")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	boxWidth := min(80, a.width-4)

	promptText := r.Prompt
	if r.Truncated {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			styleWarning.Render("Prompt was truncated to fit the token budget")))
		b.WriteString("\n")
	}
	promptBox := styleBox.Copy().
		Width(boxWidth).
		Render(promptText)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, promptBox))
	b.WriteString("\n")

	if r.RawResponse != "" {
		replyTitle := styleSubtitle.Render("Raw reply")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, replyTitle))
		b.WriteString("\n")
		replyBox := styleBox.Copy().
			Width(boxWidth).
			BorderForeground(colorSecondary).
			Render(truncate(r.RawResponse, 2000))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, replyBox))
		b.WriteString("\n")
	}

	statusBar := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return b.String()
}
