package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderSuggestions() string {
	var b strings.Builder
	r := a.state.result
	if r == nil {
		return a.renderWelcome()
	}

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Suggestions")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	// Summary line
	source := "heuristic"
	if r.UsedModel {
		source = "model + heuristic"
	}
	summary := styleSubtitle.Render(fmt.Sprintf(
		"avg singability %.2f  |  %d suggestions (%s)",
		r.Analysis.AverageSingability(), len(r.Suggestions), source))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, summary))
	b.WriteString("\n\n")

	boxWidth := min(76, a.width-4)

	// Suggestion list
	if len(r.Suggestions) == 0 {
		empty := styleSubtitle.Render("Nothing to change; the poem already sings.")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, empty))
		b.WriteString("\n\n")
	} else {
		var rows []string
		for i, sug := range r.Suggestions {
			mark := "[ ]"
			markStyle := lipgloss.NewStyle().Foreground(colorMuted)
			if a.state.accepted[i] {
				mark = "[x]"
				markStyle = styleAccepted
			}

			text := fmt.Sprintf("L%d  %s -> %s  (%s)",
				sug.LineNumber, sug.OriginalWord, sug.SuggestedWord, sug.PreservesMeaning)
			reason := truncate(sug.Reason, boxWidth-10)

			var row string
			if i == a.state.selected {
				row = markStyle.Render(mark) + " " + styleSelected.Render(text) +
					"\n      " + styleSubtitle.Render(reason)
			} else {
				row = markStyle.Render(mark) + " " +
					lipgloss.NewStyle().Foreground(colorWhite).Render(text)
			}
			rows = append(rows, row)
		}

		listBox := styleBox.Copy().
			Width(boxWidth).
			Render(strings.Join(rows, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
		b.WriteString("\n")
	}

	// Warnings panel
	if a.state.showWarnings {
		b.WriteString(a.renderWarnings(boxWidth))
	} else if n := len(r.Metadata.Warnings) + len(r.Metadata.Errors); n > 0 {
		note := styleWarning.Render(fmt.Sprintf("%d notice(s); press w to show", n))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, note))
		b.WriteString("\n")
	}

	// Revised lyrics preview once anything is accepted
	if len(a.state.accepted) > 0 && anyAccepted(a.state.accepted) {
		preview := styleBox.Copy().
			Width(boxWidth).
			BorderForeground(colorSuccess).
			Render(styleAccepted.Render("Revised lyrics") + "\n\n" + a.state.acceptedLyrics())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, preview))
		b.WriteString("\n")
	}

	// Status bar
	statusBar := styleStatusBar.Render(
		"[j/k] Move  [Space] Accept  [p] Prompt  [w] Notices  [n] New poem  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return b.String()
}

func (a *App) renderWarnings(boxWidth int) string {
	r := a.state.result

	var lines []string
	for _, e := range r.Metadata.Errors {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorError).Render("! "+e))
	}
	for _, w := range r.Metadata.Warnings {
		lines = append(lines, styleWarning.Render("* "+w))
	}
	if len(lines) == 0 {
		lines = append(lines, styleSubtitle.Render("No notices"))
	}

	box := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(colorWarning).
		Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box) + "\n"
}

func anyAccepted(accepted map[int]bool) bool {
	for _, ok := range accepted {
		if ok {
			return true
		}
	}
	return false
}
