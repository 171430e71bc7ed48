package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"versesmith/internal/pipeline"
)

func (a *App) renderProcessing() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Working")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	// Progress stages
	stages := []pipeline.Stage{
		pipeline.StageAnalyzing,
		pipeline.StagePrompting,
		pipeline.StageInvoking,
		pipeline.StageParsing,
		pipeline.StageMerging,
	}
	currentStage := 0
	if a.state.progress != nil {
		currentStage = a.state.progress.StageIndex
	}

	var stageLines []string
	for i, stage := range stages {
		var icon string
		var style lipgloss.Style

		if i < currentStage {
			// Completed
			icon = "[x]"
			style = lipgloss.NewStyle().Foreground(colorSuccess)
		} else if i == currentStage {
			// Current
			icon = "[>]"
			style = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
		} else {
			// Pending
			icon = "[ ]"
			style = lipgloss.NewStyle().Foreground(colorMuted)
		}

		line := style.Render(fmt.Sprintf("  %s  %-16s", icon, stage.String()))
		stageLines = append(stageLines, line)
	}

	stagesBox := styleBox.Copy().
		Width(min(50, a.width-4)).
		Render(strings.Join(stageLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, stagesBox))
	b.WriteString("\n\n")

	// Message
	if a.state.progress != nil && a.state.progress.Message != "" {
		msg := styleSubtitle.Render(truncate(a.state.progress.Message, 60))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, msg))
	}

	return a.centerVertically(b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
