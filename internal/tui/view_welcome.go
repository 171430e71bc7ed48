package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
 ██╗   ██╗███████╗██████╗ ███████╗███████╗███████╗███╗   ███╗██╗████████╗██╗  ██╗
 ██║   ██║██╔════╝██╔══██╗██╔════╝██╔════╝██╔════╝████╗ ████║██║╚══██╔══╝██║  ██║
 ██║   ██║█████╗  ██████╔╝███████╗█████╗  ███████╗██╔████╔██║██║   ██║   ███████║
 ╚██╗ ██╔╝██╔══╝  ██╔══██╗╚════██║██╔══╝  ╚════██║██║╚██╔╝██║██║   ██║   ██╔══██║
  ╚████╔╝ ███████╗██║  ██║███████║███████╗███████║██║ ╚═╝ ██║██║   ██║   ██║  ██║
   ╚═══╝  ╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═╝     ╚═╝╚═╝   ╚═╝   ╚═╝  ╚═╝
`

func (a *App) renderWelcome() string {
	// Logo
	logoRendered := styleLogo.Render(logo)

	// Subtitle
	subtitle := styleSubtitle.Render("Turn poems into singable lyrics")

	// Instructions
	instructions := styleSubtitle.Render("\nPress Enter to paste a poem")

	// Runner status
	var runnerLine string
	if a.state.runnerError != nil {
		runnerLine = styleWarning.Render("Model unavailable; heuristic suggestions only")
	} else if a.state.runnerReady && a.state.runner != nil {
		runnerLine = styleSubtitle.Render("Model: " + a.state.runner.Name())
	} else if a.state.runnerReady {
		runnerLine = styleSubtitle.Render("No model configured; heuristic suggestions only")
	}

	// Status bar
	statusBar := styleStatusBar.Render("[Enter] Start  [Esc] Quit  [?] Help")

	// Combine main content
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		instructions,
		"",
		runnerLine,
	)

	// Center content on screen (leave room for status bar)
	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	// Status bar centered at bottom
	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
