package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"versesmith/internal/config"
	"versesmith/internal/llm"
	"versesmith/internal/pipeline"
)

type view int

const (
	viewWelcome view = iota
	viewSetup
	viewPoem
	viewProcessing
	viewSuggestions
	viewPrompt
	viewError
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	program  *tea.Program
	quitting bool
}

func NewApp() *App {
	s := newState()

	cfg, _ := config.Load()
	if cfg == nil {
		s.needsSetup = true
		s.config = config.DefaultConfig()
	} else {
		s.config = cfg
	}

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

// SetProgram lets background work send messages back into the loop
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.WindowSize()
	}
	return tea.Batch(tea.WindowSize(), a.checkRunner())
}

func (a *App) checkRunner() tea.Cmd {
	return func() tea.Msg {
		if a.state.config.Model.Command == "" {
			// Heuristic-only mode is a valid setup
			return runnerReadyMsg{runner: nil}
		}

		runner := llm.NewCLIRunner(
			a.state.config.Model.Command,
			a.state.config.Model.Args,
			a.state.config.Model.Timeout(),
		)
		if err := runner.Ping(context.Background()); err != nil {
			return runnerErrorMsg{err}
		}
		return runnerReadyMsg{runner: runner}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.view = viewWelcome
		return a, a.checkRunner()

	case runnerReadyMsg:
		a.state.runner = msg.runner
		a.state.runnerReady = true
		a.state.runnerError = nil
		return a, nil

	case runnerErrorMsg:
		a.state.runnerError = msg.error
		return a, nil

	case progressMsg:
		a.state.progress = &msg.progress
		return a, nil

	case resultMsg:
		a.state.processing = false
		a.state.result = msg.result
		a.state.selected = 0
		a.state.accepted = make(map[int]bool)
		a.view = viewSuggestions
		return a, nil

	case processErrorMsg:
		a.state.processing = false
		a.state.processError = msg.error
		a.view = viewError
		return a, nil
	}

	if a.view == viewPoem {
		var cmd tea.Cmd
		a.state.poemInput, cmd = a.state.poemInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		switch a.view {
		case viewHelp, viewPrompt:
			a.view = viewSuggestionsOrWelcome(a.state)
			return nil
		case viewPoem:
			a.view = viewWelcome
			a.state.poemInput.Blur()
			return nil
		case viewError:
			a.view = viewPoem
			return textarea.Blink
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Help):
		if a.view != viewPoem {
			a.view = viewHelp
			return nil
		}
	}

	switch a.view {
	case viewWelcome:
		if key.Matches(msg, keys.Enter) {
			a.view = viewPoem
			a.state.poemInput.Focus()
			return textarea.Blink
		}
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewPoem:
		if key.Matches(msg, keys.Submit) {
			return a.startProcessing()
		}
	case viewSuggestions:
		return a.handleSuggestionsKey(msg)
	case viewError:
		if msg.String() == "r" {
			return a.startProcessing()
		}
	}

	return nil
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if a.state.selectedRunner > 0 {
			a.state.selectedRunner--
		}
	case "down", "j":
		if a.state.selectedRunner < len(config.Runners)-1 {
			a.state.selectedRunner++
		}
	case "enter":
		runner := config.Runners[a.state.selectedRunner]
		a.state.config.Model.Command = runner.Command
		a.state.config.Model.Args = runner.Args
		return a.finishSetup()
	}
	return nil
}

func (a *App) finishSetup() tea.Cmd {
	return func() tea.Msg {
		if err := a.state.config.Save(); err != nil {
			return processErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

func (a *App) handleSuggestionsKey(msg tea.KeyMsg) tea.Cmd {
	count := 0
	if a.state.result != nil {
		count = len(a.state.result.Suggestions)
	}

	switch {
	case key.Matches(msg, keys.Up):
		if a.state.selected > 0 {
			a.state.selected--
		}
	case key.Matches(msg, keys.Down):
		if a.state.selected < count-1 {
			a.state.selected++
		}
	case key.Matches(msg, keys.Accept):
		if count > 0 {
			a.state.accepted[a.state.selected] = !a.state.accepted[a.state.selected]
		}
	}

	switch msg.String() {
	case "p":
		a.view = viewPrompt
	case "w":
		a.state.showWarnings = !a.state.showWarnings
	case "n":
		a.view = viewPoem
		a.state.poemInput.Reset()
		a.state.poemInput.Focus()
		return textarea.Blink
	}

	return nil
}

func (a *App) startProcessing() tea.Cmd {
	poem := strings.TrimSpace(a.state.poemInput.Value())
	if poem == "" {
		return nil
	}

	a.state.processing = true
	a.state.processError = nil
	a.state.progress = nil
	a.view = viewProcessing

	return func() tea.Msg {
		p, err := pipeline.New(a.state.runner, a.state.config)
		if err != nil {
			return processErrorMsg{err}
		}

		p.SetProgressCallback(func(pr pipeline.Progress) {
			if a.program != nil {
				a.program.Send(progressMsg{progress: pr})
			}
		})

		result, err := p.Process(context.Background(), poem)
		if err != nil {
			return processErrorMsg{err}
		}
		return resultMsg{result: result}
	}
}

func viewSuggestionsOrWelcome(s *state) view {
	if s.result != nil {
		return viewSuggestions
	}
	return viewWelcome
}

type setupCompleteMsg struct{}
type runnerReadyMsg struct{ runner llm.Runner }
type runnerErrorMsg struct{ error }
type progressMsg struct{ progress pipeline.Progress }
type resultMsg struct{ result *pipeline.Result }
type processErrorMsg struct{ error }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewPoem:
		return a.renderPoem()
	case viewProcessing:
		return a.renderProcessing()
	case viewSuggestions:
		return a.renderSuggestions()
	case viewPrompt:
		return a.renderPrompt()
	case viewError:
		return a.renderError()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}
