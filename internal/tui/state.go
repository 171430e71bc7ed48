package tui

import (
	"github.com/charmbracelet/bubbles/textarea"

	"versesmith/internal/config"
	"versesmith/internal/llm"
	"versesmith/internal/pipeline"
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard state
	selectedRunner int

	// Poem entry
	poemInput textarea.Model

	// Processing
	processing bool
	progress   *pipeline.Progress

	// Result
	result       *pipeline.Result
	selected     int // cursor within the suggestion list
	accepted     map[int]bool
	showWarnings bool

	// Errors
	processError error

	// Runner
	runner      llm.Runner
	runnerReady bool
	runnerError error
}

func newState() *state {
	poem := textarea.New()
	poem.Placeholder = "Paste or type your poem here..."
	poem.CharLimit = 0
	poem.SetWidth(70)
	poem.SetHeight(12)

	return &state{
		poemInput: poem,
		accepted:  make(map[int]bool),
	}
}

// acceptedLyrics applies the accepted suggestions to the analyzed poem
// and returns the revised text
func (s *state) acceptedLyrics() string {
	if s.result == nil {
		return ""
	}

	lines := map[int][]string{}
	num := 0
	for _, st := range s.result.Analysis.Stanzas {
		for _, l := range st.Lines {
			num++
			words := append([]string(nil), l.Words...)
			lines[num] = words
		}
	}

	for i, sug := range s.result.Suggestions {
		if !s.accepted[i] {
			continue
		}
		words, ok := lines[sug.LineNumber]
		if !ok || sug.Position < 0 || sug.Position >= len(words) {
			continue
		}
		words[sug.Position] = sug.SuggestedWord
		lines[sug.LineNumber] = words
	}

	var out []string
	num = 0
	for _, st := range s.result.Analysis.Stanzas {
		if len(out) > 0 {
			out = append(out, "")
		}
		for range st.Lines {
			num++
			out = append(out, joinWords(lines[num]))
		}
	}
	return joinLines(out)
}

func joinWords(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
