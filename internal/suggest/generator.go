package suggest

import (
	"fmt"
	"sort"
	"strings"

	"versesmith/internal/analysis"
)

// Options controls the heuristic generator
type Options struct {
	// MinSeverity drops problems below this threshold. Zero value means
	// no threshold.
	MinSeverity analysis.Severity
	// FocusTypes is an allow-list of problem types. Empty means all types.
	FocusTypes []analysis.ProblemType
	// MaxSuggestions caps the output, default 10
	MaxSuggestions int
	// Tables overrides the built-in substitution lists
	Tables *Tables
}

// Result is the generator output plus its audit trail. Unlike the model
// path, the heuristic path has no prose reason coming back with each
// suggestion, so it must be independently explainable.
type Result struct {
	Suggestions       []Suggestion
	ProblemsProcessed int
	ProblemsSkipped   int
	SkipReasons       []string
}

type linePos struct {
	line, pos int
}

// GenerateFromAnalysis maps quantitative problem reports directly into
// suggestions using the curated substitution tables. No model call is made.
func GenerateFromAnalysis(a *analysis.PoemAnalysis, opts Options) *Result {
	result := &Result{}
	if a == nil {
		return result
	}

	tables := opts.Tables
	if tables == nil {
		tables = DefaultTables()
	}
	maxSuggestions := opts.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = 10
	}

	focus := make(map[analysis.ProblemType]bool)
	for _, t := range opts.FocusTypes {
		focus[t] = true
	}

	// Filter before sorting so skip reasons keep source order
	var candidates []analysis.ProblemReport
	for _, p := range a.Problems {
		if opts.MinSeverity != "" && !p.Severity.AtLeast(opts.MinSeverity) {
			result.skip("line %d: severity %s below threshold %s", p.Line, p.Severity, opts.MinSeverity)
			continue
		}
		if len(focus) > 0 && !focus[p.Type] {
			result.skip("line %d: problem type %s not in focus", p.Line, p.Type)
			continue
		}
		candidates = append(candidates, p)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Severity.Rank() != candidates[j].Severity.Rank() {
			return candidates[i].Severity.Rank() > candidates[j].Severity.Rank()
		}
		return candidates[i].Line < candidates[j].Line
	})

	seen := make(map[linePos]bool)
	for _, p := range candidates {
		if len(result.Suggestions) >= maxSuggestions {
			break
		}

		key := linePos{p.Line, p.Position}
		if seen[key] {
			result.skip("line %d position %d: duplicate position", p.Line, p.Position)
			continue
		}

		word, ok := locateWord(a, p)
		if !ok {
			result.skip("line %d position %d: could not generate a substitution", p.Line, p.Position)
			continue
		}

		substitute, ok := tables.substituteFor(p.Type, word, lineWords(a, p.Line))
		if !ok || strings.EqualFold(substitute, word) {
			result.skip("line %d position %d: could not generate a substitution for %q", p.Line, p.Position, word)
			continue
		}

		seen[key] = true
		result.Suggestions = append(result.Suggestions, Suggestion{
			OriginalWord:     word,
			SuggestedWord:    substitute,
			LineNumber:       p.Line,
			Position:         p.Position,
			Reason:           reasonFor(p, word, substitute),
			PreservesMeaning: meaningFor(p.Type, word, substitute, tables),
		})
		result.ProblemsProcessed++
	}

	return result
}

func (r *Result) skip(format string, args ...any) {
	r.ProblemsSkipped++
	r.SkipReasons = append(r.SkipReasons, fmt.Sprintf(format, args...))
}

// locateWord finds the word a problem points at, preferring the explicit
// word index and falling back to re-splitting the line text
func locateWord(a *analysis.PoemAnalysis, p analysis.ProblemReport) (string, bool) {
	line := a.LineAt(p.Line)
	if line == nil {
		return "", false
	}

	words := line.Words
	if len(words) == 0 {
		words = analysis.SplitWords(line.Text)
	}
	if p.Position < 0 || p.Position >= len(words) {
		return "", false
	}
	return words[p.Position], true
}

func lineWords(a *analysis.PoemAnalysis, num int) []string {
	line := a.LineAt(num)
	if line == nil {
		return nil
	}
	if len(line.Words) > 0 {
		return line.Words
	}
	return analysis.SplitWords(line.Text)
}

// meaningFor judges how well the swap preserves meaning: rhyme-driven
// changes are always partial, words that share a table entry are yes,
// anything else is partial
func meaningFor(pt analysis.ProblemType, original, substitute string, tables *Tables) MeaningPreservation {
	if pt == analysis.ProblemRhyme {
		return MeaningPartial
	}
	if tables.relatedWords(original, substitute) {
		return MeaningYes
	}
	return MeaningPartial
}

func reasonFor(p analysis.ProblemReport, original, substitute string) string {
	switch p.Type {
	case analysis.ProblemSingability:
		return fmt.Sprintf("%q is easier to sustain on a note than %q", substitute, original)
	case analysis.ProblemStress:
		return fmt.Sprintf("%q has a simpler stress contour than %q", substitute, original)
	case analysis.ProblemSyllable:
		return fmt.Sprintf("%q helps even out the line's syllable count", substitute)
	case analysis.ProblemRhyme:
		return fmt.Sprintf("%q restores the rhyme that %q breaks", substitute, original)
	default:
		return fmt.Sprintf("%q sings more easily than %q", substitute, original)
	}
}
