package prompt

import (
	"fmt"
	"strings"

	"versesmith/internal/analysis"
)

// ProblemSpot is the reduced view of a problem report that goes into
// prompt text. It deliberately drops the analyzer's suggested fix so the
// model forms its own opinion.
type ProblemSpot struct {
	Line        int
	Position    int
	Type        analysis.ProblemType
	Severity    analysis.Severity
	Description string
}

func spotsFrom(problems []analysis.ProblemReport) []ProblemSpot {
	spots := make([]ProblemSpot, 0, len(problems))
	for _, p := range problems {
		spots = append(spots, ProblemSpot{
			Line:        p.Line,
			Position:    p.Position,
			Type:        p.Type,
			Severity:    p.Severity,
			Description: p.Description,
		})
	}
	return spots
}

// poemText reconstructs the poem: stanza lines joined by newlines, a
// blank line between stanzas
func poemText(a *analysis.PoemAnalysis) string {
	var stanzas []string
	for _, s := range a.Stanzas {
		var lines []string
		for _, l := range s.Lines {
			lines = append(lines, l.Text)
		}
		stanzas = append(stanzas, strings.Join(lines, "\n"))
	}
	return strings.Join(stanzas, "\n\n")
}

func formatSpots(spots []ProblemSpot) string {
	if len(spots) == 0 {
		return "No specific problem spots identified."
	}

	var b strings.Builder
	for i, s := range spots {
		fmt.Fprintf(&b, "%d. Line %d, word %d (%s, %s severity): %s\n",
			i+1, s.Line, s.Position, s.Type, s.Severity, s.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// CreateSuggestionPrompt builds the word-substitution prompt.
// maxSuggestions <= 0 falls back to the template default of 10.
func CreateSuggestionPrompt(a *analysis.PoemAnalysis, maxSuggestions int) (string, error) {
	tpl, err := GetTemplate(TemplateWordSubstitution)
	if err != nil {
		return "", err
	}

	vars := map[string]string{
		"poemText":           EscapeForTemplate(poemText(a)),
		"averageSingability": fmt.Sprintf("%.2f", a.AverageSingability()),
		"problemSpots":       EscapeForTemplate(formatSpots(spotsFrom(a.Problems))),
	}
	if maxSuggestions > 0 {
		vars["maxSuggestions"] = fmt.Sprintf("%d", maxSuggestions)
	}

	return FillTemplate(tpl, vars)
}

// CreateEmotionalInterpretationPrompt builds the emotional sub-prompt
func CreateEmotionalInterpretationPrompt(a *analysis.PoemAnalysis) (string, error) {
	tpl, err := GetTemplate(TemplateEmotionalInterpretation)
	if err != nil {
		return "", err
	}

	vars := map[string]string{
		"poemText":  EscapeForTemplate(poemText(a)),
		"sentiment": fmt.Sprintf("%.2f", a.Emotion.Sentiment),
		"arousal":   fmt.Sprintf("%.2f", a.Emotion.Arousal),
	}
	// Empty lists fall through to the template defaults "none" and
	// "none detected"
	if len(a.Emotion.Keywords) > 0 {
		vars["emotionKeywords"] = EscapeForTemplate(strings.Join(a.Emotion.Keywords, ", "))
	}
	if len(a.Emotion.Moods) > 0 {
		vars["moods"] = EscapeForTemplate(strings.Join(a.Emotion.Moods, ", "))
	}

	return FillTemplate(tpl, vars)
}

// CreateMeaningPreservationPrompt builds the meaning sub-prompt
func CreateMeaningPreservationPrompt(a *analysis.PoemAnalysis) (string, error) {
	tpl, err := GetTemplate(TemplateMeaningPreservation)
	if err != nil {
		return "", err
	}

	return FillTemplate(tpl, map[string]string{
		"poemText": EscapeForTemplate(poemText(a)),
	})
}

// combinedAnalysisSchema describes the single JSON object the model must
// return when both sub-prompts run together
const combinedAnalysisSchema = "Return JSON only, combining both assessments into one object:\n\n" +
	"```json\n" +
	"{\n" +
	"  \"emotional\": {\n" +
	"    \"primaryTheme\": \"...\",\n" +
	"    \"secondaryThemes\": [\"...\"],\n" +
	"    \"emotionalJourney\": \"...\",\n" +
	"    \"keyImagery\": [\"...\"],\n" +
	"    \"mood\": \"...\"\n" +
	"  },\n" +
	"  \"meaning\": {\n" +
	"    \"coreTheme\": \"...\",\n" +
	"    \"essentialElements\": [\"...\"],\n" +
	"    \"flexibleElements\": [\"...\"],\n" +
	"    \"authorVoice\": \"...\"\n" +
	"  },\n" +
	"  \"summary\": \"...\",\n" +
	"  \"confidence\": 0.0\n" +
	"}\n" +
	"```"

// CreateAnalysisPrompt concatenates the two independently generated
// sub-prompts and appends the combined output schema
func CreateAnalysisPrompt(a *analysis.PoemAnalysis) (string, error) {
	emotional, err := CreateEmotionalInterpretationPrompt(a)
	if err != nil {
		return "", err
	}
	meaning, err := CreateMeaningPreservationPrompt(a)
	if err != nil {
		return "", err
	}

	return emotional + "\n\n" + meaning + "\n\n" + combinedAnalysisSchema, nil
}

// CreateMelodyFeedbackPrompt builds the melody-feedback prompt from the
// analyzed lyrics and the target melody
func CreateMelodyFeedbackPrompt(a *analysis.PoemAnalysis, melody analysis.Melody) (string, error) {
	tpl, err := GetTemplate(TemplateMelodyFeedback)
	if err != nil {
		return "", err
	}

	vars := map[string]string{
		"lyrics":          EscapeForTemplate(poemText(a)),
		"melodyDetails":   EscapeForTemplate(formatMelody(melody)),
		"stressAlignment": formatStressAlignment(a, melody),
	}
	if issues := formatAlignmentIssues(a); issues != "" {
		vars["alignmentIssues"] = issues
	}

	return FillTemplate(tpl, vars)
}

func formatMelody(m analysis.Melody) string {
	parts := []string{}
	if m.Tempo > 0 {
		parts = append(parts, fmt.Sprintf("%d BPM", m.Tempo))
	}
	if m.TimeSignature != "" {
		parts = append(parts, m.TimeSignature)
	}
	if len(parts) == 0 {
		return "unspecified"
	}
	return strings.Join(parts, ", ")
}

// formatStressAlignment renders one entry per source line, pairing the
// line's stress pattern with the melody pattern, or "Pattern: N/A" when
// the melody has none for that line
func formatStressAlignment(a *analysis.PoemAnalysis, melody analysis.Melody) string {
	var b strings.Builder

	num := 0
	for _, s := range a.Stanzas {
		for _, l := range s.Lines {
			num++
			pattern := "N/A"
			if num-1 < len(melody.LinePatterns) && melody.LinePatterns[num-1] != "" {
				pattern = melody.LinePatterns[num-1]
			}
			fmt.Fprintf(&b, "Line %d: stress %s, Pattern: %s\n", num, l.StressPattern, pattern)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatAlignmentIssues renders the "Alignment Issues" block, or ""
// when no line carries a medium or high severity singability problem
func formatAlignmentIssues(a *analysis.PoemAnalysis) string {
	var b strings.Builder

	num := 0
	for _, s := range a.Stanzas {
		for _, l := range s.Lines {
			num++
			var issues []string
			for _, p := range l.Problems {
				if p.Type == analysis.ProblemSingability && p.Severity.AtLeast(analysis.SeverityMedium) {
					issues = append(issues, p.Description)
				}
			}
			if len(issues) > 0 {
				fmt.Fprintf(&b, "Line %d: %s\n", num, strings.Join(issues, "; "))
			}
		}
	}

	if b.Len() == 0 {
		return ""
	}
	return "\nAlignment Issues:\n" + strings.TrimRight(b.String(), "\n") + "\n"
}
