package prompt

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed templates/word_substitution.md
var wordSubstitutionText string

//go:embed templates/emotional_interpretation.md
var emotionalInterpretationText string

//go:embed templates/meaning_preservation.md
var meaningPreservationText string

//go:embed templates/melody_feedback.md
var melodyFeedbackText string

// TemplateType identifies one of the four prompt templates
type TemplateType string

const (
	TemplateWordSubstitution        TemplateType = "word_substitution"
	TemplateEmotionalInterpretation TemplateType = "emotional_interpretation"
	TemplateMeaningPreservation     TemplateType = "meaning_preservation"
	TemplateMelodyFeedback          TemplateType = "melody_feedback"
)

// Template is a parametrized prompt skeleton. The wording lives in
// embedded markdown so it stays auditable independent of the calling
// logic; required and optional variables declare the template's own
// completeness contract.
type Template struct {
	Type              TemplateType
	Text              string // with {{name}} placeholders
	RequiredVariables []string
	OptionalVariables map[string]string // name -> default
	Description       string
}

var registry = map[TemplateType]*Template{
	TemplateWordSubstitution: {
		Type:              TemplateWordSubstitution,
		Text:              wordSubstitutionText,
		RequiredVariables: []string{"poemText", "averageSingability", "problemSpots"},
		OptionalVariables: map[string]string{"maxSuggestions": "10"},
		Description:       "asks for singability-improving word substitutions",
	},
	TemplateEmotionalInterpretation: {
		Type:              TemplateEmotionalInterpretation,
		Text:              emotionalInterpretationText,
		RequiredVariables: []string{"poemText", "sentiment", "arousal"},
		OptionalVariables: map[string]string{
			"emotionKeywords": "none",
			"moods":           "none detected",
		},
		Description: "asks for an emotional reading of the poem",
	},
	TemplateMeaningPreservation: {
		Type:              TemplateMeaningPreservation,
		Text:              meaningPreservationText,
		RequiredVariables: []string{"poemText"},
		OptionalVariables: map[string]string{},
		Description:       "asks what a lyric adaptation must preserve",
	},
	TemplateMelodyFeedback: {
		Type:              TemplateMelodyFeedback,
		Text:              melodyFeedbackText,
		RequiredVariables: []string{"lyrics", "melodyDetails", "stressAlignment"},
		OptionalVariables: map[string]string{"alignmentIssues": ""},
		Description:       "asks how well the lyrics sit on the melody",
	},
}

// GetTemplate returns the singleton template for a known type
func GetTemplate(t TemplateType) (*Template, error) {
	tpl, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("unknown template type: %s", t)
	}
	return tpl, nil
}

// ListTemplateTypes enumerates all registered template identifiers
func ListTemplateTypes() []TemplateType {
	types := make([]TemplateType, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// ValidationResult reports which required variables a caller left out
type ValidationResult struct {
	IsValid bool
	Missing []string
}

// ValidateTemplateVariables checks vars against the template's required
// list only; optional variables never affect validity
func ValidateTemplateVariables(tpl *Template, vars map[string]string) ValidationResult {
	result := ValidationResult{IsValid: true}
	for _, name := range tpl.RequiredVariables {
		if _, ok := vars[name]; !ok {
			result.IsValid = false
			result.Missing = append(result.Missing, name)
		}
	}
	return result
}

// FillTemplate merges optional defaults beneath the caller's vars and
// substitutes every placeholder occurrence. A missing required variable
// is a caller bug and returns an error rather than silently defaulting.
func FillTemplate(tpl *Template, vars map[string]string) (string, error) {
	if check := ValidateTemplateVariables(tpl, vars); !check.IsValid {
		return "", fmt.Errorf("template %s missing required variables: %s",
			tpl.Type, strings.Join(check.Missing, ", "))
	}

	merged := make(map[string]string, len(tpl.OptionalVariables)+len(vars))
	for name, def := range tpl.OptionalVariables {
		merged[name] = def
	}
	for name, value := range vars {
		merged[name] = value
	}

	filled := tpl.Text
	for name, value := range merged {
		filled = strings.ReplaceAll(filled, "{{"+name+"}}", value)
	}
	return filled, nil
}

// EscapeForTemplate neutralizes characters that could be misinterpreted
// when untrusted text is embedded into templated output. It is applied
// to poem and lyric text before insertion, never to the template itself.
func EscapeForTemplate(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, "`", "\\`")
	text = strings.ReplaceAll(text, "$", `\$`)
	return text
}
