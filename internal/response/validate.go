package response

import (
	"strings"

	"versesmith/internal/suggest"
)

// Typed accessors over the untrusted map shape json.Unmarshal produces.
// Each reports whether the field was present AND well-typed; absence and
// wrong type are treated the same during salvage.

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func getString(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

func getNumber(m map[string]any, key string) (float64, bool) {
	f, ok := m[key].(float64)
	return f, ok
}

func getStringSlice(m map[string]any, key string) ([]string, bool) {
	raw, ok := m[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// stringSliceOr returns the field when well-typed and fallback otherwise
func stringSliceOr(m map[string]any, key string, fallback []string) []string {
	if s, ok := getStringSlice(m, key); ok {
		return s
	}
	return fallback
}

func stringOr(m map[string]any, key, fallback string) string {
	if s, ok := getString(m, key); ok {
		return s
	}
	return fallback
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// --- Suggestion ---

func isValidSuggestion(m map[string]any) bool {
	if _, ok := getString(m, "originalWord"); !ok {
		return false
	}
	if _, ok := getString(m, "suggestedWord"); !ok {
		return false
	}
	if _, ok := getNumber(m, "lineNumber"); !ok {
		return false
	}
	if _, ok := getNumber(m, "position"); !ok {
		return false
	}
	if _, ok := getString(m, "reason"); !ok {
		return false
	}
	mp, ok := getString(m, "preservesMeaning")
	return ok && suggest.MeaningPreservation(mp).Valid()
}

func suggestionFromMap(m map[string]any) suggest.Suggestion {
	line, _ := getNumber(m, "lineNumber")
	pos, _ := getNumber(m, "position")
	mp, _ := getString(m, "preservesMeaning")

	return suggest.Suggestion{
		OriginalWord:     stringOr(m, "originalWord", ""),
		SuggestedWord:    stringOr(m, "suggestedWord", ""),
		LineNumber:       int(line),
		Position:         int(pos),
		Reason:           stringOr(m, "reason", ""),
		PreservesMeaning: suggest.MeaningPreservation(mp),
	}
}

// salvageSuggestion recovers what it can from a structurally invalid
// suggestion. It reports success only when both words came through as
// non-empty text; everything else falls back to defaults.
func salvageSuggestion(m map[string]any) (suggest.Suggestion, bool) {
	s := suggest.Suggestion{
		OriginalWord:     stringOr(m, "originalWord", ""),
		SuggestedWord:    stringOr(m, "suggestedWord", ""),
		Reason:           stringOr(m, "reason", ""),
		PreservesMeaning: suggest.MeaningPartial,
	}
	if line, ok := getNumber(m, "lineNumber"); ok {
		s.LineNumber = int(line)
	}
	if pos, ok := getNumber(m, "position"); ok {
		s.Position = int(pos)
	}
	if mp, ok := getString(m, "preservesMeaning"); ok && suggest.MeaningPreservation(mp).Valid() {
		s.PreservesMeaning = suggest.MeaningPreservation(mp)
	}

	ok := strings.TrimSpace(s.OriginalWord) != "" && strings.TrimSpace(s.SuggestedWord) != ""
	return s, ok
}

// --- Qualitative analysis ---

func isValidAnalysis(m map[string]any) bool {
	emotional, ok := asObject(m["emotional"])
	if !ok {
		return false
	}
	meaning, ok := asObject(m["meaning"])
	if !ok {
		return false
	}
	if _, ok := getString(emotional, "primaryTheme"); !ok {
		return false
	}
	if _, ok := getString(emotional, "emotionalJourney"); !ok {
		return false
	}
	if _, ok := getString(emotional, "mood"); !ok {
		return false
	}
	if _, ok := getStringSlice(emotional, "secondaryThemes"); !ok {
		return false
	}
	if _, ok := getStringSlice(emotional, "keyImagery"); !ok {
		return false
	}
	if _, ok := getString(meaning, "coreTheme"); !ok {
		return false
	}
	if _, ok := getString(meaning, "authorVoice"); !ok {
		return false
	}
	if _, ok := getStringSlice(meaning, "essentialElements"); !ok {
		return false
	}
	if _, ok := getStringSlice(meaning, "flexibleElements"); !ok {
		return false
	}
	if _, ok := getString(m, "summary"); !ok {
		return false
	}
	_, ok = getNumber(m, "confidence")
	return ok
}

// analysisFromMap builds an analysis from any object, copying whatever is
// independently well-typed and defaulting the rest. The result is always
// normalized: arrays non-nil, confidence clamped into [0,1].
func analysisFromMap(m map[string]any) QualitativeAnalysis {
	a := DefaultAnalysis()

	if emotional, ok := asObject(m["emotional"]); ok {
		a.Emotional.PrimaryTheme = stringOr(emotional, "primaryTheme", "")
		a.Emotional.EmotionalJourney = stringOr(emotional, "emotionalJourney", "")
		a.Emotional.Mood = stringOr(emotional, "mood", "")
		a.Emotional.SecondaryThemes = stringSliceOr(emotional, "secondaryThemes", []string{})
		a.Emotional.KeyImagery = stringSliceOr(emotional, "keyImagery", []string{})
	}
	if meaning, ok := asObject(m["meaning"]); ok {
		a.Meaning.CoreTheme = stringOr(meaning, "coreTheme", "")
		a.Meaning.AuthorVoice = stringOr(meaning, "authorVoice", "")
		a.Meaning.EssentialElements = stringSliceOr(meaning, "essentialElements", []string{})
		a.Meaning.FlexibleElements = stringSliceOr(meaning, "flexibleElements", []string{})
	}
	a.Summary = stringOr(m, "summary", "")
	if conf, ok := getNumber(m, "confidence"); ok {
		a.Confidence = clampConfidence(conf)
	}

	return a
}

// salvageAnalysis reports success only when something meaningfully
// non-empty was recovered: a theme, a mood, or a summary
func salvageAnalysis(m map[string]any) (QualitativeAnalysis, bool) {
	a := analysisFromMap(m)
	ok := strings.TrimSpace(a.Emotional.PrimaryTheme) != "" ||
		strings.TrimSpace(a.Emotional.Mood) != "" ||
		strings.TrimSpace(a.Summary) != ""
	return a, ok
}

// --- Melody feedback ---

func isValidFeedback(m map[string]any) bool {
	fit, ok := getString(m, "emotionalFit")
	if !ok || !EmotionalFit(fit).Valid() {
		return false
	}
	if _, ok := getStringSlice(m, "observations"); !ok {
		return false
	}
	if _, ok := getStringSlice(m, "improvements"); !ok {
		return false
	}
	_, ok = getStringSlice(m, "highlights")
	return ok
}

func feedbackFromMap(m map[string]any) MelodyFeedback {
	f := DefaultFeedback()

	if fit, ok := getString(m, "emotionalFit"); ok && EmotionalFit(fit).Valid() {
		f.EmotionalFit = EmotionalFit(fit)
	}
	f.Observations = stringSliceOr(m, "observations", []string{})
	f.Improvements = stringSliceOr(m, "improvements", []string{})
	f.Highlights = stringSliceOr(m, "highlights", []string{})

	return f
}

// salvageFeedback recovers a partial feedback object. A stray
// overallAssessment string counts as an observation. Success needs at
// least one non-empty observation, improvement, or highlight.
func salvageFeedback(m map[string]any) (MelodyFeedback, bool) {
	f := feedbackFromMap(m)

	if assessment, ok := getString(m, "overallAssessment"); ok && strings.TrimSpace(assessment) != "" {
		f.Observations = append(f.Observations, assessment)
	}

	for _, list := range [][]string{f.Observations, f.Improvements, f.Highlights} {
		for _, item := range list {
			if strings.TrimSpace(item) != "" {
				return f, true
			}
		}
	}
	return f, false
}
