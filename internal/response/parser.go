package response

import (
	"fmt"
	"strings"

	"versesmith/internal/suggest"
)

// Every parser walks the same four-exit path: empty input, no JSON found,
// JSON unparsable, or JSON parsed and then validated / salvaged /
// rejected. Failures for untrusted model text never surface as Go errors;
// they travel in the returned Metadata so callers can branch on Success
// and offer a retry.

// locate runs the shared prologue: empty check, extraction, tolerant
// parse. A nil return with ok == false means meta already carries the
// failure and the caller should return its type default.
func locate(raw string, meta *Metadata) (any, bool) {
	meta.OriginalLength = len(raw)

	if strings.TrimSpace(raw) == "" {
		meta.fail("Empty response received")
		return nil, false
	}

	payload, ok := ExtractJSON(raw)
	if !ok {
		meta.fail("No JSON found in response")
		return nil, false
	}

	parsed, ok := SafeJSONParse(payload)
	if !ok {
		meta.fail("Failed to parse JSON")
		return nil, false
	}

	return parsed, true
}

// ParseSuggestionResponse turns raw model text into word substitutions.
// The payload may be an array of suggestions, a single suggestion object,
// or an object wrapping a "suggestions" array; all three are accepted.
func ParseSuggestionResponse(raw string) ([]suggest.Suggestion, Metadata) {
	meta := Metadata{}

	parsed, ok := locate(raw, &meta)
	if !ok {
		return []suggest.Suggestion{}, meta
	}

	var items []any
	switch v := parsed.(type) {
	case []any:
		items = v
	case map[string]any:
		if wrapped, ok := v["suggestions"].([]any); ok {
			items = wrapped
		} else {
			items = []any{v}
		}
	default:
		meta.fail(fmt.Sprintf("Expected a suggestion array or object, got %T", parsed))
		return []suggest.Suggestion{}, meta
	}

	suggestions := make([]suggest.Suggestion, 0, len(items))
	for i, item := range items {
		obj, ok := asObject(item)
		if !ok {
			meta.warn(fmt.Sprintf("Skipping suggestion %d: not an object", i))
			continue
		}

		if isValidSuggestion(obj) {
			suggestions = append(suggestions, suggestionFromMap(obj))
			continue
		}

		salvaged, ok := salvageSuggestion(obj)
		if !ok {
			meta.warn(fmt.Sprintf("Skipping suggestion %d: missing both words", i))
			continue
		}
		meta.warn(fmt.Sprintf("Suggestion %d required repair", i))
		suggestions = append(suggestions, salvaged)
	}

	deduped, dropped := suggest.Dedupe(suggestions)
	for _, d := range dropped {
		meta.warn(fmt.Sprintf("Removed duplicate suggestion for %q at line %d position %d",
			d.OriginalWord, d.LineNumber, d.Position))
	}

	// Deliberate: an empty list with no errors still counts as success,
	// so callers must not assume success implies suggestions exist.
	meta.Success = len(deduped) > 0 || len(meta.Errors) == 0

	return deduped, meta
}

// ParseAnalysisResponse turns raw model text into a qualitative analysis
func ParseAnalysisResponse(raw string) (QualitativeAnalysis, Metadata) {
	meta := Metadata{}

	parsed, ok := locate(raw, &meta)
	if !ok {
		return DefaultAnalysis(), meta
	}

	obj, ok := asObject(parsed)
	if !ok {
		meta.fail(fmt.Sprintf("Expected an analysis object, got %T", parsed))
		return DefaultAnalysis(), meta
	}

	if isValidAnalysis(obj) {
		meta.Success = true
		return analysisFromMap(obj), meta
	}

	salvaged, ok := salvageAnalysis(obj)
	if !ok {
		meta.fail("Response structure does not match the expected analysis shape")
		return DefaultAnalysis(), meta
	}

	// Salvage still counts as success: a usable object was produced
	meta.warn("Analysis response required repair")
	meta.Success = true
	return salvaged, meta
}

// ParseMelodyFeedbackResponse turns raw model text into melody feedback
func ParseMelodyFeedbackResponse(raw string) (MelodyFeedback, Metadata) {
	meta := Metadata{}

	parsed, ok := locate(raw, &meta)
	if !ok {
		return DefaultFeedback(), meta
	}

	obj, ok := asObject(parsed)
	if !ok {
		meta.fail(fmt.Sprintf("Expected a feedback object, got %T", parsed))
		return DefaultFeedback(), meta
	}

	if isValidFeedback(obj) {
		meta.Success = true
		return feedbackFromMap(obj), meta
	}

	salvaged, ok := salvageFeedback(obj)
	if !ok {
		meta.fail("Response structure does not match the expected feedback shape")
		return DefaultFeedback(), meta
	}

	meta.warn("Melody feedback response required repair")
	meta.Success = true
	return salvaged, meta
}
