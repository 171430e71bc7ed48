package response

import (
	"strings"
	"testing"

	"versesmith/internal/suggest"
)

func TestParseSuggestionResponseValid(t *testing.T) {
	raw := `[{"originalWord":"beautiful","suggestedWord":"lovely","lineNumber":1,"position":2,"reason":"r","preservesMeaning":"yes"}]`

	suggestions, meta := ParseSuggestionResponse(raw)

	if !meta.Success {
		t.Fatalf("Success = false, errors: %v", meta.Errors)
	}
	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(suggestions))
	}

	s := suggestions[0]
	if s.OriginalWord != "beautiful" || s.SuggestedWord != "lovely" {
		t.Errorf("words = %q -> %q", s.OriginalWord, s.SuggestedWord)
	}
	if s.LineNumber != 1 || s.Position != 2 {
		t.Errorf("location = (%d, %d), want (1, 2)", s.LineNumber, s.Position)
	}
	if s.PreservesMeaning != suggest.MeaningYes {
		t.Errorf("PreservesMeaning = %q", s.PreservesMeaning)
	}
	if len(meta.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", meta.Warnings)
	}
	if meta.OriginalLength != len(raw) {
		t.Errorf("OriginalLength = %d, want %d", meta.OriginalLength, len(raw))
	}
}

func TestParseSuggestionResponseSalvage(t *testing.T) {
	suggestions, meta := ParseSuggestionResponse(`[{"originalWord":"test","suggestedWord":"example"}]`)

	if !meta.Success {
		t.Fatalf("salvage should still succeed, errors: %v", meta.Errors)
	}
	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(suggestions))
	}

	s := suggestions[0]
	if s.LineNumber != 0 {
		t.Errorf("LineNumber = %d, want defaulted 0", s.LineNumber)
	}
	if s.PreservesMeaning != suggest.MeaningPartial {
		t.Errorf("PreservesMeaning = %q, want partial", s.PreservesMeaning)
	}
	if len(meta.Warnings) == 0 {
		t.Error("salvage must emit a warning")
	}
}

func TestParseSuggestionResponseShapes(t *testing.T) {
	item := `{"originalWord":"a","suggestedWord":"b","lineNumber":1,"position":0,"reason":"r","preservesMeaning":"no"}`

	tests := []struct {
		name string
		raw  string
	}{
		{"bare array", "[" + item + "]"},
		{"single object", item},
		{"wrapper object", `{"suggestions":[` + item + `]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions, meta := ParseSuggestionResponse(tt.raw)
			if !meta.Success {
				t.Fatalf("Success = false, errors: %v", meta.Errors)
			}
			if len(suggestions) != 1 {
				t.Fatalf("got %d suggestions, want 1", len(suggestions))
			}
			if suggestions[0].OriginalWord != "a" {
				t.Errorf("OriginalWord = %q", suggestions[0].OriginalWord)
			}
		})
	}
}

func TestParseSuggestionResponseDeduplicates(t *testing.T) {
	item := `{"originalWord":"night","suggestedWord":"light","lineNumber":2,"position":3,"reason":"r","preservesMeaning":"partial"}`
	other := `{"originalWord":"night","suggestedWord":"sight","lineNumber":2,"position":3,"reason":"r2","preservesMeaning":"partial"}`

	suggestions, meta := ParseSuggestionResponse("[" + item + "," + other + "]")

	if len(suggestions) != 1 {
		t.Fatalf("got %d suggestions, want 1 after dedupe", len(suggestions))
	}
	// First occurrence wins
	if suggestions[0].SuggestedWord != "light" {
		t.Errorf("SuggestedWord = %q, want light", suggestions[0].SuggestedWord)
	}
	if len(meta.Warnings) != 1 {
		t.Errorf("want one warning per removed duplicate, got %v", meta.Warnings)
	}
}

func TestParseSuggestionResponseEmptyListStillSucceeds(t *testing.T) {
	// Zero suggestions with zero errors reports success; callers must not
	// assume success implies a non-empty list
	suggestions, meta := ParseSuggestionResponse(`[]`)
	if !meta.Success {
		t.Errorf("Success = false for empty array, errors: %v", meta.Errors)
	}
	if len(suggestions) != 0 {
		t.Errorf("got %d suggestions, want 0", len(suggestions))
	}
}

func TestParseSuggestionResponseFailures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"empty input", "", "Empty response received"},
		{"whitespace only", "   \n\t ", "Empty response received"},
		{"no json", "I could not produce suggestions, sorry.", "No JSON found in response"},
		{"unparsable json", `{"a": <<<}`, "Failed to parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestions, meta := ParseSuggestionResponse(tt.raw)
			if meta.Success {
				t.Error("Success = true, want false")
			}
			if len(suggestions) != 0 {
				t.Errorf("got %d suggestions, want 0", len(suggestions))
			}
			found := false
			for _, e := range meta.Errors {
				if e == tt.wantErr {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %v missing %q", meta.Errors, tt.wantErr)
			}
		})
	}
}

func TestParseSuggestionResponseFromProse(t *testing.T) {
	raw := "Here are my suggestions:\n\n```json\n[{\"originalWord\":\"strength\",\"suggestedWord\":\"power\",\"lineNumber\":3,\"position\":1,\"reason\":\"easier to sing\",\"preservesMeaning\":\"yes\"}]\n```\n\nLet me know if you need more."

	suggestions, meta := ParseSuggestionResponse(raw)
	if !meta.Success {
		t.Fatalf("Success = false, errors: %v", meta.Errors)
	}
	if len(suggestions) != 1 || suggestions[0].OriginalWord != "strength" {
		t.Errorf("suggestions = %+v", suggestions)
	}
}

func TestParseAnalysisResponseValid(t *testing.T) {
	raw := `{
		"emotional": {"primaryTheme":"loss","secondaryThemes":["time"],"emotionalJourney":"grief to hope","keyImagery":["winter"],"mood":"somber"},
		"meaning": {"coreTheme":"letting go","essentialElements":["the river"],"flexibleElements":["adjectives"],"authorVoice":"plainspoken"},
		"summary": "an elegy",
		"confidence": 0.8
	}`

	a, meta := ParseAnalysisResponse(raw)
	if !meta.Success {
		t.Fatalf("Success = false, errors: %v", meta.Errors)
	}
	if a.Emotional.PrimaryTheme != "loss" || a.Meaning.CoreTheme != "letting go" {
		t.Errorf("analysis = %+v", a)
	}
	if a.Confidence != 0.8 {
		t.Errorf("Confidence = %f", a.Confidence)
	}
	if len(meta.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", meta.Warnings)
	}
}

func TestParseAnalysisResponseClampsConfidence(t *testing.T) {
	tests := []struct {
		name string
		conf string
		want float64
	}{
		{"above one", "1.5", 1},
		{"below zero", "-3", 0},
		{"in range", "0.4", 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := `{
				"emotional": {"primaryTheme":"t","secondaryThemes":[],"emotionalJourney":"j","keyImagery":[],"mood":"m"},
				"meaning": {"coreTheme":"c","essentialElements":[],"flexibleElements":[],"authorVoice":"v"},
				"summary": "s",
				"confidence": ` + tt.conf + `
			}`
			a, meta := ParseAnalysisResponse(raw)
			if !meta.Success {
				t.Fatalf("Success = false, errors: %v", meta.Errors)
			}
			if a.Confidence != tt.want {
				t.Errorf("Confidence = %f, want %f", a.Confidence, tt.want)
			}
		})
	}
}

func TestParseAnalysisResponseEmpty(t *testing.T) {
	a, meta := ParseAnalysisResponse("")

	if meta.Success {
		t.Error("Success = true for empty input")
	}
	if a.Confidence != 0 {
		t.Errorf("Confidence = %f, want 0", a.Confidence)
	}
	if a.Emotional.PrimaryTheme != "" {
		t.Errorf("PrimaryTheme = %q, want empty", a.Emotional.PrimaryTheme)
	}
	if a.Emotional.SecondaryThemes == nil || a.Meaning.EssentialElements == nil {
		t.Error("array fields must be non-nil in the default analysis")
	}
}

func TestParseAnalysisResponseSalvage(t *testing.T) {
	// Missing the whole meaning section, confidence mistyped
	raw := `{"emotional": {"primaryTheme":"hope","mood":"bright"}, "confidence": "high"}`

	a, meta := ParseAnalysisResponse(raw)
	if !meta.Success {
		t.Fatalf("salvage should succeed, errors: %v", meta.Errors)
	}
	if a.Emotional.PrimaryTheme != "hope" {
		t.Errorf("PrimaryTheme = %q", a.Emotional.PrimaryTheme)
	}
	if a.Confidence != 0 {
		t.Errorf("mistyped confidence should default to 0, got %f", a.Confidence)
	}
	if len(meta.Warnings) == 0 {
		t.Error("salvage must emit a warning")
	}
	if a.Meaning.EssentialElements == nil {
		t.Error("salvaged analysis must keep arrays non-nil")
	}
}

func TestParseAnalysisResponseUnsalvageable(t *testing.T) {
	a, meta := ParseAnalysisResponse(`{"unrelated": 42}`)

	if meta.Success {
		t.Error("Success = true for unsalvageable structure")
	}
	if len(meta.Errors) == 0 {
		t.Error("expected a structural error")
	}
	if a.Emotional.PrimaryTheme != "" {
		t.Error("should return the default analysis")
	}
}

func TestParseMelodyFeedbackResponseValid(t *testing.T) {
	raw := `{"emotionalFit":"good","observations":["fits the rise"],"improvements":["soften line 3"],"highlights":["the chorus"]}`

	f, meta := ParseMelodyFeedbackResponse(raw)
	if !meta.Success {
		t.Fatalf("Success = false, errors: %v", meta.Errors)
	}
	if f.EmotionalFit != FitGood {
		t.Errorf("EmotionalFit = %q", f.EmotionalFit)
	}
	if len(f.Observations) != 1 || len(f.Improvements) != 1 || len(f.Highlights) != 1 {
		t.Errorf("feedback = %+v", f)
	}
}

func TestParseMelodyFeedbackResponseSalvagesAssessment(t *testing.T) {
	raw := `{"emotionalFit":"fantastic","overallAssessment":"works well overall"}`

	f, meta := ParseMelodyFeedbackResponse(raw)
	if !meta.Success {
		t.Fatalf("salvage should succeed, errors: %v", meta.Errors)
	}
	if f.EmotionalFit != FitAdequate {
		t.Errorf("unknown fit should default to adequate, got %q", f.EmotionalFit)
	}
	if len(f.Observations) != 1 || f.Observations[0] != "works well overall" {
		t.Errorf("Observations = %v", f.Observations)
	}
	if len(meta.Warnings) == 0 {
		t.Error("salvage must emit a warning")
	}
}

func TestParseMelodyFeedbackResponseUnsalvageable(t *testing.T) {
	f, meta := ParseMelodyFeedbackResponse(`{"emotionalFit": 3}`)

	if meta.Success {
		t.Error("Success = true for unsalvageable structure")
	}
	if f.EmotionalFit != FitAdequate {
		t.Errorf("default feedback should be adequate, got %q", f.EmotionalFit)
	}
}

func TestParsersNeverPanicOnGarbage(t *testing.T) {
	inputs := []string{
		"", "{", "}", "[[[", `{"a":}`, "```json\n```",
		strings.Repeat("{", 5000),
		"null", "42", `"just a string"`, "[null, 1]",
	}

	for _, in := range inputs {
		ParseSuggestionResponse(in)
		ParseAnalysisResponse(in)
		ParseMelodyFeedbackResponse(in)
	}
}
