package analysis

import (
	"testing"
)

func TestCountSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"strength", 1},
		{"table", 2},
		{"beautiful", 3},
		{"fire", 1},
		{"alone", 2},
		{"melody", 3},
		{"", 0},
		{"rhythm", 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := CountSyllables(tt.word); got != tt.want {
				t.Errorf("CountSyllables(%q) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain line",
			text: "the quick brown fox",
			want: []string{"the", "quick", "brown", "fox"},
		},
		{
			name: "punctuation stripped",
			text: "Oh, world! -- listen...",
			want: []string{"Oh", "world", "listen"},
		},
		{
			name: "apostrophes kept",
			text: "don't stop",
			want: []string{"don't", "stop"},
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitWords(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitWords(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("word %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAnalyzeStructure(t *testing.T) {
	poem := "The morning light is gold\n\nA shadow falls tonight\nAnd breaks the silver light"

	a := Analyze(poem)

	if len(a.Stanzas) != 2 {
		t.Fatalf("got %d stanzas, want 2", len(a.Stanzas))
	}
	if a.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", a.LineCount())
	}

	// Line numbers are 1-indexed across stanzas
	line := a.LineAt(3)
	if line == nil {
		t.Fatal("LineAt(3) returned nil")
	}
	if line.Text != "And breaks the silver light" {
		t.Errorf("LineAt(3).Text = %q", line.Text)
	}
	if a.LineAt(4) != nil {
		t.Error("LineAt(4) should be nil")
	}
}

func TestAnalyzeFlagsHardClusters(t *testing.T) {
	a := Analyze("the strength of stone")

	found := false
	for _, p := range a.Problems {
		if p.Type == ProblemSingability && p.Position == 1 {
			found = true
			if p.Line != 1 {
				t.Errorf("problem line = %d, want 1", p.Line)
			}
			if !p.Severity.AtLeast(SeverityMedium) {
				t.Errorf("cluster severity = %s, want at least medium", p.Severity)
			}
		}
	}
	if !found {
		t.Errorf("no singability problem reported for 'strength': %+v", a.Problems)
	}
}

func TestAverageSingability(t *testing.T) {
	empty := &PoemAnalysis{}
	if got := empty.AverageSingability(); got != 0 {
		t.Errorf("empty AverageSingability() = %f, want 0", got)
	}

	a := Analyze("la la la\nda da da")
	avg := a.AverageSingability()
	if avg <= 0 || avg > 1 {
		t.Errorf("AverageSingability() = %f, want in (0, 1]", avg)
	}
}

func TestSeverityRank(t *testing.T) {
	if !SeverityHigh.AtLeast(SeverityLow) {
		t.Error("high should be at least low")
	}
	if SeverityLow.AtLeast(SeverityMedium) {
		t.Error("low should not be at least medium")
	}
	if Severity("bogus").Rank() != 0 {
		t.Error("unknown severity should rank 0")
	}
}

func TestEstimateEmotion(t *testing.T) {
	e := estimateEmotion("fire and storm and rage across the night")
	if e.Arousal <= 0 {
		t.Errorf("Arousal = %f, want > 0", e.Arousal)
	}
	if len(e.Keywords) == 0 {
		t.Error("expected emotion keywords")
	}

	calm := estimateEmotion("")
	if calm.Sentiment != 0 || calm.Arousal != 0 {
		t.Errorf("empty text should score zero, got %+v", calm)
	}
}
