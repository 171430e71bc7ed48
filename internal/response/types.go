package response

// EmotionalInterpretation is the model's read of the poem's feeling
type EmotionalInterpretation struct {
	PrimaryTheme     string   `json:"primaryTheme"`
	SecondaryThemes  []string `json:"secondaryThemes"`
	EmotionalJourney string   `json:"emotionalJourney"`
	KeyImagery       []string `json:"keyImagery"`
	Mood             string   `json:"mood"`
}

// MeaningAssessment captures what must survive a lyric adaptation
type MeaningAssessment struct {
	CoreTheme         string   `json:"coreTheme"`
	EssentialElements []string `json:"essentialElements"`
	FlexibleElements  []string `json:"flexibleElements"`
	AuthorVoice       string   `json:"authorVoice"`
}

// QualitativeAnalysis combines the emotional and meaning reads
type QualitativeAnalysis struct {
	Emotional  EmotionalInterpretation `json:"emotional"`
	Meaning    MeaningAssessment       `json:"meaning"`
	Summary    string                  `json:"summary"`
	Confidence float64                 `json:"confidence"` // always clamped to [0,1]
}

// EmotionalFit grades how well lyrics sit on a melody
type EmotionalFit string

const (
	FitExcellent EmotionalFit = "excellent"
	FitGood      EmotionalFit = "good"
	FitAdequate  EmotionalFit = "adequate"
	FitPoor      EmotionalFit = "poor"
)

// Valid reports whether the value is one of the four known grades
func (f EmotionalFit) Valid() bool {
	switch f {
	case FitExcellent, FitGood, FitAdequate, FitPoor:
		return true
	}
	return false
}

// MelodyFeedback is the model's judgment of a lyric/melody pairing
type MelodyFeedback struct {
	EmotionalFit EmotionalFit `json:"emotionalFit"`
	Observations []string     `json:"observations"`
	Improvements []string     `json:"improvements"`
	Highlights   []string     `json:"highlights"`
}

// DefaultAnalysis returns an all-empty analysis. Array fields are empty
// but never nil so callers can range without checking.
func DefaultAnalysis() QualitativeAnalysis {
	return QualitativeAnalysis{
		Emotional: EmotionalInterpretation{
			SecondaryThemes: []string{},
			KeyImagery:      []string{},
		},
		Meaning: MeaningAssessment{
			EssentialElements: []string{},
			FlexibleElements:  []string{},
		},
	}
}

// DefaultFeedback returns a neutral feedback object
func DefaultFeedback() MelodyFeedback {
	return MelodyFeedback{
		EmotionalFit: FitAdequate,
		Observations: []string{},
		Improvements: []string{},
		Highlights:   []string{},
	}
}
