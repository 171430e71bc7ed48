package analysis

// Severity ranks how much a problem hurts singability
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Rank returns a sortable weight, higher is worse
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether s is as severe as min
func (s Severity) AtLeast(min Severity) bool {
	return s.Rank() >= min.Rank()
}

// ProblemType classifies what the analyzer flagged
type ProblemType string

const (
	ProblemSingability ProblemType = "singability"
	ProblemStress      ProblemType = "stress"
	ProblemSyllable    ProblemType = "syllable"
	ProblemRhyme       ProblemType = "rhyme"
)

// ProblemReport is a located defect in a poem line
type ProblemReport struct {
	Line         int // 1-indexed line number across the poem
	Position     int // 0-indexed word offset within the line
	Type         ProblemType
	Severity     Severity
	Description  string
	SuggestedFix string // optional, may be empty
}

// Line holds the per-line quantitative results
type Line struct {
	Text          string
	Words         []string
	StressPattern string // "1" stressed, "0" unstressed, one digit per syllable
	Syllables     int
	Singability   float64 // 0..1, higher sings easier
	Problems      []ProblemReport
}

// Stanza groups consecutive lines separated by blank lines
type Stanza struct {
	Lines []Line
}

// EmotionEstimate is a rough lexicon-based read of the poem's feel
type EmotionEstimate struct {
	Sentiment float64  // -1..1
	Arousal   float64  // 0..1
	Keywords  []string // emotion-bearing words found in the text
	Moods     []string
}

// PoemAnalysis is the full quantitative result for one poem
type PoemAnalysis struct {
	Stanzas  []Stanza
	Problems []ProblemReport // flat view across all lines
	Emotion  EmotionEstimate
}

// Melody describes the target melody the lyrics must fit
type Melody struct {
	Tempo         int    // beats per minute
	TimeSignature string // e.g. "4/4"
	LinePatterns  []string
}

// LineCount returns the number of lines across all stanzas
func (p *PoemAnalysis) LineCount() int {
	n := 0
	for _, s := range p.Stanzas {
		n += len(s.Lines)
	}
	return n
}

// LineAt returns the line with the given 1-indexed number, or nil
func (p *PoemAnalysis) LineAt(num int) *Line {
	i := 1
	for si := range p.Stanzas {
		for li := range p.Stanzas[si].Lines {
			if i == num {
				return &p.Stanzas[si].Lines[li]
			}
			i++
		}
	}
	return nil
}

// AverageSingability returns the mean per-line score, 0 when empty
func (p *PoemAnalysis) AverageSingability() float64 {
	total := 0.0
	count := 0
	for _, s := range p.Stanzas {
		for _, l := range s.Lines {
			total += l.Singability
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
