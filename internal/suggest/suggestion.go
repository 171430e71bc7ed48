package suggest

// MeaningPreservation is a three-valued judgment of whether a word swap
// keeps the original semantic content
type MeaningPreservation string

const (
	MeaningYes     MeaningPreservation = "yes"
	MeaningPartial MeaningPreservation = "partial"
	MeaningNo      MeaningPreservation = "no"
)

// Valid reports whether the value is one of the three allowed judgments
func (m MeaningPreservation) Valid() bool {
	switch m {
	case MeaningYes, MeaningPartial, MeaningNo:
		return true
	}
	return false
}

// Suggestion proposes replacing one word in one line
type Suggestion struct {
	OriginalWord     string              `json:"originalWord"`
	SuggestedWord    string              `json:"suggestedWord"`
	LineNumber       int                 `json:"lineNumber"` // 1-indexed
	Position         int                 `json:"position"`   // 0-indexed word offset within the line
	Reason           string              `json:"reason"`
	PreservesMeaning MeaningPreservation `json:"preservesMeaning"`
}

// Key identifies a suggestion for deduplication purposes
type Key struct {
	LineNumber   int
	Position     int
	OriginalWord string
}

// KeyOf returns the uniqueness key for a suggestion
func KeyOf(s Suggestion) Key {
	return Key{LineNumber: s.LineNumber, Position: s.Position, OriginalWord: s.OriginalWord}
}

// Dedupe drops suggestions that repeat an earlier (line, position, word)
// key, keeping the first occurrence. The returned dropped list preserves
// encounter order.
func Dedupe(suggestions []Suggestion) (kept, dropped []Suggestion) {
	seen := make(map[Key]bool)
	for _, s := range suggestions {
		k := KeyOf(s)
		if seen[k] {
			dropped = append(dropped, s)
			continue
		}
		seen[k] = true
		kept = append(kept, s)
	}
	return kept, dropped
}
