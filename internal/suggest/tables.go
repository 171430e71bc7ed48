package suggest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"versesmith/internal/analysis"
)

// Tables holds the curated substitution lists keyed by original word.
// They are deliberately small and hand-picked; treat them as replaceable
// configuration rather than a complete lexicon.
type Tables struct {
	// Singability maps cluster-heavy words to smoother alternatives
	Singability map[string][]string `yaml:"singability"`
	// Stress maps words with unstable stress contours to simpler ones
	Stress map[string][]string `yaml:"stress"`
	// Rhyme maps common line-final words to rhyming alternatives
	Rhyme map[string][]string `yaml:"rhyme"`
}

// DefaultTables returns the built-in substitution lists
func DefaultTables() *Tables {
	return &Tables{
		Singability: map[string][]string{
			"strength":   {"power", "might", "force"},
			"strengths":  {"powers", "gifts"},
			"stretched":  {"reaching", "drawn"},
			"breathless": {"gasping", "winded"},
			"scratched":  {"marked", "scarred"},
			"glimpsed":   {"saw", "spied"},
			"twelfth":    {"last", "final"},
			"squeezed":   {"pressed", "held"},
			"throughout": {"across", "all through"},
			"sixths":     {"parts", "shares"},
			"crisp":      {"cool", "clear"},
			"depths":     {"deeps", "dark"},
		},
		Stress: map[string][]string{
			"beautiful":    {"lovely", "radiant"},
			"memorable":    {"lasting", "vivid"},
			"incredible":   {"stunning", "wondrous"},
			"desperately":  {"wildly", "blindly"},
			"mysterious":   {"hidden", "secret"},
			"momentarily":  {"briefly", "for now"},
			"celebration":  {"revelry", "rejoicing"},
			"unbelievable": {"astounding", "beyond words"},
			"solitary":     {"lonely", "single"},
			"luminous":     {"glowing", "shining"},
		},
		Rhyme: map[string][]string{
			"night": {"light", "sight", "flight", "bright"},
			"day":   {"way", "stay", "gray", "sway"},
			"love":  {"above", "dove", "thereof"},
			"heart": {"start", "part", "apart"},
			"time":  {"rhyme", "climb", "prime"},
			"rain":  {"pain", "chain", "again"},
			"fire":  {"desire", "higher", "choir"},
			"alone": {"stone", "unknown", "home"},
			"sky":   {"high", "fly", "goodbye"},
			"sea":   {"free", "be", "memory"},
		},
	}
}

// LoadTables reads substitution tables from a YAML file. Entries in the
// file override the built-in entry for the same word; words the file does
// not mention keep their defaults.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var loaded Tables
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse substitution tables: %w", err)
	}

	t := DefaultTables()
	for k, v := range loaded.Singability {
		t.Singability[strings.ToLower(k)] = v
	}
	for k, v := range loaded.Stress {
		t.Stress[strings.ToLower(k)] = v
	}
	for k, v := range loaded.Rhyme {
		t.Rhyme[strings.ToLower(k)] = v
	}
	return t, nil
}

// forType returns the table that covers a given problem type
func (t *Tables) forType(pt analysis.ProblemType) map[string][]string {
	switch pt {
	case analysis.ProblemSingability:
		return t.Singability
	case analysis.ProblemStress:
		return t.Stress
	case analysis.ProblemRhyme:
		return t.Rhyme
	case analysis.ProblemSyllable:
		// Syllable problems are usually stress problems in disguise
		return t.Stress
	default:
		return nil
	}
}

// substituteFor picks an alternative for word from the table matching the
// problem type. Rhyme lookups avoid alternatives already present elsewhere
// in the line when another choice exists.
func (t *Tables) substituteFor(pt analysis.ProblemType, word string, lineWords []string) (string, bool) {
	table := t.forType(pt)
	if table == nil {
		return "", false
	}

	alts, ok := table[strings.ToLower(word)]
	if !ok || len(alts) == 0 {
		return "", false
	}

	if pt != analysis.ProblemRhyme {
		return alts[0], true
	}

	inLine := make(map[string]bool)
	for _, w := range lineWords {
		inLine[strings.ToLower(w)] = true
	}
	for _, alt := range alts {
		if !inLine[strings.ToLower(alt)] {
			return alt, true
		}
	}
	return alts[0], true
}

// relatedWords reports whether two words appear together inside a single
// table entry, in either direction
func (t *Tables) relatedWords(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	for _, table := range []map[string][]string{t.Singability, t.Stress, t.Rhyme} {
		if listsContain(table[a], b) || listsContain(table[b], a) {
			return true
		}
	}
	return false
}

func listsContain(alts []string, word string) bool {
	for _, alt := range alts {
		if strings.ToLower(alt) == word {
			return true
		}
	}
	return false
}
