package analysis

import (
	"fmt"
	"strings"
)

// Analyze runs the full quantitative pass over a poem
func Analyze(text string) *PoemAnalysis {
	result := &PoemAnalysis{}

	lineNum := 0
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		stanza := Stanza{}
		for _, raw := range strings.Split(block, "\n") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			lineNum++
			stanza.Lines = append(stanza.Lines, analyzeLine(raw, lineNum))
		}
		if len(stanza.Lines) > 0 {
			result.Stanzas = append(result.Stanzas, stanza)
		}
	}

	detectStanzaProblems(result)

	for _, s := range result.Stanzas {
		for _, l := range s.Lines {
			result.Problems = append(result.Problems, l.Problems...)
		}
	}

	result.Emotion = estimateEmotion(text)

	return result
}

func analyzeLine(text string, lineNum int) Line {
	words := SplitWords(text)

	line := Line{
		Text:  text,
		Words: words,
	}

	var pattern strings.Builder
	for _, w := range words {
		syl := CountSyllables(w)
		line.Syllables += syl
		pattern.WriteString(stressOf(w, syl))
	}
	line.StressPattern = pattern.String()

	line.Singability = scoreSingability(words)
	line.Problems = detectLineProblems(line, lineNum)

	return line
}

// SplitWords splits a line on whitespace and strips surrounding punctuation
func SplitWords(text string) []string {
	var words []string
	for _, f := range strings.Fields(text) {
		w := StripPunctuation(f)
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// StripPunctuation removes leading/trailing non-letter characters
func StripPunctuation(word string) string {
	return strings.TrimFunc(word, func(r rune) bool {
		return !isLetter(r) && r != '\''
	})
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// CountSyllables estimates syllables by counting vowel groups
func CountSyllables(word string) int {
	w := strings.ToLower(StripPunctuation(word))
	if w == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Silent trailing e, but not a lone "e" or words like "the"
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}

	if count == 0 {
		count = 1
	}
	return count
}

// stressOf produces a crude per-word stress contribution. Monosyllabic
// function words are unstressed, content words stressed; longer words
// get initial stress then alternation.
func stressOf(word string, syllables int) string {
	if syllables <= 0 {
		return ""
	}
	if syllables == 1 {
		if functionWords[strings.ToLower(word)] {
			return "0"
		}
		return "1"
	}

	var b strings.Builder
	for i := 0; i < syllables; i++ {
		if i%2 == 0 {
			b.WriteString("1")
		} else {
			b.WriteString("0")
		}
	}
	return b.String()
}

var functionWords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "to": true, "in": true,
	"on": true, "at": true, "by": true, "for": true, "and": true, "or": true,
	"but": true, "as": true, "if": true, "is": true, "are": true, "was": true,
	"be": true, "it": true, "its": true, "my": true, "your": true, "his": true,
	"her": true, "our": true, "that": true, "this": true, "with": true,
	"from": true, "so": true, "than": true, "then": true,
}

// hardOnsets are consonant clusters that resist sustained singing
var hardOnsets = []string{"str", "spr", "scr", "spl", "thr", "shr", "squ", "ngth", "xth", "tch", "dge"}

// scoreSingability rates a word list for ease of singing, 0..1
func scoreSingability(words []string) float64 {
	if len(words) == 0 {
		return 0
	}

	score := 1.0
	for _, w := range words {
		lw := strings.ToLower(w)
		for _, c := range hardOnsets {
			if strings.Contains(lw, c) {
				score -= 0.12
			}
		}
		if len(lw) > 9 {
			score -= 0.05
		}
		// Open vowels help sustain notes
		if strings.ContainsAny(lw, "ao") {
			score += 0.01
		}
	}

	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func detectLineProblems(line Line, lineNum int) []ProblemReport {
	var problems []ProblemReport

	for pos, w := range line.Words {
		lw := strings.ToLower(w)
		for _, c := range hardOnsets {
			if strings.Contains(lw, c) {
				sev := SeverityMedium
				if CountSyllables(w) == 1 {
					// A one-syllable cluster carries a whole note
					sev = SeverityHigh
				}
				problems = append(problems, ProblemReport{
					Line:        lineNum,
					Position:    pos,
					Type:        ProblemSingability,
					Severity:    sev,
					Description: fmt.Sprintf("%q contains the hard cluster %q", w, c),
				})
				break
			}
		}

		if CountSyllables(w) >= 4 {
			problems = append(problems, ProblemReport{
				Line:        lineNum,
				Position:    pos,
				Type:        ProblemStress,
				Severity:    SeverityMedium,
				Description: fmt.Sprintf("%q has %d syllables and an unstable stress contour", w, CountSyllables(w)),
			})
		}
	}

	return problems
}

// detectStanzaProblems flags syllable variance and rhyme breaks, which
// only make sense relative to neighboring lines
func detectStanzaProblems(p *PoemAnalysis) {
	lineNum := 0
	for si := range p.Stanzas {
		stanza := &p.Stanzas[si]
		if len(stanza.Lines) == 0 {
			continue
		}

		total := 0
		for _, l := range stanza.Lines {
			total += l.Syllables
		}
		avg := float64(total) / float64(len(stanza.Lines))

		for li := range stanza.Lines {
			lineNum++
			line := &stanza.Lines[li]

			diff := float64(line.Syllables) - avg
			if diff < 0 {
				diff = -diff
			}
			if diff >= 3 && len(line.Words) > 0 {
				sev := SeverityMedium
				if diff >= 5 {
					sev = SeverityHigh
				}
				line.Problems = append(line.Problems, ProblemReport{
					Line:        lineNum,
					Position:    len(line.Words) - 1,
					Type:        ProblemSyllable,
					Severity:    sev,
					Description: fmt.Sprintf("line has %d syllables against a stanza average of %.1f", line.Syllables, avg),
				})
			}

			// Couplet rhyme check: even lines should echo the line above
			if li%2 == 1 && len(line.Words) > 0 && len(stanza.Lines[li-1].Words) > 0 {
				prev := stanza.Lines[li-1]
				if !rhymes(lastWord(prev), lastWord(*line)) {
					line.Problems = append(line.Problems, ProblemReport{
						Line:        lineNum,
						Position:    len(line.Words) - 1,
						Type:        ProblemRhyme,
						Severity:    SeverityLow,
						Description: fmt.Sprintf("%q does not rhyme with %q above", lastWord(*line), lastWord(prev)),
					})
				}
			}
		}
	}
}

func lastWord(l Line) string {
	if len(l.Words) == 0 {
		return ""
	}
	return l.Words[len(l.Words)-1]
}

// rhymes is a loose check on shared endings
func rhymes(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}

	tail := 3
	if len(a) < tail || len(b) < tail {
		tail = 2
	}
	if len(a) < tail || len(b) < tail {
		return false
	}
	return a[len(a)-tail:] == b[len(b)-tail:]
}
