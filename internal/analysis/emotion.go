package analysis

import (
	"sort"
	"strings"
)

var positiveWords = map[string]bool{
	"love": true, "light": true, "joy": true, "bright": true, "warm": true,
	"hope": true, "gold": true, "sweet": true, "bloom": true, "shine": true,
	"dawn": true, "grace": true, "home": true, "dream": true, "free": true,
}

var negativeWords = map[string]bool{
	"dark": true, "cold": true, "lost": true, "grief": true, "pain": true,
	"fear": true, "break": true, "alone": true, "shadow": true, "fall": true,
	"rain": true, "sorrow": true, "ash": true, "grave": true, "fade": true,
}

var highArousalWords = map[string]bool{
	"fire": true, "storm": true, "run": true, "scream": true, "burn": true,
	"fight": true, "wild": true, "thunder": true, "race": true, "blaze": true,
	"rage": true, "rise": true,
}

// estimateEmotion scans the poem against small curated lexicons. It is a
// coarse signal that seeds the qualitative prompt, not a judgment.
func estimateEmotion(text string) EmotionEstimate {
	est := EmotionEstimate{}

	seen := map[string]bool{}
	pos, neg, arousal, total := 0, 0, 0, 0

	for _, w := range SplitWords(strings.ToLower(text)) {
		total++
		hit := false
		if positiveWords[w] {
			pos++
			hit = true
		}
		if negativeWords[w] {
			neg++
			hit = true
		}
		if highArousalWords[w] {
			arousal++
			hit = true
		}
		if hit && !seen[w] {
			seen[w] = true
			est.Keywords = append(est.Keywords, w)
		}
	}

	if total > 0 {
		est.Sentiment = float64(pos-neg) / float64(total) * 4
		est.Arousal = float64(arousal) / float64(total) * 4
	}
	est.Sentiment = clamp(est.Sentiment, -1, 1)
	est.Arousal = clamp(est.Arousal, 0, 1)

	sort.Strings(est.Keywords)
	est.Moods = moodsFor(est)

	return est
}

func moodsFor(e EmotionEstimate) []string {
	var moods []string
	switch {
	case e.Sentiment > 0.2:
		moods = append(moods, "uplifting")
	case e.Sentiment < -0.2:
		moods = append(moods, "melancholic")
	}
	if e.Arousal > 0.3 {
		moods = append(moods, "energetic")
	} else if e.Arousal < 0.1 && len(moods) > 0 {
		moods = append(moods, "quiet")
	}
	return moods
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
