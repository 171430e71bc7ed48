package prompt

import (
	"fmt"
	"strings"
)

// EstimateTokenCount approximates tokens as ceil(characters / 4)
func EstimateTokenCount(text string) int {
	return (len(text) + 3) / 4
}

const truncationMarker = "[Content truncated to fit the token budget]"

// TruncationResult reports whether and how a prompt was shortened
type TruncationResult struct {
	Text         string
	WasTruncated bool
	Message      string
}

// TruncatePromptIfNeeded shortens text when its token estimate exceeds
// maxTokens. The cut lands on the latest paragraph break at or before the
// computed cutoff, falling back to the nearest line break, then to the
// raw cutoff when neither exists within half the target length. A marker
// is appended so the model knows content is missing.
func TruncatePromptIfNeeded(text string, maxTokens int) TruncationResult {
	estimated := EstimateTokenCount(text)
	if maxTokens <= 0 || estimated <= maxTokens {
		return TruncationResult{Text: text}
	}

	// 0.9 leaves margin for the estimate being optimistic
	ratio := float64(maxTokens) / float64(estimated) * 0.9
	cutoff := int(float64(len(text)) * ratio)
	if cutoff < 1 {
		cutoff = 1
	}
	if cutoff > len(text) {
		cutoff = len(text)
	}

	cut := cutoff
	if idx := strings.LastIndex(text[:cutoff], "\n\n"); idx >= cutoff/2 {
		cut = idx
	} else if idx := strings.LastIndex(text[:cutoff], "\n"); idx >= cutoff/2 {
		cut = idx
	}

	truncated := strings.TrimRight(text[:cut], "\n") + "\n\n" + truncationMarker

	return TruncationResult{
		Text:         truncated,
		WasTruncated: true,
		Message: fmt.Sprintf("Prompt truncated from ~%d to ~%d tokens to fit a budget of %d",
			estimated, EstimateTokenCount(truncated), maxTokens),
	}
}
