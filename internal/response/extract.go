package response

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ExtractJSON locates the first JSON-shaped substring inside arbitrary
// surrounding prose. It tries, in order: a code fence tagged as json, any
// code fence whose content starts with { or [, the whole trimmed input,
// the first balanced object, and finally the first balanced array.
// Objects are tried before arrays because model replies are more often a
// single object with arrays nested inside it.
func ExtractJSON(text string) (string, bool) {
	if content, ok := fencedBlock(text, true); ok {
		return content, true
	}
	if content, ok := fencedBlock(text, false); ok {
		return content, true
	}

	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return trimmed, true
	}

	if span, ok := balancedSpan(text, '{', '}'); ok {
		return span, true
	}
	if span, ok := balancedSpan(text, '[', ']'); ok {
		return span, true
	}

	return "", false
}

// fencedBlock returns the first fenced code block. With jsonTagged it only
// accepts fences opened with a json language tag; otherwise it accepts any
// fence whose content starts with { or [.
func fencedBlock(text string, jsonTagged bool) (string, bool) {
	lines := strings.Split(text, "\n")
	inBlock := false
	accept := false
	var body []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			if !inBlock {
				inBlock = true
				tag := strings.ToLower(strings.TrimPrefix(trimmed, "```"))
				accept = !jsonTagged || tag == "json"
				body = body[:0]
				continue
			}

			content := strings.TrimSpace(strings.Join(body, "\n"))
			if accept && content != "" {
				if jsonTagged || strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[") {
					return content, true
				}
			}
			inBlock = false
			continue
		}
		if inBlock {
			body = append(body, line)
		}
	}

	return "", false
}

// balancedSpan finds the first span opened by openCh and closed by its
// matching close, tracking string literals so braces inside quoted text
// do not affect the depth count.
func balancedSpan(text string, openCh, closeCh byte) (string, bool) {
	start := strings.IndexByte(text, openCh)
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case openCh:
			depth++
		case closeCh:
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	unquotedKeyRe   = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
)

// SafeJSONParse attempts a strict parse, and on failure retries once after
// repairing trailing commas and unquoted object keys. It never panics; the
// second return value reports whether anything usable came out.
func SafeJSONParse(text string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err == nil {
		return v, true
	}

	repaired := trailingCommaRe.ReplaceAllString(text, "$1")
	repaired = unquotedKeyRe.ReplaceAllString(repaired, `$1"$2":`)

	if err := json.Unmarshal([]byte(repaired), &v); err == nil {
		return v, true
	}
	return nil, false
}
