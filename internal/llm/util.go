package llm

import "strings"

// ExtractJSONObject returns the span from the first '{' to the last '}' in
// text. Models often wrap JSON in prose or markdown fences even when told
// not to. ok is false when no such span exists.
func ExtractJSONObject(text string) (object string, ok bool) {
	start := strings.Index(text, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return "", false
	}
	return text[start : end+1], true
}
