package llm

import "strings"

// CleanJSONBlock removes markdown code-block wrappers from JSON responses.
// Models often wrap JSON in ```json ... ``` even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Drop a language identifier on the opening fence line.
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := text[:idx]
		if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
