package suggestion

import "strings"

// extractJSON pulls the JSON payload out of a raw model reply. Markdown
// code fences are stripped and the first balanced object is returned; a
// reply with no object comes back trimmed as-is for the decoder to reject.
func extractJSON(reply string) string {
	trimmed := strings.TrimSpace(reply)
	if trimmed == "" {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		// Drop a language tag such as "json"
		trimmed = strings.TrimLeft(trimmed, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
		trimmed = strings.TrimSpace(trimmed)
	}
	if strings.HasSuffix(trimmed, "```") {
		trimmed = strings.TrimSuffix(trimmed, "```")
		trimmed = strings.TrimSpace(trimmed)
	}
	if obj, ok := firstJSONObject(trimmed); ok {
		return obj
	}
	return trimmed
}

// firstJSONObject scans for the first balanced top-level object, tracking
// string and escape state so braces inside values do not end it early.
func firstJSONObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escape := false

	for i, r := range text {
		if start == -1 {
			if r == '{' {
				start = i
				depth = 1
				inString = false
				escape = false
			}
			continue
		}
		if inString {
			if escape {
				escape = false
				continue
			}
			if r == '\\' {
				escape = true
				continue
			}
			if r == '"' {
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return strings.TrimSpace(text[start : i+1]), true
			}
		}
	}
	return "", false
}
