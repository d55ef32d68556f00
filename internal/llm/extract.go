package llm

import "strings"

// extractJSONObject locates the first balanced JSON object in free-form model
// output. Models routinely wrap their JSON in prose or markdown code fences,
// so the scan starts at the first '{' and walks forward until the matching
// close brace, skipping braces inside string literals.
func extractJSONObject(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", ErrMalformedResponse
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
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
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}

	return "", ErrMalformedResponse
}
