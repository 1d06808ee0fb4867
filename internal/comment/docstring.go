package comment

import "strings"

// docstringExisting reports whether the range startY..endY already forms a
// well-formed docstring, and whether it is single-line.
func docstringExisting(lines []string, startY, endY int, delim string) (isDoc, singleLine bool) {
	if startY >= len(lines) {
		return false, false
	}
	first := strings.TrimSpace(lines[startY])

	if startY == endY && strings.HasPrefix(first, delim) && strings.HasSuffix(first, delim) && len(first) >= 2*len(delim) {
		return true, true
	}

	if endY < len(lines) && strings.TrimSpace(lines[startY]) == delim && strings.TrimSpace(lines[endY]) == delim {
		return true, false
	}
	return false, false
}

// addSingleLineDocstring wraps one line's trimmed content in delim at
// indent, returning the replacement line; ok is false when the content
// already contains delim.
func addSingleLineDocstring(line, delim, indent string) (string, bool) {
	content := strings.TrimSpace(line)
	if strings.Contains(content, delim) {
		return "", false
	}
	return indent + delim + content + delim, true
}

// removeSingleLineDocstring unwraps a single-line docstring.
func removeSingleLineDocstring(line, delim, indent string) string {
	content := strings.TrimSpace(line)
	if strings.HasPrefix(content, delim) && strings.HasSuffix(content, delim) && len(content) >= 2*len(delim) {
		content = content[len(delim) : len(content)-len(delim)]
	}
	return indent + content
}
