package comment

import "strings"

// blockIsCommented reports whether a line range is already wrapped in block
// comment delimiters, per spec §4.5: the first non-space token of the
// start line is the open delimiter and the last non-space token of the
// end line is the close delimiter.
func blockIsCommented(first, last, open, close string) bool {
	firstTrim := strings.TrimLeft(first, " \t")
	lastTrim := strings.TrimRight(last, " \t")
	return strings.HasPrefix(firstTrim, open) && strings.HasSuffix(lastTrim, close)
}

// addBlockComment wraps startLine/endLine with open/close, preserving the
// start line's indentation. When startLine and endLine are the same line,
// both delimiters land on it.
func addBlockComment(startLine, endLine, open, close string) (string, string) {
	sameLine := startLine == endLine
	firstTrim := strings.TrimLeft(startLine, " \t")
	indent := startLine[:len(startLine)-len(firstTrim)]
	newStart := indent + open + " " + firstTrim
	if sameLine {
		newStart = newStart + " " + close
		return newStart, newStart
	}
	newEnd := endLine + " " + close
	return newStart, newEnd
}

// removeBlockComment unwraps one occurrence of open from the start of
// startLine and one occurrence of close from the end of endLine, each
// together with one optional adjoining space, mirroring the single space
// addBlockComment inserts. When startLine and endLine are the same line,
// both removals apply to it in sequence.
func removeBlockComment(startLine, endLine, open, close string) (string, string) {
	sameLine := startLine == endLine

	newStart := strings.Replace(startLine, open, "", 1)
	newStart = strings.TrimPrefix(newStart, " ")

	source := endLine
	if sameLine {
		source = newStart
	}
	newEnd := source
	if idx := strings.LastIndex(source, close); idx != -1 {
		newEnd = source[:idx]
		newEnd = strings.TrimSuffix(newEnd, " ")
	}
	if sameLine {
		newStart = newEnd
	}
	return newStart, newEnd
}
