package buffer

import (
	"strings"
	"sync"
)

// Buffer is an ordered sequence of lines. It is never empty: after any
// mutation at least one line exists, and a virtual trailing line is kept
// so a caret can sit past the last meaningful line.
//
// The buffer does not know about undo history; callers (EditorCore) record
// actions themselves from the return values of the mutating methods.
type Buffer struct {
	mu       sync.RWMutex
	lines    [][]rune
	modified bool
}

// New creates a buffer from initial text, splitting on line feeds. A
// trailing carriage return on each line is stripped.
func New(text string) *Buffer {
	b := &Buffer{}
	b.SetLines(splitLines(text))
	return b
}

func splitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	raw := strings.Split(text, "\n")
	for i, l := range raw {
		raw[i] = strings.TrimSuffix(l, "\r")
	}
	return raw
}

// SetLines replaces the buffer content wholesale, bypassing history. Used
// by file-open and new-file; the caller is responsible for clearing
// history afterwards.
func (b *Buffer) SetLines(lines []string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(lines) == 0 {
		lines = []string{""}
	}
	b.lines = make([][]rune, len(lines))
	for i, l := range lines {
		b.lines[i] = []rune(l)
	}
	b.modified = false
	b.ensureTrailingLineLocked()
}

// ensureTrailingLineLocked appends an empty line iff the last line is
// non-empty. Caller must hold mu.
func (b *Buffer) ensureTrailingLineLocked() {
	if len(b.lines) == 0 {
		b.lines = [][]rune{{}}
		return
	}
	last := b.lines[len(b.lines)-1]
	if len(last) != 0 {
		b.lines = append(b.lines, []rune{})
	}
}

// LineCount returns the number of lines, including the virtual trailing
// line when present.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// Line returns the text of a row, or "" if out of range.
func (b *Buffer) Line(row int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// Lines returns a snapshot of every line as strings.
func (b *Buffer) Lines() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// FullText joins every line with "\n".
func (b *Buffer) FullText() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	parts := make([]string, len(b.lines))
	for i, l := range b.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

// Modified reports whether the buffer has been mutated since the last
// SetLines (open/new) or explicit SetModified(false).
func (b *Buffer) Modified() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.modified
}

// SetModified overrides the dirty flag. Used by History after undo/redo
// recomputes it from the done stack.
func (b *Buffer) SetModified(m bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.modified = m
}

// Clamp returns the nearest valid caret position to pos: rows are clamped
// to [0, len(lines)-1], columns to [0, len(line)], and row==len(lines)-1
// (the virtual line) forces col==0 only if that line is itself empty,
// which it always is by invariant.
func (b *Buffer) Clamp(pos Position) Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.clampLocked(pos)
}

func (b *Buffer) clampLocked(pos Position) Position {
	row := pos.Row
	if row < 0 {
		row = 0
	}
	if row >= len(b.lines) {
		row = len(b.lines) - 1
	}
	col := pos.Col
	if col < 0 {
		col = 0
	}
	if col > len(b.lines[row]) {
		col = len(b.lines[row])
	}
	return Position{Row: row, Col: col}
}

// Insert splits text on line boundaries and inserts it at pos. The suffix
// of pos.Row after pos.Col is carried onto the last inserted line. Returns
// the caret position at the end of the inserted text.
//
// Out-of-range rows are a no-op (caller should check LineCount first);
// out-of-range columns are clamped.
func (b *Buffer) Insert(pos Position, text string) Position {
	if text == "" {
		return b.Clamp(pos)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return b.clampLocked(pos)
	}
	pos = b.clampLocked(pos)

	insertedLines := strings.Split(text, "\n")
	for i, l := range insertedLines {
		insertedLines[i] = strings.TrimSuffix(l, "\r")
	}

	original := b.lines[pos.Row]
	prefix := original[:pos.Col]
	suffix := original[pos.Col:]

	if len(insertedLines) == 1 {
		newLine := make([]rune, 0, len(prefix)+len(insertedLines[0])+len(suffix))
		newLine = append(newLine, prefix...)
		newLine = append(newLine, []rune(insertedLines[0])...)
		newLine = append(newLine, suffix...)
		b.lines[pos.Row] = newLine
		b.modified = true
		b.ensureTrailingLineLocked()
		return Position{Row: pos.Row, Col: pos.Col + len([]rune(insertedLines[0]))}
	}

	newLines := make([][]rune, 0, len(insertedLines))
	first := make([]rune, 0, len(prefix)+len([]rune(insertedLines[0])))
	first = append(first, prefix...)
	first = append(first, []rune(insertedLines[0])...)
	newLines = append(newLines, first)
	for i := 1; i < len(insertedLines)-1; i++ {
		newLines = append(newLines, []rune(insertedLines[i]))
	}
	lastInserted := []rune(insertedLines[len(insertedLines)-1])
	last := make([]rune, 0, len(lastInserted)+len(suffix))
	last = append(last, lastInserted...)
	last = append(last, suffix...)
	newLines = append(newLines, last)

	tail := append([][]rune{}, b.lines[pos.Row+1:]...)
	b.lines = append(b.lines[:pos.Row], newLines...)
	b.lines = append(b.lines, tail...)

	b.modified = true
	b.ensureTrailingLineLocked()
	return Position{Row: pos.Row + len(insertedLines) - 1, Col: len(lastInserted)}
}

// DeleteRange removes the text between start and end, accepting
// non-normalized input. Single-line ranges edit one line; multi-line
// ranges collapse to prefix(start.Row) + suffix(end.Row), removing the
// intermediate lines. Returns the removed text.
func (b *Buffer) DeleteRange(start, end Position) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, end = normalizeLocked(start, end)
	start = b.clampLocked(start)
	end = b.clampLocked(end)
	if start.Equal(end) {
		return ""
	}

	if start.Row == end.Row {
		line := b.lines[start.Row]
		removed := string(line[start.Col:end.Col])
		newLine := make([]rune, 0, len(line)-(end.Col-start.Col))
		newLine = append(newLine, line[:start.Col]...)
		newLine = append(newLine, line[end.Col:]...)
		b.lines[start.Row] = newLine
		b.modified = true
		b.ensureTrailingLineLocked()
		return removed
	}

	var removed strings.Builder
	startLine := b.lines[start.Row]
	endLine := b.lines[end.Row]
	removed.WriteString(string(startLine[start.Col:]))
	for r := start.Row + 1; r < end.Row; r++ {
		removed.WriteByte('\n')
		removed.WriteString(string(b.lines[r]))
	}
	removed.WriteByte('\n')
	removed.WriteString(string(endLine[:end.Col]))

	merged := make([]rune, 0, start.Col+(len(endLine)-end.Col))
	merged = append(merged, startLine[:start.Col]...)
	merged = append(merged, endLine[end.Col:]...)

	tail := append([][]rune{}, b.lines[end.Row+1:]...)
	b.lines = append(b.lines[:start.Row], merged)
	b.lines = append(b.lines, tail...)

	b.modified = true
	b.ensureTrailingLineLocked()
	return removed.String()
}

func normalizeLocked(a, b Position) (Position, Position) {
	return MinMax(a, b)
}

// DeleteChar deletes the single code point at pos and returns it. ok is
// false when pos is at or past the end of its line, or its row is out of
// range (nothing deleted); joining lines is MergeLineWithNext's job.
func (b *Buffer) DeleteChar(pos Position) (r rune, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return 0, false
	}
	line := b.lines[pos.Row]
	if pos.Col < 0 || pos.Col >= len(line) {
		return 0, false
	}
	r = line[pos.Col]
	newLine := make([]rune, 0, len(line)-1)
	newLine = append(newLine, line[:pos.Col]...)
	newLine = append(newLine, line[pos.Col+1:]...)
	b.lines[pos.Row] = newLine
	b.modified = true
	b.ensureTrailingLineLocked()
	return r, true
}

// MergeLineWithNext joins row and row+1 into one line (used by the editor
// to implement backspace-at-line-start / delete-at-line-end). Returns the
// text of the line that was merged in, and ok=false if row+1 is out of
// range.
func (b *Buffer) MergeLineWithNext(row int) (merged string, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if row < 0 || row+1 >= len(b.lines) {
		return "", false
	}
	next := b.lines[row+1]
	merged = string(next)
	combined := make([]rune, 0, len(b.lines[row])+len(next))
	combined = append(combined, b.lines[row]...)
	combined = append(combined, next...)
	b.lines[row] = combined
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	b.modified = true
	b.ensureTrailingLineLocked()
	return merged, true
}

// SetLineText replaces the entire text of row. Used by the commenter and
// block-indent undo/redo, which always operate on whole lines.
func (b *Buffer) SetLineText(row int, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if row < 0 || row >= len(b.lines) {
		return
	}
	b.lines[row] = []rune(text)
	b.modified = true
	b.ensureTrailingLineLocked()
}

// SplitLine splits row at col into two lines, inserting the second as
// row+1. Used by the editor to undo DeleteNewline.
func (b *Buffer) SplitLine(row, col int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if row < 0 || row >= len(b.lines) {
		return
	}
	line := b.lines[row]
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	prefix := append([]rune{}, line[:col]...)
	suffix := append([]rune{}, line[col:]...)
	b.lines[row] = prefix
	tail := append([][]rune{}, b.lines[row+1:]...)
	b.lines = append(b.lines[:row+1], suffix)
	b.lines = append(b.lines, tail...)
	b.modified = true
	b.ensureTrailingLineLocked()
}
