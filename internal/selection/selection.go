// Package selection implements the caret/anchor selection state machine
// (Idle/Active) and its normalization helpers.
package selection

import "github.com/kodexeditor/kodex/internal/buffer"

// Model tracks an anchor/caret selection. The zero value is Idle with no
// selection, matching the teacher's zero-value-friendly widget state.
type Model struct {
	anchor buffer.Position
	caret  buffer.Position
	active bool
}

// Active reports whether a selection is currently extended.
func (m *Model) Active() bool {
	return m.active
}

// Anchor returns the fixed endpoint of the selection.
func (m *Model) Anchor() buffer.Position { return m.anchor }

// Caret returns the moving endpoint of the selection.
func (m *Model) Caret() buffer.Position { return m.caret }

// Cancel collapses the selection to Idle without moving the caret.
func (m *Model) Cancel() {
	m.active = false
}

// MoveTo performs a plain (non-extending) navigation: it cancels any
// active selection before moving the caret to pos.
func (m *Model) MoveTo(pos buffer.Position) {
	m.active = false
	m.caret = pos
	m.anchor = pos
}

// ExtendTo performs an extend-selection navigation: if the selection was
// Idle, it anchors at the previous caret before moving.
func (m *Model) ExtendTo(pos buffer.Position) {
	if !m.active {
		m.anchor = m.caret
		m.active = true
	}
	m.caret = pos
}

// SelectAll anchors (0,0) to the end of the buffer and activates the
// selection. On an empty buffer (a single empty line) this yields
// ((0,0),(0,0)) per the boundary behavior in spec §8.
func (m *Model) SelectAll(b *buffer.Buffer) {
	end := buffer.Position{Row: b.LineCount() - 1, Col: len([]rune(b.Line(b.LineCount() - 1)))}
	m.anchor = buffer.Position{Row: 0, Col: 0}
	m.caret = end
	// Active even when degenerate (empty buffer) so Range() always
	// reflects the just-performed select-all rather than falling back to
	// "selection is idle, range is the caret alone".
	m.active = true
}

// Range returns the normalized (start, end) of the current selection. If
// the selection is Idle, start == end == the caret.
func (m *Model) Range() (start, end buffer.Position) {
	if !m.active {
		return m.caret, m.caret
	}
	return buffer.MinMax(m.anchor, m.caret)
}

// IsEmpty reports whether the normalized selection spans zero code points.
func (m *Model) IsEmpty() bool {
	start, end := m.Range()
	return start.Equal(end)
}

// Text extracts the selected text from b. A selection with start == end
// yields the empty string.
func (m *Model) Text(b *buffer.Buffer) string {
	start, end := m.Range()
	if start.Equal(end) {
		return ""
	}
	if start.Row == end.Row {
		line := []rune(b.Line(start.Row))
		return string(line[start.Col:end.Col])
	}
	var out []rune
	out = append(out, []rune(b.Line(start.Row))[start.Col:]...)
	for r := start.Row + 1; r < end.Row; r++ {
		out = append(out, '\n')
		out = append(out, []rune(b.Line(r))...)
	}
	out = append(out, '\n')
	out = append(out, []rune(b.Line(end.Row))[:end.Col]...)
	return string(out)
}

// Restore sets the selection directly, e.g. when undo restores a prior
// selection_before snapshot.
func (m *Model) Restore(anchor, caret buffer.Position, active bool) {
	m.anchor = anchor
	m.caret = caret
	m.active = active
}

// Snapshot captures the current selection state for later Restore.
func (m *Model) Snapshot() (anchor, caret buffer.Position, active bool) {
	return m.anchor, m.caret, m.active
}
