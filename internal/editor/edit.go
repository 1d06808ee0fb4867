package editor

import (
	"strings"

	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/history"
	"github.com/kodexeditor/kodex/internal/search"
)

// deleteActiveSelection removes the current selection as a DeleteSelection
// action and returns the position editing should continue from. Callers
// must already be inside a compound when this is paired with a following
// insert, per the selection-replace rule in spec §4.2.
func (e *EditorCore) deleteActiveSelection() buffer.Position {
	start, end := e.sel.Range()
	removed := e.buf.DeleteRange(start, end)
	e.sel.Restore(start, start, false)
	e.hist.Add(history.DeleteSelection{Segments: removed, Start: start, End: end})
	return start
}

// InsertText inserts text at the caret. If a selection is active, the
// delete-then-insert pair is recorded as one compound action, per spec
// §4.2's selection-replace rule.
func (e *EditorCore) InsertText(text string) {
	if text == "" {
		return
	}
	if e.sel.Active() {
		e.hist.BeginCompound()
		pos := e.deleteActiveSelection()
		e.insertAt(pos, text)
		e.hist.EndCompound()
		return
	}
	e.insertAt(e.caret(), text)
}

func (e *EditorCore) insertAt(pos buffer.Position, text string) {
	caret := e.buf.Insert(pos, text)
	e.sel.Restore(caret, caret, false)
	e.hist.Add(history.Insert{Text: text, Pos: pos})
}

// InsertNewline inserts a line break, honoring the selection-replace rule
// the same way InsertText does.
func (e *EditorCore) InsertNewline() {
	e.InsertText("\n")
}

// Backspace deletes the character before the caret, or merges the
// current line into the previous one at column 0, or deletes the active
// selection instead if one is active.
func (e *EditorCore) Backspace() bool {
	if e.sel.Active() {
		e.hist.BeginCompound()
		e.deleteActiveSelection()
		e.hist.EndCompound()
		return true
	}
	pos := e.caret()
	if pos.Col > 0 {
		target := buffer.Position{Row: pos.Row, Col: pos.Col - 1}
		r, ok := e.buf.DeleteChar(target)
		if !ok {
			return false
		}
		e.sel.Restore(target, target, false)
		e.hist.Add(history.DeleteChar{Char: r, Pos: target})
		return true
	}
	if pos.Row == 0 {
		return false
	}
	prevRow := pos.Row - 1
	prevLen := len([]rune(e.buf.Line(prevRow)))
	merged, ok := e.buf.MergeLineWithNext(prevRow)
	if !ok {
		return false
	}
	target := buffer.Position{Row: prevRow, Col: prevLen}
	e.sel.Restore(target, target, false)
	e.hist.Add(history.DeleteNewline{MergedLine: merged, Pos: target})
	return true
}

// DeleteForward deletes the character at the caret, or merges the next
// line upward at end-of-line, or deletes the active selection instead.
func (e *EditorCore) DeleteForward() bool {
	if e.sel.Active() {
		e.hist.BeginCompound()
		e.deleteActiveSelection()
		e.hist.EndCompound()
		return true
	}
	pos := e.caret()
	line := e.buf.Line(pos.Row)
	if pos.Col < len([]rune(line)) {
		r, ok := e.buf.DeleteChar(pos)
		if !ok {
			return false
		}
		e.sel.Restore(pos, pos, false)
		e.hist.Add(history.DeleteChar{Char: r, Pos: pos})
		return true
	}
	if pos.Row >= e.buf.LineCount()-1 {
		return false
	}
	merged, ok := e.buf.MergeLineWithNext(pos.Row)
	if !ok {
		return false
	}
	e.sel.Restore(pos, pos, false)
	e.hist.Add(history.DeleteNewline{MergedLine: merged, Pos: pos})
	return true
}

// SelectAll extends the selection over the entire buffer.
func (e *EditorCore) SelectAll() {
	e.sel.SelectAll(e.buf)
}

// selectionLineRange returns the inclusive row range the current
// selection (or bare caret) spans, for the block actions (indent,
// comment) that operate on whole lines.
func (e *EditorCore) selectionLineRange() (startY, endY int) {
	start, end := e.sel.Range()
	startY, endY = start.Row, end.Row
	if endY > startY && end.Col == 0 {
		endY--
	}
	return startY, endY
}

func (e *EditorCore) indentUnit() string {
	if e.cfg.Editor.UseSpaces {
		return strings.Repeat(" ", e.cfg.Editor.TabSize)
	}
	return "\t"
}

// leadingWhitespace returns line's run of leading spaces/tabs.
func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// Indent applies Tab: inserted text at the caret when there's no
// selection, or a block indent of every selected line otherwise. At
// column 0 with no selection and a previous indented line, it copies
// that line's leading whitespace instead of inserting indentUnit().
func (e *EditorCore) Indent() {
	if !e.sel.Active() {
		caret := e.caret()
		if caret.Col == 0 && caret.Row > 0 {
			if leading := leadingWhitespace(e.buf.Line(caret.Row - 1)); leading != "" {
				e.InsertText(leading)
				return
			}
		}
		e.InsertText(e.indentUnit())
		return
	}
	startY, endY := e.selectionLineRange()
	unit := e.indentUnit()
	selBefore, hasSel, cursorBefore := snapshotTargetSelection(e)

	var changes []history.LineChange
	for row := startY; row <= endY; row++ {
		orig := e.buf.Line(row)
		next := unit + orig
		e.buf.SetLineText(row, next)
		changes = append(changes, history.LineChange{LineIndex: row, Original: orig, New: next})
	}
	delta := len([]rune(unit))
	start, end := e.sel.Range()
	start.Col += delta
	end.Col += delta
	e.sel.Restore(start, end, true)
	selAfter := history.SelectionSnapshot{Anchor: start, Caret: end, Active: true}
	e.hist.Add(history.NewBlockIndent(changes, selBefore, hasSel, cursorBefore, selAfter))
}

// Unindent applies Shift+Tab: removes up to one indent unit's worth of
// leading whitespace from every selected line (or the caret's line).
func (e *EditorCore) Unindent() {
	startY, endY := e.selectionLineRange()
	tabSize := e.cfg.Editor.TabSize
	selBefore, hasSel, cursorBefore := snapshotTargetSelection(e)

	var changes []history.LineChange
	removedFirst := 0
	any := false
	for row := startY; row <= endY; row++ {
		orig := e.buf.Line(row)
		next, removed := unindentOnce(orig, tabSize)
		if removed == 0 {
			continue
		}
		any = true
		if row == startY {
			removedFirst = removed
		}
		e.buf.SetLineText(row, next)
		changes = append(changes, history.LineChange{LineIndex: row, Original: orig, New: next})
	}
	if !any {
		return
	}
	start, end := e.sel.Range()
	start.Col -= removedFirst
	if start.Col < 0 {
		start.Col = 0
	}
	end.Col -= removedFirst
	if end.Col < 0 {
		end.Col = 0
	}
	active := e.sel.Active()
	e.sel.Restore(start, end, active)
	selAfter := history.SelectionSnapshot{Anchor: start, Caret: end, Active: active}
	e.hist.Add(history.NewBlockUnindent(changes, selBefore, hasSel, cursorBefore, selAfter))
}

// unindentOnce strips one level of leading indentation: a leading tab, or
// up to tabSize leading spaces, whichever the line starts with.
func unindentOnce(line string, tabSize int) (result string, removed int) {
	runes := []rune(line)
	if len(runes) > 0 && runes[0] == '\t' {
		return string(runes[1:]), 1
	}
	n := 0
	for n < len(runes) && n < tabSize && runes[n] == ' ' {
		n++
	}
	if n == 0 {
		return line, 0
	}
	return string(runes[n:]), n
}

func snapshotTargetSelection(e *EditorCore) (history.SelectionSnapshot, bool, buffer.Position) {
	anchor, caret, active := e.sel.Snapshot()
	return history.SelectionSnapshot{Anchor: anchor, Caret: caret, Active: active}, active, caret
}

// ToggleComment delegates to the comment engine over the current
// selection's line range, returning the status message it produced.
func (e *EditorCore) ToggleComment() string {
	startY, endY := e.selectionLineRange()
	return e.comments.Toggle(e, e.hist, e.language(), startY, endY)
}

// Copy places the selected text on the clipboard without modifying the
// buffer. A no-op selection copies nothing.
func (e *EditorCore) Copy() error {
	if e.sel.IsEmpty() {
		return nil
	}
	return e.clip.Set(e.sel.Text(e.buf))
}

// Cut copies the selection then deletes it as a single history entry.
func (e *EditorCore) Cut() error {
	if e.sel.IsEmpty() {
		return nil
	}
	text := e.sel.Text(e.buf)
	if err := e.clip.Set(text); err != nil {
		return err
	}
	e.deleteActiveSelection()
	return nil
}

// Paste inserts the clipboard's contents at the caret, honoring the
// selection-replace rule.
func (e *EditorCore) Paste() {
	e.InsertText(e.clip.Get())
}

// Find runs a fresh search and reports whether any match was found.
func (e *EditorCore) Find(query string) bool {
	return len(e.srch.Find(e.buf, query)) > 0
}

// FindNext advances to the next match, moving the caret and scroll_top to
// keep it visible, per spec §4.6.
func (e *EditorCore) FindNext(viewportHeight int) bool {
	m, scrollTop, ok := e.srch.FindNext(e, viewportHeight)
	if !ok {
		return false
	}
	e.scrollTop = scrollTop
	e.sel.MoveTo(buffer.Position{Row: m.Row, Col: m.StartCol})
	return true
}

// ReplaceCurrent substitutes the engine's current match.
func (e *EditorCore) ReplaceCurrent(replacement string) bool {
	return e.srch.ReplaceCurrent(e, e.hist, replacement)
}

// ReplaceAll substitutes every match of pattern across the whole buffer,
// clearing history per search.ReplaceAll's documented contract.
func (e *EditorCore) ReplaceAll(pattern, replacement string) (count int, anyLineFailed bool, err error) {
	return search.ReplaceAll(e, e.hist, pattern, replacement)
}

// CancelSearch clears the active highlight set.
func (e *EditorCore) CancelSearch() {
	e.srch.Cancel()
}
