package history

import "github.com/kodexeditor/kodex/internal/buffer"

// DeleteNewline records a line merge: Backspace at line-start (or Delete
// at line-end) joined the following line's text (MergedLine) onto Pos.Row
// at Pos, the end of the upper line. Undo splits the line back at Pos.Col,
// placing MergedLine on row+1.
type DeleteNewline struct {
	MergedLine string
	Pos        buffer.Position
}

func (DeleteNewline) Kind() string { return "delete_newline" }

func (a DeleteNewline) Undo(t Target) {
	t.Buf().SplitLine(a.Pos.Row, a.Pos.Col)
	t.Sel().Restore(a.Pos, a.Pos, false)
}

func (a DeleteNewline) Redo(t Target) {
	t.Buf().MergeLineWithNext(a.Pos.Row)
	t.Sel().Restore(a.Pos, a.Pos, false)
}

// DeleteSelection records the removal of a (possibly multi-line)
// selection. Segments holds the exact removed text (spec's "segments");
// undo reinserts it at Start and leaves no selection active.
type DeleteSelection struct {
	Segments   string
	Start, End buffer.Position
}

func (DeleteSelection) Kind() string { return "delete_selection" }

func (a DeleteSelection) Undo(t Target) {
	t.Buf().Insert(a.Start, a.Segments)
	t.Sel().Restore(a.Start, a.Start, false)
}

func (a DeleteSelection) Redo(t Target) {
	t.Buf().DeleteRange(a.Start, a.End)
	t.Sel().Restore(a.Start, a.Start, false)
}
