package history

import (
	"strings"

	"github.com/kodexeditor/kodex/internal/buffer"
)

// Insert records a text insertion at Pos. Undo removes exactly the
// inserted span, rejoining the suffix that was originally on Pos.Row if
// the inserted text was multi-line.
type Insert struct {
	Text string
	Pos  buffer.Position
}

func (Insert) Kind() string { return "insert" }

// end computes the caret position immediately after the inserted text,
// mirroring buffer.Buffer.Insert's return value.
func (a Insert) end() buffer.Position {
	lines := strings.Split(a.Text, "\n")
	if len(lines) == 1 {
		return buffer.Position{Row: a.Pos.Row, Col: a.Pos.Col + len([]rune(lines[0]))}
	}
	last := lines[len(lines)-1]
	return buffer.Position{Row: a.Pos.Row + len(lines) - 1, Col: len([]rune(last))}
}

func (a Insert) Undo(t Target) {
	t.Buf().DeleteRange(a.Pos, a.end())
	t.Sel().Restore(a.Pos, a.Pos, false)
}

func (a Insert) Redo(t Target) {
	caret := t.Buf().Insert(a.Pos, a.Text)
	t.Sel().Restore(caret, caret, false)
}

// DeleteChar records a single code-point forward deletion (Del key) at
// Pos. Undo reinserts Char at Pos.
type DeleteChar struct {
	Char rune
	Pos  buffer.Position
}

func (DeleteChar) Kind() string { return "delete_char" }

func (a DeleteChar) Undo(t Target) {
	t.Buf().Insert(a.Pos, string(a.Char))
	t.Sel().Restore(a.Pos, a.Pos, false)
}

func (a DeleteChar) Redo(t Target) {
	t.Buf().DeleteChar(a.Pos)
	t.Sel().Restore(a.Pos, a.Pos, false)
}
