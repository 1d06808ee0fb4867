package editor

import "github.com/kodexeditor/kodex/internal/buffer"

// caret returns the current caret position (the selection model's moving
// endpoint regardless of whether a selection is active).
func (e *EditorCore) caret() buffer.Position {
	return e.sel.Caret()
}

// moveCaret computes a navigation target from a cursor function and
// applies it through either MoveTo (plain) or ExtendTo (extend-selection
// variant), per spec §4.2.
func (e *EditorCore) moveCaret(compute func(buffer.Position) buffer.Position, extend bool) bool {
	from := e.caret()
	to := e.buf.Clamp(compute(from))
	if extend {
		e.sel.ExtendTo(to)
	} else {
		e.sel.MoveTo(to)
	}
	return to != from || (extend && !e.sel.IsEmpty())
}

func (e *EditorCore) moveUp(pos buffer.Position) buffer.Position {
	return buffer.Position{Row: pos.Row - 1, Col: pos.Col}
}

func (e *EditorCore) moveDown(pos buffer.Position) buffer.Position {
	return buffer.Position{Row: pos.Row + 1, Col: pos.Col}
}

func (e *EditorCore) moveLeft(pos buffer.Position) buffer.Position {
	if pos.Col > 0 {
		return buffer.Position{Row: pos.Row, Col: pos.Col - 1}
	}
	if pos.Row > 0 {
		prev := e.buf.Line(pos.Row - 1)
		return buffer.Position{Row: pos.Row - 1, Col: len([]rune(prev))}
	}
	return pos
}

func (e *EditorCore) moveRight(pos buffer.Position) buffer.Position {
	line := e.buf.Line(pos.Row)
	if pos.Col < len([]rune(line)) {
		return buffer.Position{Row: pos.Row, Col: pos.Col + 1}
	}
	if pos.Row < e.buf.LineCount()-1 {
		return buffer.Position{Row: pos.Row + 1, Col: 0}
	}
	return pos
}

func (e *EditorCore) moveHome(pos buffer.Position) buffer.Position {
	return buffer.Position{Row: pos.Row, Col: 0}
}

func (e *EditorCore) moveEnd(pos buffer.Position) buffer.Position {
	return buffer.Position{Row: pos.Row, Col: len([]rune(e.buf.Line(pos.Row)))}
}

// pageSize returns the text-area height used for PageUp/PageDown jumps,
// falling back to a sane minimum before the first resize is known.
func (e *EditorCore) pageSize() int {
	_, h := e.surface.Size()
	size := h - 2
	if size < 1 {
		size = 1
	}
	return size
}

func (e *EditorCore) movePageUp(pos buffer.Position) buffer.Position {
	return buffer.Position{Row: pos.Row - e.pageSize(), Col: pos.Col}
}

func (e *EditorCore) movePageDown(pos buffer.Position) buffer.Position {
	return buffer.Position{Row: pos.Row + e.pageSize(), Col: pos.Col}
}

// GotoLine moves the caret to the start of the given 1-based line number,
// clamped into range, cancelling any active selection.
func (e *EditorCore) GotoLine(line int) bool {
	before := e.caret()
	target := buffer.Position{Row: line - 1, Col: 0}
	clamped := e.buf.Clamp(target)
	e.sel.MoveTo(clamped)
	return clamped != before
}
