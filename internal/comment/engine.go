package comment

import (
	"fmt"
	"strings"

	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/history"
	"github.com/kodexeditor/kodex/internal/selection"
)

// Target is the minimal surface the comment engine needs: the buffer it
// rewrites and the selection/caret it may reposition.
type Target interface {
	Buf() *buffer.Buffer
	Sel() *selection.Model
}

// Engine dispatches comment toggling by priority: docstring, line, block,
// per spec §4.5.
type Engine struct {
	table Table
}

// NewEngine builds an Engine over a per-language comment syntax table.
func NewEngine(table Table) *Engine {
	if table == nil {
		table = DefaultTable()
	}
	return &Engine{table: table}
}

// Toggle performs the comment-toggle entry point for the inclusive line
// range [startY, endY] under the named language, pushing exactly one undo
// entry (a compound transaction for multi-line docstring toggles that
// insert or remove whole lines). It returns a status message mirroring
// spec §4.5's editor status-bar feedback.
func (e *Engine) Toggle(t Target, h *history.History, language string, startY, endY int) string {
	syn, ok := e.table[strings.ToLower(language)]
	if !ok {
		return "Comments not supported for this language."
	}

	lines := t.Buf().Lines()
	if startY < 0 || startY >= len(lines) {
		return "No suitable comment method available."
	}
	if endY >= len(lines) {
		endY = len(lines) - 1
	}

	ctx := analyzeContext(lines, startY)

	switch {
	case ctx.valid && syn.hasDocstring():
		return e.toggleDocstring(t, h, startY, endY, syn.DocstringDelim, ctx)
	case syn.hasLine():
		return e.toggleLineComments(t, h, startY, endY, syn.LinePrefix)
	case syn.hasBlock():
		return e.toggleBlockComment(t, h, startY, endY, syn.BlockOpen, syn.BlockClose)
	default:
		return "No suitable comment method available."
	}
}

func (e *Engine) toggleLineComments(t Target, h *history.History, startY, endY int, prefix string) string {
	orig := rangeLines(t.Buf(), startY, endY)
	trimmedPrefix := strings.TrimSpace(prefix)

	var next []string
	var verb string
	if shouldUncommentLines(orig, trimmedPrefix) {
		next = removeLineComments(orig, trimmedPrefix)
		verb = "Removed"
	} else {
		next = addLineComments(orig, trimmedPrefix)
		verb = "Added"
	}

	changes := applyLines(t.Buf(), startY, orig, next)
	if len(changes) == 0 {
		return "No lines to comment."
	}

	selBefore, hasSel, cursorBefore := snapshotTarget(t)
	action := buildBlockAction(changes, hasSel, selBefore, cursorBefore, verb == "Added")
	h.Add(action)
	return fmt.Sprintf("%s '%s' line comments", verb, trimmedPrefix)
}

func (e *Engine) toggleBlockComment(t Target, h *history.History, startY, endY int, open, close string) string {
	first := t.Buf().Line(startY)
	last := t.Buf().Line(endY)

	var newStart, newEnd, status string
	commented := blockIsCommented(first, last, open, close)
	if commented {
		newStart, newEnd = removeBlockComment(first, last, open, close)
		status = fmt.Sprintf("Removed %s...%s block comment", open, close)
	} else {
		newStart, newEnd = addBlockComment(first, last, open, close)
		status = fmt.Sprintf("Wrapped selection in %s...%s", open, close)
	}

	var changes []history.LineChange
	if startY == endY {
		if newStart != first {
			changes = append(changes, history.LineChange{LineIndex: startY, Original: first, New: newStart})
			t.Buf().SetLineText(startY, newStart)
		}
	} else {
		if newStart != first {
			changes = append(changes, history.LineChange{LineIndex: startY, Original: first, New: newStart})
			t.Buf().SetLineText(startY, newStart)
		}
		if newEnd != last {
			changes = append(changes, history.LineChange{LineIndex: endY, Original: last, New: newEnd})
			t.Buf().SetLineText(endY, newEnd)
		}
	}

	if len(changes) == 0 {
		return status
	}
	selBefore, hasSel, cursorBefore := snapshotTarget(t)
	action := buildBlockAction(changes, hasSel, selBefore, cursorBefore, !commented)
	h.Add(action)
	return status
}

func (e *Engine) toggleDocstring(t Target, h *history.History, startY, endY int, delim string, ctx docstringContext) string {
	indent := strings.Repeat(" ", ctx.indentSpaces)
	isDoc, singleLine := docstringExisting(t.Buf().Lines(), startY, endY, delim)

	if isDoc {
		return e.removeDocstring(t, h, startY, endY, delim, indent, singleLine)
	}
	return e.addDocstring(t, h, startY, endY, delim, indent)
}

func (e *Engine) addDocstring(t Target, h *history.History, startY, endY int, delim, indent string) string {
	cursorBefore := t.Sel().Caret()

	if startY == endY {
		original := t.Buf().Line(startY)
		replacement, ok := addSingleLineDocstring(original, delim, indent)
		if !ok {
			return fmt.Sprintf("Error: text contains docstring delimiter '%s'.", delim)
		}
		t.Buf().SetLineText(startY, replacement)
		changes := []history.LineChange{{LineIndex: startY, Original: original, New: replacement}}
		h.Add(buildBlockAction(changes, false, history.SelectionSnapshot{}, cursorBefore, true))
		t.Sel().Restore(buffer.Position{Row: startY}, buffer.Position{Row: startY}, false)
		return fmt.Sprintf("Added docstring with %s", delim)
	}

	h.BeginCompound()
	closePos := buffer.Position{Row: endY + 1}
	closeText := indent + delim + "\n"
	t.Buf().Insert(closePos, closeText)
	h.Add(history.Insert{Text: closeText, Pos: closePos})

	openPos := buffer.Position{Row: startY}
	openText := indent + delim + "\n"
	t.Buf().Insert(openPos, openText)
	h.Add(history.Insert{Text: openText, Pos: openPos})
	h.EndCompound()

	newCursorY := startY
	if cursorBefore.Row >= startY {
		newCursorY++
	}
	t.Sel().Restore(buffer.Position{Row: newCursorY}, buffer.Position{Row: newCursorY}, false)
	return fmt.Sprintf("Added docstring with %s", delim)
}

func (e *Engine) removeDocstring(t Target, h *history.History, startY, endY int, delim, indent string, singleLine bool) string {
	cursorBefore := t.Sel().Caret()

	if singleLine {
		original := t.Buf().Line(startY)
		replacement := removeSingleLineDocstring(original, delim, indent)
		t.Buf().SetLineText(startY, replacement)
		changes := []history.LineChange{{LineIndex: startY, Original: original, New: replacement}}
		h.Add(buildBlockAction(changes, false, history.SelectionSnapshot{}, cursorBefore, false))
		t.Sel().Restore(buffer.Position{Row: startY}, buffer.Position{Row: startY}, false)
		return "Removed docstring"
	}

	h.BeginCompound()
	if endY < t.Buf().LineCount() {
		start := buffer.Position{Row: endY}
		end := buffer.Position{Row: endY + 1}
		removed := t.Buf().DeleteRange(start, end)
		h.Add(history.DeleteSelection{Segments: removed, Start: start, End: end})
	}
	if startY < t.Buf().LineCount() {
		start := buffer.Position{Row: startY}
		end := buffer.Position{Row: startY + 1}
		removed := t.Buf().DeleteRange(start, end)
		h.Add(history.DeleteSelection{Segments: removed, Start: start, End: end})
	}
	h.EndCompound()

	deletedBefore := 0
	if endY < cursorBefore.Row {
		deletedBefore++
	}
	if startY < cursorBefore.Row {
		deletedBefore++
	}
	newY := cursorBefore.Row - deletedBefore
	if newY < 0 {
		newY = 0
	}
	t.Sel().Restore(buffer.Position{Row: newY}, buffer.Position{Row: newY}, false)
	return "Removed docstring"
}

func rangeLines(b *buffer.Buffer, startY, endY int) []string {
	out := make([]string, 0, endY-startY+1)
	for y := startY; y <= endY; y++ {
		out = append(out, b.Line(y))
	}
	return out
}

func applyLines(b *buffer.Buffer, startY int, orig, next []string) []history.LineChange {
	var changes []history.LineChange
	for i := range orig {
		if orig[i] == next[i] {
			continue
		}
		changes = append(changes, history.LineChange{LineIndex: startY + i, Original: orig[i], New: next[i]})
		b.SetLineText(startY+i, next[i])
	}
	return changes
}

func snapshotTarget(t Target) (history.SelectionSnapshot, bool, buffer.Position) {
	anchor, caret, isActive := t.Sel().Snapshot()
	return history.SelectionSnapshot{Anchor: anchor, Caret: caret, Active: isActive}, isActive, caret
}

func buildBlockAction(changes []history.LineChange, hasSelBefore bool, selBefore history.SelectionSnapshot, cursorBefore buffer.Position, commenting bool) history.Action {
	after := selBefore
	if !hasSelBefore {
		after = history.SelectionSnapshot{Anchor: cursorBefore, Caret: cursorBefore, Active: false}
	}
	if commenting {
		return history.NewCommentBlock(changes, selBefore, hasSelBefore, cursorBefore, after)
	}
	return history.NewUncommentBlock(changes, selBefore, hasSelBefore, cursorBefore, after)
}
