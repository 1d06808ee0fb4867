package history

import (
	"testing"

	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/selection"
)

type fakeTarget struct {
	buf *buffer.Buffer
	sel selection.Model
}

func (f *fakeTarget) Buf() *buffer.Buffer     { return f.buf }
func (f *fakeTarget) Sel() *selection.Model   { return &f.sel }

func newTarget(text string) *fakeTarget {
	return &fakeTarget{buf: buffer.New(text)}
}

// Scenario 1 from spec §8: insert then undo.
func TestInsertUndo(t *testing.T) {
	tg := newTarget("hello")
	var h History

	caret := tg.buf.Insert(buffer.Position{Row: 0, Col: 5}, " world")
	tg.sel.Restore(caret, caret, false)
	h.Add(Insert{Text: " world", Pos: buffer.Position{Row: 0, Col: 5}})

	if tg.buf.Line(0) != "hello world" || !tg.buf.Modified() {
		t.Fatalf("after insert: %q modified=%v", tg.buf.Line(0), tg.buf.Modified())
	}

	ok, _ := h.Undo(tg)
	if !ok {
		t.Fatalf("undo failed")
	}
	if tg.buf.Line(0) != "hello" {
		t.Fatalf("after undo: %q", tg.buf.Line(0))
	}
	if h.IsEmpty() != true {
		t.Fatalf("done stack should be empty after undoing the only action")
	}
}

// Scenario 2: multi-line selection delete, then undo restores the text.
func TestMultiLineDeleteUndo(t *testing.T) {
	tg := newTarget("abc\ndef\nghi")
	var h History

	start := buffer.Position{Row: 0, Col: 1}
	end := buffer.Position{Row: 2, Col: 2}
	removed := tg.buf.DeleteRange(start, end)
	tg.sel.Restore(start, start, false)
	h.Add(DeleteSelection{Segments: removed, Start: start, End: end})

	if tg.buf.Line(0) != "ai" {
		t.Fatalf("after delete: %q", tg.buf.Line(0))
	}

	h.Undo(tg)
	if got := tg.buf.FullText(); got != "abc\ndef\nghi" {
		t.Fatalf("after undo: %q", got)
	}
}

// Scenario 6: undo of block indent restores selection exactly.
func TestBlockIndentUndo(t *testing.T) {
	tg := newTarget("foo\nbar")
	var h History

	before := SelectionSnapshot{Caret: buffer.Position{Row: 1, Col: 3}, Anchor: buffer.Position{Row: 0, Col: 0}, Active: true}
	tg.buf.SetLineText(0, "  foo")
	tg.buf.SetLineText(1, "  bar")
	after := SelectionSnapshot{Caret: buffer.Position{Row: 1, Col: 5}, Anchor: buffer.Position{Row: 0, Col: 2}, Active: true}
	tg.sel.Restore(after.Anchor, after.Caret, after.Active)

	h.Add(BlockIndent{blockChange{
		Changes: []LineChange{
			{LineIndex: 0, Original: "foo", New: "  foo"},
			{LineIndex: 1, Original: "bar", New: "  bar"},
		},
		HasSelBefore: true,
		SelBefore:    before,
		SelAfter:     after,
	}})

	h.Undo(tg)
	if tg.buf.Line(0) != "foo" || tg.buf.Line(1) != "bar" {
		t.Fatalf("lines not restored: %q %q", tg.buf.Line(0), tg.buf.Line(1))
	}
	anchor, caret, active := tg.sel.Snapshot()
	if anchor != before.Anchor || caret != before.Caret || !active {
		t.Fatalf("selection not restored: %+v %+v %v", anchor, caret, active)
	}
}

func TestCompoundGroupsAsOneStep(t *testing.T) {
	tg := newTarget("hello")
	var h History

	h.BeginCompound()
	removed := tg.buf.DeleteRange(buffer.Position{Row: 0, Col: 0}, buffer.Position{Row: 0, Col: 5})
	h.Add(DeleteSelection{Segments: removed, Start: buffer.Position{Row: 0, Col: 0}, End: buffer.Position{Row: 0, Col: 5}})
	tg.buf.Insert(buffer.Position{Row: 0, Col: 0}, "goodbye")
	h.Add(Insert{Text: "goodbye", Pos: buffer.Position{Row: 0, Col: 0}})
	h.EndCompound()

	if tg.buf.Line(0) != "goodbye" {
		t.Fatalf("setup failed: %q", tg.buf.Line(0))
	}

	ok, _ := h.Undo(tg)
	if !ok || tg.buf.Line(0) != "hello" {
		t.Fatalf("compound undo failed: ok=%v line=%q", ok, tg.buf.Line(0))
	}
	if h.CanUndo() {
		t.Fatalf("expected single compound undo step to fully unwind")
	}
}

func TestUndoRedoInverse(t *testing.T) {
	tg := newTarget("hello")
	var h History

	tg.buf.Insert(buffer.Position{Row: 0, Col: 5}, " world")
	h.Add(Insert{Text: " world", Pos: buffer.Position{Row: 0, Col: 5}})

	before := tg.buf.FullText()
	h.Undo(tg)
	h.Redo(tg)
	if tg.buf.FullText() != before {
		t.Fatalf("undo;redo not inverse: %q vs %q", tg.buf.FullText(), before)
	}
}
