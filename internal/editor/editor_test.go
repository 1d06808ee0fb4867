package editor

import (
	"testing"

	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/config"
	"github.com/kodexeditor/kodex/internal/keys"
	"github.com/kodexeditor/kodex/internal/syntax"
)

// fakeSurface is a no-op render.Surface large enough to keep
// scroll/paging math out of the way of the tests that exercise it.
type fakeSurface struct {
	w, h int
}

func (f *fakeSurface) Size() (int, int)                                { return f.w, f.h }
func (f *fakeSurface) SetCell(x, y int, r rune, attr syntax.Attr)       {}
func (f *fakeSurface) SetAttr(x, y, n int, attr syntax.Attr)            {}
func (f *fakeSurface) HLine(x, y, n int, r rune, attr syntax.Attr)      {}
func (f *fakeSurface) ClearRow(y int)                                  {}
func (f *fakeSurface) ClearAll()                                       {}
func (f *fakeSurface) MoveCursor(x, y int)                             {}
func (f *fakeSurface) SetCursorVisible(visible bool)                   {}
func (f *fakeSurface) Flush()                                          {}

func newTestEditor() *EditorCore {
	cfg := config.Default()
	surface := &fakeSurface{w: 80, h: 24}
	e := New(cfg, surface, syntax.Cap256Plus, nil, nil, nil)
	e.NewFile()
	return e
}

func typeText(e *EditorCore, s string) {
	for _, r := range s {
		e.Dispatch(keys.Key{Rune: r})
	}
}

func TestInsertTextAppendsAtCaret(t *testing.T) {
	e := newTestEditor()
	typeText(e, "hello")
	if got := e.Buf().Line(0); got != "hello" {
		t.Fatalf("Line(0) = %q, want %q", got, "hello")
	}
}

// Scenario: typing while a selection is active replaces it as one
// compound undo step, per spec §4.2's selection-replace rule.
func TestInsertTextReplacesActiveSelectionAsOneUndoStep(t *testing.T) {
	e := newTestEditor()
	typeText(e, "hello world")

	e.Sel().MoveTo(e.Buf().Clamp(buffer.Position{Row: 0, Col: 0}))
	e.Sel().ExtendTo(e.Buf().Clamp(buffer.Position{Row: 0, Col: 5}))

	e.InsertText("goodbye")
	if got := e.Buf().Line(0); got != "goodbye world" {
		t.Fatalf("after replace: %q", got)
	}

	ok, _ := e.hist.Undo(e)
	if !ok {
		t.Fatalf("undo failed")
	}
	if got := e.Buf().Line(0); got != "hello world" {
		t.Fatalf("after undo: %q, want original text restored in one step", got)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	e := newTestEditor()
	typeText(e, "abc")
	e.InsertNewline()
	typeText(e, "def")

	e.sel.MoveTo(e.Buf().Clamp(buffer.Position{Row: 1, Col: 0}))
	e.Backspace() // caret at col 0 of the second line, joins with the first
	if got := e.Buf().LineCount(); got != 2 {
		t.Fatalf("LineCount = %d, want 2 after join (joined line + virtual trailing line)", got)
	}
	if got := e.Buf().Line(0); got != "abcdef" {
		t.Fatalf("Line(0) = %q, want %q", got, "abcdef")
	}
}

func TestIndentUnindentRoundTrip(t *testing.T) {
	e := newTestEditor()
	typeText(e, "foo")
	e.sel.MoveTo(e.Buf().Clamp(buffer.Position{Row: 0, Col: 0}))

	e.Indent()
	if got := e.Buf().Line(0); got != "    foo" {
		t.Fatalf("after indent: %q", got)
	}

	e.Unindent()
	if got := e.Buf().Line(0); got != "foo" {
		t.Fatalf("after unindent: %q", got)
	}
}

func TestToggleCommentTwiceRestoresLine(t *testing.T) {
	e := newTestEditor()
	e.syn.DetectLanguage("main.go", "")
	typeText(e, "x := 1")

	e.ToggleComment()
	commented := e.Buf().Line(0)
	if commented == "x := 1" {
		t.Fatalf("ToggleComment did not change the line")
	}

	e.ToggleComment()
	if got := e.Buf().Line(0); got != "x := 1" {
		t.Fatalf("after second toggle: %q, want original restored", got)
	}
}

// Scenario 5 from spec §8: bulk regex replace clears history and
// reports a match count.
func TestReplaceAllClearsHistory(t *testing.T) {
	e := newTestEditor()
	typeText(e, "a1 b2 c3")

	count, anyFailed, err := e.ReplaceAll(`\d`, "#")
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if anyFailed {
		t.Fatalf("ReplaceAll reported a line failure")
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
	if got := e.Buf().Line(0); got != "a# b# c#" {
		t.Fatalf("Line(0) = %q, want %q", got, "a# b# c#")
	}
	if !e.hist.IsEmpty() {
		t.Fatalf("history should be cleared after a bulk replace")
	}
}

func TestCopyPasteRoundTrip(t *testing.T) {
	e := newTestEditor()
	typeText(e, "hello")
	e.SelectAll()

	if err := e.Copy(); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	e.sel.MoveTo(e.Buf().Clamp(buffer.Position{Row: 0, Col: 5}))
	e.Paste()

	if got := e.Buf().Line(0); got != "hellohello" {
		t.Fatalf("Line(0) = %q, want %q", got, "hellohello")
	}
}

// Quit on an unmodified buffer stops the loop immediately without
// opening a confirmation prompt, per spec §4.11's exit contract.
func TestQuitUnmodifiedBufferStopsImmediately(t *testing.T) {
	e := newTestEditor()
	e.promptQuitFlow()
	if e.Running() {
		t.Fatalf("Running() = true, want false after quitting an unmodified buffer")
	}
	if e.prompt != nil {
		t.Fatalf("no confirmation prompt should open for an unmodified buffer")
	}
}

// Quit on a modified buffer opens an inline confirmation instead of
// stopping the loop directly.
func TestQuitModifiedBufferOpensConfirmPrompt(t *testing.T) {
	e := newTestEditor()
	typeText(e, "x")
	e.promptQuitFlow()
	if !e.Running() {
		t.Fatalf("Running() = false, want true: quit must not stop the loop before confirmation")
	}
	if e.prompt == nil || e.prompt.kind != promptQuitConfirm {
		t.Fatalf("expected a quit-confirm prompt to be active")
	}
}
