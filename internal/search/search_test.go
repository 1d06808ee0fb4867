package search

import (
	"testing"

	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/history"
	"github.com/kodexeditor/kodex/internal/selection"
)

type fakeTarget struct {
	buf *buffer.Buffer
	sel *selection.Model
}

func (f *fakeTarget) Buf() *buffer.Buffer   { return f.buf }
func (f *fakeTarget) Sel() *selection.Model { return f.sel }

func TestFindCaseInsensitive(t *testing.T) {
	var e Engine
	b := buffer.New("Hello world\nHELLO again\n")
	matches := e.Find(b, "hello")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(matches), matches)
	}
	if matches[0] != (Match{Row: 0, StartCol: 0, EndCol: 5}) {
		t.Fatalf("unexpected first match: %+v", matches[0])
	}
}

func TestFindEmptyQueryYieldsNoResults(t *testing.T) {
	var e Engine
	b := buffer.New("abc\n")
	if matches := e.Find(b, ""); matches != nil {
		t.Fatalf("expected nil matches for empty query, got %+v", matches)
	}
}

func TestFindNextWraps(t *testing.T) {
	var e Engine
	b := buffer.New("a a a\n")
	tgt := &fakeTarget{buf: b, sel: &selection.Model{}}
	matches := e.Find(b, "a")
	k := len(matches)
	if k != 3 {
		t.Fatalf("expected 3 matches, got %d", k)
	}

	first, _, ok := e.FindNext(tgt, 20)
	if !ok {
		t.Fatalf("expected a match")
	}
	for i := 1; i < k; i++ {
		e.FindNext(tgt, 20)
	}
	last, _, ok := e.FindNext(tgt, 20)
	if !ok || last != first {
		t.Fatalf("expected find_next to wrap back to the first match after k calls, got %+v vs %+v", last, first)
	}
}

func TestCancelClearsHighlightSet(t *testing.T) {
	var e Engine
	b := buffer.New("abc abc\n")
	e.Find(b, "abc")
	if !e.HasMatches() {
		t.Fatalf("expected matches before cancel")
	}
	e.Cancel()
	if e.HasMatches() {
		t.Fatalf("expected no matches after cancel")
	}
}

func TestReplaceAllCountsAndClearsHistory(t *testing.T) {
	b := buffer.New("a1 b2 c3\n")
	sel := &selection.Model{}
	sel.MoveTo(buffer.Position{Row: 0, Col: 5})
	tgt := &fakeTarget{buf: b, sel: sel}
	h := &history.History{}
	h.Add(history.Insert{Text: "x", Pos: buffer.Position{}})

	count, failed, err := ReplaceAll(tgt, h, `\d`, "#")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if failed {
		t.Fatalf("unexpected per-line failure")
	}
	if count != 3 {
		t.Fatalf("expected count=3, got %d", count)
	}
	if b.Line(0) != "a# b# c#" {
		t.Fatalf("unexpected result line: %q", b.Line(0))
	}
	if h.CanUndo() {
		t.Fatalf("expected history cleared after bulk replace")
	}
	anchor, caret, active := sel.Snapshot()
	if anchor != (buffer.Position{}) || caret != (buffer.Position{}) || active {
		t.Fatalf("expected caret reset to (0,0), got anchor=%+v caret=%+v active=%v", anchor, caret, active)
	}
}

func TestReplaceAllInvalidPatternReturnsError(t *testing.T) {
	b := buffer.New("abc\n")
	tgt := &fakeTarget{buf: b, sel: &selection.Model{}}
	h := &history.History{}
	if _, _, err := ReplaceAll(tgt, h, `(unclosed`, "x"); err == nil {
		t.Fatalf("expected error for invalid regex")
	}
}
