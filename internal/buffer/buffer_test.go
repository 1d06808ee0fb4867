package buffer

import "testing"

func TestInsertThenDeleteRestoresState(t *testing.T) {
	b := New("hello")
	before := b.FullText()
	caret := b.Insert(Position{Row: 0, Col: 5}, " world")
	if got := b.Line(0); got != "hello world" {
		t.Fatalf("after insert: got %q", got)
	}
	if caret != (Position{Row: 0, Col: 11}) {
		t.Fatalf("caret = %+v", caret)
	}
	b.DeleteRange(Position{Row: 0, Col: 5}, Position{Row: 0, Col: 11})
	if got := b.FullText(); got != before {
		t.Fatalf("round trip failed: got %q want %q", got, before)
	}
}

func TestMultiLineSelectionDelete(t *testing.T) {
	b := New("abc\ndef\nghi")
	removed := b.DeleteRange(Position{Row: 0, Col: 1}, Position{Row: 2, Col: 2})
	if removed != "bc\ndef\ngh" {
		t.Fatalf("removed = %q", removed)
	}
	if got := b.Line(0); got != "ai" {
		t.Fatalf("line 0 = %q", got)
	}
	if b.LineCount() != 2 { // "ai" + virtual trailing line
		t.Fatalf("line count = %d", b.LineCount())
	}
}

func TestVirtualTrailingLineInvariant(t *testing.T) {
	b := New("foo")
	b.Insert(Position{Row: 0, Col: 3}, "\nbar")
	lines := b.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected trailing virtual line, got %v", lines)
	}
	if lines[2] != "" {
		t.Fatalf("trailing line not empty: %q", lines[2])
	}
}

func TestDeleteCharOutOfRange(t *testing.T) {
	b := New("hi")
	if _, ok := b.DeleteChar(Position{Row: 0, Col: 2}); ok {
		t.Fatalf("expected no-op at end of line")
	}
}

func TestClampNeverInvalid(t *testing.T) {
	b := New("ab\ncd")
	p := b.Clamp(Position{Row: 99, Col: 99})
	if p.Row != b.LineCount()-1 {
		t.Fatalf("row not clamped: %+v", p)
	}
	if p.Col != len(b.Line(p.Row)) {
		t.Fatalf("col not clamped: %+v", p)
	}
}

func TestDisplayWidthWideAndCombining(t *testing.T) {
	if DisplayWidth("a") != 1 {
		t.Fatalf("ascii width")
	}
	if DisplayWidth("é") != 1 { // é as a single code point
		t.Fatalf("accented width")
	}
	if DisplayWidth("中") != 2 { // CJK wide char
		t.Fatalf("wide char width")
	}
}

func TestExpandedPrefixWidthTabs(t *testing.T) {
	if w := ExpandedPrefixWidth("\tfoo", 1, 4); w != 4 {
		t.Fatalf("tab expansion = %d", w)
	}
}
