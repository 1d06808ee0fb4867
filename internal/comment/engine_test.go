package comment

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

func newFakeTarget(text string) *fakeTarget {
	return &fakeTarget{buf: buffer.New(text), sel: &selection.Model{}}
}

func (f *fakeTarget) Buf() *buffer.Buffer    { return f.buf }
func (f *fakeTarget) Sel() *selection.Model  { return f.sel }

func TestLineCommentRoundTrip(t *testing.T) {
	orig := "package main\n\nfunc main() {\n}\n"
	tgt := newFakeTarget(orig)
	h := &history.History{}
	e := NewEngine(nil)

	before := tgt.buf.FullText()
	e.Toggle(tgt, h, "go", 0, 0)
	if tgt.buf.Line(0) != "// package main" {
		t.Fatalf("expected commented line, got %q", tgt.buf.Line(0))
	}
	e.Toggle(tgt, h, "go", 0, 0)
	if tgt.buf.FullText() != before {
		t.Fatalf("round trip mismatch:\nbefore=%q\nafter=%q", before, tgt.buf.FullText())
	}
}

func TestLineCommentDecidesByAllLinesCommented(t *testing.T) {
	tgt := newFakeTarget("// a\n// b\nc\n")
	h := &history.History{}
	e := NewEngine(nil)

	e.Toggle(tgt, h, "go", 0, 1)
	if tgt.buf.Line(0) != "a" || tgt.buf.Line(1) != "b" {
		t.Fatalf("expected uncomment since all non-blank lines were commented, got %q / %q", tgt.buf.Line(0), tgt.buf.Line(1))
	}
}

func TestBlockCommentToggleSingleLine(t *testing.T) {
	tgt := newFakeTarget("x = 1\n")
	h := &history.History{}
	table := Table{"sql": {BlockOpen: "/*", BlockClose: "*/"}}
	e := NewEngine(table)

	e.Toggle(tgt, h, "sql", 0, 0)
	if tgt.buf.Line(0) != "/* x = 1 */" {
		t.Fatalf("expected wrapped line, got %q", tgt.buf.Line(0))
	}
	e.Toggle(tgt, h, "sql", 0, 0)
	if tgt.buf.Line(0) != "x = 1" {
		t.Fatalf("expected unwrapped line, got %q", tgt.buf.Line(0))
	}
}

func TestDocstringModuleContext(t *testing.T) {
	tgt := newFakeTarget("x = 1\n")
	h := &history.History{}
	e := NewEngine(nil)

	e.Toggle(tgt, h, "python", 0, 0)
	if tgt.buf.Line(0) != `"""x = 1"""` {
		t.Fatalf("expected single-line docstring, got %q", tgt.buf.Line(0))
	}
	e.Toggle(tgt, h, "python", 0, 0)
	if tgt.buf.Line(0) != "x = 1" {
		t.Fatalf("expected docstring removed, got %q", tgt.buf.Line(0))
	}
}

func TestDocstringAfterFunctionDef(t *testing.T) {
	tgt := newFakeTarget("def f():\n    pass\n")
	h := &history.History{}
	e := NewEngine(nil)

	e.Toggle(tgt, h, "python", 1, 1)
	if tgt.buf.Line(1) != `    """pass"""` {
		t.Fatalf("expected indented docstring, got %q", tgt.buf.Line(1))
	}
}

func TestUnsupportedLanguageStatus(t *testing.T) {
	tgt := newFakeTarget("a\n")
	h := &history.History{}
	e := NewEngine(Table{})

	status := e.Toggle(tgt, h, "cobol", 0, 0)
	if status != "Comments not supported for this language." {
		t.Fatalf("unexpected status: %q", status)
	}
}
