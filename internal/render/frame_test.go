package render

import (
	"strings"
	"testing"

	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/syntax"
)

func TestRenderDrawsGutterAndText(t *testing.T) {
	b := buffer.New("hello\nworld\n")
	engine := syntax.NewEngine(syntax.CapMono, "")
	surface := NewFakeSurface(40, 10)
	r := NewRenderer(surface)

	r.Render(FrameState{
		Buf:     b,
		Engine:  engine,
		TabSize: 4,
		Focused: true,
		Status:  StatusInfo{BaseName: "file.txt", Language: "plaintext", Encoding: "utf-8", Row: 1, Total: 3, Col: 1},
	})

	if surface.Flushes != 1 {
		t.Fatalf("expected exactly one flush per frame, got %d", surface.Flushes)
	}
	row0 := surface.RowText(0)
	if !strings.Contains(row0, "hello") {
		t.Fatalf("expected first row to contain the first line, got %q", row0)
	}
	if !strings.HasPrefix(row0, "1 ") {
		t.Fatalf("expected gutter line number 1, got %q", row0)
	}
}

func TestRenderHidesGutterWhenTooWide(t *testing.T) {
	b := buffer.New("x\n")
	engine := syntax.NewEngine(syntax.CapMono, "")
	surface := NewFakeSurface(2, 5)
	r := NewRenderer(surface)

	r.Render(FrameState{Buf: b, Engine: engine, TabSize: 4})
	row0 := surface.RowText(0)
	if !strings.HasPrefix(row0, "x") {
		t.Fatalf("expected gutter hidden and text starting at column 0, got %q", row0)
	}
}

func TestRenderSelectionHighlightSingleLine(t *testing.T) {
	b := buffer.New("hello world\n")
	engine := syntax.NewEngine(syntax.CapMono, "")
	surface := NewFakeSurface(40, 10)
	r := NewRenderer(surface)

	r.Render(FrameState{
		Buf:           b,
		Engine:        engine,
		TabSize:       4,
		SelActive:     true,
		SelAnchor:     buffer.Position{Row: 0, Col: 0},
		SelCaret:      buffer.Position{Row: 0, Col: 5},
		SelectionAttr: syntax.Attr{Reverse: true},
	})

	gw := gutterWidth(b.LineCount())
	for x := gw; x < gw+5; x++ {
		if !surface.Grid[0][x].Attr.Reverse {
			t.Fatalf("expected selection attr at col %d", x)
		}
	}
	if surface.Grid[0][gw+5].Attr.Reverse {
		t.Fatalf("expected selection to stop at column 5")
	}
}

func TestRenderCursorHiddenWhenUnfocused(t *testing.T) {
	b := buffer.New("abc\n")
	engine := syntax.NewEngine(syntax.CapMono, "")
	surface := NewFakeSurface(40, 10)
	r := NewRenderer(surface)

	r.Render(FrameState{Buf: b, Engine: engine, TabSize: 4, Focused: false})
	if surface.CursorVisible {
		t.Fatalf("expected cursor hidden when not focused")
	}
}

func TestRenderNeverSplitsWideGlyph(t *testing.T) {
	b := buffer.New("a中\n") // 'a' + one East-Asian wide glyph
	engine := syntax.NewEngine(syntax.CapMono, "")
	surface := NewFakeSurface(3, 5) // gutter(2) + 1 text column: only room for 'a'
	r := NewRenderer(surface)

	r.Render(FrameState{Buf: b, Engine: engine, TabSize: 4})
	row0 := surface.RowText(0)
	if strings.ContainsRune(row0, '中') {
		t.Fatalf("expected wide glyph to be dropped rather than split, got %q", row0)
	}
}
