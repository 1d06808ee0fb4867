package render

import "github.com/kodexeditor/kodex/internal/syntax"

// Cell is one rendered terminal cell, exposed for test assertions.
type Cell struct {
	Rune rune
	Attr syntax.Attr
}

// FakeSurface is an in-memory Surface implementation for tests: it
// records every cell write into a grid instead of touching a real
// terminal.
type FakeSurface struct {
	W, H          int
	Grid          [][]Cell
	CursorX       int
	CursorY       int
	CursorVisible bool
	Flushes       int
}

// NewFakeSurface builds a FakeSurface of the given size, pre-filled with
// spaces.
func NewFakeSurface(w, h int) *FakeSurface {
	f := &FakeSurface{W: w, H: h}
	f.Grid = make([][]Cell, h)
	for y := range f.Grid {
		f.Grid[y] = make([]Cell, w)
		for x := range f.Grid[y] {
			f.Grid[y][x] = Cell{Rune: ' '}
		}
	}
	return f
}

func (f *FakeSurface) Size() (int, int) { return f.W, f.H }

func (f *FakeSurface) SetCell(x, y int, r rune, attr syntax.Attr) {
	if y < 0 || y >= f.H || x < 0 || x >= f.W {
		return
	}
	f.Grid[y][x] = Cell{Rune: r, Attr: attr}
}

func (f *FakeSurface) SetAttr(x, y, n int, attr syntax.Attr) {
	for i := 0; i < n; i++ {
		cx := x + i
		if cx < 0 || cx >= f.W || y < 0 || y >= f.H {
			continue
		}
		f.Grid[y][cx].Attr = attr
	}
}

func (f *FakeSurface) HLine(x, y, n int, r rune, attr syntax.Attr) {
	for i := 0; i < n; i++ {
		f.SetCell(x+i, y, r, attr)
	}
}

func (f *FakeSurface) ClearRow(y int) {
	if y < 0 || y >= f.H {
		return
	}
	for x := range f.Grid[y] {
		f.Grid[y][x] = Cell{Rune: ' '}
	}
}

func (f *FakeSurface) ClearAll() {
	for y := range f.Grid {
		f.ClearRow(y)
	}
}

func (f *FakeSurface) MoveCursor(x, y int) {
	f.CursorX, f.CursorY = x, y
}

func (f *FakeSurface) SetCursorVisible(visible bool) {
	f.CursorVisible = visible
}

func (f *FakeSurface) Flush() {
	f.Flushes++
}

// RowText returns row y's cell runes as a trimmed string, stopping at the
// first run of trailing spaces, for convenient test assertions.
func (f *FakeSurface) RowText(y int) string {
	runes := make([]rune, f.W)
	for x, c := range f.Grid[y] {
		runes[x] = c.Rune
	}
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return string(runes[:end])
}
