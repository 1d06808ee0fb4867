package render

import (
	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/search"
	"github.com/kodexeditor/kodex/internal/syntax"
)

// FrameState is the editor state snapshot one Render call composes
// against a Surface. It is read-only from the renderer's perspective.
type FrameState struct {
	Buf      *buffer.Buffer
	Engine   *syntax.Engine
	TabSize  int
	Focused  bool

	ScrollTop, ScrollLeft int
	CaretRow, CaretCol    int

	SelAnchor, SelCaret buffer.Position
	SelActive           bool

	Matches []search.Match

	ForceFullRedraw bool

	Status StatusInfo

	DefaultAttr   syntax.Attr
	GutterAttr    syntax.Attr
	SelectionAttr syntax.Attr
	SearchAttr    syntax.Attr
	BracketAttr   syntax.Attr
	SeparatorAttr syntax.Attr
	ErrorAttr     syntax.Attr
}

// Renderer composes frames against a Surface, tracking the previous
// frame's dimensions to detect a resize (which forces a full erase) per
// spec §4.7 step 1.
type Renderer struct {
	surface       Surface
	lastW, lastH  int
	haveLastFrame bool
}

// NewRenderer builds a Renderer over the given Surface.
func NewRenderer(s Surface) *Renderer {
	return &Renderer{surface: s}
}

// Render draws exactly one frame and performs exactly one terminal flip.
func (r *Renderer) Render(state FrameState) {
	s := r.surface
	w, h := s.Size()

	resized := !r.haveLastFrame || w != r.lastW || h != r.lastH
	full := resized || state.ForceFullRedraw
	if full {
		s.ClearAll()
	}
	r.lastW, r.lastH = w, h
	r.haveLastFrame = true

	textAreaHeight := h - 2
	if textAreaHeight < 0 {
		textAreaHeight = 0
	}

	totalLines := state.Buf.LineCount()
	gw := gutterWidth(totalLines)
	showGutter := gw < w
	textOriginX := 0
	if showGutter {
		textOriginX = gw
	}
	textAreaWidth := w - textOriginX
	if textAreaWidth < 0 {
		textAreaWidth = 0
	}

	for i := 0; i < textAreaHeight; i++ {
		y := i
		bufRow := state.ScrollTop + i
		s.ClearRow(y)
		if bufRow >= totalLines {
			continue
		}
		if showGutter {
			drawGutter(s, y, gw, bufRow+1, state.GutterAttr)
		}
		line := state.Buf.Line(bufRow)
		segs := state.Engine.Tokenize(line)
		drawLineSegments(s, textOriginX, y, textAreaWidth, segs, state.ScrollLeft, state.TabSize)
	}

	applySearchHighlights(s, state, textOriginX, textAreaWidth, textAreaHeight)
	applySelectionHighlight(s, state, textOriginX, textAreaWidth, textAreaHeight)
	applyBracketHighlight(s, state, textOriginX, textAreaWidth, textAreaHeight)

	if h >= 2 {
		s.HLine(0, h-2, w, '-', state.SeparatorAttr)
	}
	if h >= 1 {
		drawStatusBar(s, h-1, w, state.Status, state.DefaultAttr, state.ErrorAttr)
	}

	positionCursor(s, state, textOriginX, textAreaWidth, textAreaHeight)
	s.Flush()
}

// drawLineSegments walks a tokenized line's segments, expanding tabs and
// applying scroll_left, writing only cells whose full glyph fits within
// [0, areaWidth) of the text area — never splitting a wide glyph across
// either edge.
func drawLineSegments(s Surface, originX, y, areaWidth int, segs []syntax.Segment, scrollLeft, tabSize int) {
	displayCol := 0
	for _, seg := range segs {
		for _, r := range seg.Text {
			width := buffer.CharWidth(r)
			if r == '\t' {
				width = tabSize - (displayCol % tabSize)
				if width <= 0 {
					width = tabSize
				}
			}
			cellX := displayCol - scrollLeft
			if cellX >= 0 && cellX+width <= areaWidth {
				if r == '\t' {
					for k := 0; k < width; k++ {
						s.SetCell(originX+cellX+k, y, ' ', seg.Attr)
					}
				} else {
					s.SetCell(originX+cellX, y, r, seg.Attr)
				}
			}
			displayCol += width
		}
	}
}

func applySearchHighlights(s Surface, state FrameState, originX, areaWidth, areaHeight int) {
	for _, m := range state.Matches {
		row := m.Row - state.ScrollTop
		if row < 0 || row >= areaHeight {
			continue
		}
		line := state.Buf.Line(m.Row)
		startX := buffer.ExpandedPrefixWidth(line, m.StartCol, state.TabSize) - state.ScrollLeft
		endX := buffer.ExpandedPrefixWidth(line, m.EndCol, state.TabSize) - state.ScrollLeft
		applyAttrRange(s, originX, row, startX, endX, areaWidth, state.SearchAttr)
	}
}

func applySelectionHighlight(s Surface, state FrameState, originX, areaWidth, areaHeight int) {
	if !state.SelActive {
		return
	}
	start, end := normalizePositions(state.SelAnchor, state.SelCaret)
	if start == end {
		return
	}

	if start.Row == end.Row {
		row := start.Row - state.ScrollTop
		if row < 0 || row >= areaHeight {
			return
		}
		line := state.Buf.Line(start.Row)
		startX := buffer.ExpandedPrefixWidth(line, start.Col, state.TabSize) - state.ScrollLeft
		endX := buffer.ExpandedPrefixWidth(line, end.Col, state.TabSize) - state.ScrollLeft
		applyAttrRange(s, originX, row, startX, endX, areaWidth, state.SelectionAttr)
		return
	}

	maxWidth := 0
	for r := start.Row; r <= end.Row; r++ {
		if r >= state.Buf.LineCount() {
			break
		}
		w := buffer.DisplayWidth(state.Buf.Line(r))
		if w > maxWidth {
			maxWidth = w
		}
	}
	for r := start.Row; r <= end.Row; r++ {
		row := r - state.ScrollTop
		if row < 0 || row >= areaHeight {
			continue
		}
		endX := maxWidth - state.ScrollLeft
		applyAttrRange(s, originX, row, 0-state.ScrollLeft, endX, areaWidth, state.SelectionAttr)
	}
}

func applyBracketHighlight(s Surface, state FrameState, originX, areaWidth, areaHeight int) {
	origin, match, ok := FindMatchingBracket(state.Buf, state.CaretRow, state.CaretCol)
	if !ok {
		return
	}
	for _, pos := range [2]buffer.Position{origin, match} {
		row := pos.Row - state.ScrollTop
		if row < 0 || row >= areaHeight {
			continue
		}
		line := state.Buf.Line(pos.Row)
		x := buffer.ExpandedPrefixWidth(line, pos.Col, state.TabSize) - state.ScrollLeft
		if x < 0 || x >= areaWidth {
			continue
		}
		s.SetAttr(originX+x, row, 1, state.BracketAttr)
	}
}

// applyAttrRange changes the attribute of display columns [startX, endX)
// within the text area, clipping to its bounds.
func applyAttrRange(s Surface, originX, row, startX, endX, areaWidth int, attr syntax.Attr) {
	if startX < 0 {
		startX = 0
	}
	if endX > areaWidth {
		endX = areaWidth
	}
	if endX <= startX {
		return
	}
	s.SetAttr(originX+startX, row, endX-startX, attr)
}

func normalizePositions(a, b buffer.Position) (buffer.Position, buffer.Position) {
	if a.Row < b.Row || (a.Row == b.Row && a.Col <= b.Col) {
		return a, b
	}
	return b, a
}

func positionCursor(s Surface, state FrameState, originX, areaWidth, areaHeight int) {
	if !state.Focused {
		s.SetCursorVisible(false)
		return
	}
	row := state.CaretRow - state.ScrollTop
	if row < 0 || row >= areaHeight {
		s.SetCursorVisible(false)
		return
	}
	line := state.Buf.Line(state.CaretRow)
	col := buffer.ExpandedPrefixWidth(line, state.CaretCol, state.TabSize) - state.ScrollLeft
	if col < 0 || col >= areaWidth {
		s.SetCursorVisible(false)
		return
	}
	s.MoveCursor(originX+col, row)
	s.SetCursorVisible(true)
}
