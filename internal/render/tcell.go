package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kodexeditor/kodex/internal/syntax"
)

// TcellSurface adapts a tcell.Screen to the Surface interface.
type TcellSurface struct {
	screen tcell.Screen
}

// NewTcellSurface wraps an already-initialized tcell.Screen.
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	return &TcellSurface{screen: screen}
}

func (s *TcellSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *TcellSurface) SetCell(x, y int, r rune, attr syntax.Attr) {
	s.screen.SetContent(x, y, r, nil, attrToStyle(attr))
}

func (s *TcellSurface) SetAttr(x, y, n int, attr syntax.Attr) {
	style := attrToStyle(attr)
	for i := 0; i < n; i++ {
		mainc, combc, _, _ := s.screen.GetContent(x+i, y)
		s.screen.SetContent(x+i, y, mainc, combc, style)
	}
}

func (s *TcellSurface) HLine(x, y, n int, r rune, attr syntax.Attr) {
	style := attrToStyle(attr)
	for i := 0; i < n; i++ {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *TcellSurface) ClearRow(y int) {
	w, _ := s.screen.Size()
	style := attrToStyle(syntax.Attr{})
	for x := 0; x < w; x++ {
		s.screen.SetContent(x, y, ' ', nil, style)
	}
}

func (s *TcellSurface) ClearAll() {
	s.screen.Clear()
}

func (s *TcellSurface) MoveCursor(x, y int) {
	s.screen.ShowCursor(x, y)
}

func (s *TcellSurface) SetCursorVisible(visible bool) {
	if !visible {
		s.screen.HideCursor()
	}
}

func (s *TcellSurface) Flush() {
	s.screen.Show()
}

// Colors reports the terminal's color count, used once at startup to
// classify the syntax engine's Capability tier.
func (s *TcellSurface) Colors() int {
	return s.screen.Colors()
}

func attrToStyle(attr syntax.Attr) tcell.Style {
	style := tcell.StyleDefault
	if attr.FG.Set {
		style = style.Foreground(tcell.NewRGBColor(int32(attr.FG.R), int32(attr.FG.G), int32(attr.FG.B)))
	}
	style = style.Bold(attr.Bold).Italic(attr.Italic).Underline(attr.Underline).Reverse(attr.Reverse)
	return style
}
