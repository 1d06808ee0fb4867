package render

import (
	"fmt"
	"strings"

	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/syntax"
)

// StatusInfo carries the fields the status bar composes, per spec §4.7
// step 8.
type StatusInfo struct {
	BaseName   string
	Modified   bool
	Language   string
	Encoding   string
	Row, Total int
	Col        int
	Overwrite  bool // true = REP, false = INS
	Git        string
	Message    string
}

// left renders the left-aligned segment: base name (with a modified
// marker), language, encoding, position, and input mode.
func (s StatusInfo) left() string {
	name := s.BaseName
	if s.Modified {
		name += "*"
	}
	mode := "INS"
	if s.Overwrite {
		mode = "REP"
	}
	return fmt.Sprintf("%s  %s  %s  Ln %d/%d  Col %d  %s", name, s.Language, s.Encoding, s.Row, s.Total, s.Col, mode)
}

// drawStatusBar composes the left/middle/right segments into row y,
// truncating the middle message and painting it with errAttr if it
// contains "error" (case-insensitive), per spec §4.7 step 8.
func drawStatusBar(s Surface, y, width int, info StatusInfo, defaultAttr, errAttr syntax.Attr) {
	s.ClearRow(y)
	attr := defaultAttr

	left := info.left()
	drawTruncated(s, 0, y, width, left, attr)

	right := info.Git
	if right != "" {
		rightWidth := buffer.DisplayWidth(right)
		if rightWidth < width {
			drawTruncated(s, width-rightWidth, y, rightWidth, right, attr)
		}
	}

	if info.Message == "" {
		return
	}
	msgAttr := attr
	if strings.Contains(strings.ToLower(info.Message), "error") {
		msgAttr = errAttr
	}
	msgWidth := buffer.DisplayWidth(info.Message)
	start := (width - msgWidth) / 2
	if start < 0 {
		start = 0
	}
	available := width - start
	drawTruncated(s, start, y, available, info.Message, msgAttr)
}

// drawTruncated writes text starting at (x, y), stopping before writing
// any glyph that would not fully fit within maxWidth cells — it never
// splits a multi-cell glyph across the boundary.
func drawTruncated(s Surface, x, y, maxWidth int, text string, attr syntax.Attr) {
	used := 0
	col := x
	for _, r := range text {
		w := buffer.CharWidth(r)
		if used+w > maxWidth {
			break
		}
		s.SetCell(col, y, r, attr)
		col += w
		used += w
	}
}
