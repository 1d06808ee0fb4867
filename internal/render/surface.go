// Package render implements the rendering contract from spec §4.7: a pure
// function of editor state against a terminal surface abstraction,
// composing gutter, text, highlights, and status bar into exactly one
// terminal flip per call.
package render

import "github.com/kodexeditor/kodex/internal/syntax"

// Surface is the terminal abstraction the Renderer draws against:
// dimensions query, move-cursor, write-cells with an attribute,
// change-attribute over a cell range, horizontal line, full refresh. It
// never blocks on I/O other than Flush.
type Surface interface {
	// Size returns the current (width, height) in cells.
	Size() (width, height int)
	// SetCell writes one cell at (x, y). r may be a multi-cell-wide glyph;
	// callers are responsible for not writing into the cell it occupies.
	SetCell(x, y int, r rune, attr syntax.Attr)
	// SetAttr changes only the attribute of cells [x, x+n) on row y,
	// leaving their runes untouched.
	SetAttr(x, y, n int, attr syntax.Attr)
	// HLine draws a horizontal run of r at row y, columns [x, x+n).
	HLine(x, y, n int, r rune, attr syntax.Attr)
	// ClearRow blanks row y to the editor's default attribute.
	ClearRow(y int)
	// ClearAll blanks the entire surface.
	ClearAll()
	// MoveCursor positions the terminal cursor.
	MoveCursor(x, y int)
	// SetCursorVisible shows or hides the terminal cursor.
	SetCursorVisible(visible bool)
	// Flush performs the single terminal I/O flip for the frame.
	Flush()
}
