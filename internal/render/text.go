package render

import "github.com/kodexeditor/kodex/internal/syntax"

// DrawText writes text at (x, y), stopping before any glyph that would
// not fully fit within maxWidth cells. It is the exported entry point
// panels use to draw their own content onto a Surface sub-region, sharing
// the same wide-glyph-safe truncation the status bar uses.
func DrawText(s Surface, x, y, maxWidth int, text string, attr syntax.Attr) {
	drawTruncated(s, x, y, maxWidth, text, attr)
}
