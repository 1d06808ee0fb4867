package buffer

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CharWidth returns the display width of a single code point: 0 for
// combining/zero-width characters, 2 for East-Asian wide characters, 1
// otherwise. This is the only place a lone code point's width is computed.
func CharWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// DisplayWidth returns the total display width of s in terminal cells. It
// walks s grapheme-cluster by grapheme-cluster (via uniseg) so a base rune
// followed by combining marks or joiners is measured once as a unit,
// rather than by summing each code point's width independently.
func DisplayWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// ExpandedPrefixWidth returns the display width of the first col code
// points of line, expanding tabs to the next multiple of tabSize. The
// renderer uses it for cursor placement, highlights and scrolling, so
// "display column of a code-point offset" has one definition.
func ExpandedPrefixWidth(line string, col, tabSize int) int {
	if tabSize <= 0 {
		tabSize = 1
	}
	runes := []rune(line)
	if col > len(runes) {
		col = len(runes)
	}
	width := 0
	for i := 0; i < col; i++ {
		if runes[i] == '\t' {
			width += tabSize - (width % tabSize)
			continue
		}
		width += CharWidth(runes[i])
	}
	return width
}
