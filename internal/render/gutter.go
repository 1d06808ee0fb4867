package render

import (
	"strconv"

	"github.com/kodexeditor/kodex/internal/syntax"
)

// gutterWidth returns digits(maxLine) + 1, the column count the gutter
// occupies including its one separating space.
func gutterWidth(totalLines int) int {
	return digits(totalLines) + 1
}

func digits(n int) int {
	if n < 1 {
		n = 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}

// drawGutter right-aligns a 1-based line number in the gutter's digit
// columns, followed by one separating space, at row y.
func drawGutter(s Surface, y, width, lineNumber int, attr syntax.Attr) {
	digitCols := width - 1
	numStr := strconv.Itoa(lineNumber)
	pad := digitCols - len(numStr)
	x := 0
	for ; pad > 0; pad-- {
		s.SetCell(x, y, ' ', attr)
		x++
	}
	for _, r := range numStr {
		s.SetCell(x, y, r, attr)
		x++
	}
	s.SetCell(x, y, ' ', attr)
}
