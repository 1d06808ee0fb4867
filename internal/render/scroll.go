package render

import "github.com/kodexeditor/kodex/internal/buffer"

// ClampScroll enforces spec §4.7's scroll invariant: the caret's row and
// display column must always fall inside the visible text area. It
// returns the possibly-adjusted (scrollTop, scrollLeft).
func ClampScroll(caretRow, caretDisplayCol, scrollTop, scrollLeft, textAreaHeight, textAreaWidth int) (int, int) {
	if textAreaHeight > 0 {
		if caretRow < scrollTop {
			scrollTop = caretRow
		} else if caretRow >= scrollTop+textAreaHeight {
			scrollTop = caretRow - textAreaHeight + 1
		}
	}
	if scrollTop < 0 {
		scrollTop = 0
	}

	if textAreaWidth > 0 {
		if caretDisplayCol < scrollLeft {
			scrollLeft = caretDisplayCol
		} else if caretDisplayCol >= scrollLeft+textAreaWidth {
			scrollLeft = caretDisplayCol - textAreaWidth + 1
		}
	}
	if scrollLeft < 0 {
		scrollLeft = 0
	}
	return scrollTop, scrollLeft
}

// CaretDisplayCol computes the caret's display column on its line,
// expanding tabs, for use as ClampScroll's caretDisplayCol argument.
func CaretDisplayCol(b *buffer.Buffer, row, col, tabSize int) int {
	return buffer.ExpandedPrefixWidth(b.Line(row), col, tabSize)
}
