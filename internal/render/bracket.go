package render

import "github.com/kodexeditor/kodex/internal/buffer"

var bracketPairs = map[rune]rune{
	'(': ')', '[': ']', '{': '}',
}
var bracketPairsReverse = map[rune]rune{
	')': '(', ']': '[', '}': '{',
}

// FindMatchingBracket implements spec §4.7 step 6: if the caret sits at or
// immediately to the right of a bracket, scan forward or backward (across
// lines) for its partner with no string/comment awareness. It returns the
// position of the caret-adjacent bracket and its match, and ok=false if
// neither the caret nor the cell to its left is a bracket, or no partner
// is found.
func FindMatchingBracket(b *buffer.Buffer, row, col int) (origin, match buffer.Position, ok bool) {
	line := []rune(b.Line(row))

	if col < len(line) {
		if _, isOpen := bracketPairs[line[col]]; isOpen {
			if mr, mc, found := scanForward(b, row, col, line[col]); found {
				return buffer.Position{Row: row, Col: col}, buffer.Position{Row: mr, Col: mc}, true
			}
			return buffer.Position{}, buffer.Position{}, false
		}
		if _, isClose := bracketPairsReverse[line[col]]; isClose {
			if mr, mc, found := scanBackward(b, row, col, line[col]); found {
				return buffer.Position{Row: row, Col: col}, buffer.Position{Row: mr, Col: mc}, true
			}
			return buffer.Position{}, buffer.Position{}, false
		}
	}
	if col > 0 && col-1 < len(line) {
		if _, isClose := bracketPairsReverse[line[col-1]]; isClose {
			if mr, mc, found := scanBackward(b, row, col-1, line[col-1]); found {
				return buffer.Position{Row: row, Col: col - 1}, buffer.Position{Row: mr, Col: mc}, true
			}
		} else if _, isOpen := bracketPairs[line[col-1]]; isOpen {
			if mr, mc, found := scanForward(b, row, col-1, line[col-1]); found {
				return buffer.Position{Row: row, Col: col - 1}, buffer.Position{Row: mr, Col: mc}, true
			}
		}
	}
	return buffer.Position{}, buffer.Position{}, false
}

func scanForward(b *buffer.Buffer, row, col int, open rune) (int, int, bool) {
	closeRune := bracketPairs[open]
	depth := 0
	for r := row; r < b.LineCount(); r++ {
		line := []rune(b.Line(r))
		start := 0
		if r == row {
			start = col
		}
		for c := start; c < len(line); c++ {
			switch line[c] {
			case open:
				depth++
			case closeRune:
				depth--
				if depth == 0 {
					return r, c, true
				}
			}
		}
	}
	return 0, 0, false
}

func scanBackward(b *buffer.Buffer, row, col int, closeRune rune) (int, int, bool) {
	openRune := bracketPairsReverse[closeRune]
	depth := 0
	for r := row; r >= 0; r-- {
		line := []rune(b.Line(r))
		end := len(line) - 1
		if r == row {
			end = col
		}
		for c := end; c >= 0; c-- {
			switch line[c] {
			case closeRune:
				depth++
			case openRune:
				depth--
				if depth == 0 {
					return r, c, true
				}
			}
		}
	}
	return 0, 0, false
}
