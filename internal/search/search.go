// Package search implements case-insensitive substring find and regex
// replace-all over a buffer, plus an independent highlight set, per spec
// §4.6.
package search

import (
	"regexp"
	"strings"

	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/history"
	"github.com/kodexeditor/kodex/internal/selection"
)

// Match is one located occurrence: row and the half-open column range
// [StartCol, EndCol) within that row, by code point.
type Match struct {
	Row      int
	StartCol int
	EndCol   int
}

// Target is the minimal surface the search engine needs.
type Target interface {
	Buf() *buffer.Buffer
	Sel() *selection.Model
}

// Engine holds the current query's match list and cursor, plus the
// highlight set it feeds to the renderer. The zero value is ready to use.
type Engine struct {
	query   string
	matches []Match
	current int
}

// Find performs a case-insensitive substring search over the entire
// buffer, replacing the current match list and highlight set. An empty
// query clears the engine and yields no matches.
func (e *Engine) Find(b *buffer.Buffer, query string) []Match {
	e.query = query
	e.current = -1
	e.matches = nil
	if query == "" {
		return nil
	}

	needle := strings.ToLower(query)
	needleLen := len([]rune(needle))
	for row := 0; row < b.LineCount(); row++ {
		line := []rune(strings.ToLower(b.Line(row)))
		for col := 0; col+needleLen <= len(line); col++ {
			if string(line[col:col+needleLen]) == needle {
				e.matches = append(e.matches, Match{Row: row, StartCol: col, EndCol: col + needleLen})
			}
		}
	}
	return e.matches
}

// Matches returns the current highlight set.
func (e *Engine) Matches() []Match { return e.matches }

// HasMatches reports whether the last Find produced any results.
func (e *Engine) HasMatches() bool { return len(e.matches) > 0 }

// FindNext cycles forward through the match list modulo its length,
// placing the caret at the match start and returning the match plus the
// scroll_top that puts it roughly in the upper third of a viewport of the
// given height. ok is false if there are no matches.
func (e *Engine) FindNext(t Target, viewportHeight int) (m Match, scrollTop int, ok bool) {
	if len(e.matches) == 0 {
		return Match{}, 0, false
	}
	e.current = (e.current + 1) % len(e.matches)
	m = e.matches[e.current]
	pos := buffer.Position{Row: m.Row, Col: m.StartCol}
	t.Sel().MoveTo(pos)
	scrollTop = upperThirdScroll(m.Row, viewportHeight)
	return m, scrollTop, true
}

func upperThirdScroll(row, viewportHeight int) int {
	if viewportHeight <= 0 {
		return row
	}
	top := row - viewportHeight/3
	if top < 0 {
		top = 0
	}
	return top
}

// Cancel clears the highlight set and query, matching cancel_operation's
// effect on the independent highlight collection.
func (e *Engine) Cancel() {
	e.query = ""
	e.matches = nil
	e.current = -1
}

// Query returns the active search query, empty if none.
func (e *Engine) Query() string { return e.query }

// ReplaceAll compiles pattern as a case-insensitive regular expression and
// substitutes every match on every line with replacement. It sets the
// buffer modified, clears history (a bulk change invalidates undo/redo),
// and resets the caret to (0,0). It returns the total replacement count
// across all lines and whether any individual line failed to process (the
// offending line is left untouched); a compile failure is returned as err
// with no buffer mutation at all.
func ReplaceAll(t Target, h *history.History, pattern, replacement string) (count int, anyLineFailed bool, err error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return 0, false, err
	}

	b := t.Buf()
	lines := b.Lines()
	for row, line := range lines {
		newLine, n, failed := replaceLine(re, line, replacement)
		if failed {
			anyLineFailed = true
			continue
		}
		if n == 0 {
			continue
		}
		count += n
		b.SetLineText(row, newLine)
	}

	if count > 0 {
		b.SetModified(true)
	}
	h.Clear()
	t.Sel().Restore(buffer.Position{}, buffer.Position{}, false)
	return count, anyLineFailed, nil
}

// ReplaceCurrent substitutes the occurrence at e's current match cursor
// (the one FindNext last landed on) with replacement, as one compound
// history step (a DeleteSelection followed by an Insert), and re-finds to refresh the match list and cursor
// against the now-shifted text. It reports whether there was a current
// match to replace at all.
func (e *Engine) ReplaceCurrent(t Target, h *history.History, replacement string) bool {
	if e.current < 0 || e.current >= len(e.matches) {
		return false
	}
	m := e.matches[e.current]
	start := buffer.Position{Row: m.Row, Col: m.StartCol}
	end := buffer.Position{Row: m.Row, Col: m.EndCol}

	h.BeginCompound()
	removed := t.Buf().DeleteRange(start, end)
	h.Add(history.DeleteSelection{Segments: removed, Start: start, End: end})
	caret := t.Buf().Insert(start, replacement)
	h.Add(history.Insert{Text: replacement, Pos: start})
	h.EndCompound()

	t.Buf().SetModified(true)
	t.Sel().Restore(caret, caret, false)

	query := e.query
	e.Find(t.Buf(), query)
	return true
}

// replaceLine applies re to a single line, recovering from any panic
// inside the regex engine (e.g. a pathological replacement expansion) so
// one bad line cannot abort the whole replace-all operation.
func replaceLine(re *regexp.Regexp, line, replacement string) (result string, count int, failed bool) {
	defer func() {
		if r := recover(); r != nil {
			failed = true
			result = line
			count = 0
		}
	}()

	n := 0
	result = re.ReplaceAllStringFunc(line, func(match string) string {
		n++
		return re.ReplaceAllString(match, replacement)
	})
	if n == 0 {
		return line, 0, false
	}
	return result, n, false
}
