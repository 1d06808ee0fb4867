package editor

import (
	"math"
	"strconv"
	"strings"

	"github.com/kodexeditor/kodex/internal/keys"
)

// promptKind distinguishes the handful of inline, single-line prompts the
// editor needs (save-as path, find/replace query, goto-line number, the
// quit confirmation) so the status bar can label them and Dispatch knows
// what Enter should do.
type promptKind int

const (
	promptNone promptKind = iota
	promptSaveAs
	promptFind
	promptReplaceQuery
	promptReplaceWith
	promptGotoLine
	promptQuitConfirm
)

// prompt is modeled on the classic "editorPrompt(prompt, onInput)" inline
// status-bar prompt: keys are captured a rune at a time instead of being
// routed to the text buffer, with Enter/Esc ending the prompt. Unlike a
// blocking read loop, it is driven one key at a time from the normal main
// loop so background queues keep draining while a prompt is open.
type prompt struct {
	kind     promptKind
	label    string
	input    string
	onChange func(input string) // fires after every edit, for incremental search
	onSubmit func(input string)
	onCancel func()
}

// startPrompt opens an inline prompt, replacing any prompt already open.
func (e *EditorCore) startPrompt(kind promptKind, label string, onChange, onSubmit func(string), onCancel func()) {
	e.prompt = &prompt{kind: kind, label: label, onChange: onChange, onSubmit: onSubmit, onCancel: onCancel}
}

// PromptActive reports whether an inline prompt should receive keys
// instead of the normal dispatcher.
func (e *EditorCore) PromptActive() bool {
	return e.prompt != nil
}

// PromptLabel is the left-aligned status-bar text to show while a prompt
// is open: the fixed label plus the text typed so far.
func (e *EditorCore) PromptLabel() string {
	if e.prompt == nil {
		return ""
	}
	return e.prompt.label + e.prompt.input
}

// HandlePromptKey applies one key to the open prompt. It always reports
// true (consumed) when a prompt is active.
func (e *EditorCore) HandlePromptKey(k keys.Key) bool {
	p := e.prompt
	if p == nil {
		return false
	}
	switch {
	case k.Name == "esc":
		e.prompt = nil
		if p.onCancel != nil {
			p.onCancel()
		}
		return true
	case k.Name == "enter":
		e.prompt = nil
		if p.onSubmit != nil {
			p.onSubmit(p.input)
		}
		return true
	case k.Name == "backspace":
		if p.input != "" {
			runes := []rune(p.input)
			p.input = string(runes[:len(runes)-1])
		}
	case k.Name == "" && k.Mods == 0:
		p.input += string(k.Rune)
	default:
		return true
	}
	if p.onChange != nil {
		p.onChange(p.input)
	}
	return true
}

// promptSaveAsFlow opens the save-as path prompt.
func (e *EditorCore) promptSaveAsFlow() {
	e.startPrompt(promptSaveAs, "save as: ", nil, func(path string) {
		if path == "" {
			e.Status("save as cancelled")
			return
		}
		if err := e.SaveAs(path); err != nil {
			e.Status(err.Error())
			return
		}
		e.Status("saved " + e.BaseName())
	}, func() { e.Status("save as cancelled") })
}

// promptFindFlow opens the incremental-search prompt, re-running Find on
// every keystroke the way editorOnInputFind does.
func (e *EditorCore) promptFindFlow() {
	e.startPrompt(promptFind, "search: ", func(query string) {
		e.Find(query)
	}, func(query string) {
		if !e.Find(query) {
			e.Status("no matches for " + query)
			return
		}
		e.FindNext(e.textAreaHeight())
	}, func() { e.CancelSearch() })
}

// promptGotoLineFlow opens the goto-line prompt. Besides a plain line
// number, it accepts spec §8's `N%` syntax, mapping proportionally to
// round(total*N/100) clamped to [1, total].
func (e *EditorCore) promptGotoLineFlow() {
	e.startPrompt(promptGotoLine, "goto line: ", nil, func(input string) {
		line, ok := e.resolveGotoLineInput(input)
		if !ok {
			e.Status("goto line: expected a positive line number or N%")
			return
		}
		e.GotoLine(line)
	}, nil)
}

// resolveGotoLineInput parses either a bare line number or an `N%`
// percentage into a concrete, clamped target line.
func (e *EditorCore) resolveGotoLineInput(input string) (int, bool) {
	total := e.buf.LineCount()
	if pct, ok := strings.CutSuffix(input, "%"); ok {
		n, ok := parsePositiveInt(pct)
		if !ok {
			return 0, false
		}
		line := int(math.Round(float64(total*n) / 100))
		return clampInt(line, 1, total), true
	}
	n, ok := parsePositiveInt(input)
	if !ok {
		return 0, false
	}
	return n, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// promptReplaceFlow chains two prompts: the search query, then the
// replacement text, finally calling ReplaceAll over the whole buffer.
func (e *EditorCore) promptReplaceFlow() {
	e.startPrompt(promptReplaceQuery, "replace: ", nil, func(pattern string) {
		if pattern == "" {
			e.Status("replace cancelled")
			return
		}
		e.startPrompt(promptReplaceWith, "replace "+pattern+" with: ", nil, func(replacement string) {
			count, anyFailed, err := e.ReplaceAll(pattern, replacement)
			if err != nil {
				e.Status(err.Error())
				return
			}
			if anyFailed {
				e.Status("replaced some occurrences, one or more lines failed")
				return
			}
			e.Status("replaced " + strconv.Itoa(count) + " occurrence(s)")
		}, nil)
	}, nil)
}

// promptQuitFlow asks for confirmation before discarding unsaved changes,
// per spec §4.11's exit contract: Quit only ever clears the running flag,
// never terminates the process directly, so a "no" answer simply leaves
// the loop running with the prompt closed.
func (e *EditorCore) promptQuitFlow() {
	if !e.buf.Modified() {
		e.running = false
		return
	}
	e.startPrompt(promptQuitConfirm, "unsaved changes, quit without saving? (y/n): ", nil, func(answer string) {
		if answer == "y" || answer == "Y" {
			e.running = false
			return
		}
		e.Status("quit cancelled")
	}, func() { e.Status("quit cancelled") })
}

// parsePositiveInt parses s as a non-negative decimal integer, reporting
// false for anything non-numeric (including the empty string).
func parsePositiveInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
