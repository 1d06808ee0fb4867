// Package panel implements the at-most-one-active-overlay lifecycle
// described in spec §4.9: a registry of panel kinds, toggle-or-replace
// show semantics, and focus routing between the editor and the active
// panel.
package panel

import (
	"github.com/kodexeditor/kodex/internal/keys"
	"github.com/kodexeditor/kodex/internal/render"
)

// Kind enumerates the panel variants. The distilled spec's PanelState
// enum names four; Help is a supplemented fifth variant (see DESIGN.md)
// for the static key-binding reference screen.
type Kind int

const (
	None Kind = iota
	AiResponse
	FileBrowser
	Git
	LintReport
	Help
)

func (k Kind) String() string {
	switch k {
	case AiResponse:
		return "ai_response"
	case FileBrowser:
		return "file_browser"
	case Git:
		return "git"
	case LintReport:
		return "lint_report"
	case Help:
		return "help"
	default:
		return "none"
	}
}

// Focus is the two-valued state from spec §3: when Panel, key events are
// delivered to the active panel first.
type Focus int

const (
	FocusEditor Focus = iota
	FocusPanel
)

// Host is the small interface a Panel is given so it can close itself or
// post a status message without holding a full editor reference, mirroring
// spec §9's EditorServices pattern.
type Host interface {
	Close()
	SetStatus(message string)
}

// Panel is the lifecycle contract every overlay implements, per spec
// §4.9: open, close, draw, handle_key, resize.
type Panel interface {
	Open(kwargs map[string]any)
	Close()
	Draw(s render.Surface, x, y, w, h int)
	HandleKey(host Host, k keys.Key) bool
	Resize(w, h int)
}

// Factory constructs a fresh Panel instance for one Kind.
type Factory func() Panel
