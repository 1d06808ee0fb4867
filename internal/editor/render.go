package editor

import (
	"fmt"

	"github.com/kodexeditor/kodex/internal/panel"
	"github.com/kodexeditor/kodex/internal/render"
)

// gitSegment formats the status bar's right-hand segment per spec §4.7
// step 8: "user, branch, commits" when Git integration is active, empty
// otherwise.
func (e *EditorCore) gitSegment() string {
	if e.git == nil {
		return ""
	}
	info := e.lastGitInfo
	if info.User == "" && info.BranchMarker == "" && info.Commits == 0 {
		return ""
	}
	return fmt.Sprintf("%s, %s, %d", info.User, info.BranchMarker, info.Commits)
}

// renderFrame composes the current state into a FrameState and renders
// it, per spec §4.7. Render performs exactly one Flush internally; since
// FrameState has no notion of panels, an active panel is drawn in a
// second pass with its own Flush immediately after, rather than folding
// panel drawing into FrameState itself.
func (e *EditorCore) renderFrame() {
	w, h := e.surface.Size()
	panelWidth := e.panelWidthFor(w)
	textWidth := w - panelWidth
	if textWidth < 0 {
		textWidth = 0
	}

	caret := e.caret()
	displayCol := render.CaretDisplayCol(e.buf, caret.Row, caret.Col, e.cfg.Editor.TabSize)
	e.scrollTop, e.scrollLeft = render.ClampScroll(caret.Row, displayCol, e.scrollTop, e.scrollLeft, h-2, textWidth)

	anchor, _, active := e.sel.Snapshot()

	status := render.StatusInfo{
		BaseName:  e.BaseName(),
		Modified:  e.buf.Modified(),
		Language:  e.syn.LexerID(),
		Encoding:  e.encodingName,
		Row:       caret.Row + 1,
		Total:     e.buf.LineCount(),
		Col:       caret.Col + 1,
		Overwrite: e.overwrite,
		Git:       e.gitSegment(),
		Message:   e.statusMessage,
	}
	if e.prompt != nil {
		status.Message = e.PromptLabel()
	}

	state := render.FrameState{
		Buf:             e.buf,
		Engine:          e.syn,
		TabSize:         e.cfg.Editor.TabSize,
		Focused:         e.focused,
		ScrollTop:       e.scrollTop,
		ScrollLeft:      e.scrollLeft,
		CaretRow:        caret.Row,
		CaretCol:        caret.Col,
		SelAnchor:       anchor,
		SelCaret:        caret,
		SelActive:       active,
		Matches:         e.srch.Matches(),
		ForceFullRedraw: e.forceFullRedraw,
		Status:          status,
		DefaultAttr:     theme.Default,
		GutterAttr:      theme.Gutter,
		SelectionAttr:   theme.Selection,
		SearchAttr:      theme.Search,
		BracketAttr:     theme.Bracket,
		SeparatorAttr:   theme.Separator,
		ErrorAttr:       theme.Error,
	}

	e.renderer.Render(state)

	if e.panels.ActiveKind() != panel.None {
		e.panels.Draw(e.surface, textWidth, 0, panelWidth, h)
		e.surface.Flush()
	}
}
