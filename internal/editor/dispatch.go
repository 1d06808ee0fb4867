package editor

import (
	"fmt"
	"unicode"

	"github.com/dustin/go-humanize"

	"github.com/kodexeditor/kodex/internal/async"
	"github.com/kodexeditor/kodex/internal/keys"
	"github.com/kodexeditor/kodex/internal/panel"
)

// Dispatch applies one decoded key to the editor, per spec §4.8: a bound
// action runs first; an unbound printable code point falls through to
// plain insertion (step 4). It reports whether anything observable
// changed, so the caller knows whether a render is warranted.
func (e *EditorCore) Dispatch(k keys.Key) bool {
	if e.prompt != nil {
		return e.HandlePromptKey(k)
	}

	action, bound := e.dispatcher.Resolve(k)
	if !bound {
		if k.Name == "" && k.Mods == 0 && unicode.IsPrint(k.Rune) {
			e.InsertText(string(k.Rune))
			return true
		}
		return false
	}
	return e.runAction(action)
}

func (e *EditorCore) runAction(action keys.Action) bool {
	switch action {
	case keys.ActionSave:
		e.handleSave()
	case keys.ActionSaveAs:
		e.promptSaveAsFlow()
	case keys.ActionQuit:
		e.promptQuitFlow()
	case keys.ActionOpen:
		e.openFileBrowser()
	case keys.ActionNewFile:
		e.NewFile()
	case keys.ActionUndo:
		_, status := e.hist.Undo(e)
		e.Status(status)
	case keys.ActionRedo:
		_, status := e.hist.Redo(e)
		e.Status(status)
	case keys.ActionCopy:
		if err := e.Copy(); err != nil {
			e.Status(err.Error())
		}
	case keys.ActionCut:
		if err := e.Cut(); err != nil {
			e.Status(err.Error())
		}
	case keys.ActionPaste:
		e.Paste()
	case keys.ActionSelectAll:
		e.SelectAll()
	case keys.ActionFind:
		e.promptFindFlow()
	case keys.ActionFindNext:
		e.FindNext(e.textAreaHeight())
	case keys.ActionReplace:
		e.promptReplaceFlow()
	case keys.ActionGotoLine:
		e.promptGotoLineFlow()
	case keys.ActionToggleComment:
		e.Status(e.ToggleComment())
	case keys.ActionIndent:
		e.Indent()
	case keys.ActionUnindent:
		e.Unindent()
	case keys.ActionMoveUp:
		e.moveCaret(e.moveUp, false)
	case keys.ActionMoveDown:
		e.moveCaret(e.moveDown, false)
	case keys.ActionMoveLeft:
		e.moveCaret(e.moveLeft, false)
	case keys.ActionMoveRight:
		e.moveCaret(e.moveRight, false)
	case keys.ActionMoveHome:
		e.moveCaret(e.moveHome, false)
	case keys.ActionMoveEnd:
		e.moveCaret(e.moveEnd, false)
	case keys.ActionMovePageUp:
		e.moveCaret(e.movePageUp, false)
	case keys.ActionMovePageDown:
		e.moveCaret(e.movePageDown, false)
	case keys.ActionExtendUp:
		e.moveCaret(e.moveUp, true)
	case keys.ActionExtendDown:
		e.moveCaret(e.moveDown, true)
	case keys.ActionExtendLeft:
		e.moveCaret(e.moveLeft, true)
	case keys.ActionExtendRight:
		e.moveCaret(e.moveRight, true)
	case keys.ActionExtendHome:
		e.moveCaret(e.moveHome, true)
	case keys.ActionExtendEnd:
		e.moveCaret(e.moveEnd, true)
	case keys.ActionBackspace:
		if !e.Backspace() {
			e.Status("beginning of file")
		}
	case keys.ActionDeleteForward:
		if !e.DeleteForward() {
			e.Status("end of file")
		}
	case keys.ActionNewline:
		e.InsertNewline()
	case keys.ActionToggleInsert:
		e.overwrite = !e.overwrite
	case keys.ActionAiPanel:
		e.submitAiRequest()
	case keys.ActionFileBrowser:
		e.openFileBrowser()
	case keys.ActionGitPanel:
		e.openGitPanel()
	case keys.ActionLintPanel:
		e.ShowPanel(panel.LintReport, nil)
	case keys.ActionHelpPanel:
		e.ShowPanel(panel.Help, map[string]any{"bindings": e.cfg.ResolveKeybindings()})
	case keys.ActionClosePanel:
		e.panels.Close()
	default:
		return false
	}
	return true
}

func (e *EditorCore) handleSave() {
	if err := e.Save(); err != nil {
		e.Status(err.Error())
		return
	}
	size := humanize.Bytes(uint64(len(e.buf.FullText())))
	e.Status(fmt.Sprintf("saved %s (%s)", e.BaseName(), size))
}

// submitAiRequest sends the current selection (or, with none active, the
// whole buffer) to the configured AI provider as a prompt, per spec §6's
// `ask(prompt, system_msg)` contract. The reply surfaces later through
// the main loop's async-queue drain.
func (e *EditorCore) submitAiRequest() {
	if e.async == nil {
		e.Status("AI assistant is not configured")
		return
	}
	prompt := e.sel.Text(e.buf)
	if prompt == "" {
		prompt = e.buf.FullText()
	}
	e.async.Submit(async.AiChat{
		Provider:  e.cfg.Ai.DefaultProvider,
		Prompt:    prompt,
		SystemMsg: "You are a concise coding assistant embedded in a terminal text editor.",
	})
	e.Status("asking AI...")
}

func (e *EditorCore) openGitPanel() {
	if e.git == nil {
		e.Status("Git integration is not configured")
		return
	}
	info, err := e.git.Info()
	if err != nil {
		e.Status(err.Error())
		return
	}
	text := fmt.Sprintf("user: %s\nbranch: %s\ncommits: %d", info.User, info.BranchMarker, info.Commits)
	e.ShowPanel(panel.Git, map[string]any{"text": text})
}

func (e *EditorCore) textAreaHeight() int {
	_, h := e.surface.Size()
	height := h - 2
	if height < 1 {
		height = 1
	}
	return height
}
