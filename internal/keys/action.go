package keys

// Action is the closed sum type spec §9 calls for in place of the source's
// string-keyed action dispatch: every editor action the key dispatcher can
// invoke is one of these named constants. Action is a string type, so a
// binding config entry naming an unknown action still converts to an
// Action; the editor's dispatch switch has no case for it and ignores it.
type Action string

const (
	ActionSave          Action = "save"
	ActionSaveAs        Action = "save_as"
	ActionQuit          Action = "quit"
	ActionOpen          Action = "open"
	ActionNewFile       Action = "new_file"
	ActionUndo          Action = "undo"
	ActionRedo          Action = "redo"
	ActionCopy          Action = "copy"
	ActionCut           Action = "cut"
	ActionPaste         Action = "paste"
	ActionSelectAll     Action = "select_all"
	ActionFind          Action = "find"
	ActionFindNext      Action = "find_next"
	ActionReplace       Action = "replace"
	ActionGotoLine      Action = "goto_line"
	ActionToggleComment Action = "toggle_comment"
	ActionIndent        Action = "indent"
	ActionUnindent      Action = "unindent"
	ActionMoveUp        Action = "move_up"
	ActionMoveDown      Action = "move_down"
	ActionMoveLeft      Action = "move_left"
	ActionMoveRight     Action = "move_right"
	ActionMoveHome      Action = "move_home"
	ActionMoveEnd       Action = "move_end"
	ActionMovePageUp    Action = "move_page_up"
	ActionMovePageDown  Action = "move_page_down"
	ActionExtendUp      Action = "extend_up"
	ActionExtendDown    Action = "extend_down"
	ActionExtendLeft    Action = "extend_left"
	ActionExtendRight   Action = "extend_right"
	ActionExtendHome    Action = "extend_home"
	ActionExtendEnd     Action = "extend_end"
	ActionBackspace     Action = "backspace"
	ActionDeleteForward Action = "delete_forward"
	ActionNewline       Action = "newline"
	ActionToggleInsert  Action = "toggle_insert"
	ActionAiPanel       Action = "ai_panel"
	ActionFileBrowser   Action = "file_browser"
	ActionGitPanel      Action = "git_panel"
	ActionLintPanel     Action = "lint_panel"
	ActionHelpPanel     Action = "help_panel"
	ActionClosePanel    Action = "close_panel"
)
