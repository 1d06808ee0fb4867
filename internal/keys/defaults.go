package keys

// DefaultBindings returns the built-in binding table, overridden per
// action by the `keybindings.<action>` config keys in spec §6.
func DefaultBindings() map[Action][]string {
	return map[Action][]string{
		ActionSave:          {"ctrl+s"},
		ActionSaveAs:        {"ctrl+shift+s"},
		ActionQuit:          {"ctrl+q"},
		ActionOpen:          {"ctrl+o"},
		ActionNewFile:       {"ctrl+n"},
		ActionUndo:          {"ctrl+z"},
		ActionRedo:          {"ctrl+y"},
		ActionCopy:          {"ctrl+c"},
		ActionCut:           {"ctrl+x"},
		ActionPaste:         {"ctrl+v"},
		ActionSelectAll:     {"ctrl+a"},
		ActionFind:          {"ctrl+f"},
		ActionFindNext:      {"f3"},
		ActionReplace:       {"ctrl+h"},
		ActionGotoLine:      {"ctrl+g"},
		ActionToggleComment: {"ctrl+/"},
		ActionIndent:        {"tab"},
		ActionUnindent:      {"shift+tab"},
		ActionMoveUp:        {"up"},
		ActionMoveDown:      {"down"},
		ActionMoveLeft:      {"left"},
		ActionMoveRight:     {"right"},
		ActionMoveHome:      {"home"},
		ActionMoveEnd:       {"end"},
		ActionMovePageUp:    {"pageup"},
		ActionMovePageDown:  {"pagedown"},
		ActionExtendUp:      {"shift+up"},
		ActionExtendDown:    {"shift+down"},
		ActionExtendLeft:    {"shift+left"},
		ActionExtendRight:   {"shift+right"},
		ActionExtendHome:    {"shift+home"},
		ActionExtendEnd:     {"shift+end"},
		ActionBackspace:     {"backspace"},
		ActionDeleteForward: {"del"},
		ActionNewline:       {"enter"},
		ActionToggleInsert:  {"ins"},
		ActionAiPanel:       {"alt-a"},
		ActionFileBrowser:   {"alt-e"},
		ActionGitPanel:      {"alt-g"},
		ActionLintPanel:     {"alt-l"},
		ActionHelpPanel:     {"f1"},
		ActionClosePanel:    {"esc"},
	}
}
