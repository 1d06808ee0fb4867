package history

// BulkReplace is a marker-only action: search-and-replace-all clears
// history immediately after recording the replacement count, so this
// action is never actually present on a non-empty done stack, let alone
// undone. It exists so EditorCore can report "bulk replace of N
// occurrences" in status/debug output using the same Action shape as
// everything else.
type BulkReplace struct {
	Count int
}

func (BulkReplace) Kind() string { return "bulk_replace" }
func (BulkReplace) Undo(Target)  {}
func (BulkReplace) Redo(Target)  {}

// OpenFile and NewFile are likewise marker-only: history is cleared on
// file open/new (spec §3 Lifecycle), so these never reach Undo/Redo.
type OpenFile struct {
	Path     string
	Content  string
	Encoding string
}

func (OpenFile) Kind() string { return "open_file" }
func (OpenFile) Undo(Target)  {}
func (OpenFile) Redo(Target)  {}

type NewFile struct {
	DefaultName string
}

func (NewFile) Kind() string { return "new_file" }
func (NewFile) Undo(Target)  {}
func (NewFile) Redo(Target)  {}
