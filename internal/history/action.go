// Package history implements the undo/redo stacks, compound transactions,
// and the per-action-kind undo/redo semantics from spec §4.3.
package history

import (
	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/selection"
)

// Target is the minimal surface an Action needs to apply its undo/redo
// effect: the buffer it mutates and the selection/caret it restores.
// EditorCore satisfies this through its Buf and Sel methods.
type Target interface {
	Buf() *buffer.Buffer
	Sel() *selection.Model
}

// Action is a closed sum type: every history record implements Undo and
// Redo against a Target. Dispatch on the concrete type is exhaustive by
// construction — there is no string-keyed action name anywhere in this
// package, per the "runtime reflection of actions" redesign note.
type Action interface {
	// Kind names the action for status messages and tests; it is never
	// used for dispatch.
	Kind() string
	Undo(t Target)
	Redo(t Target)
}

// LineChange records one line's before/after text for the block-shaped
// actions (indent, comment toggle).
type LineChange struct {
	LineIndex int
	Original  string
	New       string
}

// SelectionSnapshot captures a selection (or bare caret) to restore after
// undo/redo of a block action.
type SelectionSnapshot struct {
	Anchor buffer.Position
	Caret  buffer.Position
	Active bool
}

func restoreSelection(t Target, s SelectionSnapshot) {
	t.Sel().Restore(s.Anchor, s.Caret, s.Active)
}

func snapshotSelection(t Target) SelectionSnapshot {
	a, c, active := t.Sel().Snapshot()
	return SelectionSnapshot{Anchor: a, Caret: c, Active: active}
}
