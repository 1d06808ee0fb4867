package history

import (
	"golang.org/x/exp/slices"

	"github.com/kodexeditor/kodex/internal/buffer"
)

// entry groups one or more Actions committed as a single undo step.
type entry struct {
	actions []Action
}

// History holds the done/undone stacks and the compound-transaction flag
// described in spec §4.3.
type History struct {
	done     []entry
	undone   []entry
	compound bool
	pending  []Action
}

// Add records a single action outside of a compound transaction. Inside a
// BeginCompound/EndCompound bracket it is instead buffered into the
// in-progress group.
func (h *History) Add(a Action) {
	if h.compound {
		h.pending = append(h.pending, a)
		return
	}
	h.done = append(h.done, entry{actions: []Action{a}})
	h.undone = nil
}

// BeginCompound starts grouping subsequently-added actions into one undo
// step, e.g. delete-selection-then-insert on overwrite.
func (h *History) BeginCompound() {
	h.compound = true
	h.pending = nil
}

// EndCompound closes the group started by BeginCompound, pushes it as one
// entry, and clears the redo stack exactly once.
func (h *History) EndCompound() {
	if !h.compound {
		return
	}
	h.compound = false
	if len(h.pending) == 0 {
		return
	}
	h.done = append(h.done, entry{actions: h.pending})
	h.pending = nil
	h.undone = nil
}

// InCompound reports whether a compound transaction is currently open.
func (h *History) InCompound() bool { return h.compound }

// Clear empties both stacks. Called on file open/new/bulk-replace.
func (h *History) Clear() {
	h.done = nil
	h.undone = nil
	h.compound = false
	h.pending = nil
}

// IsEmpty reports whether the done stack is empty — the buffer's modified
// flag is recomputed from this after every undo/redo.
func (h *History) IsEmpty() bool {
	return len(h.done) == 0
}

// CanUndo / CanRedo report stack availability for UI gating.
func (h *History) CanUndo() bool { return len(h.done) > 0 }
func (h *History) CanRedo() bool { return len(h.undone) > 0 }

// stateSnapshot captures everything an undo/redo step can observably
// change, used to detect the "restores an identical state" tie-break.
type stateSnapshot struct {
	text   string
	anchor buffer.Position
	caret  buffer.Position
	active bool
}

func snapshotState(t Target) stateSnapshot {
	anchor, caret, active := t.Sel().Snapshot()
	return stateSnapshot{text: t.Buf().FullText(), anchor: anchor, caret: caret, active: active}
}

func (s stateSnapshot) equal(o stateSnapshot) bool {
	return s.text == o.text && s.anchor == o.anchor && s.caret == o.caret && s.active == o.active
}

// Undo pops the most recent entry and applies its actions' Undo in
// reverse order. If applying the undo leaves buffer text, caret and
// selection unchanged from before the call, it is a no-op that still
// returns ok=true with a status message, and the done stack is left
// untouched (the tie-break rule in spec §4.3).
func (h *History) Undo(t Target) (ok bool, status string) {
	if len(h.done) == 0 {
		return false, "nothing to undo"
	}
	before := snapshotState(t)

	e := h.done[len(h.done)-1]
	h.done = slices.Delete(h.done, len(h.done)-1, len(h.done))
	for i := len(e.actions) - 1; i >= 0; i-- {
		e.actions[i].Undo(t)
	}

	if snapshotState(t).equal(before) {
		h.done = append(h.done, e)
		return true, "nothing to undo"
	}
	h.undone = append(h.undone, e)
	return true, ""
}

// Redo pops the most recent undone entry and applies its actions' Redo
// in original order.
func (h *History) Redo(t Target) (ok bool, status string) {
	if len(h.undone) == 0 {
		return false, "nothing to redo"
	}
	before := snapshotState(t)

	e := h.undone[len(h.undone)-1]
	h.undone = slices.Delete(h.undone, len(h.undone)-1, len(h.undone))
	for _, a := range e.actions {
		a.Redo(t)
	}

	if snapshotState(t).equal(before) {
		h.undone = append(h.undone, e)
		return true, "nothing to redo"
	}
	h.done = append(h.done, e)
	return true, ""
}
