package history

import "github.com/kodexeditor/kodex/internal/buffer"

// blockChange is the common shape shared by BlockIndent, BlockUnindent,
// CommentBlock and UncommentBlock: a set of whole-line changes plus the
// selection (or bare caret) to restore on undo/redo.
type blockChange struct {
	Changes         []LineChange
	SelBefore       SelectionSnapshot
	HasSelBefore    bool
	CursorBefore    buffer.Position
	SelAfter        SelectionSnapshot
}

func (b blockChange) undo(t Target) {
	for _, c := range b.Changes {
		t.Buf().SetLineText(c.LineIndex, c.Original)
	}
	if b.HasSelBefore {
		restoreSelection(t, b.SelBefore)
	} else {
		t.Sel().Restore(b.CursorBefore, b.CursorBefore, false)
	}
}

func (b blockChange) redo(t Target) {
	for _, c := range b.Changes {
		t.Buf().SetLineText(c.LineIndex, c.New)
	}
	restoreSelection(t, b.SelAfter)
}

// BlockIndent records a block-indent (Tab over a multi-line selection).
type BlockIndent struct{ blockChange }

func (BlockIndent) Kind() string    { return "block_indent" }
func (a BlockIndent) Undo(t Target) { a.blockChange.undo(t) }
func (a BlockIndent) Redo(t Target) { a.blockChange.redo(t) }

// NewBlockIndent builds a BlockIndent action; exported since blockChange
// itself is not, so callers outside this package (EditorCore) cannot
// construct the embedded value directly.
func NewBlockIndent(changes []LineChange, selBefore SelectionSnapshot, hasSelBefore bool, cursorBefore buffer.Position, selAfter SelectionSnapshot) BlockIndent {
	return BlockIndent{blockChange: blockChange{
		Changes:      changes,
		SelBefore:    selBefore,
		HasSelBefore: hasSelBefore,
		CursorBefore: cursorBefore,
		SelAfter:     selAfter,
	}}
}

// BlockUnindent records a block-unindent (Shift+Tab).
type BlockUnindent struct{ blockChange }

func (BlockUnindent) Kind() string    { return "block_unindent" }
func (a BlockUnindent) Undo(t Target) { a.blockChange.undo(t) }
func (a BlockUnindent) Redo(t Target) { a.blockChange.redo(t) }

// NewBlockUnindent builds a BlockUnindent action, mirroring
// NewBlockIndent.
func NewBlockUnindent(changes []LineChange, selBefore SelectionSnapshot, hasSelBefore bool, cursorBefore buffer.Position, selAfter SelectionSnapshot) BlockUnindent {
	return BlockUnindent{blockChange: blockChange{
		Changes:      changes,
		SelBefore:    selBefore,
		HasSelBefore: hasSelBefore,
		CursorBefore: cursorBefore,
		SelAfter:     selAfter,
	}}
}

// CommentBlock records a line/block/docstring comment toggle that added
// comment markers.
type CommentBlock struct {
	blockChange
	Prefix string
}

func (CommentBlock) Kind() string    { return "comment_block" }
func (a CommentBlock) Undo(t Target) { a.blockChange.undo(t) }
func (a CommentBlock) Redo(t Target) { a.blockChange.redo(t) }

// NewCommentBlock builds a CommentBlock action. Exported for the comment
// package, which assembles the change set before any history action type
// exists to hold it.
func NewCommentBlock(changes []LineChange, selBefore SelectionSnapshot, hasSelBefore bool, cursorBefore buffer.Position, selAfter SelectionSnapshot) CommentBlock {
	return CommentBlock{blockChange: blockChange{
		Changes:      changes,
		SelBefore:    selBefore,
		HasSelBefore: hasSelBefore,
		CursorBefore: cursorBefore,
		SelAfter:     selAfter,
	}}
}

// UncommentBlock records a toggle that removed comment markers.
type UncommentBlock struct {
	blockChange
	Prefix string
}

func (UncommentBlock) Kind() string    { return "uncomment_block" }
func (a UncommentBlock) Undo(t Target) { a.blockChange.undo(t) }
func (a UncommentBlock) Redo(t Target) { a.blockChange.redo(t) }

// NewUncommentBlock builds an UncommentBlock action, mirroring
// NewCommentBlock.
func NewUncommentBlock(changes []LineChange, selBefore SelectionSnapshot, hasSelBefore bool, cursorBefore buffer.Position, selAfter SelectionSnapshot) UncommentBlock {
	return UncommentBlock{blockChange: blockChange{
		Changes:      changes,
		SelBefore:    selBefore,
		HasSelBefore: hasSelBefore,
		CursorBefore: cursorBefore,
		SelAfter:     selAfter,
	}}
}
