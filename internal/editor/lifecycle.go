package editor

import (
	"os"
	"path/filepath"

	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/encoding"
	"github.com/kodexeditor/kodex/internal/errs"
	"github.com/kodexeditor/kodex/internal/history"
	"github.com/kodexeditor/kodex/internal/selection"
)

// Open replaces the buffer with path's decoded contents, clearing
// history and re-running language detection, per spec §3's Lifecycle
// (open clears undo/redo) and §4.4 (detection re-runs on a new file).
func (e *EditorCore) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errs.Wrap(errs.NotFound, "open failed", err)
	}
	text, name := encoding.Decode(data)

	e.buf = buffer.New(text)
	e.sel = &selection.Model{}
	e.hist.Clear()
	e.hist.Add(history.OpenFile{Path: path, Content: text, Encoding: string(name)})

	e.path = path
	e.encodingName = string(name)
	e.buf.SetModified(false)
	e.scrollTop, e.scrollLeft = 0, 0

	e.syn.DetectLanguage(filepath.Base(path), sampleForGuess(text))
	e.syn.SetRules(e.cfg.RuleSpecsFor(e.language()))
	e.triggerLint()
	e.refreshGitInfo()
	return nil
}

// NewFile resets to an empty, unnamed buffer, clearing history per spec
// §3's Lifecycle.
func (e *EditorCore) NewFile() {
	e.buf = buffer.New("")
	e.sel = &selection.Model{}
	e.hist.Clear()
	e.hist.Add(history.NewFile{DefaultName: e.cfg.Editor.DefaultNewFilename})

	e.path = ""
	e.encodingName = string(encoding.UTF8)
	e.scrollTop, e.scrollLeft = 0, 0

	e.syn.DetectLanguage("", "")
	e.syn.SetRules(e.cfg.RuleSpecsFor(e.language()))
}

// Save writes the buffer to its current path, returning an
// InputValidation error when the buffer has no path yet. It clears the
// modified flag on success.
func (e *EditorCore) Save() error {
	if e.path == "" {
		return errs.New(errs.InputValidation, "no path set; use save as")
	}
	return e.SaveAs(e.path)
}

// SaveAs writes the buffer to path and adopts it as the current path.
func (e *EditorCore) SaveAs(path string) error {
	if err := os.WriteFile(path, []byte(e.buf.FullText()), 0o644); err != nil {
		return errs.Wrap(errs.External, "save failed", err)
	}
	e.path = path
	e.buf.SetModified(false)
	e.triggerLint()
	e.refreshGitInfo()
	return nil
}

// BaseName is the display name the status bar shows, falling back to the
// configured default-new-filename when unnamed.
func (e *EditorCore) BaseName() string {
	if e.path == "" {
		return e.cfg.Editor.DefaultNewFilename
	}
	return filepath.Base(e.path)
}

// sampleForGuess bounds the text handed to language guessing to its
// first segment, matching the budget syntax.guessLanguage applies
// internally; passing the whole buffer for a large file would be wasted
// work since the guesser truncates anyway.
func sampleForGuess(text string) string {
	const maxSample = 10000
	if len(text) > maxSample {
		return text[:maxSample]
	}
	return text
}

func (e *EditorCore) triggerLint() {
	if e.linter == nil {
		return
	}
	e.linter.SetTarget(e.cfg.ResolveLinterCommand(e.language()), e.path)
	e.linter.Run("")
}

func (e *EditorCore) refreshGitInfo() {
	if e.git == nil {
		return
	}
	e.git.UpdateInfo()
}
