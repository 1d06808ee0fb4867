// Package editor implements EditorCore (C11), the orchestrator that owns
// every other component and runs the main loop from spec §4.11: drain
// background queues, read one key with a bounded timeout, dispatch it,
// and render exactly when something changed.
package editor

import (
	"strings"

	"github.com/kodexeditor/kodex/internal/async"
	"github.com/kodexeditor/kodex/internal/buffer"
	"github.com/kodexeditor/kodex/internal/clipboard"
	"github.com/kodexeditor/kodex/internal/comment"
	"github.com/kodexeditor/kodex/internal/config"
	"github.com/kodexeditor/kodex/internal/encoding"
	"github.com/kodexeditor/kodex/internal/history"
	"github.com/kodexeditor/kodex/internal/integration"
	"github.com/kodexeditor/kodex/internal/keys"
	"github.com/kodexeditor/kodex/internal/panel"
	"github.com/kodexeditor/kodex/internal/render"
	"github.com/kodexeditor/kodex/internal/search"
	"github.com/kodexeditor/kodex/internal/selection"
	"github.com/kodexeditor/kodex/internal/syntax"
)

// Services is the EditorServices seam named in spec §9: the subset of
// EditorCore's external collaborators that actions need, decoupled from
// EditorCore itself so actions, panels and tests can be built against a
// narrow interface rather than the whole orchestrator.
type Services interface {
	Status(message string)
	Quit()
	ShowPanel(kind panel.Kind, kwargs map[string]any)
}

// EditorCore owns C1-C10 plus the C12 adapter handles and drives the
// single-threaded main loop.
type EditorCore struct {
	cfg *config.Config

	buf      *buffer.Buffer
	sel      *selection.Model
	hist     *history.History
	syn      *syntax.Engine
	comments *comment.Engine
	srch     *search.Engine

	dispatcher *keys.Dispatcher
	panels     *panel.Manager
	async      *async.Engine
	clip       clipboard.Clipboard

	git    integration.GitAdapter
	linter integration.LinterAdapter

	surface  render.Surface
	renderer *render.Renderer

	path         string
	encodingName string
	overwrite    bool
	focused    bool
	running    bool
	scrollTop  int
	scrollLeft int

	statusMessage   string
	panelWidth      int // columns reserved for an open side panel
	forceFullRedraw bool

	lastGitInfo    integration.GitInfo
	lastLintReport integration.LintReport

	prompt *prompt
}

// Buf and Sel satisfy history.Target, comment.Target and search.Target.
func (e *EditorCore) Buf() *buffer.Buffer    { return e.buf }
func (e *EditorCore) Sel() *selection.Model  { return e.sel }

// New builds an EditorCore over an already-initialized surface, starting
// with an empty buffer; callers load a file afterwards with Open.
func New(cfg *config.Config, surface render.Surface, capability syntax.Capability, git integration.GitAdapter, linter integration.LinterAdapter, askFunc async.AskFunc) *EditorCore {
	e := &EditorCore{
		cfg:      cfg,
		buf:      buffer.New(""),
		sel:      &selection.Model{},
		hist:     &history.History{},
		syn:      syntax.NewEngine(capability, "monokai"),
		comments: comment.NewEngine(cfg.ResolveCommentTable()),
		srch:     &search.Engine{},
		surface:  surface,
		renderer: render.NewRenderer(surface),
		clip:         clipboard.New(cfg.Editor.UseSystemClipboard),
		git:          git,
		linter:       linter,
		encodingName: string(encoding.UTF8),
		running:      true,
		focused:  true,
		panelWidth: 40,
	}

	d, _ := keys.NewDispatcher(cfg.ResolveKeybindings())
	e.dispatcher = d
	e.panels = panel.NewManager(panel.DefaultRegistry(), e.Status)

	if askFunc != nil {
		e.async = async.NewEngine(askFunc)
		e.async.Start()
	}

	e.syn.SetRules(cfg.RuleSpecsFor(e.language()))
	return e
}

// Status satisfies Services: it sets the status-bar message shown on the
// next render.
func (e *EditorCore) Status(message string) {
	e.statusMessage = message
}

// Quit satisfies Services: it stops the main loop without terminating
// the process directly, per spec §4.11's exit contract.
func (e *EditorCore) Quit() {
	e.running = false
}

// ShowPanel satisfies Services, delegating to the panel manager.
func (e *EditorCore) ShowPanel(kind panel.Kind, kwargs map[string]any) {
	e.panels.Show(kind, kwargs)
}

// Running reports whether the main loop should keep iterating.
func (e *EditorCore) Running() bool { return e.running }

// language returns the lowercased lexer identity, the key every
// per-language table (comments, custom syntax rules, linter command) is
// keyed by.
func (e *EditorCore) language() string {
	return strings.ToLower(e.syn.LexerID())
}

// Shutdown stops all background workers with the ~2s bound spec §4.10
// names, and is always safe to call even if Start was never reached.
func (e *EditorCore) Shutdown() {
	if e.linter != nil {
		e.linter.Shutdown()
	}
	if e.async != nil {
		e.async.Shutdown(shutdownJoinTimeout)
	}
}
