package editor

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kodexeditor/kodex/internal/async"
	"github.com/kodexeditor/kodex/internal/integration"
	"github.com/kodexeditor/kodex/internal/keys"
	"github.com/kodexeditor/kodex/internal/panel"
)

// Run drives the single-threaded main loop from spec §4.11: each
// iteration drains the async/Git/linter result queues (in that fixed
// order), waits up to readKeyTimeout for one terminal event, dispatches
// it, and renders only when something observable changed or a full
// redraw was forced. It returns once Quit (or a prompt-confirmed quit)
// clears the running flag.
func (e *EditorCore) Run(screen tcell.Screen) {
	events := make(chan tcell.Event, 16)
	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				events <- screen.PollEvent()
			}
		}
	}()
	defer close(stop)

	e.forceFullRedraw = true
	for e.running {
		changed := false
		changed = e.drainAsync() || changed
		changed = e.drainGit() || changed
		changed = e.drainLint() || changed

		select {
		case ev := <-events:
			changed = e.handleEvent(ev) || changed
		case <-time.After(readKeyTimeout):
		}

		if changed || e.forceFullRedraw || e.panels.TakeForceFullRedraw() {
			e.renderFrame()
			e.forceFullRedraw = false
		}
	}
	e.Shutdown()
}

func (e *EditorCore) handleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		w, h := e.surface.Size()
		e.panels.Resize(e.panelWidthFor(w), h-2)
		e.forceFullRedraw = true
		return true
	}
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	k := keys.Decode(key)
	if e.panels.Focus() == panel.FocusPanel {
		return e.panels.HandleKey(k)
	}
	return e.Dispatch(k)
}

func (e *EditorCore) drainAsync() bool {
	if e.async == nil {
		return false
	}
	changed := false
	for {
		select {
		case msg := <-e.async.Out():
			e.applyAsyncResult(msg)
			changed = true
		default:
			return changed
		}
	}
}

func (e *EditorCore) applyAsyncResult(msg async.OutMessage) {
	switch m := msg.(type) {
	case async.AiReply:
		e.ShowPanel(panel.AiResponse, map[string]any{"text": m.Text})
		e.Status("AI reply received")
	case async.TaskError:
		e.Status("AI error: " + m.Message)
	}
}

func (e *EditorCore) drainGit() bool {
	if e.git == nil {
		return false
	}
	changed := false
	for {
		select {
		case info := <-e.git.Results():
			e.lastGitInfo = info
			changed = true
		default:
			return changed
		}
	}
}

func (e *EditorCore) drainLint() bool {
	if e.linter == nil {
		return false
	}
	changed := false
	for {
		select {
		case report := <-e.linter.Results():
			e.lastLintReport = report
			if report.Severity == integration.LintError {
				e.Status("lint: " + report.Body)
			}
			changed = true
		default:
			return changed
		}
	}
}

func (e *EditorCore) panelWidthFor(totalWidth int) int {
	if e.panels.ActiveKind() == panel.None {
		return 0
	}
	if e.panelWidth > totalWidth {
		return totalWidth
	}
	return e.panelWidth
}
