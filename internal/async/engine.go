package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kodexeditor/kodex/internal/errs"
)

// AskFunc performs one AI provider round trip; Engine enforces the
// per-task timeout around it, so implementations need only honor ctx
// cancellation.
type AskFunc func(ctx context.Context, provider, prompt, systemMsg string) (string, error)

// taskTimeout is the per-task network-bound operation timeout from
// spec §4.10.
const taskTimeout = 90 * time.Second

// Engine runs the single background worker goroutine described in
// spec §4.10, bridging blocking AI calls with the editor's UI loop via
// two channels.
type Engine struct {
	ask  AskFunc
	in   chan InMessage
	out  chan OutMessage
	done chan struct{}

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	wg      sync.WaitGroup
}

// NewEngine builds an Engine around ask. Start must be called once before
// Submit is used.
func NewEngine(ask AskFunc) *Engine {
	return &Engine{
		ask:     ask,
		in:      make(chan InMessage, 16),
		out:     make(chan OutMessage, 16),
		done:    make(chan struct{}),
		cancels: make(map[string]context.CancelFunc),
	}
}

// Start launches the worker goroutine. It returns once, and only once;
// calling it twice on the same Engine is a programmer error.
func (e *Engine) Start() {
	go e.run()
}

// Out returns the channel the editor drains once per main-loop
// iteration, per spec §4.11.
func (e *Engine) Out() <-chan OutMessage { return e.out }

// Submit enqueues an AiChat task, assigning it a correlation id via
// google/uuid if it doesn't already carry one, and returns that id.
func (e *Engine) Submit(req AiChat) string {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	e.in <- req
	return req.ID
}

// Shutdown sends Shutdown to the worker and joins it with a bounded
// timeout (~2s per spec §4.10); if the worker hasn't exited by then it
// returns false so the caller can proceed with exit regardless — the
// worker's own cancellation of outstanding tasks still runs in the
// background.
func (e *Engine) Shutdown(joinTimeout time.Duration) bool {
	select {
	case e.in <- Shutdown{}:
	default:
		// In-queue full or already shutting down; fall through to join.
	}
	select {
	case <-e.done:
		return true
	case <-time.After(joinTimeout):
		return false
	}
}

func (e *Engine) run() {
	defer close(e.done)
	for msg := range e.in {
		switch m := msg.(type) {
		case AiChat:
			e.startTask(m)
		case Shutdown:
			e.cancelAll()
			e.wg.Wait()
			return
		}
	}
}

func (e *Engine) startTask(req AiChat) {
	ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
	e.mu.Lock()
	e.cancels[req.ID] = cancel
	e.mu.Unlock()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer func() {
			e.mu.Lock()
			delete(e.cancels, req.ID)
			e.mu.Unlock()
			cancel()
		}()

		text, err := e.ask(ctx, req.Provider, req.Prompt, req.SystemMsg)
		if err != nil {
			e.out <- TaskError{ID: req.ID, Kind: classify(ctx, err), Message: bound(err.Error())}
			return
		}
		e.out <- AiReply{ID: req.ID, Provider: req.Provider, Text: text}
	}()
}

func (e *Engine) cancelAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, cancel := range e.cancels {
		cancel()
	}
}

// classify maps an AskFunc error into a TaskErrorKind: a timed-out
// context always reports timeout; an *errs.Error carries its own Kind;
// anything else is unknown.
func classify(ctx context.Context, err error) TaskErrorKind {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ErrTimeout
	}
	var kinded *KindedError
	if errors.As(err, &kinded) {
		return kinded.Kind
	}
	switch errs.KindOf(err) {
	case errs.Network:
		return ErrNetwork
	case errs.InputValidation:
		return ErrBadInput
	case errs.Permission:
		return ErrAuth
	case errs.External:
		return ErrServer
	default:
		return ErrUnknown
	}
}

// bound truncates a message to a reasonable status-bar length.
func bound(s string) string {
	const max = 200
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
