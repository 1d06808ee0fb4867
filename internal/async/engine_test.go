package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kodexeditor/kodex/internal/errs"
)

func TestSubmitProducesAiReply(t *testing.T) {
	e := NewEngine(func(ctx context.Context, provider, prompt, systemMsg string) (string, error) {
		return "reply: " + prompt, nil
	})
	e.Start()
	id := e.Submit(AiChat{Provider: "openai", Prompt: "hello"})

	select {
	case msg := <-e.Out():
		reply, ok := msg.(AiReply)
		if !ok {
			t.Fatalf("expected AiReply, got %#v", msg)
		}
		if reply.ID != id || reply.Text != "reply: hello" {
			t.Fatalf("unexpected reply: %+v", reply)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reply")
	}
	e.Shutdown(2 * time.Second)
}

func TestSubmitSurfacesTaskError(t *testing.T) {
	e := NewEngine(func(ctx context.Context, provider, prompt, systemMsg string) (string, error) {
		return "", errs.New(errs.Network, "connection refused")
	})
	e.Start()
	e.Submit(AiChat{Provider: "openai", Prompt: "hello"})

	select {
	case msg := <-e.Out():
		te, ok := msg.(TaskError)
		if !ok {
			t.Fatalf("expected TaskError, got %#v", msg)
		}
		if te.Kind != ErrNetwork {
			t.Fatalf("expected ErrNetwork, got %v", te.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for task error")
	}
	e.Shutdown(2 * time.Second)
}

func TestShutdownCancellationSurfacesTaskError(t *testing.T) {
	e := NewEngine(func(ctx context.Context, provider, prompt, systemMsg string) (string, error) {
		<-ctx.Done()
		return "", errors.New("deadline exceeded")
	})
	e.Start()

	origTimeout := taskTimeout
	_ = origTimeout
	e.Submit(AiChat{Provider: "openai", Prompt: "hello"})

	// The task blocks on ctx.Done(); shutting down cancels it and the
	// task's error is still posted to Out. ctx.Err() is context.Canceled,
	// not DeadlineExceeded, for an explicit cancel, so the error is
	// classified as unknown rather than timeout — this exercises the
	// cancellation path rather than the 90s real timeout.
	e.Shutdown(2 * time.Second)
	select {
	case <-e.Out():
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for task error after shutdown cancellation")
	}
}

func TestShutdownJoinsWithinBound(t *testing.T) {
	e := NewEngine(func(ctx context.Context, provider, prompt, systemMsg string) (string, error) {
		return "ok", nil
	})
	e.Start()
	if !e.Shutdown(2 * time.Second) {
		t.Fatalf("expected worker to join within the bound")
	}
}
