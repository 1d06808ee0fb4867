package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kodexeditor/kodex/internal/async"
)

func TestShellGitPorcelainMapping(t *testing.T) {
	cases := map[string]GitStatus{
		"??": StatusUntracked,
		" M": StatusModified,
		"A ": StatusAdded,
		" D": StatusDeleted,
		"R ": StatusRenamed,
		"  ": StatusNone,
	}
	for code, want := range cases {
		if got := porcelainToStatus(code); got != want {
			t.Fatalf("porcelainToStatus(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestShellLinterRunFalseWithoutCommand(t *testing.T) {
	l := NewShellLinter(nil, "/tmp/whatever.go", time.Second)
	if l.Run("") {
		t.Fatalf("expected Run to report no command configured")
	}
}

func TestShellLinterRunReportsSuccess(t *testing.T) {
	l := NewShellLinter([]string{"true"}, "", 2*time.Second)
	if !l.Run("") {
		t.Fatalf("expected Run to schedule the command")
	}
	select {
	case report := <-l.Results():
		if report.Severity == LintError {
			t.Fatalf("unexpected error report: %+v", report)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for lint report")
	}
}

func TestHTTPChatAdapterSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hello back"}},
			},
		})
	}))
	defer srv.Close()

	adapter := NewHTTPChatAdapter(srv.URL, "test-key", "test-model")
	text, err := adapter.Ask(context.Background(), "hi", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello back" {
		t.Fatalf("got %q", text)
	}
}

func TestHTTPChatAdapterClassifiesRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"slow down"}`))
	}))
	defer srv.Close()

	adapter := NewHTTPChatAdapter(srv.URL, "test-key", "test-model")
	_, err := adapter.Ask(context.Background(), "hi", "")
	if err == nil {
		t.Fatalf("expected an error")
	}
	var kinded *async.KindedError
	if !asKinded(err, &kinded) {
		t.Fatalf("expected a KindedError, got %T: %v", err, err)
	}
	if kinded.Kind != async.ErrRateLimit {
		t.Fatalf("got kind %v", kinded.Kind)
	}
}

func asKinded(err error, target **async.KindedError) bool {
	if k, ok := err.(*async.KindedError); ok {
		*target = k
		return true
	}
	return false
}

func TestAsAskFuncWiresIntoEngine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "ok"}}},
		})
	}))
	defer srv.Close()

	adapter := NewHTTPChatAdapter(srv.URL, "k", "m")
	engine := async.NewEngine(AsAskFunc(adapter))
	engine.Start()
	defer engine.Shutdown(time.Second)

	id := engine.Submit(async.AiChat{Provider: "test", Prompt: "hi"})
	select {
	case out := <-engine.Out():
		reply, ok := out.(async.AiReply)
		if !ok || reply.ID != id || reply.Text != "ok" {
			t.Fatalf("unexpected out message: %+v", out)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for reply")
	}
}
