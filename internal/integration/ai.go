package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kodexeditor/kodex/internal/async"
	"github.com/kodexeditor/kodex/internal/errs"
)

// AIAdapter is the interface the AiResponse panel's async.AskFunc wraps;
// HTTPChatAdapter is the one concrete, HTTP-chat-completion-style
// implementation (OpenAI/Anthropic-compatible request shape).
type AIAdapter interface {
	Ask(ctx context.Context, prompt, systemMsg string) (string, error)
}

// HTTPChatAdapter calls a single HTTP chat-completion endpoint. It is
// provider-agnostic: Endpoint, APIKey and Model are supplied by
// config.Ai, and the request/response shapes follow the widely-used
// OpenAI chat-completions envelope.
type HTTPChatAdapter struct {
	Endpoint string
	APIKey   string
	Model    string
	Client   *http.Client
}

// NewHTTPChatAdapter builds an adapter with a sane request timeout; the
// per-task deadline async.Engine applies on top bounds the overall call.
func NewHTTPChatAdapter(endpoint, apiKey, model string) *HTTPChatAdapter {
	return &HTTPChatAdapter{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Model:    model,
		Client:   &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Ask satisfies AIAdapter and is directly assignable as an
// async.AskFunc via AsAskFunc.
func (a *HTTPChatAdapter) Ask(ctx context.Context, prompt, systemMsg string) (string, error) {
	messages := []chatMessage{}
	if systemMsg != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemMsg})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	body, err := json.Marshal(chatRequest{Model: a.Model, Messages: messages})
	if err != nil {
		return "", errs.Wrap(errs.Internal, "encoding ai request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(errs.Internal, "building ai request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.APIKey)

	resp, err := a.Client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", &async.KindedError{Kind: async.ErrTimeout, Err: err}
		}
		return "", &async.KindedError{Kind: async.ErrNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &async.KindedError{Kind: async.ErrNetwork, Err: err}
	}

	if kind, ok := classifyStatus(resp.StatusCode); ok {
		return "", &async.KindedError{Kind: kind, Err: fmt.Errorf("ai provider returned %d: %s", resp.StatusCode, string(raw))}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", errs.Wrap(errs.Encoding, "decoding ai response", err)
	}
	if parsed.Error != nil {
		return "", &async.KindedError{Kind: async.ErrServer, Err: fmt.Errorf("%s", parsed.Error.Message)}
	}
	if len(parsed.Choices) == 0 {
		return "", errs.New(errs.External, "ai provider returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// classifyStatus maps an HTTP response code onto the spec §6 error
// taxonomy; ok is false for 2xx, where there is nothing to classify.
func classifyStatus(status int) (async.TaskErrorKind, bool) {
	switch {
	case status >= 200 && status < 300:
		return "", false
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return async.ErrAuth, true
	case status == http.StatusTooManyRequests:
		return async.ErrRateLimit, true
	case status == http.StatusPaymentRequired:
		return async.ErrQuota, true
	case status >= 400 && status < 500:
		return async.ErrBadInput, true
	case status >= 500:
		return async.ErrServer, true
	default:
		return async.ErrUnknown, true
	}
}

// AsAskFunc adapts an AIAdapter into the async.AskFunc signature
// Engine expects, ignoring the provider argument (this adapter serves
// exactly one configured provider).
func AsAskFunc(a AIAdapter) async.AskFunc {
	return func(ctx context.Context, provider, prompt, systemMsg string) (string, error) {
		return a.Ask(ctx, prompt, systemMsg)
	}
}
