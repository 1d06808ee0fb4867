package integration

import (
	"fmt"
	"os"
	"strings"

	"github.com/kodexeditor/kodex/internal/errs"
)

// AiConfig is the subset of config.Ai a provider factory needs; kept as
// a local struct (rather than importing internal/config directly) so
// this package stays free of a dependency edge back onto config.
type AiConfig struct {
	Keys            map[string]string
	Models          map[string]string
	DefaultProvider string
}

// NewAIAdapterFor builds the HTTP adapter for provider, resolving its
// API key from cfg.Keys first and then the `<PROVIDER>_API_KEY`
// environment variable, per spec §6.
func NewAIAdapterFor(provider string, cfg AiConfig) (AIAdapter, error) {
	if provider == "" {
		provider = cfg.DefaultProvider
	}
	if provider == "" {
		return nil, errs.New(errs.InputValidation, "no AI provider configured")
	}

	key := cfg.Keys[provider]
	if key == "" {
		key = os.Getenv(strings.ToUpper(provider) + "_API_KEY")
	}
	if key == "" {
		return nil, errs.New(errs.Permission, fmt.Sprintf("no API key configured for provider %q", provider))
	}

	endpoint, ok := providerEndpoints[provider]
	if !ok {
		return nil, errs.New(errs.InputValidation, fmt.Sprintf("unknown AI provider %q", provider))
	}

	model := cfg.Models[provider]
	if model == "" {
		model = defaultModels[provider]
	}

	return NewHTTPChatAdapter(endpoint, key, model), nil
}

var providerEndpoints = map[string]string{
	"openai":      "https://api.openai.com/v1/chat/completions",
	"gemini":      "https://generativelanguage.googleapis.com/v1beta/openai/chat/completions",
	"huggingface": "https://api-inference.huggingface.co/v1/chat/completions",
	"xai":         "https://api.x.ai/v1/chat/completions",
}

var defaultModels = map[string]string{
	"openai":      "gpt-4o-mini",
	"gemini":      "gemini-1.5-flash",
	"huggingface": "meta-llama/Llama-3.1-8B-Instruct",
	"xai":         "grok-2-latest",
}
