// Package providers adapts vendor LLM SDKs behind one completion interface.
// The orchestration core is polymorphic over this package: it asks for a
// completion by model name and never sees a vendor SDK type.
package providers

import (
	"context"
)

// ModelInfo carries per-model metadata. MaxOutput is the model's output
// token budget; callers clamp their max_tokens request to it.
type ModelInfo struct {
	ID         string
	Name       string
	MaxContext int
	MaxOutput  int
}

// Provider is a single LLM backend capable of non-streaming completions.
type Provider interface {
	Name() string
	SupportedModels() []ModelInfo
	SupportsModel(model string) bool
	Complete(ctx context.Context, req *Request) (*Response, error)
}

// ProviderType identifies a backend family.
type ProviderType string

const (
	ProviderTypeAnthropic ProviderType = "anthropic"
	ProviderTypeOpenAI    ProviderType = "openai"
)

// Request is one single-turn completion request.
type Request struct {
	Model        string `json:"model"`
	SystemPrompt string `json:"system_prompt,omitempty"`
	Prompt       string `json:"prompt"`
	MaxTokens    int    `json:"max_tokens,omitempty"`
	// Temperature overrides the provider default when non-nil.
	Temperature *float64 `json:"temperature,omitempty"`
}

// Response is the completed text plus usage accounting.
type Response struct {
	Content string `json:"content"`
	Model   string `json:"model"`
	Usage   Usage  `json:"usage"`
}

// Usage is the token accounting a provider reports for one call.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}
