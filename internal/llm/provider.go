package llm

import "context"

// Provider is the core abstraction for text completion. Pipelines hand it a
// rendered prompt and get back free-form text; the delimiter grammar the
// prompt demands is enforced downstream by the response parsers, not here.
type Provider interface {
	// Complete sends a prompt to the model and returns the full completion
	// text. Providers may stream internally; the accumulated text is
	// returned once the stream ends.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Empty means no system prompt.
	System string

	// Prompt is the user message. Generation is single-turn.
	Prompt string

	// MaxTokens is the maximum number of tokens in the completion.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the full completion text.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
