package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"questgen/internal/store"
)

// NewProvider constructs the configured provider wrapped with the standard
// middleware chain: caller → timeout → logging → base provider.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger, history store.HistoryRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}

	p := WithLogging(base, log, history)
	p = WithTimeout(p, cfg.Timeout)
	return p, nil
}

func newBaseProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		return NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
