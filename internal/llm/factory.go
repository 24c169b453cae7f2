package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sthiel/mentiq/internal/store"
)

// NewProvider builds the configured Provider wrapped in the standard
// middleware chain: caller → retry → event logging → base.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log zerolog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithRetry(WithLogging(base, events, log), cfg.Retry), nil
}
