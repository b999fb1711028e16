package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// mockAnswer is what the mock backend answers to every prompt.
const mockAnswer = `{"reasoning":"The mock provider does not solve problems.","answer":"42"}`

// NewProvider creates a Provider from configuration, wrapped as
// caller → timeout → retry → logging → backend. rec may be nil.
func NewProvider(ctx context.Context, cfg Config, rec Recorder, logger zerolog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		mock := NewMockProvider()
		mock.Fallback = json.RawMessage(mockAnswer)
		base = mock
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, rec, logger)
	retried := WithRetry(logged, cfg.Retry, logger)
	return WithTimeout(retried, cfg.Timeout), nil
}
