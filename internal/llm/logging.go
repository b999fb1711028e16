package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"github.com/abhisek/mathduel/internal/store"
)

// Recorder persists LLM request events.
type Recorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider is a decorator that records every completion as an event.
type LoggingProvider struct {
	inner    Provider
	provider string
	recorder Recorder
	logger   zerolog.Logger
}

// WithLogging wraps p with event logging. provider names the backend in
// the recorded events.
func WithLogging(p Provider, provider string, rec Recorder, logger zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, provider: provider, recorder: rec, logger: logger}
}

func (l *LoggingProvider) Complete(ctx context.Context, prompt Prompt) (*Completion, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Complete(ctx, prompt)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		RequestID:   RequestIDFrom(ctx),
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: serializePrompt(prompt),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	var ev *zerolog.Event
	if err != nil {
		ev = l.logger.Warn().Err(err)
	} else {
		ev = l.logger.Info()
	}
	ev.Str("purpose", purpose).
		Str("model", data.Model).
		Str("request_id", data.RequestID).
		Int("input_tokens", data.InputTokens).
		Int("output_tokens", data.OutputTokens).
		Dur("latency", latency).
		Msg("llm completion")

	if l.recorder == nil {
		return resp, err
	}
	// A failed write is logged; the completion is still returned.
	if logErr := l.recorder.AppendLLMRequest(ctx, data); logErr != nil {
		l.logger.Error().Err(logErr).Msg("failed to record llm request event")
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializePrompt builds a readable representation of the prompt.
func serializePrompt(p Prompt) string {
	var b strings.Builder

	if p.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(p.System)
		b.WriteString("\n\n")
	}

	for _, t := range p.Turns {
		fmt.Fprintf(&b, "[%s]\n", t.Role)
		b.WriteString(t.Text)
		b.WriteString("\n\n")
	}

	if p.Schema != nil {
		if def, err := sonic.Marshal(p.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", p.Schema.Name)
			b.Write(def)
			b.WriteString("\n")
		}
	}

	return b.String()
}
