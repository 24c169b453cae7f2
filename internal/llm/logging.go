package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sthiel/mentiq/internal/store"
)

// LoggingProvider records every request as an event for cost tracking
// and debugging.
type LoggingProvider struct {
	inner  Provider
	events store.EventRepo
	log    zerolog.Logger
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, events store.EventRepo, log zerolog.Logger) Provider {
	return &LoggingProvider{inner: p, events: events, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// A failed event write never fails the request.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		l.log.Warn().Err(logErr).Msg("recording LLM request event failed")
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
