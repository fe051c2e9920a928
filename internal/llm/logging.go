package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"questgen/internal/store"
)

// LoggingProvider is a decorator that logs every completion call and records
// it in the history store.
type LoggingProvider struct {
	inner   Provider
	log     *zap.Logger
	history store.HistoryRepo
}

// WithLogging wraps a Provider with structured logging and, when history is
// non-nil, request-log persistence.
func WithLogging(p Provider, log *zap.Logger, history store.HistoryRepo) Provider {
	return &LoggingProvider{inner: p, log: log, history: history}
}

func (l *LoggingProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Complete(ctx, req)

	latency := time.Since(start)

	rec := store.LLMRequestRecord{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		rec.Model = resp.Model
		rec.InputTokens = resp.Usage.InputTokens
		rec.OutputTokens = resp.Usage.OutputTokens
	}

	if err != nil {
		rec.ErrorMessage = err.Error()
		l.log.Warn("completion failed",
			zap.String("purpose", purpose),
			zap.String("model", rec.Model),
			zap.Duration("latency", latency),
			zap.Error(err))
	} else {
		l.log.Info("completion finished",
			zap.String("purpose", purpose),
			zap.String("model", rec.Model),
			zap.Duration("latency", latency),
			zap.Int("input_tokens", rec.InputTokens),
			zap.Int("output_tokens", rec.OutputTokens))
	}

	// Record the call but never fail the request over bookkeeping.
	if l.history != nil {
		if logErr := l.history.RecordLLMRequest(ctx, rec); logErr != nil {
			l.log.Warn("failed to record LLM request", zap.Error(logErr))
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
