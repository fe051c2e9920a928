package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"questgen/internal/store"
)

func TestMockProviderFIFO(t *testing.T) {
	m := NewMockProvider(
		MockResponse{Text: "first"},
		MockResponse{Text: "second"},
	)
	ctx := context.Background()

	resp, err := m.Complete(ctx, Request{Prompt: "p1"})
	if err != nil || resp.Text != "first" {
		t.Fatalf("got %v, %v", resp, err)
	}
	resp, err = m.Complete(ctx, Request{Prompt: "p2"})
	if err != nil || resp.Text != "second" {
		t.Fatalf("got %v, %v", resp, err)
	}

	// Exhausted queue fails.
	if _, err := m.Complete(ctx, Request{Prompt: "p3"}); err == nil {
		t.Error("expected error on exhausted queue")
	}

	if m.CallCount() != 3 {
		t.Errorf("CallCount = %d", m.CallCount())
	}
	if m.Calls[1].Prompt != "p2" {
		t.Errorf("Calls[1].Prompt = %q", m.Calls[1].Prompt)
	}
}

func TestWithTimeoutCancelsSlowCalls(t *testing.T) {
	slow := providerFunc(func(ctx context.Context, req Request) (*Response, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Second):
			return &Response{Text: "too late"}, nil
		}
	})

	p := WithTimeout(slow, 20*time.Millisecond)
	_, err := p.Complete(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("got %v, want DeadlineExceeded", err)
	}
}

func TestWithTimeoutZeroIsPassthrough(t *testing.T) {
	m := NewMockProvider(MockResponse{Text: "hi"})
	if p := WithTimeout(m, 0); p != Provider(m) {
		t.Error("non-positive timeout should return the provider unwrapped")
	}
}

type providerFunc func(ctx context.Context, req Request) (*Response, error)

func (f providerFunc) Complete(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}

func (f providerFunc) ModelID() string { return "func" }

type recordingHistory struct {
	mu   sync.Mutex
	recs []store.LLMRequestRecord
}

func (h *recordingHistory) RecordGeneration(context.Context, store.GenerationRecord) error {
	return nil
}

func (h *recordingHistory) RecordLLMRequest(_ context.Context, rec store.LLMRequestRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.recs = append(h.recs, rec)
	return nil
}

func (h *recordingHistory) RecentGenerations(context.Context, int) ([]store.GenerationRecord, error) {
	return nil, nil
}

func TestLoggingProviderRecordsRequests(t *testing.T) {
	history := &recordingHistory{}
	m := NewMockProvider(MockResponse{
		Text:  "ok",
		Usage: Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
	})
	p := WithLogging(m, zap.NewNop(), history)

	ctx := WithPurpose(context.Background(), "generate_mcq")
	if _, err := p.Complete(ctx, Request{Prompt: "p"}); err != nil {
		t.Fatal(err)
	}

	if len(history.recs) != 1 {
		t.Fatalf("records = %d", len(history.recs))
	}
	rec := history.recs[0]
	if rec.Purpose != "generate_mcq" {
		t.Errorf("Purpose = %q", rec.Purpose)
	}
	if !rec.Success || rec.InputTokens != 10 || rec.OutputTokens != 20 {
		t.Errorf("rec = %+v", rec)
	}
}

func TestLoggingProviderRecordsFailures(t *testing.T) {
	history := &recordingHistory{}
	m := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	p := WithLogging(m, zap.NewNop(), history)

	_, err := p.Complete(context.Background(), Request{Prompt: "p"})
	var rate *ErrRateLimit
	if !errors.As(err, &rate) {
		t.Fatalf("got %v", err)
	}

	if len(history.recs) != 1 || history.recs[0].Success {
		t.Errorf("records = %+v", history.recs)
	}
	if history.recs[0].ErrorMessage == "" {
		t.Error("error message not recorded")
	}
}

func TestNewProviderMock(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	p, err := NewProvider(context.Background(), cfg, zap.NewNop(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}

func TestNewProviderRejectsMissingKey(t *testing.T) {
	cfg := DefaultConfig() // anthropic, no key
	if _, err := NewProvider(context.Background(), cfg, zap.NewNop(), nil); err == nil {
		t.Error("expected validation error")
	}
}
