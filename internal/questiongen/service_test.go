package questiongen

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"questgen/internal/artifact"
	"questgen/internal/content"
	"questgen/internal/llm"
	"questgen/internal/store"
)

const fibCompletion = `QUESTION: The basic unit of life is the ________.
ANSWER: cell
EXPLANATION: All organisms are composed of cells.`

// typeRoutingProvider answers each prompt with the completion matching the
// question type it asks for. The pipelines run concurrently, so a FIFO mock
// cannot guarantee which pipeline receives which canned response.
type typeRoutingProvider struct {
	failTypes map[string]error
}

func (p *typeRoutingProvider) Complete(_ context.Context, req llm.Request) (*llm.Response, error) {
	var kind, text string
	switch {
	case strings.Contains(req.Prompt, "multiple-choice questions"):
		kind, text = "mcq", mcqCompletion
	case strings.Contains(req.Prompt, "true/false questions"):
		kind, text = "tf", tfCompletion
	case strings.Contains(req.Prompt, "fill-in-the-blank questions"):
		kind, text = "fib", fibCompletion
	}
	if err := p.failTypes[kind]; err != nil {
		return nil, err
	}
	return &llm.Response{Text: text, Model: "mock", StopReason: "end"}, nil
}

func (p *typeRoutingProvider) ModelID() string { return "mock" }

type stubContent struct {
	text string
	err  error
}

func (s stubContent) Retrieve(context.Context, string, string, int, int) (string, error) {
	return s.text, s.err
}

type fakeHistory struct {
	generations []store.GenerationRecord
}

func (f *fakeHistory) RecordGeneration(_ context.Context, rec store.GenerationRecord) error {
	f.generations = append(f.generations, rec)
	return nil
}

func (f *fakeHistory) RecordLLMRequest(context.Context, store.LLMRequestRecord) error { return nil }

func (f *fakeHistory) RecentGenerations(context.Context, int) ([]store.GenerationRecord, error) {
	return f.generations, nil
}

func newTestService(t *testing.T, provider llm.Provider, cs content.Store, history store.HistoryRepo) *Service {
	t.Helper()
	sink, err := artifact.NewFSSink(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	pipeline := NewTypePipeline(provider, sink, zap.NewNop(), 1000)
	return NewService(cs, pipeline, history, zap.NewNop(), DefaultWorkers)
}

func TestServiceGenerateSuccess(t *testing.T) {
	history := &fakeHistory{}
	svc := newTestService(t, &typeRoutingProvider{}, stubContent{text: "Chapter text."}, history)

	req := GenerationRequest{ContentID: "Biology 101", ChapterName: "Cells", TotalQuestions: 9}
	resp := svc.Generate(context.Background(), req)

	if resp.Status != StatusSuccess {
		t.Fatalf("status = %s, message = %s", resp.Status, resp.Message)
	}
	if resp.TotalQuestions != 9 || resp.ContentID != "Biology 101" || resp.ChapterName != "Cells" {
		t.Errorf("response did not echo request: %+v", resp)
	}
	if resp.SessionID == "" {
		t.Error("session id missing from response")
	}
	if len(resp.FilesGenerated) != 3 {
		t.Errorf("files_generated = %v", resp.FilesGenerated)
	}
	for _, key := range []string{"mcq", "fib", "tf"} {
		if _, ok := resp.Data[key]; !ok {
			t.Errorf("data missing %q", key)
		}
	}
	if !strings.Contains(resp.Message, "Generated 9 questions across 3 question types") {
		t.Errorf("message = %q", resp.Message)
	}

	if len(history.generations) != 1 {
		t.Fatalf("history records = %d", len(history.generations))
	}
	if history.generations[0].Status != StatusSuccess {
		t.Errorf("recorded status = %s", history.generations[0].Status)
	}
}

func TestServiceGenerateOnePipelineFails(t *testing.T) {
	provider := &typeRoutingProvider{failTypes: map[string]error{
		"tf": &llm.ErrProviderUnavailable{},
	}}
	svc := newTestService(t, provider, stubContent{text: "Chapter text."}, nil)

	req := GenerationRequest{ContentID: "Biology 101", ChapterName: "Cells", TotalQuestions: 9}
	resp := svc.Generate(context.Background(), req)

	if resp.Status != StatusError {
		t.Fatalf("status = %s", resp.Status)
	}
	if !strings.Contains(resp.Message, "completion failed for tf") {
		t.Errorf("message should name the failing type: %q", resp.Message)
	}
	if len(resp.FilesGenerated) != 0 {
		t.Errorf("files_generated should be empty on error: %v", resp.FilesGenerated)
	}
	if len(resp.Data) != 0 {
		t.Errorf("data should be empty on error: %v", resp.Data)
	}
	// The response still echoes the request parameters.
	if resp.ChapterName != "Cells" || resp.TotalQuestions != 9 {
		t.Errorf("error response did not echo request: %+v", resp)
	}
}

func TestServiceGenerateContentNotFound(t *testing.T) {
	svc := newTestService(t, &typeRoutingProvider{}, stubContent{err: content.ErrNotFound}, nil)

	req := GenerationRequest{ContentID: "Unknown", ChapterName: "Nope", TotalQuestions: 5}
	resp := svc.Generate(context.Background(), req)

	if resp.Status != StatusError {
		t.Fatalf("status = %s", resp.Status)
	}
	if !strings.Contains(resp.Message, `no content found for chapter "Nope"`) {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestServiceGenerateEmptyContent(t *testing.T) {
	svc := newTestService(t, &typeRoutingProvider{}, stubContent{text: ""}, nil)

	resp := svc.Generate(context.Background(), GenerationRequest{ContentID: "b", ChapterName: "c", TotalQuestions: 5})
	if resp.Status != StatusError || !strings.Contains(resp.Message, "no content found") {
		t.Errorf("status = %s, message = %q", resp.Status, resp.Message)
	}
}

func TestServiceGenerateInvalidDistribution(t *testing.T) {
	svc := newTestService(t, &typeRoutingProvider{}, stubContent{text: "Chapter text."}, nil)

	req := GenerationRequest{
		ContentID:        "b",
		ChapterName:      "c",
		TotalQuestions:   5,
		TypeDistribution: ProportionMap{"mcq": 0},
	}
	resp := svc.Generate(context.Background(), req)
	if resp.Status != StatusError || !strings.Contains(resp.Message, "invalid question type distribution") {
		t.Errorf("status = %s, message = %q", resp.Status, resp.Message)
	}
}

func TestServiceGenerateInvalidTotal(t *testing.T) {
	svc := newTestService(t, &typeRoutingProvider{}, stubContent{text: "Chapter text."}, nil)

	resp := svc.Generate(context.Background(), GenerationRequest{ContentID: "b", ChapterName: "c", TotalQuestions: 500})
	if resp.Status != StatusError || !strings.Contains(resp.Message, "total_questions") {
		t.Errorf("status = %s, message = %q", resp.Status, resp.Message)
	}
}
