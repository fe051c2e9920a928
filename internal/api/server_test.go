package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"questgen/internal/questiongen"
)

type stubGenerator struct {
	lastReq questiongen.GenerationRequest
	resp    *questiongen.GenerationResponse
}

func (s *stubGenerator) Generate(_ context.Context, req questiongen.GenerationRequest) *questiongen.GenerationResponse {
	s.lastReq = req
	return s.resp
}

func newTestServer(t *testing.T, gen Generator) *httptest.Server {
	t.Helper()
	srv, err := NewServer(gen, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{})
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestGenerateQuestions(t *testing.T) {
	gen := &stubGenerator{resp: &questiongen.GenerationResponse{
		Status:  questiongen.StatusSuccess,
		Message: "ok",
	}}
	ts := newTestServer(t, gen)

	body := `{
		"contentId": "Biology 101",
		"chapter_name": "Cells",
		"total_questions": 12,
		"learning_objectives": ["LO1"]
	}`
	resp, err := http.Post(ts.URL+"/questionBankService/generateQuestions", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var out questiongen.GenerationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Status != questiongen.StatusSuccess {
		t.Errorf("response status = %s", out.Status)
	}

	if gen.lastReq.ContentID != "Biology 101" || gen.lastReq.TotalQuestions != 12 {
		t.Errorf("decoded request = %+v", gen.lastReq)
	}
	if len(gen.lastReq.LearningObjectives) != 1 || gen.lastReq.LearningObjectives[0] != "LO1" {
		t.Errorf("learning objectives = %v", gen.lastReq.LearningObjectives)
	}
}

func TestGenerateQuestionsErrorStatus(t *testing.T) {
	gen := &stubGenerator{resp: &questiongen.GenerationResponse{
		Status:  questiongen.StatusError,
		Message: "completion failed for tf",
	}}
	ts := newTestServer(t, gen)

	body := `{"contentId": "b", "chapter_name": "c"}`
	resp, err := http.Post(ts.URL+"/questionBankService/generateQuestions", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestGenerateQuestionsRejectsBadBodies(t *testing.T) {
	ts := newTestServer(t, &stubGenerator{})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"not json", "not json at all", http.StatusBadRequest},
		{"missing required fields", `{"total_questions": 5}`, http.StatusUnprocessableEntity},
		{"empty content id", `{"contentId": "", "chapter_name": "c"}`, http.StatusUnprocessableEntity},
		{"total out of range", `{"contentId": "b", "chapter_name": "c", "total_questions": 500}`, http.StatusUnprocessableEntity},
		{"unknown field", `{"contentId": "b", "chapter_name": "c", "bogus": 1}`, http.StatusUnprocessableEntity},
		{"negative weight", `{"contentId": "b", "chapter_name": "c", "question_type_distribution": {"mcq": -1}}`, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/questionBankService/generateQuestions", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}
