// Package api exposes question generation over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"

	"questgen/internal/questiongen"
)

// maxRequestBody caps the request body read. Generation requests are small;
// anything bigger is a client error.
const maxRequestBody = 1 << 20

// Generator runs one generation request. The response is always well formed;
// generation failures are reported inside it, not as an error.
type Generator interface {
	Generate(ctx context.Context, req questiongen.GenerationRequest) *questiongen.GenerationResponse
}

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	gen    Generator
	log    *zap.Logger
	schema *jsonschema.Schema
}

// NewServer builds the server. It fails only when the embedded request
// schema does not compile.
func NewServer(gen Generator, log *zap.Logger) (*Server, error) {
	schema, err := compileRequestSchema()
	if err != nil {
		return nil, err
	}
	return &Server{gen: gen, log: log, schema: schema}, nil
}

// Router assembles the chi router with the standard middleware stack.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Post("/questionBankService/generateQuestions", s.handleGenerate)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}
	if err := s.schema.Validate(doc); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var req questiongen.GenerationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := s.gen.Generate(r.Context(), req)

	status := http.StatusOK
	if resp.Status == questiongen.StatusError {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, resp)
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.log.Warn("request rejected", zap.Int("status", status), zap.String("reason", message))
	writeJSON(w, status, map[string]string{"status": "error", "message": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
