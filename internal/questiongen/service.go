package questiongen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"questgen/internal/content"
	"questgen/internal/store"
)

// DefaultWorkers bounds how many type pipelines run at once.
const DefaultWorkers = 3

// Service orchestrates a generation request: one content fetch, one
// allocation, one pipeline per question type running concurrently.
type Service struct {
	content  content.Store
	pipeline *TypePipeline
	history  store.HistoryRepo
	log      *zap.Logger
	workers  int
}

// NewService wires the orchestrator. history may be nil; generation records
// are then skipped. workers <= 0 falls back to DefaultWorkers.
func NewService(contentStore content.Store, pipeline *TypePipeline, history store.HistoryRepo, log *zap.Logger, workers int) *Service {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Service{
		content:  contentStore,
		pipeline: pipeline,
		history:  history,
		log:      log,
		workers:  workers,
	}
}

// Generate runs the full request. The returned response is well formed in
// both the success and the error state; the error return is reserved for a
// broken context, never for generation outcomes.
func (s *Service) Generate(ctx context.Context, req GenerationRequest) *GenerationResponse {
	start := time.Now()

	req.ApplyDefaults()

	log := s.log.With(zap.String("session_id", req.SessionID))
	log.Info("processing generation request",
		zap.String("content_id", req.ContentID),
		zap.String("chapter", req.ChapterName),
		zap.Int("total_questions", req.TotalQuestions))

	resp, err := s.generate(ctx, log, req, start)
	if err != nil {
		log.Error("generation failed", zap.Error(err))
		resp = s.errorResponse(req, err)
	}

	s.record(ctx, log, req, resp, time.Since(start))
	return resp
}

func (s *Service) generate(ctx context.Context, log *zap.Logger, req GenerationRequest, start time.Time) (*GenerationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	contentStart := time.Now()
	chapterContent, err := s.content.Retrieve(ctx, req.ChapterName, req.ContentID, req.MaxChunks, req.MaxChars)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, &ErrContentNotFound{ChapterName: req.ChapterName, ContentID: req.ContentID}
		}
		return nil, fmt.Errorf("retrieve content: %w", err)
	}
	if chapterContent == "" {
		return nil, &ErrContentNotFound{ChapterName: req.ChapterName, ContentID: req.ContentID}
	}
	contentTime := time.Since(contentStart)
	log.Info("chapter content retrieved",
		zap.Int("chars", len(chapterContent)),
		zap.Duration("elapsed", contentTime))

	entries, err := Allocate(req.TotalQuestions, req.TypeDistribution, req.DifficultyDistribution, req.BloomDistribution)
	if err != nil {
		return nil, err
	}

	groups, order, err := GroupByType(entries)
	if err != nil {
		return nil, err
	}

	parallelStart := time.Now()
	results, err := s.runPipelines(ctx, req, groups, order, chapterContent)
	if err != nil {
		return nil, err
	}
	parallelTime := time.Since(parallelStart)

	// First pipeline error in dispatch order fails the whole request.
	for _, qt := range order {
		if rerr := results[qt].Err; rerr != nil {
			return nil, rerr
		}
	}

	files := make([]string, 0, len(order))
	data := make(map[string]any, len(order))
	for _, qt := range order {
		r := results[qt]
		if r.Artifact != "" {
			files = append(files, r.Artifact)
		}
		data[string(qt)] = map[string]any{"response": r.Questions}
	}

	loSuffix := ""
	if len(req.LearningObjectives) > 0 {
		loSuffix = fmt.Sprintf(" with learning objectives: %v", []string(req.LearningObjectives))
	}
	message := fmt.Sprintf(
		"Generated %d questions across %d question types for %q, chapter %q%s in %.2fs (content: %.2fs, parallel generation: %.2fs)",
		req.TotalQuestions, len(order), req.ContentID, req.ChapterName, loSuffix,
		time.Since(start).Seconds(), contentTime.Seconds(), parallelTime.Seconds())

	resp := newResponse(req, StatusSuccess, message)
	resp.FilesGenerated = files
	resp.Data = data
	return resp, nil
}

// runPipelines fans out one pipeline per question type on a bounded group.
// Pipeline outcomes travel through the results map, never through the group
// error; a non-nil group error means the scheduling layer itself broke.
func (s *Service) runPipelines(ctx context.Context, req GenerationRequest, groups map[QuestionType][]AllocationEntry, order []QuestionType, chapterContent string) (map[QuestionType]PipelineResult, error) {
	results := make([]PipelineResult, len(order))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, qt := range order {
		i, qt := i, qt
		g.Go(func() error {
			results[i] = s.pipeline.Run(gctx, req, qt, groups[qt], chapterContent)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &ErrSchedulingFailure{Err: err}
	}

	byType := make(map[QuestionType]PipelineResult, len(order))
	for _, r := range results {
		byType[r.Type] = r
	}
	return byType, nil
}

func (s *Service) errorResponse(req GenerationRequest, err error) *GenerationResponse {
	resp := newResponse(req, StatusError, fmt.Sprintf("Error generating questions: %v", err))
	resp.FilesGenerated = []string{}
	resp.Data = map[string]any{}
	return resp
}

func newResponse(req GenerationRequest, status, message string) *GenerationResponse {
	return &GenerationResponse{
		Status:                 status,
		Message:                message,
		SessionID:              req.SessionID,
		ContentID:              req.ContentID,
		ChapterName:            req.ChapterName,
		LearningObjectives:     req.LearningObjectives,
		TotalQuestions:         req.TotalQuestions,
		TypeDistribution:       req.TypeDistribution,
		DifficultyDistribution: req.DifficultyDistribution,
		BloomDistribution:      req.BloomDistribution,
	}
}

// record writes the generation outcome to history. Best effort; bookkeeping
// failures are logged and never surfaced to the caller.
func (s *Service) record(ctx context.Context, log *zap.Logger, req GenerationRequest, resp *GenerationResponse, elapsed time.Duration) {
	if s.history == nil {
		return
	}
	rec := store.GenerationRecord{
		SessionID:      req.SessionID,
		ContentID:      req.ContentID,
		ChapterName:    req.ChapterName,
		TotalQuestions: req.TotalQuestions,
		Status:         resp.Status,
		Message:        resp.Message,
		FilesGenerated: resp.FilesGenerated,
		DurationMs:     elapsed.Milliseconds(),
	}
	if err := s.history.RecordGeneration(ctx, rec); err != nil {
		log.Warn("failed to record generation history", zap.Error(err))
	}
}
