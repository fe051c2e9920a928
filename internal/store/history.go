package store

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// GenerationRecord captures one completed generation request, success or
// failure, for the history table.
type GenerationRecord struct {
	SessionID      string
	ContentID      string
	ChapterName    string
	TotalQuestions int
	Status         string
	Message        string
	FilesGenerated []string
	DurationMs     int64
	CreatedAt      time.Time
}

// LLMRequestRecord captures one call to the text-completion service.
type LLMRequestRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	CreatedAt    time.Time
}

// HistoryRepo records generation outcomes and completion-service calls.
type HistoryRepo interface {
	// RecordGeneration appends one generation outcome.
	RecordGeneration(ctx context.Context, rec GenerationRecord) error

	// RecordLLMRequest appends one completion-service call.
	RecordLLMRequest(ctx context.Context, rec LLMRequestRecord) error

	// RecentGenerations returns up to limit most recent generation records,
	// newest first.
	RecentGenerations(ctx context.Context, limit int) ([]GenerationRecord, error)
}

type historyRepo struct {
	db *sql.DB
}

func (r *historyRepo) RecordGeneration(ctx context.Context, rec GenerationRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO generation_history
			(session_id, content_id, chapter_name, total_questions, status, message, files_generated, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.ContentID, rec.ChapterName, rec.TotalQuestions,
		rec.Status, rec.Message, strings.Join(rec.FilesGenerated, "\n"),
		rec.DurationMs, rec.CreatedAt)
	return err
}

func (r *historyRepo) RecordLLMRequest(ctx context.Context, rec LLMRequestRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	success := 0
	if rec.Success {
		success = 1
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_requests
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Provider, rec.Model, rec.Purpose, rec.InputTokens, rec.OutputTokens,
		rec.LatencyMs, success, rec.ErrorMessage, rec.CreatedAt)
	return err
}

func (r *historyRepo) RecentGenerations(ctx context.Context, limit int) ([]GenerationRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, content_id, chapter_name, total_questions, status, message, files_generated, duration_ms, created_at
		FROM generation_history
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []GenerationRecord
	for rows.Next() {
		var rec GenerationRecord
		var files string
		if err := rows.Scan(&rec.SessionID, &rec.ContentID, &rec.ChapterName,
			&rec.TotalQuestions, &rec.Status, &rec.Message, &files,
			&rec.DurationMs, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if files != "" {
			rec.FilesGenerated = strings.Split(files, "\n")
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
