// Package artifact persists generated question batches as JSON files.
package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sink writes one question batch under a derived filename.
type Sink interface {
	// Persist writes records wrapped in a {"response": ...} envelope and
	// returns the location it wrote to.
	Persist(ctx context.Context, filename string, records any) (string, error)
}

// FSSink writes artifacts into a single directory.
type FSSink struct {
	base string
}

func NewFSSink(base string) (*FSSink, error) {
	if base == "" {
		base = "./output"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSSink{base: base}, nil
}

func (s *FSSink) Persist(ctx context.Context, filename string, records any) (string, error) {
	if filename == "" {
		return "", errors.New("empty filename")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	envelope := map[string]any{"response": records}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal artifact: %w", err)
	}

	dst := filepath.Join(s.base, filepath.Clean(filename))
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return dst, nil
}
