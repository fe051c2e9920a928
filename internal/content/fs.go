package content

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FSStore serves chapter text from a directory tree:
//
//	base/<contentID>/index.json          chapter title -> directory name
//	base/<contentID>/<chapter>/<NNN>.txt ordered chunk files
//
// index.json is optional; without it the chapter title itself (with
// separators normalized to underscores) is used as the directory name.
type FSStore struct {
	base string
}

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./content"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

func (s *FSStore) Retrieve(ctx context.Context, chapterName, contentID string, maxChunks, maxChars int) (string, error) {
	if contentID == "" || chapterName == "" {
		return "", ErrNotFound
	}

	contentDir := filepath.Join(s.base, filepath.Clean(contentID))
	if _, err := os.Stat(contentDir); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat content dir: %w", err)
	}

	chapterDir := filepath.Join(contentDir, s.chapterDirName(contentDir, chapterName))
	entries, err := os.ReadDir(chapterDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read chapter dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	if maxChunks > 0 && len(names) > maxChunks {
		names = names[:maxChunks]
	}

	var b strings.Builder
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		data, err := os.ReadFile(filepath.Join(chapterDir, name))
		if err != nil {
			return "", fmt.Errorf("read chunk %s: %w", name, err)
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.Write(data)
		if maxChars > 0 && b.Len() >= maxChars {
			break
		}
	}

	text := strings.TrimSpace(b.String())
	if maxChars > 0 && len(text) > maxChars {
		text = text[:maxChars]
	}
	if text == "" {
		return "", ErrNotFound
	}
	return text, nil
}

// chapterDirName resolves a chapter title to its directory, consulting
// index.json when present.
func (s *FSStore) chapterDirName(contentDir, chapterName string) string {
	data, err := os.ReadFile(filepath.Join(contentDir, "index.json"))
	if err == nil {
		var index map[string]string
		if json.Unmarshal(data, &index) == nil {
			if dir, ok := index[chapterName]; ok {
				return filepath.Clean(dir)
			}
		}
	}
	return normalizeChapter(chapterName)
}

func normalizeChapter(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
