package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeChunks(t *testing.T, dir string, chunks ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for i, c := range chunks {
		name := filepath.Join(dir, fmt.Sprintf("%03d.txt", i))
		if err := os.WriteFile(name, []byte(c), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFSStoreRetrieve(t *testing.T) {
	base := t.TempDir()
	writeChunks(t, filepath.Join(base, "book1", "Chapter_1"), "first chunk", "second chunk")

	s, err := NewFSStore(base)
	if err != nil {
		t.Fatal(err)
	}

	text, err := s.Retrieve(context.Background(), "Chapter 1", "book1", 200, 100000)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "first chunk") || !strings.Contains(text, "second chunk") {
		t.Errorf("text = %q", text)
	}
	if strings.Index(text, "first chunk") > strings.Index(text, "second chunk") {
		t.Error("chunks out of order")
	}
}

func TestFSStoreRetrieveViaIndex(t *testing.T) {
	base := t.TempDir()
	writeChunks(t, filepath.Join(base, "book1", "ch-one"), "indexed chunk")
	index := `{"Chapter One: The Beginning": "ch-one"}`
	if err := os.WriteFile(filepath.Join(base, "book1", "index.json"), []byte(index), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := NewFSStore(base)
	if err != nil {
		t.Fatal(err)
	}
	text, err := s.Retrieve(context.Background(), "Chapter One: The Beginning", "book1", 200, 100000)
	if err != nil {
		t.Fatal(err)
	}
	if text != "indexed chunk" {
		t.Errorf("text = %q", text)
	}
}

func TestFSStoreRetrieveMaxChunks(t *testing.T) {
	base := t.TempDir()
	writeChunks(t, filepath.Join(base, "book1", "Ch"), "one", "two", "three")

	s, _ := NewFSStore(base)
	text, err := s.Retrieve(context.Background(), "Ch", "book1", 2, 100000)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(text, "three") {
		t.Errorf("chunk cap ignored: %q", text)
	}
}

func TestFSStoreRetrieveMaxChars(t *testing.T) {
	base := t.TempDir()
	writeChunks(t, filepath.Join(base, "book1", "Ch"), strings.Repeat("a", 5000))

	s, _ := NewFSStore(base)
	text, err := s.Retrieve(context.Background(), "Ch", "book1", 200, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(text) > 1000 {
		t.Errorf("text length = %d", len(text))
	}
}

func TestFSStoreRetrieveNotFound(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Retrieve(context.Background(), "Ch", "missing-book", 200, 100000)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestFSStoreRetrieveEmptyChapter(t *testing.T) {
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "book1", "Ch"), 0o755); err != nil {
		t.Fatal(err)
	}
	s, _ := NewFSStore(base)
	_, err := s.Retrieve(context.Background(), "Ch", "book1", 200, 100000)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
