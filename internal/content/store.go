// Package content retrieves chapter text for question generation.
//
// Chapters are stored as ordered chunk files; retrieval joins the chunks
// back into a single passage, capped by chunk count and character budget.
package content

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a content id or chapter has no stored text.
var ErrNotFound = errors.New("content: not found")

// Store retrieves chapter text for a content id.
type Store interface {
	// Retrieve returns the chapter's text, joined from its stored chunks.
	// At most maxChunks chunks are read and the result is truncated to
	// maxChars characters. Returns ErrNotFound when the content id or
	// chapter does not exist.
	Retrieve(ctx context.Context, chapterName, contentID string, maxChunks, maxChars int) (string, error)
}
