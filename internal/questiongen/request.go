package questiongen

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Request bounds. Totals outside 1..100 are rejected rather than clamped.
const (
	MinTotalQuestions = 1
	MaxTotalQuestions = 100

	DefaultMaxChunks = 200
	MaxMaxChunks     = 1000

	DefaultMaxChars = 100000
	MinMaxChars     = 1000
	MaxMaxChars     = 500000
)

// LearningObjectives accepts either a single string or a list of strings on
// the wire; clients send both shapes.
type LearningObjectives []string

func (lo *LearningObjectives) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*lo = nil
		} else {
			*lo = LearningObjectives{single}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("learning_objectives must be a string or a list of strings")
	}
	*lo = many
	return nil
}

// GenerationRequest describes one question generation job.
type GenerationRequest struct {
	ContentID          string             `json:"contentId"`
	ChapterName        string             `json:"chapter_name"`
	LearningObjectives LearningObjectives `json:"learning_objectives,omitempty"`
	TotalQuestions     int                `json:"total_questions"`

	TypeDistribution       ProportionMap `json:"question_type_distribution"`
	DifficultyDistribution ProportionMap `json:"difficulty_distribution"`
	BloomDistribution      ProportionMap `json:"blooms_taxonomy_distribution"`

	SessionID string `json:"session_id"`
	MaxChunks int    `json:"max_chunks"`
	MaxChars  int    `json:"max_chars"`
}

// ApplyDefaults fills unset fields in place. Zero-valued counts get the
// standard request defaults; a missing session id gets a fresh UUID.
func (r *GenerationRequest) ApplyDefaults() {
	if r.TotalQuestions == 0 {
		r.TotalQuestions = 10
	}
	if len(r.TypeDistribution) == 0 {
		r.TypeDistribution = ProportionMap{"mcq": 0.4, "fib": 0.3, "tf": 0.3}
	}
	if len(r.DifficultyDistribution) == 0 {
		r.DifficultyDistribution = ProportionMap{"basic": 0.3, "intermediate": 0.3, "advanced": 0.4}
	}
	if len(r.BloomDistribution) == 0 {
		r.BloomDistribution = ProportionMap{"remember": 0.3, "apply": 0.4, "analyze": 0.3}
	}
	if r.SessionID == "" {
		r.SessionID = uuid.NewString()
	}
	if r.MaxChunks == 0 {
		r.MaxChunks = DefaultMaxChunks
	}
	if r.MaxChars == 0 {
		r.MaxChars = DefaultMaxChars
	}
}

// Validate checks field bounds. Distribution contents are validated later by
// the allocator; this only covers the request envelope.
func (r *GenerationRequest) Validate() error {
	if r.ContentID == "" {
		return fmt.Errorf("contentId is required")
	}
	if r.ChapterName == "" {
		return fmt.Errorf("chapter_name is required")
	}
	if r.TotalQuestions < MinTotalQuestions || r.TotalQuestions > MaxTotalQuestions {
		return fmt.Errorf("total_questions must be between %d and %d, got %d",
			MinTotalQuestions, MaxTotalQuestions, r.TotalQuestions)
	}
	if r.MaxChunks < 1 || r.MaxChunks > MaxMaxChunks {
		return fmt.Errorf("max_chunks must be between 1 and %d, got %d", MaxMaxChunks, r.MaxChunks)
	}
	if r.MaxChars < MinMaxChars || r.MaxChars > MaxMaxChars {
		return fmt.Errorf("max_chars must be between %d and %d, got %d", MinMaxChars, MaxMaxChars, r.MaxChars)
	}
	return nil
}

// GenerationResponse echoes the request parameters alongside the outcome.
// It is well formed in both the success and the error state.
type GenerationResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`

	SessionID          string             `json:"session_id"`
	ContentID          string             `json:"contentId"`
	ChapterName        string             `json:"chapter_name"`
	LearningObjectives LearningObjectives `json:"learning_objectives,omitempty"`
	TotalQuestions     int                `json:"total_questions"`

	TypeDistribution       ProportionMap `json:"question_type_distribution"`
	DifficultyDistribution ProportionMap `json:"difficulty_distribution"`
	BloomDistribution      ProportionMap `json:"blooms_taxonomy_distribution"`

	FilesGenerated []string       `json:"files_generated"`
	Data           map[string]any `json:"data"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)
