package questiongen

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var mcqDistractorDelims = []string{"DISTRACTOR1:", "DISTRACTOR2:", "DISTRACTOR3:"}

// ParseMCQResponse parses a multiple-choice completion into typed records.
// Block i (0-based, textual order) is paired with seq[i] to recover its
// difficulty and Bloom level. Blocks that fail record validation are logged
// and dropped; a parse that yields zero valid records is ErrNoValidQuestions.
func ParseMCQResponse(text string, seq GenerationSequence, log *zap.Logger) ([]Question, error) {
	blocks := splitBlocks(text, "QUESTION:")

	var questions []Question
	for i, block := range blocks {
		pair := pairAt(seq, i)
		q := MCQQuestion{
			ID:         uuid.NewString(),
			Difficulty: pair.Difficulty,
			BloomLevel: pair.Bloom,
			Type:       TypeMCQ,
		}

		q.Question, block = fieldBefore(block, "ANSWER:")
		if answer, ok := fieldBetween(block, "ANSWER:", "EXPLANATION:"); ok {
			q.Answer = answer
		}
		if expl, ok := fieldBetween(block, "EXPLANATION:", "DISTRACTOR1:"); ok {
			q.Explanation = expl
		}
		q.Distractors = parseDistractors(block)

		if err := q.validate(); err != nil {
			log.Warn("dropping malformed MCQ block",
				zap.Int("block", i), zap.Error(err))
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, &ErrNoValidQuestions{Type: TypeMCQ}
	}
	return questions, nil
}

// parseDistractors extracts DISTRACTOR1..3 fields in order. Each field runs
// to the next distractor delimiter, or to end of block for the last one.
// Missing delimiters simply shorten the list.
func parseDistractors(block string) []string {
	var distractors []string
	for i, delim := range mcqDistractorDelims {
		if !strings.Contains(block, delim) {
			continue
		}
		next := ""
		if i+1 < len(mcqDistractorDelims) {
			next = mcqDistractorDelims[i+1]
		}
		if d, ok := fieldBetween(block, delim, next); ok {
			distractors = append(distractors, d)
		}
	}
	return distractors
}
