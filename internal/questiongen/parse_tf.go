package questiongen

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ParseTrueFalseResponse parses a true/false completion into typed records.
// True/false blocks lead with "STATEMENT:" instead of "QUESTION:"; otherwise
// the machinery matches the MCQ parser, minus distractors.
func ParseTrueFalseResponse(text string, seq GenerationSequence, log *zap.Logger) ([]Question, error) {
	blocks := splitBlocks(text, "STATEMENT:")

	var questions []Question
	for i, block := range blocks {
		pair := pairAt(seq, i)
		q := TrueFalseQuestion{
			ID:         uuid.NewString(),
			Difficulty: pair.Difficulty,
			BloomLevel: pair.Bloom,
			Type:       TypeTrueFalse,
		}

		q.Statement, block = fieldBefore(block, "ANSWER:")
		if answer, ok := fieldBetween(block, "ANSWER:", "EXPLANATION:"); ok {
			q.Answer = answer
		}
		if expl, ok := fieldBetween(block, "EXPLANATION:", ""); ok {
			q.Explanation = expl
		}

		if err := q.validate(); err != nil {
			log.Warn("dropping malformed true/false block",
				zap.Int("block", i), zap.Error(err))
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, &ErrNoValidQuestions{Type: TypeTrueFalse}
	}
	return questions, nil
}
