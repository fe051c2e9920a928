package questiongen

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ParseFillInBlankResponse parses a fill-in-the-blank completion into typed
// records. The answer field is further split into one answer per blank (see
// splitAnswerLines); everything else matches the MCQ parser, minus
// distractors.
func ParseFillInBlankResponse(text string, seq GenerationSequence, log *zap.Logger) ([]Question, error) {
	blocks := splitBlocks(text, "QUESTION:")

	var questions []Question
	for i, block := range blocks {
		pair := pairAt(seq, i)
		q := FillInBlankQuestion{
			ID:         uuid.NewString(),
			Difficulty: pair.Difficulty,
			BloomLevel: pair.Bloom,
			Type:       TypeFillInBlank,
		}

		q.Question, block = fieldBefore(block, "ANSWER:")
		if answer, ok := fieldBetween(block, "ANSWER:", "EXPLANATION:"); ok {
			q.Answer = splitAnswerLines(answer)
		}
		if expl, ok := fieldBetween(block, "EXPLANATION:", ""); ok {
			q.Explanation = expl
		}

		if err := q.validate(); err != nil {
			log.Warn("dropping malformed fill-in-blank block",
				zap.Int("block", i), zap.Error(err))
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, &ErrNoValidQuestions{Type: TypeFillInBlank}
	}
	return questions, nil
}
