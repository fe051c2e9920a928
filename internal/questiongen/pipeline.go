package questiongen

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"questgen/internal/artifact"
	"questgen/internal/llm"
)

// TypePipeline runs one question type end to end: prompt, completion, parse,
// artifact persist. Every failure is captured into the returned
// PipelineResult; Run never returns an error and never panics across its
// boundary, so one bad type cannot take down its siblings.
type TypePipeline struct {
	provider  llm.Provider
	sink      artifact.Sink
	log       *zap.Logger
	maxTokens int
}

func NewTypePipeline(provider llm.Provider, sink artifact.Sink, log *zap.Logger, maxTokens int) *TypePipeline {
	return &TypePipeline{
		provider:  provider,
		sink:      sink,
		log:       log,
		maxTokens: maxTokens,
	}
}

func (p *TypePipeline) Run(ctx context.Context, req GenerationRequest, qt QuestionType, entries []AllocationEntry, content string) (result PipelineResult) {
	result.Type = qt
	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("pipeline panic for %s: %v", qt, r)
		}
	}()

	log := p.log.With(zap.String("question_type", string(qt)), zap.String("session_id", req.SessionID))
	log.Info("generating questions", zap.Int("count", totalCount(entries)))

	prompt, err := buildPrompt(qt, content, entries)
	if err != nil {
		result.Err = err
		return result
	}

	ctx = llm.WithPurpose(ctx, "generate_"+string(qt))
	resp, err := p.provider.Complete(ctx, llm.Request{
		Prompt:    prompt,
		MaxTokens: p.maxTokens,
	})
	if err != nil {
		result.Err = &ErrCompletionFailed{Type: qt, Err: err}
		return result
	}

	seq := BuildSequence(entries)
	questions, err := parseResponse(qt, resp.Text, seq, log)
	if err != nil {
		result.Err = err
		return result
	}

	difficulties, blooms := axisWeights(entries)
	name := ArtifactName(req.ChapterName, difficulties, blooms, qt, req.LearningObjectives)

	location, err := p.sink.Persist(ctx, name, questions)
	if err != nil {
		result.Err = fmt.Errorf("persist %s artifact: %w", qt, err)
		return result
	}

	log.Info("questions generated",
		zap.Int("parsed", len(questions)),
		zap.String("artifact", location))

	result.Questions = questions
	result.Artifact = name
	return result
}

func buildPrompt(qt QuestionType, content string, entries []AllocationEntry) (string, error) {
	switch qt {
	case TypeMCQ:
		return BuildMCQPrompt(content, entries), nil
	case TypeTrueFalse:
		return BuildTrueFalsePrompt(content, entries), nil
	case TypeFillInBlank:
		return BuildFillInBlankPrompt(content, entries), nil
	default:
		return "", &ErrUnknownQuestionType{Tag: string(qt)}
	}
}

func parseResponse(qt QuestionType, text string, seq GenerationSequence, log *zap.Logger) ([]Question, error) {
	switch qt {
	case TypeMCQ:
		return ParseMCQResponse(text, seq, log)
	case TypeTrueFalse:
		return ParseTrueFalseResponse(text, seq, log)
	case TypeFillInBlank:
		return ParseFillInBlankResponse(text, seq, log)
	default:
		return nil, &ErrUnknownQuestionType{Tag: string(qt)}
	}
}
