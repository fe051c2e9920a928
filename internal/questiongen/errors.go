package questiongen

import "fmt"

// ErrInvalidDistribution indicates a degenerate proportion map: empty, or
// every weight zero or negative.
type ErrInvalidDistribution struct {
	Axis string
}

func (e *ErrInvalidDistribution) Error() string {
	return fmt.Sprintf("invalid %s distribution: no positive weights", e.Axis)
}

// ErrContentNotFound indicates the content store returned nothing for the
// requested chapter. Fatal for the whole request; raised before any dispatch.
type ErrContentNotFound struct {
	ChapterName string
	ContentID   string
}

func (e *ErrContentNotFound) Error() string {
	return fmt.Sprintf("no content found for chapter %q in %q", e.ChapterName, e.ContentID)
}

// ErrCompletionFailed wraps a completion-service failure inside one pipeline.
type ErrCompletionFailed struct {
	Type QuestionType
	Err  error
}

func (e *ErrCompletionFailed) Error() string {
	return fmt.Sprintf("completion failed for %s: %v", e.Type, e.Err)
}

func (e *ErrCompletionFailed) Unwrap() error { return e.Err }

// ErrNoValidQuestions indicates a parse that yielded zero usable records.
// A pipeline failure, not a soft empty result.
type ErrNoValidQuestions struct {
	Type QuestionType
}

func (e *ErrNoValidQuestions) Error() string {
	return fmt.Sprintf("no valid %s questions could be parsed from the completion", e.Type)
}

// ErrUnknownQuestionType indicates grouping encountered an unsupported tag.
type ErrUnknownQuestionType struct {
	Tag string
}

func (e *ErrUnknownQuestionType) Error() string {
	return fmt.Sprintf("unknown question type: %q", e.Tag)
}

// ErrSchedulingFailure indicates the fan-out layer itself failed (as opposed
// to a pipeline reporting an error through its result). Fatal for the request.
type ErrSchedulingFailure struct {
	Err error
}

func (e *ErrSchedulingFailure) Error() string {
	return fmt.Sprintf("pipeline scheduling failure: %v", e.Err)
}

func (e *ErrSchedulingFailure) Unwrap() error { return e.Err }

// errMissingField reports a required field absent from a parsed block.
func errMissingField(field string) error {
	return fmt.Errorf("missing required field %q", field)
}
