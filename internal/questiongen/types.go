package questiongen

// QuestionType identifies one of the supported assessment item kinds.
type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeTrueFalse   QuestionType = "tf"
	TypeFillInBlank QuestionType = "fib"
)

// questionTypeOrder is the canonical enumeration order for question types.
// The allocator's cross-product walk and the orchestrator's dispatch both
// follow it, so tie-breaks and "first error wins" are reproducible.
var questionTypeOrder = []string{
	string(TypeMCQ),
	string(TypeFillInBlank),
	string(TypeTrueFalse),
}

// Difficulty levels recognized by the guideline tables. Caller-supplied maps
// may carry other labels; those get a generic guideline description.
const (
	DifficultyBasic        = "basic"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

var difficultyOrder = []string{DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced}

// Bloom's taxonomy levels recognized by the guideline tables.
const (
	BloomRemember = "remember"
	BloomApply    = "apply"
	BloomAnalyze  = "analyze"
)

var bloomOrder = []string{BloomRemember, BloomApply, BloomAnalyze}

// ProportionMap maps a label (question type, difficulty, or Bloom level) to a
// non-negative relative weight. Weights are treated as already-fractional;
// a map that does not sum to 1 scales the allocation accordingly.
type ProportionMap map[string]float64

// AllocationEntry is the exact integer question count for one
// (type, difficulty, bloom) combination. Computed once per request and never
// mutated afterward.
type AllocationEntry struct {
	Type       QuestionType
	Difficulty string
	Bloom      string
	Count      int
}

// SequencePair carries the metadata re-attached to one anonymous parsed block.
type SequencePair struct {
	Difficulty string
	Bloom      string
}

// GenerationSequence is the ordered (difficulty, bloom) list for one question
// type. Its order is the assumed emission order of the completion service and
// is the sole mechanism for recovering per-question metadata.
type GenerationSequence []SequencePair

// Question is the common surface over the three parsed question shapes.
type Question interface {
	// QuestionID returns the unique identifier assigned at parse time.
	QuestionID() string

	// QuestionType returns the type discriminator.
	QuestionType() QuestionType
}

// MCQQuestion is a parsed multiple-choice item.
type MCQQuestion struct {
	ID          string       `json:"question_id"`
	Question    string       `json:"question"`
	Answer      string       `json:"answer"`
	Explanation string       `json:"explanation"`
	Distractors []string     `json:"distractors"`
	Difficulty  string       `json:"difficulty"`
	BloomLevel  string       `json:"blooms_level"`
	Type        QuestionType `json:"question_type"`
}

func (q MCQQuestion) QuestionID() string         { return q.ID }
func (q MCQQuestion) QuestionType() QuestionType { return q.Type }

func (q MCQQuestion) validate() error {
	if q.Question == "" {
		return errMissingField("question")
	}
	if q.Answer == "" {
		return errMissingField("answer")
	}
	return nil
}

// TrueFalseQuestion is a parsed true/false item.
type TrueFalseQuestion struct {
	ID          string       `json:"question_id"`
	Statement   string       `json:"statement"`
	Answer      string       `json:"answer"`
	Explanation string       `json:"explanation"`
	Difficulty  string       `json:"difficulty"`
	BloomLevel  string       `json:"blooms_level"`
	Type        QuestionType `json:"question_type"`
}

func (q TrueFalseQuestion) QuestionID() string         { return q.ID }
func (q TrueFalseQuestion) QuestionType() QuestionType { return q.Type }

func (q TrueFalseQuestion) validate() error {
	if q.Statement == "" {
		return errMissingField("statement")
	}
	if q.Answer == "" {
		return errMissingField("answer")
	}
	return nil
}

// FillInBlankQuestion is a parsed fill-in-the-blank item. Answer holds one
// entry per blank, in blank order.
type FillInBlankQuestion struct {
	ID          string       `json:"question_id"`
	Question    string       `json:"question"`
	Answer      []string     `json:"answer"`
	Explanation string       `json:"explanation"`
	Difficulty  string       `json:"difficulty"`
	BloomLevel  string       `json:"blooms_level"`
	Type        QuestionType `json:"question_type"`
}

func (q FillInBlankQuestion) QuestionID() string         { return q.ID }
func (q FillInBlankQuestion) QuestionType() QuestionType { return q.Type }

func (q FillInBlankQuestion) validate() error {
	if q.Question == "" {
		return errMissingField("question")
	}
	if len(q.Answer) == 0 {
		return errMissingField("answer")
	}
	return nil
}

// PipelineResult is the outcome of one per-type generation pipeline. Exactly
// one of Questions or Err is meaningful at completion.
type PipelineResult struct {
	Type      QuestionType
	Questions []Question
	Artifact  string
	Err       error
}
