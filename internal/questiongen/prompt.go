package questiongen

import (
	"fmt"
	"strings"
)

// promptSpec carries the per-type pieces of the generation prompt. The three
// question types share one renderer; only the item noun, the leading
// delimiter, the output grammar, and the quality checklist differ.
type promptSpec struct {
	// noun names the item kind in the preamble, e.g. "multiple-choice questions".
	noun string

	// leadDelimiter is the token each block must start with ("QUESTION:" or
	// "STATEMENT:"). Rendered into the no-preamble instruction.
	leadDelimiter string

	// extraFormatting holds type-specific formatting bullets appended to the
	// no-preamble instruction block. May be empty.
	extraFormatting []string

	// qualityPoints is the numbered "Each question should" checklist.
	qualityPoints []string

	// grammar is the exact output format block, one line per field.
	grammar string
}

var mcqPromptSpec = promptSpec{
	noun:          "multiple-choice questions",
	leadDelimiter: "QUESTION:",
	qualityPoints: []string{
		"Match the specified difficulty and Bloom's taxonomy level",
		"Present scenarios appropriate to the cognitive level required",
		"Use domain-specific terminology accurately",
		"Include strong distractors that reflect common misconceptions",
	},
	grammar: `QUESTION: [Question text appropriate to difficulty and Bloom's level]
ANSWER: [Correct answer]
EXPLANATION: [Explanation of correct answer and why it demonstrates the required cognitive level]
DISTRACTOR1: [First incorrect option]
DISTRACTOR2: [Second incorrect option]
DISTRACTOR3: [Third incorrect option]`,
}

var tfPromptSpec = promptSpec{
	noun:          "true/false questions",
	leadDelimiter: "STATEMENT:",
	qualityPoints: []string{
		"Match the specified difficulty and Bloom's taxonomy level",
		"Present clear statements appropriate to the cognitive level required",
		"Use domain-specific terminology accurately",
		`Avoid making statements true/false based on single words like "always", "never", or "all"`,
		"Be balanced (aim for approximately 50% true and 50% false statements)",
		"For false statements, make them plausible but clearly incorrect based on the chapter",
	},
	grammar: `STATEMENT: [A clear statement that is either true or false, appropriate to difficulty and Bloom's level]
ANSWER: [Either "TRUE" or "FALSE" in all caps]
EXPLANATION: [Explanation of why the statement is true or false, with reference to chapter content and demonstration of required cognitive level]`,
}

var fibPromptSpec = promptSpec{
	noun:          "fill-in-the-blank questions",
	leadDelimiter: "QUESTION:",
	extraFormatting: []string{
		`Each blank should be indicated by "________" (8 underscores)`,
		"A question may have multiple blanks if appropriate",
	},
	qualityPoints: []string{
		"Match the specified difficulty and Bloom's taxonomy level",
		"Present statements appropriate to the cognitive level required",
		"Use domain-specific terminology accurately",
		"Focus on important concepts from the chapter",
	},
	grammar: `QUESTION: [Statement with ________ for blanks, appropriate to difficulty and Bloom's level]
ANSWER: [Correct answer(s) that should fill the blank(s), if multiple blanks, list each answer separately]
EXPLANATION: [Explanation of why this is the correct answer and how it demonstrates the required cognitive level]`,
}

// BuildMCQPrompt renders the generation instruction for a multiple-choice
// pipeline. Entries must be the MCQ slice of the request's allocation, in
// allocation order: the guideline blocks render in that order and the
// response parser re-pairs metadata by the same order.
func BuildMCQPrompt(content string, entries []AllocationEntry) string {
	return renderPrompt(mcqPromptSpec, TypeMCQ, content, entries)
}

// BuildTrueFalsePrompt renders the generation instruction for a true/false
// pipeline.
func BuildTrueFalsePrompt(content string, entries []AllocationEntry) string {
	return renderPrompt(tfPromptSpec, TypeTrueFalse, content, entries)
}

// BuildFillInBlankPrompt renders the generation instruction for a
// fill-in-the-blank pipeline.
func BuildFillInBlankPrompt(content string, entries []AllocationEntry) string {
	return renderPrompt(fibPromptSpec, TypeFillInBlank, content, entries)
}

func renderPrompt(spec promptSpec, qt QuestionType, content string, entries []AllocationEntry) string {
	total := totalCount(entries)

	var b strings.Builder

	fmt.Fprintf(&b, "You are a professor writing sophisticated %s for an upper-level university course. The questions will be based on this chapter content:\n\n", spec.noun)
	b.WriteString(content)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Create exactly %d %s following these specific guidelines:\n\n", total, spec.noun)
	for _, e := range entries {
		fmt.Fprintf(&b, "For %d questions at %s difficulty and %s Bloom's level:\n", e.Count, strings.ToUpper(e.Difficulty), strings.ToUpper(e.Bloom))
		fmt.Fprintf(&b, "- Difficulty: %s\n", DifficultyDescription(e.Difficulty))
		fmt.Fprintf(&b, "- Bloom's Level Guidelines: %s\n\n", QuestionGuidelines(e.Bloom, qt))
	}

	b.WriteString("IMPORTANT FORMATTING INSTRUCTIONS:\n")
	fmt.Fprintf(&b, "- Start IMMEDIATELY with your first question using %q\n", spec.leadDelimiter)
	b.WriteString(`- DO NOT write ANY introductory text like "Based on the chapter..." or "I'll create..."` + "\n")
	b.WriteString("- DO NOT include ANY preamble or explanation before the first question\n")
	for _, line := range spec.extraFormatting {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	b.WriteString("\nEach question should:\n")
	for i, p := range spec.qualityPoints {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}

	b.WriteString("\nFormat each question exactly as follows:\n")
	b.WriteString(spec.grammar)
	b.WriteString("\n\nDistribution of questions:\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "- %d x %s/%s\n", e.Count, e.Difficulty, e.Bloom)
	}

	b.WriteString("\nMake sure to vary the cognitive demands according to the Bloom's taxonomy levels specified.\n")
	b.WriteString("\nFollow these guidelines:\n")
	b.WriteString(authoringGuidelines)

	return b.String()
}
