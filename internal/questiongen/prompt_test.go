package questiongen

import (
	"strings"
	"testing"
)

func TestBuildMCQPrompt(t *testing.T) {
	content := "Cells are the basic unit of life."
	entries := []AllocationEntry{
		{Type: TypeMCQ, Difficulty: "basic", Bloom: "remember", Count: 2},
		{Type: TypeMCQ, Difficulty: "advanced", Bloom: "analyze", Count: 1},
	}
	prompt := BuildMCQPrompt(content, entries)

	if !strings.Contains(prompt, content) {
		t.Error("prompt does not carry the chapter content verbatim")
	}
	if !strings.Contains(prompt, "Create exactly 3 multiple-choice questions") {
		t.Error("prompt missing the total question instruction")
	}
	if !strings.Contains(prompt, "For 2 questions at BASIC difficulty and REMEMBER Bloom's level:") {
		t.Error("prompt missing the first guideline block")
	}
	if !strings.Contains(prompt, "- 2 x basic/remember") || !strings.Contains(prompt, "- 1 x advanced/analyze") {
		t.Error("prompt missing distribution lines")
	}
	if !strings.Contains(prompt, "IMPORTANT FORMATTING INSTRUCTIONS") {
		t.Error("prompt missing the no-preamble instruction block")
	}
	if !strings.Contains(prompt, "DISTRACTOR3:") {
		t.Error("prompt missing the MCQ output grammar")
	}

	// Guideline blocks render in allocation order.
	first := strings.Index(prompt, "BASIC difficulty")
	second := strings.Index(prompt, "ADVANCED difficulty")
	if first < 0 || second < 0 || first > second {
		t.Error("guideline blocks out of allocation order")
	}
}

func TestBuildTrueFalsePrompt(t *testing.T) {
	entries := []AllocationEntry{{Type: TypeTrueFalse, Difficulty: "basic", Bloom: "remember", Count: 4}}
	prompt := BuildTrueFalsePrompt("Some chapter.", entries)

	if !strings.Contains(prompt, `"STATEMENT:"`) {
		t.Error("prompt should instruct starting with STATEMENT:")
	}
	if !strings.Contains(prompt, `Either "TRUE" or "FALSE" in all caps`) {
		t.Error("prompt missing the TF answer grammar")
	}
	if strings.Contains(prompt, "DISTRACTOR") {
		t.Error("TF prompt should not mention distractors")
	}
}

func TestBuildFillInBlankPrompt(t *testing.T) {
	entries := []AllocationEntry{{Type: TypeFillInBlank, Difficulty: "intermediate", Bloom: "apply", Count: 2}}
	prompt := BuildFillInBlankPrompt("Some chapter.", entries)

	if !strings.Contains(prompt, "(8 underscores)") {
		t.Error("prompt missing the blank formatting rule")
	}
	if !strings.Contains(prompt, "Create exactly 2 fill-in-the-blank questions") {
		t.Error("prompt missing the total question instruction")
	}
}

func TestGuidelineFallbacks(t *testing.T) {
	if got := DifficultyDescription("expert"); got == "" {
		t.Error("unknown difficulty should fall back to a generic description")
	}
	if got := QuestionGuidelines("evaluate", TypeMCQ); got == "" {
		t.Error("unknown bloom level should fall back to a generic guideline")
	}
}
