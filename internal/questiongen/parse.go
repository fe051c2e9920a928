package questiongen

import "strings"

// Shared machinery for the three delimiter parsers. A completion is split on
// the type's leading delimiter into candidate blocks; within a block, known
// sub-delimiters are stripped out in fixed order. A missing sub-delimiter
// yields an empty field, never an error; per-block problems surface later,
// when the typed record fails validation and the block is dropped.

// splitBlocks splits completion text on the leading block delimiter and
// returns the trimmed non-empty fragments in textual order. Text before the
// first delimiter (a preamble the model was told not to emit) survives as a
// fragment here; it produces a record with no answer and is dropped at
// validation.
func splitBlocks(text, delim string) []string {
	var blocks []string
	for _, b := range strings.Split(text, delim) {
		b = strings.TrimSpace(b)
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// fieldBefore returns the trimmed text preceding delim, and the remainder
// beginning at delim. When delim is absent the whole input is the field and
// the remainder is empty.
func fieldBefore(block, delim string) (field, rest string) {
	before, after, found := strings.Cut(block, delim)
	if !found {
		return strings.TrimSpace(block), ""
	}
	return strings.TrimSpace(before), delim + after
}

// fieldBetween extracts the trimmed text between open and the next close
// delimiter. Returns ok=false when open is absent.
func fieldBetween(block, open, close string) (field string, ok bool) {
	_, after, found := strings.Cut(block, open)
	if !found {
		return "", false
	}
	if close != "" {
		if inner, _, found := strings.Cut(after, close); found {
			return strings.TrimSpace(inner), true
		}
	}
	return strings.TrimSpace(after), true
}

// pairAt returns GenerationSequence[i] when the completion produced a block
// for every sequence slot, and an empty pair for unmatched trailing blocks:
// the parse keeps going rather than failing when the model over- or
// under-produces.
func pairAt(seq GenerationSequence, i int) SequencePair {
	if i < len(seq) {
		return seq[i]
	}
	return SequencePair{}
}

// splitAnswerLines breaks a fill-in-the-blank answer field into one answer
// per blank. Lines with a leading "<digits>. " prefix have the numbering
// stripped; other non-empty lines are taken verbatim, which supports both
// numbered and unnumbered multi-blank answers.
func splitAnswerLines(answer string) []string {
	var answers []string
	for _, line := range strings.Split(answer, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if stripped, ok := stripNumberPrefix(line); ok {
			answers = append(answers, stripped)
			continue
		}
		answers = append(answers, line)
	}
	return answers
}

// stripNumberPrefix removes a "<digits>. " prefix when present.
func stripNumberPrefix(line string) (string, bool) {
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i == 0 || !strings.HasPrefix(line[i:], ". ") {
		return "", false
	}
	return strings.TrimSpace(line[i+2:]), true
}
