package questiongen

import (
	"fmt"
	"strings"
)

var artifactSuffixes = map[QuestionType]string{
	TypeMCQ:         "mcqs",
	TypeTrueFalse:   "tf",
	TypeFillInBlank: "fib",
}

// ArtifactName derives the deterministic artifact filename for one type
// pipeline: sanitized chapter name, the per-type difficulty and Bloom
// distributions as label+percent pairs, an optional learning-objective tag,
// and the type suffix. Distribution labels render in the allocator's
// enumeration order so the same request always yields the same name.
func ArtifactName(chapterName string, difficulties, blooms ProportionMap, qt QuestionType, learningObjectives []string) string {
	parts := []string{
		sanitizeToken(chapterName),
		distributionToken(difficulties, difficultyOrder),
		distributionToken(blooms, bloomOrder),
	}

	if len(learningObjectives) > 0 {
		parts = append(parts, "lo"+sanitizeToken(strings.Join(learningObjectives, "_")))
	}

	suffix, ok := artifactSuffixes[qt]
	if !ok {
		suffix = string(qt)
	}
	parts = append(parts, suffix)

	return strings.Join(parts, "_") + ".json"
}

// distributionToken renders a proportion map as label+percent pairs joined
// with underscores, e.g. "basic30_intermediate30_advanced40".
func distributionToken(m ProportionMap, canonical []string) string {
	var tokens []string
	for _, label := range axisLabels(m, canonical) {
		tokens = append(tokens, fmt.Sprintf("%s%d", sanitizeToken(label), int(m[label]*100)))
	}
	return strings.Join(tokens, "_")
}

// sanitizeToken normalizes every non-alphanumeric rune to an underscore so
// artifact names stay filesystem- and URL-safe.
func sanitizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}
