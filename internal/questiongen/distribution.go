package questiongen

import (
	"math"
	"sort"
)

// Allocate computes the exact integer question count for every combination in
// the cross product of the three proportion maps, using the largest-remainder
// method:
//
//  1. exact = total * typeWeight * difficultyWeight * bloomWeight
//  2. each combination starts at floor(exact)
//  3. the shortfall against total is awarded one unit at a time to the
//     combinations with the largest fractional part, ties broken by the
//     combination's position in the enumeration (type outer, difficulty
//     middle, bloom inner)
//  4. zero-count combinations are dropped
//
// The returned counts always sum to exactly total, including for weight maps
// that do not individually sum to 1 (callers' weights are taken as-is; the
// scaling that results is intentional).
func Allocate(total int, types, difficulties, blooms ProportionMap) ([]AllocationEntry, error) {
	if err := checkAxis("question type", types); err != nil {
		return nil, err
	}
	if err := checkAxis("difficulty", difficulties); err != nil {
		return nil, err
	}
	if err := checkAxis("blooms", blooms); err != nil {
		return nil, err
	}

	type combo struct {
		entry AllocationEntry
		exact float64
		order int
	}

	typeLabels := axisLabels(types, questionTypeOrder)
	diffLabels := axisLabels(difficulties, difficultyOrder)
	bloomLabels := axisLabels(blooms, bloomOrder)

	var combos []combo
	assigned := 0
	for _, t := range typeLabels {
		for _, d := range diffLabels {
			for _, b := range bloomLabels {
				exact := float64(total) * types[t] * difficulties[d] * blooms[b]
				count := int(math.Floor(exact))
				combos = append(combos, combo{
					entry: AllocationEntry{
						Type:       QuestionType(t),
						Difficulty: d,
						Bloom:      b,
						Count:      count,
					},
					exact: exact,
					order: len(combos),
				})
				assigned += count
			}
		}
	}

	// Award the shortfall to the largest fractional parts. SliceStable keeps
	// the enumeration order for equal remainders, which makes the allocation
	// reproducible across runs.
	remainder := total - assigned
	ranked := make([]*combo, len(combos))
	for i := range combos {
		ranked[i] = &combos[i]
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		fi := ranked[i].exact - math.Floor(ranked[i].exact)
		fj := ranked[j].exact - math.Floor(ranked[j].exact)
		return fi > fj
	})
	for i := 0; i < remainder && i < len(ranked); i++ {
		ranked[i].entry.Count++
	}

	var entries []AllocationEntry
	for _, c := range combos {
		if c.entry.Count > 0 {
			entries = append(entries, c.entry)
		}
	}
	return entries, nil
}

// checkAxis rejects degenerate proportion maps.
func checkAxis(name string, m ProportionMap) error {
	for _, w := range m {
		if w > 0 {
			return nil
		}
	}
	return &ErrInvalidDistribution{Axis: name}
}

// axisLabels fixes an enumeration order for one axis: canonical labels first,
// in their declared order, then any caller-supplied extras sorted
// lexicographically. Go maps iterate in random order, so the order has to be
// pinned here for the remainder tie-break to be deterministic.
func axisLabels(m ProportionMap, canonical []string) []string {
	labels := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, l := range canonical {
		if _, ok := m[l]; ok {
			labels = append(labels, l)
			seen[l] = true
		}
	}
	var extra []string
	for l := range m {
		if !seen[l] {
			extra = append(extra, l)
		}
	}
	sort.Strings(extra)
	return append(labels, extra...)
}

// GroupByType splits an allocation into per-type entry sets, preserving the
// allocator's entry order within each group. The returned type keys follow
// the canonical enumeration order. An unsupported tag fails the grouping.
func GroupByType(entries []AllocationEntry) (map[QuestionType][]AllocationEntry, []QuestionType, error) {
	groups := make(map[QuestionType][]AllocationEntry)
	var order []QuestionType
	for _, e := range entries {
		switch e.Type {
		case TypeMCQ, TypeTrueFalse, TypeFillInBlank:
		default:
			return nil, nil, &ErrUnknownQuestionType{Tag: string(e.Type)}
		}
		if _, ok := groups[e.Type]; !ok {
			order = append(order, e.Type)
		}
		groups[e.Type] = append(groups[e.Type], e)
	}
	return groups, order, nil
}
