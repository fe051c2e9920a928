package questiongen

// BuildSequence expands a per-type allocation into the ordered
// (difficulty, bloom) pair list the parser uses to re-attach metadata.
// Entries are visited in allocation order and repeated Count times, the same
// order the prompt builder renders its guideline blocks in, so position i in
// the completion corresponds to position i here. No randomization: the
// pairing is positional and must be reproducible.
func BuildSequence(entries []AllocationEntry) GenerationSequence {
	var seq GenerationSequence
	for _, e := range entries {
		for i := 0; i < e.Count; i++ {
			seq = append(seq, SequencePair{Difficulty: e.Difficulty, Bloom: e.Bloom})
		}
	}
	return seq
}

// totalCount sums the counts of an allocation subset.
func totalCount(entries []AllocationEntry) int {
	n := 0
	for _, e := range entries {
		n += e.Count
	}
	return n
}

// axisWeights recomputes the per-type difficulty and bloom distributions from
// a type group (count over group total per label). The per-type pipelines use
// these for artifact naming, mirroring how the full-request distributions
// describe the whole allocation.
func axisWeights(entries []AllocationEntry) (difficulties, blooms ProportionMap) {
	total := totalCount(entries)
	difficulties = make(ProportionMap)
	blooms = make(ProportionMap)
	if total == 0 {
		return difficulties, blooms
	}
	for _, e := range entries {
		difficulties[e.Difficulty] += float64(e.Count) / float64(total)
		blooms[e.Bloom] += float64(e.Count) / float64(total)
	}
	return difficulties, blooms
}
