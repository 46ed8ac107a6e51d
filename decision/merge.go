package decision

import (
	"math/rand"
	"sort"

	"github.com/ndonyapour/wexplore-go/region"
)

// settleMerge handles a single leaf whose balance is negative: select the
// |balance|+1 lowest-weighted walkers, verify their
// sum is within pmax, sample a keeper proportional to normalized weight,
// and record the rest as squashed into it.
func settleMerge(tree *region.Tree, leaf *region.Node, mergeGroups [][]int, usedInMerge map[int]bool, rng *rand.Rand) error {
	need := -leaf.Balance
	idxs := leaf.WalkerIdxs
	if len(idxs) < need+1 {
		return ErrInsufficientMergeCandidates
	}

	entries := make([]weightedEntry, len(idxs))
	for i, idx := range idxs {
		entries[i] = weightedEntry{idx: idx, weight: tree.WalkerWeight(idx)}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].weight < entries[j].weight })

	chosen := entries[:need+1]
	sum := 0.0
	for _, e := range chosen {
		sum += e.weight
	}
	if sum > tree.Pmax() {
		return ErrMergeExceedsPmax
	}

	keeperPos := weightedSample(rng, chosen)

	for i, e := range chosen {
		usedInMerge[e.idx] = true
		if i == keeperPos {
			continue
		}
		keeperIdx := chosen[keeperPos].idx
		mergeGroups[keeperIdx] = append(mergeGroups[keeperIdx], e.idx)
	}

	return nil
}

// weightedEntry pairs a walker index with its weight for the merge
// keeper-selection and sorting steps.
type weightedEntry struct {
	idx    int
	weight float64
}

// weightedSample draws an index into entries proportional to each entry's
// normalized weight share, using rng so callers can pin the seed.
func weightedSample(rng *rand.Rand, entries []weightedEntry) int {
	sum := 0.0
	for _, e := range entries {
		sum += e.weight
	}
	r := rng.Float64() * sum
	acc := 0.0
	for i, e := range entries {
		acc += e.weight
		if r < acc {
			return i
		}
	}
	return len(entries) - 1
}
