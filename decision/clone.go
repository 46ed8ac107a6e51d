package decision

import (
	"math"

	"github.com/ndonyapour/wexplore-go/region"
)

// cloneCandidate tracks one walker's weight and the clones assigned to it
// so far during a single leaf's settleClone call.
type cloneCandidate struct {
	idx    int
	weight float64
	clones int
}

// settleClone handles a single leaf whose balance is positive: gather
// cloneable candidates, then iteratively assign clones
// one at a time to whichever candidate's effective child weight
// (weight/(clones+2)) is currently highest, until balance clones have been
// assigned.
func settleClone(tree *region.Tree, leaf *region.Node, clones []int, usedInMerge map[int]bool) error {
	need := leaf.Balance

	var candidates []*cloneCandidate
	for _, idx := range leaf.WalkerIdxs {
		if usedInMerge[idx] {
			continue
		}
		w := tree.WalkerWeight(idx)
		if tree.MaxClonesForWeight(w) <= 0 {
			continue
		}
		candidates = append(candidates, &cloneCandidate{idx: idx, weight: w})
	}

	total := 0
	for _, c := range candidates {
		total += tree.MaxClonesForWeight(c.weight)
	}
	if total < need {
		return ErrCloneBelowPmin
	}

	pmin := tree.Pmin()
	for i := 0; i < need; i++ {
		var best *cloneCandidate
		bestEff := math.Inf(-1)
		for _, c := range candidates {
			eff := c.weight / float64(c.clones+2)
			if eff < pmin {
				continue
			}
			if eff > bestEff {
				best = c
				bestEff = eff
			}
		}
		if best == nil {
			return ErrCloneBelowPmin
		}
		best.clones++
	}

	for _, c := range candidates {
		clones[c.idx] = c.clones
	}

	return nil
}
