package decision

import (
	"math/rand"

	"github.com/ndonyapour/wexplore-go/region"
)

// Settle walks every region leaf, turns negative balances into merge
// groups and positive balances into clone counts, verifies the resulting
// net change matches
// deltaWalkers, and realizes a bijective Plan over the next ensemble's
// slots.
//
// n is the number of walkers carried into this cycle (the size of the
// ensemble PlaceWalkers was called with). rng drives keeper sampling in
// settleMerge and must be supplied by the caller so runs are reproducible.
func Settle(tree *region.Tree, n int, deltaWalkers int, rng *rand.Rand) (*Plan, error) {
	mergeGroups := make([][]int, n)
	clones := make([]int, n)
	usedInMerge := make(map[int]bool, n)

	leaves := tree.Leaves()

	for _, leafID := range leaves {
		leaf, err := tree.Node(leafID)
		if err != nil {
			return nil, err
		}
		if leaf.Balance < 0 {
			if err := settleMerge(tree, leaf, mergeGroups, usedInMerge, rng); err != nil {
				return nil, err
			}
		}
	}

	for _, leafID := range leaves {
		leaf, err := tree.Node(leafID)
		if err != nil {
			return nil, err
		}
		if leaf.Balance > 0 {
			if err := settleClone(tree, leaf, clones, usedInMerge); err != nil {
				return nil, err
			}
		}
	}

	netChange := 0
	for _, group := range mergeGroups {
		netChange -= len(group)
	}
	for _, c := range clones {
		netChange += c
	}
	if netChange != deltaWalkers {
		return nil, ErrPlanNotConsistent
	}

	for k, c := range clones {
		if c > 0 && usedInMerge[k] {
			return nil, ErrCloneOnMergedWalker
		}
	}

	decisions := realizeActions(n, mergeGroups, clones)
	if err := verifySlots(decisions); err != nil {
		return nil, err
	}

	return &Plan{
		MergeGroups: mergeGroups,
		Clones:      clones,
		Decisions:   decisions,
	}, nil
}
