package region

import (
	"math"
	"sort"
)

// mergeableCount implements the "single" merge method: sort weights
// ascending, find the largest k whose prefix sum is ≤ pmax, and return
// k-1 (0 if k ≤ 1).
func mergeableCount(weights []float64, pmax float64) int {
	if len(weights) == 0 {
		return 0
	}
	sorted := append([]float64(nil), weights...)
	sort.Float64s(sorted)

	sum := 0.0
	k := 0
	for _, w := range sorted {
		next := sum + w
		if next > pmax {
			break
		}
		sum = next
		k++
	}
	if k <= 1 {
		return 0
	}
	return k - 1
}

// maxClonesFor returns the largest c ≥ 0 such that w/(c+1) ≥ pmin and
// (c+1) ≤ maxNumWalkers.
func maxClonesFor(w, pmin float64, maxNumWalkers int) int {
	if pmin <= 0 || w < pmin {
		return 0
	}
	m := int(math.Floor(w/pmin + 1e-9))
	if m > maxNumWalkers {
		m = maxNumWalkers
	}
	if m < 1 {
		return 0
	}
	return m - 1
}

// MaxClonesForWeight returns the largest number of additional clones a
// single walker of the given weight could produce without any output
// falling below pmin or the ensemble exceeding MaxNumWalkers.
func (t *Tree) MaxClonesForWeight(weight float64) int {
	return maxClonesFor(weight, t.pmin, t.maxNumWalkers)
}

// cloneableCount sums maxClonesFor over every walker weight in a leaf.
func cloneableCount(weights []float64, pmin float64, maxNumWalkers int) int {
	total := 0
	for _, w := range weights {
		total += maxClonesFor(w, pmin, maxNumWalkers)
	}
	return total
}
