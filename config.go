package wexplore

// MergeMethodSingle is the only merge policy this core implements: within
// a leaf, at most one merge group forms per cycle.
const MergeMethodSingle = "single"

// Config carries the tree parameters that are immutable after
// construction, plus the one merge-policy knob the source exposes. It is
// consumed once by NewResampler.
type Config struct {
	// MaxNRegions is the per-level cap on siblings under a common parent.
	// Its length fixes L, the tree's depth.
	MaxNRegions []int

	// MaxRegionSizes is the per-level Voronoi radius. Monotonically
	// non-increasing in practice, but not required.
	MaxRegionSizes []float64

	// Pmin and Pmax bound every walker's weight: 0 < Pmin < Pmax <= 1.
	Pmin, Pmax float64

	// MaxNumWalkers and MinNumWalkers bound the ensemble size.
	MaxNumWalkers, MinNumWalkers int

	// MergeMethod names the merge policy. Empty defaults to
	// MergeMethodSingle, the only value this core supports.
	MergeMethod string
}

// validate checks the construction-time invariants: matching
// MaxNRegions/MaxRegionSizes lengths, a known MergeMethod, sane weight
// bounds, and sane walker-count bounds. Per-level value checks
// (positive MaxNRegions entries, non-negative MaxRegionSizes entries) are
// deferred to region.NewTree, which owns that validation.
func (c Config) validate() error {
	if len(c.MaxNRegions) == 0 {
		return ErrNoLevels
	}
	if len(c.MaxNRegions) != len(c.MaxRegionSizes) {
		return ErrLevelLengthMismatch
	}
	if c.MergeMethod != "" && c.MergeMethod != MergeMethodSingle {
		return ErrUnknownMergeMethod
	}
	if c.Pmin <= 0 || c.Pmax <= 0 || c.Pmin >= c.Pmax || c.Pmax > 1 {
		return ErrInvalidWeightBounds
	}
	if c.MinNumWalkers <= 0 || c.MaxNumWalkers <= 0 || c.MinNumWalkers > c.MaxNumWalkers {
		return ErrInvalidWalkerCountBounds
	}
	return nil
}

// mergeMethod returns the effective merge method, defaulting empty to
// MergeMethodSingle.
func (c Config) mergeMethod() string {
	if c.MergeMethod == "" {
		return MergeMethodSingle
	}
	return c.MergeMethod
}
