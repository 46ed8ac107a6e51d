package wexplore

import (
	"github.com/ndonyapour/wexplore-go/metric"
	"github.com/ndonyapour/wexplore-go/region"
)

// ResamplingRecord describes the realized fate of a single walker for a
// single resampling step. One is produced per input walker per call to
// Resample.
type ResamplingRecord struct {
	// DecisionID identifies the decision kind (NOTHING/KEEP_MERGE/SQUASH/
	// CLONE) applied to this walker; see decision.DecisionKind.
	DecisionID int

	// TargetIdxs lists the next ensemble's slot indices this walker's
	// weight was realized into (empty for SQUASH).
	TargetIdxs []int

	// StepIdx is the resampler's monotonically increasing cycle counter.
	StepIdx int

	// WalkerIdx is this walker's index in the input ensemble for this cycle.
	WalkerIdx int

	// RegionAssignment is the leaf this walker was assigned to by
	// PlaceWalkers during this cycle.
	RegionAssignment region.NodeID
}

// ResamplerRecord describes one new branch (region.BranchRecord) created
// during a single cycle's PlaceWalkers call.
type ResamplerRecord struct {
	// BranchingLevel is the tree level at which the branch occurred.
	BranchingLevel int

	// Distance is the distance from the branching walker's image to its
	// nearest existing sibling image at BranchingLevel, the value that
	// exceeded MaxRegionSizes[BranchingLevel].
	Distance float64

	// NewLeafID is the identifier of the newly created leaf at the end of
	// the new spine.
	NewLeafID region.NodeID

	// Image is the Voronoi image seeded for the new branch.
	Image metric.Image

	// ParentID is the branching parent's identifier.
	ParentID region.NodeID
}

// branchToResamplerRecord converts a region.BranchRecord into the public
// ResamplerRecord shape.
func branchToResamplerRecord(b region.BranchRecord) ResamplerRecord {
	return ResamplerRecord{
		BranchingLevel: b.BranchingLevel,
		Distance:       b.Distance,
		NewLeafID:      b.NewLeafID,
		Image:          b.Image,
		ParentID:       b.ParentID,
	}
}
