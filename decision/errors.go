package decision

import "errors"

// Sentinel errors raised while settling balances into merge/clone decisions.
var (
	// ErrMergeExceedsPmax indicates a leaf's chosen merge set summed to
	// more than pmax; the balancer should have prevented this.
	ErrMergeExceedsPmax = errors.New("decision: merge group exceeds pmax")

	// ErrInsufficientMergeCandidates indicates a leaf had fewer walkers
	// than its merge decision required.
	ErrInsufficientMergeCandidates = errors.New("decision: leaf has fewer walkers than its merge requires")

	// ErrCloneBelowPmin indicates no feasible assignment of clones could
	// keep every resulting child weight at or above pmin.
	ErrCloneBelowPmin = errors.New("decision: cannot clone without violating pmin")

	// ErrPlanNotConsistent indicates the realized plan's net walker-count
	// change did not equal delta_walkers.
	ErrPlanNotConsistent = errors.New("decision: plan's net change does not equal delta_walkers")

	// ErrSlotReused indicates the same target slot was assigned to more
	// than one walker; verifySlots checks this explicitly rather than
	// trusting realizeActions's bijection by construction.
	ErrSlotReused = errors.New("decision: target slot assigned twice")

	// ErrCloneOnMergedWalker indicates a walker already present in a merge
	// group (as keeper or squash) was also assigned clones.
	ErrCloneOnMergedWalker = errors.New("decision: clone assigned to a walker already in a merge group")
)
