package decision

// DecisionKind is the action the core assigns to a single walker index
// after settling balances into a plan.
type DecisionKind int

const (
	// Nothing means the walker survives unchanged.
	Nothing DecisionKind = iota

	// KeepMerge means the walker survives and absorbs the weight of its
	// merge group's squashed walkers.
	KeepMerge

	// Squash means the walker is destroyed; its weight was transferred to
	// its merge group's keeper.
	Squash

	// Clone means the walker produces clones[k]+1 children.
	Clone
)

// String returns a human-readable name for d.
func (d DecisionKind) String() string {
	switch d {
	case Nothing:
		return "NOTHING"
	case KeepMerge:
		return "KEEP_MERGE"
	case Squash:
		return "SQUASH"
	case Clone:
		return "CLONE"
	default:
		return "UNKNOWN"
	}
}

// WalkerDecision is the realized action for a single walker index: its
// Kind and the target slot indices it occupies in the next ensemble.
type WalkerDecision struct {
	Kind        DecisionKind
	TargetSlots []int
}

// Plan is the full output of Settle: per-walker merge groups, clone
// counts, and the realized action for every walker in the input ensemble.
type Plan struct {
	// MergeGroups[k] lists the walker indices squashed into walker k.
	MergeGroups [][]int

	// Clones[k] is the number of additional children walker k produces.
	Clones []int

	// Decisions[k] is the realized action and target slots for walker k.
	Decisions []WalkerDecision
}

// TotalOutputSlots returns the number of walkers the plan's target slots
// span, i.e. the size of the next ensemble.
func (p *Plan) TotalOutputSlots() int {
	max := -1
	for _, d := range p.Decisions {
		for _, slot := range d.TargetSlots {
			if slot > max {
				max = slot
			}
		}
	}
	return max + 1
}
