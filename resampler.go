package wexplore

import (
	"math/rand"

	"github.com/ndonyapour/wexplore-go/balance"
	"github.com/ndonyapour/wexplore-go/decision"
	"github.com/ndonyapour/wexplore-go/metric"
	"github.com/ndonyapour/wexplore-go/region"
	"github.com/ndonyapour/wexplore-go/walker"
)

// cycleState is the state-machine position of a Resampler between calls.
type cycleState int

const (
	stateIdle cycleState = iota
	stateAssigned
	stateDecided
)

// Option configures optional Resampler behavior beyond Config, following
// the same functional-option convention as core.GraphOption.
type Option func(*Resampler)

// WithStrictWeightSum enables a diagnostic: every Assign call checks the
// input ensemble's total weight against 1.0 within epsilon before
// PlaceWalkers runs, returning InvariantError on drift. Off by default.
func WithStrictWeightSum(epsilon float64) Option {
	return func(r *Resampler) {
		r.strictWeightSum = true
		r.weightSumEpsilon = epsilon
	}
}

// Resampler is the WExplore adaptive resampler: a single region.Tree plus
// the state machine that drives one resampling cycle at a time. It is
// single-threaded and synchronous; a Resampler must not be shared across
// goroutines without external synchronization.
type Resampler struct {
	cfg     Config
	tree    *region.Tree
	rng     *rand.Rand
	state   cycleState
	stepIdx int

	strictWeightSum  bool
	weightSumEpsilon float64

	// Per-cycle working state, valid from a successful Assign through the
	// matching Apply/Clear.
	walkers  []walker.Walker
	branches []region.BranchRecord
	delta    int
	plan     *decision.Plan
}

// NewResampler validates cfg, seeds a region.Tree from initState via m,
// and returns a Resampler ready for its first cycle. seed drives the
// injected *rand.Rand used for keeper sampling so runs are reproducible.
func NewResampler(cfg Config, m metric.Metric, initState walker.State, seed int64, opts ...Option) (*Resampler, error) {
	if m == nil {
		return nil, wrap(ConfigErrorKind, "NewResampler", ErrMissingDistanceMetric)
	}
	if err := cfg.validate(); err != nil {
		return nil, wrap(ConfigErrorKind, "NewResampler", err)
	}

	tree, err := region.NewTree(cfg.MaxNRegions, cfg.MaxRegionSizes, cfg.Pmin, cfg.Pmax, cfg.MaxNumWalkers, m, initState)
	if err != nil {
		return nil, wrap(ConfigErrorKind, "NewResampler", err)
	}

	r := &Resampler{
		cfg:   cfg,
		tree:  tree,
		rng:   rand.New(rand.NewSource(seed)),
		state: stateIdle,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Tree returns the Resampler's underlying region tree, for callers that
// need read-only introspection (e.g. reporting the current region count).
func (r *Resampler) Tree() *region.Tree { return r.tree }

// Assign implements the idle->assigned transition: it validates the input
// ensemble's weight bounds, then runs region.Tree.PlaceWalkers, recording
// any new branches. It is the only place a cycle can branch the tree.
func (r *Resampler) Assign(walkers []walker.Walker) error {
	if r.state != stateIdle {
		return wrap(AssignmentErrorKind, "Assign", ErrWrongState)
	}

	if err := walker.ValidateBounds(walkers, r.cfg.Pmin, r.cfg.Pmax); err != nil {
		return wrap(AssignmentErrorKind, "Assign", err)
	}
	if r.strictWeightSum {
		sum := walker.SumWeights(walkers)
		if diff := sum - 1.0; diff > r.weightSumEpsilon || diff < -r.weightSumEpsilon {
			return wrap(InvariantErrorKind, "Assign", ErrWeightSumDrift)
		}
	}

	branches, err := r.tree.PlaceWalkers(walkers)
	if err != nil {
		return wrap(AssignmentErrorKind, "Assign", err)
	}

	r.walkers = walkers
	r.branches = branches
	r.state = stateAssigned

	return nil
}

// Decide implements the assigned->decided transition: it propagates
// deltaWalkers through the tree's balance and settles the resulting
// per-leaf balances into a merge/clone Plan. Tree topology is untouched;
// only Balance fields and the returned Plan are computed.
func (r *Resampler) Decide(deltaWalkers int) error {
	if r.state != stateAssigned {
		return wrap(InvariantErrorKind, "Decide", ErrWrongState)
	}

	if err := balance.Propagate(r.tree, deltaWalkers); err != nil {
		kind := InvariantErrorKind
		switch err {
		case balance.ErrDebitExceedsCapacity, balance.ErrCreditExceedsCapacity:
			kind = CapacityErrorKind
		}
		return wrap(kind, "Decide", err)
	}

	plan, err := decision.Settle(r.tree, len(r.walkers), deltaWalkers, r.rng)
	if err != nil {
		kind := InvariantErrorKind
		switch err {
		case decision.ErrSlotReused, decision.ErrCloneOnMergedWalker:
			kind = DecisionConflictErrorKind
		case decision.ErrCloneBelowPmin:
			// A leaf-level clone that cannot satisfy pmin is the balancer
			// having over-allocated credit beyond what the leaf can
			// actually absorb, a capacity failure surfacing one stage late.
			kind = CapacityErrorKind
		}
		return wrap(kind, "Decide", err)
	}

	r.delta = deltaWalkers
	r.plan = plan
	r.state = stateDecided

	return nil
}

// Apply implements the decided->idle transition: it realizes the Plan
// computed by Decide into the next walker ensemble, then clears per-cycle
// tree bookkeeping so the Resampler is ready to be re-entered. The
// returned walkers are new values; Apply does not mutate its input
// ensemble.
func (r *Resampler) Apply() ([]walker.Walker, []ResamplingRecord, []ResamplerRecord, error) {
	if r.state != stateDecided {
		return nil, nil, nil, wrap(InvariantErrorKind, "Apply", ErrWrongState)
	}

	n := len(r.walkers)
	out := make([]walker.Walker, r.plan.TotalOutputSlots())
	resamplingRecords := make([]ResamplingRecord, n)

	for k := 0; k < n; k++ {
		d := r.plan.Decisions[k]
		switch d.Kind {
		case decision.Squash:
			// no slots, no output contribution
		case decision.Nothing:
			out[d.TargetSlots[0]] = r.walkers[k]
		case decision.KeepMerge:
			w := r.walkers[k].Weight
			for _, squashed := range r.plan.MergeGroups[k] {
				w += r.walkers[squashed].Weight
			}
			out[d.TargetSlots[0]] = walker.New(r.walkers[k].State, w)
		case decision.Clone:
			childWeight := r.walkers[k].Weight / float64(len(d.TargetSlots))
			for _, slot := range d.TargetSlots {
				out[slot] = walker.New(r.walkers[k].State, childWeight)
			}
		}

		resamplingRecords[k] = ResamplingRecord{
			DecisionID:       int(d.Kind),
			TargetIdxs:       d.TargetSlots,
			StepIdx:          r.stepIdx,
			WalkerIdx:        k,
			RegionAssignment: r.tree.WalkerLeaf(k),
		}
	}

	resamplerRecords := make([]ResamplerRecord, len(r.branches))
	for i, b := range r.branches {
		resamplerRecords[i] = branchToResamplerRecord(b)
	}

	r.stepIdx++
	r.walkers = nil
	r.branches = nil
	r.plan = nil
	r.tree.ClearWalkers()
	r.state = stateIdle

	return out, resamplingRecords, resamplerRecords, nil
}

// Clear discards any in-progress cycle (e.g. after Assign or Decide
// returned an error) and restores the Resampler to idle. It is always
// safe to call: tree topology and the image table are never affected.
func (r *Resampler) Clear() {
	r.walkers = nil
	r.branches = nil
	r.plan = nil
	r.tree.ClearWalkers()
	r.state = stateIdle
}

// Resample runs one full idle->assigned->decided->idle cycle: Assign,
// Decide(deltaWalkers), then Apply. On any error it calls Clear before
// returning, so the Resampler is always left idle and ready to retry.
func (r *Resampler) Resample(walkers []walker.Walker, deltaWalkers int) ([]walker.Walker, []ResamplingRecord, []ResamplerRecord, error) {
	if err := r.Assign(walkers); err != nil {
		r.Clear()
		return nil, nil, nil, err
	}
	if err := r.Decide(deltaWalkers); err != nil {
		r.Clear()
		return nil, nil, nil, err
	}
	return r.Apply()
}
