// Package walker: Walker type, weight bounds, and sentinel errors for the
// ensemble-level checks a resampling cycle performs on entry and exit.
package walker

import "errors"

// Sentinel errors for walker-ensemble validation.
var (
	// ErrNoWalkers indicates an empty ensemble was passed where at least one
	// walker is required.
	ErrNoWalkers = errors.New("walker: ensemble is empty")

	// ErrWeightOutOfBounds indicates a walker's weight falls outside [pmin, pmax].
	ErrWeightOutOfBounds = errors.New("walker: weight out of [pmin, pmax] bounds")

	// ErrWeightSumDrift indicates the ensemble's total weight drifted too far
	// from 1.0. No function in this module returns it; the Resampler's
	// optional weight-sum check reports wexplore.ErrWeightSumDrift instead.
	ErrWeightSumDrift = errors.New("walker: total weight drifted from 1.0 beyond tolerance")
)

// State is the opaque simulation state carried by a Walker. The core makes
// no commitment about its representation; only the paired metric.Metric
// knows how to project it to an image.
type State = interface{}

// Walker is a single weighted replica of the simulated system.
//
// State is immutable during a resampling cycle; Weight must lie in
// [pmin, pmax] both on entry and on exit of every cycle.
type Walker struct {
	// State is the simulation state carried by this walker.
	State State

	// Weight is this walker's share of total ensemble probability.
	Weight float64
}

// New returns a Walker with the given state and weight. It performs no
// validation; use ValidateBounds against the resampler's configured
// [pmin, pmax] before the weight is trusted.
func New(state State, weight float64) Walker {
	return Walker{State: state, Weight: weight}
}

// ValidateBounds checks that every walker's weight lies within [pmin, pmax].
// Complexity: O(n).
func ValidateBounds(walkers []Walker, pmin, pmax float64) error {
	if len(walkers) == 0 {
		return ErrNoWalkers
	}
	for i := range walkers {
		w := walkers[i].Weight
		if w < pmin || w > pmax {
			return ErrWeightOutOfBounds
		}
	}
	return nil
}

// SumWeights returns the total weight of the ensemble. Complexity: O(n).
func SumWeights(walkers []Walker) float64 {
	var total float64
	for i := range walkers {
		total += walkers[i].Weight
	}
	return total
}
