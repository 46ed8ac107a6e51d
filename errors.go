package wexplore

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a RegionTreeError by which stage of a resampling
// cycle raised it, per the fatal/recovery taxonomy.
type ErrorKind int

const (
	// ConfigErrorKind indicates a missing or invalid constructor parameter.
	ConfigErrorKind ErrorKind = iota

	// AssignmentErrorKind indicates the distance metric failed or malformed
	// inputs reached assignment.
	AssignmentErrorKind

	// CapacityErrorKind indicates a parent could not dispense its debit or
	// credit among its children given their capacities.
	CapacityErrorKind

	// InvariantErrorKind indicates a conservation check failed: leaf
	// balances, plan net change, merge-group weight, or clone weight.
	InvariantErrorKind

	// DecisionConflictErrorKind indicates a target slot was assigned twice
	// or a clone was assigned to an already-merged walker.
	DecisionConflictErrorKind
)

// String returns a human-readable name for k.
func (k ErrorKind) String() string {
	switch k {
	case ConfigErrorKind:
		return "ConfigError"
	case AssignmentErrorKind:
		return "AssignmentError"
	case CapacityErrorKind:
		return "CapacityError"
	case InvariantErrorKind:
		return "InvariantError"
	case DecisionConflictErrorKind:
		return "DecisionConflictError"
	default:
		return "UnknownError"
	}
}

// RegionTreeError wraps a sentinel error from region, balance, decision, or
// this package with the cycle-stage Kind and the operation name that
// surfaced it, so callers can match by errors.Is against the sentinel or by
// Kind against the stage.
type RegionTreeError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *RegionTreeError) Error() string {
	return fmt.Sprintf("wexplore: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *RegionTreeError) Unwrap() error { return e.Err }

// Sentinel errors raised directly by this package's construction and
// state-machine checks.
var (
	// ErrMissingDistanceMetric indicates NewResampler was called with a nil
	// metric.Metric.
	ErrMissingDistanceMetric = errors.New("wexplore: distance metric is nil")

	// ErrUnknownMergeMethod indicates a Config named a merge method other
	// than "single", the only one this core supports.
	ErrUnknownMergeMethod = errors.New("wexplore: unknown merge method")

	// ErrLevelLengthMismatch indicates MaxNRegions and MaxRegionSizes have
	// different lengths.
	ErrLevelLengthMismatch = errors.New("wexplore: MaxNRegions and MaxRegionSizes length mismatch")

	// ErrInvalidWeightBounds indicates Pmin/Pmax are non-positive, reversed,
	// or Pmax exceeds 1.
	ErrInvalidWeightBounds = errors.New("wexplore: invalid pmin/pmax bounds")

	// ErrWrongState indicates assign/decide/apply was called out of the
	// idle/assigned/decided sequence.
	ErrWrongState = errors.New("wexplore: cycle method called in the wrong state")

	// ErrWeightSumDrift indicates WithStrictWeightSum is enabled and the input
	// ensemble's total weight deviated from 1.0 beyond its epsilon.
	ErrWeightSumDrift = errors.New("wexplore: input ensemble weight sum drifted from 1.0")

	// ErrInvalidWalkerCountBounds indicates MinNumWalkers/MaxNumWalkers are
	// non-positive or MinNumWalkers exceeds MaxNumWalkers.
	ErrInvalidWalkerCountBounds = errors.New("wexplore: invalid min/max walker count bounds")

	// ErrNoLevels indicates Config.MaxNRegions is empty (L == 0).
	ErrNoLevels = errors.New("wexplore: at least one level is required")
)

// wrap builds a *RegionTreeError classifying err under kind for op. It
// returns nil if err is nil, so call sites can wrap freely.
func wrap(kind ErrorKind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &RegionTreeError{Kind: kind, Op: op, Err: err}
}
