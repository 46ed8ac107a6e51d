// Package walker defines the Walker record — the unit of weighted-ensemble
// sampling that flows through a region tree — and the bound checks applied
// to it on entry and exit of a resampling cycle.
//
// A Walker pairs an opaque simulation state with a probability weight in
// [Pmin, Pmax]. The package makes no commitment about the shape of State:
// it is whatever the paired metric.Metric can project to an image.
package walker
