// Package wexplore implements the WExplore adaptive resampler: an online
// clustering and population-control engine for weighted-ensemble molecular
// simulation. It maintains a hierarchy of Voronoi regions over a
// configuration space (package region), assigns a dynamically-sized
// ensemble of weighted walkers to leaves of that hierarchy, propagates
// integer "shares" across the tree to spread sampling effort evenly
// (package balance), and realizes those shares into concrete clone/merge
// decisions (package decision).
//
// This package ties the three together behind a single state machine,
// Resampler, whose Resample method is the one entry point simulation
// managers call once per cycle:
//
//	idle --(assign)--> assigned --(decide)--> decided --(apply)--> idle
//
// Resampler owns no external resources and performs no I/O; the distance
// metric, the MD propagator, and the boundary-condition handler are
// supplied by the caller (see package metric for the one contract this
// package depends on).
package wexplore
