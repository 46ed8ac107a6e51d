// Package region implements the WExplore region tree: a rooted tree of
// fixed depth whose non-root nodes each carry a Voronoi image and
// per-cycle bookkeeping (walker count, mergeable count, cloneable count,
// balance). Assignment descends the tree by nearest-child search; walker
// placement may branch new leaves when an incoming walker lies outside
// every existing region at some level.
//
// The tree never removes nodes and never mutates an image once appended;
// only per-cycle bookkeeping (walker_idxs, n_mergeable, n_cloneable,
// balance) is reset between resampling cycles.
package region
