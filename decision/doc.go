// Package decision converts each leaf's signed balance into merge groups
// (lowest-weight walkers coalesced subject to pmax) and clone counts
// (highest-effective-child-weight walkers split subject to pmin), and then
// realizes those decisions into a bijective plan of target ensemble slots.
package decision
