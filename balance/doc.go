// Package balance implements balance propagation over a region.Tree: from
// a root delta (net change in walker count), it recursively dispenses
// integer shares to children subject to their capacity to donate (merges
// available) or accept (clones available), then rebalances siblings by
// largest-to-smallest donation until no beneficial transfer remains.
//
// Propagate walks the tree breadth-first with package bfs so that a
// parent's dispense+rebalance step always completes before its children's
// own step runs, matching the top-down dependency of the algorithm.
package balance
