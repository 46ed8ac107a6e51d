// Package region: NodeID encoding, Node and Tree types, and the sentinel
// errors raised while building or querying a region tree.
package region

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ndonyapour/wexplore-go/metric"
)

// Sentinel errors for region-tree construction and queries.
var (
	// ErrMissingDistanceMetric indicates a nil metric.Metric was supplied
	// to NewTree.
	ErrMissingDistanceMetric = errors.New("region: distance metric is required")

	// ErrLengthMismatch indicates max_n_regions and max_region_sizes were
	// supplied with differing lengths.
	ErrLengthMismatch = errors.New("region: max_n_regions and max_region_sizes length mismatch")

	// ErrEmptyLevels indicates L (the number of non-root levels) is zero.
	ErrEmptyLevels = errors.New("region: at least one level is required")

	// ErrInvalidMaxNRegions indicates a max_n_regions entry is not positive.
	ErrInvalidMaxNRegions = errors.New("region: max_n_regions entries must be positive")

	// ErrInvalidMaxRegionSize indicates a max_region_sizes entry is negative.
	ErrInvalidMaxRegionSize = errors.New("region: max_region_sizes entries must be non-negative")

	// ErrNodeNotFound indicates a lookup by NodeID found nothing.
	ErrNodeNotFound = errors.New("region: node not found")

	// ErrBranchCapacityExceeded indicates a branching attempt on a parent
	// that is already at max_n_regions for its level.
	ErrBranchCapacityExceeded = errors.New("region: parent has reached max_n_regions")
)

// NodeID is an ordered tuple of non-negative integers identifying a region
// tree node. The root is the empty tuple. A node at depth d has an
// identifier of length d; its parent is the length-(d-1) prefix.
type NodeID []int

// RootID is the identifier of the tree's root: the empty tuple.
func RootID() NodeID { return NodeID{} }

// Depth returns len(id), the node's distance from the root.
func (id NodeID) Depth() int { return len(id) }

// Parent returns the identifier of id's parent. Calling Parent on the root
// is a programming error and panics, mirroring slice out-of-range behavior.
func (id NodeID) Parent() NodeID {
	if len(id) == 0 {
		panic("region: root has no parent")
	}
	p := make(NodeID, len(id)-1)
	copy(p, id[:len(id)-1])
	return p
}

// Child returns the identifier of id's childIdx-th child (birth order).
func (id NodeID) Child(childIdx int) NodeID {
	c := make(NodeID, len(id)+1)
	copy(c, id)
	c[len(id)] = childIdx
	return c
}

// Key returns a deterministic string encoding of id, suitable as a map key
// or as a core.Graph vertex ID. The empty tuple encodes to "root".
func (id NodeID) Key() string {
	if len(id) == 0 {
		return "root"
	}
	parts := make([]string, len(id))
	for i, v := range id {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ".")
}

// Equal reports whether id and other encode the same tuple.
func (id NodeID) Equal(other NodeID) bool {
	if len(id) != len(other) {
		return false
	}
	for i := range id {
		if id[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of id.
func (id NodeID) Clone() NodeID {
	c := make(NodeID, len(id))
	copy(c, id)
	return c
}

// Node is a single region-tree node. The root node has ImageIdx == -1 and
// is never assigned walkers directly; only non-root nodes carry an image.
//
// WalkerIdxs, NMergeable, NCloneable, and Balance are per-cycle bookkeeping,
// reset by Tree.ClearWalkers at the start of every resampling cycle.
type Node struct {
	// ID is this node's identifier.
	ID NodeID

	// ImageIdx indexes into the Tree's image table. -1 for the root.
	ImageIdx int

	// WalkerIdxs lists ensemble indices currently assigned through this node.
	WalkerIdxs []int

	// NMergeable is an upper bound on merges performable under this subtree.
	NMergeable int

	// NCloneable is an upper bound on clones performable under this subtree.
	NCloneable int

	// Balance is the signed share allocation for the current cycle.
	Balance int
}

// NWalkers returns len(WalkerIdxs).
func (n *Node) NWalkers() int { return len(n.WalkerIdxs) }

// Tree is the WExplore region tree: a rooted tree of fixed depth L whose
// non-root nodes each carry a Voronoi image and per-cycle bookkeeping.
//
// Tree is not safe for concurrent use; see the concurrency note on the
// root wexplore package's Resampler type.
type Tree struct {
	maxNRegions    []int
	maxRegionSizes []float64
	pmin, pmax     float64
	maxNumWalkers  int

	distanceMetric metric.Metric

	images []metric.Image // image table; index 0+ only, root has no entry

	nodes    map[string]*Node     // node key -> Node
	children map[string][]NodeID // parent key -> birth-order-sorted child IDs

	// weights holds the current cycle's walker weights, indexed by walker
	// index, populated by PlaceWalkers and cleared by ClearWalkers.
	weights []float64

	// leafOf holds the current cycle's final (post-branch) leaf assignment
	// per walker index, populated by PlaceWalkers and cleared by
	// ClearWalkers.
	leafOf []NodeID
}

// L returns the number of non-root levels.
func (t *Tree) L() int { return len(t.maxNRegions) }

// MaxNRegions returns the per-level sibling cap at level idx.
func (t *Tree) MaxNRegions(level int) int { return t.maxNRegions[level] }

// MaxRegionSize returns the per-level Voronoi radius at level idx.
func (t *Tree) MaxRegionSize(level int) float64 { return t.maxRegionSizes[level] }

// Pmin returns the configured minimum walker weight.
func (t *Tree) Pmin() float64 { return t.pmin }

// Pmax returns the configured maximum walker weight.
func (t *Tree) Pmax() float64 { return t.pmax }

// MaxNumWalkers returns the configured ensemble-size upper bound.
func (t *Tree) MaxNumWalkers() int { return t.maxNumWalkers }

// Node returns the node stored at id, or nil with ErrNodeNotFound.
func (t *Tree) Node(id NodeID) (*Node, error) {
	n, ok := t.nodes[id.Key()]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// NodeByKey returns the node stored under the given core.Graph vertex key
// (as produced by NodeID.Key), or nil with ErrNodeNotFound.
func (t *Tree) NodeByKey(key string) (*Node, error) {
	n, ok := t.nodes[key]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// Children returns id's children in birth order. A missing entry (leaf or
// unknown id) yields a nil slice.
func (t *Tree) Children(id NodeID) []NodeID {
	return t.children[id.Key()]
}

// NodeCount returns the total number of nodes, including the root.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// ImageCount returns the number of images in the image table.
func (t *Tree) ImageCount() int { return len(t.images) }

// Image returns the image stored at idx in the image table.
func (t *Tree) Image(idx int) metric.Image { return t.images[idx] }
