package region

import (
	"github.com/ndonyapour/wexplore-go/metric"
	"github.com/ndonyapour/wexplore-go/walker"
)

// BranchRecord describes a single new leaf created by PlaceWalkers.
type BranchRecord struct {
	BranchingLevel int
	Distance       float64
	NewLeafID      NodeID
	Image          metric.Image

	// ParentID is the node under which the new leaf's first ancestor was
	// created (the branching parent).
	ParentID NodeID
}

// ClearWalkers resets per-cycle bookkeeping (WalkerIdxs, NMergeable,
// NCloneable, Balance) on every node to its zero value without discarding
// tree topology or the image table.
func (t *Tree) ClearWalkers() {
	for _, n := range t.nodes {
		n.WalkerIdxs = nil
		n.NMergeable = 0
		n.NCloneable = 0
		n.Balance = 0
	}
	t.weights = nil
	t.leafOf = nil
}

// PlaceWalkers clears per-node bookkeeping, then assigns each walker to a
// leaf (branching new regions as needed), then rolls up mergeable/
// cloneable counts from leaves to the root.
//
// Weights are not validated against [pmin, pmax] here; callers are
// expected to have validated the ensemble (see package walker) beforehand.
func (t *Tree) PlaceWalkers(walkers []walker.Walker) ([]BranchRecord, error) {
	t.ClearWalkers()
	t.weights = make([]float64, len(walkers))
	t.leafOf = make([]NodeID, len(walkers))

	var branches []BranchRecord

	for idx, w := range walkers {
		t.weights[idx] = w.Weight

		img, err := t.distanceMetric.Image(w.State)
		if err != nil {
			return nil, err
		}
		leaf, distances, err := t.assignImage(img)
		if err != nil {
			return nil, err
		}

		final := leaf
		for level := 0; level < len(distances); level++ {
			if distances[level] <= t.maxRegionSizes[level] {
				continue
			}
			parent := NodeID(leaf[:level])
			if len(t.children[parent.Key()]) >= t.maxNRegions[level] {
				continue
			}
			rec, newLeaf, err := t.branchTree(parent, img, level, distances[level])
			if err != nil {
				return nil, err
			}
			branches = append(branches, rec)
			final = newLeaf
			break
		}

		t.appendWalker(final, idx)
	}

	t.rollupAccounting()

	return branches, nil
}

// branchTree allocates a new image index, creates a new child under
// parent, and extends a new single-child spine down to depth L, mirroring
// the spine seeded by NewTree. It returns the branch record and the new
// leaf's identifier.
func (t *Tree) branchTree(parent NodeID, img metric.Image, level int, distance float64) (BranchRecord, NodeID, error) {
	newChildIdx := len(t.children[parent.Key()])
	newNodeID := parent.Child(newChildIdx)

	imgIdx := len(t.images)
	t.images = append(t.images, img)

	node := &Node{ID: newNodeID, ImageIdx: imgIdx}
	t.nodes[newNodeID.Key()] = node
	t.children[parent.Key()] = append(t.children[parent.Key()], newNodeID)

	cur := newNodeID
	for lvl := level + 1; lvl < t.L(); lvl++ {
		child := cur.Child(0)
		childNode := &Node{ID: child, ImageIdx: imgIdx}
		t.nodes[child.Key()] = childNode
		t.children[cur.Key()] = []NodeID{child}
		cur = child
	}

	rec := BranchRecord{
		BranchingLevel: level,
		Distance:       distance,
		NewLeafID:      cur,
		Image:          img,
		ParentID:       parent,
	}

	return rec, cur, nil
}

// appendWalker pushes walkerIdx onto WalkerIdxs of every node along the
// root-to-leaf path ending at leaf (the final, post-branch path only).
func (t *Tree) appendWalker(leaf NodeID, walkerIdx int) {
	for depth := 0; depth <= leaf.Depth(); depth++ {
		id := NodeID(leaf[:depth])
		n := t.nodes[id.Key()]
		n.WalkerIdxs = append(n.WalkerIdxs, walkerIdx)
	}
	t.leafOf[walkerIdx] = leaf.Clone()
}

// WalkerLeaf returns the leaf walkerIdx was assigned to during the most
// recent PlaceWalkers call (its final, post-branch assignment).
func (t *Tree) WalkerLeaf(walkerIdx int) NodeID { return t.leafOf[walkerIdx] }

// WalkerWeight returns the weight recorded for walkerIdx during the most
// recent PlaceWalkers call.
func (t *Tree) WalkerWeight(walkerIdx int) float64 { return t.weights[walkerIdx] }

// LeafWeights returns the weights of the walkers currently assigned to
// leaf, in WalkerIdxs order.
func (t *Tree) LeafWeights(leaf NodeID) []float64 {
	n := t.nodes[leaf.Key()]
	out := make([]float64, len(n.WalkerIdxs))
	for i, idx := range n.WalkerIdxs {
		out[i] = t.weights[idx]
	}
	return out
}
