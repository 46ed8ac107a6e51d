package region

import (
	"github.com/ndonyapour/wexplore-go/core"
	"github.com/ndonyapour/wexplore-go/dfs"
)

// ToGraph projects the tree's parent/child topology into a disposable,
// directed, unweighted core.Graph: one vertex per node key, one edge per
// parent→child link. The tree itself never stores a *core.Graph; this
// projection is built fresh whenever an ordered traversal is needed (see
// rollupAccounting).
func (t *Tree) ToGraph() (*core.Graph, string) {
	g := core.NewGraph(core.WithDirected(true))
	for key := range t.nodes {
		_ = g.AddVertex(key)
	}
	for parentKey, children := range t.children {
		for _, child := range children {
			_, _ = g.AddEdge(parentKey, child.Key(), 0)
		}
	}
	return g, RootID().Key()
}

// rollupAccounting computes each leaf's NMergeable/NCloneable from its
// walker weights, then propagates the sums up to the root via a post-order
// traversal of the tree's graph projection.
func (t *Tree) rollupAccounting() error {
	leafDepth := t.L()
	for _, n := range t.nodes {
		if n.ID.Depth() == leafDepth {
			weights := t.LeafWeights(n.ID)
			n.NMergeable = mergeableCount(weights, t.pmax)
			n.NCloneable = cloneableCount(weights, t.pmin, t.maxNumWalkers)
		}
	}

	g, rootKey := t.ToGraph()
	_, err := dfs.DFS(g, rootKey, dfs.WithOnExit(func(id string) error {
		n, ok := t.nodes[id]
		if !ok || n.ID.Depth() == leafDepth {
			return nil
		}
		var mergeable, cloneable int
		for _, childID := range t.children[id] {
			c := t.nodes[childID.Key()]
			mergeable += c.NMergeable
			cloneable += c.NCloneable
		}
		n.NMergeable = mergeable
		n.NCloneable = cloneable
		return nil
	}))

	return err
}
