package balance

import (
	"github.com/ndonyapour/wexplore-go/bfs"
	"github.com/ndonyapour/wexplore-go/region"
)

// Propagate sets the root's balance to deltaWalkers, then walks the tree
// breadth-first so that each parent's dispense-then-rebalance step
// completes before its children's own step runs, and finally verifies
// leaf balances sum to deltaWalkers.
func Propagate(tree *region.Tree, deltaWalkers int) error {
	root, err := tree.Node(region.RootID())
	if err != nil {
		return err
	}
	root.Balance = deltaWalkers

	g, rootKey := tree.ToGraph()
	_, err = bfs.BFS(g, rootKey, bfs.WithOnVisit(func(id string) error {
		return processNode(tree, id)
	}))
	if err != nil {
		return err
	}

	return verifyConservation(tree, deltaWalkers)
}

// processNode runs dispense-then-rebalance for the children of the node at
// key, using that node's current Balance as the input B.
func processNode(tree *region.Tree, key string) error {
	parent, err := tree.NodeByKey(key)
	if err != nil {
		return err
	}

	children := tree.Children(parent.ID)
	if len(children) == 0 {
		return nil // leaf: nothing to propagate further
	}

	childNodes := make([]*region.Node, len(children))
	shares := make([]int, len(children))
	remMerge := make([]int, len(children))
	remClone := make([]int, len(children))
	for i, cid := range children {
		cn, err := tree.Node(cid)
		if err != nil {
			return err
		}
		childNodes[i] = cn
		shares[i] = cn.NWalkers()
		remMerge[i] = cn.NMergeable
		remClone[i] = cn.NCloneable
	}

	if err := dispense(childNodes, shares, remMerge, remClone, parent.Balance); err != nil {
		return err
	}
	rebalance(childNodes, shares, remMerge, remClone)

	return nil
}

// verifyConservation checks that the sum of leaf balances equals
// deltaWalkers.
func verifyConservation(tree *region.Tree, deltaWalkers int) error {
	sum := sumLeafBalances(tree, region.RootID())
	if sum != deltaWalkers {
		return ErrBalanceNotConserved
	}
	return nil
}

func sumLeafBalances(tree *region.Tree, id region.NodeID) int {
	children := tree.Children(id)
	if len(children) == 0 {
		n, err := tree.Node(id)
		if err != nil {
			return 0
		}
		return n.Balance
	}
	total := 0
	for _, child := range children {
		total += sumLeafBalances(tree, child)
	}
	return total
}
