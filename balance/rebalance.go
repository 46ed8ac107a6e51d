package balance

import (
	"container/heap"

	"github.com/ndonyapour/wexplore-go/region"
)

// rebalance redistributes shares between siblings to equalize share totals
// while staying within each child's remaining donatable/receivable
// capacity.
//
// It repeatedly extracts the child with the largest share total that still
// has mergeable capacity (the donor) and the child with the smallest share
// total that still has cloneable capacity (the acceptor) from two heaps,
// lazily discarding stale entries the same way dijkstra.go's priority
// queue discards stale distance entries.
func rebalance(childNodes []*region.Node, shares []int, remMerge []int, remClone []int) {
	donorPQ := &donorHeap{}
	acceptorPQ := &acceptorHeap{}
	heap.Init(donorPQ)
	heap.Init(acceptorPQ)

	for i := range childNodes {
		if remMerge[i] > 0 {
			heap.Push(donorPQ, &shareItem{idx: i, shares: shares[i]})
		}
		if remClone[i] > 0 {
			heap.Push(acceptorPQ, &shareItem{idx: i, shares: shares[i]})
		}
	}

	lastDonationWasOne := false

	for donorPQ.Len() > 0 && acceptorPQ.Len() > 0 {
		donorItem := popValid(donorPQ, shares, remMerge)
		if donorItem == nil {
			break
		}
		acceptorItem := popValidAcceptor(acceptorPQ, shares, remClone, donorItem.idx)
		if acceptorItem == nil {
			break
		}

		if !(shares[donorItem.idx] > shares[acceptorItem.idx]) {
			break
		}

		donation := minInt((shares[donorItem.idx]-shares[acceptorItem.idx])/2, remMerge[donorItem.idx])
		if donation <= 0 {
			break
		}
		if donation == 1 && lastDonationWasOne {
			break
		}

		shares[donorItem.idx] -= donation
		shares[acceptorItem.idx] += donation
		childNodes[donorItem.idx].Balance -= donation
		childNodes[acceptorItem.idx].Balance += donation
		remMerge[donorItem.idx] -= donation
		remClone[acceptorItem.idx] -= donation

		lastDonationWasOne = donation == 1

		// Re-push both nodes into every heap they still qualify for, at
		// their post-donation share count: a node can be donor-capable
		// and acceptor-capable at once, and its stale entry in the heap
		// it didn't just act through must not be the last word on its
		// share count.
		if remMerge[donorItem.idx] > 0 {
			heap.Push(donorPQ, &shareItem{idx: donorItem.idx, shares: shares[donorItem.idx]})
		}
		if remClone[donorItem.idx] > 0 {
			heap.Push(acceptorPQ, &shareItem{idx: donorItem.idx, shares: shares[donorItem.idx]})
		}
		if remClone[acceptorItem.idx] > 0 {
			heap.Push(acceptorPQ, &shareItem{idx: acceptorItem.idx, shares: shares[acceptorItem.idx]})
		}
		if remMerge[acceptorItem.idx] > 0 {
			heap.Push(donorPQ, &shareItem{idx: acceptorItem.idx, shares: shares[acceptorItem.idx]})
		}
	}
}

// popValid pops shareItems from pq until it finds one whose recorded
// shares still match the live shares slice and whose remaining mergeable
// capacity is positive, or the heap empties.
func popValid(pq *donorHeap, shares []int, remMerge []int) *shareItem {
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*shareItem)
		if item.shares == shares[item.idx] && remMerge[item.idx] > 0 {
			return item
		}
	}
	return nil
}

// popValidAcceptor is popValid's acceptor-heap counterpart; it additionally
// skips the donor's own index so a child never donates to itself.
func popValidAcceptor(pq *acceptorHeap, shares []int, remClone []int, donorIdx int) *shareItem {
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*shareItem)
		if item.idx == donorIdx {
			continue
		}
		if item.shares == shares[item.idx] && remClone[item.idx] > 0 {
			return item
		}
	}
	return nil
}
