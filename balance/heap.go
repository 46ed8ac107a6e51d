package balance

// shareItem pairs a child's index (within one parent's child slice) with
// the share total it held when pushed. A popped item is checked against
// the live shares slice and discarded if stale, the same lazy
// decrease-key strategy dijkstra.go uses for its distance queue.
type shareItem struct {
	idx    int
	shares int
}

// donorHeap is a max-heap of shareItem ordered by descending shares, used
// to repeatedly find the child with the largest share total.
type donorHeap []*shareItem

func (h donorHeap) Len() int            { return len(h) }
func (h donorHeap) Less(i, j int) bool  { return h[i].shares > h[j].shares }
func (h donorHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *donorHeap) Push(x interface{}) { *h = append(*h, x.(*shareItem)) }
func (h *donorHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// acceptorHeap is a min-heap of shareItem ordered by ascending shares, used
// to repeatedly find the child with the smallest share total.
type acceptorHeap []*shareItem

func (h acceptorHeap) Len() int            { return len(h) }
func (h acceptorHeap) Less(i, j int) bool  { return h[i].shares < h[j].shares }
func (h acceptorHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *acceptorHeap) Push(x interface{}) { *h = append(*h, x.(*shareItem)) }
func (h *acceptorHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
