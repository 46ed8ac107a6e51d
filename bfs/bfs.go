package bfs

import (
	"fmt"

	"github.com/ndonyapour/wexplore-go/core"
)

// queueItem pairs a vertex ID with its parent's ID (empty for the start
// vertex).
type queueItem struct {
	id     string
	parent string
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID, applying any
// number of functional Options, and visits each reachable vertex exactly
// once in non-decreasing distance from startID.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vertices := g.Vertices()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		res:     &BFSResult{Order: make([]string, 0, len(vertices))},
	}

	w.enqueue(startID, "")
	return w.res, w.loop()
}

// enqueue marks id visited and adds it to the queue.
func (w *walker) enqueue(id, parent string) {
	w.visited[id] = true
	w.queue = append(w.queue, queueItem{id: id, parent: parent})
}

// loop processes the queue until empty or a hook error aborts it.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors retrieves item's neighbors and enqueues each unvisited
// one.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, item.id)
		}
	}
	return nil
}
