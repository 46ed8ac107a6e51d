package dfs

import (
	"fmt"

	"github.com/ndonyapour/wexplore-go/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	res     *DFSResult
	visited map[string]bool
}

// DFS performs a depth-first traversal of g starting from startID,
// visiting each reachable vertex once and appending it to Order when its
// descendants finish exploring (post-order).
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	dopts := DefaultOptions()
	for _, opt := range opts {
		opt(&dopts)
	}

	vertices := g.Vertices()
	w := &dfsWalker{
		graph:   g,
		opts:    dopts,
		res:     &DFSResult{Order: make([]string, 0, len(vertices))},
		visited: make(map[string]bool, len(vertices)),
	}

	if err := w.traverse(startID); err != nil {
		return w.res, err
	}
	return w.res, nil
}

// traverse visits id and recurses into its unvisited neighbors before
// running the post-order hook and recording id in Order.
func (w *dfsWalker) traverse(id string) error {
	w.visited[id] = true

	neighbors, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: failed to get neighbors of %q: %w", id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			if err := w.traverse(nbr); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}

	w.res.Order = append(w.res.Order, id)
	return nil
}
