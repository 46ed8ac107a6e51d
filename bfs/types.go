// Package bfs walks a core.Graph breadth-first from a start vertex,
// visiting each reachable vertex exactly once in non-decreasing distance
// from the start.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit runs once per vertex, in visit order. Returning an error
	// aborts the traversal; BFS propagates that error to its caller.
	OnVisit func(id string) error
}

// DefaultOptions returns a BFSOptions with a no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit: func(string) error { return nil },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal: the vertices visited,
// in visit order.
type BFSResult struct {
	Order []string
}
