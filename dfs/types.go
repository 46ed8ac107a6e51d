// Package dfs walks a core.Graph depth-first from a start vertex,
// invoking a post-order hook as each vertex's descendants finish.
package dfs

import "errors"

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// OnExit, if non-nil, is invoked after all of a vertex's descendants
	// have been explored (post-order), before appending it to Order.
	// Returning an error aborts traversal with that error.
	OnExit func(id string) error
}

// DefaultOptions returns a DFSOptions with no post-order hook.
func DefaultOptions() DFSOptions {
	return DFSOptions{OnExit: nil}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// DFSResult captures the outcome of a depth-first traversal: vertices in
// the order they finished (post-order).
type DFSResult struct {
	Order []string
}
