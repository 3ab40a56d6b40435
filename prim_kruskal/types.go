// Package prim_kruskal defines configuration options and sentinel errors for
// maximum spanning forest computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/longpath/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrNegativeOrder indicates a negative vertex count passed to MaximumSpanningForest.
var ErrNegativeOrder = errors.New("prim_kruskal: vertex count must be non-negative")

// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
var ErrVertexOutOfRange = errors.New("prim_kruskal: edge endpoint out of range")

// ErrUnknownMethod indicates an MSTOptions.Method that is neither Kruskal nor Prim.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a max-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Forest is a maximum spanning forest: the selected edges in selection order
// and the sum of their weights.
type Forest struct {
	Edges  []core.Edge
	Weight float64
}

// MSTOptions configures which algorithm to run, and for Prim, which root to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   int    — start vertex for Prim; ignored when Method == MethodKruskal.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = 0 (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute applies opts over DefaultOptions and runs the selected algorithm.
//
//	– MethodKruskal: Kruskal(graph), the forest over every component.
//	– MethodPrim:    Prim(graph, Root), the tree of Root's component.
//	– otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (Forest, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, o.Root)
	default:
		return Forest{}, ErrUnknownMethod
	}
}
