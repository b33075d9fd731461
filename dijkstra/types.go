// Package dijkstra defines the step record, configuration options, and
// sentinel errors for the lazy single-source shortest-path traversal.
//
// The traversal yields one PathStep per reachable node, in non-decreasing
// distance order, performing exactly one round of Dijkstra's algorithm per
// requested step.
//
// Options:
//
//	– MaxDistance:      optional cap on distances to explore; entries beyond
//	                    this are never finalized.
//	– InfEdgeThreshold: edges with weight ≥ this threshold are treated as
//	                    impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrSourceNotFound if the source node does not exist in the graph.
//	– ErrBadMaxDistance if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/graphseq/graphseq/core"
)

// Unreachable is the distance reported for nodes no path leads to: +Inf.
// Such nodes are never yielded; the constant exists for callers of Distances.
var Unreachable = math.Inf(1)

// Sentinel errors returned by the traversal constructor and options.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to New.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the requested source node does not
	// exist in the provided graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative
	// value, which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// PathStep is one finalized result of the shortest-path computation: the
// node reached, its distance from the source, and its predecessor on the
// shortest path.
//
// A PathStep is immutable once yielded: later traversal steps never alter an
// already-yielded step's distance or predecessor. The node pointers stay
// valid even after the owning graph is closed.
type PathStep[K comparable] struct {
	// Node is the node finalized by this step.
	Node *core.Node[K]

	// Distance is the shortest distance from the source to Node.
	// The source itself reports 0.
	Distance float64

	// Prev is the predecessor of Node on the shortest path, or nil for the
	// source. When non-nil, Prev was yielded by an earlier step and
	// distance(Prev) + weight(Prev→Node) == Distance.
	Prev *core.Node[K]
}

// Options configures the behavior of a traversal.
//
// MaxDistance      – cap on distances to explore; must be ≥ 0.
//
//	Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring a traversal.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxDistance.
// Default (if not set) is +Inf (no cap).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative cause ErrBadInfThreshold.
// Default (if not set) is +Inf (no edges treated as impassable).
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
// no distance cap and no edges treated as impassable. Use this as a starting
// point for further functional-options overrides.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
