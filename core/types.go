// Package core defines the central Graph, Node, and Edge types for a
// directed, positively-weighted graph, and provides primitives for building,
// querying, and tearing it down.
//
// Node names are generic over any comparable key type K, so callers may key
// their graphs by strings, ints, or any other hashable identity.
//
// This file declares Node, Edge, Graph, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrDuplicateNode     - a node with the given name already exists.
//	ErrNodeNotFound      - requested node does not exist.
//	ErrNonPositiveWeight - edge weight is zero or negative.
//	ErrDuplicateEdge     - an edge between the given endpoints already exists.
//	ErrEdgeNotFound      - requested edge does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates an attempt to create a node whose name is
	// already present in the graph.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNonPositiveWeight indicates an edge weight ≤ 0 was supplied.
	ErrNonPositiveWeight = errors.New("core: edge weight must be positive")

	// ErrDuplicateEdge indicates an edge from the given start to the given
	// end already exists.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Node represents a named vertex in the graph.
//
// Name uniquely identifies this Node within its owning Graph. The outgoing
// and incoming edge collections are populated only by the Graph; callers
// observe them through OutEdges and InEdges.
type Node[K comparable] struct {
	// Name is the unique identifier for this Node within its Graph.
	Name K

	// out holds edges whose Start is this node. Owned by the node: an edge
	// lives in exactly one out list.
	out []*Edge[K]

	// in holds edges whose End is this node. Back-references only; the edge
	// is owned by its Start node's out list.
	in []*Edge[K]
}

// OutEdges returns a copy of the node's outgoing edge list, in insertion
// order. Mutating the returned slice does not affect the graph.
// Complexity: O(deg⁺(n)).
func (n *Node[K]) OutEdges() []*Edge[K] {
	out := make([]*Edge[K], len(n.out))
	copy(out, n.out)

	return out
}

// InEdges returns a copy of the node's incoming edge list, in insertion
// order. Mutating the returned slice does not affect the graph.
// Complexity: O(deg⁻(n)).
func (n *Node[K]) InEdges() []*Edge[K] {
	in := make([]*Edge[K], len(n.in))
	copy(in, n.in)

	return in
}

// Edge represents a directed connection between two nodes.
//
// Each Edge runs Start→End and carries a strictly positive Weight. Edges are
// created only by Graph.AddEdge; the returned pointers must be treated as
// read-only by callers.
type Edge[K comparable] struct {
	// Start is the source node of this edge.
	Start *Node[K]

	// End is the destination node of this edge.
	End *Node[K]

	// Weight is the cost of traversing this edge. Always > 0.
	Weight float64
}

// Graph is the core in-memory graph data structure.
//
// It owns the complete set of nodes, keyed by name, and is the only entity
// that creates edges. Node enumeration is deterministic: Nodes and Edges
// report in insertion order, which does not depend on map iteration.
//
// mu guards the node catalog and every node's edge collections. Individual
// operations are safe to call concurrently, but a traversal in progress
// must not overlap with mutation (see package dijkstra).
type Graph[K comparable] struct {
	mu sync.RWMutex // guards nodes, order, and all edge lists

	// Storage
	nodes map[K]*Node[K] // node name → Node
	order []K            // node names in insertion order
	edges int            // total edge count
}

// NewGraph creates an empty directed, weighted Graph.
// Complexity: O(1)
func NewGraph[K comparable]() *Graph[K] {
	return &Graph[K]{
		nodes: make(map[K]*Node[K]),
	}
}
