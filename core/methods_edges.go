// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges/EdgeCount/RemoveEdge.
// Determinism:
//   - Edges() reports edges grouped by start node in insertion order, and
//     within a node in edge-insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

// AddEdge creates a new directed edge start→end with the given weight, and
// links it into start's outgoing list and end's incoming list.
//
// Steps:
//  1. Lock mu.
//  2. Resolve both endpoints; ErrNodeNotFound if either is absent.
//  3. Validate weight > 0 (ErrNonPositiveWeight).
//  4. Scan start's outgoing list for an existing start→end edge
//     (ErrDuplicateEdge).
//  5. Allocate the edge, append to start.out and end.in.
//
// The edge is owned by start's outgoing list; end's incoming list holds a
// back-reference only, so teardown can sever either side independently.
//
// Complexity: O(deg⁺(start)) for the duplicate scan.
// Concurrency: acquires mu write lock.
func (g *Graph[K]) AddEdge(start, end K, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	from, ok := g.nodes[start]
	if !ok {
		return ErrNodeNotFound
	}
	to, ok := g.nodes[end]
	if !ok {
		return ErrNodeNotFound
	}
	if weight <= 0 {
		return ErrNonPositiveWeight
	}
	var e *Edge[K]
	for _, e = range from.out {
		if e.End == to {
			return ErrDuplicateEdge
		}
	}

	e = &Edge[K]{Start: from, End: to, Weight: weight}
	from.out = append(from.out, e)
	to.in = append(to.in, e)
	g.edges++

	return nil
}

// HasEdge reports whether an edge start→end exists.
// Complexity: O(deg⁺(start)).
// Concurrency: read lock on mu.
func (g *Graph[K]) HasEdge(start, end K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	from, ok := g.nodes[start]
	if !ok {
		return false
	}
	for _, e := range from.out {
		if e.End.Name == end {
			return true
		}
	}

	return false
}

// Edge returns the edge start→end, or ErrEdgeNotFound. ErrNodeNotFound is
// returned when the start node itself is absent.
//
// Complexity: O(deg⁺(start)).
// Concurrency: read lock on mu.
func (g *Graph[K]) Edge(start, end K) (*Edge[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	from, ok := g.nodes[start]
	if !ok {
		return nil, ErrNodeNotFound
	}
	for _, e := range from.out {
		if e.End.Name == end {
			return e, nil
		}
	}

	return nil, ErrEdgeNotFound
}

// Edges returns all edges, grouped by start node in node-insertion order and
// within each node in edge-insertion order (stable, deterministic).
// Complexity: O(V + E).
// Concurrency: read lock on mu.
func (g *Graph[K]) Edges() []*Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge[K], 0, g.edges)
	var name K
	for _, name = range g.order {
		out = append(out, g.nodes[name].out...)
	}

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
// Concurrency: read lock on mu.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// RemoveEdge deletes the edge start→end from both endpoints' lists.
// Returns ErrNodeNotFound if start is absent, ErrEdgeNotFound if no such
// edge exists (no silent ignore).
//
// Complexity: O(deg⁺(start) + deg⁻(end)).
// Concurrency: acquires mu write lock.
func (g *Graph[K]) RemoveEdge(start, end K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	from, ok := g.nodes[start]
	if !ok {
		return ErrNodeNotFound
	}
	var target *Edge[K]
	for _, e := range from.out {
		if e.End.Name == end {
			target = e
			break
		}
	}
	if target == nil {
		return ErrEdgeNotFound
	}

	from.out = removeEdgeRef(from.out, target)
	target.End.in = removeEdgeRef(target.End.in, target)
	g.edges--

	return nil
}
