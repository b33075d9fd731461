// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/Node/Nodes/NodeCount/RemoveNode.
// Determinism:
//   - Nodes() returns nodes in insertion order (stable across runs; map order
//     is never observable).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

// AddNode inserts a new node with empty edge collections.
//
// Steps:
//  1. Lock mu.
//  2. Reject with ErrDuplicateNode if name is already present.
//  3. Register the node in the catalog and the insertion-order list.
//
// Complexity: O(1) amortized.
// Concurrency: acquires mu write lock.
func (g *Graph[K]) AddNode(name K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[name]; exists {
		return ErrDuplicateNode
	}

	g.nodes[name] = &Node[K]{Name: name}
	g.order = append(g.order, name)

	return nil
}

// HasNode reports whether a node with the given name exists.
// Complexity: O(1).
// Concurrency: read lock on mu.
func (g *Graph[K]) HasNode(name K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[name]

	return ok
}

// Node returns the node with the given name, or ErrNodeNotFound.
//
// Contract:
//   - The returned *Node must be treated as read-only by callers.
//   - Errors are strict sentinels (checked via errors.Is).
//
// Complexity: O(1).
// Concurrency: read lock on mu.
func (g *Graph[K]) Node(name K) (*Node[K], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[name]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n, nil
}

// Nodes returns all nodes in insertion order (stable, deterministic).
// Complexity: O(V).
// Concurrency: read lock on mu.
func (g *Graph[K]) Nodes() []*Node[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Node[K], 0, len(g.order))
	var name K
	for _, name = range g.order {
		out = append(out, g.nodes[name])
	}

	return out
}

// NodeCount returns the total number of nodes.
// Complexity: O(1).
// Concurrency: read lock on mu.
func (g *Graph[K]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// RemoveNode deletes a node together with every edge incident to it.
//
// A node is never destroyed while a live edge still references it: all
// incident edges are detached from their opposite endpoints first, then the
// node itself is dropped from the catalog.
//
// Steps:
//  1. Lock mu; ErrNodeNotFound if missing.
//  2. For each outgoing edge, remove the back-reference from End's in list.
//  3. For each incoming edge, remove the reference from Start's out list.
//  4. Clear the node's own lists and delete it from catalog and order.
//
// Complexity: O(deg(n) · maxdeg) for the neighbor-list removals, O(V) for the
// order-list removal.
// Concurrency: acquires mu write lock.
func (g *Graph[K]) RemoveNode(name K) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[name]
	if !ok {
		return ErrNodeNotFound
	}

	var e *Edge[K]
	for _, e = range n.out {
		e.End.in = removeEdgeRef(e.End.in, e)
		g.edges--
	}
	for _, e = range n.in {
		e.Start.out = removeEdgeRef(e.Start.out, e)
		g.edges--
	}
	n.out = nil
	n.in = nil

	delete(g.nodes, name)
	for i, k := range g.order {
		if k == name {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

// removeEdgeRef removes the first occurrence of e from list, preserving the
// order of the remaining entries.
func removeEdgeRef[K comparable](list []*Edge[K], e *Edge[K]) []*Edge[K] {
	for i, cur := range list {
		if cur == e {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
