// File: teardown.go
// Role: Graph teardown: Close severs the node↔edge reference cycle.
// Concurrency:
//   - Close acquires the mu write lock; safe to call more than once.

package core

// Close tears the graph down by severing every node's outgoing and incoming
// edge collections and emptying the catalog.
//
// Nodes and edges reference each other both ways (node → edge via the out/in
// lists, edge → node via Start/End), so a graph forms reference cycles. Close
// removes the node → edge half of every cycle, leaving only the one-way
// edge → node pointers. After Close:
//
//   - each node's storage is reclaimable independently, in any order, as
//     soon as the caller drops its last reference;
//   - a *Node held by the caller (for example inside an already-yielded
//     traversal step) stays valid: Name is intact, OutEdges/InEdges report
//     empty.
//
// Close is idempotent: calling it a second time is a no-op. It is safe
// regardless of the order in which the caller later drops node references.
//
// Complexity: O(V + E).
// Concurrency: acquires mu write lock.
func (g *Graph[K]) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	var name K
	for _, name = range g.order {
		n := g.nodes[name]
		n.out = nil
		n.in = nil
	}

	g.nodes = make(map[K]*Node[K])
	g.order = nil
	g.edges = 0
}
