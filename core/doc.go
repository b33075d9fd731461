// Package core provides an in-memory directed, positively-weighted Graph
// implementation with a minimal, deterministic API surface.
//
// The Graph G = (V,E) is deliberately opinionated:
//
//   - Every edge is directed and carries a strictly positive float64 weight.
//   - At most one edge may exist per ordered (start, end) pair.
//   - Node names are generic over any comparable key type K (strings, ints,
//     struct keys, …), so identity is whatever the application hashes by.
//   - Each node keeps an adjacency list of its outgoing edges plus a list of
//     back-references to its incoming edges, enabling both forward traversal
//     and reverse introspection.
//
// Ownership model:
//
// Nodes and edges reference each other both ways, which would form reference
// cycles: node → edge through the out/in lists, edge → node through
// Start/End. Ownership is directional to break them — an edge is owned by
// its start node's outgoing list, and the end node's incoming list holds a
// non-owning back-reference. Close severs every node's edge lists so each
// node's storage is independently reclaimable in any order, while node
// pointers already handed out (for example inside traversal steps) remain
// valid.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(name K) error               // O(1), ErrDuplicateNode on repeat
//	HasNode(name K) bool                // O(1)
//	Node(name K) (*Node[K], error)      // O(1)
//	RemoveNode(name K) error            // detaches incident edges first
//
//	// Edge lifecycle
//	AddEdge(start, end K, w float64) error // O(deg⁺(start)) duplicate scan
//	HasEdge(start, end K) bool             // O(deg⁺(start))
//	Edge(start, end K) (*Edge[K], error)   // O(deg⁺(start))
//	RemoveEdge(start, end K) error         // O(deg⁺(start)+deg⁻(end))
//
//	// Enumeration (insertion order, deterministic)
//	Nodes() []*Node[K]                  // O(V)
//	Edges() []*Edge[K]                  // O(V+E)
//	NodeCount() int                     // O(1)
//	EdgeCount() int                     // O(1)
//
//	// Teardown
//	Close()                             // O(V+E), idempotent
//
// Errors:
//
//	ErrDuplicateNode     – node name already present
//	ErrNodeNotFound      – missing node
//	ErrNonPositiveWeight – edge weight ≤ 0
//	ErrDuplicateEdge     – second edge for the same (start, end)
//	ErrEdgeNotFound      – missing edge
//
// Concurrency: every method takes the graph's RWMutex, so independent calls
// may race safely. A shortest-path traversal in progress is a multi-call
// protocol, however; mutating the graph mid-traversal has undefined effect
// on the traversal and callers must serialize those externally.
package core
