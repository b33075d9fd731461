// Package graphseq is a small directed, weighted graph library built around
// two ideas: a node/edge data model whose reference cycles tear down cleanly,
// and a shortest-path computation you consume one step at a time.
//
// 🚀 What is graphseq?
//
//	A compact, deterministic library that brings together:
//		• Core primitives: create nodes & edges under validated invariants
//		  (unique names, unique start→end edges, strictly positive weights)
//		• Generic keys: name your nodes with any comparable type K
//		• Explicit teardown: Close severs the node↔edge cycle so every
//		  node's storage reclaims independently, in any order
//		• Lazy Dijkstra: a pull-based traversal that finalizes exactly one
//		  node per step — stop after k steps, pay for k steps
//
// ✨ Why choose graphseq?
//
//   - Minimal API, clear naming — build, query, traverse, close
//   - Deterministic enumeration — Nodes() and Edges() follow insertion order
//   - Pure Go — no cgo, no hidden deps
//   - Range-ready — traversals plug straight into `for … range`
//
// Everything is organized under two subpackages:
//
//	core/     — fundamental Graph, Node, Edge types, invariants & teardown
//	dijkstra/ — the lazy shortest-path traversal engine
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    4     2
//	    │     │
//	    C──1──D
//
//	g := core.NewGraph[string]()
//	for _, n := range []string{"A", "B", "C", "D"} {
//	    _ = g.AddNode(n)
//	}
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "D", 2)
//	_ = g.AddEdge("A", "C", 4)
//	_ = g.AddEdge("C", "D", 1)
//
//	trav, _ := dijkstra.New(g, "A")
//	for step := range trav.Steps() {
//	    fmt.Println(step.Node.Name, step.Distance) // A 0, B 1, D 3, C 4
//	}
//	g.Close()
package graphseq
