// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// as a lazily produced, resumable sequence of results.
//
// Overview:
//
//   - A Traversal is constructed from a core.Graph and a source node name.
//   - Each call to Next finalizes exactly one node — the closest one not yet
//     finalized — and yields a PathStep carrying the node, its shortest
//     distance from the source, and its predecessor on that path.
//   - Steps adapts the same engine to Go's range-over-func protocol, so a
//     caller can write `for step := range trav.Steps()` and break out early
//     without paying for the rest of the computation.
//   - Distances drains a traversal eagerly for callers that want the classic
//     distance/predecessor maps.
//
// Iteration contract:
//
//   - Steps are yielded in non-decreasing distance order; the source is
//     always the first step, with distance 0 and a nil predecessor.
//   - Exactly one round of the algorithm runs per requested step. Stopping
//     after k steps means only k rounds ever executed; the remaining
//     working-set state is discarded with the Traversal.
//   - Unreachable nodes are never yielded. Their silent omission is normal
//     termination, not an error: once every remaining candidate is at +Inf
//     the sequence simply ends.
//   - A finished traversal stays finished: Next keeps returning ok == false
//     and Steps yields nothing. Re-querying after the end is not an error.
//   - A Traversal is one pass. It restarts on construction, not mid-stream:
//     breaking a range and ranging again resumes the same pass, and a fresh
//     pass over the graph requires a fresh New.
//
// Tie-breaking:
//
//   - When several not-yet-finalized nodes share the minimum distance, the
//     order among them is unspecified (it follows heap order). Callers may
//     rely only on the non-decreasing distance guarantee. Applications that
//     need a strict total order should disambiguate with distinct weights.
//
// Concurrency:
//
//   - Evaluation is single-threaded, synchronous, and pull-based: all work
//     happens inside Next, nothing runs between pulls, and cancellation is
//     simply ceasing to pull.
//   - A Traversal must not be shared across goroutines, and the graph must
//     not be mutated while a traversal over it is in progress.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       a nil *core.Graph was passed to New.
//   - ErrSourceNotFound: the source node does not exist in the graph.
//     Both are construction-time failures; a mid-traversal error cannot
//     occur, because core.Graph guarantees positive weights and intact
//     endpoints for every edge.
//   - ErrBadMaxDistance / ErrBadInfThreshold: invalid option arguments
//     (reported by panic from the option constructor).
//
// Example usage:
//
//	g := core.NewGraph[string]()
//	for _, name := range []string{"A", "B", "C"} {
//	    _ = g.AddNode(name)
//	}
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("B", "C", 2)
//
//	trav, err := dijkstra.New(g, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for step := range trav.Steps() {
//	    fmt.Printf("%s at %.0f\n", step.Node.Name, step.Distance)
//	    if step.Distance > 1 {
//	        break // stop early; no further rounds execute
//	    }
//	}
package dijkstra
