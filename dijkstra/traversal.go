// Package dijkstra implements Dijkstra's shortest-path algorithm as a lazy,
// pull-based traversal over a core.Graph.
//
// Unlike a one-shot solver, the engine computes one step at a time: each call
// to Next finalizes exactly one node (the closest not-yet-finalized one),
// yields it as a PathStep, and relaxes its outgoing edges. A consumer that
// stops after k steps has paid for only k rounds of the algorithm.
//
// Complexity:
//
//   - Time:  O((V + E) log V)  across a full drain
//   - Each node is finalized at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for distance, predecessor, and visited maps.
//   - O(E) worst-case entries in the heap under “lazy decrease-key”.
//
// Notes on implementation choices:
//
//   - Negative weights cannot occur: core.Graph.AddEdge rejects any
//     weight ≤ 0, so no pre-scan is needed.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries when popped.
//   - The heap order among equal distances is arbitrary; callers may rely
//     only on distances being non-decreasing.
package dijkstra

import (
	"container/heap"
	"iter"
	"math"

	"github.com/graphseq/graphseq/core"
)

// Traversal is a lazy single-source shortest-path computation in progress.
//
// It holds the working set: per-node best-known distance and predecessor,
// plus a priority queue of frontier candidates. State advances only inside
// Next; no background computation runs between pulls. A Traversal is a
// single pass — there is no rewind; construct a new one to start over.
//
// A Traversal must not be shared across goroutines, and the underlying graph
// must not be mutated while the traversal is in progress.
type Traversal[K comparable] struct {
	g      *core.Graph[K] // the input graph; read-only during traversal
	source K              // source node name
	opts   Options        // thresholds

	dist    map[K]float64         // node name → current best distance from source
	prev    map[K]*core.Node[K]   // node name → predecessor on the shortest path
	visited map[K]bool            // node name → distance finalized
	pq      stepPQ[K]             // min-heap of frontier candidates
	done    bool                  // sticky terminal state
}

// New constructs a traversal of g rooted at the source node.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must exist in g (ErrSourceNotFound).
//
// On success the working set holds one entry per node currently in the
// graph: distance +Inf and no predecessor everywhere except the source,
// which starts at distance 0 and seeds the priority queue.
//
// Complexity: O(V).
func New[K comparable](g *core.Graph[K], source K, opts ...Option) (*Traversal[K], error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the graph and the source.
	if g == nil {
		return nil, ErrNilGraph
	}
	src, err := g.Node(source)
	if err != nil {
		return nil, ErrSourceNotFound
	}

	// 3) Initialize the working set: dist[v] = +Inf, no predecessor, not
	//    visited, for every node v; the source alone starts at 0.
	nodes := g.Nodes()
	t := &Traversal[K]{
		g:       g,
		source:  source,
		opts:    cfg,
		dist:    make(map[K]float64, len(nodes)),
		prev:    make(map[K]*core.Node[K], len(nodes)),
		visited: make(map[K]bool, len(nodes)),
		pq:      make(stepPQ[K], 0, len(nodes)),
	}
	var n *core.Node[K]
	for _, n = range nodes {
		t.dist[n.Name] = math.Inf(1)
	}
	t.dist[source] = 0

	// 4) Seed the priority queue with the source at distance 0.
	heap.Init(&t.pq)
	heap.Push(&t.pq, &stepItem[K]{node: src, dist: 0})

	return t, nil
}

// Next performs exactly one round of the algorithm and reports the node it
// finalized, or ok == false once no reachable node remains.
//
// One round:
//  1. Pop the minimum-distance candidate from the heap, skipping entries
//     already finalized (stale duplicates from lazy decrease-key).
//  2. If the heap runs dry, or the candidate's distance exceeds
//     MaxDistance, the traversal is over: every remaining node is either
//     unreachable (distance still +Inf) or beyond the cap, and is silently
//     discarded. This is normal termination, not an error.
//  3. Otherwise finalize the candidate and yield it as a PathStep.
//  4. Relax every outgoing edge of the finalized node whose destination is
//     not yet finalized: a strictly shorter candidate distance updates the
//     destination's distance and predecessor and pushes a heap entry.
//
// After the first false, Next keeps returning false; it never revives.
//
// Complexity: amortized O((1 + deg⁺) log V) per call.
func (t *Traversal[K]) Next() (PathStep[K], bool) {
	var zero PathStep[K]
	if t.done {
		return zero, false
	}

	for t.pq.Len() > 0 {
		// 1) Pop the smallest-distance candidate.
		item := heap.Pop(&t.pq).(*stepItem[K])
		if t.visited[item.node.Name] {
			continue // stale entry; a shorter path was finalized earlier
		}

		// 2) Stop for good once the frontier is beyond the cap. Everything
		//    still in the heap is at least this far away.
		if item.dist > t.opts.MaxDistance {
			break
		}

		// 3) Finalize. The step snapshots distance and predecessor now, so
		//    later relaxations cannot retroactively change it.
		t.visited[item.node.Name] = true
		step := PathStep[K]{
			Node:     item.node,
			Distance: item.dist,
			Prev:     t.prev[item.node.Name],
		}

		// 4) Relax outgoing edges before handing the step back.
		t.relax(item.node, item.dist)

		return step, true
	}

	t.done = true

	return zero, false
}

// relax examines each edge outgoing from u and attempts to improve the
// distance of its destination. Assumes dist(u) == du is final.
func (t *Traversal[K]) relax(u *core.Node[K], du float64) {
	var e *core.Edge[K]
	var nd float64
	for _, e = range u.OutEdges() {
		// Skip edges marked impassable by InfEdgeThreshold.
		if e.Weight >= t.opts.InfEdgeThreshold {
			continue
		}

		v := e.End
		// Only destinations still in the working set can improve. A node
		// missing from dist was added after construction, which the
		// traversal contract forbids; ignore it rather than misroute.
		dv, ok := t.dist[v.Name]
		if !ok || t.visited[v.Name] {
			continue
		}

		// Candidate distance via source → … → u → v.
		nd = du + e.Weight
		if nd > t.opts.MaxDistance {
			continue
		}
		// Strict improvement only; equal-distance duplicates stay out of
		// the heap.
		if nd >= dv {
			continue
		}

		t.dist[v.Name] = nd
		t.prev[v.Name] = u

		// Lazy decrease-key: push a fresh entry, ignore the stale one when
		// it eventually pops.
		heap.Push(&t.pq, &stepItem[K]{node: v, dist: nd})
	}
}

// Steps adapts the traversal to the range-over-func protocol:
//
//	for step := range trav.Steps() { … }
//
// Each loop iteration pulls exactly one step via Next, so breaking out of
// the range after k steps leaves only k rounds of the algorithm executed.
// The sequence is single-use: it continues the receiver's single pass, and
// ranging again after a break resumes where the loop stopped.
func (t *Traversal[K]) Steps() iter.Seq[PathStep[K]] {
	return func(yield func(PathStep[K]) bool) {
		for {
			step, ok := t.Next()
			if !ok {
				return
			}
			if !yield(step) {
				return
			}
		}
	}
}

// Source returns the name of the node the traversal is rooted at.
func (t *Traversal[K]) Source() K { return t.source }

// Distances drains a full traversal of g rooted at source and returns:
//
//   - dist: map from node name to shortest distance (Unreachable, +Inf, for
//     nodes no path leads to).
//   - prev: map from node name to its predecessor's name on the shortest
//     path. The source and unreachable nodes are absent from prev.
//   - err: construction errors only (ErrNilGraph, ErrSourceNotFound).
//
// Convenience wrapper for callers that want the classic eager result rather
// than the step sequence.
//
// Complexity: O((V + E) log V).
func Distances[K comparable](g *core.Graph[K], source K, opts ...Option) (map[K]float64, map[K]K, error) {
	t, err := New(g, source, opts...)
	if err != nil {
		return nil, nil, err
	}

	prev := make(map[K]K)
	for step := range t.Steps() {
		if step.Prev != nil {
			prev[step.Node.Name] = step.Prev.Name
		}
	}

	// t.dist is final once the traversal terminates: every finite entry was
	// finalized, every remaining entry is +Inf.
	return t.dist, prev, nil
}

// stepItem represents a frontier candidate: a node and the distance at which
// it was pushed. It is stored in the priority queue to order candidates by
// increasing distance.
type stepItem[K comparable] struct {
	node *core.Node[K] // candidate node
	dist float64       // distance from source at push time
}

// stepPQ is a min-heap (priority queue) of *stepItem, ordered by dist
// ascending. We use the “lazy-decrease-key” approach: when a shorter path to
// an existing node v is found, a new *stepItem is pushed. The outdated entry
// remains but is ignored when popped (checked via visited[v]).
type stepPQ[K comparable] []*stepItem[K]

// Len returns the number of items in the heap.
func (pq stepPQ[K]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq stepPQ[K]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq stepPQ[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stepItem.
func (pq *stepPQ[K]) Push(x interface{}) { *pq = append(*pq, x.(*stepItem[K])) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *stepItem.
func (pq *stepPQ[K]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
