// Package core_test verifies core.Graph method-level contracts: node/edge
// lifecycle, invariant enforcement, deterministic enumeration, and teardown.
package core_test

import (
	"errors"
	"testing"

	"github.com/graphseq/graphseq/core"
)

// ------------------------------------------------------------------------
// 1. Node lifecycle: creation, duplicates, lookup, counts.
// ------------------------------------------------------------------------

func TestGraph_AddNode_Duplicate(t *testing.T) {
	// Creating the same name twice must fail with ErrDuplicateNode and leave
	// the graph unchanged.
	g := core.NewGraph[string]()
	if err := g.AddNode("A"); err != nil {
		t.Fatalf("AddNode(A) = %v; want nil", err)
	}
	if err := g.AddNode("A"); !errors.Is(err, core.ErrDuplicateNode) {
		t.Fatalf("AddNode(A) again = %v; want ErrDuplicateNode", err)
	}
	if got := g.NodeCount(); got != 1 {
		t.Errorf("NodeCount() = %d; want 1", got)
	}
}

func TestGraph_NodeLookup(t *testing.T) {
	g := core.NewGraph[string]()
	_ = g.AddNode("A")

	// Present node: HasNode true, Node returns it with empty edge lists.
	if !g.HasNode("A") {
		t.Error("HasNode(A) = false; want true")
	}
	n, err := g.Node("A")
	if err != nil {
		t.Fatalf("Node(A) = %v; want nil error", err)
	}
	if n.Name != "A" {
		t.Errorf("Node(A).Name = %q; want %q", n.Name, "A")
	}
	if len(n.OutEdges()) != 0 || len(n.InEdges()) != 0 {
		t.Error("fresh node must have empty edge collections")
	}

	// Absent node: HasNode false, Node returns ErrNodeNotFound.
	if g.HasNode("Z") {
		t.Error("HasNode(Z) = true; want false")
	}
	if _, err = g.Node("Z"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("Node(Z) error = %v; want ErrNodeNotFound", err)
	}
}

func TestGraph_Nodes_InsertionOrder(t *testing.T) {
	// Nodes() must report insertion order regardless of map iteration.
	g := core.NewGraph[string]()
	names := []string{"delta", "alpha", "charlie", "bravo"}
	for _, name := range names {
		_ = g.AddNode(name)
	}

	nodes := g.Nodes()
	if len(nodes) != len(names) {
		t.Fatalf("len(Nodes()) = %d; want %d", len(nodes), len(names))
	}
	for i, n := range nodes {
		if n.Name != names[i] {
			t.Errorf("Nodes()[%d] = %q; want %q", i, n.Name, names[i])
		}
	}
}

// ------------------------------------------------------------------------
// 2. Edge lifecycle: validation order, linkage, duplicates, removal.
// ------------------------------------------------------------------------

func TestGraph_AddEdge_Validation(t *testing.T) {
	g := core.NewGraph[string]()
	_ = g.AddNode("A")
	_ = g.AddNode("B")

	// Unknown endpoints fail with ErrNodeNotFound, either side.
	if err := g.AddEdge("X", "B", 1); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("AddEdge(X,B) = %v; want ErrNodeNotFound", err)
	}
	if err := g.AddEdge("A", "X", 1); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("AddEdge(A,X) = %v; want ErrNodeNotFound", err)
	}

	// Non-positive weights fail with ErrNonPositiveWeight.
	if err := g.AddEdge("A", "B", 0); !errors.Is(err, core.ErrNonPositiveWeight) {
		t.Errorf("AddEdge weight=0 = %v; want ErrNonPositiveWeight", err)
	}
	if err := g.AddEdge("A", "B", -2.5); !errors.Is(err, core.ErrNonPositiveWeight) {
		t.Errorf("AddEdge weight=-2.5 = %v; want ErrNonPositiveWeight", err)
	}

	// A second A→B edge fails with ErrDuplicateEdge; the reverse direction
	// is a distinct edge and must succeed.
	if err := g.AddEdge("A", "B", 1); err != nil {
		t.Fatalf("AddEdge(A,B,1) = %v; want nil", err)
	}
	if err := g.AddEdge("A", "B", 7); !errors.Is(err, core.ErrDuplicateEdge) {
		t.Errorf("AddEdge(A,B) again = %v; want ErrDuplicateEdge", err)
	}
	if err := g.AddEdge("B", "A", 1); err != nil {
		t.Errorf("AddEdge(B,A,1) = %v; want nil (reverse is distinct)", err)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d; want 2", got)
	}
}

func TestGraph_AddEdge_LinksBothEndpoints(t *testing.T) {
	// A successful AddEdge must appear in start's outgoing list and end's
	// incoming list, with the same underlying edge.
	g := core.NewGraph[string]()
	_ = g.AddNode("A")
	_ = g.AddNode("B")
	if err := g.AddEdge("A", "B", 3.5); err != nil {
		t.Fatal(err)
	}

	a, _ := g.Node("A")
	b, _ := g.Node("B")
	out := a.OutEdges()
	in := b.InEdges()
	if len(out) != 1 || len(in) != 1 {
		t.Fatalf("len(out)=%d len(in)=%d; want 1 and 1", len(out), len(in))
	}
	if out[0] != in[0] {
		t.Error("out and in lists must reference the same edge")
	}
	e := out[0]
	if e.Start != a || e.End != b || e.Weight != 3.5 {
		t.Errorf("edge = %v→%v w=%v; want A→B w=3.5", e.Start.Name, e.End.Name, e.Weight)
	}
}

func TestGraph_EdgeLookup(t *testing.T) {
	g := core.NewGraph[string]()
	_ = g.AddNode("A")
	_ = g.AddNode("B")
	_ = g.AddEdge("A", "B", 2)

	if !g.HasEdge("A", "B") {
		t.Error("HasEdge(A,B) = false; want true")
	}
	if g.HasEdge("B", "A") {
		t.Error("HasEdge(B,A) = true; want false (directed)")
	}
	e, err := g.Edge("A", "B")
	if err != nil || e.Weight != 2 {
		t.Errorf("Edge(A,B) = (%v, %v); want weight 2, nil error", e, err)
	}
	if _, err = g.Edge("B", "A"); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("Edge(B,A) error = %v; want ErrEdgeNotFound", err)
	}
	if _, err = g.Edge("Z", "A"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("Edge(Z,A) error = %v; want ErrNodeNotFound", err)
	}
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := core.NewGraph[string]()
	_ = g.AddNode("A")
	_ = g.AddNode("B")
	_ = g.AddEdge("A", "B", 1)

	if err := g.RemoveEdge("A", "B"); err != nil {
		t.Fatalf("RemoveEdge(A,B) = %v; want nil", err)
	}
	// Both endpoints must be detached.
	a, _ := g.Node("A")
	b, _ := g.Node("B")
	if len(a.OutEdges()) != 0 || len(b.InEdges()) != 0 {
		t.Error("RemoveEdge must detach both endpoints")
	}
	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount() = %d; want 0", got)
	}
	// Removing an absent edge is an explicit error, no silent ignore.
	if err := g.RemoveEdge("A", "B"); !errors.Is(err, core.ErrEdgeNotFound) {
		t.Errorf("RemoveEdge(A,B) again = %v; want ErrEdgeNotFound", err)
	}
}

func TestGraph_RemoveNode_CascadesEdges(t *testing.T) {
	// Removing B must detach A→B and B→C so no neighbor retains a dangling
	// reference, and must drop both edges from the count.
	g := core.NewGraph[string]()
	for _, name := range []string{"A", "B", "C"} {
		_ = g.AddNode(name)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("A", "C", 1)

	if err := g.RemoveNode("B"); err != nil {
		t.Fatalf("RemoveNode(B) = %v; want nil", err)
	}
	if g.HasNode("B") {
		t.Error("node B still present after RemoveNode")
	}
	a, _ := g.Node("A")
	c, _ := g.Node("C")
	if len(a.OutEdges()) != 1 {
		t.Errorf("A retains %d out edges; want 1 (A→C only)", len(a.OutEdges()))
	}
	if len(c.InEdges()) != 1 {
		t.Errorf("C retains %d in edges; want 1 (A→C only)", len(c.InEdges()))
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d; want 1", got)
	}
	if err := g.RemoveNode("B"); !errors.Is(err, core.ErrNodeNotFound) {
		t.Errorf("RemoveNode(B) again = %v; want ErrNodeNotFound", err)
	}
}

// ------------------------------------------------------------------------
// 3. Enumeration determinism.
// ------------------------------------------------------------------------

func TestGraph_Edges_DeterministicOrder(t *testing.T) {
	// Edges() groups by start node in insertion order, and within a node in
	// edge-insertion order.
	g := core.NewGraph[string]()
	for _, name := range []string{"B", "A"} {
		_ = g.AddNode(name)
	}
	_ = g.AddEdge("B", "A", 1)
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("B", "B2", 3) // unknown end, rejected
	_ = g.AddNode("C")
	_ = g.AddEdge("B", "C", 3)

	edges := g.Edges()
	want := [][2]string{{"B", "A"}, {"B", "C"}, {"A", "B"}}
	if len(edges) != len(want) {
		t.Fatalf("len(Edges()) = %d; want %d", len(edges), len(want))
	}
	for i, e := range edges {
		if e.Start.Name != want[i][0] || e.End.Name != want[i][1] {
			t.Errorf("Edges()[%d] = %s→%s; want %s→%s",
				i, e.Start.Name, e.End.Name, want[i][0], want[i][1])
		}
	}
}

// ------------------------------------------------------------------------
// 4. Generic keys: graphs keyed by something other than strings.
// ------------------------------------------------------------------------

func TestGraph_IntKeys(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 3; i++ {
		if err := g.AddNode(i); err != nil {
			t.Fatalf("AddNode(%d) = %v", i, err)
		}
	}
	if err := g.AddEdge(0, 1, 1.5); err != nil {
		t.Fatal(err)
	}
	if err := g.AddNode(1); !errors.Is(err, core.ErrDuplicateNode) {
		t.Errorf("AddNode(1) again = %v; want ErrDuplicateNode", err)
	}
	if !g.HasEdge(0, 1) || g.HasEdge(1, 0) {
		t.Error("unexpected edge membership for int-keyed graph")
	}
}

// ------------------------------------------------------------------------
// 5. Teardown: Close severs edge collections safely and idempotently.
// ------------------------------------------------------------------------

func TestGraph_Close_SeversEdgeCollections(t *testing.T) {
	g := core.NewGraph[string]()
	for _, name := range []string{"A", "B", "C"} {
		_ = g.AddNode(name)
	}
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("C", "A", 3) // a genuine cycle A→B→C→A

	// Keep a node reference across teardown, as a traversal step would.
	held, _ := g.Node("B")

	g.Close()

	// The graph is empty afterwards.
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("after Close: nodes=%d edges=%d; want 0 and 0",
			g.NodeCount(), g.EdgeCount())
	}
	if g.HasNode("A") {
		t.Error("HasNode(A) = true after Close; want false")
	}

	// The held node stays valid: name intact, collections severed.
	if held.Name != "B" {
		t.Errorf("held.Name = %q after Close; want %q", held.Name, "B")
	}
	if len(held.OutEdges()) != 0 || len(held.InEdges()) != 0 {
		t.Error("held node must report empty edge collections after Close")
	}
}

func TestGraph_Close_Idempotent(t *testing.T) {
	g := core.NewGraph[string]()
	_ = g.AddNode("A")
	_ = g.AddNode("B")
	_ = g.AddEdge("A", "B", 1)

	g.Close()
	g.Close() // second call must be a harmless no-op

	if g.NodeCount() != 0 {
		t.Errorf("NodeCount() = %d after double Close; want 0", g.NodeCount())
	}
	// The graph remains usable for a fresh build after teardown.
	if err := g.AddNode("A"); err != nil {
		t.Errorf("AddNode(A) after Close = %v; want nil", err)
	}
}
