package simatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsunaou/polysi-go/simatrix"
)

func chain(n int) *simatrix.MatrixGraph {
	nodes := make([]int, n)
	var edges [][2]int
	for i := 0; i < n; i++ {
		nodes[i] = i
		if i+1 < n {
			edges = append(edges, [2]int{i, i + 1})
		}
	}
	return simatrix.NewFromEdges(nodes, edges)
}

func TestReachabilityOnChainIsTransitiveClosure(t *testing.T) {
	r := require.New(t)
	g := chain(4) // 0->1->2->3
	reach := g.Reachability()

	r.True(reach.Reaches(0, 0))
	r.True(reach.Reaches(0, 1))
	r.True(reach.Reaches(0, 2))
	r.True(reach.Reaches(0, 3))
	r.True(reach.Reaches(2, 3))
	r.False(reach.Reaches(3, 0))
	r.False(reach.Reaches(1, 0))
}

func TestHasLoopsDetectsCycle(t *testing.T) {
	r := require.New(t)
	g := simatrix.NewFromEdges([]int{0, 1, 2}, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	r.True(g.HasLoops())

	dag := chain(3)
	r.False(dag.HasLoops())
}

func TestHasSelfLoop(t *testing.T) {
	r := require.New(t)
	g := simatrix.NewFromEdges([]int{0, 1}, [][2]int{{0, 1}, {1, 1}})
	r.True(g.HasSelfLoop())

	dag := chain(3)
	r.False(dag.HasSelfLoop())
}

func TestReachabilityFallsBackOnCycle(t *testing.T) {
	r := require.New(t)
	g := simatrix.NewFromEdges([]int{0, 1, 2}, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	reach := g.Reachability()

	// Every node reaches every node in a 3-cycle.
	for _, a := range []int{0, 1, 2} {
		for _, b := range []int{0, 1, 2} {
			r.True(reach.Reaches(a, b), "%d should reach %d", a, b)
		}
	}
}

func TestCompositionMatchesDefinition(t *testing.T) {
	r := require.New(t)
	// A: 0->1. B: 1->2.
	a := simatrix.NewFromEdges([]int{0, 1, 2}, [][2]int{{0, 1}})
	b := simatrix.NewFromEdges([]int{0, 1, 2}, [][2]int{{1, 2}})

	c, err := a.Composition(b)
	r.NoError(err)
	r.True(c.HasEdge(0, 2))
	r.False(c.HasEdge(0, 1))
	r.False(c.HasEdge(1, 2))
}

func TestSelfLoopNodes(t *testing.T) {
	r := require.New(t)
	g := simatrix.NewFromEdges([]int{0, 1, 2}, [][2]int{{0, 1}, {1, 1}})
	r.Equal([]int{1}, g.SelfLoopNodes())

	dag := chain(3)
	r.Nil(dag.SelfLoopNodes())
}

func TestFindCycleReturnsPath(t *testing.T) {
	r := require.New(t)
	g := simatrix.NewFromEdges([]int{0, 1, 2}, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	cycle := g.FindCycle()
	r.Len(cycle, 3)
	r.ElementsMatch([]int{0, 1, 2}, cycle)

	dag := chain(3)
	r.Nil(dag.FindCycle())
}

func TestUnionIsRowWiseOr(t *testing.T) {
	r := require.New(t)
	// Built as a pair so both share A's node↔index bijection; built alone,
	// b's topological order [1, 0] would not match a's [0, 1].
	a, b := simatrix.NewPairFromEdges([]int{0, 1}, [][2]int{{0, 1}}, [][2]int{{1, 0}})

	u, err := a.Union(b)
	r.NoError(err)
	r.True(u.HasEdge(0, 1))
	r.True(u.HasEdge(1, 0))

	// a and b are untouched (no mutation of operands).
	r.False(a.HasEdge(1, 0))
	r.False(b.HasEdge(0, 1))
}

func TestBijectionMismatchRejected(t *testing.T) {
	r := require.New(t)
	a := simatrix.NewFromEdges([]int{0, 1}, nil)
	b := simatrix.NewFromEdges([]int{0, 1, 2}, nil)

	_, err := a.Union(b)
	r.ErrorIs(err, simatrix.ErrBijectionMismatch)

	_, err = a.Composition(b)
	r.ErrorIs(err, simatrix.ErrBijectionMismatch)
}

func TestReduceEdgesPreservesReachabilityOnSessionFan(t *testing.T) {
	r := require.New(t)
	// Two sessions: {0,1,2} and {10,11}. Node 5 points to 1, 2, and 11.
	// Reducing should keep only node 1 (earliest in session 100) and 11.
	nodes := []int{5, 0, 1, 2, 10, 11}
	edges := [][2]int{{5, 1}, {5, 2}, {5, 11}, {0, 1}, {1, 2}, {10, 11}}
	g := simatrix.NewFromEdges(nodes, edges)

	pos := map[int]simatrix.SessionPos{
		0: {Session: 100, Pos: 0}, 1: {Session: 100, Pos: 1}, 2: {Session: 100, Pos: 2},
		10: {Session: 200, Pos: 0}, 11: {Session: 200, Pos: 1},
		5: {Session: 300, Pos: 0},
	}

	before := g.Reachability()
	reduced := simatrix.ReduceEdges(g, pos)
	after := reduced.Reachability()

	for _, from := range nodes {
		for _, to := range nodes {
			r.Equalf(before.Reaches(from, to), after.Reaches(from, to), "from=%d to=%d", from, to)
		}
	}

	// Node 5 should no longer have a direct edge to 2 (subsumed by 1->2).
	r.False(reduced.HasEdge(5, 2))
	r.True(reduced.HasEdge(5, 1))
	r.True(reduced.HasEdge(5, 11))
}
