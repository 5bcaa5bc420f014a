package knowngraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsunaou/polysi-go/history"
	"github.com/tsunaou/polysi-go/knowngraph"
)

// buildWriteSkew builds the write-skew history from spec.md §8:
// init writes x=0,y=0; S1=[T1: r(x,0), w(y,1)]; S2=[T2: r(y,0), w(x,1)].
func buildWriteSkew(t *testing.T) *history.History {
	t.Helper()
	h := history.NewHistory()

	sInit, _ := h.AddSession(0)
	tInit, _ := h.AddTransaction(sInit, 0)
	_ = tInit.Write("x", "0")
	_ = tInit.Write("y", "0")
	tInit.Commit()

	s1, _ := h.AddSession(1)
	t1, _ := h.AddTransaction(s1, 1)
	_ = t1.Read("x", "0")
	_ = t1.Write("y", "1")
	t1.Commit()

	s2, _ := h.AddSession(2)
	t2, _ := h.AddTransaction(s2, 2)
	_ = t2.Read("y", "0")
	_ = t2.Write("x", "1")
	t2.Commit()

	require.NoError(t, h.Freeze())
	return h
}

func TestNewOnlySOAndWR(t *testing.T) {
	r := require.New(t)
	h := buildWriteSkew(t)
	g := knowngraph.New(h)

	r.ElementsMatch([]int{0, 1, 2}, g.Nodes())

	// T1 reads x=0 from T0 -> WR edge T0->T1 key x.
	succ := g.ASuccessors(0)
	r.Contains(succ, 1)
	r.Contains(succ, 2)

	var sawWRx, sawWRy bool
	for _, e := range succ[1] {
		if e.Type == knowngraph.WR && e.Key == "x" {
			sawWRx = true
		}
	}
	for _, e := range succ[2] {
		if e.Type == knowngraph.WR && e.Key == "y" {
			sawWRy = true
		}
	}
	r.True(sawWRx)
	r.True(sawWRy)

	// B (RW) is empty before the constraint generator / pruner ever runs.
	r.Empty(g.BEdges())
}

func TestPutEdgeRoutesByType(t *testing.T) {
	r := require.New(t)
	h := buildWriteSkew(t)
	g := knowngraph.New(h)

	r.NoError(g.PutEdge(knowngraph.Edge{From: 1, To: 2, Type: knowngraph.WW, Key: "x"}))
	r.NoError(g.PutEdge(knowngraph.Edge{From: 2, To: 1, Type: knowngraph.RW, Key: "y"}))

	aEdges := g.EdgesBetween(1, 2)
	r.Len(aEdges, 1)
	r.Equal(knowngraph.WW, aEdges[0].Type)

	bEdges := g.EdgesBetween(2, 1)
	r.Len(bEdges, 1)
	r.Equal(knowngraph.RW, bEdges[0].Type)

	r.ErrorIs(g.PutEdge(knowngraph.Edge{From: 99, To: 1, Type: knowngraph.WW}), knowngraph.ErrUnknownNode)
}

func TestReadersOfMissingIsEmptyNotError(t *testing.T) {
	r := require.New(t)
	h := buildWriteSkew(t)
	g := knowngraph.New(h)

	r.Empty(g.ReadersOf(1, "nonexistent-key"))
	r.Empty(g.ReadersOf(999, "x"))
}

func TestParallelEdgesPreserved(t *testing.T) {
	r := require.New(t)
	h := buildWriteSkew(t)
	g := knowngraph.New(h)

	r.NoError(g.PutEdge(knowngraph.Edge{From: 1, To: 2, Type: knowngraph.WW, Key: "x"}))
	r.NoError(g.PutEdge(knowngraph.Edge{From: 1, To: 2, Type: knowngraph.WW, Key: "z"}))

	r.Len(g.EdgesBetween(1, 2), 2)
}
