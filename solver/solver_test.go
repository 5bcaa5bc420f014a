package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsunaou/polysi-go/constraint"
	"github.com/tsunaou/polysi-go/history"
	"github.com/tsunaou/polysi-go/knowngraph"
	"github.com/tsunaou/polysi-go/solver"
)

func buildLostUpdate(t *testing.T) *history.History {
	t.Helper()
	h := history.NewHistory()

	s1, _ := h.AddSession(1)
	t1, _ := h.AddTransaction(s1, 1)
	require.NoError(t, t1.Write("x", "1"))
	t1.Commit()

	s2, _ := h.AddSession(2)
	t2, _ := h.AddTransaction(s2, 2)
	require.NoError(t, t2.Write("x", "2"))
	t2.Commit()

	require.NoError(t, h.Freeze())
	return h
}

func buildWriteSkew(t *testing.T) *history.History {
	t.Helper()
	h := history.NewHistory()

	sInit, _ := h.AddSession(0)
	t0, _ := h.AddTransaction(sInit, 0)
	require.NoError(t, t0.Write("x", "0"))
	require.NoError(t, t0.Write("y", "0"))
	t0.Commit()

	s1, _ := h.AddSession(1)
	t1, _ := h.AddTransaction(s1, 1)
	require.NoError(t, t1.Read("x", "0"))
	require.NoError(t, t1.Write("y", "1"))
	t1.Commit()

	s2, _ := h.AddSession(2)
	t2, _ := h.AddTransaction(s2, 2)
	require.NoError(t, t2.Read("y", "0"))
	require.NoError(t, t2.Write("x", "1"))
	t2.Commit()

	require.NoError(t, h.Freeze())
	return h
}

func TestSolveAcceptsLostUpdate(t *testing.T) {
	r := require.New(t)
	h := buildLostUpdate(t)
	g := knowngraph.New(h)
	cs := constraint.Generate(g, h)

	sat, _ := solver.Solve(g, cs)
	r.True(sat)
}

func TestSolveRejectsWriteSkewDirectly(t *testing.T) {
	r := require.New(t)
	h := buildWriteSkew(t)
	g := knowngraph.New(h)
	cs := constraint.Generate(g, h)

	// Feed the solver the un-pruned constraints directly: it must still
	// find the write-skew anti-dependency cycle by search alone.
	sat, conflict := solver.Solve(g, cs)
	r.False(sat)
	r.NotEmpty(conflict.Constraints)
}

func TestSolveAcceptsEmptyResidual(t *testing.T) {
	r := require.New(t)
	h := history.NewHistory()
	require.NoError(t, h.Freeze())
	g := knowngraph.New(h)

	sat, _ := solver.Solve(g, nil)
	r.True(sat)
}
