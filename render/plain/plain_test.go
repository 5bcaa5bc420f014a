package plain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsunaou/polysi-go/constraint"
	"github.com/tsunaou/polysi-go/knowngraph"
	"github.com/tsunaou/polysi-go/verdict"
)

func TestFormatAccept(t *testing.T) {
	out := Format(verdict.Accepted())
	require.Equal(t, "ACCEPT: history satisfies snapshot isolation\n", out)
}

func TestFormatRejectWithEdgesAndConstraints(t *testing.T) {
	v := verdict.SolverUNSAT(
		[]knowngraph.Edge{{From: 1, To: 2, Type: knowngraph.RW, Key: "x"}},
		[]constraint.SIConstraint{{
			ID: 0, WriteTxn1: 1, WriteTxn2: 2,
			Edges1: []constraint.SIEdge{{From: 1, To: 2, Type: knowngraph.WW, Key: "x"}},
			Edges2: []constraint.SIEdge{{From: 2, To: 1, Type: knowngraph.WW, Key: "x"}},
		}},
	)

	out := Format(v)
	require.True(t, strings.HasPrefix(out, "REJECT:"))
	require.Contains(t, out, "1 -> 2")
	require.Contains(t, out, "C0 {1, 2}")
	require.Contains(t, out, "side 1:")
	require.Contains(t, out, "side 2:")
}

func TestFormatEarlyCycleHasNoConstraints(t *testing.T) {
	v := verdict.EarlyCycle([]knowngraph.Edge{{From: 1, To: 2, Type: knowngraph.RW, Key: "x"}})
	out := Format(v)
	require.Contains(t, out, "early cycle")
	require.NotContains(t, out, "conflicting constraints")
}
