package verdict

import (
	"github.com/tsunaou/polysi-go/constraint"
	"github.com/tsunaou/polysi-go/knowngraph"
)

// EdgeGroup is every known edge between one ordered pair of transactions,
// the shape spec.md §6 calls "(u, v, [Edge])".
type EdgeGroup struct {
	From  int
	To    int
	Edges []knowngraph.Edge
}

// Rejection is the witness carried by a NO verdict: known edges and
// constraints that jointly cannot be satisfied (spec.md §3 "SIConstraint",
// §6 "Reject"). Reason is a short human-readable classification of which
// pipeline stage produced the rejection (spec.md §7's error kinds).
type Rejection struct {
	Reason      string
	Edges       []EdgeGroup
	Constraints []constraint.SIConstraint
}

// Verdict is the checker's final output (spec.md §6).
type Verdict struct {
	Accept    bool
	Rejection *Rejection
}

// Accepted is the canonical YES verdict.
func Accepted() Verdict { return Verdict{Accept: true} }

// InvalidHistory builds a NO verdict for a loader-level contract violation
// (spec.md §7 error kind 1): no witness graph, just a reason.
func InvalidHistory(reason string) Verdict {
	return Verdict{Rejection: &Rejection{Reason: reason}}
}

// InternalInconsistency builds a NO verdict for an internal-consistency
// failure (spec.md §4.1, §7 error kind 2): fatal, no witness graph.
func InternalInconsistency(reason string) Verdict {
	return Verdict{Rejection: &Rejection{Reason: "internal inconsistency: " + reason}}
}

// EarlyCycle builds a NO verdict for a pruner-detected self-loop in A∘B
// (spec.md §7 error kind 3): a graph-only witness, no SAT needed. edges is
// the known A/B edges of the cycle that was found (prune.Result.WitnessEdges).
func EarlyCycle(edges []knowngraph.Edge) Verdict {
	return Verdict{Rejection: &Rejection{Reason: "early cycle in known graph", Edges: groupEdges(edges)}}
}

// SolverUNSAT builds a NO verdict from the solver's conflict clause
// (spec.md §4.9, §7 error kind 4).
func SolverUNSAT(edges []knowngraph.Edge, constraints []constraint.SIConstraint) Verdict {
	return Verdict{Rejection: &Rejection{
		Reason:      "no acyclic orientation of residual constraints",
		Edges:       groupEdges(edges),
		Constraints: constraints,
	}}
}

func groupEdges(edges []knowngraph.Edge) []EdgeGroup {
	byPair := make(map[[2]int][]knowngraph.Edge)
	var order [][2]int
	for _, e := range edges {
		k := [2]int{e.From, e.To}
		if _, ok := byPair[k]; !ok {
			order = append(order, k)
		}
		byPair[k] = append(byPair[k], e)
	}

	out := make([]EdgeGroup, 0, len(order))
	for _, k := range order {
		out = append(out, EdgeGroup{From: k[0], To: k[1], Edges: byPair[k]})
	}
	return out
}
