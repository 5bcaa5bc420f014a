package prune

import (
	"github.com/tsunaou/polysi-go/constraint"
	"github.com/tsunaou/polysi-go/knowngraph"
	"github.com/tsunaou/polysi-go/simatrix"
)

// Result is the outcome of Run.
type Result struct {
	// Cycle is true if a round found a self-loop in A∘B: the history
	// already violates SI and the solver should not be invoked.
	Cycle bool
	// Remaining holds the constraints the loop could not discharge.
	Remaining []constraint.SIConstraint
	// Rounds is the number of pruning rounds executed, for driver-side
	// logging (spec.md §4.16's zap fields); it carries no decision weight.
	Rounds int
	// WitnessEdges holds the real KnownGraph edges that produced the cycle
	// when Cycle is true: the hops of one concrete cycle, translated back
	// from the matrix composition that found it, not a dump of every
	// known edge (spec.md §1 "minimal... conflicting edges").
	WitnessEdges []knowngraph.Edge
}

// Run repeats pruning rounds over g and constraints until a round
// discharges fewer than cfg.stopThreshold·len(constraints) constraints, or
// an early cycle is found (spec.md §4.6). pos supplies each transaction's
// session position for ReduceEdges (spec.md §4.4); it is typically
// simatrix.SessionPositions(h) for the history g was built from.
//
// Run mutates g by folding discharged constraints' winning side into it
// (spec.md §8 property 6: KnownGraph only grows).
func Run(g *knowngraph.KnownGraph, constraints []constraint.SIConstraint, pos map[int]simatrix.SessionPos, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)
	total := len(constraints)
	remaining := constraints
	rounds := 0

	for {
		rounds++
		matA, matB := simatrix.FromKnownGraph(g)

		// Compose through A's reflexive closure, not bare A: a zero-hop
		// "path" through A is valid, so a pure-B anti-dependency cycle
		// (no A edge anywhere between the two transactions) still shows
		// up in matC, matching the write-skew example of spec.md §8.
		matAsl := matA.WithSelfLoops()
		matC, err := matAsl.Composition(matB)
		if err != nil {
			return Result{}, err
		}
		if loopNodes := matC.SelfLoopNodes(); len(loopNodes) > 0 {
			witness := selfLoopWitness(g, matAsl, matB, loopNodes[0])
			return Result{Cycle: true, Remaining: remaining, Rounds: rounds, WitnessEdges: witness}, nil
		}

		unionAC, err := matA.Union(matC)
		if err != nil {
			return Result{}, err
		}
		// matC's own self-loop check above only catches a cycle closing in
		// a single A-then-B hop; a longer cycle built purely from folded
		// RW edges (no A edge at all between the transactions involved)
		// only shows up once A and C are unioned together.
		if cycle := unionAC.FindCycle(); cycle != nil {
			witness := cycleWitness(g, matA, matB, cycle)
			return Result{Cycle: true, Remaining: remaining, Rounds: rounds, WitnessEdges: witness}, nil
		}
		r := simatrix.ReduceEdges(unionAC, pos).Reachability()

		var stillOpen []constraint.SIConstraint
		discharged := 0
		for _, c := range remaining {
			switch {
			case sideConflicts(c.Edges1, matA, r):
				if err := fold(g, c.Edges2); err != nil {
					return Result{}, err
				}
				discharged++
			case sideConflicts(c.Edges2, matA, r):
				if err := fold(g, c.Edges1); err != nil {
					return Result{}, err
				}
				discharged++
			default:
				stillOpen = append(stillOpen, c)
			}
		}
		remaining = stillOpen

		if discharged == 0 || float64(discharged) < cfg.stopThreshold*float64(total) {
			return Result{Cycle: false, Remaining: remaining, Rounds: rounds}, nil
		}
	}
}
