package prune

import (
	"github.com/tsunaou/polysi-go/constraint"
	"github.com/tsunaou/polysi-go/knowngraph"
	"github.com/tsunaou/polysi-go/simatrix"
)

// sideConflicts implements spec.md §4.6's conflict test: a side's edges
// conflict with R (a reachability matrix over reduceEdges(A ∪ A∘B)) and
// matA if any single edge in it already contradicts the known order.
//
//   - WW u→v conflicts if R has v ↝ u.
//   - RW u→v conflicts if some p with p →A u has R showing v ↝ p (the WR
//     edge that produced p →A u would then be forced both before and
//     after v).
//
// A side that conflicts cannot hold, so the pruner folds the other side in.
func sideConflicts(edges []constraint.SIEdge, matA, r *simatrix.MatrixGraph) bool {
	for _, e := range edges {
		switch e.Type {
		case knowngraph.WW:
			if r.Reaches(e.To, e.From) {
				return true
			}
		case knowngraph.RW:
			for _, p := range predecessorsInA(matA, e.From) {
				if r.Reaches(e.To, p) {
					return true
				}
			}
		}
	}
	return false
}

// predecessorsInA returns every node p with a direct A edge p -> u.
func predecessorsInA(matA *simatrix.MatrixGraph, u int) []int {
	var out []int
	for _, p := range matA.Nodes() {
		if matA.HasEdge(p, u) {
			out = append(out, p)
		}
	}
	return out
}

// fold writes every edge of a discharged side into g: WW edges join A, RW
// edges join B (spec.md §4.6 "Folding"). This is the pruner's only write
// path, monotone by construction (spec.md §8 property 6).
func fold(g *knowngraph.KnownGraph, edges []constraint.SIEdge) error {
	for _, e := range edges {
		if err := g.PutEdge(knowngraph.Edge{From: e.From, To: e.To, Type: e.Type, Key: e.Key}); err != nil {
			return err
		}
	}
	return nil
}
