package solver

import (
	"github.com/tsunaou/polysi-go/constraint"
	"github.com/tsunaou/polysi-go/knowngraph"
	"github.com/tsunaou/polysi-go/simatrix"
)

// Conflict is the witness returned when Solve finds no satisfying
// orientation: the constraints whose joint assignment could not be made
// acyclic (spec.md §4.9 "conflictingConstraints"), plus the already-known
// KnownGraph edges (as opposed to the constraints' own candidate edges)
// that actually took part in the cycle the search hit. No minimality
// beyond what this search happens to find is claimed (spec.md §1
// Non-goals).
type Conflict struct {
	Constraints []constraint.SIConstraint
	Edges       []knowngraph.Edge
}

// Solve decides whether residual (the constraints the pruner left
// unresolved) admits an orientation that keeps g's known graph, plus the
// chosen edges, acyclic. g is read-only: Solve never folds edges back into
// it, unlike prune.Run (spec.md §4.10 "solver: built -> solved").
func Solve(g *knowngraph.KnownGraph, residual []constraint.SIConstraint) (sat bool, conflict Conflict) {
	nodes := g.Nodes()
	baseA := edgePairs(g.AEdges())
	baseB := edgePairs(g.BEdges())

	chosen, edges, ok := search(g, nodes, baseA, baseB, residual, 0, nil, nil, nil)
	if ok {
		return true, Conflict{}
	}
	return false, Conflict{Constraints: chosen, Edges: edges}
}

// search tries, for residual[i:], every remaining constraint's two sides
// in order, backtracking whenever a choice makes the accumulated A/B edge
// sets cyclic. On total failure it returns the deepest conflicting subset
// it found: the constraints already committed when some residual
// constraint had no acyclic side left, plus that constraint itself, along
// with the known-graph edges that closed the cycle for that failure.
func search(g *knowngraph.KnownGraph, nodes []int, extraA, extraB [][2]int, residual []constraint.SIConstraint, i int, committedA, committedB [][2]int, chosen []constraint.SIConstraint) ([]constraint.SIConstraint, []knowngraph.Edge, bool) {
	if i == len(residual) {
		return nil, nil, true
	}

	c := residual[i]
	var deepestConstraints []constraint.SIConstraint
	var deepestEdges []knowngraph.Edge
	for _, side := range [][]constraint.SIEdge{c.Edges1, c.Edges2} {
		sideA, sideB := splitSide(side)
		nextA := concat(committedA, sideA)
		nextB := concat(committedB, sideB)

		if !acyclic(nodes, concat(extraA, nextA), concat(extraB, nextB)) {
			continue
		}

		nextChosen := append(append([]constraint.SIConstraint(nil), chosen...), c)
		conflictConstraints, conflictEdges, ok := search(g, nodes, extraA, extraB, residual, i+1, nextA, nextB, nextChosen)
		if ok {
			return nil, nil, true
		}
		if len(conflictConstraints) > len(deepestConstraints) {
			deepestConstraints, deepestEdges = conflictConstraints, conflictEdges
		}
	}

	if deepestConstraints != nil {
		// Both sides kept c's own assignment acyclic, but every completion
		// failed deeper in the search: report the deepest subset found.
		return deepestConstraints, deepestEdges, false
	}

	// Neither side of c kept the graph acyclic given what's already
	// committed: c, together with every constraint already committed, is
	// the conflicting subset. Use c's first side to materialize a concrete
	// witness cycle and pull out the known-graph edges that closed it.
	finalChosen := append(append([]constraint.SIConstraint(nil), chosen...), c)
	sideA, sideB := splitSide(c.Edges1)
	witness := knownWitness(g, nodes, extraA, extraB, committedA, committedB, sideA, sideB)
	return finalChosen, witness, false
}

// knownWitness rebuilds the exact A/B edge sets that made c's first side
// infeasible, finds one concrete cycle in them, and keeps only the hops
// that trace back to g's own known edges (not the constraint's candidate
// edges, which are already reported via Conflict.Constraints).
func knownWitness(g *knowngraph.KnownGraph, nodes []int, extraA, extraB, committedA, committedB, sideA, sideB [][2]int) []knowngraph.Edge {
	combinedA := concat(extraA, concat(committedA, sideA))
	combinedB := concat(extraB, concat(committedB, sideB))

	matA, matB := simatrix.NewPairFromEdges(nodes, combinedA, combinedB)
	matC, err := matA.WithSelfLoops().Composition(matB)
	if err != nil {
		return nil
	}
	unionAC, err := matA.Union(matC)
	if err != nil {
		return nil
	}
	cycle := unionAC.FindCycle()
	if cycle == nil {
		return nil
	}

	knownA := pairSet(extraA)
	knownB := pairSet(extraB)
	var out []knowngraph.Edge
	for i, u := range cycle {
		v := cycle[(i+1)%len(cycle)]
		if knownA[[2]int{u, v}] {
			out = append(out, g.ASuccessors(u)[v]...)
		}
		if knownB[[2]int{u, v}] {
			out = append(out, g.BSuccessors(u)[v]...)
		}
	}
	return out
}

func pairSet(pairs [][2]int) map[[2]int]bool {
	out := make(map[[2]int]bool, len(pairs))
	for _, p := range pairs {
		out[p] = true
	}
	return out
}

func splitSide(edges []constraint.SIEdge) (a, b [][2]int) {
	for _, e := range edges {
		switch e.Type {
		case knowngraph.WW:
			a = append(a, [2]int{e.From, e.To})
		case knowngraph.RW:
			b = append(b, [2]int{e.From, e.To})
		}
	}
	return
}

func edgePairs(edges []knowngraph.Edge) [][2]int {
	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{e.From, e.To}
	}
	return out
}

func concat(a, b [][2]int) [][2]int {
	out := make([][2]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// acyclic reports whether A ∪ (A∘B) — composed through A's reflexive
// closure, same as package prune — has no cycle, over the given node set
// and edge lists (spec.md §4.7 "assert acyclicity").
func acyclic(nodes []int, aEdges, bEdges [][2]int) bool {
	matA, matB := simatrix.NewPairFromEdges(nodes, aEdges, bEdges)
	matC, err := matA.WithSelfLoops().Composition(matB)
	if err != nil {
		return false
	}
	unionAC, err := matA.Union(matC)
	if err != nil {
		return false
	}
	return !unionAC.HasLoops()
}
