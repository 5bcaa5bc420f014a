package prune

import (
	"github.com/tsunaou/polysi-go/knowngraph"
	"github.com/tsunaou/polysi-go/simatrix"
)

// selfLoopWitness recovers the real KnownGraph edges behind a self-loop at
// node found in matAsl.Composition(matB): either a direct B self-edge
// (the identity leg of matAsl), or a genuine A node->j edge paired with a
// B j->node edge (spec.md §1 "minimal... conflicting edges", rather than
// the whole graph).
func selfLoopWitness(g *knowngraph.KnownGraph, matAsl, matB *simatrix.MatrixGraph, node int) []knowngraph.Edge {
	succ, _ := matAsl.Successors(node)
	for _, j := range succ {
		if !matB.HasEdge(j, node) {
			continue
		}
		if j == node {
			return g.EdgesBetween(node, node)
		}
		out := append([]knowngraph.Edge(nil), g.EdgesBetween(node, j)...)
		return append(out, g.EdgesBetween(j, node)...)
	}
	return nil
}

// cycleWitness translates a node cycle found in matA.Union(matC) (where
// matC = matA.WithSelfLoops().Composition(matB)) back into the real
// KnownGraph edges that produced each hop.
func cycleWitness(g *knowngraph.KnownGraph, matA, matB *simatrix.MatrixGraph, cycle []int) []knowngraph.Edge {
	var out []knowngraph.Edge
	for i, u := range cycle {
		v := cycle[(i+1)%len(cycle)]
		out = append(out, explainHop(g, matA, matB, u, v)...)
	}
	return out
}

// explainHop recovers the real edges behind one hop u -> v of a cycle
// found in matA.Union(matC): a direct A edge, a direct B edge (matC's
// identity leg), or a genuine two-hop A u->w then B w->v.
func explainHop(g *knowngraph.KnownGraph, matA, matB *simatrix.MatrixGraph, u, v int) []knowngraph.Edge {
	if direct := g.EdgesBetween(u, v); len(direct) > 0 {
		return direct
	}
	succ, _ := matA.Successors(u)
	for _, w := range succ {
		if matB.HasEdge(w, v) {
			out := append([]knowngraph.Edge(nil), g.EdgesBetween(u, w)...)
			return append(out, g.EdgesBetween(w, v)...)
		}
	}
	return nil
}
