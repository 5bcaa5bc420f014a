package simatrix

import (
	"sort"

	"github.com/tsunaou/polysi-go/knowngraph"
)

// New builds a MatrixGraph from src. If src's edges admit a topological
// order, that order becomes the node↔index bijection (so every edge runs
// from a lower to a higher index); otherwise nodes are indexed in sorted
// order and edges may run in either direction (spec.md §4.3 "Construction").
func New(src Source) *MatrixGraph {
	nodes := src.Nodes()
	order, acyclic := kahnOrder(nodes, src)
	indexNode := order
	if !acyclic {
		indexNode = append([]int(nil), nodes...)
		sort.Ints(indexNode)
	}

	nodeIndex := make(map[int]int, len(indexNode))
	for i, n := range indexNode {
		nodeIndex[n] = i
	}

	return buildRows(indexNode, nodeIndex, src)
}

// kahnOrder computes a topological order of nodes under src's edges via
// Kahn's algorithm. acyclic is false if any node could not be ordered,
// i.e. the edge set contains a cycle (spec.md §4.3 "hasLoops").
// When acyclic is false, order is nonetheless a deterministic (but not
// topological) listing of nodes — the processed prefix followed by the
// remaining nodes in the order nodes lists them — so callers that ignore the
// acyclic flag still get stable, if meaningless, indices.
func kahnOrder(nodes []int, src Source) (order []int, acyclic bool) {
	inDegree := make(map[int]int, len(nodes))
	for _, n := range nodes {
		inDegree[n] = 0
	}
	for _, u := range nodes {
		for _, v := range src.Successors(u) {
			if _, ok := inDegree[v]; ok {
				inDegree[v]++
			}
		}
	}

	// Deterministic queue: process the smallest-ID zero-in-degree node first.
	var queue []int
	for _, n := range nodes {
		if inDegree[n] == 0 {
			queue = append(queue, n)
		}
	}
	sort.Ints(queue)

	order = make([]int, 0, len(nodes))
	seen := make(map[int]bool, len(nodes))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		seen[u] = true

		var freed []int
		for _, v := range src.Successors(u) {
			if _, ok := inDegree[v]; !ok {
				continue
			}
			inDegree[v]--
			if inDegree[v] == 0 {
				freed = append(freed, v)
			}
		}
		sort.Ints(freed)
		queue = append(queue, freed...)
		sort.Ints(queue)
	}

	if len(order) == len(nodes) {
		return order, true
	}

	for _, n := range nodes {
		if !seen[n] {
			order = append(order, n)
		}
	}
	return order, false
}

// knownSource adapts one side of a knowngraph.KnownGraph to Source.
type knownSource struct {
	g    *knowngraph.KnownGraph
	succ func(g *knowngraph.KnownGraph, node int) map[int][]knowngraph.Edge
}

func (s knownSource) Nodes() []int { return s.g.Nodes() }

func (s knownSource) Successors(node int) []int {
	row := s.succ(s.g, node)
	out := make([]int, 0, len(row))
	for to := range row {
		out = append(out, to)
	}
	return out
}

// FromA builds a MatrixGraph from a KnownGraph's A side (SO ∪ WR ∪ folded WW),
// with its own node↔index bijection computed from A's topological order.
// Use FromKnownGraph instead when the result will be composed with B.
func FromA(g *knowngraph.KnownGraph) *MatrixGraph {
	return New(knownSource{g: g, succ: (*knowngraph.KnownGraph).ASuccessors})
}

// FromB builds a MatrixGraph from a KnownGraph's B side (RW, ∪ folded RW),
// with its own node↔index bijection computed from B's topological order.
// Use FromKnownGraph instead when the result will be composed with A.
func FromB(g *knowngraph.KnownGraph) *MatrixGraph {
	return New(knownSource{g: g, succ: (*knowngraph.KnownGraph).BSuccessors})
}

// FromKnownGraph builds matA and matB from the same KnownGraph sharing one
// node↔index bijection, as pruner rounds require (spec.md §4.6 step 1:
// "sharing the node map") so that matA.Composition(matB) is legal. The
// bijection is computed from A's topological order (A is expected to stay
// acyclic while SI holds); if A itself already has a cycle, nodes fall back
// to sorted order, same as New does for any other cyclic source.
func FromKnownGraph(g *knowngraph.KnownGraph) (matA, matB *MatrixGraph) {
	aSrc := knownSource{g: g, succ: (*knowngraph.KnownGraph).ASuccessors}
	bSrc := knownSource{g: g, succ: (*knowngraph.KnownGraph).BSuccessors}

	nodes := aSrc.Nodes()
	order, acyclic := kahnOrder(nodes, aSrc)
	indexNode := order
	if !acyclic {
		indexNode = append([]int(nil), nodes...)
		sort.Ints(indexNode)
	}

	nodeIndex := make(map[int]int, len(indexNode))
	for i, n := range indexNode {
		nodeIndex[n] = i
	}

	return buildRows(indexNode, nodeIndex, aSrc), buildRows(indexNode, nodeIndex, bSrc)
}

func buildRows(indexNode []int, nodeIndex map[int]int, src Source) *MatrixGraph {
	rows := emptyRows(len(indexNode))
	for _, u := range src.Nodes() {
		ui := nodeIndex[u]
		for _, v := range src.Successors(u) {
			vi, ok := nodeIndex[v]
			if !ok {
				continue
			}
			rows[ui].Add(uint32(vi))
		}
	}
	return &MatrixGraph{nodeIndex: nodeIndex, indexNode: indexNode, rows: rows}
}

// sliceSource is a Source over an explicit adjacency list, used by tests
// and by package solver to build ad-hoc MatrixGraphs from constraint-side
// edges that are not (yet) part of a KnownGraph.
type sliceSource struct {
	nodes []int
	adj   map[int][]int
}

// NewFromEdges builds a MatrixGraph over nodes with the given directed
// edges (from, to), deduplicating automatically (bitmap rows are sets).
func NewFromEdges(nodes []int, edges [][2]int) *MatrixGraph {
	adj := make(map[int][]int, len(nodes))
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
	}
	return New(sliceSource{nodes: nodes, adj: adj})
}

func (s sliceSource) Nodes() []int           { return s.nodes }
func (s sliceSource) Successors(n int) []int { return s.adj[n] }

// NewPairFromEdges builds two MatrixGraphs over the same node set and
// sharing one node↔index bijection (computed from edgesA's topological
// order, falling back to sorted order if edgesA itself has a cycle) — the
// general-purpose counterpart to FromKnownGraph for callers (notably
// package solver) that need to test ad hoc A/B edge sets for acyclicity
// without first materializing a knowngraph.KnownGraph.
func NewPairFromEdges(nodes []int, edgesA, edgesB [][2]int) (matA, matB *MatrixGraph) {
	aSrc := sliceSource{nodes: nodes, adj: adjacency(edgesA)}
	bSrc := sliceSource{nodes: nodes, adj: adjacency(edgesB)}

	order, acyclic := kahnOrder(nodes, aSrc)
	indexNode := order
	if !acyclic {
		indexNode = append([]int(nil), nodes...)
		sort.Ints(indexNode)
	}

	nodeIndex := make(map[int]int, len(indexNode))
	for i, n := range indexNode {
		nodeIndex[n] = i
	}

	return buildRows(indexNode, nodeIndex, aSrc), buildRows(indexNode, nodeIndex, bSrc)
}

func adjacency(edges [][2]int) map[int][]int {
	adj := make(map[int][]int, len(edges))
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
	}
	return adj
}
