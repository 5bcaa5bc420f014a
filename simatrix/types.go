package simatrix

import (
	roaring "github.com/RoaringBitmap/roaring/v2"
)

// Source is anything MatrixGraph can be built from: a fixed node set and,
// for each node, its direct successors. knowngraph.KnownGraph's A and B
// sides satisfy this via the FromA/FromB adapters in build.go.
type Source interface {
	Nodes() []int
	Successors(node int) []int
}

// SessionPos locates a transaction within its session, as needed by
// ReduceEdges (spec.md §4.4).
type SessionPos struct {
	Session int
	Pos     int
}

// MatrixGraph is a directed graph over a fixed node set, represented as one
// roaring bitmap per source row (bitmap row i = the set of indices j such
// that there is an edge from node(i) to node(j)).
type MatrixGraph struct {
	nodeIndex map[int]int // node id -> row/col index
	indexNode []int       // index -> node id

	rows []*roaring.Bitmap
}

// Len returns the number of nodes.
func (g *MatrixGraph) Len() int { return len(g.indexNode) }

// Nodes returns every node, in index order.
func (g *MatrixGraph) Nodes() []int {
	out := make([]int, len(g.indexNode))
	copy(out, g.indexNode)
	return out
}

// NodeAt returns the node at the given index.
func (g *MatrixGraph) NodeAt(index int) int { return g.indexNode[index] }

// IndexOf returns the index of a node, or ok=false if absent.
func (g *MatrixGraph) IndexOf(node int) (index int, ok bool) {
	index, ok = g.nodeIndex[node]
	return
}

// Successors returns the direct successors of node, or nil (and false) if
// node is not in the graph.
func (g *MatrixGraph) Successors(node int) ([]int, bool) {
	i, ok := g.nodeIndex[node]
	if !ok {
		return nil, false
	}
	arr := g.rows[i].ToArray()
	out := make([]int, len(arr))
	for k, idx := range arr {
		out[k] = g.indexNode[idx]
	}
	return out, true
}

// HasEdge reports whether there is a direct edge from -> to.
func (g *MatrixGraph) HasEdge(from, to int) bool {
	fi, ok := g.nodeIndex[from]
	if !ok {
		return false
	}
	ti, ok := g.nodeIndex[to]
	if !ok {
		return false
	}
	return g.rows[fi].Contains(uint32(ti))
}

// Reaches reports whether to's index is a member of from's row, i.e.
// whether g (typically a reachability matrix) records from ↝ to.
func (g *MatrixGraph) Reaches(from, to int) bool { return g.HasEdge(from, to) }

// sameBijection reports whether g and other share the identical
// node↔index mapping (by value, not pointer identity, so independently
// constructed graphs compose whenever their constructions produced the same
// indexing; graphs over the same node set whose edges give different
// topological orders do not).
func (g *MatrixGraph) sameBijection(other *MatrixGraph) bool {
	if len(g.indexNode) != len(other.indexNode) {
		return false
	}
	for i, n := range g.indexNode {
		if other.indexNode[i] != n {
			return false
		}
	}
	return true
}

// cloneRows deep-copies rows so results never alias their inputs.
func cloneRows(rows []*roaring.Bitmap) []*roaring.Bitmap {
	out := make([]*roaring.Bitmap, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}

func emptyRows(n int) []*roaring.Bitmap {
	out := make([]*roaring.Bitmap, n)
	for i := range out {
		out[i] = roaring.New()
	}
	return out
}
