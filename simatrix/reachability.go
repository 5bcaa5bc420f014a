package simatrix

import (
	"sort"

	roaring "github.com/RoaringBitmap/roaring/v2"
)

// HasLoops reports whether no topological order exists for g's current
// edges (Kahn's algorithm); false means g is a DAG (spec.md §4.3).
func (g *MatrixGraph) HasLoops() bool {
	_, acyclic := g.topoOrderSelf()
	return !acyclic
}

// topoOrderSelf computes a topological order directly over g's current
// index-space edges via Kahn's algorithm, independent of whatever order
// the node↔index bijection was originally built with — composition and
// union can introduce edges that run index-backward even when the
// original graph they were built from was acyclic.
func (g *MatrixGraph) topoOrderSelf() (order []int, acyclic bool) {
	n := len(g.rows)
	inDegree := make([]int, n)
	for _, row := range g.rows {
		for _, j := range row.ToArray() {
			inDegree[j]++
		}
	}

	var queue []int
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}
	sort.Ints(queue)

	order = make([]int, 0, n)
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)

		var freed []int
		for _, j := range g.rows[i].ToArray() {
			inDegree[j]--
			if inDegree[j] == 0 {
				freed = append(freed, int(j))
			}
		}
		sort.Ints(freed)
		queue = append(queue, freed...)
		sort.Ints(queue)
	}

	return order, len(order) == n
}

// Reachability computes the reflexive-transitive closure of g. When g's
// current edges admit a topological order, it is computed by reverse-topo
// dynamic programming; otherwise (a cycle exists) it falls back to
// per-node BFS (spec.md §4.3). Every node is reachable from itself in the
// result, by construction.
func (g *MatrixGraph) Reachability() *MatrixGraph {
	n := len(g.rows)
	rows := emptyRows(n)

	order, acyclic := g.topoOrderSelf()
	if acyclic {
		for k := n - 1; k >= 0; k-- {
			i := order[k]
			rows[i].Add(uint32(i))
			for _, j := range g.rows[i].ToArray() {
				rows[i].Or(rows[j])
			}
		}
	} else {
		for i := 0; i < n; i++ {
			rows[i] = g.bfsFrom(i)
		}
	}

	return &MatrixGraph{nodeIndex: g.nodeIndex, indexNode: g.indexNode, rows: rows}
}

// bfsFrom returns the reflexive set of nodes reachable from index start,
// used only when g's current edges contain a cycle.
func (g *MatrixGraph) bfsFrom(start int) *roaring.Bitmap {
	visited := roaring.New()
	visited.Add(uint32(start))

	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.rows[u].ToArray() {
			if !visited.Contains(v) {
				visited.Add(v)
				queue = append(queue, int(v))
			}
		}
	}

	return visited
}
