package simatrix

// Composition returns a new MatrixGraph where result[i] = ⋃_{j∈self[i]}
// other[j] (spec.md §4.3). self and other must share the same node↔index
// bijection; Composition never mutates either operand.
func (g *MatrixGraph) Composition(other *MatrixGraph) (*MatrixGraph, error) {
	if !g.sameBijection(other) {
		return nil, ErrBijectionMismatch
	}

	rows := emptyRows(len(g.indexNode))
	for i, row := range g.rows {
		for _, j := range row.ToArray() {
			rows[i].Or(other.rows[j])
		}
	}

	return &MatrixGraph{nodeIndex: g.nodeIndex, indexNode: g.indexNode, rows: rows}, nil
}

// Union returns the row-wise bitmap OR of g and other. Both must share the
// same node↔index bijection; Union never mutates either operand.
func (g *MatrixGraph) Union(other *MatrixGraph) (*MatrixGraph, error) {
	if !g.sameBijection(other) {
		return nil, ErrBijectionMismatch
	}

	rows := cloneRows(g.rows)
	for i, row := range rows {
		row.Or(other.rows[i])
	}

	return &MatrixGraph{nodeIndex: g.nodeIndex, indexNode: g.indexNode, rows: rows}, nil
}

// HasSelfLoop reports whether any node has a direct edge to itself, i.e.
// rows[i] contains i. It is the yes/no form of SelfLoopNodes, which is what
// the pruner calls on matA∘matB before ever calling Reachability (spec.md
// §4.6 step 2).
func (g *MatrixGraph) HasSelfLoop() bool {
	for i, row := range g.rows {
		if row.Contains(uint32(i)) {
			return true
		}
	}
	return false
}

// SelfLoopNodes returns every node with a direct edge to itself, in index
// order, for witness extraction (spec.md §1 "minimal... conflicting
// edges"): a caller that only needs HasSelfLoop's true case then wants to
// know *which* node to explain starts here instead of re-scanning rows.
func (g *MatrixGraph) SelfLoopNodes() []int {
	var out []int
	for i, row := range g.rows {
		if row.Contains(uint32(i)) {
			out = append(out, g.indexNode[i])
		}
	}
	return out
}

// FindCycle returns one cycle's node sequence v0, v1, ..., vk (with an
// implied closing edge vk -> v0), found via a single deterministic DFS
// (nodes and successors visited in ascending index order), or nil if g is
// acyclic. Like HasLoops, this answers "is there a cycle", but keeps the
// path instead of discarding it, so callers can translate each hop back
// into the real edges that produced it instead of reporting the whole
// graph as the witness.
func (g *MatrixGraph) FindCycle() []int {
	n := len(g.rows)
	const (
		white = iota
		gray
		black
	)
	color := make([]int, n)
	parent := make([]int, n)

	var cyclePath []int
	var dfs func(u int) bool
	dfs = func(u int) bool {
		color[u] = gray
		succ := g.rows[u].ToArray()
		for _, v32 := range succ {
			v := int(v32)
			switch color[v] {
			case white:
				parent[v] = u
				if dfs(v) {
					return true
				}
			case gray:
				revPath := []int{u}
				for x := u; x != v; {
					x = parent[x]
					revPath = append(revPath, x)
				}
				cyclePath = make([]int, len(revPath))
				for i, x := range revPath {
					cyclePath[len(revPath)-1-i] = x
				}
				return true
			}
		}
		color[u] = black
		return false
	}

	for i := 0; i < n; i++ {
		if color[i] == white && dfs(i) {
			break
		}
	}
	if cyclePath == nil {
		return nil
	}

	out := make([]int, len(cyclePath))
	for i, idx := range cyclePath {
		out[i] = g.indexNode[idx]
	}
	return out
}

// WithSelfLoops returns a copy of g with a direct self-loop added to every
// node. Composing a reflexive-closed A with B (rather than bare A) is what
// lets a pure-B anti-dependency cycle — the canonical write-skew 2-cycle,
// with no A edge anywhere between the two transactions — surface as a
// genuine edge in A∘B: identity∘B = B (spec.md §8's write-skew example
// requires exactly this for the violation to show up "in A∪(A∘B)").
func (g *MatrixGraph) WithSelfLoops() *MatrixGraph {
	rows := cloneRows(g.rows)
	for i, row := range rows {
		row.Add(uint32(i))
	}
	return &MatrixGraph{nodeIndex: g.nodeIndex, indexNode: g.indexNode, rows: rows}
}
