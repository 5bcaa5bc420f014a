package simatrix

// ReduceEdges thins g's rows without changing reachability (spec.md §4.4):
// for each node n with successor set S, it keeps only
//  1. for every session appearing in S, the single successor in S that
//     session's earliest position, and
//  2. n's own immediate session successor (position exactly one greater
//     than n), if one exists in pos, whether or not rule 1 already selected
//     it and whether or not g has that edge.
//
// This is sound because session order is a total order per session:
// reaching the earliest successor in a session implies reaching every
// later transaction of that session via session-order edges alone.
// Reachability is therefore preserved only when g contains an edge from
// every transaction to its immediate session successor, as a KnownGraph's
// A side does; on a graph without those edges both rules can change it.
//
// pos supplies each node's (session, position-in-session); nodes absent
// from pos are treated as belonging to no session and are never forced in
// by rule 2.
func ReduceEdges(g *MatrixGraph, pos map[int]SessionPos) *MatrixGraph {
	n := len(g.indexNode)
	rows := emptyRows(n)

	// sessionNodeAt[session][position] = node id, for rule 2's lookup.
	sessionNodeAt := make(map[int]map[int]int)
	for node, p := range pos {
		if sessionNodeAt[p.Session] == nil {
			sessionNodeAt[p.Session] = make(map[int]int)
		}
		sessionNodeAt[p.Session][p.Pos] = node
	}

	type best struct {
		index int
		pos   int
	}

	for i, node := range g.indexNode {
		bestBySession := make(map[int]best)
		for _, sidx := range g.rows[i].ToArray() {
			succNode := g.indexNode[sidx]
			p, ok := pos[succNode]
			if !ok {
				// No session information: always keep (can't be subsumed by SO reasoning).
				rows[i].Add(sidx)
				continue
			}
			b, exists := bestBySession[p.Session]
			if !exists || p.Pos < b.pos {
				bestBySession[p.Session] = best{index: int(sidx), pos: p.Pos}
			}
		}
		for _, b := range bestBySession {
			rows[i].Add(uint32(b.index))
		}

		if np, ok := pos[node]; ok {
			if nextNode, ok := sessionNodeAt[np.Session][np.Pos+1]; ok {
				if nextIdx, ok := g.nodeIndex[nextNode]; ok {
					rows[i].Add(uint32(nextIdx))
				}
			}
		}
	}

	return &MatrixGraph{nodeIndex: g.nodeIndex, indexNode: g.indexNode, rows: rows}
}
