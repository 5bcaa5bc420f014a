package knowngraph

import (
	"sort"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tsunaou/polysi-go/history"
)

// ReadFromIndex maps writerTxnID → key → reader transaction IDs, recording
// the key witnessing each writes-read edge (spec.md §3 "ReadFrom view").
type ReadFromIndex map[int]map[string][]int

// KnownGraph holds the two precedence multigraphs A and B plus the
// ReadFrom side index, over a fixed node set of transaction IDs.
type KnownGraph struct {
	mu sync.RWMutex

	nodes    mapset.Set[int]
	a        map[int]map[int][]Edge
	b        map[int]map[int][]Edge
	readFrom ReadFromIndex
}

type kv struct {
	key, value string
}

// New builds a KnownGraph from a frozen history: session-order edges
// between consecutive transactions of each session, and writes-read edges
// for every cross-transaction read (spec.md §4.2).
func New(h *history.History) *KnownGraph {
	g := &KnownGraph{
		nodes:    mapset.NewThreadUnsafeSet[int](),
		a:        make(map[int]map[int][]Edge),
		b:        make(map[int]map[int][]Edge),
		readFrom: make(ReadFromIndex),
	}

	for _, t := range h.Transactions() {
		g.addNode(t.ID)
	}

	for _, s := range h.Sessions() {
		for i := 1; i < len(s.Transactions); i++ {
			prev, cur := s.Transactions[i-1], s.Transactions[i]
			g.putUnlocked(Edge{From: prev.ID, To: cur.ID, Type: SO})
		}
	}

	writer := make(map[kv]int)
	for _, t := range h.Transactions() {
		for _, e := range t.Writes() {
			k := kv{e.Key, e.Value}
			if _, exists := writer[k]; !exists {
				writer[k] = t.ID
			}
		}
	}
	for _, t := range h.Transactions() {
		for _, e := range t.Reads() {
			w, ok := writer[kv{e.Key, e.Value}]
			if !ok || w == t.ID {
				continue
			}
			g.putUnlocked(Edge{From: w, To: t.ID, Type: WR, Key: e.Key})
		}
	}

	return g
}

func (g *KnownGraph) addNode(id int) {
	g.nodes.Add(id)
	if g.a[id] == nil {
		g.a[id] = make(map[int][]Edge)
	}
	if g.b[id] == nil {
		g.b[id] = make(map[int][]Edge)
	}
}

// PutEdge routes e into A (SO, WR, WW) or B (RW), recording WR edges in the
// ReadFrom index as well. Returns ErrUnknownNode if either endpoint is not
// a graph node, or ErrWrongEdgeType for any other EdgeType.
//
// This is the pruner's only write path (spec.md §4.6 "folding"): edges are
// added, never removed or overwritten.
func (g *KnownGraph) PutEdge(e Edge) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.nodes.Contains(e.From) {
		return ErrUnknownNode
	}
	if !g.nodes.Contains(e.To) {
		return ErrUnknownNode
	}
	if !inA(e.Type) && !inB(e.Type) {
		return ErrWrongEdgeType
	}

	g.putUnlocked(e)
	return nil
}

// putUnlocked assumes both endpoints already exist as nodes and mu is held
// (or construction is still single-threaded, as in New).
func (g *KnownGraph) putUnlocked(e Edge) {
	if inA(e.Type) {
		g.a[e.From][e.To] = append(g.a[e.From][e.To], e)
	} else {
		g.b[e.From][e.To] = append(g.b[e.From][e.To], e)
	}
	if e.Type == WR {
		if g.readFrom[e.From] == nil {
			g.readFrom[e.From] = make(map[string][]int)
		}
		g.readFrom[e.From][e.Key] = append(g.readFrom[e.From][e.Key], e.To)
	}
}

// Nodes returns every transaction ID in ascending order.
func (g *KnownGraph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.nodes.ToSlice()
	sort.Ints(out)
	return out
}

// ASuccessors returns the A-edges leaving from, grouped by destination.
func (g *KnownGraph) ASuccessors(from int) map[int][]Edge { return g.successors(g.a, from) }

// BSuccessors returns the B-edges leaving from, grouped by destination.
func (g *KnownGraph) BSuccessors(from int) map[int][]Edge { return g.successors(g.b, from) }

func (g *KnownGraph) successors(side map[int]map[int][]Edge, from int) map[int][]Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row := side[from]
	out := make(map[int][]Edge, len(row))
	for to, edges := range row {
		cp := make([]Edge, len(edges))
		copy(cp, edges)
		out[to] = cp
	}
	return out
}

// AEdges returns every A edge, in no particular order.
func (g *KnownGraph) AEdges() []Edge { return flatten(g.a, &g.mu) }

// BEdges returns every B edge, in no particular order.
func (g *KnownGraph) BEdges() []Edge { return flatten(g.b, &g.mu) }

func flatten(side map[int]map[int][]Edge, mu *sync.RWMutex) []Edge {
	mu.RLock()
	defer mu.RUnlock()

	var out []Edge
	for _, row := range side {
		for _, edges := range row {
			out = append(out, edges...)
		}
	}
	return out
}

// EdgesBetween returns every A or B edge from u to v (may be empty).
func (g *KnownGraph) EdgesBetween(u, v int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := append([]Edge(nil), g.a[u][v]...)
	out = append(out, g.b[u][v]...)
	return out
}

// ReadersOf returns the transactions that read key k from writer w via a
// WR edge, or nil if there are none — a missing entry is an empty set, not
// an error (spec.md §9 open question).
func (g *KnownGraph) ReadersOf(w int, k string) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	byKey := g.readFrom[w]
	if byKey == nil {
		return nil
	}
	return byKey[k]
}
