package constraint

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tsunaou/polysi-go/history"
	"github.com/tsunaou/polysi-go/knowngraph"
)

type pair struct{ a, c int } // a < c

// Generate builds the SI constraints for h given its knowngraph.KnownGraph
// (spec.md §4.5). Constraint IDs are assigned in deterministic
// (writeTxn1, writeTxn2) order so that two runs over the same input produce
// identical output (spec.md §8 property 8, determinism).
func Generate(g *knowngraph.KnownGraph, h *history.History, opts ...GenOption) []SIConstraint {
	cfg := newGenConfig(opts...)
	byKey := writersByKey(h)

	if cfg.coalesce {
		return generateCoalesced(g, byKey)
	}
	return generateUncoalesced(g, byKey)
}

// writersByKey maps each written key to the sorted, deduplicated set of
// transaction IDs that write it at least once.
func writersByKey(h *history.History) map[string][]int {
	seen := make(map[string]mapset.Set[int])
	for _, t := range h.Transactions() {
		for _, e := range t.Writes() {
			if seen[e.Key] == nil {
				seen[e.Key] = mapset.NewThreadUnsafeSet[int]()
			}
			seen[e.Key].Add(t.ID)
		}
	}

	out := make(map[string][]int, len(seen))
	for k, set := range seen {
		ids := set.ToSlice()
		sort.Ints(ids)
		out[k] = ids
	}
	return out
}

// conflictingPairs returns, for every key in byKey, every unordered pair of
// distinct writers of that key, mapped to the sorted list of keys they
// jointly write, and the pairs themselves in deterministic order.
func conflictingPairs(byKey map[string][]int) ([]pair, map[pair][]string) {
	pairKeys := make(map[pair][]string)
	for k, writers := range byKey {
		for i := 0; i < len(writers); i++ {
			for j := i + 1; j < len(writers); j++ {
				p := pair{writers[i], writers[j]}
				pairKeys[p] = append(pairKeys[p], k)
			}
		}
	}

	pairs := make([]pair, 0, len(pairKeys))
	for p, keys := range pairKeys {
		sort.Strings(keys)
		pairKeys[p] = keys
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].c < pairs[j].c
	})

	return pairs, pairKeys
}

// generateCoalesced implements spec.md §4.5's default form: one constraint
// per conflicting pair, aggregating every shared key's WW edge plus every
// RW edge induced by a third transaction reading one writer's value.
func generateCoalesced(g *knowngraph.KnownGraph, byKey map[string][]int) []SIConstraint {
	pairs, pairKeys := conflictingPairs(byKey)

	out := make([]SIConstraint, 0, len(pairs))
	for id, p := range pairs {
		a, c := p.a, p.c
		var side1, side2 []SIEdge

		for _, k := range pairKeys[p] {
			side1 = append(side1, SIEdge{From: a, To: c, Type: knowngraph.WW, Key: k})
			side2 = append(side2, SIEdge{From: c, To: a, Type: knowngraph.WW, Key: k})

			// readers[k] is empty, not an error, when no transaction read
			// this writer's value of k (spec.md §9 open question).
			for _, b := range sortedCopy(g.ReadersOf(a, k)) {
				if b != c {
					side1 = append(side1, SIEdge{From: b, To: c, Type: knowngraph.RW, Key: k})
				}
			}
			for _, b := range sortedCopy(g.ReadersOf(c, k)) {
				if b != a {
					side2 = append(side2, SIEdge{From: b, To: a, Type: knowngraph.RW, Key: k})
				}
			}
		}

		out = append(out, SIConstraint{
			ID: id, WriteTxn1: a, WriteTxn2: c,
			Edges1: side1, Edges2: side2,
		})
	}
	return out
}

// generateUncoalesced implements spec.md §4.5's alternative form: one
// constraint per (a, c, k) WW pair, plus one constraint per (a, b, c, k)
// triple for every RW edge the coalesced form would have bundled in.
// Semantically equivalent to the coalesced form but produces many more,
// smaller constraints.
func generateUncoalesced(g *knowngraph.KnownGraph, byKey map[string][]int) []SIConstraint {
	pairs, pairKeys := conflictingPairs(byKey)

	var out []SIConstraint
	id := 0
	for _, p := range pairs {
		a, c := p.a, p.c
		for _, k := range pairKeys[p] {
			ww1 := SIEdge{From: a, To: c, Type: knowngraph.WW, Key: k}
			ww2 := SIEdge{From: c, To: a, Type: knowngraph.WW, Key: k}

			out = append(out, SIConstraint{
				ID: id, WriteTxn1: a, WriteTxn2: c,
				Edges1: []SIEdge{ww1}, Edges2: []SIEdge{ww2},
			})
			id++

			for _, b := range sortedCopy(g.ReadersOf(a, k)) {
				if b == c {
					continue
				}
				out = append(out, SIConstraint{
					ID: id, WriteTxn1: a, WriteTxn2: c,
					Edges1: []SIEdge{ww1, {From: b, To: c, Type: knowngraph.RW, Key: k}},
					Edges2: []SIEdge{ww2},
				})
				id++
			}
			for _, b := range sortedCopy(g.ReadersOf(c, k)) {
				if b == a {
					continue
				}
				out = append(out, SIConstraint{
					ID: id, WriteTxn1: a, WriteTxn2: c,
					Edges1: []SIEdge{ww1},
					Edges2: []SIEdge{ww2, {From: b, To: a, Type: knowngraph.RW, Key: k}},
				})
				id++
			}
		}
	}
	return out
}

func sortedCopy(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	return out
}
