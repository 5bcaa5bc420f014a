// Package serializable implements the standard SI→Serializable history
// rewrite (spec.md §4.13): every RW anti-dependency edge a Serializability
// checker cares about needs an explicit, same-orientation WW edge, since a
// Serializability checker reasons only over WR/WW/SO, never RW. Rewrite
// materializes that WW edge as a synthetic no-op write appended at the
// writer's session boundary, so a downstream Serializability checker sees
// an ordinary write-write conflict instead of having to understand SI's
// anti-dependency relation at all.
//
// This package depends only on history and knowngraph's read-only views;
// it never calls into solver (spec.md §4.13) — the rewrite is a pure
// graph-to-graph transform, not a re-verification.
package serializable

import (
	"fmt"
	"sort"

	"github.com/tsunaou/polysi-go/history"
	"github.com/tsunaou/polysi-go/knowngraph"
)

// syntheticMarker distinguishes a Rewrite-inserted write's value from any
// value a real client could have written, so a reader of the rewritten
// history can tell synthetic events apart from the original ones.
func syntheticMarker(writer, overwriter int) string {
	return fmt.Sprintf("⟂ser:%d<%d", writer, overwriter)
}

type wwKey struct {
	writer, overwriter int
	key                string
}

// Rewrite returns a new history.History containing every session,
// transaction and event of h, plus one synthetic write per distinct
// (writer, key, overwriter) triple implied by an RW edge in h's
// knowngraph: reader u observed key k from writer w, and some other
// transaction v later overwrote k, so w and v need an explicit WW edge of
// the same orientation (spec.md §4.13).
func Rewrite(h *history.History) (*history.History, error) {
	g := knowngraph.New(h)

	out, txnOf, err := clone(h)
	if err != nil {
		return nil, fmt.Errorf("serializable: clone: %w", err)
	}

	writerOf := reverseWR(g)
	nextTxnID := maxTxnID(h) + 1

	seen := make(map[wwKey]bool)
	for _, e := range sortedRW(g) {
		u, v, k := e.From, e.To, e.Key
		w, ok := writerOf[wrKey{u, k}]
		if !ok || w == v {
			continue
		}
		wk := wwKey{writer: w, overwriter: v, key: k}
		if seen[wk] {
			continue
		}
		seen[wk] = true

		wTxn, ok := txnOf[w]
		if !ok {
			continue
		}
		synth, err := out.AddTransaction(wTxn.Session, nextTxnID)
		if err != nil {
			return nil, fmt.Errorf("serializable: synthetic txn for %d->%d on %s: %w", w, v, k, err)
		}
		nextTxnID++
		if err := synth.Write(k, syntheticMarker(w, v)); err != nil {
			return nil, fmt.Errorf("serializable: synthetic write for %d->%d on %s: %w", w, v, k, err)
		}
		synth.Commit()
	}

	if err := out.Freeze(); err != nil {
		return nil, fmt.Errorf("serializable: freeze: %w", err)
	}
	return out, nil
}

type wrKey struct {
	reader int
	key    string
}

// reverseWR maps (reader, key) to the transaction that produced the
// (key, value) the reader observed, from g's WR edges.
func reverseWR(g *knowngraph.KnownGraph) map[wrKey]int {
	out := make(map[wrKey]int)
	for _, e := range g.AEdges() {
		if e.Type != knowngraph.WR {
			continue
		}
		out[wrKey{e.To, e.Key}] = e.From
	}
	return out
}

// sortedRW returns every RW edge in g, in deterministic (from, to, key)
// order, so Rewrite assigns synthetic transaction IDs the same way on
// every run over the same input.
func sortedRW(g *knowngraph.KnownGraph) []knowngraph.Edge {
	var out []knowngraph.Edge
	for _, u := range g.Nodes() {
		for _, edges := range g.BSuccessors(u) {
			out = append(out, edges...)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func maxTxnID(h *history.History) int {
	max := -1
	for _, t := range h.Transactions() {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

// clone copies every session, transaction and event of h into a fresh,
// still-mutable History, returning a transaction-ID lookup into the copy
// so Rewrite can append synthetic transactions to the right session.
func clone(h *history.History) (*history.History, map[int]*history.Transaction, error) {
	out := history.NewHistory()
	txnOf := make(map[int]*history.Transaction)

	for _, s := range h.Sessions() {
		ns, err := out.AddSession(s.ID)
		if err != nil {
			return nil, nil, err
		}
		for _, t := range s.Transactions {
			nt, err := out.AddTransaction(ns, t.ID)
			if err != nil {
				return nil, nil, err
			}
			for _, e := range t.Events {
				if e.Type == history.Write {
					err = nt.Write(e.Key, e.Value)
				} else {
					err = nt.Read(e.Key, e.Value)
				}
				if err != nil {
					return nil, nil, err
				}
			}
			nt.Commit()
			txnOf[t.ID] = nt
		}
	}
	return out, txnOf, nil
}
