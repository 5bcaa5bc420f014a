package consistency

import (
	"fmt"
	"sort"

	"github.com/tsunaou/polysi-go/history"
)

// kv is the composite key used to index writes by (key, value).
type kv struct {
	key   string
	value string
}

// writeRef locates one write in global commit order: transaction ID first
// (a history's transactions commit in ascending ID order), then event index
// within the transaction.
type writeRef struct {
	txnID int
	index int
}

func (w writeRef) lessThan(o writeRef) bool {
	if w.txnID != o.txnID {
		return w.txnID < o.txnID
	}
	return w.index < o.index
}

// Check verifies that every READ in h observes either the latest prior
// same-transaction WRITE of its key, or the unique external WRITE that
// produced the (key, value) pair (spec.md §4.1).
//
// Returns the first violation found, scanning transactions and events in a
// deterministic order (transaction ID, then event index), wrapped so
// errors.Is matches one of this package's sentinels and errors.As recovers
// the full *Violation.
//
// If two distinct transactions write the same (key, value) pair — which a
// well-formed history should never do, since SI checking assumes per-key
// values uniquely identify their producing write — the first one
// encountered in (transaction ID, event index) order is treated as the
// producer; this function does not itself flag such duplicates.
func Check(h *history.History) error {
	producers := make(map[kv]*history.Event)
	// writeIdx[txnID][key] = ascending indices of that transaction's writes of key.
	writeIdx := make(map[int]map[string][]int)
	// writesByKey[key] = every write of key across every transaction, sorted
	// ascending by (txnID, index) — global commit/visibility order, not just
	// one transaction's own writes.
	writesByKey := make(map[string][]writeRef)

	txns := h.Transactions()
	for _, t := range txns {
		perKey := make(map[string][]int)
		for _, e := range t.Events {
			if e.Type != history.Write {
				continue
			}
			perKey[e.Key] = append(perKey[e.Key], e.Index)
			writesByKey[e.Key] = append(writesByKey[e.Key], writeRef{txnID: t.ID, index: e.Index})
			k := kv{e.Key, e.Value}
			if _, exists := producers[k]; !exists {
				producers[k] = e
			}
		}
		writeIdx[t.ID] = perKey
	}
	for _, refs := range writesByKey {
		sort.Slice(refs, func(i, j int) bool { return refs[i].lessThan(refs[j]) })
	}

	for _, t := range txns {
		for _, e := range t.Events {
			if e.Type != history.Read {
				continue
			}
			if err := checkRead(t, e, producers, writeIdx, writesByKey); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkRead(t *history.Transaction, r *history.Event, producers map[kv]*history.Event, writeIdx map[int]map[string][]int, writesByKey map[string][]writeRef) error {
	w, ok := producers[kv{r.Key, r.Value}]
	if !ok {
		return violation(t.ID, r, ErrNoCorrespondingWrite)
	}

	if w.Txn.ID == t.ID {
		if w.Index >= r.Index {
			return violation(t.ID, r, ErrReadFromFuture)
		}
		maxPrior := -1
		for _, idx := range writeIdx[t.ID][r.Key] {
			if idx < r.Index && idx > maxPrior {
				maxPrior = idx
			}
		}
		if w.Index != maxPrior {
			return violation(t.ID, r, ErrNotLatestWrite)
		}
		return nil
	}

	if w.Txn.ID > t.ID {
		return violation(t.ID, r, ErrReadFromFuture)
	}

	// Last write of r.Key visible to t: the write with the greatest
	// (txnID, index) among every transaction that committed before t, not
	// just w's own producing transaction (spec.md §8 "Stale read").
	last := writeRef{txnID: -1, index: -1}
	for _, ref := range writesByKey[r.Key] {
		if ref.txnID >= t.ID {
			break
		}
		last = ref
	}
	if (writeRef{txnID: w.Txn.ID, index: w.Index}) != last {
		return violation(t.ID, r, ErrNotLastExternalWrite)
	}

	return nil
}

func violation(txnID int, r *history.Event, reason error) error {
	v := &Violation{TxnID: txnID, Key: r.Key, Value: r.Value, Reason: reason}
	return fmt.Errorf("txn %d read (%s,%s): %w", txnID, r.Key, r.Value, v)
}
