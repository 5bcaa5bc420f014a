package history

import "sort"

// Sessions returns all sessions in submission order.
func (h *History) Sessions() []*Session {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*Session, len(h.sessions))
	copy(out, h.sessions)
	return out
}

// Session looks up a session by ID.
func (h *History) Session(id int) (*Session, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.bySess[id]
	if !ok {
		return nil, ErrUnknownSession
	}
	return s, nil
}

// Transaction looks up a transaction by ID, across all sessions.
func (h *History) Transaction(id int) (*Transaction, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	t, ok := h.byTxn[id]
	if !ok {
		return nil, ErrUnknownTransaction
	}
	return t, nil
}

// Transactions returns every transaction in h, ordered by ID, for callers
// that need a stable deterministic iteration order (e.g. building a
// node↔index bijection for simatrix).
func (h *History) Transactions() []*Transaction {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*Transaction, 0, len(h.byTxn))
	for _, t := range h.byTxn {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Len returns the number of transactions in h.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.byTxn)
}
