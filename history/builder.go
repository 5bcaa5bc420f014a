package history

import "sync"

// History is the ordered list of Sessions produced by a loader, plus
// indices for O(1) lookup by session or transaction ID.
//
// A History is mutable only between NewHistory and Freeze; mutation methods
// acquire mu so a streaming loader may build it from multiple goroutines,
// but once Freeze returns the History must be treated as read-only by every
// downstream package (consistency, knowngraph, ...).
type History struct {
	mu sync.RWMutex

	sessions []*Session
	byTxn    map[int]*Transaction
	bySess   map[int]*Session
	frozen   bool
}

// NewHistory returns an empty, mutable History.
func NewHistory() *History {
	return &History{
		byTxn:  make(map[int]*Transaction),
		bySess: make(map[int]*Session),
	}
}

// AddSession appends a new, empty Session with the given ID.
// Returns ErrDuplicateSessionID if id is already present.
func (h *History) AddSession(id int) (*Session, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.bySess[id]; exists {
		return nil, ErrDuplicateSessionID
	}
	s := &Session{ID: id}
	h.sessions = append(h.sessions, s)
	h.bySess[id] = s

	return s, nil
}

// AddTransaction appends a new, empty, Ongoing Transaction to s with the
// given ID. Returns ErrDuplicateTransactionID if id is already present
// anywhere in the owning History.
func (h *History) AddTransaction(s *Session, id int) (*Transaction, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.byTxn[id]; exists {
		return nil, ErrDuplicateTransactionID
	}
	t := &Transaction{
		ID:      id,
		Session: s,
		Index:   len(s.Transactions),
		Status:  Ongoing,
	}
	s.Transactions = append(s.Transactions, t)
	h.byTxn[id] = t

	return t, nil
}

// Read appends a READ event of (key, value) to t.
// Returns ErrTransactionAlreadyCommitted if t.Status is Commit, or
// ErrEmptyKey if key is empty.
func (t *Transaction) Read(key, value string) error {
	if t.Status == Commit {
		return ErrTransactionAlreadyCommitted
	}
	if key == "" {
		return ErrEmptyKey
	}
	t.Events = append(t.Events, &Event{
		Type: Read, Key: key, Value: value, Txn: t, Index: len(t.Events),
	})
	return nil
}

// Write appends a WRITE event of (key, value) to t.
// Returns ErrTransactionAlreadyCommitted if t.Status is Commit, or
// ErrEmptyKey if key is empty.
func (t *Transaction) Write(key, value string) error {
	if t.Status == Commit {
		return ErrTransactionAlreadyCommitted
	}
	if key == "" {
		return ErrEmptyKey
	}
	t.Events = append(t.Events, &Event{
		Type: Write, Key: key, Value: value, Txn: t, Index: len(t.Events),
	})
	return nil
}

// Commit marks t as Commit. Idempotent.
func (t *Transaction) Commit() {
	t.Status = Commit
}

// Freeze validates that every transaction in h is Commit and marks h
// read-only. Returns ErrNotCommitted (wrapping the offending transaction's
// ID is the caller's job via %w at the call site) if any transaction is
// still Ongoing.
func (h *History) Freeze() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.sessions {
		for _, t := range s.Transactions {
			if t.Status != Commit {
				return ErrNotCommitted
			}
		}
	}
	h.frozen = true

	return nil
}

// Frozen reports whether Freeze has succeeded on h.
func (h *History) Frozen() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.frozen
}
