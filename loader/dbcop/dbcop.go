package dbcop

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/tsunaou/polysi-go/history"
)

// Event is one DBCop-shaped read or write.
type Event struct {
	IsWrite bool
	Key     string
	Value   string
}

// Txn is one DBCop-shaped committed transaction. Abort is not modeled
// (spec.md §4.10): a Txn in a DBCopRecord is assumed committed.
type Txn struct {
	ID     int
	Events []Event
}

// Session is one DBCop-shaped client session: an ordered list of Txns.
type Session struct {
	ID   int
	Txns []Txn
}

// DBCopRecord is the gob-encoded top-level record a dump decodes into.
type DBCopRecord struct {
	Sessions []Session
}

// Loader decodes a gob-serialized DBCopRecord stream into a history.History.
type Loader struct{}

// New returns a dbcop.Loader.
func New() Loader { return Loader{} }

// Load implements loader.Loader.
func (Loader) Load(r io.Reader) (*history.History, error) {
	var rec DBCopRecord
	if err := gob.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return build(rec)
}

func build(rec DBCopRecord) (*history.History, error) {
	h := history.NewHistory()

	for _, s := range rec.Sessions {
		sess, err := h.AddSession(s.ID)
		if err != nil {
			return nil, fmt.Errorf("dbcop: session %d: %w", s.ID, err)
		}
		for _, rt := range s.Txns {
			t, err := h.AddTransaction(sess, rt.ID)
			if err != nil {
				return nil, fmt.Errorf("dbcop: txn %d: %w", rt.ID, err)
			}
			for _, e := range rt.Events {
				if e.IsWrite {
					err = t.Write(e.Key, e.Value)
				} else {
					err = t.Read(e.Key, e.Value)
				}
				if err != nil {
					return nil, fmt.Errorf("dbcop: txn %d event (%s,%s): %w", rt.ID, e.Key, e.Value, err)
				}
			}
			t.Commit()
		}
	}

	if err := h.Freeze(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHistory, err)
	}
	return h, nil
}
