// Package cobralog implements loader.Loader for Cobra's binary transaction
// log: a stream of records, each a big-endian uint32 length prefix
// followed by that many bytes of gzip-compressed, gob-encoded Record
// payload. Reading one record at a time means a large log never needs to
// be fully materialized before history.History assembly (spec.md §4.12).
package cobralog

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"github.com/tsunaou/polysi-go/history"
)

// Event is one Cobra-shaped read or write.
type Event struct {
	IsWrite bool
	Key     string
	Value   string
}

// Record is one Cobra-shaped committed transaction, self-describing its
// owning session so records may arrive interleaved across sessions.
type Record struct {
	SessionID int
	TxnID     int
	Events    []Event
}

// ErrTruncatedRecord indicates the stream ended mid-record: a length
// prefix was read but fewer bytes followed than it promised.
var ErrTruncatedRecord = errors.New("cobralog: truncated record")

// Loader reads a Cobra-shaped binary log into a history.History.
type Loader struct{}

// New returns a cobralog.Loader.
func New() Loader { return Loader{} }

// Load implements loader.Loader.
func (Loader) Load(r io.Reader) (*history.History, error) {
	h := history.NewHistory()
	sessions := make(map[int]*history.Session)

	for {
		rec, err := readRecord(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		sess, ok := sessions[rec.SessionID]
		if !ok {
			sess, err = h.AddSession(rec.SessionID)
			if err != nil {
				return nil, fmt.Errorf("cobralog: session %d: %w", rec.SessionID, err)
			}
			sessions[rec.SessionID] = sess
		}

		t, err := h.AddTransaction(sess, rec.TxnID)
		if err != nil {
			return nil, fmt.Errorf("cobralog: txn %d: %w", rec.TxnID, err)
		}
		for _, e := range rec.Events {
			if e.IsWrite {
				err = t.Write(e.Key, e.Value)
			} else {
				err = t.Read(e.Key, e.Value)
			}
			if err != nil {
				return nil, fmt.Errorf("cobralog: txn %d event (%s,%s): %w", rec.TxnID, e.Key, e.Value, err)
			}
		}
		t.Commit()
	}

	if err := h.Freeze(); err != nil {
		return nil, fmt.Errorf("cobralog: %w", err)
	}
	return h, nil
}

// readRecord reads one length-prefixed, gzip-compressed, gob-encoded
// Record, or io.EOF if the stream is exhausted exactly at a record
// boundary.
func readRecord(r io.Reader) (Record, error) {
	var length uint32
	if err := binary.Read(r, binary.BigEndian, &length); err != nil {
		if err == io.EOF {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("cobralog: read length prefix: %w", err)
	}

	compressed := make([]byte, length)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrTruncatedRecord, err)
	}

	gz, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return Record{}, fmt.Errorf("cobralog: open gzip record: %w", err)
	}
	defer gz.Close()

	var rec Record
	if err := gob.NewDecoder(gz).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("cobralog: decode record: %w", err)
	}
	return rec, nil
}
