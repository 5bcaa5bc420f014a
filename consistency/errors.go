package consistency

import "errors"

// Sentinel reasons a history can fail the internal-consistency check.
// Check wraps the offending Violation's Reason with one of these via %w so
// callers can branch with errors.Is while still seeing the failing event.
var (
	// ErrNoCorrespondingWrite: a READ observed a (key, value) no WRITE ever produced.
	ErrNoCorrespondingWrite = errors.New("consistency: no corresponding write")

	// ErrNotLatestWrite: a same-transaction READ did not observe the latest
	// prior write of its key.
	ErrNotLatestWrite = errors.New("consistency: not reading from latest write")

	// ErrReadFromFuture: a same-transaction READ observed a write that occurs
	// later in the same transaction's event list, or a cross-transaction READ
	// observed a write by a transaction with a higher ID than the reader's.
	ErrReadFromFuture = errors.New("consistency: read from future write")

	// ErrNotLastExternalWrite: a cross-transaction READ did not observe the
	// last write of its key among all transactions with a lower ID than the
	// reader's, ordered by (transaction ID, event index). This covers both a
	// read of a non-final write of the producing transaction and a read of a
	// value that a later lower-ID transaction already overwrote.
	ErrNotLastExternalWrite = errors.New("consistency: not the last visible write of key")
)

// Violation describes one internal-consistency failure: the offending read
// event and the reason it failed.
type Violation struct {
	TxnID   int
	Key     string
	Value   string
	Reason  error // one of the sentinels above
}

// Error implements the error interface so a Violation can be returned and
// inspected with errors.As.
func (v *Violation) Error() string {
	return v.Reason.Error()
}

// Unwrap exposes the sentinel reason for errors.Is.
func (v *Violation) Unwrap() error {
	return v.Reason
}
