package dbcop

import "errors"

// Sentinel errors for the DBCop loader, classified by sicheck's callers
// with errors.Is rather than string matching (spec.md §7).
var (
	// ErrMalformedRecord indicates the gob stream did not decode into a DBCopRecord.
	ErrMalformedRecord = errors.New("dbcop: malformed record")

	// ErrInvalidHistory indicates the decoded record failed history.Freeze
	// (a transaction was left without a Commit-equivalent event list).
	ErrInvalidHistory = errors.New("dbcop: invalid history")
)
