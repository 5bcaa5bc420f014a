package history

import "errors"

// Sentinel errors for history construction and lookup.
var (
	// ErrDuplicateSessionID indicates AddSession was called twice with the same ID.
	ErrDuplicateSessionID = errors.New("history: duplicate session id")

	// ErrDuplicateTransactionID indicates AddTransaction reused an existing transaction ID.
	ErrDuplicateTransactionID = errors.New("history: duplicate transaction id")

	// ErrUnknownSession indicates a lookup referenced a session ID not present in the History.
	ErrUnknownSession = errors.New("history: unknown session id")

	// ErrUnknownTransaction indicates a lookup referenced a transaction ID not present in the History.
	ErrUnknownTransaction = errors.New("history: unknown transaction id")

	// ErrTransactionAlreadyCommitted indicates a Read or Write call on a committed transaction.
	ErrTransactionAlreadyCommitted = errors.New("history: transaction already committed")

	// ErrNotCommitted indicates Freeze encountered a transaction still in status Ongoing.
	// Verified histories only ever contain COMMIT transactions (spec.md §3); abort is not modeled.
	ErrNotCommitted = errors.New("history: transaction not committed")

	// ErrEmptyKey indicates a Read or Write was given an empty key.
	ErrEmptyKey = errors.New("history: empty key")
)
