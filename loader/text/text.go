// Package text implements loader.Loader for a line-oriented history log:
//
//	BEGIN
//	W(x,1)
//	R(x,1)
//	COMMIT
//
//	BEGIN
//	R(y,0)
//	COMMIT
//
// Sessions are blank-line-delimited blocks of consecutive BEGIN/COMMIT
// transaction records (spec.md §4.12). Transaction and session IDs are
// assigned by submission order within the stream, starting at 0.
package text

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/tsunaou/polysi-go/history"
)

var eventLine = regexp.MustCompile(`^([RW])\(([^,]+),([^)]*)\)$`)

// Loader parses the text log format into a history.History.
type Loader struct{}

// New returns a text.Loader.
func New() Loader { return Loader{} }

// Load implements loader.Loader.
func (Loader) Load(r io.Reader) (*history.History, error) {
	h := history.NewHistory()

	sessionID := 0
	txnID := 0
	var sess *history.Session
	var txn *history.Transaction

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			if txn != nil {
				return nil, errors.Errorf("text loader: line %d: blank line inside open transaction (missing COMMIT)", lineNo)
			}
			sess = nil
			continue
		}

		switch {
		case strings.HasPrefix(line, "BEGIN"):
			if txn != nil {
				return nil, errors.Errorf("text loader: line %d: nested BEGIN, previous transaction not committed", lineNo)
			}
			if sess == nil {
				s, err := h.AddSession(sessionID)
				if err != nil {
					return nil, errors.Wrapf(err, "text loader: line %d", lineNo)
				}
				sess = s
				sessionID++
			}
			t, err := h.AddTransaction(sess, txnID)
			if err != nil {
				return nil, errors.Wrapf(err, "text loader: line %d", lineNo)
			}
			txn = t
			txnID++

		case line == "COMMIT":
			if txn == nil {
				return nil, errors.Errorf("text loader: line %d: COMMIT with no open transaction", lineNo)
			}
			txn.Commit()
			txn = nil

		default:
			if txn == nil {
				return nil, errors.Errorf("text loader: line %d: event outside BEGIN/COMMIT: %q", lineNo, line)
			}
			m := eventLine.FindStringSubmatch(line)
			if m == nil {
				return nil, errors.Errorf("text loader: line %d: malformed event %q", lineNo, line)
			}
			key, value := strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
			var err error
			if m[1] == "R" {
				err = txn.Read(key, value)
			} else {
				err = txn.Write(key, value)
			}
			if err != nil {
				return nil, errors.Wrapf(err, "text loader: line %d", lineNo)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "text loader: scan")
	}
	if txn != nil {
		return nil, errors.New("text loader: unexpected end of input inside open transaction")
	}

	if err := h.Freeze(); err != nil {
		return nil, errors.Wrap(err, "text loader: freeze")
	}
	return h, nil
}
