package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsunaou/polysi-go/history"
)

func TestLoadReadYourWrite(t *testing.T) {
	in := `BEGIN
W(x,1)
R(x,1)
W(x,2)
R(x,2)
COMMIT
`
	h, err := New().Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 1, h.Len())

	txn, err := h.Transaction(0)
	require.NoError(t, err)
	require.Equal(t, history.Commit, txn.Status)
	require.Len(t, txn.Events, 4)
}

func TestLoadTwoSessions(t *testing.T) {
	in := `BEGIN
W(x,1)
COMMIT

BEGIN
W(x,2)
COMMIT
`
	h, err := New().Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, h.Len())
	require.Len(t, h.Sessions(), 2)
}

func TestLoadMultiTxnSession(t *testing.T) {
	in := `BEGIN
W(x,1)
COMMIT
BEGIN
R(x,1)
COMMIT
`
	h, err := New().Load(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, h.Sessions(), 1)
	require.Len(t, h.Sessions()[0].Transactions, 2)
}

func TestLoadErrors(t *testing.T) {
	cases := []string{
		"R(x,1)\nCOMMIT\n",              // event outside transaction
		"BEGIN\nW(x,1)\n",               // missing COMMIT
		"BEGIN\nBEGIN\nCOMMIT\n",        // nested BEGIN
		"COMMIT\n",                      // stray COMMIT
		"BEGIN\nbad-line\nCOMMIT\n",     // malformed event
	}
	for _, in := range cases {
		_, err := New().Load(strings.NewReader(in))
		require.Error(t, err)
	}
}
