package cobralog

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/require"
)

func appendRecord(t *testing.T, buf *bytes.Buffer, rec Record) {
	t.Helper()

	var gzBuf bytes.Buffer
	gz := gzip.NewWriter(&gzBuf)
	require.NoError(t, gob.NewEncoder(gz).Encode(rec))
	require.NoError(t, gz.Close())

	require.NoError(t, binary.Write(buf, binary.BigEndian, uint32(gzBuf.Len())))
	buf.Write(gzBuf.Bytes())
}

func TestLoadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	appendRecord(t, &buf, Record{
		SessionID: 0, TxnID: 0,
		Events: []Event{{IsWrite: true, Key: "x", Value: "1"}},
	})
	appendRecord(t, &buf, Record{
		SessionID: 1, TxnID: 1,
		Events: []Event{{IsWrite: false, Key: "x", Value: "1"}},
	})

	h, err := New().Load(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, h.Len())
	require.Len(t, h.Sessions(), 2)
}

func TestLoadTruncatedRecord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.BigEndian, uint32(100)))
	buf.WriteByte(0x01)

	_, err := New().Load(&buf)
	require.ErrorIs(t, err, ErrTruncatedRecord)
}

func TestLoadEmptyStream(t *testing.T) {
	h, err := New().Load(&bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 0, h.Len())
}
