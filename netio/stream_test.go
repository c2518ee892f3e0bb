package netio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// shortReader returns at most maxPerCall bytes per Read call, to exercise
// the retry loop the same way a fragmented TCP stream would.
type shortReader struct {
	data       []byte
	maxPerCall int
}

func (s *shortReader) Read(p []byte) (int, error) {
	if len(s.data) == 0 {
		return 0, io.EOF
	}
	n := s.maxPerCall
	if n > len(p) {
		n = len(p)
	}
	if n > len(s.data) {
		n = len(s.data)
	}
	copy(p, s.data[:n])
	s.data = s.data[n:]
	return n, nil
}

type shortWriter struct {
	buf        bytes.Buffer
	maxPerCall int
}

func (s *shortWriter) Write(p []byte) (int, error) {
	n := s.maxPerCall
	if n > len(p) {
		n = len(p)
	}
	s.buf.Write(p[:n])
	return n, nil
}

func TestReadExactRetriesOnShortReads(t *testing.T) {
	src := []byte("the quick brown fox jumps over the lazy dog")
	r := &shortReader{data: append([]byte(nil), src...), maxPerCall: 3}

	dst := make([]byte, len(src))
	err := ReadExact(r, dst)
	require.NoError(t, err)
	require.Equal(t, src, dst)
}

func TestReadExactPropagatesHardError(t *testing.T) {
	boom := errors.New("boom")
	r := iotest{err: boom}
	err := ReadExact(r, make([]byte, 4))
	require.ErrorIs(t, err, boom)
}

func TestWriteExactRetriesOnShortWrites(t *testing.T) {
	src := []byte("the quick brown fox jumps over the lazy dog")
	w := &shortWriter{maxPerCall: 5}

	err := WriteExact(w, src)
	require.NoError(t, err)
	require.Equal(t, src, w.buf.Bytes())
}

type iotest struct{ err error }

func (i iotest) Read(p []byte) (int, error) { return 0, i.err }

func TestByteReaderPassesThroughExistingImplementation(t *testing.T) {
	r := bytes.NewReader([]byte{1, 2, 3})
	br := ByteReader(r)
	_, isBuiltin := br.(*bytes.Reader)
	require.True(t, isBuiltin)
}

func TestByteReaderWrapsPlainReader(t *testing.T) {
	r := &shortReader{data: []byte{0xAA, 0xBB, 0xCC}, maxPerCall: 1}
	br := ByteReader(r)

	b1, err := br.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xAA), b1)

	b2, err := br.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xBB), b2)
}
