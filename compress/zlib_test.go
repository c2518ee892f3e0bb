package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZlibRoundTripSmallPayload(t *testing.T) {
	var z Zlib
	payload := []byte("hi")
	compressed, err := z.Deflate(payload)
	require.NoError(t, err)

	got, err := z.Inflate(compressed, len(payload))
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestZlibRoundTripLargerPayload(t *testing.T) {
	var z Zlib
	payload := bytes.Repeat([]byte{0x41}, 4096)
	compressed, err := z.Deflate(payload)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(payload))

	got, err := z.Inflate(compressed, len(payload))
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestZlibInflateRejectsGarbage(t *testing.T) {
	var z Zlib
	_, err := z.Inflate([]byte{0x00, 0x01, 0x02}, 10)
	require.Error(t, err)
}
