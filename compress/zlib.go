// Package compress implements the zlib (RFC 1950) compression envelope
// used by the protocol layer once a compression threshold is negotiated.
// It wraps github.com/klauspost/compress/zlib behind a small Codec
// interface, the same shape arloliu/mebo uses for its pluggable block
// compressors. protocol.NewContext always installs Zlib; a Context
// exposes no way to substitute another Codec.
package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Codec compresses and decompresses whole byte payloads.
type Codec interface {
	Deflate(data []byte) ([]byte, error)
	Inflate(data []byte, expectedSize int) ([]byte, error)
}

// Zlib is the Codec used for the Minecraft protocol's compression
// envelope: plain RFC 1950 deflate/inflate, no flush frames or
// dictionary.
type Zlib struct{}

var _ Codec = Zlib{}

// Deflate compresses data into a zlib stream.
func (Zlib) Deflate(data []byte) ([]byte, error) {
	var out bytes.Buffer
	w := zlib.NewWriter(&out)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Inflate decompresses a zlib stream. expectedSize pre-sizes the
// destination slice (it is the uncompressed_size carried by the
// compression envelope) but is not trusted beyond that: the actual
// decompressed length is whatever the stream produces.
func (Zlib) Inflate(data []byte, expectedSize int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out := make([]byte, 0, expectedSize)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
