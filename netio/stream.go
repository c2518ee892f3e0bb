// Package netio provides read-exactly / write-exactly primitives over a
// byte transport. It claims no ownership of the underlying connection and
// exposes no cancellation model of its own — timeouts and cancellation are
// a property of the transport (set a deadline on the net.Conn).
package netio

import "io"

// ReadExact reads exactly len(buf) bytes from r, retrying on short reads.
// A short read is not itself an error; only a non-nil error returned by r
// is fatal and is returned to the caller unwrapped.
func ReadExact(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	return err
}

// WriteExact writes exactly len(buf) bytes to w, retrying on short writes.
func WriteExact(w io.Writer, buf []byte) error {
	for len(buf) > 0 {
		n, err := w.Write(buf)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}

// byteReader adapts an io.Reader with no ReadByte method to io.ByteReader,
// one byte at a time. Mirrors the teacher's byteReaderAdapter.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	_, err := io.ReadFull(b.r, b.buf[:])
	return b.buf[0], err
}

// ByteReader returns r itself if it already implements io.ByteReader,
// otherwise wraps it in a single-byte-at-a-time adapter. Used by the
// stream-variant VarInt reader, which must consume exactly one VarInt's
// worth of bytes from a connection without over-reading into the next
// packet's framing.
func ByteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &byteReader{r: r}
}
