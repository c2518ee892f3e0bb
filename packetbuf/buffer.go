// Package packetbuf implements the owned, cursor-tracked byte region that
// every framed packet is decoded from and encoded into. A Buffer is
// pre-sized to the full packet body before any codec runs against it, so
// primitive and compound decoders never need to grow it mid-flight.
package packetbuf

import (
	"errors"
	"io"

	"github.com/andersonarc/mcproto/netio"
)

// ErrShortBuffer is returned by Read/Write when the requested span would
// run past the end of the buffer's storage. The C source this module is
// grounded on has no equivalent check (a raw memcpy past the end is
// undefined behaviour there); here it is always a defined error.
var ErrShortBuffer = errors.New("packetbuf: short buffer")

// Buffer is a mutable byte region with an attached read/write cursor.
// It owns its storage for its lifetime, unless that storage was adopted
// via Set, in which case ownership transfers to the Buffer at that point.
type Buffer struct {
	data   []byte
	index  int
	stream io.ReadWriter
}

// Allocate reserves size bytes of storage, cursor at zero.
func Allocate(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// Set adopts externally allocated storage; the Buffer owns it from here on.
func Set(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bind records a back-reference to a stream, enabling Init and Flush.
// Binding does not itself transfer or fill any data.
func (b *Buffer) Bind(stream io.ReadWriter) {
	b.stream = stream
}

// Init reads exactly len(data) bytes from the bound stream into the
// buffer's storage. The buffer must already be allocated and bound.
func (b *Buffer) Init() error {
	return netio.ReadExact(b.stream, b.data)
}

// Flush writes exactly len(data) bytes of the buffer's storage to the
// bound stream.
func (b *Buffer) Flush() error {
	return netio.WriteExact(b.stream, b.data)
}

// Free releases the buffer's reference to its storage. Safe to call more
// than once.
func (b *Buffer) Free() {
	b.data = nil
	b.index = 0
}

// Size returns the buffer's fixed capacity.
func (b *Buffer) Size() int { return len(b.data) }

// Index returns the current cursor position.
func (b *Buffer) Index() int { return b.index }

// Bytes returns the buffer's full storage, independent of the cursor.
func (b *Buffer) Bytes() []byte { return b.data }

// Write copies src into the buffer at the cursor and advances the cursor
// by len(src). Returns ErrShortBuffer if that would run past the end.
func (b *Buffer) Write(src []byte) error {
	if b.index+len(src) > len(b.data) {
		return ErrShortBuffer
	}
	copy(b.data[b.index:], src)
	b.index += len(src)
	return nil
}

// Read copies from the cursor into dst and advances the cursor by
// len(dst). Returns ErrShortBuffer if that would run past the end.
func (b *Buffer) Read(dst []byte) error {
	if b.index+len(dst) > len(b.data) {
		return ErrShortBuffer
	}
	copy(dst, b.data[b.index:])
	b.index += len(dst)
	return nil
}

// Current returns the remaining unread slice from the cursor onward.
func (b *Buffer) Current() []byte {
	return b.data[b.index:]
}

// Increment advances the cursor by n without copying any bytes. Used by
// codecs that write/read numbers directly against Current().
func (b *Buffer) Increment(n int) {
	b.index += n
}

// Remaining reports how many unread bytes are left from the cursor.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.index
}
