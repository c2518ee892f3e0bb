package varint

import "io"

// ReadVarIntStream reads a VarInt one byte at a time directly from r,
// without requiring a pre-sized buffer. Used only for the outermost
// packet-length prefix and the compression-envelope's uncompressed-size
// header, before the packet body's size (and therefore its Buffer) is
// known.
func ReadVarIntStream(r io.ByteReader) (int32, error) {
	v, err := decodeStream(r, maxVarInt, ErrVarIntTooLong)
	return int32(uint32(v)), err
}

// WriteVarIntStream writes v directly to w, one byte at a time.
func WriteVarIntStream(w io.Writer, v int32) error {
	return encodeStream(w, uint64(uint32(v)), maxVarInt)
}

// ReadVarLongStream is the VarLong analogue of ReadVarIntStream.
func ReadVarLongStream(r io.ByteReader) (int64, error) {
	v, err := decodeStream(r, maxVarLong, ErrVarLongTooLong)
	return int64(v), err
}

// WriteVarLongStream is the VarLong analogue of WriteVarIntStream.
func WriteVarLongStream(w io.Writer, v int64) error {
	return encodeStream(w, uint64(v), maxVarLong)
}

func encodeStream(w io.Writer, v uint64, maxBytes int) error {
	var scratch [1]byte
	for i := 0; i < maxBytes; i++ {
		b := byte(v & segmentMask)
		v >>= 7
		if v != 0 {
			b |= continueBit
		}
		scratch[0] = b
		if _, err := w.Write(scratch[:]); err != nil {
			return err
		}
		if v == 0 {
			return nil
		}
	}
	return nil
}

func decodeStream(r io.ByteReader, maxBytes int, overrun error) (uint64, error) {
	var result uint64
	for i := 0; i < maxBytes; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&segmentMask) << (7 * uint(i))
		if b&continueBit == 0 {
			return result, nil
		}
	}
	return 0, overrun
}
