package mctypes

import (
	"github.com/andersonarc/mcproto/packetbuf"
	"github.com/andersonarc/mcproto/wire"
)

// Chat is a JSON text component, pre-serialized by the caller. This
// module does not validate chat component grammar; only the wire
// envelope (identical to String: VarInt byte-length + UTF-8) is its
// concern.
type Chat string

// Encode writes the Chat value.
func (c Chat) Encode(buf *packetbuf.Buffer) error {
	return wire.WriteString(buf, string(c))
}

// DecodeChat reads a Chat value.
func DecodeChat(buf *packetbuf.Buffer) (Chat, error) {
	s, err := wire.ReadString(buf)
	if err != nil {
		return "", err
	}
	return Chat(s), nil
}

// Length returns the on-wire size of c.
func (c Chat) Length() int {
	return wire.LengthString(string(c))
}
