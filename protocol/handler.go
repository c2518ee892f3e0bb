package protocol

import (
	"errors"
	"fmt"
)

// PacketID is wide enough to hold any VarInt-decoded packet id without
// truncation, even though real ids observed on the wire are small.
type PacketID uint32

// DefaultMaxPacketID is the per-(state, source) id capacity a HandlerTable
// is sized to when none is given explicitly. Real 1.16.x packet ids never
// approach this; it exists so a corrupt or adversarial id is rejected as
// out of range rather than growing the table without bound.
const DefaultMaxPacketID PacketID = 0x100

// ErrPacketIDOutOfRange is returned by HandlerTable.Get and Set when id is
// not smaller than the table's configured capacity for that (state, source)
// pair. The source's debug builds assert this and release builds omit the
// check; Go has no equivalent split that doesn't reintroduce an
// out-of-bounds read, so the check always runs.
var ErrPacketIDOutOfRange = errors.New("protocol: packet id out of range")

// Handler processes one received packet. The packet body (everything
// after the packet id) is available via ctx.Buffer.
type Handler func(ctx *Context) error

// BlankHandler is the safe default for unimplemented packet ids: it reads
// nothing further and returns nil, leaving any unread buffer bytes simply
// discarded when the buffer is freed.
func BlankHandler(ctx *Context) error {
	return nil
}

// HandlerTable is the three-dimensional dispatch table:
// [state][source][id] -> Handler. It is expected to be built once
// before any Context.Receive call and is not internally synchronized.
type HandlerTable struct {
	maxID PacketID
	rows  [numStates][numSources][]Handler
}

// NewHandlerTable allocates a table whose per-(state, source) id capacity
// is maxID. Use DefaultMaxPacketID unless a protocol extension needs more.
func NewHandlerTable(maxID PacketID) *HandlerTable {
	return &HandlerTable{maxID: maxID}
}

// Freeze is a documented no-op: it exists purely so callers can mark, in
// their own code, the point after which no further Set calls should
// happen, matching the source's suggestion of either freezing the table
// at startup or guarding it with a lock. It adds no runtime behavior.
func (t *HandlerTable) Freeze() {}

// Set registers h for (state, source, id). Slots between the previous
// high-water mark and id are filled with BlankHandler.
func (t *HandlerTable) Set(state State, source Source, id PacketID, h Handler) error {
	if id >= t.maxID {
		return fmt.Errorf("%w: %d (max %d)", ErrPacketIDOutOfRange, id, t.maxID)
	}
	row := t.rows[state][source]
	if need := int(id) + 1; len(row) < need {
		grown := make([]Handler, need)
		copy(grown, row)
		for i := len(row); i < need; i++ {
			grown[i] = BlankHandler
		}
		row = grown
		t.rows[state][source] = row
	}
	row[id] = h
	return nil
}

// Get returns the handler registered for (state, source, id), or
// BlankHandler if nothing was ever registered at that id within range.
func (t *HandlerTable) Get(state State, source Source, id PacketID) (Handler, error) {
	if id >= t.maxID {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrPacketIDOutOfRange, id, t.maxID)
	}
	row := t.rows[state][source]
	if int(id) >= len(row) {
		return BlankHandler, nil
	}
	return row[id], nil
}
