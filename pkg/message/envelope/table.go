// Package envelope holds the flatbuffers plumbing shared by the call and
// callback envelopes. Tables are written and read field by field with the
// builder API, no generated code involved.
package envelope

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sessamekesh/fedpro-client/pkg/errors"
)

// Table is a read view over a finished flatbuffers buffer.
type Table struct {
	tab flatbuffers.Table
}

// Root returns the root table of buf. Reads on a corrupt buffer may panic,
// callers go through SafeRead.
func Root(buf []byte) Table {
	n := flatbuffers.GetUOffsetT(buf)
	return Table{tab: flatbuffers.Table{Bytes: buf, Pos: n}}
}

func (t Table) offset(slot int) flatbuffers.UOffsetT {
	return flatbuffers.UOffsetT(t.tab.Offset(flatbuffers.VOffsetT(4 + 2*slot)))
}

func (t Table) Has(slot int) bool {
	return t.offset(slot) != 0
}

func (t Table) Uint16(slot int) uint16 {
	o := t.offset(slot)
	if o == 0 {
		return 0
	}
	return t.tab.GetUint16(o + t.tab.Pos)
}

func (t Table) Uint32(slot int) uint32 {
	o := t.offset(slot)
	if o == 0 {
		return 0
	}
	return t.tab.GetUint32(o + t.tab.Pos)
}

func (t Table) Bool(slot int) bool {
	o := t.offset(slot)
	if o == 0 {
		return false
	}
	return t.tab.GetBool(o + t.tab.Pos)
}

// Bytes copies the byte vector out of the buffer.
func (t Table) Bytes(slot int) []byte {
	o := t.offset(slot)
	if o == 0 {
		return nil
	}
	v := t.tab.ByteVector(o + t.tab.Pos)
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

func (t Table) String(slot int) string {
	o := t.offset(slot)
	if o == 0 {
		return ""
	}
	return t.tab.String(o + t.tab.Pos)
}

// VectorLen is the element count of a vector of tables or byte vectors.
func (t Table) VectorLen(slot int) int {
	o := t.offset(slot)
	if o == 0 {
		return 0
	}
	return t.tab.VectorLen(o)
}

// TableAt reads element i of a vector of tables.
func (t Table) TableAt(slot int, i int) Table {
	o := t.offset(slot)
	x := t.tab.Vector(o)
	x += flatbuffers.UOffsetT(i) * 4
	x = t.tab.Indirect(x)
	return Table{tab: flatbuffers.Table{Bytes: t.tab.Bytes, Pos: x}}
}

// SafeRead runs read and turns a panic caused by a corrupt buffer into a
// MalformedEnvelope error.
func SafeRead(messageName string, buf []byte, read func(t Table) error) (err error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return &errors.Underflow{
			MessageName: messageName,
			MsgSize:     len(buf),
			MinimumSize: flatbuffers.SizeUOffsetT,
		}
	}

	defer func() {
		if r := recover(); r != nil {
			err = &errors.MalformedEnvelope{
				MessageName: messageName,
				Reason:      fmt.Sprintf("%v", r),
			}
		}
	}()

	return read(Root(buf))
}

// CreateTableVector writes a vector of already finished table offsets.
func CreateTableVector(b *flatbuffers.Builder, offsets []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(flatbuffers.SizeUOffsetT, len(offsets), flatbuffers.SizeUOffsetT)
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	return b.EndVector(len(offsets))
}

// CreatePair writes a two-slot table of byte vectors. A nil value is left
// out so handle sets and handle/value maps share one layout.
func CreatePair(b *flatbuffers.Builder, key, value []byte) flatbuffers.UOffsetT {
	keyOff := b.CreateByteVector(key)
	var valueOff flatbuffers.UOffsetT
	if value != nil {
		valueOff = b.CreateByteVector(value)
	}

	b.StartObject(2)
	b.PrependUOffsetTSlot(0, keyOff, 0)
	if value != nil {
		b.PrependUOffsetTSlot(1, valueOff, 0)
	}
	return b.EndObject()
}

// Pairs reads back a vector written with CreatePair entries.
func (t Table) Pairs(slot int) [][2][]byte {
	n := t.VectorLen(slot)
	out := make([][2][]byte, 0, n)
	for i := 0; i < n; i++ {
		entry := t.TableAt(slot, i)
		out = append(out, [2][]byte{entry.Bytes(0), entry.Bytes(1)})
	}
	return out
}
