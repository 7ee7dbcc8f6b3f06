package envelope

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sessamekesh/fedpro-client/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadsScalarsAndStrings(t *testing.T) {
	b := flatbuffers.NewBuilder(64)
	nameOff := b.CreateString("federate-1")
	bytesOff := b.CreateByteVector([]byte{9, 8, 7})

	b.StartObject(5)
	b.PrependUint16Slot(0, 42, 0)
	b.PrependUint32Slot(1, 70000, 0)
	b.PrependBoolSlot(2, true, false)
	b.PrependUOffsetTSlot(3, nameOff, 0)
	b.PrependUOffsetTSlot(4, bytesOff, 0)
	b.Finish(b.EndObject())
	buf := b.FinishedBytes()

	err := SafeRead("Test", buf, func(tab Table) error {
		assert.Equal(t, uint16(42), tab.Uint16(0))
		assert.Equal(t, uint32(70000), tab.Uint32(1))
		assert.True(t, tab.Bool(2))
		assert.Equal(t, "federate-1", tab.String(3))
		assert.Equal(t, []byte{9, 8, 7}, tab.Bytes(4))
		assert.False(t, tab.Has(5))
		assert.Nil(t, tab.Bytes(5))
		assert.Equal(t, "", tab.String(6))
		return nil
	})
	require.NoError(t, err)
}

func TestBytesAreCopied(t *testing.T) {
	b := flatbuffers.NewBuilder(32)
	off := b.CreateByteVector([]byte{1, 2, 3})
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, off, 0)
	b.Finish(b.EndObject())
	buf := b.FinishedBytes()

	var got []byte
	require.NoError(t, SafeRead("Test", buf, func(tab Table) error {
		got = tab.Bytes(0)
		return nil
	}))

	for i := range buf {
		buf[i] = 0
	}
	assert.Equal(t, []byte{1, 2, 3}, got)
}

func TestPairs(t *testing.T) {
	b := flatbuffers.NewBuilder(128)
	entries := []flatbuffers.UOffsetT{
		CreatePair(b, []byte{0, 0, 0, 1}, []byte("alpha")),
		CreatePair(b, []byte{0, 0, 0, 2}, nil),
		CreatePair(b, []byte{0, 0, 0, 3}, []byte{}),
	}
	vec := CreateTableVector(b, entries)
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, vec, 0)
	b.Finish(b.EndObject())

	var pairs [][2][]byte
	require.NoError(t, SafeRead("Test", b.FinishedBytes(), func(tab Table) error {
		assert.Equal(t, 3, tab.VectorLen(0))
		pairs = tab.Pairs(0)
		return nil
	}))

	require.Len(t, pairs, 3)
	assert.Equal(t, []byte{0, 0, 0, 1}, pairs[0][0])
	assert.Equal(t, []byte("alpha"), pairs[0][1])
	assert.Equal(t, []byte{0, 0, 0, 2}, pairs[1][0])
	assert.Nil(t, pairs[1][1])
	assert.Equal(t, []byte{0, 0, 0, 3}, pairs[2][0])
	assert.Empty(t, pairs[2][1])
}

func TestSafeReadUnderflow(t *testing.T) {
	err := SafeRead("Test", []byte{1, 2}, func(Table) error {
		t.Fatal("read must not run")
		return nil
	})

	var underflow *errors.Underflow
	require.ErrorAs(t, err, &underflow)
	assert.Equal(t, 2, underflow.MsgSize)
}

func TestSafeReadRecoversFromCorruptBuffer(t *testing.T) {
	err := SafeRead("Test", []byte{0xff, 0xff, 0xff, 0x7f}, func(tab Table) error {
		tab.Uint32(0)
		return nil
	})

	var malformed *errors.MalformedEnvelope
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "Test", malformed.MessageName)
}
