package handle

import (
	"encoding/binary"
	"fmt"

	"github.com/sessamekesh/fedpro-client/pkg/rtierrors"
)

// TransportationType is the one handle kind with a closed set of values.
type TransportationType uint32

const (
	TransportationType_Reliable   TransportationType = 1
	TransportationType_BestEffort TransportationType = 2
)

func (t TransportationType) String() string {
	switch t {
	case TransportationType_Reliable:
		return "HLAreliable"
	case TransportationType_BestEffort:
		return "HLAbestEffort"
	}
	return fmt.Sprintf("TransportationType(%d)", uint32(t))
}

// DecodeTransportationType accepts exactly the 4-byte big-endian tags 1 and 2.
func DecodeTransportationType(payload []byte) (TransportationType, error) {
	if len(payload) != 4 {
		return 0, rtierrors.Newf(rtierrors.CouldNotDecode, "transportation type must be 4 bytes, got %d", len(payload))
	}

	switch t := TransportationType(binary.BigEndian.Uint32(payload)); t {
	case TransportationType_Reliable, TransportationType_BestEffort:
		return t, nil
	default:
		return 0, rtierrors.Newf(rtierrors.CouldNotDecode, "unknown transportation type %d", uint32(t))
	}
}

func (t TransportationType) Encode() []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(t))
	return b
}

// Handle exposes the transportation type through the generic handle view.
func (t TransportationType) Handle() Handle {
	return Decode(Kind_TransportationType, t.Encode())
}
