// Package handle implements the opaque identifiers the RTI hands out for
// federates, classes, instances and the rest of the HLA object model.
package handle

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/sessamekesh/fedpro-client/pkg/rtierrors"
)

type Kind uint8

const (
	Kind_Federate Kind = iota
	Kind_ObjectClass
	Kind_ObjectInstance
	Kind_Attribute
	Kind_InteractionClass
	Kind_Parameter
	Kind_Dimension
	Kind_Region
	Kind_TransportationType
	Kind_MessageRetraction

	Kind_NONE
)

var kindTypeNames = [Kind_NONE]string{
	Kind_Federate:           "FederateHandle",
	Kind_ObjectClass:        "ObjectClassHandle",
	Kind_ObjectInstance:     "ObjectInstanceHandle",
	Kind_Attribute:          "AttributeHandle",
	Kind_InteractionClass:   "InteractionClassHandle",
	Kind_Parameter:          "ParameterHandle",
	Kind_Dimension:          "DimensionHandle",
	Kind_Region:             "RegionHandle",
	Kind_TransportationType: "TransportationTypeHandle",
	Kind_MessageRetraction:  "MessageRetractionHandle",
}

func (k Kind) String() string {
	if k >= Kind_NONE {
		return fmt.Sprintf("Handle(%d)", uint8(k))
	}
	return kindTypeNames[k]
}

// Handle is an immutable tagged byte string. Two handles are equal when they
// have the same kind and the same raw bytes, so Handle works as a map key.
type Handle struct {
	kind Kind
	data string
}

// Decode wraps a wire payload. Any payload is accepted; an empty one only
// fails once its integer view is requested.
func Decode(kind Kind, payload []byte) Handle {
	return Handle{kind: kind, data: string(payload)}
}

func (h Handle) Kind() Kind {
	return h.kind
}

func (h Handle) Len() int {
	return len(h.data)
}

// Encode returns a copy of the stored payload.
func (h Handle) Encode() []byte {
	return []byte(h.data)
}

// AsInt is the best-effort integer view used for display and logging.
// Payloads of four bytes or more use their last four bytes as a big-endian
// int32, shorter payloads are accumulated big-endian.
func (h Handle) AsInt() (int32, error) {
	n := len(h.data)
	if n == 0 {
		return 0, rtierrors.Newf(rtierrors.CouldNotDecode, "%s has an empty payload", h.kind)
	}

	if n >= 4 {
		return int32(binary.BigEndian.Uint32([]byte(h.data[n-4:]))), nil
	}

	var v uint32
	for i := 0; i < n; i++ {
		v = v<<8 | uint32(h.data[i])
	}
	return int32(v), nil
}

func (h Handle) String() string {
	n := len(h.data)
	if n == 4 || n == 8 {
		v, _ := h.AsInt()
		return fmt.Sprintf("%s%d", h.kind, v)
	}
	return fmt.Sprintf("%s[%s]", h.kind, hex.EncodeToString([]byte(h.data)))
}

// IsZero reports whether the handle carries no bytes, as an absent optional
// handle does after decoding.
func (h Handle) IsZero() bool {
	return len(h.data) == 0
}
