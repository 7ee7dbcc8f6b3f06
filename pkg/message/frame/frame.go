package frame

import (
	"encoding/binary"

	"github.com/sessamekesh/fedpro-client/pkg/errors"
)

const (
	DefaultMagicNumber uint32 = 0x46505243 // "FPRC"
	DefaultVersion     uint8  = 1

	HeaderSize = 13
)

type MessageType uint8

const (
	MessageType_CallRequest MessageType = iota
	MessageType_CallResponse
	MessageType_CallbackRequest
	MessageType_CallbackResponse

	MessageType_NONE
)

func (t MessageType) String() string {
	switch t {
	case MessageType_CallRequest:
		return "CallRequest"
	case MessageType_CallResponse:
		return "CallResponse"
	case MessageType_CallbackRequest:
		return "CallbackRequest"
	case MessageType_CallbackResponse:
		return "CallbackResponse"
	}
	return "NONE"
}

func headerIdToMessageType(headerId uint8) MessageType {
	switch headerId {
	case 0x0:
		return MessageType_CallRequest
	case 0x1:
		return MessageType_CallResponse
	case 0x2:
		return MessageType_CallbackRequest
	case 0x3:
		return MessageType_CallbackResponse
	}

	return MessageType_NONE
}

func messageTypeToHeaderId(msgType MessageType) uint8 {
	switch msgType {
	case MessageType_CallRequest:
		return 0x0
	case MessageType_CallResponse:
		return 0x1
	case MessageType_CallbackRequest:
		return 0x2
	case MessageType_CallbackResponse:
		return 0x3
	}

	return 0xFF
}

// Frame is one session-level message. Sequence correlates a call response
// with its request, and a callback response with its callback.
type Frame struct {
	MagicNumber uint32
	Version     uint8
	MessageType MessageType
	Sequence    uint64
	Body        []byte
}

type Serializer struct {
	MagicNumber uint32
	Version     uint8
}

func DefaultSerializer() Serializer {
	return Serializer{
		MagicNumber: DefaultMagicNumber,
		Version:     DefaultVersion,
	}
}

func (s Serializer) Parse(msg []byte) (*Frame, error) {
	if len(msg) < HeaderSize {
		return nil, &errors.Underflow{
			MessageName: "Frame",
			MsgSize:     len(msg),
			MinimumSize: HeaderSize,
		}
	}

	magicNumber := binary.LittleEndian.Uint32(msg[0:4])
	versionTypeByte := msg[4]
	version := versionTypeByte & 0xF0 >> 4
	msgTypeNum := versionTypeByte & 0xF
	msgType := headerIdToMessageType(msgTypeNum)

	if magicNumber != s.MagicNumber || version != s.Version {
		return nil, &errors.InvalidHeaderVersion{
			ExpectedMagicNumber: s.MagicNumber,
			ExpectedVersion:     s.Version,
			ActualMagicNumber:   magicNumber,
			ActualVersion:       version,
		}
	}

	if msgType == MessageType_NONE {
		return nil, &errors.InvalidEnumValue{
			EnumName: "Frame::MessageType",
			IntValue: uint32(msgTypeNum),
		}
	}

	body := make([]byte, len(msg)-HeaderSize)
	copy(body, msg[HeaderSize:])

	return &Frame{
		MagicNumber: magicNumber,
		Version:     version,
		MessageType: msgType,
		Sequence:    binary.LittleEndian.Uint64(msg[5:HeaderSize]),
		Body:        body,
	}, nil
}

func (s Serializer) Serialize(msg *Frame) ([]byte, error) {
	headerId := messageTypeToHeaderId(msg.MessageType)
	if headerId == 0xFF {
		return nil, &errors.InvalidEnumValue{
			EnumName: "Frame::MessageType",
			IntValue: uint32(msg.MessageType),
		}
	}

	out := make([]byte, 0, HeaderSize+len(msg.Body))
	out = binary.LittleEndian.AppendUint32(out, s.MagicNumber)
	out = append(out, s.Version<<4|(headerId&0xF))
	out = binary.LittleEndian.AppendUint64(out, msg.Sequence)

	return append(out, msg.Body...), nil
}
