// Package callback implements the callback envelope sent by the RTI and the
// response the federate returns once the callback has been handled.
package callback

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sessamekesh/fedpro-client/pkg/errors"
	"github.com/sessamekesh/fedpro-client/pkg/message/envelope"
	"github.com/sessamekesh/fedpro-client/pkg/rtierrors"
)

type Request struct {
	Kind    Kind
	Payload []byte
}

// Response acknowledges one callback. A nil Exception means the handler
// succeeded.
type Response struct {
	Exception *rtierrors.Descriptor
}

func (r *Request) Encode() ([]byte, error) {
	if !r.Kind.Valid() {
		return nil, &errors.InvalidEnumValue{
			EnumName: "CallbackRequest::Kind",
			IntValue: uint32(r.Kind),
		}
	}

	b := flatbuffers.NewBuilder(64 + len(r.Payload))
	payloadOff := b.CreateByteVector(r.Payload)

	b.StartObject(2)
	b.PrependUint16Slot(0, uint16(r.Kind), 0)
	b.PrependUOffsetTSlot(1, payloadOff, 0)
	b.Finish(b.EndObject())

	return b.FinishedBytes(), nil
}

func DecodeRequest(buf []byte) (*Request, error) {
	req := &Request{}
	err := envelope.SafeRead("CallbackRequest", buf, func(t envelope.Table) error {
		req.Kind = Kind(t.Uint16(0))
		if !req.Kind.Valid() {
			return &errors.InvalidEnumValue{
				EnumName: "CallbackRequest::Kind",
				IntValue: uint32(req.Kind),
			}
		}
		req.Payload = t.Bytes(1)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *Response) Encode() []byte {
	b := flatbuffers.NewBuilder(64)
	var nameOff, detailsOff flatbuffers.UOffsetT
	if r.Exception != nil {
		nameOff = b.CreateString(r.Exception.Name)
		detailsOff = b.CreateString(r.Exception.Details)
	}

	b.StartObject(3)
	b.PrependBoolSlot(0, r.Exception == nil, false)
	if r.Exception != nil {
		b.PrependUOffsetTSlot(1, nameOff, 0)
		b.PrependUOffsetTSlot(2, detailsOff, 0)
	}
	b.Finish(b.EndObject())

	return b.FinishedBytes()
}

func DecodeResponse(buf []byte) (*Response, error) {
	resp := &Response{}
	err := envelope.SafeRead("CallbackResponse", buf, func(t envelope.Table) error {
		if t.Bool(0) {
			return nil
		}
		if !t.Has(1) {
			return &errors.MissingFieldError{
				MessageName: "CallbackResponse",
				FieldName:   "ExceptionName",
			}
		}
		resp.Exception = &rtierrors.Descriptor{
			Name:    t.String(1),
			Details: t.String(2),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
