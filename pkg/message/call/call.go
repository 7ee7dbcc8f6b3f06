// Package call implements the call envelope: a request addressed by its Kind
// and the response that answers it under the same Kind.
package call

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sessamekesh/fedpro-client/pkg/errors"
	"github.com/sessamekesh/fedpro-client/pkg/message/envelope"
	"github.com/sessamekesh/fedpro-client/pkg/rtierrors"
)

const (
	slotKind             = 0
	slotPayload          = 1
	slotExceptionName    = 2
	slotExceptionDetails = 3
)

type Request struct {
	Kind    Kind
	Payload []byte
}

// Response carries either a payload or an exception descriptor. A non-nil
// Exception means the remote operation failed.
type Response struct {
	Kind      Kind
	Payload   []byte
	Exception *rtierrors.Descriptor
}

func (r *Request) Encode() ([]byte, error) {
	if !r.Kind.Valid() {
		return nil, &errors.InvalidEnumValue{
			EnumName: "CallRequest::Kind",
			IntValue: uint32(r.Kind),
		}
	}

	b := flatbuffers.NewBuilder(64 + len(r.Payload))
	payloadOff := b.CreateByteVector(r.Payload)

	b.StartObject(2)
	b.PrependUint16Slot(slotKind, uint16(r.Kind), 0)
	b.PrependUOffsetTSlot(slotPayload, payloadOff, 0)
	b.Finish(b.EndObject())

	return b.FinishedBytes(), nil
}

func DecodeRequest(buf []byte) (*Request, error) {
	req := &Request{}
	err := envelope.SafeRead("CallRequest", buf, func(t envelope.Table) error {
		req.Kind = Kind(t.Uint16(slotKind))
		if !req.Kind.Valid() {
			return &errors.InvalidEnumValue{
				EnumName: "CallRequest::Kind",
				IntValue: uint32(req.Kind),
			}
		}
		req.Payload = t.Bytes(slotPayload)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *Response) Encode() ([]byte, error) {
	if !r.Kind.Valid() {
		return nil, &errors.InvalidEnumValue{
			EnumName: "CallResponse::Kind",
			IntValue: uint32(r.Kind),
		}
	}

	b := flatbuffers.NewBuilder(64 + len(r.Payload))
	payloadOff := b.CreateByteVector(r.Payload)
	var nameOff, detailsOff flatbuffers.UOffsetT
	if r.Exception != nil {
		nameOff = b.CreateString(r.Exception.Name)
		detailsOff = b.CreateString(r.Exception.Details)
	}

	b.StartObject(4)
	b.PrependUint16Slot(slotKind, uint16(r.Kind), 0)
	b.PrependUOffsetTSlot(slotPayload, payloadOff, 0)
	if r.Exception != nil {
		b.PrependUOffsetTSlot(slotExceptionName, nameOff, 0)
		b.PrependUOffsetTSlot(slotExceptionDetails, detailsOff, 0)
	}
	b.Finish(b.EndObject())

	return b.FinishedBytes(), nil
}

func DecodeResponse(buf []byte) (*Response, error) {
	resp := &Response{}
	err := envelope.SafeRead("CallResponse", buf, func(t envelope.Table) error {
		resp.Kind = Kind(t.Uint16(slotKind))
		if !resp.Kind.Valid() {
			return &errors.InvalidEnumValue{
				EnumName: "CallResponse::Kind",
				IntValue: uint32(resp.Kind),
			}
		}
		resp.Payload = t.Bytes(slotPayload)
		if t.Has(slotExceptionName) {
			resp.Exception = &rtierrors.Descriptor{
				Name:    t.String(slotExceptionName),
				Details: t.String(slotExceptionDetails),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
