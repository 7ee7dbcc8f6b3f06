package callback

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sessamekesh/fedpro-client/pkg/handle"
	"github.com/sessamekesh/fedpro-client/pkg/message/envelope"
)

type ConnectionLost struct {
	FaultDescription string
}

func (p *ConnectionLost) Encode() []byte {
	b := flatbuffers.NewBuilder(64)
	faultOff := b.CreateString(p.FaultDescription)

	b.StartObject(1)
	b.PrependUOffsetTSlot(0, faultOff, 0)
	b.Finish(b.EndObject())

	return b.FinishedBytes()
}

func DecodeConnectionLost(buf []byte) (*ConnectionLost, error) {
	p := &ConnectionLost{}
	err := envelope.SafeRead("ConnectionLost", buf, func(t envelope.Table) error {
		p.FaultDescription = t.String(0)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// DiscoverObjectInstance also carries DiscoverObjectInstanceWithProducingFederate,
// in which case ProducingFederate is set.
type DiscoverObjectInstance struct {
	ObjectInstance     handle.Handle
	ObjectClass        handle.Handle
	ObjectInstanceName string
	ProducingFederate  *handle.Handle
}

func (p *DiscoverObjectInstance) Encode() []byte {
	b := flatbuffers.NewBuilder(128)
	instanceOff := b.CreateByteVector(p.ObjectInstance.Encode())
	classOff := b.CreateByteVector(p.ObjectClass.Encode())
	nameOff := b.CreateString(p.ObjectInstanceName)
	var producerOff flatbuffers.UOffsetT
	if p.ProducingFederate != nil {
		producerOff = b.CreateByteVector(p.ProducingFederate.Encode())
	}

	b.StartObject(4)
	b.PrependUOffsetTSlot(0, instanceOff, 0)
	b.PrependUOffsetTSlot(1, classOff, 0)
	b.PrependUOffsetTSlot(2, nameOff, 0)
	if p.ProducingFederate != nil {
		b.PrependUOffsetTSlot(3, producerOff, 0)
	}
	b.Finish(b.EndObject())

	return b.FinishedBytes()
}

func DecodeDiscoverObjectInstance(buf []byte) (*DiscoverObjectInstance, error) {
	p := &DiscoverObjectInstance{}
	err := envelope.SafeRead("DiscoverObjectInstance", buf, func(t envelope.Table) error {
		p.ObjectInstance = handle.Decode(handle.Kind_ObjectInstance, t.Bytes(0))
		p.ObjectClass = handle.Decode(handle.Kind_ObjectClass, t.Bytes(1))
		p.ObjectInstanceName = t.String(2)
		if t.Has(3) {
			producer := handle.Decode(handle.Kind_Federate, t.Bytes(3))
			p.ProducingFederate = &producer
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

type RemoveObjectInstance struct {
	ObjectInstance    handle.Handle
	UserSuppliedTag   []byte
	ProducingFederate handle.Handle
}

func (p *RemoveObjectInstance) Encode() []byte {
	b := flatbuffers.NewBuilder(128)
	instanceOff := b.CreateByteVector(p.ObjectInstance.Encode())
	tagOff := b.CreateByteVector(p.UserSuppliedTag)
	producerOff := b.CreateByteVector(p.ProducingFederate.Encode())

	b.StartObject(3)
	b.PrependUOffsetTSlot(0, instanceOff, 0)
	b.PrependUOffsetTSlot(1, tagOff, 0)
	b.PrependUOffsetTSlot(2, producerOff, 0)
	b.Finish(b.EndObject())

	return b.FinishedBytes()
}

func DecodeRemoveObjectInstance(buf []byte) (*RemoveObjectInstance, error) {
	p := &RemoveObjectInstance{}
	err := envelope.SafeRead("RemoveObjectInstance", buf, func(t envelope.Table) error {
		p.ObjectInstance = handle.Decode(handle.Kind_ObjectInstance, t.Bytes(0))
		p.UserSuppliedTag = t.Bytes(1)
		p.ProducingFederate = handle.Decode(handle.Kind_Federate, t.Bytes(2))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

type AttributeValue struct {
	Attribute handle.Handle
	Value     []byte
}

type ReflectAttributeValues struct {
	ObjectInstance     handle.Handle
	Attributes         []AttributeValue
	UserSuppliedTag    []byte
	TransportationType handle.TransportationType
	ProducingFederate  handle.Handle
}

func (p *ReflectAttributeValues) Encode() []byte {
	b := flatbuffers.NewBuilder(256)
	instanceOff := b.CreateByteVector(p.ObjectInstance.Encode())

	entries := make([]flatbuffers.UOffsetT, 0, len(p.Attributes))
	for _, av := range p.Attributes {
		value := av.Value
		if value == nil {
			value = []byte{}
		}
		entries = append(entries, envelope.CreatePair(b, av.Attribute.Encode(), value))
	}
	attributesOff := envelope.CreateTableVector(b, entries)

	tagOff := b.CreateByteVector(p.UserSuppliedTag)
	transportOff := b.CreateByteVector(p.TransportationType.Encode())
	producerOff := b.CreateByteVector(p.ProducingFederate.Encode())

	b.StartObject(5)
	b.PrependUOffsetTSlot(0, instanceOff, 0)
	b.PrependUOffsetTSlot(1, attributesOff, 0)
	b.PrependUOffsetTSlot(2, tagOff, 0)
	b.PrependUOffsetTSlot(3, transportOff, 0)
	b.PrependUOffsetTSlot(4, producerOff, 0)
	b.Finish(b.EndObject())

	return b.FinishedBytes()
}

// DecodeReflectAttributeValues fails when the transportation type is not one
// of the known values.
func DecodeReflectAttributeValues(buf []byte) (*ReflectAttributeValues, error) {
	p := &ReflectAttributeValues{}
	err := envelope.SafeRead("ReflectAttributeValues", buf, func(t envelope.Table) error {
		p.ObjectInstance = handle.Decode(handle.Kind_ObjectInstance, t.Bytes(0))
		for _, pair := range t.Pairs(1) {
			p.Attributes = append(p.Attributes, AttributeValue{
				Attribute: handle.Decode(handle.Kind_Attribute, pair[0]),
				Value:     pair[1],
			})
		}
		p.UserSuppliedTag = t.Bytes(2)

		transport, err := handle.DecodeTransportationType(t.Bytes(3))
		if err != nil {
			return err
		}
		p.TransportationType = transport
		p.ProducingFederate = handle.Decode(handle.Kind_Federate, t.Bytes(4))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

type SaveFailureReason uint32

const (
	SaveFailureReason_RTIUnableToSave SaveFailureReason = iota
	SaveFailureReason_FederateReportedFailureDuringSave
	SaveFailureReason_FederateResignedDuringSave
	SaveFailureReason_RTIDetectedFailureDuringSave
	SaveFailureReason_SaveTimeCannotBeHonored
	SaveFailureReason_SaveAborted
)

func (r SaveFailureReason) String() string {
	switch r {
	case SaveFailureReason_FederateReportedFailureDuringSave:
		return "FEDERATE_REPORTED_FAILURE_DURING_SAVE"
	case SaveFailureReason_FederateResignedDuringSave:
		return "FEDERATE_RESIGNED_DURING_SAVE"
	case SaveFailureReason_RTIDetectedFailureDuringSave:
		return "RTI_DETECTED_FAILURE_DURING_SAVE"
	case SaveFailureReason_SaveTimeCannotBeHonored:
		return "SAVE_TIME_CANNOT_BE_HONORED"
	case SaveFailureReason_SaveAborted:
		return "SAVE_ABORTED"
	}
	return "RTI_UNABLE_TO_SAVE"
}

// saveFailureReasonFromWire maps values it does not know to RTIUnableToSave
// rather than rejecting the callback.
func saveFailureReasonFromWire(v uint32) SaveFailureReason {
	if r := SaveFailureReason(v); r <= SaveFailureReason_SaveAborted {
		return r
	}
	return SaveFailureReason_RTIUnableToSave
}

type FederationNotSaved struct {
	Reason SaveFailureReason
}

func (p *FederationNotSaved) Encode() []byte {
	b := flatbuffers.NewBuilder(32)
	b.StartObject(1)
	b.PrependUint32Slot(0, uint32(p.Reason), 0)
	b.Finish(b.EndObject())
	return b.FinishedBytes()
}

func DecodeFederationNotSaved(buf []byte) (*FederationNotSaved, error) {
	p := &FederationNotSaved{}
	err := envelope.SafeRead("FederationNotSaved", buf, func(t envelope.Table) error {
		p.Reason = saveFailureReasonFromWire(t.Uint32(0))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
