package call

import (
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sessamekesh/fedpro-client/pkg/message/envelope"
)

type Credentials struct {
	Type string
	Data []byte
}

// ConnectRequest is the payload of a Kind_Connect request.
type ConnectRequest struct {
	ConfigurationName  string
	RTIAddress         string
	AdditionalSettings string
	Credentials        *Credentials
}

func (r *ConnectRequest) Encode() []byte {
	b := flatbuffers.NewBuilder(128)
	configOff := b.CreateString(r.ConfigurationName)
	addressOff := b.CreateString(r.RTIAddress)
	settingsOff := b.CreateString(r.AdditionalSettings)
	var credTypeOff, credDataOff flatbuffers.UOffsetT
	if r.Credentials != nil {
		credTypeOff = b.CreateString(r.Credentials.Type)
		credDataOff = b.CreateByteVector(r.Credentials.Data)
	}

	b.StartObject(5)
	b.PrependUOffsetTSlot(0, configOff, 0)
	b.PrependUOffsetTSlot(1, addressOff, 0)
	b.PrependUOffsetTSlot(2, settingsOff, 0)
	if r.Credentials != nil {
		b.PrependUOffsetTSlot(3, credTypeOff, 0)
		b.PrependUOffsetTSlot(4, credDataOff, 0)
	}
	b.Finish(b.EndObject())

	return b.FinishedBytes()
}

func DecodeConnectRequest(buf []byte) (*ConnectRequest, error) {
	req := &ConnectRequest{}
	err := envelope.SafeRead("ConnectRequest", buf, func(t envelope.Table) error {
		req.ConfigurationName = t.String(0)
		req.RTIAddress = t.String(1)
		req.AdditionalSettings = t.String(2)
		if t.Has(3) {
			req.Credentials = &Credentials{
				Type: t.String(3),
				Data: t.Bytes(4),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

type AdditionalSettingsResultCode uint32

const (
	AdditionalSettingsResultCode_SettingsIgnored AdditionalSettingsResultCode = iota
	AdditionalSettingsResultCode_SettingsFailedToParse
	AdditionalSettingsResultCode_SettingsApplied
)

func (c AdditionalSettingsResultCode) String() string {
	switch c {
	case AdditionalSettingsResultCode_SettingsFailedToParse:
		return "SETTINGS_FAILED_TO_PARSE"
	case AdditionalSettingsResultCode_SettingsApplied:
		return "SETTINGS_APPLIED"
	}
	return "SETTINGS_IGNORED"
}

// additionalSettingsResultCodeFromWire maps unrecognized wire values to
// SettingsIgnored instead of failing the connect.
func additionalSettingsResultCodeFromWire(v uint32) AdditionalSettingsResultCode {
	switch c := AdditionalSettingsResultCode(v); c {
	case AdditionalSettingsResultCode_SettingsFailedToParse, AdditionalSettingsResultCode_SettingsApplied:
		return c
	}
	return AdditionalSettingsResultCode_SettingsIgnored
}

// ConfigurationResult is the payload of a successful Kind_Connect response.
type ConfigurationResult struct {
	ConfigurationUsed        bool
	AddressUsed              bool
	AdditionalSettingsResult AdditionalSettingsResultCode
	Message                  string
}

func (r *ConfigurationResult) Encode() []byte {
	b := flatbuffers.NewBuilder(64)
	messageOff := b.CreateString(r.Message)

	b.StartObject(4)
	b.PrependBoolSlot(0, r.ConfigurationUsed, false)
	b.PrependBoolSlot(1, r.AddressUsed, false)
	b.PrependUint32Slot(2, uint32(r.AdditionalSettingsResult), 0)
	b.PrependUOffsetTSlot(3, messageOff, 0)
	b.Finish(b.EndObject())

	return b.FinishedBytes()
}

// DecodeConfigurationResult treats an empty payload as the zero result.
func DecodeConfigurationResult(buf []byte) (*ConfigurationResult, error) {
	res := &ConfigurationResult{}
	if len(buf) == 0 {
		return res, nil
	}

	err := envelope.SafeRead("ConfigurationResult", buf, func(t envelope.Table) error {
		res.ConfigurationUsed = t.Bool(0)
		res.AddressUsed = t.Bool(1)
		res.AdditionalSettingsResult = additionalSettingsResultCodeFromWire(t.Uint32(2))
		res.Message = t.String(3)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
