package call

import (
	"testing"

	"github.com/sessamekesh/fedpro-client/pkg/errors"
	"github.com/sessamekesh/fedpro-client/pkg/rtierrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWithException(t *testing.T) {
	raw, err := (&Response{
		Kind:      Kind_JoinFederationExecution,
		Exception: &rtierrors.Descriptor{Name: "FederateAlreadyExecutionMember", Details: "already joined"},
	}).Encode()
	require.NoError(t, err)

	resp, err := DecodeResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, Kind_JoinFederationExecution, resp.Kind)
	require.NotNil(t, resp.Exception)
	assert.Equal(t, "FederateAlreadyExecutionMember", resp.Exception.Name)
	assert.Equal(t, "already joined", resp.Exception.Details)
}

func TestResponseWithoutException(t *testing.T) {
	raw, err := (&Response{Kind: Kind_GetFederateName, Payload: []byte("fed-1")}).Encode()
	require.NoError(t, err)

	resp, err := DecodeResponse(raw)
	require.NoError(t, err)
	assert.Nil(t, resp.Exception)
	assert.Equal(t, []byte("fed-1"), resp.Payload)
}

func TestEncodeRejectsUnknownKind(t *testing.T) {
	_, err := (&Request{Kind: Kind_NONE}).Encode()
	var enumErr *errors.InvalidEnumValue
	require.ErrorAs(t, err, &enumErr)

	_, err = (&Request{Kind: kindCount}).Encode()
	require.ErrorAs(t, err, &enumErr)
}

func TestDecodeTruncatedBuffers(t *testing.T) {
	raw, err := (&Request{Kind: Kind_SendInteraction, Payload: []byte("0123456789abcdef")}).Encode()
	require.NoError(t, err)

	for n := 0; n < len(raw); n++ {
		assert.NotPanics(t, func() {
			_, _ = DecodeRequest(raw[:n])
			_, _ = DecodeResponse(raw[:n])
		})
	}

	_, err = DecodeRequest(raw[:2])
	var underflow *errors.Underflow
	require.ErrorAs(t, err, &underflow)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := DecodeResponse([]byte{0xff, 0xff, 0xff, 0x7f, 1, 2, 3, 4})
	require.Error(t, err)
}

func TestConnectRequest(t *testing.T) {
	raw := (&ConnectRequest{
		ConfigurationName: "local",
		RTIAddress:        "rti.example:8989",
		Credentials:       &Credentials{Type: "HLAplainTextPassword", Data: []byte("secret")},
	}).Encode()

	req, err := DecodeConnectRequest(raw)
	require.NoError(t, err)
	assert.Equal(t, "local", req.ConfigurationName)
	assert.Equal(t, "rti.example:8989", req.RTIAddress)
	require.NotNil(t, req.Credentials)
	assert.Equal(t, "HLAplainTextPassword", req.Credentials.Type)
	assert.Equal(t, []byte("secret"), req.Credentials.Data)

	noCreds, err := DecodeConnectRequest((&ConnectRequest{}).Encode())
	require.NoError(t, err)
	assert.Nil(t, noCreds.Credentials)
}

func TestConfigurationResultUnknownCodeFallsBack(t *testing.T) {
	raw := (&ConfigurationResult{
		AddressUsed:              true,
		AdditionalSettingsResult: AdditionalSettingsResultCode(42),
		Message:                  "ok",
	}).Encode()

	res, err := DecodeConfigurationResult(raw)
	require.NoError(t, err)
	assert.True(t, res.AddressUsed)
	assert.False(t, res.ConfigurationUsed)
	assert.Equal(t, AdditionalSettingsResultCode_SettingsIgnored, res.AdditionalSettingsResult)
	assert.Equal(t, "ok", res.Message)
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "Connect", Kind_Connect.String())
	assert.Equal(t, "GetTransportationTypeHandle", Kind_GetTransportationTypeHandle.String())
	assert.Equal(t, "DisableInteractionRelevanceAdvisorySwitch", Kind_DisableInteractionRelevanceAdvisorySwitch.String())
	assert.False(t, Kind_NONE.Valid())

	seen := map[string]Kind{}
	for k := Kind_Connect; k < kindCount; k++ {
		name := k.String()
		require.NotEmpty(t, name, "kind %d", k)
		prev, dup := seen[name]
		require.False(t, dup, "%s names both %d and %d", name, prev, k)
		seen[name] = k
	}
}
