package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddressThreeSegments(t *testing.T) {
	addr, err := ParseAddress("a;b;c")
	require.NoError(t, err)
	assert.Equal(t, &Address{ServerAddress: "a", ProtocolSettings: "b", RTIAddress: "c"}, addr)
}

func TestParseAddressTooManySegments(t *testing.T) {
	_, err := ParseAddress("a;b;c;d")

	var malformed *MalformedAddress
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 4, malformed.Segments)
}

func TestParseAddressMissingSegments(t *testing.T) {
	addr, err := ParseAddress("rti-host")
	require.NoError(t, err)
	assert.Equal(t, &Address{ServerAddress: "rti-host"}, addr)

	addr, err = ParseAddress(";;rti://federation")
	require.NoError(t, err)
	assert.Equal(t, &Address{RTIAddress: "rti://federation"}, addr)

	addr, err = ParseAddress("")
	require.NoError(t, err)
	assert.Equal(t, &Address{}, addr)
}

func TestApply(t *testing.T) {
	addr, err := ParseAddress("example.org:9000;protocol=websocketsecure, path=/ws, connectTimeout=2s, tenant=blue;rti")
	require.NoError(t, err)

	base := DefaultSettings()
	s, err := addr.Apply(base)
	require.NoError(t, err)

	assert.Equal(t, "example.org", s.Host)
	assert.Equal(t, 9000, s.Port)
	assert.Equal(t, Protocol_WebsocketSecure, s.Protocol)
	assert.Equal(t, "/ws", s.Path)
	assert.Equal(t, 2*time.Second, s.ConnectTimeout)
	assert.Equal(t, "blue", s.Extra["tenant"])

	assert.Empty(t, base.Extra, "base settings must not be modified")
}

func TestApplyPortOnly(t *testing.T) {
	s, err := (&Address{ServerAddress: ":7777"}).Apply(DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, DefaultHost, s.Host)
	assert.Equal(t, 7777, s.Port)
}

func TestApplyRejectsBadSettings(t *testing.T) {
	var malformed *MalformedProtocolSettings

	_, err := (&Address{ProtocolSettings: "protocol"}).Apply(DefaultSettings())
	require.ErrorAs(t, err, &malformed)

	_, err = (&Address{ProtocolSettings: "port=99999"}).Apply(DefaultSettings())
	require.ErrorAs(t, err, &malformed)

	_, err = (&Address{ServerAddress: "host:"}).Apply(DefaultSettings())
	require.ErrorAs(t, err, &malformed)
}
