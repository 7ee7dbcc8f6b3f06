// Package client is the federate-side session core of a Federate Protocol
// client: connection lifecycle, call/response correlation and callback
// delivery.
//
// A Client owns at most one connection at a time. Calls are plain envelopes
// (call.Request); the per-operation marshaling lives outside this package.
//
//	c := client.CreateClient(client.ClientParams{Logger: logger})
//	result, err := c.Connect(ctx, handler, client.CallbackModel_Evoked)
//	...
//	resp, err := c.Call(ctx, &call.Request{Kind: call.Kind_GetFederateName, Payload: payload})
//	...
//	more, err := c.EvokeMultipleCallbacks(ctx, 100*time.Millisecond, time.Second)
package client

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sessamekesh/fedpro-client/pkg/message/call"
	"github.com/sessamekesh/fedpro-client/pkg/session"
	"github.com/sessamekesh/fedpro-client/pkg/transport"
	"go.uber.org/zap"
)

type ConnectionState int32

const (
	ConnectionState_Disconnected ConnectionState = iota
	ConnectionState_Connecting
	ConnectionState_Connected
)

func (s ConnectionState) String() string {
	switch s {
	case ConnectionState_Disconnected:
		return "Disconnected"
	case ConnectionState_Connecting:
		return "Connecting"
	case ConnectionState_Connected:
		return "Connected"
	}
	return fmt.Sprintf("ConnectionState(%d)", int32(s))
}

// CallbackModel is fixed for the lifetime of a connection.
type CallbackModel uint8

const (
	// CallbackModel_Immediate delivers callbacks from a dedicated goroutine.
	CallbackModel_Immediate CallbackModel = iota + 1
	// CallbackModel_Evoked delivers callbacks only inside EvokeCallback and
	// EvokeMultipleCallbacks.
	CallbackModel_Evoked
)

func (m CallbackModel) String() string {
	switch m {
	case CallbackModel_Immediate:
		return "HLA_IMMEDIATE"
	case CallbackModel_Evoked:
		return "HLA_EVOKED"
	}
	return fmt.Sprintf("CallbackModel(%d)", uint8(m))
}

func (m CallbackModel) valid() bool {
	return m == CallbackModel_Immediate || m == CallbackModel_Evoked
}

// RTIConfiguration is sent to the RTI with the connect call.
type RTIConfiguration struct {
	ConfigurationName  string
	RTIAddress         string
	AdditionalSettings string
}

type Credentials = call.Credentials

type ClientParams struct {
	// Address is the compact "<serverAddress>;<protocolSettings>;<rtiAddress>"
	// designator. It is parsed on every connect.
	Address string

	// Settings is the base the address is applied to. The zero value means
	// session.DefaultSettings().
	Settings session.Settings

	// SessionFactory defaults to the WebSocket transport.
	SessionFactory session.Factory

	Logger *zap.Logger
}

type Client struct {
	params  ClientParams
	factory session.Factory

	log *zap.Logger

	// mut_connection serializes connect and disconnect. conn and state are
	// only written while it is held.
	mut_connection sync.Mutex
	conn           *connection
	state          atomic.Int32

	// active is the connection calls go to. It is only set while Connected.
	active atomic.Pointer[connection]
}

func CreateClient(params ClientParams) *Client {
	logger := params.Logger
	if logger == nil {
		logger = zap.Must(zap.NewDevelopment())
	}

	factory := params.SessionFactory
	if factory == nil {
		factory = transport.NewWebsocketSession
	}

	if params.Settings.Protocol == "" {
		params.Settings = session.DefaultSettings()
	}

	c := &Client{
		params:         params,
		factory:        factory,
		log:            logger.With(zap.String("component", "FedProClient")),
		mut_connection: sync.Mutex{},
	}
	c.state.Store(int32(ConnectionState_Disconnected))
	return c
}

func (c *Client) State() ConnectionState {
	return ConnectionState(c.state.Load())
}

func (c *Client) setState(s ConnectionState) {
	prev := ConnectionState(c.state.Swap(int32(s)))
	if prev != s {
		c.log.Debug("Connection state changed", zap.Stringer("from", prev), zap.Stringer("to", s))
	}
}
