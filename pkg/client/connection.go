package client

import (
	"context"
	"sync"

	"github.com/rs/xid"
	"github.com/sessamekesh/fedpro-client/internal"
	"github.com/sessamekesh/fedpro-client/pkg/handlers"
	"github.com/sessamekesh/fedpro-client/pkg/message/call"
	"github.com/sessamekesh/fedpro-client/pkg/message/callback"
	"github.com/sessamekesh/fedpro-client/pkg/rtierrors"
	"github.com/sessamekesh/fedpro-client/pkg/session"
	"go.uber.org/zap"
)

// connection is everything bound to one successful connect.
type connection struct {
	id        string
	session   session.Session
	callbacks *callbackDispatcher
	calls     *internal.PendingStore[*PendingCall]

	log *zap.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

func newConnection(sess session.Session, handler handlers.CallbackHandler, model CallbackModel, logger *zap.Logger) *connection {
	return &connection{
		session:   sess,
		callbacks: newCallbackDispatcher(handler, model, sess, logger),
		calls:     internal.CreatePendingStore[*PendingCall](0),
		log:       logger,
		closed:    make(chan struct{}),
	}
}

// teardown stops callback delivery, terminates the session and fails every
// outstanding call with NotConnected.
func (conn *connection) teardown(ctx context.Context) error {
	conn.closeOnce.Do(func() {
		close(conn.closed)
	})

	conn.callbacks.stop()
	err := conn.session.Terminate(ctx)
	conn.failPending(rtierrors.New(rtierrors.NotConnected, "connection closed"))
	return err
}

func (c *Client) Connect(ctx context.Context, handler handlers.CallbackHandler, model CallbackModel) (*call.ConfigurationResult, error) {
	return c.connect(ctx, handler, model, RTIConfiguration{}, nil)
}

func (c *Client) ConnectWithConfiguration(ctx context.Context, handler handlers.CallbackHandler, model CallbackModel, configuration RTIConfiguration) (*call.ConfigurationResult, error) {
	return c.connect(ctx, handler, model, configuration, nil)
}

func (c *Client) ConnectWithCredentials(ctx context.Context, handler handlers.CallbackHandler, model CallbackModel, credentials Credentials) (*call.ConfigurationResult, error) {
	return c.connect(ctx, handler, model, RTIConfiguration{}, &credentials)
}

func (c *Client) ConnectWithConfigurationAndCredentials(ctx context.Context, handler handlers.CallbackHandler, model CallbackModel, configuration RTIConfiguration, credentials Credentials) (*call.ConfigurationResult, error) {
	return c.connect(ctx, handler, model, configuration, &credentials)
}

func (c *Client) connect(ctx context.Context, handler handlers.CallbackHandler, model CallbackModel, configuration RTIConfiguration, credentials *Credentials) (*call.ConfigurationResult, error) {
	if InCallback(ctx) {
		return nil, rtierrors.New(rtierrors.CallNotAllowedFromWithinCallback, "connect")
	}

	c.mut_connection.Lock()
	defer c.mut_connection.Unlock()

	if state := c.State(); state != ConnectionState_Disconnected {
		return nil, rtierrors.Newf(rtierrors.AlreadyConnected, "client is %s", state)
	}

	if handler == nil {
		return nil, rtierrors.New(rtierrors.RTIinternalError, "a federate callback handler is required")
	}
	if !model.valid() {
		return nil, rtierrors.New(rtierrors.UnsupportedCallbackModel, model.String())
	}

	address, err := session.ParseAddress(c.params.Address)
	if err != nil {
		return nil, rtierrors.Wrap(rtierrors.ConnectionFailed, err, "")
	}
	settings, err := address.Apply(c.params.Settings)
	if err != nil {
		return nil, rtierrors.Wrap(rtierrors.ConnectionFailed, err, "")
	}

	c.setState(ConnectionState_Connecting)

	connId := xid.New().String()
	log := c.log.With(zap.String("connectionId", connId))
	log.Info("Connecting",
		zap.String("host", settings.Host),
		zap.Int("port", settings.Port),
		zap.String("protocol", settings.Protocol),
		zap.Stringer("callbackModel", model))

	sess, err := c.factory(settings, log)
	if err != nil {
		c.setState(ConnectionState_Disconnected)
		return nil, rtierrors.Wrap(rtierrors.ConnectionFailed, err, "could not create session")
	}

	conn := newConnection(sess, handler, model, log)
	conn.id = connId

	if err := sess.Start(ctx, conn.callbacks.enqueue); err != nil {
		if termErr := sess.Terminate(ctx); termErr != nil {
			log.Debug("Session teardown after failed start reported an error", zap.Error(termErr))
		}
		c.setState(ConnectionState_Disconnected)
		return nil, rtierrors.Wrap(rtierrors.ConnectionFailed, err, "could not start session")
	}

	result, err := c.connectCall(ctx, conn, address, configuration, credentials)
	if err != nil {
		if termErr := conn.teardown(ctx); termErr != nil {
			log.Warn("Session teardown after failed connect reported an error", zap.Error(termErr))
		}
		c.setState(ConnectionState_Disconnected)
		return nil, rtierrors.Wrap(rtierrors.ConnectionFailed, err, "connect call failed")
	}

	conn.callbacks.start()
	c.conn = conn
	c.active.Store(conn)
	c.setState(ConnectionState_Connected)

	go c.watch(conn)

	log.Info("Connected",
		zap.Bool("configurationUsed", result.ConfigurationUsed),
		zap.Bool("addressUsed", result.AddressUsed),
		zap.Stringer("additionalSettings", result.AdditionalSettingsResult))
	return result, nil
}

func (c *Client) connectCall(ctx context.Context, conn *connection, address *session.Address, configuration RTIConfiguration, credentials *Credentials) (*call.ConfigurationResult, error) {
	rtiAddress := configuration.RTIAddress
	if rtiAddress == "" {
		rtiAddress = address.RTIAddress
	}

	payload := (&call.ConnectRequest{
		ConfigurationName:  configuration.ConfigurationName,
		RTIAddress:         rtiAddress,
		AdditionalSettings: configuration.AdditionalSettings,
		Credentials:        credentials,
	}).Encode()

	pending, err := conn.dispatch(&call.Request{Kind: call.Kind_Connect, Payload: payload})
	if err != nil {
		return nil, err
	}

	resp, err := pending.Wait(ctx)
	if err != nil {
		return nil, err
	}

	result, err := call.DecodeConfigurationResult(resp.Payload)
	if err != nil {
		return nil, rtierrors.Internal(err, "decoding configuration result")
	}
	return result, nil
}

// Disconnect always leaves the client Disconnected. The first failure met
// along the way is returned.
func (c *Client) Disconnect(ctx context.Context) error {
	if InCallback(ctx) {
		return rtierrors.New(rtierrors.CallNotAllowedFromWithinCallback, "disconnect")
	}

	c.mut_connection.Lock()
	defer c.mut_connection.Unlock()

	conn := c.conn
	if conn == nil || c.State() != ConnectionState_Connected {
		return rtierrors.Wrap(rtierrors.FederateNotExecutionMember, rtierrors.NotConnected, "disconnect")
	}

	conn.callbacks.halt()
	c.active.Store(nil)
	conn.log.Info("Disconnecting")

	var firstErr error
	pending, err := conn.dispatch(&call.Request{Kind: call.Kind_Disconnect})
	if err == nil {
		_, err = pending.Wait(ctx)
	}
	if err != nil {
		conn.log.Warn("Disconnect call failed", zap.Error(err))
		firstErr = err
	}

	if err := conn.teardown(ctx); err != nil && firstErr == nil {
		firstErr = rtierrors.Internal(err, "terminating session")
	}

	c.conn = nil
	c.setState(ConnectionState_Disconnected)
	conn.log.Info("Disconnected")

	return firstErr
}

// watch turns an unexpected end of the session into a ConnectionLost
// callback.
func (c *Client) watch(conn *connection) {
	select {
	case <-conn.closed:
		return
	case <-conn.session.Done():
	}

	fault := "session closed"
	if err := conn.session.Err(); err != nil {
		fault = err.Error()
	}

	lost := func() bool {
		c.mut_connection.Lock()
		defer c.mut_connection.Unlock()

		if c.conn != conn {
			return false
		}

		conn.callbacks.halt()
		c.active.Store(nil)
		c.conn = nil
		if err := conn.teardown(context.Background()); err != nil {
			conn.log.Debug("Session teardown after connection loss reported an error", zap.Error(err))
		}
		c.setState(ConnectionState_Disconnected)
		return true
	}()
	if !lost {
		return
	}

	conn.log.Warn("Connection lost", zap.String("fault", fault))
	conn.callbacks.deliverLocal(&callback.Request{
		Kind:    callback.Kind_ConnectionLost,
		Payload: (&callback.ConnectionLost{FaultDescription: fault}).Encode(),
	})
}

// EnableCallbacks asks the RTI to resume callbacks and reopens local
// delivery.
func (c *Client) EnableCallbacks(ctx context.Context) error {
	return c.setCallbacksEnabled(ctx, call.Kind_EnableCallbacks, true)
}

// DisableCallbacks holds back delivery in both callback models. Callbacks
// already received stay queued.
func (c *Client) DisableCallbacks(ctx context.Context) error {
	return c.setCallbacksEnabled(ctx, call.Kind_DisableCallbacks, false)
}

func (c *Client) setCallbacksEnabled(ctx context.Context, kind call.Kind, enabled bool) error {
	if InCallback(ctx) {
		return rtierrors.New(rtierrors.CallNotAllowedFromWithinCallback, kind.String())
	}

	conn := c.active.Load()
	if conn == nil {
		return rtierrors.New(rtierrors.NotConnected, kind.String())
	}

	pending, err := conn.dispatch(&call.Request{Kind: kind})
	if err != nil {
		return err
	}
	if _, err := pending.Wait(ctx); err != nil {
		return err
	}

	conn.callbacks.setEnabled(enabled)
	conn.log.Debug("Callback delivery toggled", zap.Bool("enabled", enabled))
	return nil
}
