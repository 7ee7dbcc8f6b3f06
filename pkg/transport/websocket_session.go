package transport

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/xid"
	"github.com/sessamekesh/fedpro-client/internal"
	"github.com/sessamekesh/fedpro-client/pkg/message/frame"
	"github.com/sessamekesh/fedpro-client/pkg/session"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type UnsupportedProtocolError struct {
	Protocol string
}

func (e *UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("Unsupported session protocol '%s'", e.Protocol)
}

type NonBinaryMessage struct {
	MessageType int
	Size        int
}

func (m *NonBinaryMessage) Error() string {
	return fmt.Sprintf("Non binary message received (type %d, %d bytes)", m.MessageType, m.Size)
}

type WebsocketSessionParams struct {
	Settings   session.Settings
	Serializer frame.Serializer

	// Dialer defaults to websocket.DefaultDialer.
	Dialer *websocket.Dialer

	MaxReadMessageSize int64
	OutgoingQueueSize  int

	Logger *zap.Logger
}

// WebsocketSession is a session.Session over a single WebSocket connection.
// One goroutine reads frames and resolves replies, one goroutine writes.
type WebsocketSession struct {
	params WebsocketSessionParams

	log     *zap.Logger
	pending *internal.PendingStore[chan session.Reply]

	outgoing chan []byte
	done     chan struct{}
	wg       sync.WaitGroup

	mut_state  sync.RWMutex
	conn       *websocket.Conn
	started    bool
	closed     bool
	terminated bool
	err        error
}

// NewWebsocketSession has the session.Factory signature.
func NewWebsocketSession(settings session.Settings, logger *zap.Logger) (session.Session, error) {
	return CreateWebsocketSession(WebsocketSessionParams{
		Settings:   settings,
		Serializer: frame.DefaultSerializer(),
		Logger:     logger,
	})
}

func CreateWebsocketSession(params WebsocketSessionParams) (*WebsocketSession, error) {
	switch params.Settings.Protocol {
	case session.Protocol_Websocket, session.Protocol_WebsocketSecure:
	default:
		return nil, &UnsupportedProtocolError{Protocol: params.Settings.Protocol}
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.Must(zap.NewDevelopment())
	}

	if params.Serializer == (frame.Serializer{}) {
		params.Serializer = frame.DefaultSerializer()
	}

	queueSize := params.OutgoingQueueSize
	if queueSize <= 0 {
		queueSize = 16
	}

	return &WebsocketSession{
		params:   params,
		log:      logger.With(zap.String("session", "WebSocket"), zap.String("sessionId", xid.New().String())),
		pending:  internal.CreatePendingStore[chan session.Reply](params.Settings.MaxPendingCalls),
		outgoing: make(chan []byte, queueSize),
		done:     make(chan struct{}),
	}, nil
}

func (ws *WebsocketSession) url() string {
	scheme := "ws"
	if ws.params.Settings.Protocol == session.Protocol_WebsocketSecure {
		scheme = "wss"
	}

	path := ws.params.Settings.Path
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(ws.params.Settings.Host, strconv.Itoa(ws.params.Settings.Port)),
		Path:   path,
	}
	return u.String()
}

func (ws *WebsocketSession) Start(ctx context.Context, listener session.CallbackListener) error {
	ws.mut_state.Lock()
	defer ws.mut_state.Unlock()

	if ws.started {
		return fmt.Errorf("websocket session already started")
	}
	if ws.closed {
		return session.ErrTerminated
	}
	ws.started = true

	dialer := ws.params.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	dialCtx := ctx
	if ws.params.Settings.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, ws.params.Settings.ConnectTimeout)
		defer cancel()
	}

	target := ws.url()
	ws.log.Info("Dialing RTI", zap.String("url", target))
	conn, _, err := dialer.DialContext(dialCtx, target, nil)
	if err != nil {
		ws.closed = true
		ws.err = fmt.Errorf("dial %s: %w", target, err)
		close(ws.done)
		return ws.err
	}

	if ws.params.MaxReadMessageSize > 0 {
		conn.SetReadLimit(ws.params.MaxReadMessageSize)
	}
	ws.conn = conn

	ws.wg.Add(2)
	go ws.writeLoop(conn)
	go ws.readLoop(conn, listener)

	return nil
}

func (ws *WebsocketSession) writeLoop(conn *websocket.Conn) {
	defer ws.wg.Done()

	for {
		select {
		case <-ws.done:
			return
		case msg := <-ws.outgoing:
			if err := conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
				ws.fail(fmt.Errorf("write: %w", err))
				return
			}
		}
	}
}

func (ws *WebsocketSession) readLoop(conn *websocket.Conn, listener session.CallbackListener) {
	defer ws.wg.Done()

	expectedCloseErrors := []int{websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived}
	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if ws.isTerminated() {
				return
			}
			if websocket.IsCloseError(err, expectedCloseErrors...) {
				ws.log.Info("RTI closed the session", zap.Error(err))
			} else {
				ws.log.Warn("Unexpected WebSocket error on message read", zap.Error(err))
			}
			ws.fail(fmt.Errorf("read: %w", err))
			return
		}

		if msgType != websocket.BinaryMessage {
			ws.log.Info("Ignoring frame", zap.Error(&NonBinaryMessage{MessageType: msgType, Size: len(payload)}))
			continue
		}

		msg, err := ws.params.Serializer.Parse(payload)
		if err != nil {
			ws.log.Warn("Dropping unparseable frame", zap.Error(err))
			continue
		}

		switch msg.MessageType {
		case frame.MessageType_CallResponse:
			reply, err := ws.pending.Resolve(msg.Sequence)
			if err != nil {
				ws.log.Warn("Call response for unknown request", zap.Uint64("sequence", msg.Sequence))
				continue
			}
			reply <- session.Reply{Payload: msg.Body}
		case frame.MessageType_CallbackRequest:
			listener(session.InboundCallback{Sequence: msg.Sequence, Payload: msg.Body})
		default:
			ws.log.Warn("Unexpected frame from RTI", zap.Stringer("type", msg.MessageType))
		}
	}
}

func (ws *WebsocketSession) isTerminated() bool {
	ws.mut_state.RLock()
	defer ws.mut_state.RUnlock()
	return ws.terminated
}

// shutdown closes the session once. Outstanding replies are completed with
// ErrTerminated, wrapping cause when there is one.
func (ws *WebsocketSession) shutdown(cause error, terminated bool) bool {
	ws.mut_state.Lock()
	if ws.closed {
		ws.mut_state.Unlock()
		return false
	}
	ws.closed = true
	ws.terminated = terminated
	ws.err = cause
	conn := ws.conn
	close(ws.done)
	ws.mut_state.Unlock()

	replyErr := session.ErrTerminated
	if cause != nil {
		replyErr = fmt.Errorf("%w: %v", session.ErrTerminated, cause)
	}
	for _, reply := range ws.pending.Drain() {
		reply <- session.Reply{Err: replyErr}
	}

	if conn != nil && !terminated {
		conn.Close()
	}
	return true
}

func (ws *WebsocketSession) fail(cause error) {
	if ws.shutdown(cause, false) {
		ws.log.Error("WebSocket session failed", zap.Error(cause))
	}
}

func (ws *WebsocketSession) enqueue(raw []byte) error {
	select {
	case ws.outgoing <- raw:
		return nil
	case <-ws.done:
		return session.ErrTerminated
	}
}

func (ws *WebsocketSession) SendCallRequest(payload []byte) (<-chan session.Reply, error) {
	reply := make(chan session.Reply, 1)
	id := ws.pending.GetNextId()

	err := func() error {
		ws.mut_state.RLock()
		defer ws.mut_state.RUnlock()

		if !ws.started || ws.closed {
			return session.ErrTerminated
		}
		return ws.pending.Create(id, reply)
	}()
	if err != nil {
		return nil, err
	}

	raw, err := ws.params.Serializer.Serialize(&frame.Frame{
		MessageType: frame.MessageType_CallRequest,
		Sequence:    id,
		Body:        payload,
	})
	if err != nil {
		ws.pending.Resolve(id)
		return nil, err
	}

	// If the session closes first the reply was already completed by
	// shutdown.
	ws.enqueue(raw)
	return reply, nil
}

func (ws *WebsocketSession) SendCallbackResponse(sequence uint64, payload []byte) error {
	raw, err := ws.params.Serializer.Serialize(&frame.Frame{
		MessageType: frame.MessageType_CallbackResponse,
		Sequence:    sequence,
		Body:        payload,
	})
	if err != nil {
		return err
	}
	return ws.enqueue(raw)
}

func (ws *WebsocketSession) Terminate(ctx context.Context) error {
	ws.mut_state.RLock()
	conn := ws.conn
	ws.mut_state.RUnlock()

	if !ws.shutdown(nil, true) {
		return nil
	}
	ws.log.Info("Terminating WebSocket session")

	var err error
	if conn != nil {
		deadline := time.Now().Add(time.Second)
		if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
			deadline = d
		}
		closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "federate disconnect")
		if writeErr := conn.WriteControl(websocket.CloseMessage, closeMsg, deadline); writeErr != nil && writeErr != websocket.ErrCloseSent {
			err = multierr.Append(err, writeErr)
		}
		err = multierr.Append(err, conn.Close())
	}

	finished := make(chan struct{})
	go func() {
		ws.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-ctx.Done():
		err = multierr.Append(err, ctx.Err())
	}
	return err
}

func (ws *WebsocketSession) Done() <-chan struct{} {
	return ws.done
}

func (ws *WebsocketSession) Err() error {
	ws.mut_state.RLock()
	defer ws.mut_state.RUnlock()
	return ws.err
}
