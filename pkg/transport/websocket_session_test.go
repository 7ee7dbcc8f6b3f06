package transport

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sessamekesh/fedpro-client/pkg/message/frame"
	"github.com/sessamekesh/fedpro-client/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// fakeRTI answers every call request by echoing its body back, and can push
// callbacks to the connected session.
type fakeRTI struct {
	t        *testing.T
	server   *httptest.Server
	upgrader websocket.Upgrader

	silent bool

	mut_conn sync.Mutex
	conn     *websocket.Conn

	connected         chan struct{}
	callbackResponses chan *frame.Frame
}

func startFakeRTI(t *testing.T, silent bool) *fakeRTI {
	rti := &fakeRTI{
		t:                 t,
		silent:            silent,
		connected:         make(chan struct{}),
		callbackResponses: make(chan *frame.Frame, 16),
	}
	rti.server = httptest.NewServer(http.HandlerFunc(rti.handle))
	t.Cleanup(rti.server.Close)
	return rti
}

func (rti *fakeRTI) handle(w http.ResponseWriter, r *http.Request) {
	c, err := rti.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer c.Close()

	rti.mut_conn.Lock()
	rti.conn = c
	rti.mut_conn.Unlock()
	close(rti.connected)

	s := frame.DefaultSerializer()
	for {
		_, payload, err := c.ReadMessage()
		if err != nil {
			return
		}
		msg, err := s.Parse(payload)
		if err != nil {
			continue
		}

		switch msg.MessageType {
		case frame.MessageType_CallRequest:
			if rti.silent {
				continue
			}
			raw, _ := s.Serialize(&frame.Frame{
				MessageType: frame.MessageType_CallResponse,
				Sequence:    msg.Sequence,
				Body:        msg.Body,
			})
			rti.write(raw)
		case frame.MessageType_CallbackResponse:
			rti.callbackResponses <- msg
		}
	}
}

func (rti *fakeRTI) write(raw []byte) {
	rti.mut_conn.Lock()
	defer rti.mut_conn.Unlock()
	rti.conn.WriteMessage(websocket.BinaryMessage, raw)
}

func (rti *fakeRTI) pushCallback(seq uint64, body []byte) {
	raw, _ := frame.DefaultSerializer().Serialize(&frame.Frame{
		MessageType: frame.MessageType_CallbackRequest,
		Sequence:    seq,
		Body:        body,
	})
	rti.write(raw)
}

func (rti *fakeRTI) dropConnection() {
	rti.mut_conn.Lock()
	defer rti.mut_conn.Unlock()
	rti.conn.Close()
}

func (rti *fakeRTI) settings(t *testing.T) session.Settings {
	u, err := url.Parse(rti.server.URL)
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(u.Host)
	require.NoError(t, err)

	s := session.DefaultSettings()
	s.Host = host
	s.Port, err = strconv.Atoi(port)
	require.NoError(t, err)
	s.ConnectTimeout = 2 * time.Second
	return s
}

func newSession(t *testing.T, rti *fakeRTI) *WebsocketSession {
	ws, err := CreateWebsocketSession(WebsocketSessionParams{
		Settings: rti.settings(t),
		Logger:   zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	return ws
}

func waitReply(t *testing.T, ch <-chan session.Reply) session.Reply {
	select {
	case r := <-ch:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reply")
		return session.Reply{}
	}
}

func TestCallRoundTrip(t *testing.T) {
	rti := startFakeRTI(t, false)
	ws := newSession(t, rti)
	require.NoError(t, ws.Start(context.Background(), func(session.InboundCallback) {}))
	defer ws.Terminate(context.Background())

	replies := make([]<-chan session.Reply, 0, 8)
	for i := 0; i < 8; i++ {
		ch, err := ws.SendCallRequest([]byte{byte(i)})
		require.NoError(t, err)
		replies = append(replies, ch)
	}

	for i, ch := range replies {
		r := waitReply(t, ch)
		require.NoError(t, r.Err)
		assert.Equal(t, []byte{byte(i)}, r.Payload)
	}
}

func TestCallbacksReachListenerInOrder(t *testing.T) {
	rti := startFakeRTI(t, false)
	ws := newSession(t, rti)

	received := make(chan session.InboundCallback, 8)
	require.NoError(t, ws.Start(context.Background(), func(cb session.InboundCallback) {
		received <- cb
	}))
	defer ws.Terminate(context.Background())

	<-rti.connected
	for i := uint64(1); i <= 3; i++ {
		rti.pushCallback(i, []byte{byte(i)})
	}

	for i := uint64(1); i <= 3; i++ {
		select {
		case cb := <-received:
			assert.Equal(t, i, cb.Sequence)
			require.NoError(t, ws.SendCallbackResponse(cb.Sequence, []byte("ok")))
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for callback")
		}
	}

	select {
	case resp := <-rti.callbackResponses:
		assert.Equal(t, uint64(1), resp.Sequence)
		assert.Equal(t, []byte("ok"), resp.Body)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for callback response")
	}
}

func TestNonBinaryFramesAreSkipped(t *testing.T) {
	rti := startFakeRTI(t, false)
	core, logs := observer.New(zapcore.InfoLevel)
	ws, err := CreateWebsocketSession(WebsocketSessionParams{
		Settings: rti.settings(t),
		Logger:   zap.New(core),
	})
	require.NoError(t, err)

	received := make(chan session.InboundCallback, 1)
	require.NoError(t, ws.Start(context.Background(), func(cb session.InboundCallback) {
		received <- cb
	}))
	defer ws.Terminate(context.Background())

	<-rti.connected
	rti.mut_conn.Lock()
	require.NoError(t, rti.conn.WriteMessage(websocket.TextMessage, []byte("hello")))
	rti.mut_conn.Unlock()
	rti.pushCallback(7, []byte{7})

	select {
	case cb := <-received:
		assert.Equal(t, uint64(7), cb.Sequence)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for callback")
	}

	skipped := logs.FilterMessage("Ignoring frame").All()
	require.Len(t, skipped, 1)
	var logged error
	for _, f := range skipped[0].Context {
		if f.Key == "error" {
			logged, _ = f.Interface.(error)
		}
	}
	var nonBinary *NonBinaryMessage
	require.ErrorAs(t, logged, &nonBinary)
	assert.Equal(t, websocket.TextMessage, nonBinary.MessageType)
	assert.Equal(t, 5, nonBinary.Size)
}

func TestTerminateFailsOutstandingReplies(t *testing.T) {
	rti := startFakeRTI(t, true)
	ws := newSession(t, rti)
	require.NoError(t, ws.Start(context.Background(), func(session.InboundCallback) {}))

	ch, err := ws.SendCallRequest([]byte("never answered"))
	require.NoError(t, err)

	require.NoError(t, ws.Terminate(context.Background()))

	r := waitReply(t, ch)
	assert.True(t, errors.Is(r.Err, session.ErrTerminated))
	assert.NoError(t, ws.Err())

	_, err = ws.SendCallRequest([]byte("late"))
	assert.True(t, errors.Is(err, session.ErrTerminated))

	// A second Terminate is a no-op.
	assert.NoError(t, ws.Terminate(context.Background()))
}

func TestDroppedConnectionClosesDone(t *testing.T) {
	rti := startFakeRTI(t, true)
	ws := newSession(t, rti)
	require.NoError(t, ws.Start(context.Background(), func(session.InboundCallback) {}))

	ch, err := ws.SendCallRequest([]byte("pending"))
	require.NoError(t, err)

	<-rti.connected
	rti.dropConnection()

	select {
	case <-ws.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("session did not notice the dropped connection")
	}
	assert.Error(t, ws.Err())

	r := waitReply(t, ch)
	assert.True(t, errors.Is(r.Err, session.ErrTerminated))
}

func TestUnsupportedProtocol(t *testing.T) {
	s := session.DefaultSettings()
	s.Protocol = "carrier-pigeon"

	_, err := NewWebsocketSession(s, zaptest.NewLogger(t))
	var unsupported *UnsupportedProtocolError
	require.ErrorAs(t, err, &unsupported)
}

func TestDialFailure(t *testing.T) {
	rti := startFakeRTI(t, false)
	s := rti.settings(t)
	rti.server.Close()

	ws, err := CreateWebsocketSession(WebsocketSessionParams{Settings: s, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)

	require.Error(t, ws.Start(context.Background(), func(session.InboundCallback) {}))
	select {
	case <-ws.Done():
	default:
		t.Fatal("Done must be closed after a failed start")
	}
}
