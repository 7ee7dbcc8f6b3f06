package client

import (
	"context"
	"errors"
	"sync"

	"github.com/sessamekesh/fedpro-client/pkg/message/call"
	"github.com/sessamekesh/fedpro-client/pkg/message/callback"
	"github.com/sessamekesh/fedpro-client/pkg/rtierrors"
	"github.com/sessamekesh/fedpro-client/pkg/session"
	"go.uber.org/zap"
)

type heldCall struct {
	req   *call.Request
	reply chan session.Reply
}

type ackedCallback struct {
	sequence uint64
	response *callback.Response
}

// fakeSession is an in-memory RTI. Calls are answered by respond; when
// respond returns nil the call is held until answerHeld is used.
type fakeSession struct {
	mu sync.Mutex

	respond  func(req *call.Request) *call.Response
	listener session.CallbackListener

	held     []heldCall
	requests []call.Kind
	acks     []ackedCallback
	ackCh    chan ackedCallback

	nextCallbackSeq uint64

	startErr   error
	terminated bool
	done       chan struct{}
	doneOnce   sync.Once
	err        error
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		respond: func(req *call.Request) *call.Response {
			return okResponse(req.Kind)
		},
		ackCh: make(chan ackedCallback, 64),
		done:  make(chan struct{}),
	}
}

func okResponse(kind call.Kind) *call.Response {
	resp := &call.Response{Kind: kind}
	if kind == call.Kind_Connect {
		resp.Payload = (&call.ConfigurationResult{
			ConfigurationUsed:        true,
			AddressUsed:              true,
			AdditionalSettingsResult: call.AdditionalSettingsResultCode_SettingsApplied,
		}).Encode()
	}
	return resp
}

func exceptionResponse(kind call.Kind, name, details string) *call.Response {
	return &call.Response{
		Kind:      kind,
		Exception: &rtierrors.Descriptor{Name: name, Details: details},
	}
}

func (s *fakeSession) factory() session.Factory {
	return func(settings session.Settings, logger *zap.Logger) (session.Session, error) {
		return s, nil
	}
}

func (s *fakeSession) Start(ctx context.Context, listener session.CallbackListener) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startErr != nil {
		return s.startErr
	}
	s.listener = listener
	return nil
}

func (s *fakeSession) SendCallRequest(payload []byte) (<-chan session.Reply, error) {
	req, err := call.DecodeRequest(payload)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.terminated {
		return nil, session.ErrTerminated
	}

	s.requests = append(s.requests, req.Kind)
	reply := make(chan session.Reply, 1)

	if resp := s.respond(req); resp != nil {
		raw, err := resp.Encode()
		if err != nil {
			return nil, err
		}
		reply <- session.Reply{Payload: raw}
		return reply, nil
	}

	s.held = append(s.held, heldCall{req: req, reply: reply})
	return reply, nil
}

func (s *fakeSession) SendCallbackResponse(sequence uint64, payload []byte) error {
	resp, err := callback.DecodeResponse(payload)
	if err != nil {
		return err
	}

	ack := ackedCallback{sequence: sequence, response: resp}
	s.mu.Lock()
	s.acks = append(s.acks, ack)
	s.mu.Unlock()

	s.ackCh <- ack
	return nil
}

func (s *fakeSession) Terminate(ctx context.Context) error {
	s.mu.Lock()
	s.terminated = true
	held := s.held
	s.held = nil
	s.mu.Unlock()

	for _, h := range held {
		h.reply <- session.Reply{Err: session.ErrTerminated}
	}
	s.doneOnce.Do(func() { close(s.done) })
	return nil
}

func (s *fakeSession) Done() <-chan struct{} {
	return s.done
}

func (s *fakeSession) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// drop simulates the transport failing underneath the client.
func (s *fakeSession) drop(cause error) {
	s.mu.Lock()
	s.err = cause
	s.terminated = true
	held := s.held
	s.held = nil
	s.mu.Unlock()

	for _, h := range held {
		h.reply <- session.Reply{Err: errors.Join(session.ErrTerminated, cause)}
	}
	s.doneOnce.Do(func() { close(s.done) })
}

// pushCallback delivers a callback envelope the way a session I/O goroutine
// would.
func (s *fakeSession) pushCallback(kind callback.Kind, payload []byte) uint64 {
	raw, err := (&callback.Request{Kind: kind, Payload: payload}).Encode()
	if err != nil {
		panic(err)
	}

	s.mu.Lock()
	s.nextCallbackSeq++
	seq := s.nextCallbackSeq
	listener := s.listener
	s.mu.Unlock()

	listener(session.InboundCallback{Sequence: seq, Payload: raw})
	return seq
}

func (s *fakeSession) pushRaw(payload []byte) uint64 {
	s.mu.Lock()
	s.nextCallbackSeq++
	seq := s.nextCallbackSeq
	listener := s.listener
	s.mu.Unlock()

	listener(session.InboundCallback{Sequence: seq, Payload: payload})
	return seq
}

// heldCalls returns the calls waiting for an answer and forgets them.
func (s *fakeSession) takeHeld() []heldCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	held := s.held
	s.held = nil
	return held
}

func (s *fakeSession) heldCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.held)
}

func (s *fakeSession) requestKinds() []call.Kind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]call.Kind(nil), s.requests...)
}

func answer(h heldCall, resp *call.Response) {
	raw, err := resp.Encode()
	if err != nil {
		panic(err)
	}
	h.reply <- session.Reply{Payload: raw}
}
