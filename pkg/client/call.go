package client

import (
	"context"
	"errors"
	"sync"

	fperrors "github.com/sessamekesh/fedpro-client/pkg/errors"
	"github.com/sessamekesh/fedpro-client/pkg/message/call"
	"github.com/sessamekesh/fedpro-client/pkg/rtierrors"
	"github.com/sessamekesh/fedpro-client/pkg/session"
	"go.uber.org/zap"
)

// PendingCall is a request waiting for its response. It is resolved exactly
// once, either by the session or by the connection going away.
type PendingCall struct {
	Kind call.Kind

	once     sync.Once
	done     chan struct{}
	response *call.Response
	err      error
}

func newPendingCall(kind call.Kind) *PendingCall {
	return &PendingCall{
		Kind: kind,
		done: make(chan struct{}),
	}
}

// resolve reports whether this call was the one that completed p.
func (p *PendingCall) resolve(resp *call.Response, err error) bool {
	resolved := false
	p.once.Do(func() {
		p.response = resp
		p.err = err
		resolved = true
		close(p.done)
	})
	return resolved
}

// Done is closed once the outcome is known.
func (p *PendingCall) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until p resolves or ctx is done. Giving up on the wait does not
// cancel the request at the RTI.
func (p *PendingCall) Wait(ctx context.Context) (*call.Response, error) {
	select {
	case <-p.done:
		return p.response, p.err
	case <-ctx.Done():
		return nil, rtierrors.Wrap(rtierrors.RTIinternalError, ctx.Err(), "gave up waiting for "+p.Kind.String()+" response")
	}
}

// Call sends req and blocks until its response arrives.
func (c *Client) Call(ctx context.Context, req *call.Request) (*call.Response, error) {
	pending, err := c.CallAsync(ctx, req)
	if err != nil {
		return nil, err
	}
	return pending.Wait(ctx)
}

// CallAsync sends req and returns without waiting. A response carrying an
// exception resolves the PendingCall with the translated error.
func (c *Client) CallAsync(ctx context.Context, req *call.Request) (*PendingCall, error) {
	if InCallback(ctx) {
		return nil, rtierrors.New(rtierrors.CallNotAllowedFromWithinCallback, req.Kind.String())
	}

	conn := c.active.Load()
	if conn == nil {
		return nil, rtierrors.New(rtierrors.NotConnected, req.Kind.String())
	}

	return conn.dispatch(req)
}

func (conn *connection) dispatch(req *call.Request) (*PendingCall, error) {
	payload, err := req.Encode()
	if err != nil {
		return nil, rtierrors.Internal(err, "encoding "+req.Kind.String()+" request")
	}

	pending := newPendingCall(req.Kind)
	id := conn.calls.GetNextId()
	if err := conn.calls.Create(id, pending); err != nil {
		return nil, rtierrors.Internal(err, "registering "+req.Kind.String()+" request")
	}

	replies, err := conn.session.SendCallRequest(payload)
	if err != nil {
		conn.calls.Resolve(id)
		return nil, replyError(err)
	}

	go func() {
		select {
		case reply := <-replies:
			resp, err := conn.translateReply(req.Kind, reply)
			if !pending.resolve(resp, err) {
				conn.log.Debug("Reply arrived for an already failed call", zap.Stringer("kind", req.Kind))
			}
			conn.calls.Resolve(id)
		case <-pending.done:
		}
	}()

	return pending, nil
}

func replyError(err error) *rtierrors.Error {
	if errors.Is(err, session.ErrTerminated) {
		return rtierrors.Wrap(rtierrors.NotConnected, err, "")
	}
	return rtierrors.Internal(err, "transport failure")
}

// translateReply is the one place a response envelope becomes an outcome.
// Remote exceptions pass through as their catalogued kind; anything going
// wrong locally becomes RTIinternalError.
func (conn *connection) translateReply(kind call.Kind, reply session.Reply) (*call.Response, error) {
	if reply.Err != nil {
		return nil, replyError(reply.Err)
	}

	resp, err := call.DecodeResponse(reply.Payload)
	if err != nil {
		return nil, rtierrors.Internal(err, "decoding "+kind.String()+" response")
	}

	if resp.Kind != kind {
		return nil, rtierrors.Internal(&fperrors.UnexpectedMessageType{
			MessageName:  "CallResponse",
			ExpectedType: kind.String(),
			ActualType:   resp.Kind.String(),
		}, "")
	}

	if resp.Exception != nil {
		return nil, rtierrors.Translate(*resp.Exception)
	}

	return resp, nil
}

// failPending resolves every outstanding call with err.
func (conn *connection) failPending(err error) {
	failed := 0
	for _, pending := range conn.calls.Drain() {
		if pending.resolve(nil, err) {
			failed++
		}
	}
	if failed > 0 {
		conn.log.Info("Failed outstanding calls", zap.Int("count", failed), zap.Error(err))
	}
}
