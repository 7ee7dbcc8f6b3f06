// Package session defines the transport boundary the client core talks to.
// A Session moves call envelopes and callback envelopes to and from the RTI;
// it knows nothing about their contents.
package session

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrTerminated completes every reply still outstanding when a Session is
// terminated, and is what SendCallRequest returns afterwards.
var ErrTerminated = errors.New("session terminated")

// Reply is the outcome of one call request. Exactly one of Payload or Err is
// meaningful.
type Reply struct {
	Payload []byte
	Err     error
}

type InboundCallback struct {
	Sequence uint64
	Payload  []byte
}

// CallbackListener is invoked from the Session's inbound goroutine, in the
// order callbacks arrive. It must not block for long.
type CallbackListener func(cb InboundCallback)

type Session interface {
	// Start connects the session. listener receives every inbound callback
	// until the session is done.
	Start(ctx context.Context, listener CallbackListener) error

	// SendCallRequest queues a request. The returned channel receives
	// exactly one Reply and is never closed without one.
	SendCallRequest(payload []byte) (<-chan Reply, error)

	SendCallbackResponse(sequence uint64, payload []byte) error

	// Terminate closes the session and completes all outstanding replies
	// with ErrTerminated. It is safe to call more than once.
	Terminate(ctx context.Context) error

	// Done is closed once the session has stopped, for whatever reason.
	Done() <-chan struct{}

	// Err reports why the session stopped. It is nil while the session is
	// running and after a clean Terminate.
	Err() error
}

type Factory func(settings Settings, logger *zap.Logger) (Session, error)
