package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sessamekesh/fedpro-client/pkg/handlers"
	"github.com/sessamekesh/fedpro-client/pkg/message/callback"
	"github.com/sessamekesh/fedpro-client/pkg/rtierrors"
	"github.com/sessamekesh/fedpro-client/pkg/session"
	"go.uber.org/zap"
)

// callbackDispatcher buffers inbound callbacks in arrival order and hands
// them to the handler one at a time.
type callbackDispatcher struct {
	handler handlers.CallbackHandler
	model   CallbackModel
	session session.Session

	log *zap.Logger

	mut_queue sync.Mutex
	queue     []session.InboundCallback
	signal    chan struct{}

	enabled atomic.Bool

	// mut_delivery is held for the whole of a handler invocation.
	mut_delivery sync.Mutex

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
	stopped  chan struct{}
	wg       sync.WaitGroup
}

func newCallbackDispatcher(handler handlers.CallbackHandler, model CallbackModel, sess session.Session, logger *zap.Logger) *callbackDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	d := &callbackDispatcher{
		handler: handler,
		model:   model,
		session: sess,
		log:     logger.With(zap.Stringer("callbackModel", model)),
		signal:  make(chan struct{}, 1),
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	d.enabled.Store(true)
	return d
}

func (d *callbackDispatcher) notify() {
	select {
	case d.signal <- struct{}{}:
	default:
	}
}

// enqueue is the session's CallbackListener. It never blocks on the handler.
func (d *callbackDispatcher) enqueue(cb session.InboundCallback) {
	d.mut_queue.Lock()
	d.queue = append(d.queue, cb)
	d.mut_queue.Unlock()

	d.notify()
}

func (d *callbackDispatcher) pop() (session.InboundCallback, bool) {
	if !d.enabled.Load() {
		return session.InboundCallback{}, false
	}

	d.mut_queue.Lock()
	defer d.mut_queue.Unlock()

	select {
	case <-d.stopped:
		return session.InboundCallback{}, false
	default:
	}

	if len(d.queue) == 0 {
		return session.InboundCallback{}, false
	}

	cb := d.queue[0]
	d.queue[0] = session.InboundCallback{}
	d.queue = d.queue[1:]
	if len(d.queue) > 0 {
		d.notify()
	}
	return cb, true
}

func (d *callbackDispatcher) pending() bool {
	d.mut_queue.Lock()
	defer d.mut_queue.Unlock()
	return len(d.queue) > 0
}

func (d *callbackDispatcher) setEnabled(enabled bool) {
	d.enabled.Store(enabled)
	if enabled {
		d.notify()
	}
}

func (d *callbackDispatcher) start() {
	if d.model != CallbackModel_Immediate {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.log.Info("Starting callback delivery goroutine")

		for {
			for {
				cb, ok := d.pop()
				if !ok {
					break
				}
				d.deliver(d.ctx, cb)
			}

			select {
			case <-d.stopped:
				d.log.Info("Callback delivery goroutine stopped")
				return
			case <-d.signal:
			}
		}
	}()
}

// halt stops handing out queued callbacks and wakes any evoke in progress.
// A handler that is already running finishes; nothing is delivered after it.
func (d *callbackDispatcher) halt() {
	d.stopOnce.Do(func() {
		d.mut_queue.Lock()
		close(d.stopped)
		d.mut_queue.Unlock()
		d.cancel()
	})
}

// stop halts delivery and waits for the push goroutine to exit. It must not
// be called from a handler.
func (d *callbackDispatcher) stop() {
	d.halt()
	d.wg.Wait()
}

// evoke delivers at most one callback, waiting up to timeout for one to show
// up. It reports whether more callbacks are queued.
func (d *callbackDispatcher) evoke(ctx context.Context, timeout time.Duration) bool {
	if d.model != CallbackModel_Evoked {
		return d.pending()
	}

	deadline := time.Now().Add(timeout)
	for {
		if cb, ok := d.pop(); ok {
			d.deliver(ctx, cb)
			return d.pending()
		}

		if !d.wait(ctx, deadline) {
			return d.pending()
		}
	}
}

// evokeMultiple keeps delivering until minWait has passed and the queue is
// empty, or until maxWait has passed.
func (d *callbackDispatcher) evokeMultiple(ctx context.Context, minWait, maxWait time.Duration) bool {
	if d.model != CallbackModel_Evoked {
		return d.pending()
	}
	if maxWait < minWait {
		maxWait = minWait
	}

	start := time.Now()
	minDeadline := start.Add(minWait)
	maxDeadline := start.Add(maxWait)
	for {
		if !time.Now().Before(maxDeadline) {
			return d.pending()
		}

		if cb, ok := d.pop(); ok {
			d.deliver(ctx, cb)
			continue
		}

		if !d.wait(ctx, minDeadline) {
			return d.pending()
		}
	}
}

// wait blocks until a new callback may be available. It returns false once
// deadline passes or the wait is cut short.
func (d *callbackDispatcher) wait(ctx context.Context, deadline time.Time) bool {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return false
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-d.signal:
		return true
	case <-timer.C:
		return false
	case <-ctx.Done():
		return false
	case <-d.stopped:
		return false
	}
}

func (d *callbackDispatcher) deliver(ctx context.Context, cb session.InboundCallback) {
	d.mut_delivery.Lock()
	defer d.mut_delivery.Unlock()

	resp := &callback.Response{}
	req, err := callback.DecodeRequest(cb.Payload)
	if err != nil {
		d.log.Warn("Could not decode callback", zap.Uint64("sequence", cb.Sequence), zap.Error(err))
		resp.Exception = &rtierrors.Descriptor{
			Name:    rtierrors.CouldNotDecode.String(),
			Details: err.Error(),
		}
	} else if err := d.invoke(ctx, req); err != nil {
		d.log.Info("Callback handler failed", zap.Stringer("kind", req.Kind), zap.Error(err))
		resp.Exception = callbackFailure(err)
	}

	if err := d.session.SendCallbackResponse(cb.Sequence, resp.Encode()); err != nil {
		d.log.Warn("Could not acknowledge callback", zap.Uint64("sequence", cb.Sequence), zap.Error(err))
	}
}

// deliverLocal hands the handler a callback that did not come from the
// session, so there is nobody to acknowledge it to.
func (d *callbackDispatcher) deliverLocal(req *callback.Request) {
	d.mut_delivery.Lock()
	defer d.mut_delivery.Unlock()

	if err := d.invoke(context.Background(), req); err != nil {
		d.log.Warn("Callback handler failed", zap.Stringer("kind", req.Kind), zap.Error(err))
	}
}

func (d *callbackDispatcher) invoke(ctx context.Context, req *callback.Request) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = rtierrors.Newf(rtierrors.FederateInternalError, "handler panicked: %v", r)
		}
	}()

	return d.handler.HandleCallback(withinCallback(ctx), req)
}

func callbackFailure(err error) *rtierrors.Descriptor {
	var rtiErr *rtierrors.Error
	if errors.As(err, &rtiErr) {
		d := rtiErr.Descriptor()
		return &d
	}
	return &rtierrors.Descriptor{
		Name:    rtierrors.FederateInternalError.String(),
		Details: fmt.Sprint(err),
	}
}

// EvokeCallback delivers at most one queued callback on the calling
// goroutine, waiting up to timeout for one. It reports whether more are
// queued. With CallbackModel_Immediate nothing is delivered here.
func (c *Client) EvokeCallback(ctx context.Context, timeout time.Duration) (bool, error) {
	if InCallback(ctx) {
		return false, rtierrors.New(rtierrors.CallNotAllowedFromWithinCallback, "evokeCallback")
	}

	conn := c.active.Load()
	if conn == nil {
		return false, rtierrors.New(rtierrors.NotConnected, "evokeCallback")
	}

	return conn.callbacks.evoke(ctx, timeout), nil
}

// EvokeMultipleCallbacks delivers callbacks for at least minWait, returning
// once none are queued after that, and never runs past maxWait.
func (c *Client) EvokeMultipleCallbacks(ctx context.Context, minWait, maxWait time.Duration) (bool, error) {
	if InCallback(ctx) {
		return false, rtierrors.New(rtierrors.CallNotAllowedFromWithinCallback, "evokeMultipleCallbacks")
	}

	conn := c.active.Load()
	if conn == nil {
		return false, rtierrors.New(rtierrors.NotConnected, "evokeMultipleCallbacks")
	}

	return conn.callbacks.evokeMultiple(ctx, minWait, maxWait), nil
}
