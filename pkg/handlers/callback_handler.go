package handlers

import (
	"context"
	"sync"

	"github.com/sessamekesh/fedpro-client/pkg/errors"
	"github.com/sessamekesh/fedpro-client/pkg/message/callback"
	"go.uber.org/zap"
)

// CallbackHandler is the federate side of the callback stream. ctx is marked
// as being inside a callback; calls back into the client with it fail with
// CallNotAllowedFromWithinCallback.
//
// A returned *rtierrors.Error is reported to the RTI under its own name, any
// other error as FederateInternalError.
type CallbackHandler interface {
	HandleCallback(ctx context.Context, cb *callback.Request) error
}

type CallbackHandlerFunc func(ctx context.Context, cb *callback.Request) error

func (f CallbackHandlerFunc) HandleCallback(ctx context.Context, cb *callback.Request) error {
	return f(ctx, cb)
}

// CallbackMux routes callbacks by kind. Kinds without a route go to Fallback,
// or are acknowledged and dropped when Fallback is nil.
type CallbackMux struct {
	Fallback CallbackHandler

	mut_routes sync.RWMutex
	routes     map[callback.Kind]CallbackHandler

	log *zap.Logger
}

func CreateCallbackMux(logger *zap.Logger) *CallbackMux {
	if logger == nil {
		logger = zap.Must(zap.NewDevelopment())
	}

	return &CallbackMux{
		mut_routes: sync.RWMutex{},
		routes:     make(map[callback.Kind]CallbackHandler),
		log:        logger.With(zap.String("handler", "CallbackMux")),
	}
}

func (m *CallbackMux) Handle(kind callback.Kind, handler CallbackHandler) error {
	m.mut_routes.Lock()
	defer m.mut_routes.Unlock()

	if _, has := m.routes[kind]; has {
		return &errors.NameCollision{
			CollisionContext: "CallbackMux",
			Name:             kind.String(),
		}
	}

	m.routes[kind] = handler
	return nil
}

func (m *CallbackMux) HandleFunc(kind callback.Kind, f func(ctx context.Context, cb *callback.Request) error) error {
	return m.Handle(kind, CallbackHandlerFunc(f))
}

func (m *CallbackMux) HandleCallback(ctx context.Context, cb *callback.Request) error {
	m.mut_routes.RLock()
	handler, has := m.routes[cb.Kind]
	m.mut_routes.RUnlock()

	if has {
		return handler.HandleCallback(ctx, cb)
	}
	if m.Fallback != nil {
		return m.Fallback.HandleCallback(ctx, cb)
	}

	m.log.Debug("No route for callback, ignoring", zap.Stringer("kind", cb.Kind))
	return nil
}
