package client

import "context"

type callbackContextKey struct{}

func withinCallback(ctx context.Context) context.Context {
	return context.WithValue(ctx, callbackContextKey{}, true)
}

// InCallback reports whether ctx belongs to a callback delivery. Client
// entry points reject such contexts with CallNotAllowedFromWithinCallback.
func InCallback(ctx context.Context) bool {
	v, _ := ctx.Value(callbackContextKey{}).(bool)
	return v
}
