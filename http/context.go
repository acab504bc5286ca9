package http

import "context"

type endpointKey struct{}

// WithEndpoint records the endpoint path a request is signed over.
func WithEndpoint(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, endpointKey{}, path)
}

// EndpointFromContext returns the endpoint path stored by WithEndpoint.
func EndpointFromContext(ctx context.Context) (string, bool) {
	path, ok := ctx.Value(endpointKey{}).(string)
	return path, ok
}
