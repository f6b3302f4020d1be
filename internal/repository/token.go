package repository

import "context"

type tokenKey struct{}

// WithToken attaches the caller's bearer token to the context so it can be
// forwarded to the Orders API.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom extracts the bearer token from the context, if any.
func TokenFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
