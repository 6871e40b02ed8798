package model

import "context"

// ContextManager carries the authenticated session in a request context.
type ContextManager interface {
	SetSessionToContext(ctx context.Context, info SessionInfo) context.Context
	GetSessionFromContext(ctx context.Context) (SessionInfo, bool)
}
