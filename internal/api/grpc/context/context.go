package context

import (
	"context"

	"github.com/dtroode/marketmanager-server/internal/model"
)

type sessionKey struct{}

// Manager stores the authenticated session of a call in its context.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetSessionToContext returns a child context carrying info.
func (m *Manager) SetSessionToContext(ctx context.Context, info model.SessionInfo) context.Context {
	return context.WithValue(ctx, sessionKey{}, info)
}

// GetSessionFromContext returns the session set by SetSessionToContext.
func (m *Manager) GetSessionFromContext(ctx context.Context) (model.SessionInfo, bool) {
	info, ok := ctx.Value(sessionKey{}).(model.SessionInfo)
	return info, ok
}
