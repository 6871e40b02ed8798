package middleware

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
)

// SessionValidator resolves a session token to its user.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (model.SessionInfo, error)
}

var (
	errMissingToken = errors.New("missing authorization token")
	errNotAdmin     = errors.New("administrator role required")
)

// Authenticate validates bearer session tokens and injects the session into context.
type Authenticate struct {
	sessions       SessionValidator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(sessions SessionValidator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessions: sessions, contextManager: contextManager, logger: logger}
}

// AuthFunc requires an admin session in the authorization metadata.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			token = strings.TrimPrefix(authHeaders[0], "Bearer ")
		}
	}
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, errMissingToken.Error())
	}

	info, err := m.sessions.ValidateSession(ctx, token)
	if err != nil {
		code := model.CodeOf(err)
		if code == model.CodeInternal {
			m.logger.Error("Authenticate: failed to validate session",
				"error", err.Error())
			return nil, status.Error(codes.Internal, "failed to validate session")
		}
		return nil, status.Error(codes.Unauthenticated, string(code))
	}

	if info.User.Role != model.RoleAdmin {
		m.logger.Info("Authenticate: non-admin session rejected",
			"user_id", info.User.ID)
		return nil, status.Error(codes.PermissionDenied, errNotAdmin.Error())
	}

	return m.contextManager.SetSessionToContext(ctx, info), nil
}
