package handler

import (
	"context"

	"github.com/dtroode/marketmanager-server/internal/api/grpc/contract"
	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
)

// AuthService defines account registration and session operations.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.UserView, error)
	Login(ctx context.Context, login, password string) (model.LoginResult, error)
	ValidateSession(ctx context.Context, token string) (model.SessionInfo, error)
	Logout(ctx context.Context, token string) error
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

var _ contract.AuthServer = (*Auth)(nil)

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a new user account.
func (h *Auth) Register(ctx context.Context, req *contract.RegisterRequest) (*contract.UserResponse, error) {
	h.logger.Debug("Auth handler: processing register request",
		"username", req.Username)

	user, err := h.authService.Register(ctx, model.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return &contract.UserResponse{Failure: failure(h.logger, "register", err)}, nil
	}

	h.logger.Info("Auth handler: user registered",
		"user_id", user.ID,
		"username", user.Username)

	return &contract.UserResponse{Success: true, User: &user}, nil
}

// Login authenticates by username or email and opens a session.
func (h *Auth) Login(ctx context.Context, req *contract.LoginRequest) (*contract.LoginResponse, error) {
	h.logger.Debug("Auth handler: processing login request",
		"login", req.Username)

	result, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return &contract.LoginResponse{Failure: failure(h.logger, "login", err)}, nil
	}

	h.logger.Info("Auth handler: login completed",
		"user_id", result.User.ID)

	return &contract.LoginResponse{
		Success:      true,
		User:         &result.User,
		SessionToken: result.SessionToken,
	}, nil
}

// ValidateSession resolves a session token to its user.
func (h *Auth) ValidateSession(ctx context.Context, req *contract.SessionRequest) (*contract.SessionResponse, error) {
	info, err := h.authService.ValidateSession(ctx, req.SessionToken)
	if err != nil {
		return &contract.SessionResponse{Failure: failure(h.logger, "validate session", err)}, nil
	}

	return &contract.SessionResponse{
		Success: true,
		User:    &info.User,
		Session: &info.Session,
	}, nil
}

// Logout deactivates a session. Unknown tokens succeed.
func (h *Auth) Logout(ctx context.Context, req *contract.SessionRequest) (*contract.StatusResponse, error) {
	if err := h.authService.Logout(ctx, req.SessionToken); err != nil {
		return &contract.StatusResponse{Failure: failure(h.logger, "logout", err)}, nil
	}

	h.logger.Debug("Auth handler: logout completed")

	return &contract.StatusResponse{Success: true}, nil
}
