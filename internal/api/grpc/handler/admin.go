package handler

import (
	"context"

	"github.com/dtroode/marketmanager-server/internal/api/grpc/contract"
	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
)

// UserAdmin defines user management operations.
type UserAdmin interface {
	ListUsers(ctx context.Context) ([]model.UserView, error)
	CreateUser(ctx context.Context, params model.RegisterParams) (model.UserView, error)
	UpdateUser(ctx context.Context, params model.UpdateUserParams) (model.UserView, error)
	DeleteUser(ctx context.Context, userID string) error
	SetUserActive(ctx context.Context, userID string, active bool) (model.UserView, error)
	PurgeExpiredSessions(ctx context.Context) (int, error)
}

// LicenseAdmin defines license management operations.
type LicenseAdmin interface {
	List(ctx context.Context) ([]model.License, error)
	Create(ctx context.Context, params model.CreateLicenseParams) (model.License, error)
	CreateBatch(ctx context.Context, count, durationDays int) ([]model.License, error)
	Update(ctx context.Context, params model.UpdateLicenseParams) (model.License, error)
	Delete(ctx context.Context, licenseID string) error
}

// StatisticsCollector aggregates dashboard counters.
type StatisticsCollector interface {
	Collect(ctx context.Context) (model.Statistics, error)
}

// Admin handles gRPC endpoints for administrators. The authentication
// middleware puts the caller's session into the context.
type Admin struct {
	users          UserAdmin
	licenses       LicenseAdmin
	statistics     StatisticsCollector
	contextManager model.ContextManager
	logger         *logger.Logger
}

var _ contract.AdminServer = (*Admin)(nil)

// NewAdmin creates a new Admin handler.
func NewAdmin(
	users UserAdmin,
	licenses LicenseAdmin,
	statistics StatisticsCollector,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Admin {
	return &Admin{
		users:          users,
		licenses:       licenses,
		statistics:     statistics,
		contextManager: contextManager,
		logger:         logger,
	}
}

// actor returns the username of the calling administrator for audit logs.
func (h *Admin) actor(ctx context.Context) string {
	info, ok := h.contextManager.GetSessionFromContext(ctx)
	if !ok {
		return ""
	}
	return info.User.Username
}

func (h *Admin) ListUsers(ctx context.Context, _ *contract.Empty) (*contract.UsersResponse, error) {
	users, err := h.users.ListUsers(ctx)
	if err != nil {
		return &contract.UsersResponse{Failure: failure(h.logger, "list users", err)}, nil
	}

	return &contract.UsersResponse{Success: true, Users: users}, nil
}

func (h *Admin) CreateUser(ctx context.Context, req *contract.RegisterRequest) (*contract.UserResponse, error) {
	user, err := h.users.CreateUser(ctx, model.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return &contract.UserResponse{Failure: failure(h.logger, "create user", err)}, nil
	}

	h.logger.Info("Admin handler: user created",
		"actor", h.actor(ctx),
		"user_id", user.ID,
		"role", string(user.Role))

	return &contract.UserResponse{Success: true, User: &user}, nil
}

func (h *Admin) UpdateUser(ctx context.Context, req *contract.UpdateUserRequest) (*contract.UserResponse, error) {
	user, err := h.users.UpdateUser(ctx, model.UpdateUserParams{
		UserID:      req.UserID,
		Username:    req.Username,
		Email:       req.Email,
		FullName:    req.FullName,
		Role:        req.Role,
		IsActive:    req.IsActive,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return &contract.UserResponse{Failure: failure(h.logger, "update user", err)}, nil
	}

	h.logger.Info("Admin handler: user updated",
		"actor", h.actor(ctx),
		"user_id", user.ID,
		"password_changed", req.NewPassword != "")

	return &contract.UserResponse{Success: true, User: &user}, nil
}

func (h *Admin) DeleteUser(ctx context.Context, req *contract.IDRequest) (*contract.StatusResponse, error) {
	if err := h.users.DeleteUser(ctx, req.ID); err != nil {
		return &contract.StatusResponse{Failure: failure(h.logger, "delete user", err)}, nil
	}

	h.logger.Info("Admin handler: user deleted",
		"actor", h.actor(ctx),
		"user_id", req.ID)

	return &contract.StatusResponse{Success: true}, nil
}

func (h *Admin) SetUserActive(ctx context.Context, req *contract.SetUserActiveRequest) (*contract.UserResponse, error) {
	user, err := h.users.SetUserActive(ctx, req.UserID, req.IsActive)
	if err != nil {
		return &contract.UserResponse{Failure: failure(h.logger, "set user active", err)}, nil
	}

	h.logger.Info("Admin handler: user activity changed",
		"actor", h.actor(ctx),
		"user_id", user.ID,
		"is_active", user.IsActive)

	return &contract.UserResponse{Success: true, User: &user}, nil
}

func (h *Admin) ListLicenses(ctx context.Context, _ *contract.Empty) (*contract.LicensesResponse, error) {
	licenses, err := h.licenses.List(ctx)
	if err != nil {
		return &contract.LicensesResponse{Failure: failure(h.logger, "list licenses", err)}, nil
	}

	return &contract.LicensesResponse{Success: true, Licenses: licenses}, nil
}

func (h *Admin) CreateLicense(ctx context.Context, req *contract.CreateLicenseRequest) (*contract.LicenseResponse, error) {
	license, err := h.licenses.Create(ctx, model.CreateLicenseParams{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		DurationDays:  req.DurationDays,
	})
	if err != nil {
		return &contract.LicenseResponse{Failure: failure(h.logger, "create license", err)}, nil
	}

	h.logger.Info("Admin handler: license created",
		"actor", h.actor(ctx),
		"license_id", license.ID,
		"duration_days", license.DurationDays)

	return &contract.LicenseResponse{Success: true, License: &license}, nil
}

func (h *Admin) CreateLicenses(ctx context.Context, req *contract.CreateLicensesRequest) (*contract.LicensesResponse, error) {
	licenses, err := h.licenses.CreateBatch(ctx, req.Count, req.DurationDays)
	if err != nil {
		return &contract.LicensesResponse{
			Licenses: licenses,
			Failure:  failure(h.logger, "create licenses", err),
		}, nil
	}

	h.logger.Info("Admin handler: licenses created",
		"actor", h.actor(ctx),
		"count", len(licenses))

	return &contract.LicensesResponse{Success: true, Licenses: licenses}, nil
}

func (h *Admin) UpdateLicense(ctx context.Context, req *contract.UpdateLicenseRequest) (*contract.LicenseResponse, error) {
	license, err := h.licenses.Update(ctx, model.UpdateLicenseParams{
		LicenseID:      req.LicenseID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		IsActive:       req.IsActive,
		AdditionalDays: req.AdditionalDays,
	})
	if err != nil {
		return &contract.LicenseResponse{Failure: failure(h.logger, "update license", err)}, nil
	}

	h.logger.Info("Admin handler: license updated",
		"actor", h.actor(ctx),
		"license_id", license.ID,
		"additional_days", req.AdditionalDays)

	return &contract.LicenseResponse{Success: true, License: &license}, nil
}

func (h *Admin) DeleteLicense(ctx context.Context, req *contract.IDRequest) (*contract.StatusResponse, error) {
	if err := h.licenses.Delete(ctx, req.ID); err != nil {
		return &contract.StatusResponse{Failure: failure(h.logger, "delete license", err)}, nil
	}

	h.logger.Info("Admin handler: license deleted",
		"actor", h.actor(ctx),
		"license_id", req.ID)

	return &contract.StatusResponse{Success: true}, nil
}

func (h *Admin) Statistics(ctx context.Context, _ *contract.Empty) (*contract.StatisticsResponse, error) {
	stats, err := h.statistics.Collect(ctx)
	if err != nil {
		return &contract.StatisticsResponse{Failure: failure(h.logger, "statistics", err)}, nil
	}

	return &contract.StatisticsResponse{Success: true, Statistics: &stats}, nil
}

func (h *Admin) PurgeSessions(ctx context.Context, _ *contract.Empty) (*contract.PurgeResponse, error) {
	removed, err := h.users.PurgeExpiredSessions(ctx)
	if err != nil {
		return &contract.PurgeResponse{Failure: failure(h.logger, "purge sessions", err)}, nil
	}

	h.logger.Info("Admin handler: expired sessions purged",
		"actor", h.actor(ctx),
		"removed", removed)

	return &contract.PurgeResponse{Success: true, Removed: removed}, nil
}
