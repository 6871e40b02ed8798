package handler

import (
	"context"

	"github.com/dtroode/marketmanager-server/internal/api/grpc/contract"
	"github.com/dtroode/marketmanager-server/internal/licensekey"
	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
)

// LicenseService defines validation and activation of the installation license.
type LicenseService interface {
	Validate(ctx context.Context, key string) (model.LicenseView, error)
	Activate(ctx context.Context, key string) (model.LicenseView, error)
	CheckSaved(ctx context.Context) (model.LicenseView, error)
	Current(ctx context.Context) (model.CurrentLicense, error)
	ClearSaved(ctx context.Context) error
	IsExpiringSoon(ctx context.Context, warningDays int) bool
}

// License handles gRPC endpoints for the installation license.
type License struct {
	licenseService LicenseService
	logger         *logger.Logger
}

var _ contract.LicenseServer = (*License)(nil)

// NewLicense creates a new License handler.
func NewLicense(licenseService LicenseService, logger *logger.Logger) *License {
	return &License{
		licenseService: licenseService,
		logger:         logger,
	}
}

// Validate checks a license key without activating it.
func (h *License) Validate(ctx context.Context, req *contract.LicenseKeyRequest) (*contract.ValidationResponse, error) {
	h.logger.Debug("License handler: processing validate request",
		"license_key", licensekey.Mask(req.LicenseKey))

	view, err := h.licenseService.Validate(ctx, req.LicenseKey)
	if err != nil {
		return &contract.ValidationResponse{
			ExpiryDate: expiryDate(err),
			Failure:    failure(h.logger, "validate license", err),
		}, nil
	}

	return &contract.ValidationResponse{IsValid: true, License: &view}, nil
}

// Activate validates a key and binds it to this installation.
func (h *License) Activate(ctx context.Context, req *contract.LicenseKeyRequest) (*contract.ActivationResponse, error) {
	masked := licensekey.Mask(req.LicenseKey)
	h.logger.Debug("License handler: processing activate request",
		"license_key", masked)

	view, err := h.licenseService.Activate(ctx, req.LicenseKey)
	if err != nil {
		return &contract.ActivationResponse{
			ExpiryDate: expiryDate(err),
			Failure:    failure(h.logger, "activate license", err),
		}, nil
	}

	h.logger.Info("License handler: license activated",
		"license_key", masked,
		"days_remaining", view.DaysRemaining)

	return &contract.ActivationResponse{Success: true, License: &view}, nil
}

// CheckSaved revalidates the activated license.
func (h *License) CheckSaved(ctx context.Context, _ *contract.Empty) (*contract.ValidationResponse, error) {
	view, err := h.licenseService.CheckSaved(ctx)
	if err != nil {
		return &contract.ValidationResponse{
			ExpiryDate: expiryDate(err),
			Failure:    failure(h.logger, "check saved license", err),
		}, nil
	}

	return &contract.ValidationResponse{IsValid: true, License: &view}, nil
}

// Current returns the activated license with its key.
func (h *License) Current(ctx context.Context, _ *contract.Empty) (*contract.CurrentLicenseResponse, error) {
	current, err := h.licenseService.Current(ctx)
	if err != nil {
		return &contract.CurrentLicenseResponse{Failure: failure(h.logger, "current license", err)}, nil
	}

	return &contract.CurrentLicenseResponse{Success: true, License: &current}, nil
}

// Clear removes the activation marker.
func (h *License) Clear(ctx context.Context, _ *contract.Empty) (*contract.StatusResponse, error) {
	if err := h.licenseService.ClearSaved(ctx); err != nil {
		return &contract.StatusResponse{Failure: failure(h.logger, "clear license", err)}, nil
	}

	h.logger.Info("License handler: activation cleared")

	return &contract.StatusResponse{Success: true}, nil
}

// ExpiringSoon reports whether the activated license is within the warning window.
func (h *License) ExpiringSoon(ctx context.Context, req *contract.ExpiringSoonRequest) (*contract.ExpiringSoonResponse, error) {
	return &contract.ExpiringSoonResponse{
		ExpiringSoon: h.licenseService.IsExpiringSoon(ctx, req.WarningDays),
	}, nil
}
