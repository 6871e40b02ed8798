package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/marketmanager-server/internal/licensekey"
	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
)

const (
	// DefaultWarningDays is the expiring-soon threshold.
	DefaultWarningDays = 7
	// DefaultKeyAttempts bounds key generation retries on a collision.
	DefaultKeyAttempts = 5
)

// ErrKeySpaceExhausted is returned when every generated key collided with a stored one.
var ErrKeySpaceExhausted = errors.New("failed to generate a unique license key")

type License struct {
	licenseStore    model.LicenseStore
	activationStore model.ActivationStore
	keys            model.LicenseKeyGenerator
	logger          *logger.Logger
	installationID  string
	warningDays     int
	keyAttempts     int
	nowFn           func() time.Time
}

// LicenseOption configures License.
type LicenseOption func(*License)

// WithInstallationID sets the value recorded as activatedBy.
func WithInstallationID(id string) LicenseOption {
	return func(l *License) {
		l.installationID = id
	}
}

// WithWarningDays overrides DefaultWarningDays.
func WithWarningDays(days int) LicenseOption {
	return func(l *License) {
		if days > 0 {
			l.warningDays = days
		}
	}
}

// WithKeyAttempts overrides DefaultKeyAttempts.
func WithKeyAttempts(n int) LicenseOption {
	return func(l *License) {
		if n > 0 {
			l.keyAttempts = n
		}
	}
}

// WithLicenseClock replaces time.Now.
func WithLicenseClock(nowFn func() time.Time) LicenseOption {
	return func(l *License) {
		l.nowFn = nowFn
	}
}

func NewLicense(
	licenseStore model.LicenseStore,
	activationStore model.ActivationStore,
	keys model.LicenseKeyGenerator,
	logger *logger.Logger,
	opts ...LicenseOption,
) *License {
	l := &License{
		licenseStore:    licenseStore,
		activationStore: activationStore,
		keys:            keys,
		logger:          logger,
		warningDays:     DefaultWarningDays,
		keyAttempts:     DefaultKeyAttempts,
		nowFn:           time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WarningDays returns the configured expiring-soon threshold.
func (l *License) WarningDays() int {
	return l.warningDays
}

// Validate checks key against the license store. It never writes.
func (l *License) Validate(ctx context.Context, key string) (model.LicenseView, error) {
	_, view, err := l.validate(ctx, key)
	return view, err
}

func (l *License) validate(ctx context.Context, key string) (model.License, model.LicenseView, error) {
	if !licensekey.ValidFormat(key) {
		return model.License{}, model.LicenseView{}, model.NewErrInvalidFormat()
	}

	license, err := l.licenseStore.GetByKey(ctx, key)
	switch {
	case errors.Is(err, model.ErrStoreMissing):
		return model.License{}, model.LicenseView{}, model.NewErrNoLicenseFile()
	case errors.Is(err, model.ErrNotFound):
		l.logger.Info("License service: unknown license key",
			"key", licensekey.Mask(key))
		return model.License{}, model.LicenseView{}, model.NewErrLicenseNotFound()
	case err != nil:
		l.logger.Error("License service: failed to look up license",
			"key", licensekey.Mask(key),
			"error", err.Error())
		return model.License{}, model.LicenseView{}, model.NewErrValidation(err)
	}

	now := l.nowFn()
	if license.Expired(now) {
		return model.License{}, model.LicenseView{}, model.NewErrLicenseExpired(license.ExpiresAt)
	}
	if !license.IsActive {
		return model.License{}, model.LicenseView{}, model.NewErrLicenseInactive()
	}

	return license, license.View(now), nil
}

// Activate validates key and records it as this installation's license.
// A valid key that cannot be saved yields SAVE_ERROR.
func (l *License) Activate(ctx context.Context, key string) (model.LicenseView, error) {
	license, view, err := l.validate(ctx, key)
	if err != nil {
		return model.LicenseView{}, err
	}

	now := l.nowFn()
	activation := model.Activation{
		LicenseKey:  key,
		ActivatedAt: now,
		License:     view,
	}
	if err := l.activationStore.Save(ctx, activation); err != nil {
		l.logger.Error("License service: failed to save activation",
			"key", licensekey.Mask(key),
			"error", err.Error())
		return model.LicenseView{}, model.NewErrSave(err)
	}

	if license.ActivatedAt == nil {
		license.ActivatedAt = &now
		if l.installationID != "" {
			by := l.installationID
			license.ActivatedBy = &by
		}
		if err := l.licenseStore.Update(ctx, license); err != nil {
			l.logger.Warn("License service: failed to stamp activation on license",
				"license_id", license.ID,
				"error", err.Error())
		}
	}

	l.logger.Info("License service: license activated",
		"license_id", license.ID,
		"key", licensekey.Mask(key),
		"days_remaining", view.DaysRemaining)

	return view, nil
}

func (l *License) loadActivation(ctx context.Context) (model.Activation, error) {
	activation, err := l.activationStore.Load(ctx)
	if errors.Is(err, model.ErrNotFound) {
		return model.Activation{}, model.NewErrNoSavedLicense()
	}
	if err != nil {
		l.logger.Warn("License service: saved license is unreadable",
			"error", err.Error())
		return model.Activation{}, model.NewErrNoSavedLicense()
	}

	return activation, nil
}

// CheckSaved revalidates the key stored by the last activation.
func (l *License) CheckSaved(ctx context.Context) (model.LicenseView, error) {
	activation, err := l.loadActivation(ctx)
	if err != nil {
		return model.LicenseView{}, err
	}

	return l.Validate(ctx, activation.LicenseKey)
}

// Current returns the saved activation merged with a fresh validation.
func (l *License) Current(ctx context.Context) (model.CurrentLicense, error) {
	activation, err := l.loadActivation(ctx)
	if err != nil {
		return model.CurrentLicense{}, err
	}

	view, err := l.Validate(ctx, activation.LicenseKey)
	if err != nil {
		return model.CurrentLicense{}, err
	}

	return model.CurrentLicense{
		LicenseView: view,
		LicenseKey:  activation.LicenseKey,
		ActivatedAt: activation.ActivatedAt,
	}, nil
}

// ClearSaved forgets the saved activation.
func (l *License) ClearSaved(ctx context.Context) error {
	if err := l.activationStore.Clear(ctx); err != nil {
		l.logger.Error("License service: failed to clear saved license",
			"error", err.Error())
		return fmt.Errorf("failed to clear saved license: %w", err)
	}

	l.logger.Info("License service: saved license cleared")

	return nil
}

// IsExpiringSoon reports whether the saved license is valid and has at most
// warningDays left. A non-positive warningDays uses the configured threshold.
func (l *License) IsExpiringSoon(ctx context.Context, warningDays int) bool {
	if warningDays <= 0 {
		warningDays = l.warningDays
	}

	view, err := l.CheckSaved(ctx)
	if err != nil {
		return false
	}

	return view.DaysRemaining <= warningDays
}

// Create issues a license valid for params.DurationDays from now.
func (l *License) Create(ctx context.Context, params model.CreateLicenseParams) (model.License, error) {
	if params.DurationDays < 1 {
		return model.License{}, model.NewErrInvalidInput("durationDays must be at least 1")
	}

	now := l.nowFn()
	license := model.License{
		ID:            uuid.NewString(),
		CustomerName:  params.CustomerName,
		CustomerEmail: params.CustomerEmail,
		CreatedAt:     now,
		ExpiresAt:     now.Add(time.Duration(params.DurationDays) * model.Day),
		DurationDays:  params.DurationDays,
		IsActive:      true,
	}

	for attempt := 1; attempt <= l.keyAttempts; attempt++ {
		key, err := l.keys.Generate(license.ID, license.ExpiresAt)
		if err != nil {
			return model.License{}, fmt.Errorf("failed to generate license key: %w", err)
		}
		license.LicenseKey = key

		err = l.licenseStore.Create(ctx, license)
		if errors.Is(err, model.ErrConflict) {
			l.logger.Warn("License service: license key collision, retrying",
				"attempt", attempt)
			continue
		}
		if err != nil {
			l.logger.Error("License service: failed to store license",
				"error", err.Error())
			return model.License{}, fmt.Errorf("failed to create license: %w", err)
		}

		l.logger.Info("License service: license created",
			"license_id", license.ID,
			"key", licensekey.Mask(key),
			"duration_days", license.DurationDays)

		return license, nil
	}

	return model.License{}, ErrKeySpaceExhausted
}

// CreateBatch issues count licenses for placeholder customers "Customer i".
func (l *License) CreateBatch(ctx context.Context, count, durationDays int) ([]model.License, error) {
	if count < 1 {
		return nil, model.NewErrInvalidInput("count must be at least 1")
	}

	licenses := make([]model.License, 0, count)
	for i := 1; i <= count; i++ {
		license, err := l.Create(ctx, model.CreateLicenseParams{
			CustomerName:  fmt.Sprintf("Customer %d", i),
			CustomerEmail: fmt.Sprintf("customer%d@example.com", i),
			DurationDays:  durationDays,
		})
		if err != nil {
			return licenses, err
		}
		licenses = append(licenses, license)
	}

	return licenses, nil
}

// Update edits a license. A non-zero AdditionalDays moves the expiry and
// recomputes durationDays from createdAt.
func (l *License) Update(ctx context.Context, params model.UpdateLicenseParams) (model.License, error) {
	license, err := l.licenseStore.GetByID(ctx, params.LicenseID)
	if errors.Is(err, model.ErrNotFound) {
		return model.License{}, model.NewErrNotFound("license")
	}
	if err != nil {
		return model.License{}, fmt.Errorf("failed to get license: %w", err)
	}

	now := l.nowFn()
	license.CustomerName = params.CustomerName
	license.CustomerEmail = params.CustomerEmail
	license.IsActive = params.IsActive
	if params.AdditionalDays != 0 {
		license.ExpiresAt = license.ExpiresAt.Add(time.Duration(params.AdditionalDays) * model.Day)
		license.DurationDays = model.CeilDays(license.ExpiresAt.Sub(license.CreatedAt))
	}
	license.UpdatedAt = &now

	err = l.licenseStore.Update(ctx, license)
	if errors.Is(err, model.ErrNotFound) {
		return model.License{}, model.NewErrNotFound("license")
	}
	if err != nil {
		l.logger.Error("License service: failed to update license",
			"license_id", license.ID,
			"error", err.Error())
		return model.License{}, fmt.Errorf("failed to update license: %w", err)
	}

	l.logger.Info("License service: license updated",
		"license_id", license.ID,
		"active", license.IsActive,
		"additional_days", params.AdditionalDays)

	return license, nil
}

// Delete removes a license by id.
func (l *License) Delete(ctx context.Context, licenseID string) error {
	err := l.licenseStore.Delete(ctx, licenseID)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewErrNotFound("license")
	}
	if err != nil {
		return fmt.Errorf("failed to delete license: %w", err)
	}

	l.logger.Info("License service: license deleted",
		"license_id", licenseID)

	return nil
}

// List returns every license.
func (l *License) List(ctx context.Context) ([]model.License, error) {
	licenses, err := l.licenseStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}

	return licenses, nil
}
