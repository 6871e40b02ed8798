package model

import (
	"context"
	"math"
	"time"
)

// Day is the unit used for license durations.
const Day = 24 * time.Hour

// LicenseKeyPrefix starts every license key.
const LicenseKeyPrefix = "MM-"

// LicenseStore persists license records.
type LicenseStore interface {
	// List returns every license; a missing backing store is an empty list.
	List(ctx context.Context) ([]License, error)
	// GetByKey finds a license by exact key. It returns ErrStoreMissing when the
	// backing store does not exist and ErrNotFound when no record matches.
	GetByKey(ctx context.Context, key string) (License, error)
	GetByID(ctx context.Context, id string) (License, error)
	// Create fails with ErrConflict when the key is already stored.
	Create(ctx context.Context, license License) error
	Update(ctx context.Context, license License) error
	Delete(ctx context.Context, id string) error
}

// ActivationStore keeps the single per-installation activation marker.
type ActivationStore interface {
	// Load returns ErrNotFound when nothing has been activated.
	Load(ctx context.Context) (Activation, error)
	Save(ctx context.Context, activation Activation) error
	// Clear removes the marker; clearing an absent marker is not an error.
	Clear(ctx context.Context) error
}

// License is an issued license record.
type License struct {
	ID            string     `json:"id"`
	LicenseKey    string     `json:"licenseKey"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail"`
	CreatedAt     time.Time  `json:"createdAt"`
	ExpiresAt     time.Time  `json:"expiresAt"`
	DurationDays  int        `json:"durationDays"`
	IsActive      bool       `json:"isActive"`
	ActivatedAt   *time.Time `json:"activatedAt"`
	ActivatedBy   *string    `json:"activatedBy"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// Expired reports whether the license is past its expiry at now.
func (l License) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// View returns the sanitized license as seen at now.
func (l License) View(now time.Time) LicenseView {
	return LicenseView{
		ID:            l.ID,
		CustomerName:  l.CustomerName,
		CustomerEmail: l.CustomerEmail,
		CreatedAt:     l.CreatedAt,
		ExpiresAt:     l.ExpiresAt,
		DaysRemaining: CeilDays(l.ExpiresAt.Sub(now)),
	}
}

// LicenseView is the sanitized result of a successful validation.
type LicenseView struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
	DaysRemaining int       `json:"daysRemaining"`
}

// Activation is the local marker written when an installation accepts a key.
type Activation struct {
	LicenseKey  string      `json:"licenseKey"`
	ActivatedAt time.Time   `json:"activatedAt"`
	License     LicenseView `json:"license"`
}

// CurrentLicense merges the saved activation with a fresh validation.
type CurrentLicense struct {
	LicenseView
	LicenseKey  string    `json:"licenseKey"`
	ActivatedAt time.Time `json:"activatedAt"`
}

// CreateLicenseParams contains parameters to issue a license.
type CreateLicenseParams struct {
	CustomerName  string
	CustomerEmail string
	DurationDays  int
}

// UpdateLicenseParams replaces the editable fields of a license.
// A non-zero AdditionalDays shifts the expiry, negative values shorten it.
type UpdateLicenseParams struct {
	LicenseID      string
	CustomerName   string
	CustomerEmail  string
	IsActive       bool
	AdditionalDays int
}

// CeilDays converts d to whole days rounding up, as ceil(ms / 86400000).
func CeilDays(d time.Duration) int {
	return int(math.Ceil(float64(d.Milliseconds()) / float64(Day.Milliseconds())))
}

// LicenseKeyGenerator produces a new license key for a license id and expiry.
type LicenseKeyGenerator interface {
	Generate(id string, expiresAt time.Time) (string, error)
}
