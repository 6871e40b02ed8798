package contract

import "github.com/dtroode/marketmanager-server/internal/model"

// Empty is a message without fields.
type Empty struct{}

// Failure is embedded in every result message. Error and ErrorCode are set when
// the operation failed.
type Failure struct {
	Error     string          `json:"error,omitempty"`
	ErrorCode model.ErrorCode `json:"errorCode,omitempty"`
}

// StatusResponse reports success of an operation without a payload.
type StatusResponse struct {
	Success bool `json:"success"`
	Failure
}

type RegisterRequest struct {
	Username string     `json:"username"`
	Email    string     `json:"email"`
	FullName string     `json:"fullName"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

type UserResponse struct {
	Success bool            `json:"success"`
	User    *model.UserView `json:"user,omitempty"`
	Failure
}

type UsersResponse struct {
	Success bool             `json:"success"`
	Users   []model.UserView `json:"users,omitempty"`
	Failure
}

// LoginRequest accepts a username or an email in Username.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success      bool            `json:"success"`
	User         *model.UserView `json:"user,omitempty"`
	SessionToken string          `json:"sessionToken,omitempty"`
	Failure
}

type SessionRequest struct {
	SessionToken string `json:"sessionToken"`
}

type SessionResponse struct {
	Success bool            `json:"success"`
	User    *model.UserView `json:"user,omitempty"`
	Session *model.Session  `json:"session,omitempty"`
	Failure
}

type UpdateUserRequest struct {
	UserID      string     `json:"userId"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	Role        model.Role `json:"role"`
	IsActive    bool       `json:"isActive"`
	NewPassword string     `json:"newPassword,omitempty"`
}

type SetUserActiveRequest struct {
	UserID   string `json:"userId"`
	IsActive bool   `json:"isActive"`
}

type IDRequest struct {
	ID string `json:"id"`
}

type LicenseKeyRequest struct {
	LicenseKey string `json:"licenseKey"`
}

// ValidationResponse is the result of validating a license key.
type ValidationResponse struct {
	IsValid    bool               `json:"isValid"`
	License    *model.LicenseView `json:"license,omitempty"`
	ExpiryDate string             `json:"expiryDate,omitempty"`
	Failure
}

type ActivationResponse struct {
	Success    bool               `json:"success"`
	License    *model.LicenseView `json:"license,omitempty"`
	ExpiryDate string             `json:"expiryDate,omitempty"`
	Failure
}

type CurrentLicenseResponse struct {
	Success bool                  `json:"success"`
	License *model.CurrentLicense `json:"license,omitempty"`
	Failure
}

// ExpiringSoonRequest uses the server threshold when WarningDays is zero.
type ExpiringSoonRequest struct {
	WarningDays int `json:"warningDays,omitempty"`
}

type ExpiringSoonResponse struct {
	ExpiringSoon bool `json:"expiringSoon"`
}

type CreateLicenseRequest struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	DurationDays  int    `json:"durationDays"`
}

type CreateLicensesRequest struct {
	Count        int `json:"count"`
	DurationDays int `json:"durationDays"`
}

type UpdateLicenseRequest struct {
	LicenseID      string `json:"licenseId"`
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	IsActive       bool   `json:"isActive"`
	AdditionalDays int    `json:"additionalDays"`
}

type LicenseResponse struct {
	Success bool           `json:"success"`
	License *model.License `json:"license,omitempty"`
	Failure
}

type LicensesResponse struct {
	Success  bool            `json:"success"`
	Licenses []model.License `json:"licenses,omitempty"`
	Failure
}

type StatisticsResponse struct {
	Success    bool              `json:"success"`
	Statistics *model.Statistics `json:"statistics,omitempty"`
	Failure
}

type PurgeResponse struct {
	Success bool `json:"success"`
	Removed int  `json:"removed"`
	Failure
}

// FailureCode reports the business error code carried by a result message.
func (f Failure) FailureCode() model.ErrorCode {
	return f.ErrorCode
}
