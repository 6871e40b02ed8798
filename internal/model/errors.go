package model

import (
	"errors"
	"fmt"
	"time"
)

// Store errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrStoreMissing  = errors.New("store does not exist")
	ErrConflict      = errors.New("already exists")
	ErrUsernameTaken = errors.New("username is taken")
	ErrEmailTaken    = errors.New("email is taken")
)

// ErrorCode is a stable machine-readable failure kind shown to the UI.
type ErrorCode string

const (
	CodeInvalidFormat      ErrorCode = "INVALID_FORMAT"
	CodeNoLicenseFile      ErrorCode = "NO_LICENSE_FILE"
	CodeLicenseNotFound    ErrorCode = "LICENSE_NOT_FOUND"
	CodeLicenseExpired     ErrorCode = "LICENSE_EXPIRED"
	CodeLicenseInactive    ErrorCode = "LICENSE_INACTIVE"
	CodeNoSavedLicense     ErrorCode = "NO_SAVED_LICENSE"
	CodeSaveError          ErrorCode = "SAVE_ERROR"
	CodeValidationError    ErrorCode = "VALIDATION_ERROR"
	CodeUserExists         ErrorCode = "USER_EXISTS"
	CodeUsernameTaken      ErrorCode = "USERNAME_TAKEN"
	CodeEmailTaken         ErrorCode = "EMAIL_TAKEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidSession     ErrorCode = "INVALID_SESSION"
	CodeSessionExpired     ErrorCode = "SESSION_EXPIRED"
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeInvalidInput       ErrorCode = "INVALID_INPUT"
	CodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// ExpiryDateLayout formats the expiry date attached to LICENSE_EXPIRED.
const ExpiryDateLayout = "2006-01-02"

// Error is a coded failure returned by the services.
type Error struct {
	Code       ErrorCode
	Message    string
	ExpiryDate string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by code so errors.Is works against the constructors.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf returns the user-facing message of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

func NewErrInvalidFormat() *Error {
	return &Error{Code: CodeInvalidFormat, Message: "invalid license key format"}
}

func NewErrNoLicenseFile() *Error {
	return &Error{Code: CodeNoLicenseFile, Message: "license database not found"}
}

func NewErrLicenseNotFound() *Error {
	return &Error{Code: CodeLicenseNotFound, Message: "license key not found"}
}

func NewErrLicenseExpired(expiresAt time.Time) *Error {
	date := expiresAt.Format(ExpiryDateLayout)
	return &Error{Code: CodeLicenseExpired, Message: "license expired on " + date, ExpiryDate: date}
}

func NewErrLicenseInactive() *Error {
	return &Error{Code: CodeLicenseInactive, Message: "license is deactivated"}
}

func NewErrNoSavedLicense() *Error {
	return &Error{Code: CodeNoSavedLicense, Message: "no saved license found"}
}

func NewErrSave(err error) *Error {
	return &Error{Code: CodeSaveError, Message: "failed to save license", Err: err}
}

func NewErrValidation(err error) *Error {
	return &Error{Code: CodeValidationError, Message: "failed to validate license", Err: err}
}

func NewErrUserExists() *Error {
	return &Error{Code: CodeUserExists, Message: "username or email already exists"}
}

func NewErrUsernameTaken(username string) *Error {
	return &Error{Code: CodeUsernameTaken, Message: fmt.Sprintf("username %q is already taken", username)}
}

func NewErrEmailTaken(email string) *Error {
	return &Error{Code: CodeEmailTaken, Message: fmt.Sprintf("email %q is already taken", email)}
}

func NewErrInvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "invalid username or password"}
}

func NewErrInvalidSession() *Error {
	return &Error{Code: CodeInvalidSession, Message: "invalid session"}
}

func NewErrSessionExpired() *Error {
	return &Error{Code: CodeSessionExpired, Message: "session expired"}
}

func NewErrUserNotFound() *Error {
	return &Error{Code: CodeUserNotFound, Message: "user not found or inactive"}
}

func NewErrNotFound(what string) *Error {
	return &Error{Code: CodeNotFound, Message: what + " not found"}
}

func NewErrInvalidInput(msg string) *Error {
	return &Error{Code: CodeInvalidInput, Message: msg}
}

func NewErrInternal(err error) *Error {
	return &Error{Code: CodeInternal, Message: "internal error", Err: err}
}
