package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
)

// Default administrator created when no users exist.
const (
	DefaultAdminID       = "admin-001"
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@marketmanager.com"
	DefaultAdminFullName = "System Administrator"
	DefaultAdminPassword = "admin123"
)

// sessionTokenSize is the number of random bytes in a session token.
const sessionTokenSize = 32

type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	hasher       model.PasswordHasher
	logger       *logger.Logger
	sessionTTL   time.Duration
	nowFn        func() time.Time
	tokenFn      func() (string, error)
}

// AuthOption configures Auth.
type AuthOption func(*Auth)

// WithSessionTTL overrides model.DefaultSessionTTL.
func WithSessionTTL(ttl time.Duration) AuthOption {
	return func(a *Auth) {
		if ttl > 0 {
			a.sessionTTL = ttl
		}
	}
}

// WithAuthClock replaces time.Now.
func WithAuthClock(nowFn func() time.Time) AuthOption {
	return func(a *Auth) {
		a.nowFn = nowFn
	}
}

// WithTokenGenerator replaces the random session token source.
func WithTokenGenerator(fn func() (string, error)) AuthOption {
	return func(a *Auth) {
		a.tokenFn = fn
	}
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	hasher model.PasswordHasher,
	logger *logger.Logger,
	opts ...AuthOption,
) *Auth {
	a := &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		hasher:       hasher,
		logger:       logger,
		sessionTTL:   model.DefaultSessionTTL,
		nowFn:        time.Now,
		tokenFn:      newSessionToken,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// NewDefaultAdmin builds the built-in admin record with a freshly salted admin123 password.
func NewDefaultAdmin(hasher model.PasswordHasher, now time.Time) (model.User, error) {
	digest, salt, err := hasher.HashNew(DefaultAdminPassword)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash default admin password: %w", err)
	}

	return model.User{
		ID:           DefaultAdminID,
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		FullName:     DefaultAdminFullName,
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		PasswordHash: digest,
		PasswordSalt: salt,
	}, nil
}

func newSessionToken() (string, error) {
	b := make([]byte, sessionTokenSize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random token: %w", err)
	}

	return hex.EncodeToString(b), nil
}

// EnsureDefaultAdmin stores the default admin when the user store is empty.
func (a *Auth) EnsureDefaultAdmin(ctx context.Context) error {
	users, err := a.userStore.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) > 0 {
		return nil
	}

	admin, err := NewDefaultAdmin(a.hasher, a.nowFn())
	if err != nil {
		return err
	}
	if err := a.userStore.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	a.logger.Info("Auth service: default admin account created",
		"username", admin.Username)

	return nil
}

// Register creates a user. Username or email collisions yield USER_EXISTS.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.UserView, error) {
	a.logger.Debug("Auth service: registering user",
		"username", params.Username)

	if params.Username == "" || params.Email == "" || params.Password == "" {
		return model.UserView{}, model.NewErrInvalidInput("username, email and password are required")
	}
	if params.FullName == "" {
		params.FullName = params.Username
	}
	if params.Role == "" {
		params.Role = model.RoleUser
	}
	if !validRole(params.Role) {
		return model.UserView{}, model.NewErrInvalidInput(fmt.Sprintf("unknown role %q", params.Role))
	}

	users, err := a.userStore.List(ctx)
	if err != nil {
		a.logger.Error("Auth service: failed to list users",
			"error", err.Error())
		return model.UserView{}, fmt.Errorf("failed to list users: %w", err)
	}
	if slices.ContainsFunc(users, func(u model.User) bool {
		return u.Username == params.Username || u.Email == params.Email
	}) {
		a.logger.Info("Auth service: user already exists",
			"username", params.Username)
		return model.UserView{}, model.NewErrUserExists()
	}

	digest, salt, err := a.hasher.HashNew(params.Password)
	if err != nil {
		return model.UserView{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.NewString(),
		Username:     params.Username,
		Email:        params.Email,
		FullName:     params.FullName,
		Role:         params.Role,
		IsActive:     true,
		CreatedAt:    a.nowFn(),
		PasswordHash: digest,
		PasswordSalt: salt,
	}

	err = a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrUsernameTaken) || errors.Is(err, model.ErrEmailTaken) || errors.Is(err, model.ErrConflict) {
		return model.UserView{}, model.NewErrUserExists()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"username", params.Username,
			"error", err.Error())
		return model.UserView{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"username", user.Username,
		"user_id", user.ID,
		"role", user.Role)

	return user.Sanitize(), nil
}

// CreateUser is the admin path for adding an account.
func (a *Auth) CreateUser(ctx context.Context, params model.RegisterParams) (model.UserView, error) {
	return a.Register(ctx, params)
}

// Login authenticates by username or email. Every failure yields the same INVALID_CREDENTIALS.
func (a *Auth) Login(ctx context.Context, login, password string) (model.LoginResult, error) {
	a.logger.Debug("Auth service: login attempt",
		"login", login)

	users, err := a.userStore.List(ctx)
	if err != nil {
		a.logger.Error("Auth service: failed to list users",
			"error", err.Error())
		return model.LoginResult{}, fmt.Errorf("failed to list users: %w", err)
	}

	i := slices.IndexFunc(users, func(u model.User) bool { return u.Matches(login) && u.IsActive })
	if i < 0 {
		a.logger.Info("Auth service: login rejected",
			"login", login)
		return model.LoginResult{}, model.NewErrInvalidCredentials()
	}
	user := users[i]

	ok, needsRehash := a.hasher.Verify(password, user.PasswordHash, user.PasswordSalt)
	if !ok {
		a.logger.Info("Auth service: login rejected",
			"login", login)
		return model.LoginResult{}, model.NewErrInvalidCredentials()
	}

	token, err := a.tokenFn()
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := a.nowFn()
	user.LastLogin = &now
	if needsRehash {
		digest, salt, err := a.hasher.HashNew(password)
		if err != nil {
			return model.LoginResult{}, fmt.Errorf("failed to rehash password: %w", err)
		}
		user.PasswordHash, user.PasswordSalt = digest, salt
		a.logger.Info("Auth service: password hash migrated to current policy",
			"user_id", user.ID)
	}
	if err := a.userStore.Update(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to update last login",
			"user_id", user.ID,
			"error", err.Error())
		return model.LoginResult{}, fmt.Errorf("failed to update user: %w", err)
	}

	session := model.Session{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionTTL),
		IsActive:  true,
	}
	if err := a.sessionStore.Create(ctx, session); err != nil {
		a.logger.Error("Auth service: failed to create session",
			"user_id", user.ID,
			"error", err.Error())
		return model.LoginResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	a.logger.Info("Auth service: login succeeded",
		"user_id", user.ID,
		"username", user.Username)

	return model.LoginResult{
		User:         user.Sanitize(),
		SessionToken: token,
	}, nil
}

// ValidateSession resolves token to its user.
func (a *Auth) ValidateSession(ctx context.Context, token string) (model.SessionInfo, error) {
	if token == "" {
		return model.SessionInfo{}, model.NewErrInvalidSession()
	}

	session, err := a.sessionStore.GetByToken(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return model.SessionInfo{}, model.NewErrInvalidSession()
	}
	if err != nil {
		return model.SessionInfo{}, fmt.Errorf("failed to get session: %w", err)
	}
	if !session.IsActive {
		return model.SessionInfo{}, model.NewErrInvalidSession()
	}
	if session.Expired(a.nowFn()) {
		return model.SessionInfo{}, model.NewErrSessionExpired()
	}

	user, err := a.userStore.GetByID(ctx, session.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.SessionInfo{}, model.NewErrUserNotFound()
	}
	if err != nil {
		return model.SessionInfo{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.IsActive {
		return model.SessionInfo{}, model.NewErrUserNotFound()
	}

	return model.SessionInfo{
		User:    user.Sanitize(),
		Session: session,
	}, nil
}

// Logout soft-revokes the session. Unknown tokens are not an error.
func (a *Auth) Logout(ctx context.Context, token string) error {
	err := a.sessionStore.Deactivate(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return nil
	}
	if err != nil {
		a.logger.Error("Auth service: failed to deactivate session",
			"error", err.Error())
		return fmt.Errorf("failed to deactivate session: %w", err)
	}

	a.logger.Debug("Auth service: session closed")

	return nil
}

// UpdateUser replaces the editable fields of a user.
func (a *Auth) UpdateUser(ctx context.Context, params model.UpdateUserParams) (model.UserView, error) {
	user, err := a.userStore.GetByID(ctx, params.UserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.UserView{}, model.NewErrNotFound("user")
	}
	if err != nil {
		return model.UserView{}, fmt.Errorf("failed to get user: %w", err)
	}
	if params.Username == "" || params.Email == "" {
		return model.UserView{}, model.NewErrInvalidInput("username and email are required")
	}
	if params.Role == "" {
		params.Role = user.Role
	}
	if !validRole(params.Role) {
		return model.UserView{}, model.NewErrInvalidInput(fmt.Sprintf("unknown role %q", params.Role))
	}

	users, err := a.userStore.List(ctx)
	if err != nil {
		return model.UserView{}, fmt.Errorf("failed to list users: %w", err)
	}
	if slices.ContainsFunc(users, func(u model.User) bool { return u.ID != user.ID && u.Username == params.Username }) {
		return model.UserView{}, model.NewErrUsernameTaken(params.Username)
	}
	if slices.ContainsFunc(users, func(u model.User) bool { return u.ID != user.ID && u.Email == params.Email }) {
		return model.UserView{}, model.NewErrEmailTaken(params.Email)
	}

	now := a.nowFn()
	user.Username = params.Username
	user.Email = params.Email
	user.FullName = params.FullName
	user.Role = params.Role
	user.IsActive = params.IsActive
	user.UpdatedAt = &now

	if params.NewPassword != "" {
		digest, salt, err := a.hasher.HashNew(params.NewPassword)
		if err != nil {
			return model.UserView{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash, user.PasswordSalt = digest, salt
	}

	if err := a.saveUser(ctx, user); err != nil {
		return model.UserView{}, err
	}

	a.logger.Info("Auth service: user updated",
		"user_id", user.ID,
		"password_changed", params.NewPassword != "")

	return user.Sanitize(), nil
}

// SetUserActive toggles the active flag of a user.
func (a *Auth) SetUserActive(ctx context.Context, userID string, active bool) (model.UserView, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.UserView{}, model.NewErrNotFound("user")
	}
	if err != nil {
		return model.UserView{}, fmt.Errorf("failed to get user: %w", err)
	}

	now := a.nowFn()
	user.IsActive = active
	user.UpdatedAt = &now
	if err := a.saveUser(ctx, user); err != nil {
		return model.UserView{}, err
	}

	a.logger.Info("Auth service: user status changed",
		"user_id", user.ID,
		"active", active)

	return user.Sanitize(), nil
}

func (a *Auth) saveUser(ctx context.Context, user model.User) error {
	err := a.userStore.Update(ctx, user)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, model.ErrNotFound):
		return model.NewErrNotFound("user")
	case errors.Is(err, model.ErrUsernameTaken):
		return model.NewErrUsernameTaken(user.Username)
	case errors.Is(err, model.ErrEmailTaken):
		return model.NewErrEmailTaken(user.Email)
	default:
		a.logger.Error("Auth service: failed to update user",
			"user_id", user.ID,
			"error", err.Error())
		return fmt.Errorf("failed to update user: %w", err)
	}
}

// DeleteUser removes a user record. The default admin is not protected.
func (a *Auth) DeleteUser(ctx context.Context, userID string) error {
	err := a.userStore.Delete(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewErrNotFound("user")
	}
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	a.logger.Info("Auth service: user deleted",
		"user_id", userID)

	return nil
}

// ListUsers returns every user without password material.
func (a *Auth) ListUsers(ctx context.Context) ([]model.UserView, error) {
	users, err := a.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	views := make([]model.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, u.Sanitize())
	}

	return views, nil
}

// ResetAdminAccount removes every admin-role user and stores a fresh default admin.
func (a *Auth) ResetAdminAccount(ctx context.Context) (model.UserView, error) {
	admin, err := NewDefaultAdmin(a.hasher, a.nowFn())
	if err != nil {
		return model.UserView{}, err
	}

	err = a.userStore.ReplaceAdmins(ctx, admin)
	switch {
	case errors.Is(err, model.ErrUsernameTaken):
		return model.UserView{}, model.NewErrUsernameTaken(admin.Username)
	case errors.Is(err, model.ErrEmailTaken):
		return model.UserView{}, model.NewErrEmailTaken(admin.Email)
	case err != nil:
		a.logger.Error("Auth service: failed to reset admin account",
			"error", err.Error())
		return model.UserView{}, fmt.Errorf("failed to replace admin accounts: %w", err)
	}

	a.logger.Warn("Auth service: admin account reset to defaults",
		"username", admin.Username)

	return admin.Sanitize(), nil
}

// PurgeExpiredSessions deletes sessions past their expiry.
func (a *Auth) PurgeExpiredSessions(ctx context.Context) (int, error) {
	n, err := a.sessionStore.PurgeExpired(ctx, a.nowFn())
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}

	a.logger.Info("Auth service: expired sessions purged",
		"count", n)

	return n, nil
}

func validRole(r model.Role) bool {
	return r == model.RoleAdmin || r == model.RoleUser
}
