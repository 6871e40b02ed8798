package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/marketmanager-server/internal/api/grpc/contract"
	"github.com/dtroode/marketmanager-server/internal/mocks"
	"github.com/dtroode/marketmanager-server/internal/model"
	"github.com/dtroode/marketmanager-server/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Register", mock.Anything, model.RegisterParams{
		Username: "anna",
		Email:    "anna@example.com",
		Password: "secret",
	}).Return(model.UserView{ID: "u1", Username: "anna", Role: model.RoleUser}, nil)

	h := NewAuth(svc, testutil.MakeNoopLogger())
	out, err := h.Register(context.Background(), &contract.RegisterRequest{
		Username: "anna",
		Email:    "anna@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.True(t, out.Success)
	require.NotNil(t, out.User)
	assert.Equal(t, "u1", out.User.ID)
	assert.Empty(t, out.ErrorCode)
}

func TestAuth_Register_Exists(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Register", mock.Anything, mock.Anything).Return(model.UserView{}, model.NewErrUserExists())

	h := NewAuth(svc, testutil.MakeNoopLogger())
	out, err := h.Register(context.Background(), &contract.RegisterRequest{Username: "anna"})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Nil(t, out.User)
	assert.Equal(t, model.CodeUserExists, out.ErrorCode)
	assert.Equal(t, "username or email already exists", out.Error)
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		result    model.LoginResult
		err       error
		wantOK    bool
		wantCode  model.ErrorCode
		wantToken string
	}{
		{
			name:      "success",
			result:    model.LoginResult{User: model.UserView{ID: "u1"}, SessionToken: "tok"},
			wantOK:    true,
			wantToken: "tok",
		},
		{
			name:     "bad credentials",
			err:      model.NewErrInvalidCredentials(),
			wantCode: model.CodeInvalidCredentials,
		},
		{
			name:     "storage failure",
			err:      assert.AnError,
			wantCode: model.CodeInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			svc.On("Login", mock.Anything, "anna", "pw").Return(tt.result, tt.err)

			h := NewAuth(svc, testutil.MakeNoopLogger())
			out, err := h.Login(context.Background(), &contract.LoginRequest{Username: "anna", Password: "pw"})
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, out.Success)
			assert.Equal(t, tt.wantCode, out.ErrorCode)
			assert.Equal(t, tt.wantToken, out.SessionToken)
			if tt.err != nil {
				assert.NotEmpty(t, out.Error)
			}
		})
	}
}

func TestAuth_ValidateSession(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("ValidateSession", mock.Anything, "good").Return(model.SessionInfo{
		User:    model.UserView{ID: "u1"},
		Session: model.Session{Token: "good", UserID: "u1", IsActive: true},
	}, nil)
	svc.On("ValidateSession", mock.Anything, "old").Return(model.SessionInfo{}, model.NewErrSessionExpired())

	h := NewAuth(svc, testutil.MakeNoopLogger())

	out, err := h.ValidateSession(context.Background(), &contract.SessionRequest{SessionToken: "good"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "u1", out.Session.UserID)

	out, err = h.ValidateSession(context.Background(), &contract.SessionRequest{SessionToken: "old"})
	require.NoError(t, err)
	assert.False(t, out.Success)
	assert.Equal(t, model.CodeSessionExpired, out.ErrorCode)
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Logout", mock.Anything, "tok").Return(nil)

	h := NewAuth(svc, testutil.MakeNoopLogger())
	out, err := h.Logout(context.Background(), &contract.SessionRequest{SessionToken: "tok"})
	require.NoError(t, err)
	assert.True(t, out.Success)
}
