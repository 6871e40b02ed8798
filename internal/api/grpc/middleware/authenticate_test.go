package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/marketmanager-server/internal/mocks"
	"github.com/dtroode/marketmanager-server/internal/model"
	"github.com/dtroode/marketmanager-server/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	admin := model.SessionInfo{User: model.UserView{ID: "admin-001", Role: model.RoleAdmin}}
	cashier := model.SessionInfo{User: model.UserView{ID: "u1", Role: model.RoleUser}}

	tests := []struct {
		name         string
		mdAuthHeader string
		info         model.SessionInfo
		validateErr  error
		wantGRPCCode codes.Code
		wantMessage  string
		expectSetCtx bool
	}{
		{
			name:         "missing authorization header",
			wantGRPCCode: codes.Unauthenticated,
			wantMessage:  "missing authorization token",
		},
		{
			name:         "unknown session",
			mdAuthHeader: "Bearer invalid",
			validateErr:  model.NewErrInvalidSession(),
			wantGRPCCode: codes.Unauthenticated,
			wantMessage:  "INVALID_SESSION",
		},
		{
			name:         "expired session",
			mdAuthHeader: "Bearer old",
			validateErr:  model.NewErrSessionExpired(),
			wantGRPCCode: codes.Unauthenticated,
			wantMessage:  "SESSION_EXPIRED",
		},
		{
			name:         "store failure",
			mdAuthHeader: "Bearer token",
			validateErr:  errors.New("disk"),
			wantGRPCCode: codes.Internal,
		},
		{
			name:         "non-admin session",
			mdAuthHeader: "Bearer token",
			info:         cashier,
			wantGRPCCode: codes.PermissionDenied,
		},
		{
			name:         "admin session",
			mdAuthHeader: "Bearer token",
			info:         admin,
			wantGRPCCode: codes.OK,
			expectSetCtx: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lg := testutil.MakeNoopLogger()
			cm := mocks.NewContextManager(t)
			if tt.expectSetCtx {
				cm.On("SetSessionToContext", mock.Anything, tt.info).Return(context.Background())
			}

			svc := mocks.NewSessionValidator(t)
			if tt.mdAuthHeader != "" {
				svc.On("ValidateSession", mock.Anything, mock.AnythingOfType("string")).Return(tt.info, tt.validateErr)
			}
			m := NewAuthenticate(svc, cm, lg)

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantGRPCCode != codes.OK {
				assert.Error(t, err)
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, tt.wantGRPCCode, st.Code())
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, st.Message())
				}
				assert.Nil(t, newCtx)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, newCtx)
		})
	}
}

func TestAuthenticate_StripsBearerPrefix(t *testing.T) {
	svc := mocks.NewSessionValidator(t)
	svc.On("ValidateSession", mock.Anything, "abc123").Return(model.SessionInfo{}, model.NewErrInvalidSession())

	m := NewAuthenticate(svc, mocks.NewContextManager(t), testutil.MakeNoopLogger())
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc123"))

	_, err := m.AuthFunc(ctx)
	assert.Error(t, err)
}
