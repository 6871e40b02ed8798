package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/marketmanager-server/internal/config"
	"github.com/dtroode/marketmanager-server/internal/model"
	"github.com/dtroode/marketmanager-server/internal/service"
	"github.com/dtroode/marketmanager-server/internal/testutil"
)

func fileConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		DataDir:      t.TempDir(),
		StoreBackend: config.BackendFile,
		Auth:         config.Auth{SessionTTL: model.DefaultSessionTTL, PBKDF2Iterations: 1000, PBKDF2KeyLength: 64},
		License:      config.License{Secret: "s", WarningDays: 7, KeyAttempts: 5},
	}
}

func TestOpenStores_File(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := fileConfig(t)
	hasher := NewHasher(cfg.Auth)

	stores, err := OpenStores(ctx, cfg, hasher)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.Close() })

	users, err := stores.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, service.DefaultAdminUsername, users[0].Username)

	services, err := NewServices(cfg, stores, hasher, testutil.MakeNoopLogger())
	require.NoError(t, err)

	license, err := services.License.Create(ctx, model.CreateLicenseParams{CustomerName: "Shop", DurationDays: 3})
	require.NoError(t, err)
	_, err = services.License.Activate(ctx, license.LicenseKey)
	require.NoError(t, err)

	reopened, err := OpenStores(ctx, cfg, hasher)
	require.NoError(t, err)
	activation, err := reopened.Activation.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, license.LicenseKey, activation.LicenseKey)
}

func TestOpenStores_UnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := fileConfig(t)
	cfg.StoreBackend = "ldap"

	_, err := OpenStores(context.Background(), cfg, NewHasher(cfg.Auth))
	assert.ErrorContains(t, err, `unknown store backend "ldap"`)
}

func TestNewServices_EmptySecret(t *testing.T) {
	t.Parallel()

	cfg := fileConfig(t)
	stores, err := OpenStores(context.Background(), cfg, NewHasher(cfg.Auth))
	require.NoError(t, err)

	cfg.License.Secret = ""
	_, err = NewServices(cfg, stores, NewHasher(cfg.Auth), testutil.MakeNoopLogger())
	assert.Error(t, err)
}
