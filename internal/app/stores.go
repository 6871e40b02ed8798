// Package app assembles the stores and services shared by the server and licensectl.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/marketmanager-server/internal/config"
	"github.com/dtroode/marketmanager-server/internal/licensekey"
	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
	"github.com/dtroode/marketmanager-server/internal/password"
	"github.com/dtroode/marketmanager-server/internal/repository/jsonfile"
	"github.com/dtroode/marketmanager-server/internal/repository/postgres"
	"github.com/dtroode/marketmanager-server/internal/service"
	"github.com/dtroode/marketmanager-server/internal/storage/local"
	storage "github.com/dtroode/marketmanager-server/internal/storage/minio"
)

// Stores holds the persistence backends selected by configuration.
// The activation marker always lives in the local data directory.
type Stores struct {
	Users      model.UserStore
	Sessions   model.SessionStore
	Licenses   model.LicenseStore
	Activation model.ActivationStore

	closeFn func() error
}

// Close releases the database pool when the postgres backend is used.
func (s *Stores) Close() error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn()
}

// NewHasher builds the password hasher from the auth parameters.
func NewHasher(cfg config.Auth) *password.Hasher {
	return password.New(password.Policy{
		Iterations: cfg.PBKDF2Iterations,
		KeyLen:     cfg.PBKDF2KeyLength,
	})
}

// OpenStores opens the backend named by cfg.StoreBackend.
func OpenStores(ctx context.Context, cfg *config.Config, hasher model.PasswordHasher) (*Stores, error) {
	dir, err := local.NewDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	stores := &Stores{Activation: jsonfile.NewActivationRepository(dir)}

	seed := jsonfile.WithSeed(func() (model.User, error) {
		return service.NewDefaultAdmin(hasher, time.Now())
	})

	switch cfg.StoreBackend {
	case config.BackendFile:
		stores.Users = jsonfile.NewUserRepository(dir, seed)
		stores.Sessions = jsonfile.NewSessionRepository(dir)
		stores.Licenses = jsonfile.NewLicenseRepository(dir)
	case config.BackendMinio:
		objects, err := openMinio(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		stores.Users = jsonfile.NewUserRepository(objects, seed)
		stores.Sessions = jsonfile.NewSessionRepository(objects)
		stores.Licenses = jsonfile.NewLicenseRepository(objects)
	case config.BackendPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		stores.Users = postgres.NewUserRepository(db)
		stores.Sessions = postgres.NewSessionRepository(db)
		stores.Licenses = postgres.NewLicenseRepository(db)
		stores.closeFn = db.Close
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	return stores, nil
}

func openMinio(ctx context.Context, cfg config.Storage) (*storage.Client, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	client, err := storage.NewClient(ctx, minioClient, cfg.Bucket, storage.WithPrefix(cfg.Prefix))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}

	return client, nil
}

// Services bundles the domain services built on top of Stores.
type Services struct {
	Auth       *service.Auth
	License    *service.License
	Statistics *service.Statistics
}

// NewServices wires the services with the configured parameters.
func NewServices(cfg *config.Config, stores *Stores, hasher model.PasswordHasher, lg *logger.Logger) (*Services, error) {
	keys, err := licensekey.NewCodec(cfg.License.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create license key codec: %w", err)
	}

	authService := service.NewAuth(stores.Users, stores.Sessions, hasher, lg,
		service.WithSessionTTL(cfg.Auth.SessionTTL))
	licenseService := service.NewLicense(stores.Licenses, stores.Activation, keys, lg,
		service.WithInstallationID(cfg.InstallationID),
		service.WithWarningDays(cfg.License.WarningDays),
		service.WithKeyAttempts(cfg.License.KeyAttempts),
	)

	return &Services{
		Auth:       authService,
		License:    licenseService,
		Statistics: service.NewStatistics(stores.Users, stores.Licenses, licenseService.WarningDays()),
	}, nil
}
