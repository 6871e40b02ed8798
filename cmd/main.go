package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/marketmanager-server/internal/api/grpc/context"
	"github.com/dtroode/marketmanager-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/marketmanager-server/internal/api/grpc/server"
	"github.com/dtroode/marketmanager-server/internal/app"
	"github.com/dtroode/marketmanager-server/internal/config"
	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
	"github.com/dtroode/marketmanager-server/internal/server"
	"github.com/dtroode/marketmanager-server/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	logger, logCloser, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer logCloser.Close()

	hasher := app.NewHasher(cfg.Auth)
	stores, err := app.OpenStores(ctx, cfg, hasher)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "backend", cfg.StoreBackend)
	}
	defer stores.Close()

	services, err := app.NewServices(cfg, stores, hasher, logger)
	if err != nil {
		logger.Fatal("failed to initialize services", "error", err)
	}
	if err := services.Auth.EnsureDefaultAdmin(ctx); err != nil {
		logger.Fatal("failed to create default admin", "error", err)
	}

	grpcServer, r := registerGRPCServer(cfg, logger, services, fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer

	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "backend", cfg.StoreBackend)
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	if cfg.Auth.SessionPurgeInterval > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			purgeSessions(ctx, logger, services.Auth, cfg.Auth.SessionPurgeInterval)
		}()
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	r.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newLogger(cfg *config.Config) (*logger.Logger, io.Closer, error) {
	if cfg.Log.File == "" {
		return logger.New(cfg.LogLevel), io.NopCloser(nil), nil
	}
	return logger.NewFile(cfg.LogLevel, cfg.Log.File, cfg.Log.MaxAge)
}

func purgeSessions(ctx context.Context, logger *logger.Logger, auth *service.Auth, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := auth.PurgeExpiredSessions(ctx); err != nil {
				logger.Error("failed to purge expired sessions", "error", err)
			}
		}
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(
	cfg *config.Config,
	logger *logger.Logger,
	services *app.Services,
	addr string,
) (*grpcServer.GRPCServer, *router.Router) {
	r := router.New(services.Auth, services.License, services.Statistics, grpcctx.NewManager(), logger,
		router.WithRateLimit(cfg.GRPC.RateLimit, cfg.GRPC.RateBurst))
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr), r
}
