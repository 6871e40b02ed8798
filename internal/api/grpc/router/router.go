package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/marketmanager-server/internal/api/grpc/contract"
	"github.com/dtroode/marketmanager-server/internal/api/grpc/handler"
	"github.com/dtroode/marketmanager-server/internal/api/grpc/middleware"
	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
	"github.com/dtroode/marketmanager-server/internal/service"
)

// Default limits for the unauthenticated license and login endpoints.
const (
	DefaultRateLimit = 5
	DefaultRateBurst = 10
)

// Router represents a gRPC router for license and account operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	authService       *service.Auth
	licenseService    *service.License
	statisticsService *service.Statistics
	contextManager    model.ContextManager
	logger            *logger.Logger
	rateLimit         float64
	rateBurst         int
	health            *health.Server
}

// Option configures a Router.
type Option func(*Router)

// WithRateLimit sets the per-peer rate for Login, Validate and Activate.
func WithRateLimit(limit float64, burst int) Option {
	return func(r *Router) {
		if limit > 0 {
			r.rateLimit = limit
		}
		if burst > 0 {
			r.rateBurst = burst
		}
	}
}

// New creates new gRPC Router instance.
func New(
	authService *service.Auth,
	licenseService *service.License,
	statisticsService *service.Statistics,
	contextManager model.ContextManager,
	logger *logger.Logger,
	opts ...Option,
) *Router {
	r := &Router{
		authService:       authService,
		licenseService:    licenseService,
		statisticsService: statisticsService,
		contextManager:    contextManager,
		logger:            logger,
		rateLimit:         DefaultRateLimit,
		rateBurst:         DefaultRateBurst,
		health:            health.NewServer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// adminOnly selects the calls that need an administrator session.
func adminOnly(_ context.Context, c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), contract.AdminMethodPrefix)
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with request logging, rate limiting and
// authentication interceptors.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	limiter := middleware.NewRateLimit(r.rateLimit, r.rateBurst,
		contract.AuthLoginMethod,
		contract.LicenseValidateMethod,
		contract.LicenseActivateMethod,
	)
	authenticate := middleware.NewAuthenticate(r.authService, r.contextManager, r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			limiter.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(adminOnly),
			),
		),
	)
	r.registerAuthRoutes(s)
	r.registerLicenseRoutes(s)
	r.registerAdminRoutes(s)
	r.registerHealth(s)

	return s
}

// Shutdown marks every service as not serving.
func (r *Router) Shutdown() {
	r.health.Shutdown()
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.logger)
	contract.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerLicenseRoutes(server *grpc.Server) {
	licenseHandler := handler.NewLicense(r.licenseService, r.logger)
	contract.RegisterLicenseServer(server, licenseHandler)
}

func (r *Router) registerAdminRoutes(server *grpc.Server) {
	adminHandler := handler.NewAdmin(r.authService, r.licenseService, r.statisticsService, r.contextManager, r.logger)
	contract.RegisterAdminServer(server, adminHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	for _, name := range []string{
		contract.AuthServiceName,
		contract.LicenseServiceName,
		contract.AdminServiceName,
	} {
		r.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	healthpb.RegisterHealthServer(server, r.health)
}
