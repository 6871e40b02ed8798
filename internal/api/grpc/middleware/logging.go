package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/dtroode/marketmanager-server/internal/logger"
	"github.com/dtroode/marketmanager-server/internal/model"
)

// coded is implemented by result messages that carry a business error code.
type coded interface {
	FailureCode() model.ErrorCode
}

// Logging is a unary interceptor that writes one line per call.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs the method, the caller, the duration, the gRPC code and the
// business error code of the reply. Request bodies are never logged.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	attrs := []any{
		"method", info.FullMethod,
		"duration_ms", time.Since(start).Milliseconds(),
		"status", statusCode(err).String(),
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		attrs = append(attrs, "peer", p.Addr.String())
	}
	if c, ok := resp.(coded); ok && c.FailureCode() != "" {
		attrs = append(attrs, "error_code", string(c.FailureCode()))
	}

	switch statusCode(err) {
	case codes.OK:
		l.logger.Info("gRPC call", attrs...)
	case codes.Unauthenticated, codes.PermissionDenied, codes.ResourceExhausted:
		l.logger.Warn("gRPC call rejected", append(attrs, "error", err.Error())...)
	default:
		l.logger.Error("gRPC call failed", append(attrs, "error", err.Error())...)
	}

	return resp, err
}

func statusCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if st, ok := status.FromError(err); ok {
		return st.Code()
	}
	return codes.Internal
}
