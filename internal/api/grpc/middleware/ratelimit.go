package middleware

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// idleLimiterTTL is how long an unused per-peer limiter is kept.
const idleLimiterTTL = 10 * time.Minute

type peerLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit throttles selected methods per remote peer with a token bucket.
type RateLimit struct {
	mu      sync.Mutex
	peers   map[string]*peerLimiter
	limit   rate.Limit
	burst   int
	methods map[string]struct{}
	nowFn   func() time.Time
}

// NewRateLimit allows limit requests per second with burst for each peer on methods.
func NewRateLimit(limit float64, burst int, methods ...string) *RateLimit {
	m := make(map[string]struct{}, len(methods))
	for _, method := range methods {
		m[method] = struct{}{}
	}

	return &RateLimit{
		peers:   make(map[string]*peerLimiter),
		limit:   rate.Limit(limit),
		burst:   burst,
		methods: m,
		nowFn:   time.Now,
	}
}

// HandleGRPC rejects calls over the limit with ResourceExhausted.
func (r *RateLimit) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := r.methods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	if !r.allow(peerAddr(ctx)) {
		return nil, status.Error(codes.ResourceExhausted, "too many requests, try again later")
	}

	return handler(ctx, req)
}

func (r *RateLimit) allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFn()
	for k, p := range r.peers {
		if now.Sub(p.lastSeen) > idleLimiterTTL {
			delete(r.peers, k)
		}
	}

	p, ok := r.peers[key]
	if !ok {
		p = &peerLimiter{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.peers[key] = p
	}
	p.lastSeen = now

	return p.limiter.AllowN(now, 1)
}

func peerAddr(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
