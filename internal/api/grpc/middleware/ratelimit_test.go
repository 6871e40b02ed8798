package middleware

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

func peerCtx(ip string) context.Context {
	return peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.ParseIP(ip), Port: 5000}})
}

func TestRateLimit_HandleGRPC(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimit(1, 2, "/marketmanager.Auth/Login")
	rl.nowFn = func() time.Time { return now }

	ok := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	login := &grpc.UnaryServerInfo{FullMethod: "/marketmanager.Auth/Login"}
	other := &grpc.UnaryServerInfo{FullMethod: "/marketmanager.Auth/Logout"}

	for i := 0; i < 2; i++ {
		_, err := rl.HandleGRPC(peerCtx("10.0.0.1"), nil, login, ok)
		require.NoError(t, err)
	}

	_, err := rl.HandleGRPC(peerCtx("10.0.0.1"), nil, login, ok)
	require.Error(t, err)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	_, err = rl.HandleGRPC(peerCtx("10.0.0.2"), nil, login, ok)
	require.NoError(t, err, "peers are limited independently")

	for i := 0; i < 5; i++ {
		_, err = rl.HandleGRPC(peerCtx("10.0.0.1"), nil, other, ok)
		require.NoError(t, err, "unlisted methods are not limited")
	}

	now = now.Add(time.Second)
	_, err = rl.HandleGRPC(peerCtx("10.0.0.1"), nil, login, ok)
	require.NoError(t, err, "bucket refills over time")
}

func TestRateLimit_EvictsIdlePeers(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimit(1, 1, "/m")
	rl.nowFn = func() time.Time { return now }

	_, err := rl.HandleGRPC(peerCtx("10.0.0.1"), nil, &grpc.UnaryServerInfo{FullMethod: "/m"}, func(ctx context.Context, req any) (any, error) { return nil, nil })
	require.NoError(t, err)
	assert.Len(t, rl.peers, 1)

	now = now.Add(idleLimiterTTL + time.Second)
	assert.True(t, rl.allow("10.0.0.9"))
	assert.Len(t, rl.peers, 1)
	assert.NotContains(t, rl.peers, "10.0.0.1")
}

func TestPeerAddr_Unknown(t *testing.T) {
	assert.Equal(t, "unknown", peerAddr(context.Background()))
}

func TestRateLimit_ReconnectSharesBucket(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimit(1, 1, "/marketmanager.License/Validate")
	rl.nowFn = func() time.Time { return now }

	info := &grpc.UnaryServerInfo{FullMethod: "/marketmanager.License/Validate"}
	ok := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	fromPort := func(port int) context.Context {
		return peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.IPv4(10, 0, 0, 7), Port: port}})
	}

	_, err := rl.HandleGRPC(fromPort(41000), nil, info, ok)
	require.NoError(t, err)

	_, err = rl.HandleGRPC(fromPort(41001), nil, info, ok)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err), "a new connection from the same host keeps its bucket")
	assert.Len(t, rl.peers, 1)
}

func TestPeerAddr(t *testing.T) {
	tests := []struct {
		name string
		addr net.Addr
		want string
	}{
		{name: "ipv4", addr: &net.TCPAddr{IP: net.IPv4(192, 168, 1, 5), Port: 5555}, want: "192.168.1.5"},
		{name: "ipv6", addr: &net.TCPAddr{IP: net.ParseIP("::1"), Port: 5555}, want: "::1"},
		{name: "no port", addr: &net.UnixAddr{Name: "bufnet", Net: "unix"}, want: "bufnet"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: tt.addr})
			assert.Equal(t, tt.want, peerAddr(ctx))
		})
	}
}
