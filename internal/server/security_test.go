package server

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeKeyPair writes a self-signed loopback certificate and returns the file paths.
func writeKeyPair(t *testing.T) (string, string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := x509.Certificate{
		SerialNumber: big.NewInt(time.Now().UnixNano()),
		Subject:      pkix.Name{CommonName: "marketmanager.local"},
		NotBefore:    time.Now().Add(-time.Minute),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		IPAddresses:  []net.IP{net.IPv4(127, 0, 0, 1)},
	}
	der, err := x509.CreateCertificate(rand.Reader, &tmpl, &tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	dir := t.TempDir()
	certFile := filepath.Join(dir, "cert.pem")
	keyFile := filepath.Join(dir, "key.pem")
	require.NoError(t, os.WriteFile(certFile, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	require.NoError(t, os.WriteFile(keyFile, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER}), 0o600))

	return certFile, keyFile
}

func TestTLSListener_Handshake(t *testing.T) {
	t.Parallel()

	certFile, keyFile := writeKeyPair(t)
	ln, err := NewTLSListener(certFile, keyFile).Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.(*tls.Conn).Handshake()
			conn.Close()
		}
	}()

	tests := []struct {
		name    string
		version uint16
		wantErr bool
	}{
		{name: "TLS 1.2 accepted", version: tls.VersionTLS12},
		{name: "TLS 1.3 accepted", version: tls.VersionTLS13},
		{name: "TLS 1.1 rejected", version: tls.VersionTLS11, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conn, err := tls.Dial("tcp", ln.Addr().String(), &tls.Config{
				MinVersion:         tt.version,
				MaxVersion:         tt.version,
				InsecureSkipVerify: true, //nolint:gosec // self-signed test certificate
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			conn.Close()
		})
	}
}

func TestListen_Errors(t *testing.T) {
	t.Parallel()

	certFile, keyFile := writeKeyPair(t)

	tests := []struct {
		name    string
		layer   interface {
			Listen(protocol, addr string) (net.Listener, error)
		}
		addr    string
		wantErr string
	}{
		{
			name:    "missing certificate",
			layer:   NewTLSListener(filepath.Join(t.TempDir(), "none.pem"), keyFile),
			addr:    "127.0.0.1:0",
			wantErr: "failed to load TLS certificate",
		},
		{
			name:    "tls bad address",
			layer:   NewTLSListener(certFile, keyFile),
			addr:    "not-an-address",
			wantErr: "failed to open TLS listener",
		},
		{
			name:    "plain bad address",
			layer:   NewPlainListener(),
			addr:    "not-an-address",
			wantErr: "failed to open listener",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ln, err := tt.layer.Listen("tcp", tt.addr)
			assert.Nil(t, ln)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestPlainListener_Loopback(t *testing.T) {
	t.Parallel()

	ln, err := NewPlainListener().Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	addr, ok := ln.Addr().(*net.TCPAddr)
	require.True(t, ok)
	assert.True(t, addr.IP.IsLoopback())
	assert.NotZero(t, addr.Port)
}
