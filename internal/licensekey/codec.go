// Package licensekey produces the opaque MM- license keys.
//
// A key is the encrypted {id, exp} payload, base64 encoded, stripped of
// '+', '/' and '=' and cut to KeyBodyLen characters. The cut discards most of
// the ciphertext, so keys cannot be decoded back: a key is validated only by
// looking it up in the license store.
package licensekey

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"github.com/dtroode/marketmanager-server/internal/model"
)

// KeyBodyLen is the maximum number of characters after the prefix.
const KeyBodyLen = 25

var format = regexp.MustCompile(`^MM-[A-Za-z0-9]{1,25}$`)

// ErrEmptySecret is returned when a codec is created without a secret.
var ErrEmptySecret = errors.New("license secret is empty")

// Payload is the data sealed into a key.
type Payload struct {
	ID  string `json:"id"`
	Exp int64  `json:"exp"`
}

// NewPayload builds a payload with the expiry in epoch milliseconds.
func NewPayload(id string, expiresAt time.Time) Payload {
	return Payload{ID: id, Exp: expiresAt.UnixMilli()}
}

// Codec encodes license payloads under a static application secret.
type Codec struct {
	key  []byte
	rand io.Reader
}

// NewCodec derives the cipher key from secret.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := make([]byte, chacha20poly1305.KeySize)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte("marketmanager license key"))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive license key: %w", err)
	}

	return &Codec{key: key, rand: rand.Reader}, nil
}

// WithRand replaces the nonce source.
func (c *Codec) WithRand(r io.Reader) *Codec {
	c.rand = r
	return c
}

var _ model.LicenseKeyGenerator = (*Codec)(nil)

// Encode seals p and renders it as a license key.
func (c *Codec) Encode(p Payload) (string, error) {
	plain, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal license payload: %w", err)
	}

	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", fmt.Errorf("failed to read nonce: %w", err)
	}
	// Ciphertext leads so the truncated body is derived from the payload and the secret.
	sealed := aead.Seal(nil, nonce, plain, nil)
	sealed = append(sealed, nonce...)

	body := strings.Map(func(r rune) rune {
		switch r {
		case '+', '/', '=':
			return -1
		}
		return r
	}, base64.StdEncoding.EncodeToString(sealed))
	if len(body) > KeyBodyLen {
		body = body[:KeyBodyLen]
	}

	return model.LicenseKeyPrefix + body, nil
}

// ValidFormat reports whether key has the MM- license key shape.
func ValidFormat(key string) bool {
	return format.MatchString(key)
}

// Mask shortens key for logs.
func Mask(key string) string {
	const visible = len(model.LicenseKeyPrefix) + 4
	if len(key) <= visible {
		return key
	}
	return key[:visible] + "…"
}

// Generate encodes a payload for id and expiresAt.
func (c *Codec) Generate(id string, expiresAt time.Time) (string, error) {
	return c.Encode(NewPayload(id, expiresAt))
}
