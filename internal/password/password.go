// Package password implements salted PBKDF2 password hashing.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/dtroode/marketmanager-server/internal/model"
)

// SaltSize is the number of random bytes in a salt before hex encoding.
const SaltSize = 16

// Policy fixes the PBKDF2 parameters used to derive a password digest.
type Policy struct {
	Iterations int
	KeyLen     int
	Digest     func() hash.Hash
}

// DefaultPolicy is used for every new hash.
var DefaultPolicy = Policy{Iterations: 10000, KeyLen: 64, Digest: sha512.New}

// LegacyPolicies are accepted during verification so stored hashes created
// with older parameters keep working until they are rehashed.
var LegacyPolicies = []Policy{
	{Iterations: 1000, KeyLen: 64, Digest: sha512.New},
	{Iterations: 10000, KeyLen: 512, Digest: sha512.New},
}

var _ model.PasswordHasher = (*Hasher)(nil)

// Hasher hashes and verifies passwords.
type Hasher struct {
	policy Policy
	legacy []Policy
	rand   io.Reader
}

// Option configures a Hasher.
type Option func(*Hasher)

// WithLegacy sets the policies tried after the current one.
func WithLegacy(policies ...Policy) Option {
	return func(h *Hasher) {
		h.legacy = policies
	}
}

// WithRand sets the random source used for salts.
func WithRand(r io.Reader) Option {
	return func(h *Hasher) {
		h.rand = r
	}
}

// New creates a Hasher for policy. Zero fields fall back to DefaultPolicy.
func New(policy Policy, opts ...Option) *Hasher {
	if policy.Iterations <= 0 {
		policy.Iterations = DefaultPolicy.Iterations
	}
	if policy.KeyLen <= 0 {
		policy.KeyLen = DefaultPolicy.KeyLen
	}
	if policy.Digest == nil {
		policy.Digest = DefaultPolicy.Digest
	}

	h := &Hasher{
		policy: policy,
		legacy: LegacyPolicies,
		rand:   rand.Reader,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// MakeSalt returns SaltSize random bytes as a hex string.
func (h *Hasher) MakeSalt() (string, error) {
	b := make([]byte, SaltSize)
	if _, err := io.ReadFull(h.rand, b); err != nil {
		return "", fmt.Errorf("failed to read random salt: %w", err)
	}

	return hex.EncodeToString(b), nil
}

// Hash derives the hex digest of password. The salt string itself is the PBKDF2 salt.
func (h *Hasher) Hash(password, salt string) string {
	return derive(h.policy, password, salt)
}

// HashNew creates a fresh salt and hashes password with it.
func (h *Hasher) HashNew(password string) (digest, salt string, err error) {
	salt, err = h.MakeSalt()
	if err != nil {
		return "", "", err
	}

	return h.Hash(password, salt), salt, nil
}

// Verify reports whether password matches digest. needsRehash is true when
// the match came from a legacy policy.
func (h *Hasher) Verify(password, digest, salt string) (ok bool, needsRehash bool) {
	if equal(derive(h.policy, password, salt), digest) {
		return true, false
	}
	for _, p := range h.legacy {
		if p.KeyLen*2 != len(digest) {
			continue
		}
		if equal(derive(p, password, salt), digest) {
			return true, true
		}
	}

	return false, false
}

func derive(p Policy, password, salt string) string {
	return hex.EncodeToString(pbkdf2.Key([]byte(password), []byte(salt), p.Iterations, p.KeyLen, p.Digest))
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
