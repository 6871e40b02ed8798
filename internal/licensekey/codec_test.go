package licensekey

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodec_EmptySecret(t *testing.T) {
	_, err := NewCodec("")
	require.ErrorIs(t, err, ErrEmptySecret)
}

func TestCodec_EncodeFormat(t *testing.T) {
	c, err := NewCodec("test-secret")
	require.NoError(t, err)

	key, err := c.Encode(NewPayload(uuid.NewString(), time.Now().Add(30*24*time.Hour)))
	require.NoError(t, err)

	assert.True(t, ValidFormat(key), key)
	assert.Len(t, key, len("MM-")+KeyBodyLen)
	assert.NotContains(t, key[3:], "+")
	assert.NotContains(t, key[3:], "/")
	assert.NotContains(t, key[3:], "=")
}

func TestCodec_EncodeUnique(t *testing.T) {
	c, err := NewCodec("test-secret")
	require.NoError(t, err)

	seen := make(map[string]struct{}, 10000)
	p := NewPayload("same-id", time.UnixMilli(1700000000000))
	for i := 0; i < 10000; i++ {
		key, err := c.Encode(p)
		require.NoError(t, err)
		require.True(t, ValidFormat(key))
		_, dup := seen[key]
		require.False(t, dup, "duplicate key %s", key)
		seen[key] = struct{}{}
	}
}

func TestCodec_FixedNonceIsDeterministic(t *testing.T) {
	nonce := bytes.Repeat([]byte{7}, 24)
	p := NewPayload("id", time.UnixMilli(1))

	c1, err := NewCodec("s")
	require.NoError(t, err)
	k1, err := c1.WithRand(bytes.NewReader(nonce)).Encode(p)
	require.NoError(t, err)

	c2, err := NewCodec("s")
	require.NoError(t, err)
	k2, err := c2.WithRand(bytes.NewReader(nonce)).Encode(p)
	require.NoError(t, err)

	assert.Equal(t, k1, k2)

	c3, err := NewCodec("other")
	require.NoError(t, err)
	k3, err := c3.WithRand(bytes.NewReader(nonce)).Encode(p)
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	k4, err := c1.WithRand(bytes.NewReader(nonce)).Encode(NewPayload("another-id", time.UnixMilli(999999999999)))
	require.NoError(t, err)
	assert.NotEqual(t, k1, k4)
}

func TestCodec_EncodeNonceError(t *testing.T) {
	c, err := NewCodec("s")
	require.NoError(t, err)

	_, err = c.WithRand(bytes.NewReader(nil)).Encode(NewPayload("id", time.Now()))
	require.Error(t, err)
}

func TestValidFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  string
		want bool
	}{
		{key: "MM-abc123", want: true},
		{key: "MM-A", want: true},
		{key: "MM-" + "a234567890123456789012345", want: true},
		{key: "MM-" + "a2345678901234567890123456", want: false},
		{key: "MM-", want: false},
		{key: "", want: false},
		{key: "mm-abc", want: false},
		{key: "XX-abc", want: false},
		{key: "MM-ab+c", want: false},
		{key: "MM-ab c", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ValidFormat(tt.key))
		})
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, "MM-abcd…", Mask("MM-abcdefgh"))
	assert.Equal(t, "MM-ab", Mask("MM-ab"))
}
