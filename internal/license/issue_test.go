package license

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_Issue(t *testing.T) {
	t.Parallel()

	t.Run("issued key verifies and carries claims", func(t *testing.T) {
		t.Parallel()

		v, iss := NewTestKeys()
		issuedAt := time.UnixMilli(1700000000123)

		key, err := iss.Issue("buyer@example.com", issuedAt)
		require.NoError(t, err)

		claims, err := v.VerifyClaims(key)
		require.NoError(t, err)
		assert.Equal(t, "buyer@example.com", claims.Email)
		assert.Equal(t, uint64(1700000000123), claims.Timestamp)
		assert.Equal(t, Product, claims.Product)
		assert.True(t, claims.IssuedAt().Equal(issuedAt))
	})

	t.Run("key decodes to payload and signature strings", func(t *testing.T) {
		t.Parallel()

		_, iss := NewTestKeys()
		key, err := iss.Issue("buyer@example.com", time.Now())
		require.NoError(t, err)

		raw, err := keyEncoding.DecodeString(key)
		require.NoError(t, err)

		var env map[string]any
		require.NoError(t, json.Unmarshal(raw, &env))
		assert.IsType(t, "", env["payload"])
		assert.IsType(t, "", env["signature"])
		assert.Contains(t, env["payload"], `"product":"ringlite-pro"`)
	})

	t.Run("other product is rejected by verifier", func(t *testing.T) {
		t.Parallel()

		pub, priv := testKeyPair(t)
		iss, err := NewIssuer(priv, "other-app")
		require.NoError(t, err)

		key, err := iss.Issue("buyer@example.com", time.Now())
		require.NoError(t, err)

		_, err = testVerifier(t, pub).Verify(key)
		require.ErrorIs(t, err, ErrWrongProduct)
	})

	t.Run("empty email is rejected", func(t *testing.T) {
		t.Parallel()

		_, iss := NewTestKeys()
		_, err := iss.Issue("", time.Now())
		require.Error(t, err)
	})
}

func TestNewIssuer_InvalidKey(t *testing.T) {
	t.Parallel()

	iss, err := NewIssuer([]byte("short"), "")
	require.Error(t, err)
	assert.Nil(t, iss)
}
