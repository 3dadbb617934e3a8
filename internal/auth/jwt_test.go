// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbangreen-dev/plantstore/internal/config"
	"github.com/urbangreen-dev/plantstore/internal/core"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:       "test-secret-at-least-32-bytes-long!!",
		TokenExpire:  time.Hour,
		CookieExpire: time.Hour,
		CookieName:   "token",
		Issuer:       "plantstore",
	}
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Secret = ""

	_, err := NewTokenManager(cfg)
	assert.Error(t, err)
}

func TestTokenManagerIssueAndVerify(t *testing.T) {
	tm, err := NewTokenManager(testSessionConfig())
	require.NoError(t, err)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestTokenManagerVerifyExpired(t *testing.T) {
	cfg := testSessionConfig()
	cfg.TokenExpire = -time.Minute

	tm, err := NewTokenManager(cfg)
	require.NoError(t, err)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestTokenManagerVerifyRejectsTampering(t *testing.T) {
	tm, err := NewTokenManager(testSessionConfig())
	require.NoError(t, err)

	token, err := tm.Issue("user-123")
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := tm.Verify("not.a.token")
		assert.ErrorIs(t, err, core.ErrTokenInvalid)
	})

	t.Run("truncated signature", func(t *testing.T) {
		_, err := tm.Verify(token[:len(token)-4])
		assert.ErrorIs(t, err, core.ErrTokenInvalid)
	})

	t.Run("different secret", func(t *testing.T) {
		otherCfg := testSessionConfig()
		otherCfg.Secret = "a-completely-different-signing-key!!"
		other, err := NewTokenManager(otherCfg)
		require.NoError(t, err)

		_, err = other.Verify(token)
		assert.ErrorIs(t, err, core.ErrTokenInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		otherCfg := testSessionConfig()
		otherCfg.Issuer = "someone-else"
		other, err := NewTokenManager(otherCfg)
		require.NoError(t, err)

		_, err = other.Verify(token)
		assert.ErrorIs(t, err, core.ErrTokenInvalid)
	})
}
