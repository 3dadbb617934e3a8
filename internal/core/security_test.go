// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	assert.NotContains(t, hash, "Sup3rSecret!")

	// Same password, fresh salt.
	other, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"correct password", "Sup3rSecret!", true},
		{"wrong password", "wrong-password", false},
		{"empty password", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := VerifyPassword(tt.password, hash)
			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"garbage", "not-a-hash"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{"truncated", "$argon2id$v=19$m=65536"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyPassword("whatever", tt.hash)
			assert.Error(t, err)
		})
	}
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)

	t.Run("valid hash and password", func(t *testing.T) {
		valid, rehash, err := VerifyPasswordTimingSafe("Sup3rSecret!", &hash)
		require.NoError(t, err)
		assert.True(t, valid)
		assert.Empty(t, rehash)
	})

	t.Run("nil hash always fails", func(t *testing.T) {
		valid, rehash, err := VerifyPasswordTimingSafe("Sup3rSecret!", nil)
		require.NoError(t, err)
		assert.False(t, valid)
		assert.Empty(t, rehash)
	})

	t.Run("empty hash always fails", func(t *testing.T) {
		empty := ""
		valid, _, err := VerifyPasswordTimingSafe("Sup3rSecret!", &empty)
		require.NoError(t, err)
		assert.False(t, valid)
	})
}

func TestNeedsRehash(t *testing.T) {
	hash, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)

	assert.False(t, needsRehash(hash))
	assert.True(t, needsRehash("garbage"))

	// Weaker parameters than the current policy trigger an upgrade.
	weak := "$argon2id$v=19$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$aGFzaGhhc2hoYXNoaGFzaGhhc2hoYXNoaGFzaGhhc2g"
	assert.True(t, needsRehash(weak))
}
