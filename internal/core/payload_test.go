// AngelaMos | 2026
// payload_test.go

package core

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAllowedFields(t *testing.T) {
	allowed := []string{"email", "password"}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"all allowed", `{"email":"a@b.com","password":"x"}`, false},
		{"subset allowed", `{"email":"a@b.com"}`, false},
		{"empty object", `{}`, false},
		{"empty body", ``, false},
		{"extra key rejected", `{"email":"a@b.com","role":"admin"}`, true},
		{"only extra key", `{"isAdmin":true}`, true},
		{"not an object", `[1,2,3]`, true},
		{"invalid json", `{"email":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAllowedFields([]byte(tt.body), allowed)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDecodeAllowed(t *testing.T) {
	type payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	allowed := []string{"email", "password"}

	t.Run("decodes allowed payload", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/login",
			bytes.NewBufferString(`{"email":"a@b.com","password":"x"}`))

		var dst payload
		require.NoError(t, DecodeAllowed(r, allowed, &dst))
		assert.Equal(t, "a@b.com", dst.Email)
		assert.Equal(t, "x", dst.Password)
	})

	t.Run("rejects disallowed key before decoding", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/login",
			bytes.NewBufferString(`{"email":"a@b.com","admin":true}`))

		var dst payload
		err := DecodeAllowed(r, allowed, &dst)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Empty(t, dst.Email)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/login",
			bytes.NewBufferString(`{"email"`))

		var dst payload
		assert.ErrorIs(t, DecodeAllowed(r, allowed, &dst), ErrInvalidInput)
	})
}

func TestPayloadKeys(t *testing.T) {
	keys, err := PayloadKeys([]byte(`{"name":"Fern","price":160}`))
	require.NoError(t, err)

	assert.Len(t, keys, 2)
	assert.Contains(t, keys, "name")
	assert.Contains(t, keys, "price")

	keys, err = PayloadKeys(nil)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
