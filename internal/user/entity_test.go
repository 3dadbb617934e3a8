// AngelaMos | 2026
// entity_test.go

package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasActiveSession(t *testing.T) {
	now := time.Now()
	token := "session-token"
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name      string
		token     *string
		expiresAt *time.Time
		presented string
		want      bool
	}{
		{"matching unexpired session", &token, &future, token, true},
		{"no stored token", nil, &future, token, false},
		{"different token", &token, &future, "other-token", false},
		{"expired session", &token, &past, token, false},
		{"no expiry recorded", &token, nil, token, true},
		{"empty presented token", &token, &future, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{
				ActiveToken:    tt.token,
				TokenExpiresAt: tt.expiresAt,
			}
			assert.Equal(t, tt.want, u.HasActiveSession(tt.presented, now))
		})
	}
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}
