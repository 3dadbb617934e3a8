// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID             string     `db:"id"`
	Firstname      string     `db:"firstname"`
	Lastname       string     `db:"lastname"`
	Age            int        `db:"age"`
	Role           string     `db:"role"`
	Email          string     `db:"email"`
	Gender         string     `db:"gender"`
	PasswordHash   string     `db:"password_hash"`
	ProfileURL     string     `db:"profile_url"`
	City           string     `db:"city"`
	State          string     `db:"state"`
	Country        string     `db:"country"`
	Pincode        string     `db:"pincode"`
	ActiveToken    *string    `db:"active_token"`
	TokenExpiresAt *time.Time `db:"token_expires_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasActiveSession reports whether the presented token is the one stored
// on the record and the session window has not lapsed. The stored token is
// the authority for revocation; the cryptographic check alone is not
// enough once a user has logged out.
func (u *User) HasActiveSession(token string, now time.Time) bool {
	if u.ActiveToken == nil || *u.ActiveToken != token {
		return false
	}
	if u.TokenExpiresAt != nil && now.After(*u.TokenExpiresAt) {
		return false
	}
	return true
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// DefaultProfileURL is the placeholder applied when signup omits a
// profile image.
const DefaultProfileURL = "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcRX7HRicGdWDIgAs9L2WZqSw-rpPd7VWrD0pvS0gQmc0hzoi9zJJA0ZEXH7aExSmGP1ZCU&usqp=CAU"
