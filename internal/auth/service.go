// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urbangreen-dev/plantstore/internal/config"
	"github.com/urbangreen-dev/plantstore/internal/core"
	"github.com/urbangreen-dev/plantstore/internal/middleware"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserInfo is the credential-store view of a user the auth service works
// with. The user package maps its entity into this shape.
type UserInfo struct {
	ID             string
	Firstname      string
	Lastname       string
	Age            int
	Role           string
	Email          string
	Gender         string
	PasswordHash   string
	ProfileURL     string
	City           string
	State          string
	Country        string
	Pincode        string
	ActiveToken    *string
	TokenExpiresAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasActiveSession mirrors the entity rule: the stored token is the
// revocation authority for an otherwise valid signature.
func (u *UserInfo) HasActiveSession(token string, now time.Time) bool {
	if u.ActiveToken == nil || *u.ActiveToken != token {
		return false
	}
	if u.TokenExpiresAt != nil && now.After(*u.TokenExpiresAt) {
		return false
	}
	return true
}

// NewUser carries the validated signup fields plus the already-hashed
// password into the credential store.
type NewUser struct {
	Firstname    string
	Lastname     string
	Age          int
	Role         string
	Email        string
	Gender       string
	PasswordHash string
	ProfileURL   string
	City         string
	State        string
	Country      string
	Pincode      string
}

// UserProvider is the credential store surface the auth service depends
// on. Implemented by the user service.
type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Create(ctx context.Context, nu NewUser) (*UserInfo, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	SetSessionToken(
		ctx context.Context,
		userID, token string,
		expiresAt time.Time,
	) error
	ClearSessionToken(ctx context.Context, userID string) error
}

type Service struct {
	users  UserProvider
	tokens *TokenManager
	config config.SessionConfig
}

func NewService(
	users UserProvider,
	tokens *TokenManager,
	cfg config.SessionConfig,
) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		config: cfg,
	}
}

// Signup creates the account. The payload has already passed the account
// allow-list and field validation; only the hash of the password is
// persisted.
func (s *Service) Signup(
	ctx context.Context,
	req SignupRequest,
) (*UserInfo, error) {
	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	nu := NewUser{
		Firstname:    strings.TrimSpace(req.Firstname),
		Lastname:     strings.TrimSpace(req.Lastname),
		Age:          req.Age,
		Role:         req.Role,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Gender:       req.Gender,
		PasswordHash: passwordHash,
		ProfileURL:   strings.TrimSpace(req.Profile),
		City:         strings.TrimSpace(req.City),
		State:        strings.TrimSpace(req.State),
		Country:      strings.TrimSpace(req.Country),
		Pincode:      strings.TrimSpace(req.Pincode),
	}

	user, err := s.users.Create(ctx, nu)
	if err != nil {
		return nil, err
	}

	return user, nil
}

type LoginResult struct {
	User      *UserInfo
	Token     string
	ExpiresAt time.Time
}

// Login verifies credentials and opens a session: a signed token is issued
// and persisted on the user record together with the session expiry. The
// failure is identical for an unknown email and a wrong password so the
// response does not reveal whether an account exists.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, newHash, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&user.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	if newHash != "" {
		//nolint:errcheck // best-effort rehash upgrade
		_ = s.users.UpdatePassword(ctx, user.ID, newHash)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	expiresAt := time.Now().Add(s.config.CookieExpire)

	if err := s.users.SetSessionToken(ctx, user.ID, token, expiresAt); err != nil {
		return nil, fmt.Errorf("store session token: %w", err)
	}

	return &LoginResult{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ResolveToken backs the request authenticator: verify the signature,
// resolve the embedded user, then require the presented token to be the
// stored active one.
func (s *Service) ResolveToken(
	ctx context.Context,
	token string,
) (*middleware.Identity, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !user.HasActiveSession(token, time.Now()) {
		return nil, fmt.Errorf("resolve token: %w", core.ErrUnauthorized)
	}

	return toIdentity(user), nil
}

// Logout revokes the session server-side by clearing the stored token and
// expiry. The cookie replacement is the handler's job.
func (s *Service) Logout(ctx context.Context, userID string) error {
	if err := s.users.ClearSessionToken(ctx, userID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// UpdatePassword overwrites the password hash for the account matching the
// email. No prior authentication is required on this path; the exposure is
// inherited from the public contract and documented in DESIGN.md.
func (s *Service) UpdatePassword(
	ctx context.Context,
	req UpdatePasswordRequest,
) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return "", err
	}

	return user.Email, nil
}

func toIdentity(u *UserInfo) *middleware.Identity {
	return &middleware.Identity{
		ID:         u.ID,
		Firstname:  u.Firstname,
		Lastname:   u.Lastname,
		Age:        u.Age,
		Role:       u.Role,
		Email:      u.Email,
		Gender:     u.Gender,
		ProfileURL: u.ProfileURL,
		City:       u.City,
		State:      u.State,
		Country:    u.Country,
		Pincode:    u.Pincode,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

var _ middleware.IdentityResolver = (*Service)(nil)
