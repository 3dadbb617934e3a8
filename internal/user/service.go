// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/urbangreen-dev/plantstore/internal/auth"
)

// Service is the credential store facade consumed by the auth service.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	nu auth.NewUser,
) (*auth.UserInfo, error) {
	profile := nu.ProfileURL
	if profile == "" {
		profile = DefaultProfileURL
	}

	user := &User{
		ID:           uuid.New().String(),
		Firstname:    nu.Firstname,
		Lastname:     nu.Lastname,
		Age:          nu.Age,
		Role:         nu.Role,
		Email:        strings.ToLower(nu.Email),
		Gender:       nu.Gender,
		PasswordHash: nu.PasswordHash,
		ProfileURL:   profile,
		City:         nu.City,
		State:        nu.State,
		Country:      nu.Country,
		Pincode:      nu.Pincode,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) SetSessionToken(
	ctx context.Context,
	userID, token string,
	expiresAt time.Time,
) error {
	return s.repo.SetSessionToken(ctx, userID, token, expiresAt)
}

func (s *Service) ClearSessionToken(ctx context.Context, userID string) error {
	return s.repo.ClearSessionToken(ctx, userID)
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:             u.ID,
		Firstname:      u.Firstname,
		Lastname:       u.Lastname,
		Age:            u.Age,
		Role:           u.Role,
		Email:          u.Email,
		Gender:         u.Gender,
		PasswordHash:   u.PasswordHash,
		ProfileURL:     u.ProfileURL,
		City:           u.City,
		State:          u.State,
		Country:        u.Country,
		Pincode:        u.Pincode,
		ActiveToken:    u.ActiveToken,
		TokenExpiresAt: u.TokenExpiresAt,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)
