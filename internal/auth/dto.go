// AngelaMos | 2026
// dto.go

package auth

import (
	"regexp"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/urbangreen-dev/plantstore/internal/middleware"
)

// AccountAllowedFields is the allow-list for signup payloads. Field casing
// mirrors the public API contract, not Go conventions.
var AccountAllowedFields = []string{
	"Firstname",
	"Lastname",
	"age",
	"email",
	"password",
	"gender",
	"profile",
	"city",
	"State",
	"country",
	"pincode",
	"Role",
}

// CredentialAllowedFields is the allow-list for login and password-update
// payloads: exactly email and password, nothing else.
var CredentialAllowedFields = []string{"email", "password"}

type SignupRequest struct {
	Firstname string `json:"Firstname" validate:"required,min=3,max=20"`
	Lastname  string `json:"Lastname"  validate:"required,min=3,max=30"`
	Age       int    `json:"age"       validate:"required,min=1,max=99"`
	Email     string `json:"email"     validate:"required,email,max=255"`
	Password  string `json:"password"  validate:"required,strongpwd"`
	Gender    string `json:"gender"    validate:"required,oneof=male female other"`
	Profile   string `json:"profile"   validate:"omitempty,url"`
	City      string `json:"city"      validate:"omitempty,max=100"`
	State     string `json:"State"     validate:"omitempty,max=100"`
	Country   string `json:"country"   validate:"omitempty,max=100"`
	Pincode   string `json:"pincode"   validate:"required,pincode"`
	Role      string `json:"Role"      validate:"required,oneof=user admin"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type UpdatePasswordRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,strongpwd"`
}

// UserResponse is the externally visible user record. The password hash is
// deliberately absent from every serialized representation.
type UserResponse struct {
	ID         string    `json:"id"`
	Firstname  string    `json:"Firstname"`
	Lastname   string    `json:"Lastname"`
	Age        int       `json:"age"`
	Role       string    `json:"Role"`
	Email      string    `json:"email"`
	Gender     string    `json:"gender"`
	ProfileURL string    `json:"profile"`
	City       string    `json:"city,omitempty"`
	State      string    `json:"State,omitempty"`
	Country    string    `json:"country,omitempty"`
	Pincode    string    `json:"pincode"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *UserInfo) UserResponse {
	return UserResponse{
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

func IdentityToUserResponse(i *middleware.Identity) UserResponse {
	return UserResponse{
		ID:         i.ID,
		Firstname:  i.Firstname,
		Lastname:   i.Lastname,
		Age:        i.Age,
		Role:       i.Role,
		Email:      i.Email,
		Gender:     i.Gender,
		ProfileURL: i.ProfileURL,
		City:       i.City,
		State:      i.State,
		Country:    i.Country,
		Pincode:    i.Pincode,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

var pincodeRegexp = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// NewValidator builds the validator with the custom rules the DTOs above
// rely on.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	//nolint:errcheck // registration only fails on nil funcs
	_ = v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodeRegexp.MatchString(fl.Field().String())
	})

	//nolint:errcheck // registration only fails on nil funcs
	_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})

	return v
}

// isStrongPassword requires at least 8 characters with one uppercase, one
// lowercase, one digit and one symbol.
func isStrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	return upper && lower && digit && symbol
}
