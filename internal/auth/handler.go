// AngelaMos | 2026
// handler.go

package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/urbangreen-dev/plantstore/internal/config"
	"github.com/urbangreen-dev/plantstore/internal/core"
	"github.com/urbangreen-dev/plantstore/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
	cookies   config.SessionConfig
}

func NewHandler(service *Service, cfg config.SessionConfig) *Handler {
	return &Handler{
		service:   service,
		validator: NewValidator(),
		cookies:   cfg,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Patch("/profile/password", h.UpdatePassword)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/profile", h.GetProfile)
		r.Post("/logout", h.Logout)
	})
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := core.DecodeAllowed(r, AccountAllowedFields, &req); err != nil {
		core.BadRequest(w, "invalid details")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	user, err := h.service.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.Conflict(w, "email")
			return
		}
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "invalid details")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := core.DecodeAllowed(r, CredentialAllowedFields, &req); err != nil {
		core.BadRequest(w, "invalid login request")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.JSONError(
				w,
				core.UnauthorizedError("invalid email or password"),
			)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(result.Token, result.ExpiresAt))

	core.OK(w, LoginResponse{
		Message: "Login successful",
		User:    ToUserResponse(result.User),
	})
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		core.Unauthorized(w, "")
		return
	}

	core.OK(w, IdentityToUserResponse(identity))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		core.Unauthorized(w, "")
		return
	}

	if err := h.service.Logout(r.Context(), identity.ID); err != nil &&
		!errors.Is(err, core.ErrNotFound) {
		core.InternalServerError(w, err)
		return
	}

	// Replace the session cookie with an already-expired one.
	http.SetCookie(w, h.sessionCookie("", time.Unix(0, 0)))

	core.OK(w, MessageResponse{
		Message: identity.Firstname + " logged out successfully",
	})
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req UpdatePasswordRequest
	if err := core.DecodeAllowed(r, CredentialAllowedFields, &req); err != nil {
		core.BadRequest(w, "invalid request")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	email, err := h.service.UpdatePassword(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "email")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, MessageResponse{
		Message: "Password updated successfully for " + email,
	})
}

func (h *Handler) sessionCookie(value string, expires time.Time) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if h.cookies.CookieSecure {
		// Credentialed cross-origin requests from the configured
		// frontend origin need SameSite=None.
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     h.cookies.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookies.CookieSecure,
		SameSite: sameSite,
	}
}
