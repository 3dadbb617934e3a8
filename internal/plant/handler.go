// AngelaMos | 2026
// handler.go

package plant

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/urbangreen-dev/plantstore/internal/core"
	"github.com/urbangreen-dev/plantstore/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticator)
		r.Get("/getplants", h.List)
		r.Get("/plant/{id}", h.GetByID)
		r.Post("/addplant", h.Create)
		r.Patch("/update/plant/{id}", h.Update)
		r.Delete("/delete/plant/{id}", h.Delete)
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		core.Unauthorized(w, "")
		return
	}

	var req CreatePlantRequest
	if err := core.DecodeAllowed(r, AllowedFields, &req); err != nil {
		core.BadRequest(w, "invalid plant details")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	plant, err := h.service.Create(r.Context(), identity, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, ToPlantResponse(plant))
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := ListPlantsParams{
		Name:       r.URL.Query().Get("name"),
		Categories: r.URL.Query().Get("categories"),
	}

	plants, err := h.service.List(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, PlantListResponse{Plants: ToPlantResponseList(plants)})
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		core.NotFound(w, "plant")
		return
	}

	plant, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToPlantResponse(plant))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		core.Unauthorized(w, "")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		core.NotFound(w, "plant")
		return
	}

	var req UpdatePlantRequest
	if err := core.DecodeAllowed(r, AllowedFields, &req); err != nil {
		core.BadRequest(w, "invalid plant details")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	plant, err := h.service.Update(r.Context(), identity, id, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToPlantResponse(plant))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		core.Unauthorized(w, "")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		core.NotFound(w, "plant")
		return
	}

	name, err := h.service.Delete(r.Context(), identity, id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, DeletePlantResponse{
		Message: "Plant deleted successfully",
		Name:    name,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "admin access required")
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "plant")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, "invalid plant details")
	default:
		core.InternalServerError(w, err)
	}
}
