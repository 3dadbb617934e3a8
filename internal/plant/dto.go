// AngelaMos | 2026
// dto.go

package plant

import (
	"strings"
	"time"
)

// AllowedFields is the allow-list for plant create and update payloads.
var AllowedFields = []string{
	"name",
	"price",
	"categories",
	"available",
	"profile",
}

type CreatePlantRequest struct {
	Name       string   `json:"name"       validate:"required,min=2"`
	Price      float64  `json:"price"      validate:"required,gte=1"`
	Categories []string `json:"categories" validate:"required,min=1,dive,required"`
	Available  *bool    `json:"available"`
	Profile    string   `json:"profile"    validate:"omitempty,url"`
}

// UpdatePlantRequest uses pointers so that only fields actually present in
// the payload are applied; omitted fields keep their stored values.
type UpdatePlantRequest struct {
	Name       *string  `json:"name"       validate:"omitempty,min=2"`
	Price      *float64 `json:"price"      validate:"omitempty,gte=1"`
	Categories []string `json:"categories" validate:"omitempty,min=1,dive,required"`
	Available  *bool    `json:"available"`
	Profile    *string  `json:"profile"    validate:"omitempty,url"`
}

// Apply overwrites exactly the fields present in the request.
func (r *UpdatePlantRequest) Apply(p *Plant) {
	if r.Name != nil {
		p.Name = strings.TrimSpace(*r.Name)
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Categories != nil {
		p.Categories = r.Categories
	}
	if r.Available != nil {
		p.Available = *r.Available
	}
	if r.Profile != nil {
		p.ProfileURL = *r.Profile
	}
}

// ListPlantsParams carries the optional substring filters. An empty value
// imposes no constraint.
type ListPlantsParams struct {
	Name       string
	Categories string
}

type PlantResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Categories []string  `json:"categories"`
	Available  bool      `json:"available"`
	ProfileURL string    `json:"profile"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PlantListResponse struct {
	Plants []PlantResponse `json:"plants"`
}

type DeletePlantResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

func ToPlantResponse(p *Plant) PlantResponse {
	return PlantResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Categories: p.Categories,
		Available:  p.Available,
		ProfileURL: p.ProfileURL,
		CreatedBy:  p.CreatedBy,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func ToPlantResponseList(plants []Plant) []PlantResponse {
	responses := make([]PlantResponse, 0, len(plants))
	for _, p := range plants {
		responses = append(responses, ToPlantResponse(&p))
	}
	return responses
}
