// AngelaMos | 2026
// service.go

package plant

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/urbangreen-dev/plantstore/internal/core"
	"github.com/urbangreen-dev/plantstore/internal/middleware"
)

// Service owns catalog rules: every mutation requires an admin identity.
// Reads need only the session the router already enforces, so they take no
// identity here.
type Service struct {
	repo  Repository
	cache *Cache
}

func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) Create(
	ctx context.Context,
	identity *middleware.Identity,
	req CreatePlantRequest,
) (*Plant, error) {
	if !identity.IsAdmin() {
		return nil, fmt.Errorf("create plant: %w", core.ErrForbidden)
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		return nil, fmt.Errorf("create plant: %w", core.ErrInvalidInput)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	profile := req.Profile
	if profile == "" {
		profile = DefaultProfileURL
	}

	plant := &Plant{
		ID:         uuid.New().String(),
		Name:       name,
		Price:      req.Price,
		Categories: req.Categories,
		Available:  available,
		ProfileURL: profile,
		CreatedBy:  identity.ID,
	}

	if err := s.repo.Create(ctx, plant); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, plant.ID)

	return plant, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*Plant, error) {
	if cached, ok := s.cache.GetPlant(ctx, id); ok {
		return cached, nil
	}

	plant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.SetPlant(ctx, plant)

	return plant, nil
}

func (s *Service) List(
	ctx context.Context,
	params ListPlantsParams,
) ([]Plant, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.Categories = strings.TrimSpace(params.Categories)

	if cached, ok := s.cache.GetList(ctx, params); ok {
		return cached, nil
	}

	plants, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	s.cache.SetList(ctx, params, plants)

	return plants, nil
}

func (s *Service) Update(
	ctx context.Context,
	identity *middleware.Identity,
	id string,
	req UpdatePlantRequest,
) (*Plant, error) {
	if !identity.IsAdmin() {
		return nil, fmt.Errorf("update plant: %w", core.ErrForbidden)
	}

	plant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(plant)

	if len(plant.Name) < 2 {
		return nil, fmt.Errorf("update plant: %w", core.ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, plant); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, plant.ID)

	return plant, nil
}

func (s *Service) Delete(
	ctx context.Context,
	identity *middleware.Identity,
	id string,
) (string, error) {
	if !identity.IsAdmin() {
		return "", fmt.Errorf("delete plant: %w", core.ErrForbidden)
	}

	name, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}

	s.cache.Invalidate(ctx, id)

	return name, nil
}
