package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"academic-events/dto"
	"academic-events/internal/models"
	"academic-events/internal/repository"
)

type FacilityService struct {
	catalog[models.Facility, string]
}

func NewFacilityService(repos repository.Repositories, log zerolog.Logger) *FacilityService {
	return &FacilityService{catalog: newCatalog(repos.Facilities, "facility", log)}
}

// Create stores a facility under the caller-chosen id.
func (s *FacilityService) Create(ctx context.Context, f models.Facility) (*models.Facility, error) {
	if err := checkInput(f); err != nil {
		return nil, err
	}
	if err := s.insert(ctx, f.ID, f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *FacilityService) Update(ctx context.Context, id string, req dto.FacilityUpdateRequest) (*models.Facility, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	f, fields := *current, bson.M{}
	err = errors.Join(
		assign(req.Location, "ubicacion", &f.Location, fields, false),
		assign(req.Type, "tipo", &f.Type, fields, false),
		assign(req.Capacity, "capacidad", &f.Capacity, fields, false),
	)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return current, nil
	}
	if err := checkInput(f); err != nil {
		return nil, err
	}
	if err := s.update(ctx, id, fields); err != nil {
		return nil, err
	}
	return &f, nil
}
