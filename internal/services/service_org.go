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

type OrganizationService struct {
	catalog[models.Organization, bson.ObjectID]
}

func NewOrganizationService(repos repository.Repositories, log zerolog.Logger) *OrganizationService {
	return &OrganizationService{catalog: newCatalog(repos.Organizations, "organization", log)}
}

func (s *OrganizationService) Create(ctx context.Context, req dto.OrganizationRequest) (*models.Organization, error) {
	org := req.ToModel()
	org.ID = bson.NewObjectID()
	if err := checkInput(org); err != nil {
		return nil, err
	}
	if err := s.insert(ctx, org.ID, org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (s *OrganizationService) Update(ctx context.Context, id bson.ObjectID, req dto.OrganizationUpdateRequest) (*models.Organization, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	org, fields := *current, bson.M{}
	err = errors.Join(
		assign(req.Name, "nombre", &org.Name, fields, false),
		assign(req.LegalRepresentative, "representanteLegal", &org.LegalRepresentative, fields, false),
		assign(req.Location, "ubicacion", &org.Location, fields, false),
		assign(req.EconomicSector, "sectorEconomico", &org.EconomicSector, fields, false),
		assign(req.MainActivity, "actividadPrincipal", &org.MainActivity, fields, false),
		assign(req.Phones, "telefonos", &org.Phones, fields, true),
	)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return current, nil
	}
	if err := checkInput(org); err != nil {
		return nil, err
	}
	if err := s.update(ctx, id, fields); err != nil {
		return nil, err
	}
	return &org, nil
}
