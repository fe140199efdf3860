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

type FacultyService struct {
	catalog[models.Faculty, bson.ObjectID]
}

func NewFacultyService(repos repository.Repositories, log zerolog.Logger) *FacultyService {
	return &FacultyService{catalog: newCatalog(repos.Faculties, "faculty", log)}
}

func (s *FacultyService) Create(ctx context.Context, req dto.FacultyRequest) (*models.Faculty, error) {
	fac := req.ToModel()
	fac.ID = bson.NewObjectID()
	fac.AssignMissingIDs()
	if err := checkInput(fac); err != nil {
		return nil, err
	}
	if err := s.insert(ctx, fac.ID, fac); err != nil {
		return nil, err
	}
	return &fac, nil
}

func (s *FacultyService) Update(ctx context.Context, id bson.ObjectID, req dto.FacultyUpdateRequest) (*models.Faculty, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fac, fields := *current, bson.M{}
	err = errors.Join(
		assign(req.Name, "nombre", &fac.Name, fields, false),
		assign(req.Units, "unidadAcademica", &fac.Units, fields, false),
		assign(req.Programs, "programa", &fac.Programs, fields, false),
	)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return current, nil
	}

	fac.AssignMissingIDs()
	if _, ok := fields["unidadAcademica"]; ok {
		fields["unidadAcademica"] = fac.Units
	}
	if _, ok := fields["programa"]; ok {
		fields["programa"] = fac.Programs
	}
	if err := checkInput(fac); err != nil {
		return nil, err
	}
	if err := s.update(ctx, id, fields); err != nil {
		return nil, err
	}
	return &fac, nil
}
