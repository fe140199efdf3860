package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"academic-events/dto"
	"academic-events/internal/models"
	"academic-events/internal/repository"
	"academic-events/internal/rules"
)

type EvaluationService struct {
	catalog[models.Evaluation, bson.ObjectID]
	validator *rules.Validator
	now       func() time.Time
}

func NewEvaluationService(repos repository.Repositories, log zerolog.Logger) *EvaluationService {
	return &EvaluationService{
		catalog:   newCatalog(repos.Evaluations, "evaluation", log),
		validator: rules.NewValidator(repos.Users, repos.Events),
		now:       time.Now,
	}
}

// Create stores an evaluation made by an active academic secretary. The
// referenced event is not required to exist.
func (s *EvaluationService) Create(ctx context.Context, req dto.EvaluationRequest) (*models.Evaluation, error) {
	ev := req.ToModel()
	ev.ID = bson.NewObjectID()
	if ev.Date.IsZero() {
		ev.Date = s.now()
	}
	ev.Date = normalizeDate(ev.Date)

	if err := checkInput(ev); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateEvaluator(ctx, ev.UserID); err != nil {
		return nil, rejected(s.entity, err)
	}
	if err := s.insert(ctx, ev.ID, ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// Update does not re-check the evaluator, even when usuarioId changes.
func (s *EvaluationService) Update(ctx context.Context, id bson.ObjectID, req dto.EvaluationUpdateRequest) (*models.Evaluation, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ev, fields := *current, bson.M{}
	err = errors.Join(
		assign(req.Status, "estado", &ev.Status, fields, false),
		assign(req.DateValue(), "fechaEvaluacion", &ev.Date, fields, false),
		assign(req.Justification, "justificacion", &ev.Justification, fields, true),
		assign(req.ApprovalRecord, "actaAprovacion", &ev.ApprovalRecord, fields, true),
		assign(req.EventID, "eventoId", &ev.EventID, fields, false),
		assign(req.UserID, "usuarioId", &ev.UserID, fields, false),
	)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return current, nil
	}
	if _, ok := fields["fechaEvaluacion"]; ok {
		ev.Date = normalizeDate(ev.Date)
		fields["fechaEvaluacion"] = ev.Date
	}
	if err := checkInput(ev); err != nil {
		return nil, err
	}
	if err := s.update(ctx, id, fields); err != nil {
		return nil, err
	}
	return &ev, nil
}
