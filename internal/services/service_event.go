package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"academic-events/dto"
	"academic-events/internal/booking"
	"academic-events/internal/metrics"
	"academic-events/internal/models"
	"academic-events/internal/repository"
	"academic-events/internal/rules"
)

type EventService struct {
	catalog[models.Event, bson.ObjectID]
	validator *rules.Validator
	locker    booking.Locker
}

func NewEventService(repos repository.Repositories, locker booking.Locker, log zerolog.Logger) *EventService {
	return &EventService{
		catalog:   newCatalog(repos.Events.Store, "event", log),
		validator: rules.NewValidator(repos.Users, repos.Events),
		locker:    locker,
	}
}

// lock holds every key until the returned func runs.
func (s *EventService) lock(ctx context.Context, keys []string) (func(), error) {
	start := time.Now()
	unlock, err := s.locker.Lock(ctx, keys)
	metrics.BookingLockWait.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("lock facilities: %w", err)
	}
	return unlock, nil
}

func (s *EventService) Create(ctx context.Context, req dto.EventRequest) (*models.Event, error) {
	ev := req.ToModel()
	ev.ID = bson.NewObjectID()
	if ev.Status == "" {
		ev.Status = models.EventRegistered
	}
	ev.Realization.Date = normalizeDate(ev.Realization.Date)

	if err := checkInput(ev); err != nil {
		return nil, err
	}

	unlock, err := s.lock(ctx, booking.Keys(ev.Realization))
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := s.validator.ValidateEvent(ctx, ev, nil); err != nil {
		return nil, rejected(s.entity, err)
	}
	if err := s.insert(ctx, ev.ID, ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func mergeEvent(ev models.Event, req dto.EventUpdateRequest) (models.Event, bson.M, error) {
	fields := bson.M{}
	err := errors.Join(
		assign(req.Name, "nombre", &ev.Name, fields, false),
		assign(req.Status, "estado", &ev.Status, fields, false),
		assign(req.Type, "tipo", &ev.Type, fields, false),
		assign(req.Realization, "realizacion", &ev.Realization, fields, false),
		assign(req.Organizers, "organizador", &ev.Organizers, fields, false),
		assign(req.Organizations, "organizacion", &ev.Organizations, fields, true),
		assign(req.Capacity, "capacidad", &ev.Capacity, fields, false),
	)
	if err != nil {
		return ev, nil, err
	}
	if _, ok := fields["realizacion"]; ok {
		ev.Realization.Date = normalizeDate(ev.Realization.Date)
		fields["realizacion"] = ev.Realization
	}
	return ev, fields, nil
}

// Update overlays the supplied fields on the stored event and re-runs every
// rule on the result, ignoring the event's own booking. The facilities of
// both the stored and the merged realization stay locked while the event is
// re-read, validated and written.
func (s *EventService) Update(ctx context.Context, id bson.ObjectID, req dto.EventUpdateRequest) (*models.Event, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	candidate, fields, err := s.prepareUpdate(*current, req)
	if err != nil {
		return nil, err
	}

	for len(fields) > 0 {
		held := booking.Keys(current.Realization, candidate.Realization)
		unlock, err := s.lock(ctx, held)
		if err != nil {
			return nil, err
		}
		fresh, retry, err := s.updateLocked(ctx, id, req, held)
		unlock()
		if !retry {
			return fresh, err
		}

		current = fresh
		if candidate, fields, err = s.prepareUpdate(*current, req); err != nil {
			return nil, err
		}
	}
	return current, nil
}

func (s *EventService) prepareUpdate(current models.Event, req dto.EventUpdateRequest) (*models.Event, bson.M, error) {
	candidate, fields, err := mergeEvent(current, req)
	if err != nil {
		return nil, nil, err
	}
	if len(fields) == 0 {
		return nil, nil, nil
	}
	if err := checkInput(candidate); err != nil {
		return nil, nil, err
	}
	return &candidate, fields, nil
}

// updateLocked re-reads the event under the held keys. When the fresh merge
// needs a key outside held it returns the fresh event with retry set.
func (s *EventService) updateLocked(ctx context.Context, id bson.ObjectID, req dto.EventUpdateRequest, held []string) (*models.Event, bool, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}
	candidate, fields, err := s.prepareUpdate(*current, req)
	if err != nil {
		return nil, false, err
	}
	if len(fields) == 0 {
		return current, false, nil
	}
	if !booking.Covers(held, booking.Keys(current.Realization, candidate.Realization)) {
		return current, true, nil
	}

	if err := s.validator.ValidateEvent(ctx, *candidate, &id); err != nil {
		return nil, false, rejected(s.entity, err)
	}
	if err := s.update(ctx, id, fields); err != nil {
		return nil, false, err
	}
	return candidate, false, nil
}
