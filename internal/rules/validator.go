package rules

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"academic-events/internal/models"
)

type UserFinder interface {
	Get(ctx context.Context, id int) (*models.User, error)
}

type EventFinder interface {
	FindByDate(ctx context.Context, date time.Time) ([]models.Event, error)
}

// Validator runs the rules that need stored users or events.
type Validator struct {
	users  UserFinder
	events EventFinder
}

func NewValidator(users UserFinder, events EventFinder) *Validator {
	return &Validator{users: users, events: events}
}

// ValidateEvent runs capacity, organizer and availability checks in that
// order and returns the first failure. exclude is the id of the event being
// updated, nil on create.
func (v *Validator) ValidateEvent(ctx context.Context, ev models.Event, exclude *bson.ObjectID) error {
	if err := ValidateCapacity(ev); err != nil {
		return err
	}
	if err := v.ValidateOrganizers(ctx, ev); err != nil {
		return err
	}
	return v.ValidateFacilityAvailability(ctx, ev, exclude)
}
