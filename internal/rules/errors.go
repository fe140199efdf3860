package rules

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrCapacityExceeded       = errors.New("capacity exceeded")
	ErrOrganizerNotFound      = errors.New("organizer not found")
	ErrOrganizerForbiddenRole = errors.New("organizer role forbidden")
	ErrOrganizerRoleRequired  = errors.New("organizer role required")
	ErrMissingTimeWindow      = errors.New("missing time window")
	ErrInvalidTimeWindow      = errors.New("invalid time window")
	ErrFacilityConflict       = errors.New("facility conflict")
	ErrUserNotFound           = errors.New("user not found")
	ErrEvaluatorRoleRequired  = errors.New("evaluator role required")
)

// Violation is a rejected rule. Kind is one of the sentinel errors above and
// is what errors.Is matches against.
type Violation struct {
	Kind    error
	Message string
}

func (v *Violation) Error() string { return v.Message }

func (v *Violation) Unwrap() error { return v.Kind }

func violation(kind error, format string, args ...any) *Violation {
	return &Violation{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// FacilityConflictError names the facility and the booked window that a
// candidate event overlaps.
type FacilityConflictError struct {
	FacilityID string
	Date       time.Time
	Start      string
	End        string
	EventID    bson.ObjectID
}

func (e *FacilityConflictError) Error() string {
	return fmt.Sprintf("facility %s is booked on %s between %s and %s",
		e.FacilityID, e.Date.Format(time.DateOnly), e.Start, e.End)
}

func (e *FacilityConflictError) Unwrap() error { return ErrFacilityConflict }

var codes = []struct {
	kind error
	code string
}{
	{ErrCapacityExceeded, "CapacityExceeded"},
	{ErrOrganizerNotFound, "OrganizerNotFound"},
	{ErrOrganizerForbiddenRole, "OrganizerForbiddenRole"},
	{ErrOrganizerRoleRequired, "OrganizerRoleRequired"},
	{ErrMissingTimeWindow, "MissingTimeWindow"},
	{ErrInvalidTimeWindow, "InvalidTimeWindow"},
	{ErrFacilityConflict, "FacilityConflict"},
	{ErrUserNotFound, "UserNotFound"},
	{ErrEvaluatorRoleRequired, "EvaluatorRoleRequired"},
}

// Code returns the kind name of a rule failure, or "" if err is not one.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.kind) {
			return c.code
		}
	}
	return ""
}
