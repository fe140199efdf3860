package rules

import (
	"context"
	"errors"
	"fmt"

	"academic-events/internal/models"
	"academic-events/internal/repository"
)

// organizerEligibility classifies a role for event organization. A vetoed
// role disqualifies the user whatever other roles they hold.
func organizerEligibility(r models.Role) (eligible, vetoed bool) {
	switch r {
	case models.RoleStudent, models.RoleLecturer:
		return true, false
	case models.RoleAcademicSecretary:
		return false, true
	}
	return false, false
}

// ValidateOrganizers checks organizers in list order and stops at the first
// one that cannot organize.
func (v *Validator) ValidateOrganizers(ctx context.Context, ev models.Event) error {
	for _, o := range ev.Organizers {
		user, err := v.users.Get(ctx, o.UserID)
		if errors.Is(err, repository.ErrNotFound) {
			return violation(ErrOrganizerNotFound, "user %d not found", o.UserID)
		}
		if err != nil {
			return fmt.Errorf("load organizer %d: %w", o.UserID, err)
		}

		eligible := false
		for role := range user.EffectiveRoles() {
			ok, vetoed := organizerEligibility(role)
			if vetoed {
				return violation(ErrOrganizerForbiddenRole,
					"user %s cannot organize events (role: %s)", user.FullName(), role)
			}
			eligible = eligible || ok
		}
		if !eligible {
			return violation(ErrOrganizerRoleRequired,
				"user %s must be an active student or lecturer to organize events", user.FullName())
		}
	}
	return nil
}

// ValidateEvaluator checks that the user exists and is an active academic
// secretary.
func (v *Validator) ValidateEvaluator(ctx context.Context, userID int) error {
	user, err := v.users.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return violation(ErrUserNotFound, "user %d not found", userID)
	}
	if err != nil {
		return fmt.Errorf("load evaluator %d: %w", userID, err)
	}
	if !user.EffectiveRoles().Has(models.RoleAcademicSecretary) {
		return violation(ErrEvaluatorRoleRequired, "only an academic secretary can evaluate events")
	}
	return nil
}
