package rules

import "academic-events/internal/models"

// ValidateCapacity rejects events that declare more attendees than their
// booked facilities hold together.
func ValidateCapacity(ev models.Event) error {
	total := 0
	for _, f := range ev.Realization.Facilities {
		total += f.FacilityCapacity
	}
	if ev.Capacity > total {
		return violation(ErrCapacityExceeded,
			"event capacity (%d) exceeds the total capacity of its facilities (%d)", ev.Capacity, total)
	}
	return nil
}
