package rules

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"academic-events/internal/models"
)

var clockLayouts = []string{"15:04", "15:04:05"}

// parseClock returns the offset from midnight of an HH:MM[:SS] string.
func parseClock(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("%q is not a HH:MM time", s)
}

// window is a half-open same-day interval [start, end).
type window struct {
	start, end time.Duration
}

func (w window) overlaps(o window) bool {
	return w.start < o.end && w.end > o.start
}

func windowOf(r models.Realization) (window, error) {
	start, err := parseClock(r.StartTime)
	if err != nil {
		return window{}, err
	}
	end, err := parseClock(r.EndTime)
	if err != nil {
		return window{}, err
	}
	return window{start: start, end: end}, nil
}

// ValidateFacilityAvailability rejects a candidate whose window overlaps
// another event booked on the same date in any shared facility. Touching
// windows (one ends when the other starts) do not overlap.
func (v *Validator) ValidateFacilityAvailability(ctx context.Context, ev models.Event, exclude *bson.ObjectID) error {
	r := ev.Realization
	if strings.TrimSpace(r.StartTime) == "" || strings.TrimSpace(r.EndTime) == "" {
		return violation(ErrMissingTimeWindow, "start time and end time are required for the event")
	}
	candidate, err := windowOf(r)
	if err != nil {
		return violation(ErrInvalidTimeWindow, "invalid event time window: %v", err)
	}

	requested := make(map[string]struct{}, len(r.Facilities))
	for _, f := range r.Facilities {
		requested[f.FacilityID] = struct{}{}
	}

	sameDay, err := v.events.FindByDate(ctx, r.Date)
	if err != nil {
		return fmt.Errorf("load events on %s: %w", r.Date.Format(time.DateOnly), err)
	}

	for _, other := range sameDay {
		if exclude != nil && other.ID == *exclude {
			continue
		}
		for _, f := range other.Realization.Facilities {
			if _, shared := requested[f.FacilityID]; !shared {
				continue
			}
			booked, err := windowOf(other.Realization)
			if err != nil {
				return fmt.Errorf("event %s has an unreadable time window: %w", other.ID.Hex(), err)
			}
			if candidate.overlaps(booked) {
				return &FacilityConflictError{
					FacilityID: f.FacilityID,
					Date:       r.Date,
					Start:      other.Realization.StartTime,
					End:        other.Realization.EndTime,
					EventID:    other.ID,
				}
			}
		}
	}
	return nil
}
