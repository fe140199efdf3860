// Package booking serializes writers that book the same facility on the
// same date, so the availability check and the store write of one request
// cannot interleave with another's.
package booking

import (
	"context"
	"errors"
	"slices"
	"time"

	"academic-events/internal/models"
)

// ErrBusy is returned when a lock could not be taken before the context ended.
var ErrBusy = errors.New("booking in progress")

type Locker interface {
	// Lock acquires every key and returns a function releasing them all.
	Lock(ctx context.Context, keys []string) (unlock func(), err error)
}

// Keys returns the sorted, de-duplicated lock keys of the realizations.
func Keys(rs ...models.Realization) []string {
	var keys []string
	for _, r := range rs {
		day := r.Date.UTC().Format(time.DateOnly)
		for _, f := range r.Facilities {
			keys = append(keys, "booking:"+f.FacilityID+":"+day)
		}
	}
	slices.Sort(keys)
	return slices.Compact(keys)
}

// Covers reports whether every key of want is in held. Both must be sorted.
func Covers(held, want []string) bool {
	for _, k := range want {
		if _, ok := slices.BinarySearch(held, k); !ok {
			return false
		}
	}
	return true
}
