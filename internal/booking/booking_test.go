package booking

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academic-events/internal/models"
)

func TestKeys(t *testing.T) {
	r := models.Realization{
		Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Facilities: []models.FacilityBooking{
			{FacilityID: "B"}, {FacilityID: "A"}, {FacilityID: "B"},
		},
	}
	require.Equal(t, []string{"booking:A:2024-05-01", "booking:B:2024-05-01"}, Keys(r))
	require.Empty(t, Keys(models.Realization{}))

	moved := models.Realization{
		Date:       time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Facilities: []models.FacilityBooking{{FacilityID: "A"}},
	}
	require.Equal(t, []string{
		"booking:A:2024-05-01", "booking:A:2024-05-02", "booking:B:2024-05-01",
	}, Keys(r, moved))
}

func TestCovers(t *testing.T) {
	held := []string{"booking:A:2024-05-01", "booking:B:2024-05-01"}
	require.True(t, Covers(held, []string{"booking:B:2024-05-01"}))
	require.True(t, Covers(held, nil))
	require.False(t, Covers(held, []string{"booking:A:2024-05-01", "booking:C:2024-05-01"}))
}

func TestLocalSerializesSameKey(t *testing.T) {
	l := NewLocal()
	keys := []string{"booking:A:2024-05-01"}

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), keys)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()
	require.Equal(t, int32(1), maxInside)
}

func TestLocalTimesOutAndRollsBack(t *testing.T) {
	l := NewLocal()

	unlock, err := l.Lock(context.Background(), []string{"b"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, []string{"a", "b"})
	require.ErrorIs(t, err, ErrBusy)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// "a" was released when "b" could not be taken.
	unlockA, err := l.Lock(context.Background(), []string{"a"})
	require.NoError(t, err)
	unlockA()

	unlock()
	unlock()

	unlockB, err := l.Lock(context.Background(), []string{"b"})
	require.NoError(t, err)
	unlockB()
}

func TestLocalIndependentKeys(t *testing.T) {
	l := NewLocal()

	unlockA, err := l.Lock(context.Background(), []string{"a"})
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	unlockB, err := l.Lock(ctx, []string{"b"})
	require.NoError(t, err)
	unlockB()
}
