package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"academic-events/internal/models"
)

func sampleEvent(date time.Time, facility string) models.Event {
	return models.Event{
		ID:     bson.NewObjectID(),
		Name:   "Semana de la ingenieria",
		Status: models.EventRegistered,
		Type:   models.EventAcademic,
		Realization: models.Realization{
			Facilities: []models.FacilityBooking{{FacilityID: facility, FacilityCapacity: 40}},
			Date:       date,
			StartTime:  "09:00",
			EndTime:    "10:00",
		},
		Organizers: []models.Organizer{{UserID: 7, ApprovalType: models.ApprovalProgramDirector, Role: models.OrganizerPrimary}},
		Capacity:   30,
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[models.Event, bson.ObjectID]()

	ev := sampleEvent(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "F1")
	require.NoError(t, store.Insert(ctx, ev))
	require.ErrorIs(t, store.Insert(ctx, ev), ErrDuplicate)

	got, err := store.Get(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, ev.Name, got.Name)
	require.Equal(t, ev.Realization.Facilities, got.Realization.Facilities)

	require.NoError(t, store.UpdateFields(ctx, ev.ID, bson.M{"nombre": "Feria", "capacidad": 10}))
	got, err = store.Get(ctx, ev.ID)
	require.NoError(t, err)
	require.Equal(t, "Feria", got.Name)
	require.Equal(t, 10, got.Capacity)
	require.Equal(t, ev.Realization.StartTime, got.Realization.StartTime)

	require.NoError(t, store.Delete(ctx, ev.ID))
	_, err = store.Get(ctx, ev.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, store.Delete(ctx, ev.ID), ErrNotFound)
	require.ErrorIs(t, store.UpdateFields(ctx, ev.ID, bson.M{"nombre": "x"}), ErrNotFound)
}

func TestMemoryStoreUnsetField(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[models.Evaluation, bson.ObjectID]()

	ev := models.Evaluation{
		ID:            bson.NewObjectID(),
		Status:        models.EvaluationApproved,
		Date:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Justification: "cumple requisitos",
		EventID:       bson.NewObjectID(),
		UserID:        3,
	}
	require.NoError(t, store.Insert(ctx, ev))
	require.NoError(t, store.UpdateFields(ctx, ev.ID, bson.M{"justificacion": nil}))

	got, err := store.Get(ctx, ev.ID)
	require.NoError(t, err)
	require.Empty(t, got.Justification)
	require.Equal(t, ev.EventID, got.EventID)
}

func TestMemoryStoreFindByDottedPath(t *testing.T) {
	ctx := context.Background()
	repo := EventRepository{NewMemoryStore[models.Event, bson.ObjectID]()}

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, sampleEvent(day, "F1")))
	require.NoError(t, repo.Insert(ctx, sampleEvent(day, "F2")))
	require.NoError(t, repo.Insert(ctx, sampleEvent(day.AddDate(0, 0, 1), "F1")))

	same, err := repo.FindByDate(ctx, day)
	require.NoError(t, err)
	require.Len(t, same, 2)

	none, err := repo.FindByDate(ctx, day.Add(time.Hour))
	require.NoError(t, err)
	require.Empty(t, none)

	all, err := repo.Find(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestMemoryStoreUniqueFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[models.User, int]("email")

	require.NoError(t, store.Insert(ctx, models.User{ID: 1, Name: "Ana", Email: "ana@uni.edu"}))
	require.NoError(t, store.Insert(ctx, models.User{ID: 2, Name: "Luis", Email: "luis@uni.edu"}))
	require.ErrorIs(t, store.Insert(ctx, models.User{ID: 3, Email: "ana@uni.edu"}), ErrDuplicate)

	require.ErrorIs(t, store.UpdateFields(ctx, 2, bson.M{"email": "ana@uni.edu"}), ErrDuplicate)
	require.NoError(t, store.UpdateFields(ctx, 1, bson.M{"email": "ana@uni.edu"}))

	got, err := store.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "luis@uni.edu", got.Email)
}

func TestMemoryStoreConcurrentInsert(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[models.Facility, string]()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- store.Insert(ctx, models.Facility{ID: "AUD-1", Location: "Bloque A", Type: models.FacilityAuditorium, Capacity: 200})
		}()
	}
	wg.Wait()
	close(errs)

	var ok int
	for err := range errs {
		if err == nil {
			ok++
		}
	}
	require.Equal(t, 1, ok)
}

func TestSplitFields(t *testing.T) {
	set, unset := splitFields(bson.M{"nombre": "x", "organizacion": nil})
	require.Equal(t, bson.M{"nombre": "x"}, set)
	require.Equal(t, bson.M{"organizacion": ""}, unset)
}
