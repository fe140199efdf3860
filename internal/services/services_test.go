package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"academic-events/dto"
	"academic-events/internal/booking"
	"academic-events/internal/models"
	"academic-events/internal/repository"
	"academic-events/internal/rules"
)

const (
	studentID   = 1
	secretaryID = 2
	lecturerID  = 3
)

var mayFirst = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func newRepos(t *testing.T) repository.Repositories {
	t.Helper()
	repos := repository.NewMemoryRepositories()
	ctx := context.Background()

	seed := []models.User{
		{ID: studentID, Name: "Laura", Email: "laura@uni.edu", Affiliations: []models.Affiliation{
			{Role: models.RoleStudent, Status: models.AffiliationActive},
		}},
		{ID: secretaryID, Name: "Marta", Email: "marta@uni.edu", Affiliations: []models.Affiliation{
			{Role: models.RoleAcademicSecretary, Status: models.AffiliationActive},
		}},
		{ID: lecturerID, Name: "Pedro", Email: "pedro@uni.edu", Affiliations: []models.Affiliation{
			{Role: models.RoleLecturer, Status: models.AffiliationActive},
		}},
	}
	for _, u := range seed {
		require.NoError(t, repos.Users.Insert(ctx, u))
	}
	return repos
}

func eventRequest(start, end string, facilities ...string) dto.EventRequest {
	bookings := make([]models.FacilityBooking, 0, len(facilities))
	for _, f := range facilities {
		bookings = append(bookings, models.FacilityBooking{FacilityID: f, FacilityCapacity: 50})
	}
	return dto.EventRequest{
		Name: "Semana de la ciencia",
		Type: models.EventAcademic,
		Realization: models.Realization{
			Facilities: bookings,
			Date:       mayFirst,
			StartTime:  start,
			EndTime:    end,
		},
		Organizers: []models.Organizer{{
			UserID:       studentID,
			ApprovalType: models.ApprovalProgramDirector,
			Role:         models.OrganizerPrimary,
		}},
		Capacity: 40,
	}
}

func TestEventCreate(t *testing.T) {
	repos := newRepos(t)
	svc := NewEventService(repos, booking.NewLocal(), zerolog.Nop())
	ctx := context.Background()

	ev, err := svc.Create(ctx, eventRequest("09:00", "10:00", "F"))
	require.NoError(t, err)
	assert.False(t, ev.ID.IsZero())
	assert.Equal(t, models.EventRegistered, ev.Status)

	stored, err := svc.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, "Semana de la ciencia", stored.Name)
	assert.True(t, mayFirst.Equal(stored.Realization.Date))
}

func TestEventCreateNormalizesDateZone(t *testing.T) {
	repos := newRepos(t)
	svc := NewEventService(repos, booking.NewLocal(), zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, eventRequest("09:00", "10:00", "F"))
	require.NoError(t, err)

	req := eventRequest("09:30", "10:30", "F")
	req.Realization.Date = mayFirst.In(time.FixedZone("COT", -5*60*60))
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, rules.ErrFacilityConflict)
}

func TestEventCreateRuleFailuresStoreNothing(t *testing.T) {
	cases := []struct {
		name string
		edit func(*dto.EventRequest)
		want error
	}{
		{"capacity", func(r *dto.EventRequest) { r.Capacity = 51 }, rules.ErrCapacityExceeded},
		{"secretary organizer", func(r *dto.EventRequest) { r.Organizers[0].UserID = secretaryID }, rules.ErrOrganizerForbiddenRole},
		{"unknown organizer", func(r *dto.EventRequest) { r.Organizers[0].UserID = 99 }, rules.ErrOrganizerNotFound},
		{"missing window", func(r *dto.EventRequest) { r.Realization.EndTime = "" }, rules.ErrMissingTimeWindow},
		{"bad window", func(r *dto.EventRequest) { r.Realization.StartTime = "nine" }, rules.ErrInvalidTimeWindow},
		{"bad enum", func(r *dto.EventRequest) { r.Type = "concierto" }, ErrInvalidInput},
		{"no name", func(r *dto.EventRequest) { r.Name = "" }, ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repos := newRepos(t)
			svc := NewEventService(repos, booking.NewLocal(), zerolog.Nop())

			req := eventRequest("09:00", "10:00", "F")
			tc.edit(&req)
			_, err := svc.Create(context.Background(), req)
			require.ErrorIs(t, err, tc.want)

			all, err := svc.List(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestEventUpdate(t *testing.T) {
	repos := newRepos(t)
	svc := NewEventService(repos, booking.NewLocal(), zerolog.Nop())
	ctx := context.Background()

	a, err := svc.Create(ctx, eventRequest("09:00", "10:00", "F"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, eventRequest("10:00", "11:00", "F"))
	require.NoError(t, err)

	// Own booking does not conflict.
	updated, err := svc.Update(ctx, a.ID, dto.EventUpdateRequest{Capacity: dto.Some(45)})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.Capacity)
	assert.Equal(t, a.Name, updated.Name)

	moved := b.Realization
	moved.StartTime, moved.EndTime = "09:30", "10:30"
	_, err = svc.Update(ctx, b.ID, dto.EventUpdateRequest{Realization: dto.Some(moved)})
	var conflict *rules.FacilityConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, a.ID, conflict.EventID)

	stored, err := svc.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00", stored.Realization.StartTime)
}

func TestEventUpdateRunsRulesOnMergedEvent(t *testing.T) {
	repos := newRepos(t)
	svc := NewEventService(repos, booking.NewLocal(), zerolog.Nop())
	ctx := context.Background()

	ev, err := svc.Create(ctx, eventRequest("09:00", "10:00", "F"))
	require.NoError(t, err)

	_, err = svc.Update(ctx, ev.ID, dto.EventUpdateRequest{Capacity: dto.Some(60)})
	require.ErrorIs(t, err, rules.ErrCapacityExceeded)

	_, err = svc.Update(ctx, ev.ID, dto.EventUpdateRequest{Organizers: dto.Some([]models.Organizer{{
		UserID:       lecturerID,
		ApprovalType: models.ApprovalTeachingDirector,
		Role:         models.OrganizerPrimary,
	}})})
	require.NoError(t, err)
}

func TestEventUpdateNulls(t *testing.T) {
	repos := newRepos(t)
	svc := NewEventService(repos, booking.NewLocal(), zerolog.Nop())
	ctx := context.Background()

	req := eventRequest("09:00", "10:00", "F")
	req.Organizations = []models.OrganizationParticipation{{
		OrganizationID:  bson.NewObjectID(),
		Participation:   models.ParticipationOther,
		ParticipantName: "Acme",
	}}
	ev, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Update(ctx, ev.ID, dto.EventUpdateRequest{Organizations: dto.Null[[]models.OrganizationParticipation]()})
	require.NoError(t, err)
	stored, err := svc.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Organizations)

	_, err = svc.Update(ctx, ev.ID, dto.EventUpdateRequest{Name: dto.Null[string]()})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEventUpdateAndDeleteMissing(t *testing.T) {
	svc := NewEventService(newRepos(t), booking.NewLocal(), zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Update(ctx, bson.NewObjectID(), dto.EventUpdateRequest{Capacity: dto.Some(1)})
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, bson.NewObjectID()), repository.ErrNotFound)
}

func TestConcurrentOverlappingCreates(t *testing.T) {
	repos := newRepos(t)
	svc := NewEventService(repos, booking.NewLocal(), zerolog.Nop())

	const n = 16
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), eventRequest("09:00", "10:00", "F", "G"))
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, rules.ErrFacilityConflict)
	}
	assert.Equal(t, 1, ok)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

// interleaveLocker runs before once, ahead of the first Lock, and records
// every key set it is asked for.
type interleaveLocker struct {
	booking.Locker
	before func()
	mu     sync.Mutex
	calls  [][]string
}

func (l *interleaveLocker) Lock(ctx context.Context, keys []string) (func(), error) {
	l.mu.Lock()
	l.calls = append(l.calls, keys)
	before := l.before
	l.before = nil
	l.mu.Unlock()

	if before != nil {
		before()
	}
	return l.Locker.Lock(ctx, keys)
}

func bookings(facilities ...string) models.Realization {
	return eventRequest("09:00", "10:00", facilities...).Realization
}

func TestEventUpdateRevalidatesStoredEventUnderLock(t *testing.T) {
	repos := newRepos(t)
	locker := &interleaveLocker{Locker: booking.NewLocal()}
	svc := NewEventService(repos, locker, zerolog.Nop())
	ctx := context.Background()

	ev, err := svc.Create(ctx, eventRequest("09:00", "10:00", "F", "G"))
	require.NoError(t, err)

	locker.before = func() {
		_, err := svc.Update(ctx, ev.ID, dto.EventUpdateRequest{Realization: dto.Some(bookings("F"))})
		require.NoError(t, err)
	}
	_, err = svc.Update(ctx, ev.ID, dto.EventUpdateRequest{Capacity: dto.Some(90)})
	require.ErrorIs(t, err, rules.ErrCapacityExceeded)

	stored, err := svc.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, stored.Capacity)
	require.Len(t, stored.Realization.Facilities, 1)
	assert.Equal(t, "F", stored.Realization.Facilities[0].FacilityID)
}

func TestEventUpdateRelocksWhenRealizationMoved(t *testing.T) {
	repos := newRepos(t)
	locker := &interleaveLocker{Locker: booking.NewLocal()}
	svc := NewEventService(repos, locker, zerolog.Nop())
	ctx := context.Background()

	ev, err := svc.Create(ctx, eventRequest("09:00", "10:00", "F", "G"))
	require.NoError(t, err)
	locker.calls = nil

	locker.before = func() {
		_, err := svc.Update(ctx, ev.ID, dto.EventUpdateRequest{Realization: dto.Some(bookings("H"))})
		require.NoError(t, err)
	}
	updated, err := svc.Update(ctx, ev.ID, dto.EventUpdateRequest{Capacity: dto.Some(45)})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.Capacity)
	assert.Equal(t, "H", updated.Realization.Facilities[0].FacilityID)

	require.Equal(t, [][]string{
		{"booking:F:2024-05-01", "booking:G:2024-05-01"},
		{"booking:F:2024-05-01", "booking:G:2024-05-01", "booking:H:2024-05-01"},
		{"booking:H:2024-05-01"},
	}, locker.calls)
}

func TestEvaluationCreate(t *testing.T) {
	repos := newRepos(t)
	svc := NewEvaluationService(repos, zerolog.Nop())
	svc.now = func() time.Time { return mayFirst }
	ctx := context.Background()

	req := dto.EvaluationRequest{
		Status:  models.EvaluationApproved,
		EventID: bson.NewObjectID(),
		UserID:  studentID,
	}
	_, err := svc.Create(ctx, req)
	require.ErrorIs(t, err, rules.ErrEvaluatorRoleRequired)

	req.UserID = 42
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, rules.ErrUserNotFound)

	req.UserID = secretaryID
	ev, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.True(t, mayFirst.Equal(ev.Date))

	req.Status = "pendiente"
	_, err = svc.Create(ctx, req)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluationUpdateIsNotReauthorized(t *testing.T) {
	repos := newRepos(t)
	svc := NewEvaluationService(repos, zerolog.Nop())
	ctx := context.Background()

	ev, err := svc.Create(ctx, dto.EvaluationRequest{
		Status:        models.EvaluationRejected,
		Justification: "sin aval",
		EventID:       bson.NewObjectID(),
		UserID:        secretaryID,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, ev.ID, dto.EvaluationUpdateRequest{
		UserID:        dto.Some(studentID),
		Justification: dto.Null[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, studentID, updated.UserID)

	stored, err := svc.Get(ctx, ev.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Justification)
	assert.Equal(t, models.EvaluationRejected, stored.Status)
}

func TestUserCreateHashesPasswords(t *testing.T) {
	repos := newRepos(t)
	svc := NewUserService(repos, zerolog.Nop())
	svc.cost = bcrypt.MinCost
	ctx := context.Background()

	resp, err := svc.Create(ctx, dto.UserRequest{
		ID:        10,
		Name:      "Sofia",
		Surname:   "Rios",
		Email:     "sofia@uni.edu",
		Passwords: []models.Password{{Hash: "s3cret"}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Passwords, 1)
	assert.Equal(t, models.PasswordActive, resp.Passwords[0].Status)

	stored, err := repos.Users.Get(ctx, 10)
	require.NoError(t, err)
	hash := []byte(stored.Passwords[0].Hash)
	assert.NotEqual(t, "s3cret", string(hash))
	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("s3cret")))
	assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("wrong")))
}

func TestUserCreateDuplicates(t *testing.T) {
	svc := NewUserService(newRepos(t), zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.UserRequest{ID: studentID, Name: "Otra", Surname: "Vez", Email: "otra@uni.edu"})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = svc.Create(ctx, dto.UserRequest{ID: 11, Name: "Otra", Surname: "Vez", Email: "laura@uni.edu"})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = svc.Create(ctx, dto.UserRequest{ID: 12, Name: "Otra", Surname: "Vez", Email: "not-an-email"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserUpdateRehashes(t *testing.T) {
	repos := newRepos(t)
	svc := NewUserService(repos, zerolog.Nop())
	svc.cost = bcrypt.MinCost
	ctx := context.Background()

	_, err := svc.Update(ctx, studentID, dto.UserUpdateRequest{
		Surname:   dto.Some("Gomez"),
		Passwords: dto.Some([]models.Password{{Hash: "nueva"}}),
	})
	require.NoError(t, err)

	stored, err := repos.Users.Get(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, stored.Passwords, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Passwords[0].Hash), []byte("nueva")))

	u, err := svc.GetUser(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, "Gomez", u.Surname)
	assert.Len(t, u.Affiliations, 1)
}

func TestFacilityService(t *testing.T) {
	svc := NewFacilityService(newRepos(t), zerolog.Nop())
	ctx := context.Background()

	f := models.Facility{ID: "A-101", Location: "Bloque A", Type: models.FacilityRoom, Capacity: 30}
	_, err := svc.Create(ctx, f)
	require.NoError(t, err)

	_, err = svc.Create(ctx, f)
	require.ErrorIs(t, err, repository.ErrDuplicate)

	_, err = svc.Update(ctx, "A-101", dto.FacilityUpdateRequest{Capacity: dto.Some(0)})
	require.ErrorIs(t, err, ErrInvalidInput)

	updated, err := svc.Update(ctx, "A-101", dto.FacilityUpdateRequest{Type: dto.Some(models.FacilityLaboratory)})
	require.NoError(t, err)
	assert.Equal(t, models.FacilityLaboratory, updated.Type)

	require.NoError(t, svc.Delete(ctx, "A-101"))
	_, err = svc.Get(ctx, "A-101")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOrganizationService(t *testing.T) {
	svc := NewOrganizationService(newRepos(t), zerolog.Nop())
	ctx := context.Background()

	org, err := svc.Create(ctx, dto.OrganizationRequest{
		Name:                "Acme",
		LegalRepresentative: "Ana Ruiz",
		Location:            models.Address{Street: "Calle 1", City: "Cali"},
		EconomicSector:      "Tecnologia",
		MainActivity:        "Software",
		Phones:              []string{"555-0101"},
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, org.ID, dto.OrganizationUpdateRequest{Phones: dto.Null[[]string]()})
	require.NoError(t, err)

	stored, err := svc.Get(ctx, org.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Phones)
	assert.Equal(t, "Cali", stored.Location.City)
}

func TestFacultyServiceAssignsIDs(t *testing.T) {
	svc := NewFacultyService(newRepos(t), zerolog.Nop())
	ctx := context.Background()

	fac, err := svc.Create(ctx, dto.FacultyRequest{
		Name:  "Ingenieria",
		Units: []models.AcademicUnit{{Name: "Sistemas"}},
	})
	require.NoError(t, err)
	require.Len(t, fac.Units, 1)
	assert.False(t, fac.Units[0].ID.IsZero())

	updated, err := svc.Update(ctx, fac.ID, dto.FacultyUpdateRequest{
		Programs: dto.Some([]models.Program{{Name: "Ingenieria de Software"}}),
	})
	require.NoError(t, err)
	require.Len(t, updated.Programs, 1)

	stored, err := svc.Get(ctx, fac.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Programs[0].ID, stored.Programs[0].ID)
}

func TestInvalidInputMessageUsesWireNames(t *testing.T) {
	err := checkInput(models.Facility{ID: "X", Location: "Y", Type: "piscina", Capacity: 1})
	require.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "tipo failed on enum")
}
