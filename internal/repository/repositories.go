package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"academic-events/database"
	"academic-events/internal/models"
)

// EventRepository adds the same-day lookup used by the availability rule.
type EventRepository struct {
	Store[models.Event, bson.ObjectID]
}

// FindByDate returns the events whose realization date equals date exactly.
func (r EventRepository) FindByDate(ctx context.Context, date time.Time) ([]models.Event, error) {
	return r.Find(ctx, bson.M{"realizacion.fecha": date})
}

type Repositories struct {
	Events        EventRepository
	Users         Store[models.User, int]
	Facilities    Store[models.Facility, string]
	Organizations Store[models.Organization, bson.ObjectID]
	Faculties     Store[models.Faculty, bson.ObjectID]
	Evaluations   Store[models.Evaluation, bson.ObjectID]
}

func NewMongoRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Events:        EventRepository{NewMongoStore[models.Event, bson.ObjectID](db, database.CollectionEvents)},
		Users:         NewMongoStore[models.User, int](db, database.CollectionUsers),
		Facilities:    NewMongoStore[models.Facility, string](db, database.CollectionFacilities),
		Organizations: NewMongoStore[models.Organization, bson.ObjectID](db, database.CollectionOrganizations),
		Faculties:     NewMongoStore[models.Faculty, bson.ObjectID](db, database.CollectionFaculties),
		Evaluations:   NewMongoStore[models.Evaluation, bson.ObjectID](db, database.CollectionEvaluations),
	}
}

func NewMemoryRepositories() Repositories {
	return Repositories{
		Events:        EventRepository{NewMemoryStore[models.Event, bson.ObjectID]()},
		Users:         NewMemoryStore[models.User, int]("email"),
		Facilities:    NewMemoryStore[models.Facility, string](),
		Organizations: NewMemoryStore[models.Organization, bson.ObjectID](),
		Faculties:     NewMemoryStore[models.Faculty, bson.ObjectID](),
		Evaluations:   NewMemoryStore[models.Evaluation, bson.ObjectID](),
	}
}
