package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"academic-events/database"
)

// EnsureIndexes creates the secondary indexes the API relies on.
// Creating an index that already exists with the same spec is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	specs := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			// same-day lookups of the facility availability rule
			collection: database.CollectionEvents,
			model: mongo.IndexModel{
				Keys: bson.D{
					{Key: "realizacion.fecha", Value: 1},
					{Key: "realizacion.instalaciones.instalacionId", Value: 1},
				},
				Options: options.Index().SetName("realizacion_fecha_instalacion"),
			},
		},
		{
			collection: database.CollectionUsers,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email"),
			},
		},
		{
			collection: database.CollectionEvaluations,
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "eventoId", Value: 1}},
				Options: options.Index().SetName("evento_id"),
			},
		},
	}

	names := make([]string, 0, len(specs))
	for _, s := range specs {
		name, err := db.Collection(s.collection).Indexes().CreateOne(ctx, s.model)
		if err != nil {
			return names, fmt.Errorf("create index on %s: %w", s.collection, err)
		}
		names = append(names, s.collection+"."+name)
	}
	return names, nil
}
