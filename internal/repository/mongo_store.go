package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type MongoStore[T any, K comparable] struct {
	col *mongo.Collection
}

func NewMongoStore[T any, K comparable](db *mongo.Database, collection string) *MongoStore[T, K] {
	return &MongoStore[T, K]{col: db.Collection(collection)}
}

func (s *MongoStore[T, K]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", s.col.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.col.Name(), err)
	}
	return docs, nil
}

func (s *MongoStore[T, K]) Get(ctx context.Context, id K) (*T, error) {
	var doc T
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get from %s: %w", s.col.Name(), err)
	}
	return &doc, nil
}

func (s *MongoStore[T, K]) Insert(ctx context.Context, doc T) error {
	_, err := s.col.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert into %s: %w", s.col.Name(), err)
	}
	return nil
}

func (s *MongoStore[T, K]) UpdateFields(ctx context.Context, id K, fields bson.M) error {
	set, unset := splitFields(fields)

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	if len(update) == 0 {
		n, err := s.col.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return fmt.Errorf("count in %s: %w", s.col.Name(), err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("update %s: %w", s.col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore[T, K]) Delete(ctx context.Context, id K) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", s.col.Name(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
