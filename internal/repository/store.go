package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Store is the document store capability used by the services and rules.
//
// UpdateFields applies top-level field assignments; a nil value removes the
// field from the stored document.
type Store[T any, K comparable] interface {
	Find(ctx context.Context, filter bson.M) ([]T, error)
	Get(ctx context.Context, id K) (*T, error)
	Insert(ctx context.Context, doc T) error
	UpdateFields(ctx context.Context, id K, fields bson.M) error
	Delete(ctx context.Context, id K) error
}

// splitFields turns UpdateFields input into $set and $unset documents.
func splitFields(fields bson.M) (set bson.M, unset bson.M) {
	set, unset = bson.M{}, bson.M{}
	for k, v := range fields {
		if v == nil {
			unset[k] = ""
			continue
		}
		set[k] = v
	}
	return set, unset
}
