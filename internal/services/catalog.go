package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"

	"academic-events/internal/metrics"
	"academic-events/internal/repository"
)

// catalog holds the store plumbing every service shares.
type catalog[T any, K comparable] struct {
	store  repository.Store[T, K]
	entity string
	log    zerolog.Logger
}

func newCatalog[T any, K comparable](store repository.Store[T, K], entity string, log zerolog.Logger) catalog[T, K] {
	return catalog[T, K]{
		store:  store,
		entity: entity,
		log:    log.With().Str("entity", entity).Logger(),
	}
}

func (c catalog[T, K]) List(ctx context.Context) ([]T, error) {
	docs, err := c.store.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.entity, err)
	}
	return docs, nil
}

func (c catalog[T, K]) Get(ctx context.Context, id K) (*T, error) {
	doc, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get %s %v: %w", c.entity, id, err)
	}
	return doc, nil
}

func (c catalog[T, K]) Delete(ctx context.Context, id K) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s %v: %w", c.entity, id, err)
	}
	c.done("delete", id)
	return nil
}

func (c catalog[T, K]) insert(ctx context.Context, id K, doc T) error {
	if err := c.store.Insert(ctx, doc); err != nil {
		return fmt.Errorf("insert %s %v: %w", c.entity, id, err)
	}
	c.done("create", id)
	return nil
}

func (c catalog[T, K]) update(ctx context.Context, id K, fields bson.M) error {
	if err := c.store.UpdateFields(ctx, id, fields); err != nil {
		return fmt.Errorf("update %s %v: %w", c.entity, id, err)
	}
	c.done("update", id)
	return nil
}

func (c catalog[T, K]) done(op string, id K) {
	metrics.MutationsTotal.WithLabelValues(c.entity, op).Inc()
	c.log.Info().Str("op", op).Any("id", id).Msg(c.entity + " " + op + "d")
}
