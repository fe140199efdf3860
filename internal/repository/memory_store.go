package repository

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore keeps BSON-encoded documents in process. Filters support
// equality on top-level or dotted sub-document paths, which is all the
// services issue. It is safe for concurrent use.
type MemoryStore[T any, K comparable] struct {
	mu     sync.RWMutex
	order  []string
	docs   map[string]bson.Raw
	unique []string
}

// NewMemoryStore returns an empty store. uniqueFields mirrors the unique
// indexes created by bootstrap.EnsureIndexes.
func NewMemoryStore[T any, K comparable](uniqueFields ...string) *MemoryStore[T, K] {
	return &MemoryStore[T, K]{
		docs:   map[string]bson.Raw{},
		unique: uniqueFields,
	}
}

func valueKey(v any) (string, error) {
	t, data, err := bson.MarshalValue(v)
	if err != nil {
		return "", err
	}
	return string([]byte{byte(t)}) + string(data), nil
}

func rawKey(rv bson.RawValue) string {
	return string([]byte{byte(rv.Type)}) + string(rv.Value)
}

func lookup(raw bson.Raw, path string) (bson.RawValue, bool) {
	rv, err := raw.LookupErr(strings.Split(path, ".")...)
	if err != nil {
		return bson.RawValue{}, false
	}
	return rv, true
}

func matches(raw bson.Raw, filter bson.M) (bool, error) {
	for path, want := range filter {
		t, data, err := bson.MarshalValue(want)
		if err != nil {
			return false, fmt.Errorf("filter %s: %w", path, err)
		}
		got, ok := lookup(raw, path)
		if !ok || got.Type != t || !bytes.Equal(got.Value, data) {
			return false, nil
		}
	}
	return true, nil
}

// violatesUnique reports whether raw repeats a unique field value held by
// another document.
func (s *MemoryStore[T, K]) violatesUnique(raw bson.Raw, self string) bool {
	for _, field := range s.unique {
		v, ok := lookup(raw, field)
		if !ok {
			continue
		}
		for key, other := range s.docs {
			if key == self {
				continue
			}
			if ov, ok := lookup(other, field); ok && rawKey(ov) == rawKey(v) {
				return true
			}
		}
	}
	return false
}

func (s *MemoryStore[T, K]) Find(_ context.Context, filter bson.M) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []T{}
	for _, key := range s.order {
		raw := s.docs[key]
		ok, err := matches(raw, filter)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		var doc T
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		out = append(out, doc)
	}
	return out, nil
}

func (s *MemoryStore[T, K]) Get(_ context.Context, id K) (*T, error) {
	key, err := valueKey(id)
	if err != nil {
		return nil, fmt.Errorf("encode id: %w", err)
	}

	s.mu.RLock()
	raw, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var doc T
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &doc, nil
}

func (s *MemoryStore[T, K]) Insert(_ context.Context, doc T) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	raw := bson.Raw(data)

	idVal, ok := lookup(raw, "_id")
	if !ok {
		return fmt.Errorf("insert: document has no _id")
	}
	key := rawKey(idVal)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[key]; exists {
		return ErrDuplicate
	}
	if s.violatesUnique(raw, key) {
		return ErrDuplicate
	}
	s.docs[key] = raw
	s.order = append(s.order, key)
	return nil
}

func (s *MemoryStore[T, K]) UpdateFields(_ context.Context, id K, fields bson.M) error {
	key, err := valueKey(id)
	if err != nil {
		return fmt.Errorf("encode id: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.docs[key]
	if !ok {
		return ErrNotFound
	}

	var current bson.M
	if err := bson.Unmarshal(raw, &current); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	set, unset := splitFields(fields)
	for k, v := range set {
		current[k] = v
	}
	for k := range unset {
		delete(current, k)
	}

	data, err := bson.Marshal(current)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	var decoded T
	if err := bson.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("update does not fit document: %w", err)
	}
	if s.violatesUnique(data, key) {
		return ErrDuplicate
	}
	s.docs[key] = data
	return nil
}

func (s *MemoryStore[T, K]) Delete(_ context.Context, id K) error {
	key, err := valueKey(id)
	if err != nil {
		return fmt.Errorf("encode id: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[key]; !ok {
		return ErrNotFound
	}
	delete(s.docs, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
