// Package storage implements the clinic's record store: every collection is
// one JSON-serialized array persisted under a fixed key, replaced as a unit
// on each mutation. The Backend seam keeps the store injectable and lets the
// same CRUD operations run against memory, files, MySQL or Redis.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned when no record with the requested id exists.
var ErrNotFound = errors.New("record not found")

// Record is any entity that can live in a collection.
type Record interface {
	RecordID() string
}

// Backend persists one opaque blob per key. An absent key is not an error.
type Backend interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, data []byte) error
	Delete(key string) error
}

// Store is the handle through which all persistence happens. It serializes
// read-modify-write cycles so concurrent handlers cannot interleave partial
// collection writes.
type Store struct {
	mu      sync.RWMutex
	backend Backend
}

// New creates a Store over the given backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) load(key string, out any) error {
	data, ok, err := s.backend.Get(key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Set(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// GetAll returns every record of a collection in insertion order. An absent
// collection reads as empty.
func GetAll[T any](s *Store, key string) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var items []T
	if err := s.load(key, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns the record with the given id, or ErrNotFound.
func GetByID[T Record](s *Store, key, id string) (T, error) {
	var zero T
	items, err := GetAll[T](s, key)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if item.RecordID() == id {
			return item, nil
		}
	}
	return zero, fmt.Errorf("%s/%s: %w", key, id, ErrNotFound)
}

// Create appends the item to the collection and persists it. The caller must
// have set a collision-resistant id; no uniqueness check is performed.
func Create[T Record](s *Store, key string, item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []T
	if err := s.load(key, &items); err != nil {
		return item, err
	}
	items = append(items, item)
	if err := s.save(key, items); err != nil {
		return item, err
	}
	return item, nil
}

// Update shallow-merges the given fields into the record with the given id
// and returns the merged record, or ErrNotFound if the id is absent. Field
// names are the JSON keys of the persisted layout.
func Update[T Record](s *Store, key, id string, updates map[string]any) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []T
	if err := s.load(key, &items); err != nil {
		return zero, err
	}
	for i, item := range items {
		if item.RecordID() != id {
			continue
		}
		merged, err := merge(item, updates)
		if err != nil {
			return zero, fmt.Errorf("merge %s/%s: %w", key, id, err)
		}
		items[i] = merged
		if err := s.save(key, items); err != nil {
			return zero, err
		}
		return merged, nil
	}
	return zero, fmt.Errorf("%s/%s: %w", key, id, ErrNotFound)
}

// Delete removes the record with the given id and reports whether anything
// was removed.
func Delete[T Record](s *Store, key, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []T
	if err := s.load(key, &items); err != nil {
		return false, err
	}
	kept := items[:0]
	for _, item := range items {
		if item.RecordID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false, nil
	}
	if err := s.save(key, kept); err != nil {
		return false, err
	}
	return true, nil
}

// GetSingle reads a non-collection key (e.g. the session record) into out and
// reports whether the key existed.
func (s *Store) GetSingle(key string, out any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok, err := s.backend.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// PutSingle writes a non-collection key.
func (s *Store) PutSingle(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(key, v)
}

// Remove drops a key entirely.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Delete(key)
}

// Has reports whether a key holds any data.
func (s *Store) Has(key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok, err := s.backend.Get(key)
	return ok, err
}

// merge round-trips the record through its JSON form, overlaying the update
// fields on top. This keeps merge semantics identical to the persisted layout.
func merge[T any](item T, updates map[string]any) (T, error) {
	var zero T
	raw, err := json.Marshal(item)
	if err != nil {
		return zero, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return zero, err
	}
	for k, v := range updates {
		fields[k] = v
	}
	raw, err = json.Marshal(fields)
	if err != nil {
		return zero, err
	}
	var merged T
	if err := json.Unmarshal(raw, &merged); err != nil {
		return zero, err
	}
	return merged, nil
}
