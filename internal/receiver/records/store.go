// Package records provides an in-memory record store receiver and the
// commands that modify it.
package records

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Errors returned by Store operations.
var (
	// ErrDuplicate indicates the record already exists.
	ErrDuplicate = errors.New("record already exists")

	// ErrNotFound indicates the record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrEmpty indicates an empty record value.
	ErrEmpty = errors.New("empty record")
)

// Store is an ordered set of string records. It is safe for concurrent use
// so queued commands and callers may share it.
type Store struct {
	mu      sync.RWMutex
	records []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Add appends a record.
func (s *Store) Add(record string) error {
	if record == "" {
		return ErrEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.records, record) {
		return fmt.Errorf("add %q: %w", record, ErrDuplicate)
	}
	s.records = append(s.records, record)
	return nil
}

// Insert places a record at index, clamped to the store bounds.
func (s *Store) Insert(index int, record string) error {
	if record == "" {
		return ErrEmpty
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.records, record) {
		return fmt.Errorf("insert %q: %w", record, ErrDuplicate)
	}
	index = max(0, min(index, len(s.records)))
	s.records = slices.Insert(s.records, index, record)
	return nil
}

// Remove deletes a record and returns the index it occupied.
func (s *Store) Remove(record string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.Index(s.records, record)
	if i < 0 {
		return -1, fmt.Errorf("remove %q: %w", record, ErrNotFound)
	}
	s.records = slices.Delete(s.records, i, i+1)
	return i, nil
}

// Contains reports whether the record exists.
func (s *Store) Contains(record string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.records, record)
}

// Records returns a copy of all records in order.
func (s *Store) Records() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
