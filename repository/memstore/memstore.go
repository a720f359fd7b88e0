/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memstore

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/suparena/crudstore/errors"
	"github.com/suparena/crudstore/registry"
	"github.com/suparena/crudstore/repository"
)

// record pairs a stored entity with its insertion sequence. The sequence
// survives overwrites and updates, so a record's position in unsorted
// listings never moves once it exists.
type record[E any] struct {
	entity E
	seq    uint64
}

// Store is the reference in-memory implementation of
// repository.Repository[I, E], backed by a process-local map.
//
// Save overwrites an existing record with the same id unless the store was
// built with RejectDuplicates. The identity key doubles as the sort
// dimension for FindAllSorted, which is why I is constrained to cmp.Ordered
// rather than just comparable.
//
// All methods are safe for concurrent use: reads take a shared lock,
// mutations an exclusive one. Entities move in and out by value, so callers
// can mutate what they get back without touching the stored copy.
type Store[I cmp.Ordered, E repository.Entity[I]] struct {
	mu               sync.RWMutex
	records          map[I]record[E]
	nextSeq          uint64
	rejectDuplicates bool
}

type settings struct {
	rejectDuplicates bool
}

// Option configures a Store at construction time.
type Option func(*settings)

// RejectDuplicates switches Save from overwrite to insert-only semantics:
// saving an id that is already present fails with a duplicate-id error.
// This diverges from the default upsert behavior of the contract's Save.
func RejectDuplicates() Option {
	return func(s *settings) {
		s.rejectDuplicates = true
	}
}

// New constructs an empty Store for entities of type E keyed by I.
func New[I cmp.Ordered, E repository.Entity[I]](opts ...Option) *Store[I, E] {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Store[I, E]{
		records:          make(map[I]record[E]),
		rejectDuplicates: cfg.rejectDuplicates,
	}
}

// Save stores the entity keyed by its id. An existing record with the same
// id is overwritten in place, keeping its insertion position; with
// RejectDuplicates it fails with a duplicate-id error instead.
func (s *Store[I, E]) Save(_ context.Context, entity E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.GetID()
	if existing, ok := s.records[id]; ok {
		if s.rejectDuplicates {
			return errors.NewDuplicateIDError(s.entityType(), fmt.Sprint(id))
		}
		s.records[id] = record[E]{entity: entity, seq: existing.seq}
		return nil
	}

	s.records[id] = record[E]{entity: entity, seq: s.nextSeq}
	s.nextSeq++
	return nil
}

// FindByID returns a copy of the entity stored under id, or a not-found
// error when no such record exists.
func (s *Store[I, E]) FindByID(_ context.Context, id I) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		var zero E
		return zero, errors.NewNotFoundError(s.entityType(), fmt.Sprint(id))
	}
	return rec.entity, nil
}

// FindAll returns the requested page of entities in insertion order. Pages
// beyond the end of the collection yield an empty slice, never an error.
func (s *Store[I, E]) FindAll(_ context.Context, page repository.Page) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return paginate(s.inInsertionOrder(), page), nil
}

// FindAllSorted reorders the whole collection by identity key — Ascending is
// smallest-first, Descending its exact reverse — and then slices out the
// requested page. Ids are unique, so the ordering is total and repeated
// calls paginate without duplicating or skipping records.
func (s *Store[I, E]) FindAllSorted(_ context.Context, page repository.Page, sort repository.Sort) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entities := s.inInsertionOrder()
	slices.SortStableFunc(entities, func(a, b E) int {
		return cmp.Compare(a.GetID(), b.GetID())
	})
	if sort == repository.Descending {
		slices.Reverse(entities)
	}
	return paginate(entities, page), nil
}

// Update replaces the stored entity wholesale. It fails with a not-found
// error when no record with the entity's id exists, and it never changes the
// record's insertion position.
func (s *Store[I, E]) Update(_ context.Context, entity E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.GetID()
	rec, ok := s.records[id]
	if !ok {
		return errors.NewNotFoundError(s.entityType(), fmt.Sprint(id))
	}
	s.records[id] = record[E]{entity: entity, seq: rec.seq}
	return nil
}

// RemoveByID deletes the record stored under id, failing with a not-found
// error when it is absent.
func (s *Store[I, E]) RemoveByID(_ context.Context, id I) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return errors.NewNotFoundError(s.entityType(), fmt.Sprint(id))
	}
	delete(s.records, id)
	return nil
}

// Remove deletes the record whose id the entity reports. Stored field values
// are not compared; the call is equivalent to RemoveByID(entity.GetID()).
func (s *Store[I, E]) Remove(ctx context.Context, entity E) error {
	return s.RemoveByID(ctx, entity.GetID())
}

// Len reports the number of stored records.
func (s *Store[I, E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// inInsertionOrder snapshots the collection sorted by insertion sequence.
// Callers must hold at least the read lock.
func (s *Store[I, E]) inInsertionOrder() []E {
	recs := make([]record[E], 0, len(s.records))
	for _, rec := range s.records {
		recs = append(recs, rec)
	}
	slices.SortFunc(recs, func(a, b record[E]) int {
		return cmp.Compare(a.seq, b.seq)
	})

	entities := make([]E, len(recs))
	for i, rec := range recs {
		entities[i] = rec.entity
	}
	return entities
}

func (s *Store[I, E]) entityType() string {
	if name, ok := registry.TypeName[E](); ok {
		return name
	}
	var zero E
	return fmt.Sprintf("%T", zero)
}

// paginate slices [offset, offset+size) out of entities, clipped to the
// collection's bounds. Page fields are exported, so a negative number or
// size built as a raw struct literal must degrade to an empty page rather
// than a slice panic.
func paginate[E any](entities []E, page repository.Page) []E {
	offset := page.Offset()
	if page.Size <= 0 || offset < 0 || offset >= len(entities) {
		return []E{}
	}

	end := offset + page.Size
	if end > len(entities) {
		end = len(entities)
	}
	return entities[offset:end]
}
