/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a mock implementation of the Repository contract for testing
package mock

import (
	"cmp"
	"context"

	"github.com/suparena/crudstore/repository"
	"github.com/suparena/crudstore/repository/memstore"
)

// Repository is a mock implementation of repository.Repository[I, E] for
// testing consumers. It behaves like the in-memory reference store until an
// injected error makes a specific operation fail.
type Repository[I cmp.Ordered, E repository.Entity[I]] struct {
	store *memstore.Store[I, E]

	saveError   error
	findError   error
	listError   error
	updateError error
	removeError error
}

// New creates a new mock Repository
func New[I cmp.Ordered, E repository.Entity[I]]() *Repository[I, E] {
	return &Repository[I, E]{
		store: memstore.New[I, E](),
	}
}

// WithSaveError makes Save operations return an error
func (m *Repository[I, E]) WithSaveError(err error) *Repository[I, E] {
	m.saveError = err
	return m
}

// WithFindError makes FindByID operations return an error
func (m *Repository[I, E]) WithFindError(err error) *Repository[I, E] {
	m.findError = err
	return m
}

// WithListError makes FindAll and FindAllSorted operations return an error
func (m *Repository[I, E]) WithListError(err error) *Repository[I, E] {
	m.listError = err
	return m
}

// WithUpdateError makes Update operations return an error
func (m *Repository[I, E]) WithUpdateError(err error) *Repository[I, E] {
	m.updateError = err
	return m
}

// WithRemoveError makes Remove and RemoveByID operations return an error
func (m *Repository[I, E]) WithRemoveError(err error) *Repository[I, E] {
	m.removeError = err
	return m
}

// Save stores the entity unless a save error is injected
func (m *Repository[I, E]) Save(ctx context.Context, entity E) error {
	if m.saveError != nil {
		return m.saveError
	}
	return m.store.Save(ctx, entity)
}

// FindByID retrieves an entity unless a find error is injected
func (m *Repository[I, E]) FindByID(ctx context.Context, id I) (E, error) {
	if m.findError != nil {
		var zero E
		return zero, m.findError
	}
	return m.store.FindByID(ctx, id)
}

// FindAll lists a page of entities unless a list error is injected
func (m *Repository[I, E]) FindAll(ctx context.Context, page repository.Page) ([]E, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.store.FindAll(ctx, page)
}

// FindAllSorted lists a sorted page of entities unless a list error is injected
func (m *Repository[I, E]) FindAllSorted(ctx context.Context, page repository.Page, sort repository.Sort) ([]E, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.store.FindAllSorted(ctx, page, sort)
}

// Update replaces a stored entity unless an update error is injected
func (m *Repository[I, E]) Update(ctx context.Context, entity E) error {
	if m.updateError != nil {
		return m.updateError
	}
	return m.store.Update(ctx, entity)
}

// RemoveByID deletes a stored entity unless a remove error is injected
func (m *Repository[I, E]) RemoveByID(ctx context.Context, id I) error {
	if m.removeError != nil {
		return m.removeError
	}
	return m.store.RemoveByID(ctx, id)
}

// Remove deletes the entity by its derived id unless a remove error is injected
func (m *Repository[I, E]) Remove(ctx context.Context, entity E) error {
	if m.removeError != nil {
		return m.removeError
	}
	return m.store.Remove(ctx, entity)
}

// Len reports the number of stored records
func (m *Repository[I, E]) Len() int {
	return m.store.Len()
}
