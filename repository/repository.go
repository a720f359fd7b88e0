/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package repository

import "context"

// Creator is the ability to persist an entity keyed by its id.
//
// Whether Save overwrites an existing record with the same id (upsert) or
// rejects it with a duplicate-id error is a backend policy; each backend
// documents its choice. The reference memstore backend overwrites.
type Creator[I comparable, E Entity[I]] interface {
	Save(ctx context.Context, entity E) error
}

// Finder is the ability to retrieve a single entity by its id.
//
// FindByID returns a copy of the stored entity; mutating the returned value
// never affects the store. Absence is reported as a not-found error.
type Finder[I comparable, E Entity[I]] interface {
	FindByID(ctx context.Context, id I) (E, error)
}

// Lister is the ability to list entities with pagination and sorting.
//
// Both methods are read-only. An empty or out-of-range page yields an empty
// slice, never an error — a short collection is a normal outcome, not a
// failure. FindAll uses the backend's natural total order (insertion order
// for memstore); FindAllSorted reorders the full collection by the identity
// key in the given direction before slicing, unless the backend documents a
// different sort dimension.
type Lister[I comparable, E Entity[I]] interface {
	FindAll(ctx context.Context, page Page) ([]E, error)
	FindAllSorted(ctx context.Context, page Page, sort Sort) ([]E, error)
}

// Updater is the ability to replace a stored entity wholesale.
//
// Update requires a record with the entity's id to already exist and fails
// with a not-found error otherwise. It never performs a field-level merge,
// and it does not move the record within the backend's natural order.
type Updater[I comparable, E Entity[I]] interface {
	Update(ctx context.Context, entity E) error
}

// Deleter is the ability to remove entities from the store.
//
// Remove derives the id through the Entity contract and must behave exactly
// like RemoveByID(entity.GetID()); stored field values are not compared.
// Both fail with a not-found error when the id is absent.
type Deleter[I comparable, E Entity[I]] interface {
	RemoveByID(ctx context.Context, id I) error
	Remove(ctx context.Context, entity E) error
}

// Repository composes all five capabilities into the full CRUD contract.
// It adds no behavior of its own; backends that satisfy every capability
// satisfy Repository automatically.
type Repository[I comparable, E Entity[I]] interface {
	Creator[I, E]
	Finder[I, E]
	Lister[I, E]
	Updater[I, E]
	Deleter[I, E]
}
