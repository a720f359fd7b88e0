/*
Package crudstore provides a storage abstraction layer for Go applications:
type-safe capability interfaces for create/read/list/update/delete, a
reference in-memory backend, and registries for wiring backends to consumers.

Application code depends on the capability interfaces in the repository
package rather than on any concrete database, so backends can be swapped
without touching callers. Partial backends are first-class: a read-only
projection implements just Finder and Lister and remains a valid dependency
for narrower consumers.

Key Features:
  - Type-safe operations using Go generics
  - Interface segregation: five independent capabilities plus an aggregate Repository
  - Reference in-memory backend with deterministic insertion ordering
  - Pagination and identity-key sorting with stable, gap-free pages
  - Semantic error types for better error handling
  - Thread-safe registries for managing named backends per entity type
  - Mock implementation with failure injection for testing

Basic Usage:

	// Create a registry spanning entity types
	mtr := crudstore.NewMultiTypeRegistry()

	// Register a typed backend
	playerStore := memstore.New[string, Player]()
	crudstore.RegisterRepository(mtr, "players", playerStore)

	// Retrieve and use the repository
	repo, _ := crudstore.GetRepository[string, Player](mtr, "players")
	err := repo.Save(ctx, Player{ID: "123", Name: "John"})
	page, _ := repo.FindAll(ctx, repository.NewPage(0, 25))

For more information, see the documentation at https://github.com/suparena/crudstore
*/
package crudstore
