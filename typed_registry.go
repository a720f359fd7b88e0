/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package crudstore

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/suparena/crudstore/repository"
)

// TypedRegistry provides type-safe access to named repositories for a
// specific entity type E keyed by I.
type TypedRegistry[I comparable, E repository.Entity[I]] struct {
	mu    sync.RWMutex
	repos map[string]repository.Repository[I, E]
}

// NewTypedRegistry creates a new TypedRegistry for entity type E
func NewTypedRegistry[I comparable, E repository.Entity[I]]() *TypedRegistry[I, E] {
	return &TypedRegistry[I, E]{
		repos: make(map[string]repository.Repository[I, E]),
	}
}

// Register adds a repository with the given key
func (tr *TypedRegistry[I, E]) Register(key string, repo repository.Repository[I, E]) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if _, exists := tr.repos[key]; exists {
		return fmt.Errorf("repository with key %q already registered", key)
	}

	tr.repos[key] = repo
	return nil
}

// Get retrieves a repository by key
func (tr *TypedRegistry[I, E]) Get(key string) (repository.Repository[I, E], error) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	repo, exists := tr.repos[key]
	if !exists {
		return nil, fmt.Errorf("repository with key %q not found", key)
	}

	return repo, nil
}

// Remove deletes a repository by key
func (tr *TypedRegistry[I, E]) Remove(key string) error {
	tr.mu.Lock()
	defer tr.mu.Unlock()

	if _, exists := tr.repos[key]; !exists {
		return fmt.Errorf("repository with key %q not found", key)
	}

	delete(tr.repos, key)
	return nil
}

// Keys returns all registered repository keys
func (tr *TypedRegistry[I, E]) Keys() []string {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	keys := make([]string, 0, len(tr.repos))
	for k := range tr.repos {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeRegistry manages TypedRegistry instances for different entity types
type MultiTypeRegistry struct {
	mu         sync.RWMutex
	registries map[reflect.Type]interface{}
}

// NewMultiTypeRegistry creates a new MultiTypeRegistry
func NewMultiTypeRegistry() *MultiTypeRegistry {
	return &MultiTypeRegistry{
		registries: make(map[reflect.Type]interface{}),
	}
}

// TypedRegistryFor returns the TypedRegistry for entity type E, creating it if necessary
func TypedRegistryFor[I comparable, E repository.Entity[I]](mtr *MultiTypeRegistry) *TypedRegistry[I, E] {
	mtr.mu.Lock()
	defer mtr.mu.Unlock()

	var zero E
	typ := reflect.TypeOf(zero)

	if reg, exists := mtr.registries[typ]; exists {
		return reg.(*TypedRegistry[I, E])
	}

	// Create new typed registry
	newRegistry := NewTypedRegistry[I, E]()
	mtr.registries[typ] = newRegistry
	return newRegistry
}

// Convenience functions for common operations

// RegisterRepository is a convenience function to register a repository for entity type E
func RegisterRepository[I comparable, E repository.Entity[I]](mtr *MultiTypeRegistry, key string, repo repository.Repository[I, E]) error {
	reg := TypedRegistryFor[I, E](mtr)
	return reg.Register(key, repo)
}

// GetRepository is a convenience function to get a repository for entity type E
func GetRepository[I comparable, E repository.Entity[I]](mtr *MultiTypeRegistry, key string) (repository.Repository[I, E], error) {
	reg := TypedRegistryFor[I, E](mtr)
	return reg.Get(key)
}

// RemoveRepository is a convenience function to remove a repository for entity type E
func RemoveRepository[I comparable, E repository.Entity[I]](mtr *MultiTypeRegistry, key string) error {
	reg := TypedRegistryFor[I, E](mtr)
	return reg.Remove(key)
}

// ListRepositories is a convenience function to list all repository keys for entity type E
func ListRepositories[I comparable, E repository.Entity[I]](mtr *MultiTypeRegistry) []string {
	reg := TypedRegistryFor[I, E](mtr)
	return reg.Keys()
}
