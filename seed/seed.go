/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package seed loads entity fixtures from YAML files and applies them to a
// backend through the Creator capability. It exists so tests and reference
// deployments can populate a fresh store from a checked-in fixture instead
// of hand-written Save calls.
package seed

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/crudstore/repository"
)

// Load reads a YAML file containing a sequence of entities and decodes it
// into a slice of E. Field mapping follows the yaml struct tags of E.
func Load[E any](path string) ([]E, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %q: %w", path, err)
	}

	var entities []E
	if err := yaml.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("failed to decode seed file %q: %w", path, err)
	}
	return entities, nil
}

// Apply saves every entity through the given creator, stopping at the first
// failure. Whether re-applying a seed upserts or fails on duplicates is
// decided by the backend's Save policy.
func Apply[I comparable, E repository.Entity[I]](ctx context.Context, creator repository.Creator[I, E], entities []E) error {
	for _, entity := range entities {
		if err := creator.Save(ctx, entity); err != nil {
			return fmt.Errorf("failed to seed entity %v: %w", entity.GetID(), err)
		}
	}
	return nil
}

// LoadAndApply is a convenience wrapper combining Load and Apply.
func LoadAndApply[I comparable, E repository.Entity[I]](ctx context.Context, creator repository.Creator[I, E], path string) ([]E, error) {
	entities, err := Load[E](path)
	if err != nil {
		return nil, err
	}
	if err := Apply[I, E](ctx, creator, entities); err != nil {
		return nil, err
	}
	return entities, nil
}
