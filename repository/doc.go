/*
Package repository defines the core capability interfaces for CrudStore's
persistence layer.

Instead of one monolithic storage interface, the contract is split into five
independently usable capabilities, so a backend only implements what it can
actually support:

	type Creator[I comparable, E Entity[I]] interface {
	    Save(ctx context.Context, entity E) error
	}
	type Finder[I comparable, E Entity[I]] interface {
	    FindByID(ctx context.Context, id I) (E, error)
	}
	type Lister[I comparable, E Entity[I]] interface {
	    FindAll(ctx context.Context, page Page) ([]E, error)
	    FindAllSorted(ctx context.Context, page Page, sort Sort) ([]E, error)
	}
	type Updater[I comparable, E Entity[I]] interface {
	    Update(ctx context.Context, entity E) error
	}
	type Deleter[I comparable, E Entity[I]] interface {
	    RemoveByID(ctx context.Context, id I) error
	    Remove(ctx context.Context, entity E) error
	}

Repository[I, E] composes all five and is what full-CRUD consumers depend on.
A read-only consumer should ask for a Finder or Lister instead, which keeps
partial backends (caches, immutable snapshots, projections) valid
implementations.

Implementations:
  - memstore: reference in-memory implementation, safe for concurrent use
  - mock: configurable implementation with failure injection for testing

The package uses Go generics to ensure type safety at compile time while
keeping the contract neutral about how a backend stores its data.
*/
package repository
