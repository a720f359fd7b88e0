/*
Package registry maps Go entity types to display names for CrudStore.

Backends label their errors with an entity type name ("User", "Player") so a
not-found failure reads naturally in logs. Without a registration, backends
fall back to the reflect type name, which is usually good enough; register a
name when the Go type name would leak an internal package path into
user-facing messages:

	registry.RegisterTypeName[Player]("Player")

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
