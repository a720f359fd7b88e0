/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package repository

// Entity is anything that can be stored by a backend: a value type that
// exposes its identity key. Implement it on your own types to make them
// storable.
//
// The id must be stable for the lifetime of an unmodified value — two calls
// on the same value return equal ids. Backends treat the rest of the entity
// as opaque; no field-level knowledge is assumed beyond what fmt verbs can
// render for diagnostics.
type Entity[I comparable] interface {
	GetID() I
}
