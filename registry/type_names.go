/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sync"
)

// typeNameRegistry maps Go types to the human-readable entity names used in
// error messages and diagnostics.

var (
	typeNameRegistry = make(map[reflect.Type]string)
	mu               sync.RWMutex
)

// RegisterTypeName associates a Go type T with a display name (for example,
// "Player" instead of "testmodels.Player"). Registering again replaces the
// previous name.
func RegisterTypeName[T any](name string) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	typeNameRegistry[t] = name
}

// TypeName retrieves the registered display name for type T, if any.
func TypeName[T any]() (string, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	name, ok := typeNameRegistry[t]
	return name, ok
}
