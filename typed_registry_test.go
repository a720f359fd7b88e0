/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package crudstore

import (
	"fmt"
	"testing"

	"github.com/suparena/crudstore/repository/memstore"
)

// Test types
type TestUser struct {
	ID    string
	Name  string
	Email string
}

func (u TestUser) GetID() string { return u.ID }

type TestProduct struct {
	ID    string
	Name  string
	Price float64
}

func (p TestProduct) GetID() string { return p.ID }

func TestTypedRegistry(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		reg := NewTypedRegistry[string, TestUser]()

		// Register repository
		userRepo := memstore.New[string, TestUser]()
		err := reg.Register("users", userRepo)
		if err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		// Get repository
		retrieved, err := reg.Get("users")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if retrieved == nil {
			t.Fatal("Retrieved repository is nil")
		}

		// List repositories
		keys := reg.Keys()
		if len(keys) != 1 || keys[0] != "users" {
			t.Fatalf("Expected [users], got %v", keys)
		}

		// Remove repository
		err = reg.Remove("users")
		if err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}

		// Verify removal
		_, err = reg.Get("users")
		if err == nil {
			t.Fatal("Expected error after removal")
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		reg := NewTypedRegistry[string, TestUser]()

		userRepo1 := memstore.New[string, TestUser]()
		err := reg.Register("users", userRepo1)
		if err != nil {
			t.Fatalf("First registration failed: %v", err)
		}

		userRepo2 := memstore.New[string, TestUser]()
		err = reg.Register("users", userRepo2)
		if err == nil {
			t.Fatal("Expected duplicate registration error")
		}
	})
}

func TestMultiTypeRegistry(t *testing.T) {
	mtr := NewMultiTypeRegistry()

	t.Run("DifferentTypes", func(t *testing.T) {
		// Register user repository
		userRepo := memstore.New[string, TestUser]()
		err := RegisterRepository(mtr, "users", userRepo)
		if err != nil {
			t.Fatalf("Failed to register user repo: %v", err)
		}

		// Register product repository
		productRepo := memstore.New[string, TestProduct]()
		err = RegisterRepository(mtr, "products", productRepo)
		if err != nil {
			t.Fatalf("Failed to register product repo: %v", err)
		}

		// Get user repository
		retrievedUser, err := GetRepository[string, TestUser](mtr, "users")
		if err != nil {
			t.Fatalf("Failed to get user repo: %v", err)
		}
		if retrievedUser == nil {
			t.Fatal("User repo is nil")
		}

		// Get product repository
		retrievedProduct, err := GetRepository[string, TestProduct](mtr, "products")
		if err != nil {
			t.Fatalf("Failed to get product repo: %v", err)
		}
		if retrievedProduct == nil {
			t.Fatal("Product repo is nil")
		}

		// List repositories for each type
		userKeys := ListRepositories[string, TestUser](mtr)
		if len(userKeys) != 1 || userKeys[0] != "users" {
			t.Fatalf("Expected user keys [users], got %v", userKeys)
		}

		productKeys := ListRepositories[string, TestProduct](mtr)
		if len(productKeys) != 1 || productKeys[0] != "products" {
			t.Fatalf("Expected product keys [products], got %v", productKeys)
		}
	})

	t.Run("SameKeyDifferentTypes", func(t *testing.T) {
		// Register with same key but different types
		userRepo := memstore.New[string, TestUser]()
		err := RegisterRepository(mtr, "items", userRepo)
		if err != nil {
			t.Fatalf("Failed to register user repo: %v", err)
		}

		productRepo := memstore.New[string, TestProduct]()
		err = RegisterRepository(mtr, "items", productRepo)
		if err != nil {
			t.Fatalf("Failed to register product repo: %v", err)
		}

		// Both should succeed because they're different types
		userItems, err := GetRepository[string, TestUser](mtr, "items")
		if err != nil || userItems == nil {
			t.Fatal("Failed to get user items")
		}

		productItems, err := GetRepository[string, TestProduct](mtr, "items")
		if err != nil || productItems == nil {
			t.Fatal("Failed to get product items")
		}
	})
}

func TestStorageManager(t *testing.T) {
	sm := NewStorageManager()

	userRepo := memstore.New[string, TestUser]()
	if err := sm.RegisterRepository("users", userRepo); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	// Duplicate keys are rejected
	if err := sm.RegisterRepository("users", userRepo); err == nil {
		t.Fatal("Expected duplicate registration error")
	}

	raw, err := sm.GetRepository("users")
	if err != nil {
		t.Fatalf("Failed to get: %v", err)
	}
	if _, ok := raw.(*memstore.Store[string, TestUser]); !ok {
		t.Fatalf("Unexpected repository type %T", raw)
	}

	if _, err := sm.GetRepository("missing"); err == nil {
		t.Fatal("Expected error for unknown key")
	}
}

func TestThreadSafety(t *testing.T) {
	mtr := NewMultiTypeRegistry()
	done := make(chan bool)

	// Concurrent writes
	for i := 0; i < 10; i++ {
		go func(id int) {
			repo := memstore.New[string, TestUser]()
			key := fmt.Sprintf("repo%d", id)
			RegisterRepository(mtr, key, repo)
			done <- true
		}(i)
	}

	// Concurrent reads
	for i := 0; i < 10; i++ {
		go func() {
			ListRepositories[string, TestUser](mtr)
			done <- true
		}()
	}

	// Wait for completion
	for i := 0; i < 20; i++ {
		<-done
	}

	// Verify all repositories registered
	keys := ListRepositories[string, TestUser](mtr)
	if len(keys) != 10 {
		t.Fatalf("Expected 10 repositories, got %d", len(keys))
	}
}
