/*
Package memstore provides the reference in-memory implementation of the
repository capability interfaces.

The Store keeps entities in a process-local map keyed by identity, together
with an insertion sequence that makes unsorted listing deterministic:

	store := memstore.New[string, Player]()
	_ = store.Save(ctx, Player{ID: "p1", Name: "Anna"})

	first, _ := store.FindAll(ctx, repository.NewPage(0, 25))
	byID, _ := store.FindAllSorted(ctx, repository.NewPage(0, 25), repository.Descending)

Semantics:
  - Save upserts by default; build with memstore.RejectDuplicates() to make
    duplicate saves fail instead
  - FindAllSorted orders by the identity key, which is why ids must satisfy
    cmp.Ordered
  - every read hands back a copy of the stored value
  - overwrite and update keep a record's insertion position

The store has no persistence and lives as long as whoever owns it. It is
safe for concurrent use from multiple goroutines.
*/
package memstore
