// Package persist moves ledger documents between the local store of record
// and the remote authoritative store. Every collection is stored wholesale as
// one JSON document keyed by (ledger, letter, code).
package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MrJamesThe3rd/stash/internal/account"
)

// Store reads and writes raw ledger documents. ok is false when no document
// exists for the key.
type Store interface {
	Load(ctx context.Context, key account.Key, ledger string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key account.Key, ledger string, data []byte) error
}

// Collection gives one ledger a typed view over a Store. A missing document
// reads as an empty collection.
type Collection[T any] struct {
	store  Store
	ledger string
}

func NewCollection[T any](store Store, ledger string) *Collection[T] {
	return &Collection[T]{store: store, ledger: ledger}
}

func (c *Collection[T]) Load(ctx context.Context, key account.Key) ([]T, error) {
	data, ok, err := c.store.Load(ctx, key, c.ledger)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", c.ledger, err)
	}

	if !ok || isEmptyDoc(data) {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", c.ledger, err)
	}

	return items, nil
}

func (c *Collection[T]) Save(ctx context.Context, key account.Key, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.ledger, err)
	}

	if err := c.store.Save(ctx, key, c.ledger, data); err != nil {
		return fmt.Errorf("saving %s: %w", c.ledger, err)
	}

	return nil
}

// isEmptyDoc treats a missing, null, or empty-array document as holding no
// items. The distinction matters during hydration: an empty remote doc means
// "configured but never seeded", not "deliberately cleared".
func isEmptyDoc(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return true
	}

	return bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte("[]"))
}
