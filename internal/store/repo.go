package store

import (
	"context"
	"errors"

	"github.com/abhisek/sm2/internal/sm2"
)

// ErrNotFound is returned when no item is stored under a key.
var ErrNotFound = errors.New("store: item not found")

// ItemRepo persists the current scheduling state of items by key.
// Only the latest state is kept; earlier reviews are not recorded.
type ItemRepo interface {
	// Get returns the item stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (sm2.Item, error)

	// Save inserts or replaces the item stored under key.
	Save(ctx context.Context, key string, item sm2.Item) error

	// Delete removes the item stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key in ascending order.
	Keys(ctx context.Context) ([]string, error)
}
