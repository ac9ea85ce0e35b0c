package sm2

import (
	"encoding/json"
	"fmt"
)

// Repetitions counts consecutive correct recalls of an item.
type Repetitions = uint32

// Easiness is the easiness factor (EF) of an item.
type Easiness = float64

// Interval is the number of days until the next review.
type Interval = uint32

const (
	// InitialEasiness is the EF of a new item.
	InitialEasiness Easiness = 2.5

	// MinEasiness is the floor EF never drops below after a review.
	MinEasiness Easiness = 1.3
)

// Item is the scheduling state of one piece of knowledge.
// Items are values: Review returns a new Item and leaves the receiver alone.
type Item struct {
	n  Repetitions
	ef Easiness
}

// DefaultItem returns the state of an item that has never been reviewed.
func DefaultItem() Item {
	return Item{n: 0, ef: InitialEasiness}
}

// NewItem restores an item from a repetition count and an EF, e.g. from storage.
// The EF is kept as given; Review clamps it before use.
func NewItem(n Repetitions, ef Easiness) Item {
	return Item{n: n, ef: ef}
}

// Repetitions returns the item's number of consecutive correct recalls.
func (it Item) Repetitions() Repetitions {
	return it.n
}

// Easiness returns the item's easiness factor.
func (it Item) Easiness() Easiness {
	return it.ef
}

func (it Item) String() string {
	return fmt.Sprintf("Item(n=%d, ef=%.2f)", it.n, it.ef)
}

type itemJSON struct {
	Repetitions Repetitions `json:"repetitions"`
	Easiness    Easiness    `json:"easiness"`
}

// MarshalJSON encodes the item as {"repetitions":n,"easiness":ef}.
func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{Repetitions: it.n, Easiness: it.ef})
}

// UnmarshalJSON decodes an item. A missing easiness means a new item.
func (it *Item) UnmarshalJSON(data []byte) error {
	raw := itemJSON{Easiness: InitialEasiness}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode item: %w", err)
	}
	*it = NewItem(raw.Repetitions, raw.Easiness)
	return nil
}
