package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/sm2/internal/sm2"
	"github.com/abhisek/sm2/internal/store"
)

// addItemFlags registers the flags that select the item a command works on:
// either a stored item (--item) or an inline state (--repetitions/--easiness).
func addItemFlags(cmd *cobra.Command) {
	cmd.Flags().String("item", "", "Key of a stored item")
	cmd.Flags().Uint32("repetitions", 0, "Consecutive correct recalls of an inline item")
	cmd.Flags().Float64("easiness", sm2.InitialEasiness, "Easiness factor of an inline item")
	cmd.Flags().Bool("json", false, "Print the result as JSON")
}

// itemSource is the item selected by the item flags.
type itemSource struct {
	key  string // empty for inline items
	item sm2.Item
	repo store.ItemRepo
	st   *store.Store
}

// Close releases the store, if one was opened.
func (s *itemSource) Close() error {
	if s.st == nil {
		return nil
	}
	return s.st.Close()
}

// Save writes item back under the source key. Inline items are not persisted.
func (s *itemSource) Save(ctx context.Context, item sm2.Item) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.Save(ctx, s.key, item)
}

// loadItem resolves the item flags. With allowMissing, an unknown key yields
// a new item instead of an error.
func loadItem(cmd *cobra.Command, allowMissing bool) (*itemSource, error) {
	key, _ := cmd.Flags().GetString("item")
	inline := cmd.Flags().Changed("repetitions") || cmd.Flags().Changed("easiness")

	switch {
	case key != "" && inline:
		return nil, fmt.Errorf("use --item or --repetitions/--easiness, not both")
	case key == "":
		n, _ := cmd.Flags().GetUint32("repetitions")
		ef, _ := cmd.Flags().GetFloat64("easiness")
		return &itemSource{item: sm2.NewItem(n, ef)}, nil
	}

	st, err := openStore()
	if err != nil {
		return nil, err
	}
	src := &itemSource{key: key, repo: st.ItemRepo(), st: st}

	item, err := src.repo.Get(cmd.Context(), key)
	switch {
	case err == nil:
		src.item = item
	case errors.Is(err, store.ErrNotFound) && allowMissing:
		slog.Debug("item not found, starting new", "key", key)
		src.item = sm2.DefaultItem()
	default:
		st.Close()
		return nil, err
	}
	return src, nil
}
