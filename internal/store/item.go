package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/sm2/internal/sm2"
)

const (
	itemsTable        = "items"
	columnKey         = "key"
	columnRepetitions = "repetitions"
	columnEasiness    = "easiness"
	columnUpdatedAt   = "updated_at"
)

// itemRepo implements ItemRepo using the ent SQL builder.
type itemRepo struct {
	drv *entsql.Driver
	now func() time.Time
}

func (r *itemRepo) builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *itemRepo) Get(ctx context.Context, key string) (sm2.Item, error) {
	query, args := r.builder().
		Select(columnRepetitions, columnEasiness).
		From(r.builder().Table(itemsTable)).
		Where(entsql.EQ(columnKey, key)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return sm2.Item{}, fmt.Errorf("query item %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return sm2.Item{}, fmt.Errorf("query item %q: %w", key, err)
		}
		return sm2.Item{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	var (
		n  int64
		ef float64
	)
	if err := rows.Scan(&n, &ef); err != nil {
		return sm2.Item{}, fmt.Errorf("scan item %q: %w", key, err)
	}
	if n < 0 {
		return sm2.Item{}, fmt.Errorf("item %q: negative repetitions %d", key, n)
	}
	return sm2.NewItem(sm2.Repetitions(n), ef), nil
}

func (r *itemRepo) Save(ctx context.Context, key string, item sm2.Item) error {
	if key == "" {
		return errors.New("save item: empty key")
	}
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	query, args := r.builder().
		Insert(itemsTable).
		Columns(columnKey, columnRepetitions, columnEasiness, columnUpdatedAt).
		Values(key, int64(item.Repetitions()), item.Easiness(), now().UTC().Unix()).
		OnConflict(
			entsql.ConflictColumns(columnKey),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save item %q: %w", key, err)
	}
	slog.Debug("item saved", "key", key, "repetitions", item.Repetitions(), "easiness", item.Easiness())
	return nil
}

func (r *itemRepo) Delete(ctx context.Context, key string) error {
	query, args := r.builder().
		Delete(itemsTable).
		Where(entsql.EQ(columnKey, key)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete item %q: %w", key, err)
	}
	return nil
}

func (r *itemRepo) Keys(ctx context.Context) ([]string, error) {
	query, args := r.builder().
		Select(columnKey).
		From(r.builder().Table(itemsTable)).
		OrderBy(columnKey).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query item keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan item key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query item keys: %w", err)
	}
	return keys, nil
}
