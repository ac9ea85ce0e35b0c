package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sm2/internal/sm2"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sm2.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sm2.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.ItemRepo().Save(ctx, "a", sm2.NewItem(2, 2.2)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	item, err := s.ItemRepo().Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, sm2.NewItem(2, 2.2), item)
}

func TestItemGetMissing(t *testing.T) {
	repo := openTestStore(t).ItemRepo()

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemSaveAndGet(t *testing.T) {
	repo := openTestStore(t).ItemRepo()
	ctx := context.Background()

	want := sm2.DefaultItem().Review(sm2.Good).Review(sm2.Hard)
	require.NoError(t, repo.Save(ctx, "card-1", want))

	got, err := repo.Get(ctx, "card-1")
	require.NoError(t, err)
	assert.Equal(t, want.Repetitions(), got.Repetitions())
	assert.InDelta(t, want.Easiness(), got.Easiness(), 1e-12)
}

func TestItemSaveReplaces(t *testing.T) {
	repo := openTestStore(t).ItemRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "k", sm2.DefaultItem()))
	require.NoError(t, repo.Save(ctx, "k", sm2.NewItem(5, 1.3)))

	got, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, sm2.NewItem(5, 1.3), got)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
}

func TestItemSaveEmptyKey(t *testing.T) {
	repo := openTestStore(t).ItemRepo()
	assert.Error(t, repo.Save(context.Background(), "", sm2.DefaultItem()))
}

func TestItemSaveKeepsBelowFloorEasiness(t *testing.T) {
	repo := openTestStore(t).ItemRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "legacy", sm2.NewItem(3, 0.9)))
	got, err := repo.Get(ctx, "legacy")
	require.NoError(t, err)
	assert.Equal(t, 0.9, got.Easiness())
	assert.InDelta(t, 1.4, got.Review(sm2.Perfect).Easiness(), 1e-9)
}

func TestItemUpdatedAt(t *testing.T) {
	s := openTestStore(t)
	fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &itemRepo{drv: s.drv, now: func() time.Time { return fixed }}

	require.NoError(t, repo.Save(context.Background(), "k", sm2.DefaultItem()))

	var got int64
	require.NoError(t, s.DB().QueryRow("SELECT updated_at FROM items WHERE key = ?", "k").Scan(&got))
	assert.Equal(t, fixed.Unix(), got)
}

func TestItemDeleteAndKeys(t *testing.T) {
	repo := openTestStore(t).ItemRepo()
	ctx := context.Background()

	for _, k := range []string{"b", "c", "a"} {
		require.NoError(t, repo.Save(ctx, k, sm2.DefaultItem()))
	}

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	require.NoError(t, repo.Delete(ctx, "b"))
	require.NoError(t, repo.Delete(ctx, "missing"))

	keys, err = repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, keys)

	_, err = repo.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKeysEmpty(t *testing.T) {
	keys, err := openTestStore(t).ItemRepo().Keys(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "items.db")
		t.Setenv("SM2_DB", want)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.DirExists(t, filepath.Dir(want))
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("SM2_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "sm2", "sm2.db"), got)
		_, err = os.Stat(filepath.Join(dir, "sm2"))
		assert.NoError(t, err)
	})
}
