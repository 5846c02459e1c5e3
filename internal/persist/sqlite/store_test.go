package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/persist/sqlite"
)

func TestStore_RoundTrip(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "stash.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	key := account.Key{Letter: "J", Code: "4821"}

	_, ok, err := store.Load(ctx, key, "goals")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, key, "goals", []byte(`[{"Title":"Emergency"}]`)))

	data, ok, err := store.Load(ctx, key, "goals")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"Title":"Emergency"}]`, string(data))

	// overwrite
	require.NoError(t, store.Save(ctx, key, "goals", []byte(`[]`)))

	data, ok, err = store.Load(ctx, key, "goals")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(data))

	// other partitions stay isolated
	_, ok, err = store.Load(ctx, account.Key{Letter: "K", Code: "4821"}, "goals")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = store.Load(ctx, key, "bills")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen_BlankPath(t *testing.T) {
	_, err := sqlite.Open("  ")
	assert.Error(t, err)
}
