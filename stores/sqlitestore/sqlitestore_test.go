package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-numfmt"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	store, err := Open(context.Background(), ":memory:", opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestStoreGetMissing(t *testing.T) {
	store := openTestStore(t)

	value, ok, err := store.Get(context.Background(), "locale")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestStoreUpsert(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	require.NoError(t, store.Set(ctx, "currency", "USD"))
	require.NoError(t, store.Set(ctx, "currency", "JPY"))

	value, ok, err := store.Get(ctx, "currency")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "JPY", value)
}

func TestStoreScopesAreIsolated(t *testing.T) {
	ctx := context.Background()
	alice := openTestStore(t, WithScope("alice"))
	bob := alice.WithScope("bob")

	require.NoError(t, alice.Set(ctx, "locale", "de-DE"))
	require.NoError(t, bob.Set(ctx, "locale", "pt-BR"))

	value, _, err := alice.Get(ctx, "locale")
	require.NoError(t, err)
	assert.Equal(t, "de-DE", value)

	value, _, err = bob.Get(ctx, "locale")
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", value)

	assert.NoError(t, bob.Close(), "derived store does not own the database")
}

func TestStorePersistsOnDisk(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs", "numfmt.db")

	store, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "locale", "sv-SE"))
	require.NoError(t, store.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "locale")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sv-SE", value)
}

func TestStoreSeedsSession(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	require.NoError(t, store.Set(ctx, string(numfmt.PreferenceLocale), "fr-FR"))

	session, err := numfmt.NewSession(ctx, numfmt.WithStore(store))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close(context.Background())
	})

	assert.Equal(t, "fr-FR", session.Locale())
	assert.Equal(t, numfmt.DefaultCurrency, session.Currency())

	session.SetCurrency("EUR")
	require.NoError(t, session.Flush(ctx))

	value, ok, err := store.Get(ctx, string(numfmt.PreferenceCurrency))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "EUR", value)
}
