package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTripsAcrossOpen(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "json", file: "prefs.json"},
		{name: "yaml", file: "prefs.yaml"},
		{name: "yml", file: "nested/prefs.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), tt.file)

			store, err := Open(path)
			require.NoError(t, err)

			_, ok, err := store.Get(ctx, "locale")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set(ctx, "locale", "de-DE"))
			require.NoError(t, store.Set(ctx, "currency", "EUR"))

			reopened, err := Open(path)
			require.NoError(t, err)

			value, ok, err := reopened.Get(ctx, "locale")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "de-DE", value)

			value, ok, err = reopened.Get(ctx, "currency")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "EUR", value)
		})
	}
}

func TestStoreReadsExistingDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: fr-FR\ncurrency: CHF\n"), 0o600))

	store, err := Open(path)
	require.NoError(t, err)

	value, ok, err := store.Get(context.Background(), "currency")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "CHF", value)
}

func TestStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "prefs.json"))
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), "locale", "ja-JP"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "prefs.json", entries[0].Name())
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "prefs.toml"))
	require.Error(t, err)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{not json"), 0o600))
	_, err = Open(broken)
	require.Error(t, err)
}

func TestSetHonorsCanceledContext(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Set(ctx, "locale", "en-GB"), context.Canceled)

	_, ok, err := store.Get(context.Background(), "locale")
	require.NoError(t, err)
	assert.False(t, ok)
}
