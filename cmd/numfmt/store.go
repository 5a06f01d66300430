package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-numfmt"
	"github.com/goliatone/go-numfmt/stores/filestore"
	"github.com/goliatone/go-numfmt/stores/redisstore"
	"github.com/goliatone/go-numfmt/stores/sqlitestore"
)

func noopClose() error { return nil }

// openStore resolves a store DSN. An empty DSN selects the default file in
// the user config directory.
func openStore(ctx context.Context, dsn string) (numfmt.PreferenceStore, func() error, error) {
	if dsn == "" {
		path, err := defaultStorePath()
		if err != nil {
			return nil, nil, err
		}
		dsn = "file:" + path
	}

	switch {
	case dsn == "memory":
		return numfmt.NewMemoryStore(nil), noopClose, nil

	case strings.HasPrefix(dsn, "file:"):
		store, err := filestore.Open(strings.TrimPrefix(dsn, "file:"))
		if err != nil {
			return nil, nil, err
		}
		return store, noopClose, nil

	case strings.HasPrefix(dsn, "sqlite:"):
		store, err := sqlitestore.Open(ctx, strings.TrimPrefix(dsn, "sqlite:"))
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case strings.HasPrefix(dsn, "redis://"), strings.HasPrefix(dsn, "rediss://"):
		store, err := redisstore.Open(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store %q", dsn)
	}
}

func defaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "numfmt", "preferences.yaml"), nil
}
