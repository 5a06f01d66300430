package numfmt

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultLocale, cfg.DefaultLocale)
	assert.Equal(t, DefaultCurrency, cfg.DefaultCurrency)
	assert.IsType(t, &MemoryStore{}, cfg.Store)
	assert.IsType(t, &XTextFactory{}, cfg.Factory)
	assert.NotNil(t, cfg.Logger)
	assert.Zero(t, cfg.CacheSize)
}

func TestNewConfigOptions(t *testing.T) {
	store := NewMemoryStore(nil)
	logger := zap.NewNop()
	factory := FormatterFactoryFunc(func(string, FormatterOptions) (NumberFormatter, error) {
		return nil, errors.New("unused")
	})

	cfg, err := NewConfig(
		WithDefaultLocale("es-MX"),
		WithDefaultCurrency("MXN"),
		WithStore(store),
		WithLogger(logger),
		WithFormatterFactory(factory),
		WithCacheSize(16),
		WithPersistTimeout(time.Second),
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, "es-MX", cfg.DefaultLocale)
	assert.Equal(t, "MXN", cfg.DefaultCurrency)
	assert.Same(t, store, cfg.Store)
	assert.Same(t, logger, cfg.Logger)
	assert.NotNil(t, cfg.Factory)
	assert.Equal(t, 16, cfg.CacheSize)
	assert.Equal(t, time.Second, cfg.PersistTimeout)
}

func TestNewConfigErrors(t *testing.T) {
	_, err := NewConfig(WithCacheSize(-1))
	require.Error(t, err)

	failing := func(*Config) error { return errors.New("boom") }
	_, err = NewConfig(failing)
	require.EqualError(t, err, "boom")

	_, err = NewConfig(WithCurrencyPatternFile(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)

	_, err = NewConfig(WithCurrencyPatterns(map[string]CurrencyPattern{"en": {}}))
	require.Error(t, err)
}

func TestConfigCurrencyPatternsLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("en: \"#,##0.00 ¤\"\nfr: \"¤#,##0.00\"\n"), 0o600))

	cfg, err := NewConfig(
		WithCurrencyPatternFile(path),
		WithCurrencyPatterns(map[string]CurrencyPattern{
			"fr": {SymbolPosition: SymbolAfter},
		}),
	)
	require.NoError(t, err)

	provider, err := cfg.CurrencyPatterns()
	require.NoError(t, err)

	assert.Equal(t, SymbolAfter, provider.Get("en-US").SymbolPosition)
	assert.Equal(t, SymbolAfter, provider.Get("fr").SymbolPosition, "map overrides beat files")

	again, err := cfg.CurrencyPatterns()
	require.NoError(t, err)
	assert.Same(t, provider, again)

	session, err := cfg.BuildSession(context.Background())
	require.NoError(t, err)
	defer session.Close(context.Background())

	got, err := session.FormatCurrency(5)
	require.NoError(t, err)
	assert.Equal(t, "5.00 $", got)
}

func TestBuildSessionNilConfig(t *testing.T) {
	var cfg *Config
	_, err := cfg.BuildSession(context.Background())
	require.ErrorIs(t, err, ErrNilConfig)

	provider, err := cfg.CurrencyPatterns()
	require.NoError(t, err)
	assert.Equal(t, "en", provider.Get("en-US").Locale)
}

func TestBuildSessionStoreReadFailureUsesDefaults(t *testing.T) {
	store := PreferenceStoreFuncs{
		GetFunc: func(_ context.Context, key string) (string, bool, error) {
			if key == "currency" {
				return "", false, errors.New("unavailable")
			}
			return "pl-PL", true, nil
		},
	}

	session, err := NewSession(context.Background(),
		WithStore(store),
		WithDefaultCurrency("PLN"),
	)
	require.NoError(t, err)
	defer session.Close(context.Background())

	assert.Equal(t, "pl-PL", session.Locale())
	assert.Equal(t, "PLN", session.Currency())
}
