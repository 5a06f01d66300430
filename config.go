package numfmt

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Config captures session, cache and persistence setup
type Config struct {
	DefaultLocale   string
	DefaultCurrency string
	Store           PreferenceStore
	Factory         FormatterFactory
	Logger          *zap.Logger
	CacheSize       int
	PersistTimeout  time.Duration

	constructionHooks    []ConstructionHook
	currencyPatterns     map[string]CurrencyPattern
	currencyPatternPaths []string
	patternProvider      *CurrencyPatternProvider
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocale
	}

	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = DefaultCurrency
	}

	if cfg.Store == nil {
		cfg.Store = NewMemoryStore(nil)
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("numfmt: cache size must not be negative, got %d", cfg.CacheSize)
	}

	if cfg.Factory == nil {
		provider, err := cfg.CurrencyPatterns()
		if err != nil {
			return nil, err
		}
		cfg.Factory = NewXTextFactory(provider)
	}

	cfg.Factory = WrapFactoryWithHooks(cfg.Factory, cfg.constructionHooks...)

	return cfg, nil
}

// WithDefaultLocale sets the locale used when the store has none
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithDefaultCurrency sets the currency used when the store has none
func WithDefaultCurrency(code string) Option {
	return func(c *Config) error {
		c.DefaultCurrency = code
		return nil
	}
}

func WithStore(store PreferenceStore) Option {
	return func(c *Config) error {
		c.Store = store
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithFormatterFactory replaces the x/text backed factory
func WithFormatterFactory(factory FormatterFactory) Option {
	return func(c *Config) error {
		c.Factory = factory
		return nil
	}
}

// WithConstructionHooks runs hooks around every formatter construction.
func WithConstructionHooks(hooks ...ConstructionHook) Option {
	return func(c *Config) error {
		c.constructionHooks = append(c.constructionHooks, hooks...)
		return nil
	}
}

// WithCacheSize bounds the formatter cache with LRU eviction. Zero keeps the
// cache unbounded.
func WithCacheSize(size int) Option {
	return func(c *Config) error {
		c.CacheSize = size
		return nil
	}
}

// WithPersistTimeout bounds each background preference write
func WithPersistTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		c.PersistTimeout = timeout
		return nil
	}
}

// WithCurrencyPatterns overrides currency placement for specific locales
func WithCurrencyPatterns(patterns map[string]CurrencyPattern) Option {
	return func(c *Config) error {
		if len(patterns) == 0 {
			return nil
		}
		if c.currencyPatterns == nil {
			c.currencyPatterns = make(map[string]CurrencyPattern, len(patterns))
		}
		for locale, pattern := range patterns {
			c.currencyPatterns[locale] = pattern
		}
		c.patternProvider = nil
		return nil
	}
}

// WithCurrencyPatternFile loads overrides from a JSON or YAML file when the
// config is built. Later files win.
func WithCurrencyPatternFile(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return nil
		}
		c.currencyPatternPaths = append(c.currencyPatternPaths, path)
		c.patternProvider = nil
		return nil
	}
}

// CurrencyPatterns returns the pattern provider built from the configured
// overrides.
func (cfg *Config) CurrencyPatterns() (*CurrencyPatternProvider, error) {
	if cfg == nil {
		return NewCurrencyPatternProvider(nil)
	}
	if cfg.patternProvider != nil {
		return cfg.patternProvider, nil
	}

	overrides := make(map[string]CurrencyPattern)
	for _, path := range cfg.currencyPatternPaths {
		loaded, err := NewCurrencyPatternLoader(path).Load()
		if err != nil {
			return nil, err
		}
		for locale, pattern := range loaded {
			overrides[locale] = pattern
		}
	}
	for locale, pattern := range cfg.currencyPatterns {
		overrides[locale] = pattern
	}

	provider, err := NewCurrencyPatternProvider(overrides)
	if err != nil {
		return nil, err
	}
	cfg.patternProvider = provider
	return provider, nil
}

// BuildSession seeds a session from the configured store.
func (cfg *Config) BuildSession(ctx context.Context) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	cache, err := newFormatterCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	bridge := NewPreferenceBridge(cfg.Store, cfg.Logger)
	state := bridge.Load(ctx, PreferenceState{
		Locale:   cfg.DefaultLocale,
		Currency: cfg.DefaultCurrency,
	})

	cfg.Logger.Debug("formatting session started",
		zap.String("locale", state.Locale),
		zap.String("currency", state.Currency),
		zap.Int("cache_size", cfg.CacheSize))

	return &Session{
		state:     state,
		cache:     cache,
		factory:   cfg.Factory,
		persister: newPersister(bridge, cfg.Logger, cfg.PersistTimeout),
		logger:    cfg.Logger,
	}, nil
}
