package numfmt

import (
	"context"
	"math"
	"sync"

	"go.uber.org/zap"
)

// CacheStats counts formatter cache activity for a session.
type CacheStats struct {
	Hits          uint64
	Misses        uint64
	Constructions uint64
}

// Session owns the current locale and currency and memoizes formatters for
// every combination it has been asked to render. Cache entries survive
// locale and currency changes, so switching back reuses earlier formatters.
type Session struct {
	mu      sync.Mutex
	state   PreferenceState
	cache   FormatterCache
	factory FormatterFactory
	stats   CacheStats
	closed  bool

	persister *persister
	logger    *zap.Logger
}

// NewSession builds a Config from opts and starts a session with it.
func NewSession(ctx context.Context, opts ...Option) (*Session, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return cfg.BuildSession(ctx)
}

func (s *Session) Locale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Locale
}

func (s *Session) Currency() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Currency
}

// SetLocale switches the locale used by later format calls and schedules the
// value for persistence. The value is not validated here; a malformed locale
// fails when something is formatted with it.
func (s *Session) SetLocale(locale string) {
	s.mu.Lock()
	s.state.Locale = locale
	s.mu.Unlock()

	s.persister.enqueue(PreferenceLocale, locale)
}

// SetCurrency is the currency counterpart of SetLocale.
func (s *Session) SetCurrency(code string) {
	s.mu.Lock()
	s.state.Currency = code
	s.mu.Unlock()

	s.persister.enqueue(PreferenceCurrency, code)
}

// State returns a snapshot of the current locale and currency.
func (s *Session) State() PreferenceState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FormatNumber renders value using the current locale and currency.
func (s *Session) FormatNumber(value float64, opts ...FormatOption) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", &InvalidInputError{Value: value}
	}

	formatter, err := s.formatter(buildFormatOptions(opts))
	if err != nil {
		return "", err
	}
	return formatter.Format(value), nil
}

// FormatCurrency is FormatNumber with the currency style forced after opts.
func (s *Session) FormatCurrency(value float64, opts ...FormatOption) (string, error) {
	if len(opts) == 0 {
		opts = []FormatOption{WithFormatOptions(defaultFormatOptions())}
	}
	withStyle := make([]FormatOption, 0, len(opts)+1)
	withStyle = append(withStyle, opts...)
	withStyle = append(withStyle, WithStyle(StyleCurrency))
	return s.FormatNumber(value, withStyle...)
}

func (s *Session) formatter(opts FormatOptions) (NumberFormatter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := newFormatterKey(s.state, opts)
	if formatter, ok := s.cache.Get(key); ok {
		s.stats.Hits++
		return formatter, nil
	}
	s.stats.Misses++

	formatter, err := s.factory.New(key.Locale, key.formatterOptions())
	if err != nil {
		s.logger.Debug("formatter construction failed",
			zap.Stringer("key", key),
			zap.Error(err))
		return nil, &FormatConstructionError{Key: key, Err: err}
	}
	if formatter == nil {
		return nil, &FormatConstructionError{Key: key, Err: errNilFormatter}
	}

	s.cache.Add(key, formatter)
	s.stats.Constructions++
	s.logger.Debug("formatter cached",
		zap.Stringer("key", key),
		zap.Int("cache_len", s.cache.Len()))

	return formatter, nil
}

// CacheLen reports how many formatters are currently cached.
func (s *Session) CacheLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}

func (s *Session) Stats() CacheStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Flush waits until every preference change made so far has been written to
// the store, or ctx is done.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return ErrSessionClosed
	}
	return s.persister.flush(ctx)
}

// Close writes pending preferences and stops the background persister. The
// session keeps formatting after Close; later preference changes are applied
// in memory only.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.persister.close(ctx)
}
