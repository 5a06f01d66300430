package numfmt

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// PreferenceKind names one of the two persisted preferences. The values double
// as storage keys.
type PreferenceKind string

const (
	PreferenceLocale   PreferenceKind = "locale"
	PreferenceCurrency PreferenceKind = "currency"
)

const (
	DefaultLocale   = "en-US"
	DefaultCurrency = "USD"
)

// PreferenceState is the current formatting context of a session.
type PreferenceState struct {
	Locale   string
	Currency string
}

// PreferenceBridge moves PreferenceState in and out of a PreferenceStore. It
// does not validate values.
type PreferenceBridge struct {
	store  PreferenceStore
	logger *zap.Logger
}

// NewPreferenceBridge wraps store. A nil store behaves as an empty one that
// discards writes.
func NewPreferenceBridge(store PreferenceStore, logger *zap.Logger) *PreferenceBridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceBridge{store: store, logger: logger}
}

// Load seeds a state from the store. Missing keys and read failures keep the
// value from defaults; failures are logged only.
func (b *PreferenceBridge) Load(ctx context.Context, defaults PreferenceState) PreferenceState {
	state := defaults
	if b == nil || b.store == nil {
		return state
	}

	if value, ok := b.load(ctx, PreferenceLocale); ok {
		state.Locale = value
	}
	if value, ok := b.load(ctx, PreferenceCurrency); ok {
		state.Currency = value
	}

	return state
}

func (b *PreferenceBridge) load(ctx context.Context, kind PreferenceKind) (string, bool) {
	value, ok, err := b.store.Get(ctx, string(kind))
	if err != nil {
		b.logger.Warn("preference load failed, using default",
			zap.String("kind", string(kind)),
			zap.Error(err))
		return "", false
	}
	return value, ok
}

// Save persists a single preference value.
func (b *PreferenceBridge) Save(ctx context.Context, kind PreferenceKind, value string) error {
	if b == nil || b.store == nil {
		return nil
	}
	if err := b.store.Set(ctx, string(kind), value); err != nil {
		return fmt.Errorf("numfmt: save %s preference: %w", kind, err)
	}
	return nil
}
