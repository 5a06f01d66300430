package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterKeyString(t *testing.T) {
	state := PreferenceState{Locale: "en-US", Currency: "USD"}

	tests := []struct {
		name string
		opts FormatOptions
		want string
	}{
		{name: "defaults", opts: defaultFormatOptions(), want: "en-US|USD|-|-|-|true"},
		{name: "empty", opts: FormatOptions{}, want: "en-US|USD|-|-|-|-"},
		{
			name: "all set",
			opts: FormatOptions{
				MinimumFractionDigits: SomeInt(0),
				MaximumFractionDigits: SomeInt(2),
				Style:                 StyleCurrency,
				UseGrouping:           SomeBool(false),
			},
			want: "en-US|USD|0|2|currency|false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newFormatterKey(state, tt.opts).String())
		})
	}
}

func TestFormatterKeyDistinguishesOmittedFromZero(t *testing.T) {
	state := PreferenceState{Locale: "en", Currency: "USD"}

	omitted := newFormatterKey(state, FormatOptions{})
	zero := newFormatterKey(state, FormatOptions{MinimumFractionDigits: SomeInt(0)})

	assert.NotEqual(t, omitted, zero)
	assert.Equal(t, omitted, newFormatterKey(state, FormatOptions{}))
}

func TestBuildFormatOptions(t *testing.T) {
	assert.Equal(t, defaultFormatOptions(), buildFormatOptions(nil))

	got := buildFormatOptions([]FormatOption{
		WithFractionDigits(4),
		nil,
		WithMaxFractionDigits(6),
		WithStyle(StyleCurrency),
	})
	assert.Equal(t, FormatOptions{
		MinimumFractionDigits: SomeInt(4),
		MaximumFractionDigits: SomeInt(6),
		Style:                 StyleCurrency,
	}, got)

	replaced := buildFormatOptions([]FormatOption{
		WithStyle(StyleCurrency),
		WithFormatOptions(FormatOptions{UseGrouping: SomeBool(false)}),
	})
	assert.Equal(t, FormatOptions{UseGrouping: SomeBool(false)}, replaced)
}

type stubFormatter string

func (s stubFormatter) Format(float64) string { return string(s) }

func TestFormatterCaches(t *testing.T) {
	keyA := FormatterKey{Locale: "en", Currency: "USD"}
	keyB := FormatterKey{Locale: "de", Currency: "EUR"}
	keyC := FormatterKey{Locale: "fr", Currency: "EUR"}

	unbounded, err := newFormatterCache(0)
	require.NoError(t, err)
	require.IsType(t, &mapCache{}, unbounded)

	for _, key := range []FormatterKey{keyA, keyB, keyC} {
		unbounded.Add(key, stubFormatter(key.Locale))
	}
	assert.Equal(t, 3, unbounded.Len())

	bounded, err := newFormatterCache(2)
	require.NoError(t, err)
	require.IsType(t, &lruCache{}, bounded)

	bounded.Add(keyA, stubFormatter("a"))
	bounded.Add(keyB, stubFormatter("b"))
	_, ok := bounded.Get(keyA)
	require.True(t, ok)
	bounded.Add(keyC, stubFormatter("c"))

	assert.Equal(t, 2, bounded.Len())
	_, ok = bounded.Get(keyB)
	assert.False(t, ok, "least recently used entry evicted")
	f, ok := bounded.Get(keyA)
	require.True(t, ok)
	assert.Equal(t, "a", f.Format(0))
}
