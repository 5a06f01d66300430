package numfmt

import (
	"strconv"
	"strings"
)

// FormatterKey identifies a formatter instance. Every field that changes the
// constructed formatter is part of the key, currency included for decimal
// style.
type FormatterKey struct {
	Locale                string
	Currency              string
	MinimumFractionDigits OptionalInt
	MaximumFractionDigits OptionalInt
	Style                 Style
	UseGrouping           OptionalBool
}

func newFormatterKey(state PreferenceState, opts FormatOptions) FormatterKey {
	return FormatterKey{
		Locale:                state.Locale,
		Currency:              state.Currency,
		MinimumFractionDigits: opts.MinimumFractionDigits,
		MaximumFractionDigits: opts.MaximumFractionDigits,
		Style:                 opts.Style,
		UseGrouping:           opts.UseGrouping,
	}
}

func (k FormatterKey) formatterOptions() FormatterOptions {
	return FormatterOptions{
		Style:                 k.Style,
		Currency:              k.Currency,
		MinimumFractionDigits: k.MinimumFractionDigits,
		MaximumFractionDigits: k.MaximumFractionDigits,
		UseGrouping:           k.UseGrouping,
	}
}

// String renders the key in field order, "-" standing for unset values.
func (k FormatterKey) String() string {
	parts := []string{
		k.Locale,
		k.Currency,
		optionalIntString(k.MinimumFractionDigits),
		optionalIntString(k.MaximumFractionDigits),
		string(k.Style),
		optionalBoolString(k.UseGrouping),
	}
	if parts[4] == "" {
		parts[4] = "-"
	}
	return strings.Join(parts, "|")
}

func optionalIntString(v OptionalInt) string {
	if !v.Set {
		return "-"
	}
	return strconv.Itoa(v.Value)
}

func optionalBoolString(v OptionalBool) string {
	if !v.Set {
		return "-"
	}
	return strconv.FormatBool(v.Value)
}
