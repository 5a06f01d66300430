package numfmt

// Style selects how a number is rendered.
type Style string

const (
	StyleDecimal  Style = "decimal"
	StyleCurrency Style = "currency"
)

// OptionalInt is an int that remembers whether it was set. The zero value is
// unset, which keeps "omitted" distinct from an explicit 0 in cache keys.
type OptionalInt struct {
	Value int
	Set   bool
}

// SomeInt returns a set OptionalInt.
func SomeInt(v int) OptionalInt {
	return OptionalInt{Value: v, Set: true}
}

// OptionalBool is the boolean counterpart of OptionalInt.
type OptionalBool struct {
	Value bool
	Set   bool
}

// SomeBool returns a set OptionalBool.
func SomeBool(v bool) OptionalBool {
	return OptionalBool{Value: v, Set: true}
}

// FormatOptions captures the caller controlled knobs of a format call.
type FormatOptions struct {
	MinimumFractionDigits OptionalInt
	MaximumFractionDigits OptionalInt
	Style                 Style
	UseGrouping           OptionalBool
}

// FormatOption mutates FormatOptions for a single call.
type FormatOption func(*FormatOptions)

// WithMinFractionDigits sets the minimum number of fraction digits.
func WithMinFractionDigits(n int) FormatOption {
	return func(o *FormatOptions) {
		o.MinimumFractionDigits = SomeInt(n)
	}
}

// WithMaxFractionDigits sets the maximum number of fraction digits.
func WithMaxFractionDigits(n int) FormatOption {
	return func(o *FormatOptions) {
		o.MaximumFractionDigits = SomeInt(n)
	}
}

// WithFractionDigits pins both bounds to n.
func WithFractionDigits(n int) FormatOption {
	return func(o *FormatOptions) {
		o.MinimumFractionDigits = SomeInt(n)
		o.MaximumFractionDigits = SomeInt(n)
	}
}

func WithStyle(style Style) FormatOption {
	return func(o *FormatOptions) {
		o.Style = style
	}
}

func WithGrouping(enabled bool) FormatOption {
	return func(o *FormatOptions) {
		o.UseGrouping = SomeBool(enabled)
	}
}

// WithFormatOptions replaces the accumulated options with opts.
func WithFormatOptions(opts FormatOptions) FormatOption {
	return func(o *FormatOptions) {
		*o = opts
	}
}

// defaultFormatOptions is used when a call passes no options at all.
func defaultFormatOptions() FormatOptions {
	return FormatOptions{UseGrouping: SomeBool(true)}
}

func buildFormatOptions(opts []FormatOption) FormatOptions {
	if len(opts) == 0 {
		return defaultFormatOptions()
	}

	var out FormatOptions
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&out)
	}
	return out
}

// FormatterOptions is what a FormatterFactory receives on a cache miss.
type FormatterOptions struct {
	Style                 Style
	Currency              string
	MinimumFractionDigits OptionalInt
	MaximumFractionDigits OptionalInt
	UseGrouping           OptionalBool
}
