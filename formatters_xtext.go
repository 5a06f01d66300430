package numfmt

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxFractionDigitsLimit is the largest fraction digit bound accepted.
const maxFractionDigitsLimit = 20

const noBreakSpace = "\u00a0"

// NumberFormatter renders numbers for a fixed locale, currency and option set.
type NumberFormatter interface {
	Format(value float64) string
}

// FormatterFactory builds formatters on cache misses. It must reject any
// locale, currency or option combination it cannot honor.
type FormatterFactory interface {
	New(locale string, opts FormatterOptions) (NumberFormatter, error)
}

// FormatterFactoryFunc adapts a bare function to FormatterFactory.
type FormatterFactoryFunc func(locale string, opts FormatterOptions) (NumberFormatter, error)

// New implements FormatterFactory for FormatterFactoryFunc
func (fn FormatterFactoryFunc) New(locale string, opts FormatterOptions) (NumberFormatter, error) {
	return fn(locale, opts)
}

// XTextFactory builds formatters backed by golang.org/x/text.
type XTextFactory struct {
	patterns *CurrencyPatternProvider
}

var _ FormatterFactory = &XTextFactory{}

// NewXTextFactory returns a factory using the given currency patterns, or the
// built-in table when patterns is nil.
func NewXTextFactory(patterns *CurrencyPatternProvider) *XTextFactory {
	if patterns == nil {
		patterns, _ = NewCurrencyPatternProvider(nil)
	}
	return &XTextFactory{patterns: patterns}
}

func (f *XTextFactory) New(locale string, opts FormatterOptions) (NumberFormatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}

	style := opts.Style
	if style == "" {
		style = StyleDecimal
	}
	if style != StyleDecimal && style != StyleCurrency {
		return nil, fmt.Errorf("invalid style %q", opts.Style)
	}

	printer := message.NewPrinter(tag)

	code, err := resolveCurrency(printer, opts.Currency, style)
	if err != nil {
		return nil, err
	}

	defaultMin, defaultMax := 0, 3
	if style == StyleCurrency {
		defaultMin, defaultMax = code.digits, code.digits
	}

	lo, hi, err := resolveFractionDigits(opts.MinimumFractionDigits, opts.MaximumFractionDigits, defaultMin, defaultMax)
	if err != nil {
		return nil, err
	}

	numberOpts := []number.Option{number.MinFractionDigits(lo), number.MaxFractionDigits(hi)}
	if opts.UseGrouping.Set && !opts.UseGrouping.Value {
		numberOpts = append(numberOpts, number.NoSeparator())
	}

	formatter := &xtextFormatter{
		printer: printer,
		options: numberOpts,
		style:   style,
	}

	if style == StyleCurrency {
		formatter.symbol = code.symbol
		formatter.pattern = f.patterns.Get(tag.String())
		formatter.spacing = currencySpacing(code.symbol, formatter.pattern)
	}

	return formatter, nil
}

type currencyCode struct {
	symbol string
	digits int
}

func resolveCurrency(printer *message.Printer, code string, style Style) (currencyCode, error) {
	if code == "" {
		if style == StyleCurrency {
			return currencyCode{}, fmt.Errorf("currency code is required with %s style", StyleCurrency)
		}
		return currencyCode{}, nil
	}

	if !wellFormedCurrency(code) {
		return currencyCode{}, fmt.Errorf("invalid currency code %q", code)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		// Well formed but unknown to CLDR: render the code itself.
		return currencyCode{symbol: strings.ToUpper(code), digits: 2}, nil
	}

	scale, _ := currency.Standard.Rounding(unit)
	return currencyCode{
		symbol: printer.Sprintf("%v", currency.Symbol(unit)),
		digits: scale,
	}, nil
}

func wellFormedCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		c := code[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

func resolveFractionDigits(minimum, maximum OptionalInt, defaultMin, defaultMax int) (int, int, error) {
	for _, bound := range []OptionalInt{minimum, maximum} {
		if bound.Set && (bound.Value < 0 || bound.Value > maxFractionDigitsLimit) {
			return 0, 0, fmt.Errorf("fraction digits %d out of range [0, %d]", bound.Value, maxFractionDigitsLimit)
		}
	}

	lo, hi := defaultMin, defaultMax
	switch {
	case minimum.Set && maximum.Set:
		if minimum.Value > maximum.Value {
			return 0, 0, fmt.Errorf("minimum fraction digits %d exceed maximum %d", minimum.Value, maximum.Value)
		}
		lo, hi = minimum.Value, maximum.Value
	case minimum.Set:
		lo = minimum.Value
		if hi < lo {
			hi = lo
		}
	case maximum.Set:
		hi = maximum.Value
		if lo > hi {
			lo = hi
		}
	}

	return lo, hi, nil
}

// currencySpacing inserts a no-break space when the pattern has no spacing
// and the symbol side facing the digits is a letter, as with "CHF".
func currencySpacing(symbol string, pattern CurrencyPattern) string {
	if pattern.Spacing != "" {
		return pattern.Spacing
	}

	var adjacent rune
	if pattern.SymbolPosition == SymbolAfter {
		adjacent, _ = utf8.DecodeRuneInString(symbol)
	} else {
		adjacent, _ = utf8.DecodeLastRuneInString(symbol)
	}

	if unicode.IsLetter(adjacent) {
		return noBreakSpace
	}
	return ""
}

type xtextFormatter struct {
	printer *message.Printer
	options []number.Option
	style   Style
	symbol  string
	pattern CurrencyPattern
	spacing string
}

func (f *xtextFormatter) Format(value float64) string {
	amount := f.printer.Sprintf("%v", number.Decimal(value, f.options...))
	if f.style != StyleCurrency {
		return amount
	}

	magnitude := f.printer.Sprintf("%v", number.Decimal(math.Abs(value), f.options...))
	sign := ""
	if strings.HasSuffix(amount, magnitude) {
		sign = strings.TrimSuffix(amount, magnitude)
	} else {
		magnitude = amount
	}

	if f.pattern.SymbolPosition == SymbolAfter {
		return sign + magnitude + f.spacing + f.symbol
	}
	return sign + f.symbol + f.spacing + magnitude
}
