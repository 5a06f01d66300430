package numfmt

import (
	"fmt"
	"strings"
)

// SymbolPosition tells where the currency symbol sits relative to the amount.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

const currencySign = "¤"

// CurrencyPattern describes how a locale places a currency symbol.
type CurrencyPattern struct {
	Locale string `json:"locale" yaml:"locale"`
	// Pattern is the CLDR standard currency pattern, e.g. "¤#,##0.00".
	Pattern        string         `json:"pattern" yaml:"pattern"`
	SymbolPosition SymbolPosition `json:"symbol_position" yaml:"symbol_position"`
	// Spacing is the literal text between symbol and amount.
	Spacing string `json:"spacing" yaml:"spacing"`
}

// ParseCurrencyPattern derives symbol placement from a CLDR currency pattern.
// Only the positive subpattern is inspected.
func ParseCurrencyPattern(pattern string) (CurrencyPattern, error) {
	positive, _, _ := strings.Cut(pattern, ";")

	symbolAt := strings.Index(positive, currencySign)
	if symbolAt < 0 {
		return CurrencyPattern{}, fmt.Errorf("numfmt: currency pattern %q has no currency sign", pattern)
	}

	numberStart := strings.IndexAny(positive, "#0@")
	numberEnd := strings.LastIndexAny(positive, "#0@")
	if numberStart < 0 {
		return CurrencyPattern{}, fmt.Errorf("numfmt: currency pattern %q has no number placeholder", pattern)
	}

	out := CurrencyPattern{Pattern: pattern}
	switch {
	case symbolAt < numberStart:
		out.SymbolPosition = SymbolBefore
		out.Spacing = positive[symbolAt+len(currencySign) : numberStart]
	case symbolAt > numberEnd:
		out.SymbolPosition = SymbolAfter
		out.Spacing = positive[numberEnd+1 : symbolAt]
	default:
		return CurrencyPattern{}, fmt.Errorf("numfmt: currency sign inside number in pattern %q", pattern)
	}

	return out, nil
}

func (p CurrencyPattern) normalized(locale string) (CurrencyPattern, error) {
	if p.Locale == "" {
		p.Locale = locale
	}
	if p.SymbolPosition == "" {
		if p.Pattern == "" {
			return CurrencyPattern{}, fmt.Errorf("numfmt: currency pattern for %q needs pattern or symbol_position", locale)
		}
		parsed, err := ParseCurrencyPattern(p.Pattern)
		if err != nil {
			return CurrencyPattern{}, err
		}
		parsed.Locale = p.Locale
		return parsed, nil
	}
	if p.SymbolPosition != SymbolBefore && p.SymbolPosition != SymbolAfter {
		return CurrencyPattern{}, fmt.Errorf("numfmt: invalid symbol_position %q for %q", p.SymbolPosition, locale)
	}
	return p, nil
}
