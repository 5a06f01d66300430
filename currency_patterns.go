package numfmt

import (
	"golang.org/x/text/language"
)

const fallbackPatternLocale = "en"

// CurrencyPatternProvider resolves the currency placement pattern for a locale.
type CurrencyPatternProvider struct {
	patterns map[string]CurrencyPattern
}

// NewCurrencyPatternProvider layers overrides on top of the generated table.
func NewCurrencyPatternProvider(overrides map[string]CurrencyPattern) (*CurrencyPatternProvider, error) {
	patterns := make(map[string]CurrencyPattern, len(currencyPatternData)+len(overrides))

	for k, v := range currencyPatternData {
		patterns[k] = v
	}

	for locale, pattern := range overrides {
		key := normalizeLocale(locale)
		if key == "" {
			continue
		}
		normalized, err := pattern.normalized(key)
		if err != nil {
			return nil, err
		}
		patterns[key] = normalized
	}

	return &CurrencyPatternProvider{patterns: patterns}, nil
}

// Get tries the exact locale, its canonical form, the parent chain, the base
// language and finally English.
func (p *CurrencyPatternProvider) Get(locale string) CurrencyPattern {
	if p == nil || p.patterns == nil {
		return currencyPatternData[fallbackPatternLocale]
	}

	for _, candidate := range patternCandidates(locale) {
		if pattern, ok := p.patterns[candidate]; ok {
			return pattern
		}
	}

	if pattern, ok := p.patterns[fallbackPatternLocale]; ok {
		return pattern
	}

	return currencyPatternData[fallbackPatternLocale]
}

func patternCandidates(locale string) []string {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return nil
	}

	seen := make(map[string]struct{}, 4)
	candidates := make([]string, 0, 4)

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(normalized)

	tag, err := language.Parse(normalized)
	if err != nil {
		return candidates
	}

	appendLocale(tag.String())
	for _, parent := range parentLocales(tag.String()) {
		appendLocale(parent)
	}

	base, _ := tag.Base()
	appendLocale(base.String())

	return candidates
}
