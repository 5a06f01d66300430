package numfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrencyPatternLoader reads currency placement overrides from JSON or YAML
// files. Each file maps a locale to either a bare CLDR pattern string or a
// CurrencyPattern object:
//
//	de-CH: "¤ #,##0.00"
//	sv:
//	  symbol_position: after
//	  spacing: " "
type CurrencyPatternLoader struct {
	paths []string
}

// NewCurrencyPatternLoader creates a loader. Later paths win on conflicts.
func NewCurrencyPatternLoader(paths ...string) *CurrencyPatternLoader {
	return &CurrencyPatternLoader{paths: paths}
}

// Load decodes and validates every file.
func (l *CurrencyPatternLoader) Load() (map[string]CurrencyPattern, error) {
	out := make(map[string]CurrencyPattern)

	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("numfmt: load currency patterns: %w", err)
		}

		patterns, err := decodeCurrencyPatternFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("numfmt: parse currency patterns %s: %w", path, err)
		}

		for locale, pattern := range patterns {
			key := normalizeLocale(locale)
			normalized, err := pattern.normalized(key)
			if err != nil {
				return nil, fmt.Errorf("numfmt: currency patterns %s: %w", path, err)
			}
			out[key] = normalized
		}
	}

	return out, nil
}

func decodeCurrencyPatternFile(path string, data []byte) (map[string]CurrencyPattern, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var raw map[string]any
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("json parse error: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(raw) == 0 {
		return nil, errors.New("empty currency pattern file")
	}

	out := make(map[string]CurrencyPattern, len(raw))
	for locale, value := range raw {
		pattern, err := currencyPatternFromValue(locale, value)
		if err != nil {
			return nil, err
		}
		out[locale] = pattern
	}
	return out, nil
}

func currencyPatternFromValue(locale string, value any) (CurrencyPattern, error) {
	switch v := value.(type) {
	case string:
		return CurrencyPattern{Locale: locale, Pattern: v}, nil
	case map[string]any:
		pattern := CurrencyPattern{Locale: locale}
		for field, fieldValue := range v {
			text, ok := fieldValue.(string)
			if !ok {
				return CurrencyPattern{}, fmt.Errorf("locale %q field %q must be a string", locale, field)
			}
			switch field {
			case "locale":
				if text != "" {
					pattern.Locale = text
				}
			case "pattern":
				pattern.Pattern = text
			case "symbol_position":
				pattern.SymbolPosition = SymbolPosition(text)
			case "spacing":
				pattern.Spacing = text
			default:
				return CurrencyPattern{}, fmt.Errorf("locale %q has unknown field %q", locale, field)
			}
		}
		return pattern, nil
	default:
		return CurrencyPattern{}, fmt.Errorf("locale %q has unsupported value type %T", locale, value)
	}
}
