package numfmt

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// OnError renders the output of a failed format call. Empty string when nil.
	OnError func(value any, err error) string
}

// TemplateHelpers exposes session formatting for go-template. The numeric
// helpers take an optional fraction digit argument: one int pins both bounds, two
// ints are min and max.
//
//	{{ format_currency .Total 2 }}
//	{{ format_number .Ratio 0 4 }}
func TemplateHelpers(session *Session, cfg HelperConfig) map[string]any {
	render := func(value any, digits []int, format func(float64, ...FormatOption) (string, error)) string {
		number, err := toFloat64(value)
		if err == nil {
			var opts []FormatOption
			opts, err = digitOptions(digits)
			if err == nil {
				var out string
				out, err = format(number, opts...)
				if err == nil {
					return out
				}
			}
		}
		if cfg.OnError != nil {
			return cfg.OnError(value, err)
		}
		return ""
	}

	return map[string]any{
		"format_number": func(value any, digits ...int) string {
			if session == nil {
				return render(value, digits, nilSessionFormat)
			}
			return render(value, digits, session.FormatNumber)
		},
		"format_currency": func(value any, digits ...int) string {
			if session == nil {
				return render(value, digits, nilSessionFormat)
			}
			return render(value, digits, session.FormatCurrency)
		},
		"locale": func() string {
			if session == nil {
				return ""
			}
			return session.Locale()
		},
		"currency": func() string {
			if session == nil {
				return ""
			}
			return session.Currency()
		},
	}
}

func nilSessionFormat(float64, ...FormatOption) (string, error) {
	return "", ErrNilSession
}

func digitOptions(digits []int) ([]FormatOption, error) {
	switch len(digits) {
	case 0:
		return nil, nil
	case 1:
		return []FormatOption{WithGrouping(true), WithFractionDigits(digits[0])}, nil
	case 2:
		return []FormatOption{
			WithGrouping(true),
			WithMinFractionDigits(digits[0]),
			WithMaxFractionDigits(digits[1]),
		}, nil
	default:
		return nil, fmt.Errorf("numfmt: expected at most 2 fraction digit arguments, got %d", len(digits))
	}
}

func toFloat64(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	case string:
		return strconv.ParseFloat(v, 64)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, value)
	}
}
