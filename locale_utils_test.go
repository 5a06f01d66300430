package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParentLocales(t *testing.T) {
	tests := []struct {
		locale string
		want   []string
	}{
		{locale: "es-MX", want: []string{"es-419", "es"}},
		{locale: "de-CH", want: []string{"de"}},
		{locale: "en", want: nil},
		{locale: "qq-x!-y", want: []string{"qq-x!", "qq"}},
		{locale: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, parentLocales(tt.locale))
		})
	}
}

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, "pt-BR", normalizeLocale("  pt_BR "))
	assert.Equal(t, "", normalizeLocale(" "))
}
