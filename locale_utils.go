package numfmt

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale trims the tag and accepts "_" as a subtag separator.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// parentLocales lists the CLDR parents of locale, nearest first, without the
// root: es-MX gives [es-419 es]. Tags that do not parse fall back to dropping
// trailing subtags.
func parentLocales(locale string) []string {
	var parents []string

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parents = append(parents, parent.String())
		}
		return parents
	}

	for cut := strings.LastIndexByte(locale, '-'); cut > 0; cut = strings.LastIndexByte(locale, '-') {
		locale = locale[:cut]
		parents = append(parents, locale)
	}
	return parents
}
